// Package validation holds the input checks applied at the service layer.
// Checks are deliberately light: enough to reject obviously malformed
// input without turning into a schema framework.
package validation

import (
	"fmt"
	"strings"

	"lesenhoeren/internal/models"
)

// Error marks a user-input validation failure. The HTTP boundary maps it
// to a 400 response; any other error is an internal failure.
type Error struct {
	msg string
}

func (e *Error) Error() string {
	return e.msg
}

// Errorf builds a validation Error
func Errorf(format string, args ...interface{}) error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

// NormalizeEmail lowercases and trims an email address so lookups and the
// unique constraint behave case-insensitively.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail checks that an email address is plausible
func ValidateEmail(email string) error {
	if email == "" {
		return Errorf("email is required")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return Errorf("invalid email address")
	}
	return nil
}

// ValidateName checks that a display name is present
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return Errorf("name is required")
	}
	return nil
}

// ValidatePassword checks minimum password requirements
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return Errorf("password must be at least 6 characters")
	}
	return nil
}

// ValidateLesson checks a lesson and its nested exercises for structural
// problems before it is persisted. Every question's correct answer must be
// one of its own options, by exact string match.
func ValidateLesson(lesson *models.Lesson) error {
	if !models.ValidLevel(lesson.Level) {
		return Errorf("invalid level %q", lesson.Level)
	}
	if lesson.LessonNumber < 1 {
		return Errorf("lesson number must be positive, got %d", lesson.LessonNumber)
	}
	if strings.TrimSpace(lesson.Title) == "" {
		return Errorf("lesson title is required")
	}

	for i, part := range lesson.Readings {
		if err := validateQuestions(part.Questions); err != nil {
			return Errorf("reading part %d (%s): %v", i+1, part.Title, err)
		}
	}
	for i, part := range lesson.Listenings {
		if err := validateQuestions(part.Questions); err != nil {
			return Errorf("listening part %d (%s): %v", i+1, part.Title, err)
		}
	}
	return nil
}

func validateQuestions(questions []models.Question) error {
	for i, q := range questions {
		if q.Text == "" {
			return Errorf("question %d has no text", i+1)
		}
		if len(q.Options) == 0 {
			// Open-ended question, nothing to cross-check
			continue
		}
		found := false
		for _, opt := range q.Options {
			if opt == q.CorrectAnswer {
				found = true
				break
			}
		}
		if !found {
			return Errorf("question %d: correct answer %q is not among the options", i+1, q.CorrectAnswer)
		}
	}
	return nil
}
