package validation

import (
	"strings"
	"testing"

	"lesenhoeren/internal/models"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Anna@Example.COM", "anna@example.com"},
		{"  ben@schule.de  ", "ben@schule.de"},
		{"already@lower.de", "already@lower.de"},
	}

	for _, tt := range tests {
		if got := NormalizeEmail(tt.input); got != tt.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email   string
		wantErr bool
	}{
		{"anna@example.com", false},
		{"a@b", false},
		{"", true},
		{"no-at-sign", true},
		{"@leading.at", true},
		{"trailing.at@", true},
	}

	for _, tt := range tests {
		err := ValidateEmail(tt.email)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateEmail(%q) error = %v, wantErr %v", tt.email, err, tt.wantErr)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("abc"); err == nil {
		t.Error("short password should be rejected")
	}
	if err := ValidatePassword("geheim"); err != nil {
		t.Errorf("6-character password should pass: %v", err)
	}
}

func validLesson() *models.Lesson {
	return &models.Lesson{
		Level:        models.LevelA2,
		LessonNumber: 1,
		Title:        "Im Restaurant",
		Readings: []models.ReadingPart{
			{
				Title: "Teil 1",
				Text:  "Maria geht ins Restaurant.",
				Questions: []models.Question{
					{
						Text:          "Wohin geht Maria?",
						Options:       []string{"ins Kino", "ins Restaurant"},
						CorrectAnswer: "ins Restaurant",
					},
				},
			},
		},
	}
}

func TestValidateLesson(t *testing.T) {
	if err := ValidateLesson(validLesson()); err != nil {
		t.Fatalf("valid lesson rejected: %v", err)
	}

	t.Run("invalid level", func(t *testing.T) {
		lesson := validLesson()
		lesson.Level = "C2"
		if err := ValidateLesson(lesson); err == nil {
			t.Error("expected error for invalid level")
		}
	})

	t.Run("zero lesson number", func(t *testing.T) {
		lesson := validLesson()
		lesson.LessonNumber = 0
		if err := ValidateLesson(lesson); err == nil {
			t.Error("expected error for non-positive lesson number")
		}
	})

	t.Run("missing title", func(t *testing.T) {
		lesson := validLesson()
		lesson.Title = "  "
		if err := ValidateLesson(lesson); err == nil {
			t.Error("expected error for blank title")
		}
	})

	t.Run("answer not among options", func(t *testing.T) {
		lesson := validLesson()
		lesson.Readings[0].Questions[0].CorrectAnswer = "ins Theater"
		err := ValidateLesson(lesson)
		if err == nil {
			t.Fatal("expected error for answer outside options")
		}
		if !strings.Contains(err.Error(), "not among the options") {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("case must match exactly", func(t *testing.T) {
		lesson := validLesson()
		lesson.Readings[0].Questions[0].CorrectAnswer = "Ins Restaurant"
		if err := ValidateLesson(lesson); err == nil {
			t.Error("answer comparison should be case-sensitive")
		}
	})

	t.Run("open-ended question without options", func(t *testing.T) {
		lesson := validLesson()
		lesson.Listenings = []models.ListeningPart{
			{
				Title: "Hören Teil 3",
				Questions: []models.Question{
					{Text: "Was bestellt Maria?", CorrectAnswer: "einen Kaffee"},
				},
			},
		}
		if err := ValidateLesson(lesson); err != nil {
			t.Errorf("question without options should be allowed: %v", err)
		}
	})
}
