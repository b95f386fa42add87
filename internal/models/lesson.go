package models

// Lesson levels offered by the platform
const (
	LevelA1 = "A1"
	LevelA2 = "A2"
	LevelB1 = "B1"
)

// ValidLevel reports whether level is one of the supported lesson levels
func ValidLevel(level string) bool {
	switch level {
	case LevelA1, LevelA2, LevelB1:
		return true
	}
	return false
}

// Lesson is a leveled unit of content containing reading (Lesen) and
// listening (Hören) exercises. (level, lessonNumber) is unique together.
type Lesson struct {
	ID           int64           `json:"id"`
	Level        string          `json:"level"`
	LessonNumber int             `json:"lessonNumber"`
	Title        string          `json:"title"`
	Readings     []ReadingPart   `json:"readings"`
	Listenings   []ListeningPart `json:"listenings"`
}

// LessonSummary is the projection returned by level-filtered listings
type LessonSummary struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	LessonNumber int    `json:"lessonNumber"`
}

// ReadingPart is one Teil of the Lesen section
type ReadingPart struct {
	Title        string     `json:"title"`
	Text         string     `json:"text"`
	Instructions string     `json:"instructions,omitempty"`
	Questions    []Question `json:"questions"`
}

// ListeningPart is one Teil of the Hören section. Matching-type exercises
// (Hören Teil 2) carry drag-and-drop option tokens and expected solutions
// instead of multiple-choice questions.
type ListeningPart struct {
	Title           string           `json:"title"`
	AudioURL        string           `json:"audioUrl"`
	Instructions    string           `json:"instructions,omitempty"`
	Example         string           `json:"example,omitempty"`
	Questions       []Question       `json:"questions"`
	DragDropOptions []DragDropOption `json:"dragDropOptions,omitempty"`
	DragDropAnswers []DragDropAnswer `json:"dragDropAnswers,omitempty"`
}

// Question is a multiple-choice question. CorrectAnswer must literally match
// one of Options (case- and whitespace-sensitive).
type Question struct {
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// DragDropOption is one draggable token in a matching exercise
type DragDropOption struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// DragDropAnswer pairs a person with the expected solution token
type DragDropAnswer struct {
	Person   string `json:"person"`
	Solution string `json:"solution"`
}
