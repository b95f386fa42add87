package models

import "time"

// Progress is one persisted outcome of a user attempting a task.
// Records are append-only: created once per completed attempt, never
// mutated or deleted.
type Progress struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	LessonName  string    `json:"lessonName"`
	TaskName    string    `json:"taskName"`
	Score       float64   `json:"score"`
	Completed   bool      `json:"completed"`
	CompletedAt time.Time `json:"completedAt"`
}

// ProgressWithUser is the denormalized join row consumed by the
// per-student aggregation
type ProgressWithUser struct {
	Progress
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
}

// TaskRecord is a progress record as it appears inside a per-student group:
// the progress fields minus the user reference, which the group itself
// carries.
type TaskRecord struct {
	ID          int64     `json:"id"`
	LessonName  string    `json:"lessonName"`
	TaskName    string    `json:"taskName"`
	Score       float64   `json:"score"`
	Completed   bool      `json:"completed"`
	CompletedAt time.Time `json:"completedAt"`
}

// StudentProgress is one aggregated group: a student and the tasks they
// have recorded, in encounter order
type StudentProgress struct {
	Name  string       `json:"name"`
	Email string       `json:"email"`
	Tasks []TaskRecord `json:"tasks"`
}
