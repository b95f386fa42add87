package repository

import (
	"fmt"
	"time"

	"lesenhoeren/internal/database"
	"lesenhoeren/internal/models"
)

// ProgressRepository handles database operations for progress records.
// Records are append-only: there are no update or delete operations.
type ProgressRepository struct {
	db *database.DB
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db *database.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// CreateProgress appends a new progress record. The referenced user is not
// verified to exist; referential integrity is advisory here.
func (r *ProgressRepository) CreateProgress(userID int64, lessonName, taskName string, score float64, completed bool) (*models.Progress, error) {
	completedAt := time.Now().UTC()

	query := `
		INSERT INTO progress (user_id, lesson_name, task_name, score, completed, completed_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, userID, lessonName, taskName, score, completed, completedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create progress: %w", err)
	}

	return &models.Progress{
		ID:          id,
		UserID:      userID,
		LessonName:  lessonName,
		TaskName:    taskName,
		Score:       score,
		Completed:   completed,
		CompletedAt: completedAt,
	}, nil
}

// GetUserProgress retrieves all progress records for a user, ascending by
// completion time
func (r *ProgressRepository) GetUserProgress(userID int64) ([]models.Progress, error) {
	query := `
		SELECT id, user_id, lesson_name, task_name, score, completed, completed_at
		FROM progress
		WHERE user_id = ?
		ORDER BY completed_at ASC, id ASC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query progress: %w", err)
	}
	defer rows.Close()

	records := []models.Progress{}
	for rows.Next() {
		var p models.Progress
		if err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.LessonName,
			&p.TaskName,
			&p.Score,
			&p.Completed,
			&p.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan progress: %w", err)
		}
		records = append(records, p)
	}

	return records, rows.Err()
}

// GetAllWithUser retrieves every progress record joined with the owning
// user's name and email, in insertion order. This feeds the per-student
// aggregation; rows for users that no longer exist are dropped by the join.
func (r *ProgressRepository) GetAllWithUser() ([]models.ProgressWithUser, error) {
	query := `
		SELECT p.id, p.user_id, p.lesson_name, p.task_name, p.score, p.completed, p.completed_at,
		       u.name, u.email
		FROM progress p
		JOIN users u ON u.id = p.user_id
		ORDER BY p.id ASC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query progress with users: %w", err)
	}
	defer rows.Close()

	records := []models.ProgressWithUser{}
	for rows.Next() {
		var rec models.ProgressWithUser
		if err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.LessonName,
			&rec.TaskName,
			&rec.Score,
			&rec.Completed,
			&rec.CompletedAt,
			&rec.UserName,
			&rec.UserEmail,
		); err != nil {
			return nil, fmt.Errorf("failed to scan progress row: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
