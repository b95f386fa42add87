package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"lesenhoeren/internal/database"
	"lesenhoeren/internal/models"
)

// LessonRepository handles database operations for lesson content.
// The nested exercise structures (readings/listenings) are persisted as
// JSON columns; their array order is the canonical exercise order.
type LessonRepository struct {
	db *database.DB
}

// NewLessonRepository creates a new lesson repository
func NewLessonRepository(db *database.DB) *LessonRepository {
	return &LessonRepository{db: db}
}

// ListByLevel retrieves lesson summaries for a level, ascending by lesson number
func (r *LessonRepository) ListByLevel(level string) ([]models.LessonSummary, error) {
	query := `
		SELECT id, title, lesson_number
		FROM lessons
		WHERE level = ?
		ORDER BY lesson_number ASC
	`
	rows, err := r.db.Query(query, level)
	if err != nil {
		return nil, fmt.Errorf("failed to query lessons: %w", err)
	}
	defer rows.Close()

	summaries := []models.LessonSummary{}
	for rows.Next() {
		var s models.LessonSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.LessonNumber); err != nil {
			return nil, fmt.Errorf("failed to scan lesson summary: %w", err)
		}
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}

// GetLessonByID retrieves a full lesson including nested exercise parts.
// Returns (nil, nil) when no lesson exists with that ID.
func (r *LessonRepository) GetLessonByID(id int64) (*models.Lesson, error) {
	query := `
		SELECT id, level, lesson_number, title, readings, listenings
		FROM lessons
		WHERE id = ?
	`
	lesson := &models.Lesson{}
	var readingsJSON, listeningsJSON []byte

	err := r.db.QueryRow(query, id).Scan(
		&lesson.ID,
		&lesson.Level,
		&lesson.LessonNumber,
		&lesson.Title,
		&readingsJSON,
		&listeningsJSON,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lesson: %w", err)
	}

	if err := json.Unmarshal(readingsJSON, &lesson.Readings); err != nil {
		return nil, fmt.Errorf("failed to decode readings: %w", err)
	}
	if err := json.Unmarshal(listeningsJSON, &lesson.Listenings); err != nil {
		return nil, fmt.Errorf("failed to decode listenings: %w", err)
	}

	return lesson, nil
}

// ReplaceAll deletes every existing lesson and inserts the given set in a
// single transaction. A destructive full replace for (re)seeding fixed
// content, not a merge.
func (r *LessonRepository) ReplaceAll(lessons []models.Lesson) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM lessons"); err != nil {
		return fmt.Errorf("failed to clear lessons: %w", err)
	}

	insert := `
		INSERT INTO lessons (level, lesson_number, title, readings, listenings)
		VALUES (?, ?, ?, ?, ?)
	`
	for _, lesson := range lessons {
		readingsJSON, err := json.Marshal(lesson.Readings)
		if err != nil {
			return fmt.Errorf("failed to encode readings: %w", err)
		}
		listeningsJSON, err := json.Marshal(lesson.Listenings)
		if err != nil {
			return fmt.Errorf("failed to encode listenings: %w", err)
		}

		_, err = tx.Exec(insert, lesson.Level, lesson.LessonNumber, lesson.Title, readingsJSON, listeningsJSON)
		if err != nil {
			if r.db.IsUniqueViolation(err) {
				return fmt.Errorf("lesson %s/%d: %w", lesson.Level, lesson.LessonNumber, ErrDuplicate)
			}
			return fmt.Errorf("failed to insert lesson: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit lessons: %w", err)
	}
	return nil
}
