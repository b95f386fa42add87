package service

import (
	"errors"
	"fmt"

	"lesenhoeren/internal/models"
	"lesenhoeren/internal/repository"
	"lesenhoeren/internal/validation"
)

var (
	// ErrLevelRequired is returned when a lesson listing has no level filter
	ErrLevelRequired = errors.New("level query parameter is required")
	// ErrLessonNotFound is returned when a lesson lookup finds nothing
	ErrLessonNotFound = errors.New("lesson not found")
	// ErrDuplicateLesson is returned when replacing content would store two
	// lessons with the same level and number
	ErrDuplicateLesson = errors.New("duplicate lesson for level and number")
)

// ContentService handles lesson content queries and seeding
type ContentService struct {
	lessonRepo *repository.LessonRepository
}

// NewContentService creates a new content service
func NewContentService(lessonRepo *repository.LessonRepository) *ContentService {
	return &ContentService{lessonRepo: lessonRepo}
}

// ListByLevel returns lesson summaries for a level, ordered by lesson
// number. The level filter is mandatory; an unknown level yields an empty
// list, not an error.
func (s *ContentService) ListByLevel(level string) ([]models.LessonSummary, error) {
	if level == "" {
		return nil, ErrLevelRequired
	}
	return s.lessonRepo.ListByLevel(level)
}

// GetLesson returns a full lesson with its nested exercises
func (s *ContentService) GetLesson(id int64) (*models.Lesson, error) {
	lesson, err := s.lessonRepo.GetLessonByID(id)
	if err != nil {
		return nil, err
	}
	if lesson == nil {
		return nil, ErrLessonNotFound
	}
	return lesson, nil
}

// ReplaceAll validates the given lessons and swaps them in for the entire
// current content set, atomically.
func (s *ContentService) ReplaceAll(lessons []models.Lesson) error {
	for i := range lessons {
		if err := validation.ValidateLesson(&lessons[i]); err != nil {
			return fmt.Errorf("lesson %d: %w", i+1, err)
		}
	}

	if err := s.lessonRepo.ReplaceAll(lessons); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrDuplicateLesson
		}
		return err
	}
	return nil
}
