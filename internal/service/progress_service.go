package service

import (
	"errors"

	"lesenhoeren/internal/models"
	"lesenhoeren/internal/repository"
)

// ErrNoProgress is returned when a user has no recorded progress
var ErrNoProgress = errors.New("no progress recorded")

// ProgressService records task outcomes and aggregates them per student
type ProgressService struct {
	progressRepo *repository.ProgressRepository
}

// NewProgressService creates a new progress service
func NewProgressService(progressRepo *repository.ProgressRepository) *ProgressService {
	return &ProgressService{progressRepo: progressRepo}
}

// Record appends one progress record for a user. The user is not checked
// to exist; orphan records are tolerated and filtered out at read time.
func (s *ProgressService) Record(userID int64, lessonName, taskName string, score float64, completed bool) (*models.Progress, error) {
	return s.progressRepo.CreateProgress(userID, lessonName, taskName, score, completed)
}

// HistoryForUser returns a user's progress records ordered by completion
// time. A user with no records yields ErrNoProgress, indistinguishable from
// a user that does not exist.
func (s *ProgressService) HistoryForUser(userID int64) ([]models.Progress, error) {
	records, err := s.progressRepo.GetUserProgress(userID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoProgress
	}
	return records, nil
}

// GroupedByStudent returns every student's recorded tasks, grouped for the
// teacher dashboard.
func (s *ProgressService) GroupedByStudent() ([]models.StudentProgress, error) {
	records, err := s.progressRepo.GetAllWithUser()
	if err != nil {
		return nil, err
	}
	return GroupByStudent(records), nil
}

// GroupByStudent folds joined progress rows into per-student groups.
// Grouping is keyed on the user's display name: two accounts sharing a name
// merge into one group, whose email is that of the first record seen. Groups
// appear in first-seen order and tasks keep their input order.
func GroupByStudent(records []models.ProgressWithUser) []models.StudentProgress {
	groups := []models.StudentProgress{}
	index := map[string]int{}

	for _, rec := range records {
		i, ok := index[rec.UserName]
		if !ok {
			i = len(groups)
			index[rec.UserName] = i
			groups = append(groups, models.StudentProgress{
				Name:  rec.UserName,
				Email: rec.UserEmail,
				Tasks: []models.TaskRecord{},
			})
		}
		groups[i].Tasks = append(groups[i].Tasks, models.TaskRecord{
			ID:          rec.ID,
			LessonName:  rec.LessonName,
			TaskName:    rec.TaskName,
			Score:       rec.Score,
			Completed:   rec.Completed,
			CompletedAt: rec.CompletedAt,
		})
	}

	return groups
}
