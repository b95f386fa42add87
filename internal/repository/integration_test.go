package repository

import (
	"errors"
	"path/filepath"
	"testing"

	"lesenhoeren/internal/database"
	"lesenhoeren/internal/models"
)

// setupTestDB opens a throwaway SQLite database with the real schema
func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.Initialize(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to initialize test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations(filepath.Join("..", "..", "migrations")); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func testLesson(level string, number int) models.Lesson {
	return models.Lesson{
		Level:        level,
		LessonNumber: number,
		Title:        "Lektion",
		Readings: []models.ReadingPart{
			{
				Title: "Teil 1",
				Text:  "Ein kurzer Text.",
				Questions: []models.Question{
					{Text: "Frage 1?", Options: []string{"ja", "nein"}, CorrectAnswer: "ja"},
				},
			},
			{
				Title: "Teil 2",
				Text:  "Noch ein Text.",
			},
		},
		Listenings: []models.ListeningPart{
			{
				Title:    "Hören Teil 1",
				AudioURL: "/audio/test.mp3",
				DragDropOptions: []models.DragDropOption{
					{ID: "a", Text: "kauft ein"},
					{ID: "b", Text: "kocht"},
				},
				DragDropAnswers: []models.DragDropAnswer{
					{Person: "Mama", Solution: "a"},
					{Person: "Papa", Solution: "b"},
				},
			},
		},
	}
}

func TestLessonRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db := setupTestDB(t)
	repo := NewLessonRepository(db)

	if err := repo.ReplaceAll([]models.Lesson{testLesson("A2", 1)}); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	summaries, err := repo.ListByLevel("A2")
	if err != nil {
		t.Fatalf("ListByLevel failed: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(summaries))
	}

	lesson, err := repo.GetLessonByID(summaries[0].ID)
	if err != nil {
		t.Fatalf("GetLessonByID failed: %v", err)
	}
	if lesson == nil {
		t.Fatal("expected lesson, got nil")
	}

	// Nested structures survive the round trip in order
	if len(lesson.Readings) != 2 {
		t.Fatalf("expected 2 reading parts, got %d", len(lesson.Readings))
	}
	if lesson.Readings[0].Title != "Teil 1" || lesson.Readings[1].Title != "Teil 2" {
		t.Errorf("reading parts out of order: %q, %q", lesson.Readings[0].Title, lesson.Readings[1].Title)
	}
	if lesson.Readings[0].Questions[0].CorrectAnswer != "ja" {
		t.Errorf("unexpected question answer: %q", lesson.Readings[0].Questions[0].CorrectAnswer)
	}
	if len(lesson.Listenings) != 1 {
		t.Fatalf("expected 1 listening part, got %d", len(lesson.Listenings))
	}
	if got := lesson.Listenings[0].DragDropAnswers; len(got) != 2 || got[0].Person != "Mama" {
		t.Errorf("unexpected drag-drop answers: %+v", got)
	}
}

func TestLessonGetMissing(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db := setupTestDB(t)
	repo := NewLessonRepository(db)

	lesson, err := repo.GetLessonByID(9999)
	if err != nil {
		t.Fatalf("GetLessonByID failed: %v", err)
	}
	if lesson != nil {
		t.Errorf("expected nil for missing lesson, got %+v", lesson)
	}
}

func TestListByLevelOrdering(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db := setupTestDB(t)
	repo := NewLessonRepository(db)

	// Insert out of order across two levels
	lessons := []models.Lesson{
		testLesson("A2", 3),
		testLesson("B1", 1),
		testLesson("A2", 1),
		testLesson("A2", 2),
	}
	if err := repo.ReplaceAll(lessons); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	summaries, err := repo.ListByLevel("A2")
	if err != nil {
		t.Fatalf("ListByLevel failed: %v", err)
	}
	if len(summaries) != 3 {
		t.Fatalf("expected 3 lessons for A2, got %d", len(summaries))
	}
	for i, s := range summaries {
		if s.LessonNumber != i+1 {
			t.Errorf("summary %d has lesson number %d, want %d", i, s.LessonNumber, i+1)
		}
	}

	empty, err := repo.ListByLevel("C1")
	if err != nil {
		t.Fatalf("ListByLevel failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected no lessons for unknown level, got %d", len(empty))
	}
}

func TestReplaceAllDuplicate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db := setupTestDB(t)
	repo := NewLessonRepository(db)

	if err := repo.ReplaceAll([]models.Lesson{testLesson("A2", 1)}); err != nil {
		t.Fatalf("initial ReplaceAll failed: %v", err)
	}

	err := repo.ReplaceAll([]models.Lesson{testLesson("A2", 1), testLesson("A2", 1)})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	// The failed replace must roll back, leaving the previous content intact
	summaries, err := repo.ListByLevel("A2")
	if err != nil {
		t.Fatalf("ListByLevel failed: %v", err)
	}
	if len(summaries) != 1 {
		t.Errorf("expected previous content to survive a failed replace, got %d lessons", len(summaries))
	}
}

func TestUserCreateAndLookup(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user, err := repo.CreateUser("Anna", "anna@schule.de", "hashed-pw", models.RoleStudent)
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if user.ID == 0 {
		t.Error("expected a generated ID")
	}

	found, err := repo.GetUserByEmail("anna@schule.de")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if found == nil || found.Name != "Anna" || found.PasswordHash != "hashed-pw" {
		t.Errorf("unexpected user: %+v", found)
	}

	missing, err := repo.GetUserByEmail("niemand@schule.de")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown email, got %+v", missing)
	}
}

func TestUserDuplicateEmail(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	if _, err := repo.CreateUser("Anna", "anna@schule.de", "hash1", models.RoleStudent); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	_, err := repo.CreateUser("Other Anna", "anna@schule.de", "hash2", models.RoleStudent)
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestGetUsersByRole(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	if _, err := repo.CreateUser("Anna", "anna@schule.de", "hash", models.RoleStudent); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if _, err := repo.CreateUser("Frau Müller", "mueller@schule.de", "hash", models.RoleTeacher); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	students, err := repo.GetUsersByRole(models.RoleStudent)
	if err != nil {
		t.Fatalf("GetUsersByRole failed: %v", err)
	}
	if len(students) != 1 || students[0].Name != "Anna" {
		t.Fatalf("unexpected students: %+v", students)
	}
	if students[0].PasswordHash != "" {
		t.Error("role listing must not include password hashes")
	}
}

func TestProgressHistory(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db := setupTestDB(t)
	users := NewUserRepository(db)
	repo := NewProgressRepository(db)

	anna, err := users.CreateUser("Anna", "anna@schule.de", "hash", models.RoleStudent)
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	for _, task := range []string{"Lesen Teil 1", "Lesen Teil 2", "Hören Teil 1"} {
		if _, err := repo.CreateProgress(anna.ID, "Lección 1", task, 75, true); err != nil {
			t.Fatalf("CreateProgress failed: %v", err)
		}
	}

	records, err := repo.GetUserProgress(anna.ID)
	if err != nil {
		t.Fatalf("GetUserProgress failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0].TaskName != "Lesen Teil 1" || records[2].TaskName != "Hören Teil 1" {
		t.Errorf("records out of order: %+v", records)
	}

	empty, err := repo.GetUserProgress(anna.ID + 100)
	if err != nil {
		t.Fatalf("GetUserProgress failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected no records for unknown user, got %d", len(empty))
	}
}

func TestGetAllWithUserDropsOrphans(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db := setupTestDB(t)
	users := NewUserRepository(db)
	repo := NewProgressRepository(db)

	anna, err := users.CreateUser("Anna", "anna@schule.de", "hash", models.RoleStudent)
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	if _, err := repo.CreateProgress(anna.ID, "Lección 1", "Lesen Teil 1", 80, true); err != nil {
		t.Fatalf("CreateProgress failed: %v", err)
	}
	// Orphan record: no matching user row
	if _, err := repo.CreateProgress(anna.ID+100, "Lección 1", "Lesen Teil 1", 50, true); err != nil {
		t.Fatalf("CreateProgress failed: %v", err)
	}

	records, err := repo.GetAllWithUser()
	if err != nil {
		t.Fatalf("GetAllWithUser failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected orphan record to be dropped by the join, got %d records", len(records))
	}
	if records[0].UserName != "Anna" || records[0].UserEmail != "anna@schule.de" {
		t.Errorf("unexpected joined record: %+v", records[0])
	}
}
