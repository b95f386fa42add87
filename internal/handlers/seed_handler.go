package handlers

import (
	"errors"
	"net/http"

	"lesenhoeren/internal/models"
	"lesenhoeren/internal/seed"
	"lesenhoeren/internal/service"
)

// SeedHandler (re)loads the built-in demo content
type SeedHandler struct {
	content  *service.ContentService
	accounts *service.AccountService
}

// NewSeedHandler creates a new seed handler
func NewSeedHandler(content *service.ContentService, accounts *service.AccountService) *SeedHandler {
	return &SeedHandler{content: content, accounts: accounts}
}

// SeedLessons handles GET /api/seed-lessons. It replaces all lesson content
// with the demo set and makes sure the test teacher account exists.
func (h *SeedHandler) SeedLessons(w http.ResponseWriter, r *http.Request) {
	_, err := h.accounts.Register(seed.TeacherName, seed.TeacherEmail, seed.TeacherPassword, models.RoleTeacher)
	if err != nil && !errors.Is(err, service.ErrDuplicateEmail) {
		respondWithError(w, http.StatusInternalServerError, "failed to create teacher account")
		return
	}

	lessons := seed.Lessons()
	if err := h.content.ReplaceAll(lessons); err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to seed lessons")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message": "lessons seeded",
		"count":   len(lessons),
	})
}
