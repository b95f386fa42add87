package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"lesenhoeren/internal/service"
)

// LessonHandler serves lesson content endpoints
type LessonHandler struct {
	content *service.ContentService
}

// NewLessonHandler creates a new lesson handler
func NewLessonHandler(content *service.ContentService) *LessonHandler {
	return &LessonHandler{content: content}
}

// ListLessons handles GET /api/lessons?level=A2
func (h *LessonHandler) ListLessons(w http.ResponseWriter, r *http.Request) {
	level := r.URL.Query().Get("level")

	summaries, err := h.content.ListByLevel(level)
	if err != nil {
		if errors.Is(err, service.ErrLevelRequired) {
			respondWithError(w, http.StatusBadRequest, "level query parameter is required")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "failed to list lessons")
		return
	}

	respondWithJSON(w, http.StatusOK, summaries)
}

// GetLesson handles GET /api/lessons/{id}
func (h *LessonHandler) GetLesson(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid lesson id")
		return
	}

	lesson, err := h.content.GetLesson(id)
	if err != nil {
		if errors.Is(err, service.ErrLessonNotFound) {
			respondWithError(w, http.StatusNotFound, "lesson not found")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "failed to get lesson")
		return
	}

	respondWithJSON(w, http.StatusOK, lesson)
}
