package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"lesenhoeren/internal/models"
	"lesenhoeren/internal/service"
)

// ProgressHandler serves progress recording and reporting endpoints
type ProgressHandler struct {
	progress *service.ProgressService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(progress *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progress: progress}
}

type recordProgressRequest struct {
	UserID     int64   `json:"userId"`
	LessonName string  `json:"lessonName"`
	TaskName   string  `json:"taskName"`
	Score      float64 `json:"score"`
	Completed  bool    `json:"completed"`
}

// RecordProgress handles POST /api/progress
func (h *ProgressHandler) RecordProgress(w http.ResponseWriter, r *http.Request) {
	var req recordProgressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == 0 || req.LessonName == "" || req.TaskName == "" {
		respondWithError(w, http.StatusBadRequest, "userId, lessonName and taskName are required")
		return
	}

	record, err := h.progress.Record(req.UserID, req.LessonName, req.TaskName, req.Score, req.Completed)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to record progress")
		return
	}

	respondWithJSON(w, http.StatusCreated, record)
}

// GetStudentProgress handles GET /api/progress/students
func (h *ProgressHandler) GetStudentProgress(w http.ResponseWriter, r *http.Request) {
	groups, err := h.progress.GroupedByStudent()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to aggregate progress")
		return
	}

	respondWithJSON(w, http.StatusOK, groups)
}

// GetUserProgress handles GET /api/progress/{userId}
func (h *ProgressHandler) GetUserProgress(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.PathValue("userId"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	records, err := h.progress.HistoryForUser(userID)
	if err != nil {
		if errors.Is(err, service.ErrNoProgress) {
			respondWithError(w, http.StatusNotFound, "no progress found for user")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "failed to get progress")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string][]models.Progress{"progress": records})
}
