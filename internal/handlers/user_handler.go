package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"lesenhoeren/internal/service"
	"lesenhoeren/internal/validation"
)

// UserHandler serves account registration, login and user lookup endpoints
type UserHandler struct {
	accounts *service.AccountService
}

// NewUserHandler creates a new user handler
func NewUserHandler(accounts *service.AccountService) *UserHandler {
	return &UserHandler{accounts: accounts}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /api/users/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.accounts.Register(req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateEmail) {
			respondWithError(w, http.StatusBadRequest, "email already registered")
			return
		}
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			respondWithError(w, http.StatusBadRequest, vErr.Error())
			return
		}
		respondWithError(w, http.StatusInternalServerError, "failed to register user")
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	})
}

// Login handles POST /api/auth/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.accounts.VerifyCredentials(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondWithError(w, http.StatusBadRequest, "invalid email or password")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "login failed")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	})
}

// GetByEmail handles GET /api/users/by-email?email=...
func (h *UserHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	user, err := h.accounts.FindByEmail(email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondWithError(w, http.StatusNotFound, "user not found")
			return
		}
		var vErr *validation.Error
		if errors.As(err, &vErr) {
			respondWithError(w, http.StatusBadRequest, vErr.Error())
			return
		}
		respondWithError(w, http.StatusInternalServerError, "failed to look up user")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
	})
}

// ListStudents handles GET /api/users
func (h *UserHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.accounts.ListStudents()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to list students")
		return
	}

	respondWithJSON(w, http.StatusOK, students)
}
