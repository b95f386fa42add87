package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"lesenhoeren/internal/models"
	"lesenhoeren/internal/repository"
	"lesenhoeren/internal/security"
	"lesenhoeren/internal/validation"
)

var (
	// ErrDuplicateEmail is returned when registering an email that is taken
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials is returned for a failed login. It covers both
	// unknown email and wrong password so the response does not reveal
	// which accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserNotFound is returned when a user lookup finds nothing
	ErrUserNotFound = errors.New("user not found")
)

// dummyHash is a valid bcrypt hash of a throwaway string. Login runs a
// compare against it when the email is unknown, so both failure paths do
// comparable work.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AccountService handles registration, login and user lookups
type AccountService struct {
	userRepo *repository.UserRepository
	email    *EmailService
}

// NewAccountService creates a new account service. The email service is
// optional; pass nil to skip welcome mail.
func NewAccountService(userRepo *repository.UserRepository, email *EmailService) *AccountService {
	return &AccountService{userRepo: userRepo, email: email}
}

// Register creates a new user account with a hashed password. Role defaults
// to student when empty.
func (s *AccountService) Register(name, email, password, role string) (*models.User, error) {
	email = validation.NormalizeEmail(email)

	if err := validation.ValidateName(name); err != nil {
		return nil, err
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, err
	}

	if role == "" {
		role = models.RoleStudent
	}
	if !models.ValidRole(role) {
		return nil, validation.Errorf("invalid role %q", role)
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.CreateUser(name, email, hash, role)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	if s.email != nil {
		// Best effort: a failed welcome mail must not fail registration
		if err := s.email.SendWelcomeEmail(context.Background(), user.Email, user.Name); err != nil {
			log.Printf("Failed to send welcome email to %s: %v", user.Email, err)
		}
	}

	return user, nil
}

// VerifyCredentials checks an email/password pair and returns the matching
// user. Unknown email and wrong password are indistinguishable to callers.
func (s *AccountService) VerifyCredentials(email, password string) (*models.User, error) {
	email = validation.NormalizeEmail(email)

	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		security.CheckPassword(password, dummyHash)
		return nil, ErrInvalidCredentials
	}

	if !security.CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// FindByEmail looks up a user by email address
func (s *AccountService) FindByEmail(email string) (*models.User, error) {
	email = validation.NormalizeEmail(email)
	if err := validation.ValidateEmail(email); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ListStudents returns all accounts with the student role, without
// password hashes
func (s *AccountService) ListStudents() ([]models.User, error) {
	return s.userRepo.GetUsersByRole(models.RoleStudent)
}
