package repository

import (
	"database/sql"
	"fmt"

	"lesenhoeren/internal/database"
	"lesenhoeren/internal/models"
)

// UserRepository handles database operations for user accounts
type UserRepository struct {
	db *database.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts a new user. A duplicate email surfaces as ErrDuplicate
// via the store's unique-constraint signal; there is deliberately no
// pre-check, so concurrent registrations cannot race past each other.
func (r *UserRepository) CreateUser(name, email, passwordHash, role string) (*models.User, error) {
	query := `
		INSERT INTO users (name, email, password_hash, role)
		VALUES (?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, name, email, passwordHash, role)
	if err != nil {
		if r.db.IsUniqueViolation(err) {
			return nil, fmt.Errorf("email %s: %w", email, ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &models.User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}, nil
}

// GetUserByEmail retrieves a user by email address.
// Returns (nil, nil) when no user exists with that email.
func (r *UserRepository) GetUserByEmail(email string) (*models.User, error) {
	query := `
		SELECT id, name, email, password_hash, role
		FROM users
		WHERE email = ?
	`
	user := &models.User{}
	err := r.db.QueryRow(query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// GetUsersByRole retrieves all users with the given role. The projection
// excludes the password hash column.
func (r *UserRepository) GetUsersByRole(role string) ([]models.User, error) {
	query := `
		SELECT id, name, email, role
		FROM users
		WHERE role = ?
		ORDER BY id ASC
	`
	rows, err := r.db.Query(query, role)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Role); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	return users, rows.Err()
}
