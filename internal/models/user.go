package models

// User roles
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
)

// ValidRole reports whether role is a supported account role
func ValidRole(role string) bool {
	return role == RoleStudent || role == RoleTeacher
}

// User represents an account. The password hash is never serialized;
// only the one-way bcrypt hash is ever stored, never the plaintext.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}
