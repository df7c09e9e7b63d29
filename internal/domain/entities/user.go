package entities

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents the principal types served by the backend
type UserRole string

const (
	UserRoleClient UserRole = "client"
	UserRoleAdmin  UserRole = "admin"
	UserRoleSeller UserRole = "seller"
)

// Valid reports whether the role is one of the known principal types.
func (r UserRole) Valid() bool {
	switch r {
	case UserRoleClient, UserRoleAdmin, UserRoleSeller:
		return true
	}
	return false
}

// User represents an authenticatable account. Immutable except for
// password resets; role never changes after creation.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         UserRole   `json:"role"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	DeletedAt    *time.Time `json:"-"`
}

// Principal is the authenticated identity resolved from a session token.
type Principal struct {
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
	Role   UserRole  `json:"role"`
}

// LoginInput represents input for a role-scoped login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterClientInput represents input for public client registration
type RegisterClientInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}
