package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleOwner    = "owner"
	RoleEmployee = "employee"
)

type User struct {
	ID            int        `json:"id"`
	Username      string     `json:"username"`
	Email         string     `json:"email"`
	PasswordHash  string     `json:"password,omitempty"`
	Role          string     `json:"role"`
	ContactNumber *string    `json:"contact_number"`
	Active        bool       `json:"active"`
	Deleted       bool       `json:"deleted"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type UpdateUserRequest struct {
	ID            int     `json:"id"`
	Username      *string `json:"username"`
	Email         *string `json:"email"`
	Role          *string `json:"role"`
	ContactNumber *string `json:"contact_number"`
	Active        *bool   `json:"active"`
	Deleted       *bool   `json:"deleted"`
}

type Claims struct {
	UserID       int
	UserUsername string
	UserEmail    string
	UserRole     string
	UserActive   bool
	jwt.RegisteredClaims
}

// IsOwner reports whether the claims belong to the privileged caller class.
func (c *Claims) IsOwner() bool {
	return c.UserRole == RoleOwner
}
