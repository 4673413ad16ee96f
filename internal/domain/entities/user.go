package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// User represents an operator of the admin panel
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"isAdmin"`
	CreatedAt    time.Time `json:"createdAt"`
	LastLogin    null.Time `json:"lastLogin,omitempty"`
}

// CreateUserInput represents input for creating an operator
type CreateUserInput struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=5"`
	IsAdmin  bool   `json:"isAdmin"`
}

// LoginInput represents input for operator login
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	User        *User  `json:"user"`
}
