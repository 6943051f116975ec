package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents the structure of an account in the database.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"password_hash,omitempty"`
	Plan         string    `json:"plan"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserResponse is the public view of a user, safe to return from handlers.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Plan      string    `json:"plan"`
	CreatedAt time.Time `json:"created_at"`
}

// Response strips the password hash from a user record.
func (u User) Response() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Plan:      u.Plan,
		CreatedAt: u.CreatedAt,
	}
}

// TokenResponse is returned by the register and login endpoints.
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}
