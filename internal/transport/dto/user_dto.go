package dto

import (
	"time"

	"hirely-api/internal/models"

	"github.com/google/uuid"
)

// RegisterRequest defines the structure for registering a new account.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the structure for logging in.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest carries a refresh token to be rotated.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutRequest carries a refresh token to be revoked.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// UpdateProfileRequest defines the structure for updating name/email.
// UserID comes from the verified token, never the body.
type UpdateProfileRequest struct {
	UserID uuid.UUID `json:"-" validate:"required"`
	Name   *string   `json:"name" validate:"omitempty,max=100"`
	Email  *string   `json:"email" validate:"omitempty,email"`
}

// DeleteProfileRequest defines the structure for deleting the caller's account.
type DeleteProfileRequest struct {
	UserID uuid.UUID `json:"-" validate:"required"`
}

// GetUserByIdRequest defines the structure for getting a user by id.
type GetUserByIdRequest struct {
	ID uuid.UUID `json:"id" validate:"required"`
}

// GetUserByEmailRequest defines the structure for getting a user by email.
type GetUserByEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UserResponse is the public projection of a user. No password hash.
type UserResponse struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// AuthResponse is returned from register, login and refresh.
type AuthResponse struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}
