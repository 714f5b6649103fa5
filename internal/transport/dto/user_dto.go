package dto

import (
	"time"

	"jobboard-api/internal/models"

	"github.com/google/uuid"
)

// --- Auth Request DTOs ---

// RegisterRequest defines the structure for signing up. The role is chosen
// once here (carried over from the role picker) and is immutable afterwards.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Role      string `json:"role" validate:"required,oneof=job-seeker employer"`
}

// LoginRequest defines the structure for signing in.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse carries the signed token plus the resolved profile.
type AuthResponse struct {
	Token   string          `json:"token"`
	Profile ProfileResponse `json:"profile"`
}

// --- Profile DTOs ---

// CreateProfileRequest is the repository-level shape for inserting a profile.
// PasswordHash is set by the auth service, never bound from a request body.
type CreateProfileRequest struct {
	ID           uuid.UUID   `json:"-"`
	Email        string      `json:"-"`
	PasswordHash string      `json:"-"`
	FirstName    string      `json:"-"`
	LastName     string      `json:"-"`
	Role         models.Role `json:"-"`
}

// UpdateProfileRequest defines the structure for updating the caller's own
// profile. Role and email are deliberately absent: neither is mutable here.
type UpdateProfileRequest struct {
	ID         uuid.UUID `json:"-"`
	FirstName  *string   `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName   *string   `json:"last_name,omitempty" validate:"omitempty,max=100"`
	Bio        *string   `json:"bio,omitempty" validate:"omitempty,max=2000"`
	Skills     *[]string `json:"skills,omitempty" validate:"omitempty,dive,min=1"`
	Experience *[]string `json:"experience,omitempty"`
	ResumeURL  *string   `json:"resume_url,omitempty" validate:"omitempty,url"`
	AvatarURL  *string   `json:"avatar_url,omitempty" validate:"omitempty,url"`
}

// ProfileResponse defines the profile data returned to the client.
type ProfileResponse struct {
	ID         uuid.UUID  `json:"id"`
	Email      string     `json:"email"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Bio        string     `json:"bio"`
	Skills     []string   `json:"skills"`
	Experience []string   `json:"experience"`
	ResumeURL  *string    `json:"resume_url,omitempty"`
	AvatarURL  *string    `json:"avatar_url,omitempty"`
	Role       string     `json:"role"`
	CompanyID  *uuid.UUID `json:"company_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
