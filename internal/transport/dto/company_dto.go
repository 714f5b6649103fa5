package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Company Request DTOs ---

// CreateCompanyRequest defines the structure for creating a company.
// The caller's profile is pointed at the new company in the same transaction.
type CreateCompanyRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description string  `json:"description" validate:"omitempty,max=5000"`
	Industry    string  `json:"industry" validate:"omitempty,max=100"`
	Size        string  `json:"size" validate:"omitempty,max=50"`
	Website     string  `json:"website" validate:"omitempty,url"`
	LogoURL     *string `json:"logo_url,omitempty" validate:"omitempty,url"`
	Location    string  `json:"location" validate:"omitempty,max=200"`
}

// UpdateCompanyRequest defines the structure for updating a company. Any
// profile referencing the company may update it; concurrent edits are
// last-write-wins.
type UpdateCompanyRequest struct {
	ID          uuid.UUID `json:"-"`
	Name        *string   `json:"name,omitempty" validate:"omitempty,max=200"`
	Description *string   `json:"description,omitempty" validate:"omitempty,max=5000"`
	Industry    *string   `json:"industry,omitempty" validate:"omitempty,max=100"`
	Size        *string   `json:"size,omitempty" validate:"omitempty,max=50"`
	Website     *string   `json:"website,omitempty" validate:"omitempty,url"`
	LogoURL     *string   `json:"logo_url,omitempty" validate:"omitempty,url"`
	Location    *string   `json:"location,omitempty" validate:"omitempty,max=200"`
}

// CompanyResponse defines the company data returned to the client.
type CompanyResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Industry    string    `json:"industry"`
	Size        string    `json:"size"`
	Website     string    `json:"website"`
	LogoURL     *string   `json:"logo_url,omitempty"`
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
