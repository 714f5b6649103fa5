package dto

import (
	"time"

	"jobboard-api/internal/models"

	"github.com/google/uuid"
)

// --- Job Request DTOs ---

// CreateJobRequest defines the structure for posting a new job.
// CompanyID and CreatedBy are resolved from the authenticated employer.
type CreateJobRequest struct {
	Title         string   `json:"title" validate:"required,max=200"`
	Description   string   `json:"description" validate:"required"`
	Requirements  string   `json:"requirements" validate:"required"`
	Location      string   `json:"location" validate:"required,max=200"`
	SalaryRange   string   `json:"salary_range" validate:"required,max=100"`
	Type          string   `json:"type" validate:"required,max=50"`
	Remote        bool     `json:"remote"`
	Category      string   `json:"category" validate:"required,max=100"`
	Skills        []string `json:"skills" validate:"required,min=1,dive,min=1"`
	Status        string   `json:"status" validate:"omitempty,oneof=active draft"`
	ExpiresInDays *int     `json:"expires_in_days,omitempty" validate:"omitempty,gt=0,lte=365"`

	CompanyID uuid.UUID `json:"-"`
	CreatedBy uuid.UUID `json:"-"`
}

// UpdateJobRequest defines the structure for editing a job. The expiration is
// recomputed from ExpiresInDays on every update, so saving an otherwise
// unchanged job pushes its expiry forward.
type UpdateJobRequest struct {
	ID            uuid.UUID `json:"-"`
	Title         string    `json:"title" validate:"required,max=200"`
	Description   string    `json:"description" validate:"required"`
	Requirements  string    `json:"requirements" validate:"required"`
	Location      string    `json:"location" validate:"required,max=200"`
	SalaryRange   string    `json:"salary_range" validate:"required,max=100"`
	Type          string    `json:"type" validate:"required,max=50"`
	Remote        bool      `json:"remote"`
	Category      string    `json:"category" validate:"required,max=100"`
	Skills        []string  `json:"skills" validate:"required,min=1,dive,min=1"`
	Status        string    `json:"status" validate:"omitempty,oneof=active inactive draft"`
	ExpiresInDays *int      `json:"expires_in_days,omitempty" validate:"omitempty,gt=0,lte=365"`
}

// UpdateJobStatusRequest changes only the lifecycle status. Jobs are never
// hard-deleted; "inactive" is the closest thing to removal.
type UpdateJobStatusRequest struct {
	Status models.JobStatus `json:"status" validate:"required,oneof=active inactive draft"`
}

// ListJobsRequest defines parameters for the public active-jobs listing.
type ListJobsRequest struct {
	Search   string `form:"search" validate:"omitempty,max=200"`
	Type     string `form:"type" validate:"omitempty,max=50"`
	Category string `form:"category" validate:"omitempty,max=100"`
	Remote   *bool  `form:"remote"`
	Limit    int    `form:"limit,default=20" validate:"gte=1,lte=100"`
	Offset   int    `form:"offset,default=0" validate:"gte=0"`
}

// ListCompanyJobsRequest defines parameters for an employer listing the jobs
// of their own company. A zero Limit means no pagination; handlers always
// validate a positive one, the zero form is for internal aggregation.
type ListCompanyJobsRequest struct {
	CompanyID uuid.UUID         `json:"-"`
	Status    *models.JobStatus `form:"status" validate:"omitempty,oneof=active inactive draft"`
	Search    string            `form:"search" validate:"omitempty,max=200"`
	Limit     int               `form:"limit,default=20" validate:"gte=1,lte=100"`
	Offset    int               `form:"offset,default=0" validate:"gte=0"`
}

// JobResponse defines the standard job data returned to the client.
type JobResponse struct {
	ID               uuid.UUID        `json:"id"`
	CompanyID        uuid.UUID        `json:"company_id"`
	CreatedBy        uuid.UUID        `json:"created_by"`
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	Requirements     string           `json:"requirements"`
	Location         string           `json:"location"`
	SalaryRange      string           `json:"salary_range"`
	SalaryMin        *int             `json:"salary_min,omitempty"`
	SalaryMax        *int             `json:"salary_max,omitempty"`
	Type             string           `json:"type"`
	Remote           bool             `json:"remote"`
	Category         string           `json:"category"`
	Skills           []string         `json:"skills"`
	Status           string           `json:"status"`
	ExpiresAt        time.Time        `json:"expires_at"`
	ViewCount        int              `json:"view_count"`
	ApplicationCount *int64           `json:"application_count,omitempty"`
	Company          *CompanyResponse `json:"company,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}
