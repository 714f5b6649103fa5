package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Application Request DTOs ---

// SubmitApplicationRequest defines the structure for applying to a job.
// JobID comes from the URL, ApplicantID from the auth context.
type SubmitApplicationRequest struct {
	CoverLetter string  `json:"cover_letter" validate:"omitempty,max=10000"`
	ResumeURL   *string `json:"resume_url,omitempty" validate:"omitempty,url"`

	JobID       uuid.UUID `json:"-"`
	ApplicantID uuid.UUID `json:"-"`
}

// UpdateApplicationStatusRequest defines the structure for an employer moving
// an application through the workflow. Status accepts legacy spellings
// ("new", "interview", "hired") and canonicalizes them; unknown values are a
// validation error, not a silent write.
type UpdateApplicationStatusRequest struct {
	Status   string `json:"status" validate:"required,max=50"`
	Feedback string `json:"feedback" validate:"omitempty,max=10000"`
}

// ApplicationResponse defines the application data returned to the client.
type ApplicationResponse struct {
	ID          uuid.UUID        `json:"id"`
	JobID       uuid.UUID        `json:"job_id"`
	ApplicantID uuid.UUID        `json:"applicant_id"`
	CompanyID   uuid.UUID        `json:"company_id"`
	Status      string           `json:"status"`
	CoverLetter string           `json:"cover_letter"`
	ResumeURL   *string          `json:"resume_url,omitempty"`
	Feedback    string           `json:"feedback"`
	MatchScore  *float64         `json:"match_score,omitempty"`
	Job         *JobResponse     `json:"job,omitempty"`
	Company     *CompanyResponse `json:"company,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
