package services

import (
	"errors"
	"fmt"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/rs/zerolog/log"
)

// mapRepoError maps storage errors to service errors.
func mapRepoError(err error, operation string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	if errors.Is(err, storage.ErrDuplicateEmail) {
		return fmt.Errorf("%w: %s (duplicate email)", ErrConflict, operation)
	}
	if errors.Is(err, storage.ErrDuplicateApplication) {
		return fmt.Errorf("%w: %s", ErrAlreadyApplied, operation)
	}
	if errors.Is(err, storage.ErrConflict) {
		return fmt.Errorf("%w: %s (%v)", ErrConflict, operation, err)
	}
	log.Error().Err(err).Str("operation", operation).Msg("Unexpected repository error")
	return fmt.Errorf("internal error during %s: %w", operation, err)
}

// MapProfileToResponse converts a models.Profile to a dto.ProfileResponse
func MapProfileToResponse(p *models.Profile) dto.ProfileResponse {
	return dto.ProfileResponse{
		ID:         p.ID,
		Email:      p.Email,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Bio:        p.Bio,
		Skills:     p.Skills,
		Experience: p.Experience,
		ResumeURL:  p.ResumeURL,
		AvatarURL:  p.AvatarURL,
		Role:       string(p.Role),
		CompanyID:  p.CompanyID,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// MapCompanyToResponse converts a models.Company to a dto.CompanyResponse
func MapCompanyToResponse(c *models.Company) dto.CompanyResponse {
	return dto.CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Industry:    c.Industry,
		Size:        c.Size,
		Website:     c.Website,
		LogoURL:     c.LogoURL,
		Location:    c.Location,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// MapJobToResponse converts a models.Job to a dto.JobResponse
func MapJobToResponse(j *models.Job) dto.JobResponse {
	return dto.JobResponse{
		ID:           j.ID,
		CompanyID:    j.CompanyID,
		CreatedBy:    j.CreatedBy,
		Title:        j.Title,
		Description:  j.Description,
		Requirements: j.Requirements,
		Location:     j.Location,
		SalaryRange:  j.SalaryRange,
		SalaryMin:    j.SalaryMin,
		SalaryMax:    j.SalaryMax,
		Type:         j.Type,
		Remote:       j.Remote,
		Category:     j.Category,
		Skills:       j.Skills,
		Status:       string(j.Status),
		ExpiresAt:    j.ExpiresAt,
		ViewCount:    j.ViewCount,
		CreatedAt:    j.CreatedAt,
		UpdatedAt:    j.UpdatedAt,
	}
}

// MapJobWithCompanyToResponse converts a joined job row to a dto.JobResponse
// with the company attached.
func MapJobWithCompanyToResponse(jc *models.JobWithCompany) dto.JobResponse {
	resp := MapJobToResponse(&jc.Job)
	company := MapCompanyToResponse(&jc.Company)
	resp.Company = &company
	return resp
}

// MapJobWithCountToResponse converts a counted job row to a dto.JobResponse.
func MapJobWithCountToResponse(jc *models.JobWithApplicationCount) dto.JobResponse {
	resp := MapJobToResponse(&jc.Job)
	count := jc.ApplicationCount
	resp.ApplicationCount = &count
	return resp
}

// MapApplicationToResponse converts a models.Application to a dto.ApplicationResponse
func MapApplicationToResponse(a *models.Application) dto.ApplicationResponse {
	return dto.ApplicationResponse{
		ID:          a.ID,
		JobID:       a.JobID,
		ApplicantID: a.ApplicantID,
		CompanyID:   a.CompanyID,
		Status:      string(a.Status),
		CoverLetter: a.CoverLetter,
		ResumeURL:   a.ResumeURL,
		Feedback:    a.Feedback,
		MatchScore:  a.MatchScore,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// MapApplicationDetailToResponse converts a joined application row to a
// dto.ApplicationResponse with job and company attached.
func MapApplicationDetailToResponse(d *models.ApplicationDetail) dto.ApplicationResponse {
	resp := MapApplicationToResponse(&d.Application)
	job := MapJobToResponse(&d.Job)
	company := MapCompanyToResponse(&d.Company)
	resp.Job = &job
	resp.Company = &company
	return resp
}
