package services

import (
	"context"
	"errors"
	"fmt"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type applicationService struct {
	appRepo     storage.ApplicationRepository
	jobRepo     storage.JobRepository
	profileRepo storage.ProfileRepository
}

// NewApplicationService creates a new instance of ApplicationService.
func NewApplicationService(appRepo storage.ApplicationRepository, jobRepo storage.JobRepository, profileRepo storage.ProfileRepository) ApplicationService {
	return &applicationService{
		appRepo:     appRepo,
		jobRepo:     jobRepo,
		profileRepo: profileRepo,
	}
}

// Submit creates one application per (job, applicant) pair. A second attempt
// for the same pair is a conflict, and the unique index backs this check up
// against races.
func (s *applicationService) Submit(ctx context.Context, req *dto.SubmitApplicationRequest) (*models.Application, error) {
	applicant, err := s.profileRepo.GetByID(ctx, req.ApplicantID)
	if err != nil {
		return nil, mapRepoError(err, "fetching applicant profile")
	}
	if applicant.Role != models.RoleJobSeeker {
		log.Warn().Str("profile_id", req.ApplicantID.String()).Msg("ApplicationService: non-seeker attempted to apply")
		return nil, ErrForbidden
	}

	job, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, mapRepoError(err, "fetching job for application")
	}
	if job.Status != models.JobStatusActive {
		log.Warn().Str("job_id", req.JobID.String()).Str("status", string(job.Status)).Msg("ApplicationService: attempt to apply to non-active job")
		return nil, fmt.Errorf("%w: job status is %s", ErrJobNotOpen, job.Status)
	}

	_, err = s.appRepo.GetByJobAndApplicant(ctx, req.JobID, req.ApplicantID)
	if err == nil {
		log.Warn().Str("job_id", req.JobID.String()).Str("applicant_id", req.ApplicantID.String()).Msg("ApplicationService: duplicate application attempt")
		return nil, ErrAlreadyApplied
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, mapRepoError(err, "checking for existing application")
	}

	resumeURL := req.ResumeURL
	if resumeURL == nil {
		resumeURL = applicant.ResumeURL
	}

	app := &models.Application{
		JobID:       req.JobID,
		ApplicantID: req.ApplicantID,
		CompanyID:   job.CompanyID, // Denormalized for company-wide queries
		Status:      models.StatusPending,
		CoverLetter: req.CoverLetter,
		ResumeURL:   resumeURL,
	}

	created, err := s.appRepo.Create(ctx, app)
	if err != nil {
		return nil, mapRepoError(err, "creating application")
	}

	return created, nil
}

// GetByID returns an application to the applicant or to an employer of the
// owning company; everyone else is forbidden.
func (s *applicationService) GetByID(ctx context.Context, callerID uuid.UUID, id uuid.UUID) (*models.Application, error) {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "fetching application")
	}

	if app.ApplicantID == callerID {
		return app, nil
	}
	if err := s.requireCompanyEmployer(ctx, callerID, app.CompanyID); err != nil {
		return nil, err
	}

	return app, nil
}

func (s *applicationService) ListMine(ctx context.Context, applicantID uuid.UUID) ([]models.ApplicationDetail, error) {
	details, err := s.appRepo.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, mapRepoError(err, "listing applications")
	}
	return details, nil
}

func (s *applicationService) ListForJob(ctx context.Context, callerID uuid.UUID, jobID uuid.UUID) ([]models.Application, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, mapRepoError(err, "fetching job for applications")
	}
	if err := s.requireCompanyEmployer(ctx, callerID, job.CompanyID); err != nil {
		return nil, err
	}

	apps, err := s.appRepo.ListByJob(ctx, jobID)
	if err != nil {
		return nil, mapRepoError(err, "listing applications for job")
	}

	return apps, nil
}

// UpdateStatus moves an application through the workflow. The raw status is
// canonicalized first (legacy spellings fold in, unknown values are
// rejected); the persisted row carries exactly the canonical status and the
// supplied feedback. Any canonical status may follow any other: the workflow
// deliberately has no transition table.
func (s *applicationService) UpdateStatus(ctx context.Context, callerID uuid.UUID, id uuid.UUID, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	status, err := models.CanonicalStatus(req.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "fetching application for status update")
	}
	if err := s.requireCompanyEmployer(ctx, callerID, app.CompanyID); err != nil {
		return nil, err
	}

	updated, err := s.appRepo.UpdateStatus(ctx, id, status, req.Feedback)
	if err != nil {
		return nil, mapRepoError(err, "updating application status")
	}

	return updated, nil
}

// requireCompanyEmployer checks that the caller is an employer belonging to
// the given company.
func (s *applicationService) requireCompanyEmployer(ctx context.Context, callerID uuid.UUID, companyID uuid.UUID) error {
	caller, err := s.profileRepo.GetByID(ctx, callerID)
	if err != nil {
		return mapRepoError(err, "fetching caller profile")
	}
	if caller.Role != models.RoleEmployer || caller.CompanyID == nil || *caller.CompanyID != companyID {
		log.Warn().Str("profile_id", callerID.String()).Str("company_id", companyID.String()).Msg("ApplicationService: forbidden application access")
		return ErrForbidden
	}
	return nil
}
