package services

import (
	"context"
	"errors"
	"time"

	"jobboard-api/internal/models"
	"jobboard-api/internal/salary"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// defaultExpiryDays is how long a posting stays visible when the employer
// does not pick a duration.
const defaultExpiryDays = 30

type jobService struct {
	jobRepo     storage.JobRepository
	appRepo     storage.ApplicationRepository
	profileRepo storage.ProfileRepository
}

// NewJobService creates a new instance of JobService.
func NewJobService(jobRepo storage.JobRepository, appRepo storage.ApplicationRepository, profileRepo storage.ProfileRepository) JobService {
	return &jobService{
		jobRepo:     jobRepo,
		appRepo:     appRepo,
		profileRepo: profileRepo,
	}
}

// requireEmployerWithCompany authorizes job management: the caller must be an
// employer and must already belong to a company. Employers without a company
// get ErrCompanyRequired, which the API surfaces as "set up your company
// first" instead of letting the posting flow continue.
func (s *jobService) requireEmployerWithCompany(ctx context.Context, callerID uuid.UUID) (*models.Profile, error) {
	caller, err := s.profileRepo.GetByID(ctx, callerID)
	if err != nil {
		return nil, mapRepoError(err, "fetching caller profile")
	}
	if caller.Role != models.RoleEmployer {
		return nil, ErrForbidden
	}
	if caller.CompanyID == nil {
		return nil, ErrCompanyRequired
	}
	return caller, nil
}

// expiresAt computes the posting expiry from an optional day count.
func expiresAt(now time.Time, days *int) time.Time {
	d := defaultExpiryDays
	if days != nil {
		d = *days
	}
	return now.AddDate(0, 0, d)
}

// applySalary parses the free-text salary into numeric bounds. Parsing is
// best-effort: unparseable text is kept verbatim and the bounds stay NULL.
func applySalary(job *models.Job, text string) {
	job.SalaryRange = text
	job.SalaryMin = nil
	job.SalaryMax = nil

	r, err := salary.ParseRange(text)
	if err != nil {
		log.Debug().Str("salary_range", text).Msg("JobService: salary text did not parse, storing without bounds")
		return
	}
	job.SalaryMin = &r.Min
	job.SalaryMax = &r.Max
}

func (s *jobService) Create(ctx context.Context, callerID uuid.UUID, req *dto.CreateJobRequest) (*models.Job, error) {
	caller, err := s.requireEmployerWithCompany(ctx, callerID)
	if err != nil {
		return nil, err
	}

	status := models.JobStatusActive
	if req.Status != "" {
		status = models.JobStatus(req.Status)
	}

	job := &models.Job{
		CompanyID:    *caller.CompanyID,
		CreatedBy:    callerID,
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Location:     req.Location,
		Type:         req.Type,
		Remote:       req.Remote,
		Category:     req.Category,
		Skills:       req.Skills,
		Status:       status,
		ExpiresAt:    expiresAt(time.Now(), req.ExpiresInDays),
	}
	applySalary(job, req.SalaryRange)

	created, err := s.jobRepo.Create(ctx, job)
	if err != nil {
		log.Error().Err(err).Str("company_id", caller.CompanyID.String()).Msg("JobService: Error creating job")
		return nil, mapRepoError(err, "creating job")
	}

	return created, nil
}

// GetByID returns a job with its company and bumps the view counter. A
// failed bump is logged and ignored; the read must not fail because of it.
func (s *jobService) GetByID(ctx context.Context, id uuid.UUID) (*models.JobWithCompany, error) {
	jc, err := s.jobRepo.GetByIDWithCompany(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "fetching job")
	}

	if err := s.jobRepo.IncrementViewCount(ctx, id); err != nil {
		log.Warn().Err(err).Str("job_id", id.String()).Msg("JobService: failed to bump view count")
	} else {
		jc.ViewCount++
	}

	return jc, nil
}

func (s *jobService) ListActive(ctx context.Context, req *dto.ListJobsRequest) ([]models.JobWithCompany, error) {
	jobs, err := s.jobRepo.ListActive(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "listing active jobs")
	}
	return jobs, nil
}

// ListCompanyJobs returns the caller's company jobs with application totals
// attached from a single grouped count query.
func (s *jobService) ListCompanyJobs(ctx context.Context, callerID uuid.UUID, req *dto.ListCompanyJobsRequest) ([]models.JobWithApplicationCount, error) {
	caller, err := s.requireEmployerWithCompany(ctx, callerID)
	if err != nil {
		return nil, err
	}
	req.CompanyID = *caller.CompanyID

	jobs, err := s.jobRepo.ListByCompany(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "listing company jobs")
	}

	jobIDs := make([]uuid.UUID, 0, len(jobs))
	for _, job := range jobs {
		jobIDs = append(jobIDs, job.ID)
	}
	counts, err := s.appRepo.CountByJobIDs(ctx, jobIDs)
	if err != nil {
		return nil, mapRepoError(err, "counting applications")
	}

	counted := make([]models.JobWithApplicationCount, 0, len(jobs))
	for _, job := range jobs {
		counted = append(counted, models.JobWithApplicationCount{
			Job:              job,
			ApplicationCount: counts[job.ID],
		})
	}

	return counted, nil
}

// Update rewrites a job's editable fields. CreatedBy never changes, and the
// expiry is recomputed from the supplied duration on every save, so even an
// otherwise unchanged edit pushes the expiration forward.
func (s *jobService) Update(ctx context.Context, callerID uuid.UUID, req *dto.UpdateJobRequest) (*models.Job, error) {
	caller, err := s.requireEmployerWithCompany(ctx, callerID)
	if err != nil {
		return nil, err
	}

	existing, err := s.jobRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapRepoError(err, "fetching job for update")
	}
	if existing.CompanyID != *caller.CompanyID {
		log.Warn().Str("job_id", req.ID.String()).Str("profile_id", callerID.String()).Msg("JobService: forbidden job update attempt")
		return nil, ErrForbidden
	}

	job := *existing
	job.Title = req.Title
	job.Description = req.Description
	job.Requirements = req.Requirements
	job.Location = req.Location
	job.Type = req.Type
	job.Remote = req.Remote
	job.Category = req.Category
	job.Skills = req.Skills
	job.ExpiresAt = expiresAt(time.Now(), req.ExpiresInDays)
	if req.Status != "" {
		job.Status = models.JobStatus(req.Status)
	}
	applySalary(&job, req.SalaryRange)

	updated, err := s.jobRepo.Update(ctx, &job)
	if err != nil {
		return nil, mapRepoError(err, "updating job")
	}

	return updated, nil
}

// UpdateStatus is the only removal path: jobs go inactive, they are never
// hard-deleted.
func (s *jobService) UpdateStatus(ctx context.Context, callerID uuid.UUID, jobID uuid.UUID, status models.JobStatus) (*models.Job, error) {
	caller, err := s.requireEmployerWithCompany(ctx, callerID)
	if err != nil {
		return nil, err
	}

	existing, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, mapRepoError(err, "fetching job for status update")
	}
	if existing.CompanyID != *caller.CompanyID {
		log.Warn().Str("job_id", jobID.String()).Str("profile_id", callerID.String()).Msg("JobService: forbidden job status update attempt")
		return nil, ErrForbidden
	}

	updated, err := s.jobRepo.UpdateStatus(ctx, jobID, status)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, mapRepoError(err, "updating job status")
	}

	return updated, nil
}
