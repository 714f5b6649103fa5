package services

import (
	"context"
	"errors"
	"math"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// recentApplicantsLimit bounds the "latest applicants" panel.
const recentApplicantsLimit = 5

// recommendedJobsLimit bounds the recommended-jobs panel. Recommendation is
// just "newest active jobs"; there is no scoring.
const recommendedJobsLimit = 5

type dashboardService struct {
	jobRepo     storage.JobRepository
	appRepo     storage.ApplicationRepository
	profileRepo storage.ProfileRepository
	companyRepo storage.CompanyRepository
}

// NewDashboardService creates a new instance of DashboardService.
func NewDashboardService(jobRepo storage.JobRepository, appRepo storage.ApplicationRepository, profileRepo storage.ProfileRepository, companyRepo storage.CompanyRepository) DashboardService {
	return &dashboardService{
		jobRepo:     jobRepo,
		appRepo:     appRepo,
		profileRepo: profileRepo,
		companyRepo: companyRepo,
	}
}

// ReduceEmployerStats computes the employer dashboard statistics in one pass
// over each collection. An empty company yields all zeros.
func ReduceEmployerStats(jobs []models.Job, apps []models.Application) dto.EmployerStats {
	stats := dto.EmployerStats{
		TotalJobs:         len(jobs),
		TotalApplications: len(apps),
	}
	for _, job := range jobs {
		if job.Status == models.JobStatusActive {
			stats.ActiveJobs++
		}
	}
	for _, app := range apps {
		switch app.Status {
		case models.StatusPending:
			stats.NewApplications++
		case models.StatusInterviewing:
			stats.InterviewsScheduled++
		}
	}
	return stats
}

// ReduceSeekerStats computes the job seeker statistics in one pass.
func ReduceSeekerStats(apps []models.ApplicationDetail) dto.SeekerStats {
	stats := dto.SeekerStats{TotalApplications: len(apps)}
	for _, app := range apps {
		switch app.Status {
		case models.StatusPending:
			stats.Pending++
		case models.StatusInterviewing:
			stats.Interviewing++
		case models.StatusOffered:
			stats.Offered++
		case models.StatusRejected:
			stats.Rejected++
		}
	}
	return stats
}

// profileCompletionFields is the number of profile fields that count towards
// the completion percentage.
const profileCompletionFields = 6

// ProfileCompletion scores how filled-in a profile is, as a percentage.
func ProfileCompletion(p *models.Profile) int {
	score := 0
	if p.FirstName != "" {
		score++
	}
	if p.LastName != "" {
		score++
	}
	if p.Bio != "" {
		score++
	}
	if len(p.Skills) > 0 {
		score++
	}
	if len(p.Experience) > 0 {
		score++
	}
	if p.ResumeURL != nil && *p.ResumeURL != "" {
		score++
	}
	return int(math.Round(float64(score) / profileCompletionFields * 100))
}

// EmployerDashboard aggregates the employer view: company, jobs with
// application counts, the most recent applicants, and the stats reducer.
func (s *dashboardService) EmployerDashboard(ctx context.Context, callerID uuid.UUID) (*dto.EmployerDashboardResponse, error) {
	caller, err := s.profileRepo.GetByID(ctx, callerID)
	if err != nil {
		return nil, mapRepoError(err, "fetching caller profile")
	}
	if caller.Role != models.RoleEmployer {
		return nil, ErrForbidden
	}

	resp := &dto.EmployerDashboardResponse{
		Jobs:             []dto.JobResponse{},
		RecentApplicants: []dto.ApplicationResponse{},
	}

	// An employer who has not created a company yet gets an empty dashboard,
	// which the client renders as the company-setup prompt.
	if caller.CompanyID == nil {
		return resp, nil
	}
	companyID := *caller.CompanyID

	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, mapRepoError(err, "fetching company")
	}
	if company != nil {
		c := MapCompanyToResponse(company)
		resp.Company = &c
	}

	// Zero limit: the stats reducer needs every job, the same window the
	// unbounded application listing below covers.
	jobs, err := s.jobRepo.ListByCompany(ctx, &dto.ListCompanyJobsRequest{CompanyID: companyID})
	if err != nil {
		return nil, mapRepoError(err, "listing company jobs")
	}

	apps, err := s.appRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, mapRepoError(err, "listing company applications")
	}

	recent, err := s.appRepo.ListRecentByCompany(ctx, companyID, recentApplicantsLimit)
	if err != nil {
		// The panel is auxiliary; the dashboard still renders without it.
		log.Warn().Err(err).Str("company_id", companyID.String()).Msg("DashboardService: failed to load recent applicants")
		recent = []models.Application{}
	}

	jobIDs := make([]uuid.UUID, 0, len(jobs))
	for _, job := range jobs {
		jobIDs = append(jobIDs, job.ID)
	}
	counts, err := s.appRepo.CountByJobIDs(ctx, jobIDs)
	if err != nil {
		return nil, mapRepoError(err, "counting applications")
	}

	for _, job := range jobs {
		counted := models.JobWithApplicationCount{Job: job, ApplicationCount: counts[job.ID]}
		resp.Jobs = append(resp.Jobs, MapJobWithCountToResponse(&counted))
	}
	for _, app := range recent {
		resp.RecentApplicants = append(resp.RecentApplicants, MapApplicationToResponse(&app))
	}
	resp.Stats = ReduceEmployerStats(jobs, apps)

	return resp, nil
}

// SeekerDashboard aggregates the job seeker view: applications with job and
// company, recommended jobs, profile completion, and the stats reducer.
func (s *dashboardService) SeekerDashboard(ctx context.Context, callerID uuid.UUID) (*dto.SeekerDashboardResponse, error) {
	caller, err := s.profileRepo.GetByID(ctx, callerID)
	if err != nil {
		return nil, mapRepoError(err, "fetching caller profile")
	}
	if caller.Role != models.RoleJobSeeker {
		return nil, ErrForbidden
	}

	details, err := s.appRepo.ListByApplicant(ctx, callerID)
	if err != nil {
		return nil, mapRepoError(err, "listing applications")
	}

	recommended, err := s.jobRepo.ListActive(ctx, &dto.ListJobsRequest{Limit: recommendedJobsLimit})
	if err != nil {
		log.Warn().Err(err).Str("profile_id", callerID.String()).Msg("DashboardService: failed to load recommended jobs")
		recommended = []models.JobWithCompany{}
	}

	resp := &dto.SeekerDashboardResponse{
		Applications:      []dto.ApplicationResponse{},
		RecommendedJobs:   []dto.JobResponse{},
		ProfileCompletion: ProfileCompletion(caller),
		Stats:             ReduceSeekerStats(details),
	}
	for _, d := range details {
		resp.Applications = append(resp.Applications, MapApplicationDetailToResponse(&d))
	}
	for _, jc := range recommended {
		resp.RecommendedJobs = append(resp.RecommendedJobs, MapJobWithCompanyToResponse(&jc))
	}

	return resp, nil
}
