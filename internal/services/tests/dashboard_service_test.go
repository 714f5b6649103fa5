package services_test

import (
	"context"
	"errors"
	"testing"

	"jobboard-api/internal/mocks"
	"jobboard-api/internal/models"
	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReduceEmployerStats(t *testing.T) {
	jobs := []models.Job{
		{Status: models.JobStatusActive},
		{Status: models.JobStatusActive},
		{Status: models.JobStatusInactive},
		{Status: models.JobStatusDraft},
	}
	apps := []models.Application{
		{Status: models.StatusPending},
		{Status: models.StatusPending},
		{Status: models.StatusReviewed},
		{Status: models.StatusInterviewing},
		{Status: models.StatusRejected},
	}

	stats := services.ReduceEmployerStats(jobs, apps)

	assert.Equal(t, 4, stats.TotalJobs)
	assert.Equal(t, 2, stats.ActiveJobs)
	assert.Equal(t, 5, stats.TotalApplications)
	assert.Equal(t, 2, stats.NewApplications)
	assert.Equal(t, 1, stats.InterviewsScheduled)
}

func TestReduceEmployerStats_Empty(t *testing.T) {
	stats := services.ReduceEmployerStats(nil, nil)
	assert.Equal(t, dto.EmployerStats{}, stats)
}

func TestReduceSeekerStats(t *testing.T) {
	apps := []models.ApplicationDetail{
		{Application: models.Application{Status: models.StatusPending}},
		{Application: models.Application{Status: models.StatusInterviewing}},
		{Application: models.Application{Status: models.StatusInterviewing}},
		{Application: models.Application{Status: models.StatusOffered}},
		{Application: models.Application{Status: models.StatusRejected}},
		{Application: models.Application{Status: models.StatusReviewed}},
	}

	stats := services.ReduceSeekerStats(apps)

	assert.Equal(t, 6, stats.TotalApplications)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 2, stats.Interviewing)
	assert.Equal(t, 1, stats.Offered)
	assert.Equal(t, 1, stats.Rejected)
}

func TestProfileCompletion(t *testing.T) {
	tests := []struct {
		name     string
		profile  models.Profile
		expected int
	}{
		{
			name:     "Empty Profile",
			profile:  models.Profile{},
			expected: 0,
		},
		{
			name: "Half Complete",
			profile: models.Profile{
				FirstName: "Sam",
				LastName:  "Seeker",
				Bio:       "Ten years of Go",
			},
			expected: 50,
		},
		{
			name: "Fully Complete",
			profile: models.Profile{
				FirstName:  "Sam",
				LastName:   "Seeker",
				Bio:        "Ten years of Go",
				Skills:     []string{"go"},
				Experience: []string{"acme"},
				ResumeURL:  ptr("https://cdn.example.com/resume.pdf"),
			},
			expected: 100,
		},
		{
			name: "Empty Resume String Does Not Count",
			profile: models.Profile{
				FirstName: "Sam",
				ResumeURL: ptr(""),
			},
			expected: 17,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, services.ProfileCompletion(&tt.profile))
		})
	}
}

func TestDashboardService_EmployerDashboard(t *testing.T) {
	t.Run("Forbidden - Seeker", func(t *testing.T) {
		ctx := context.Background()
		profileRepo := new(mocks.ProfileRepository)
		seeker := seekerProfile()
		profileRepo.On("GetByID", mock.Anything, seeker.ID).Return(seeker, nil).Once()

		svc := services.NewDashboardService(new(mocks.JobRepository), new(mocks.ApplicationRepository), profileRepo, new(mocks.CompanyRepository))
		_, err := svc.EmployerDashboard(ctx, seeker.ID)

		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
	})

	t.Run("No Company Yields Empty Dashboard", func(t *testing.T) {
		ctx := context.Background()
		profileRepo := new(mocks.ProfileRepository)
		jobRepo := new(mocks.JobRepository)
		employer := employerProfile(nil)
		profileRepo.On("GetByID", mock.Anything, employer.ID).Return(employer, nil).Once()

		svc := services.NewDashboardService(jobRepo, new(mocks.ApplicationRepository), profileRepo, new(mocks.CompanyRepository))
		resp, err := svc.EmployerDashboard(ctx, employer.ID)

		require.NoError(t, err)
		assert.Nil(t, resp.Company)
		assert.Empty(t, resp.Jobs)
		assert.Empty(t, resp.RecentApplicants)
		assert.Equal(t, dto.EmployerStats{}, resp.Stats)
		jobRepo.AssertNotCalled(t, "ListByCompany", mock.Anything, mock.Anything)
	})

	t.Run("Aggregates Company View", func(t *testing.T) {
		ctx := context.Background()
		companyID := uuid.New()
		profileRepo := new(mocks.ProfileRepository)
		jobRepo := new(mocks.JobRepository)
		appRepo := new(mocks.ApplicationRepository)
		companyRepo := new(mocks.CompanyRepository)

		employer := employerProfile(&companyID)
		jobA := models.Job{ID: uuid.New(), CompanyID: companyID, Status: models.JobStatusActive}
		jobB := models.Job{ID: uuid.New(), CompanyID: companyID, Status: models.JobStatusInactive}
		apps := []models.Application{
			{ID: uuid.New(), Status: models.StatusPending},
			{ID: uuid.New(), Status: models.StatusInterviewing},
		}

		profileRepo.On("GetByID", mock.Anything, employer.ID).Return(employer, nil).Once()
		companyRepo.On("GetByID", mock.Anything, companyID).
			Return(&models.Company{ID: companyID, Name: "Acme"}, nil).Once()
		// Stats reduce over the whole company, so the jobs fetch must not
		// be paginated.
		jobRepo.On("ListByCompany", mock.Anything, mock.MatchedBy(func(req *dto.ListCompanyJobsRequest) bool {
			return req.CompanyID == companyID && req.Limit == 0
		})).Return([]models.Job{jobA, jobB}, nil).Once()
		appRepo.On("ListByCompany", mock.Anything, companyID).Return(apps, nil).Once()
		appRepo.On("ListRecentByCompany", mock.Anything, companyID, 5).Return(apps, nil).Once()
		appRepo.On("CountByJobIDs", mock.Anything, []uuid.UUID{jobA.ID, jobB.ID}).
			Return(map[uuid.UUID]int64{jobA.ID: 2}, nil).Once()

		svc := services.NewDashboardService(jobRepo, appRepo, profileRepo, companyRepo)
		resp, err := svc.EmployerDashboard(ctx, employer.ID)

		require.NoError(t, err)
		require.NotNil(t, resp.Company)
		assert.Equal(t, "Acme", resp.Company.Name)
		require.Len(t, resp.Jobs, 2)
		require.NotNil(t, resp.Jobs[0].ApplicationCount)
		assert.Equal(t, int64(2), *resp.Jobs[0].ApplicationCount)
		assert.Len(t, resp.RecentApplicants, 2)
		assert.Equal(t, 2, resp.Stats.TotalJobs)
		assert.Equal(t, 1, resp.Stats.ActiveJobs)
		assert.Equal(t, 2, resp.Stats.TotalApplications)
		assert.Equal(t, 1, resp.Stats.NewApplications)
		assert.Equal(t, 1, resp.Stats.InterviewsScheduled)
	})
}

func TestDashboardService_SeekerDashboard(t *testing.T) {
	t.Run("Forbidden - Employer", func(t *testing.T) {
		ctx := context.Background()
		companyID := uuid.New()
		profileRepo := new(mocks.ProfileRepository)
		employer := employerProfile(&companyID)
		profileRepo.On("GetByID", mock.Anything, employer.ID).Return(employer, nil).Once()

		svc := services.NewDashboardService(new(mocks.JobRepository), new(mocks.ApplicationRepository), profileRepo, new(mocks.CompanyRepository))
		_, err := svc.SeekerDashboard(ctx, employer.ID)

		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
	})

	t.Run("Aggregates Seeker View", func(t *testing.T) {
		ctx := context.Background()
		profileRepo := new(mocks.ProfileRepository)
		jobRepo := new(mocks.JobRepository)
		appRepo := new(mocks.ApplicationRepository)

		seeker := seekerProfile()
		seeker.FirstName = "Sam"
		seeker.LastName = "Seeker"
		seeker.Bio = "Ten years of Go"

		details := []models.ApplicationDetail{
			{Application: models.Application{ID: uuid.New(), Status: models.StatusPending}},
			{Application: models.Application{ID: uuid.New(), Status: models.StatusOffered}},
		}
		recommended := []models.JobWithCompany{
			{Job: models.Job{ID: uuid.New(), Title: "Backend Engineer"}},
		}

		profileRepo.On("GetByID", mock.Anything, seeker.ID).Return(seeker, nil).Once()
		appRepo.On("ListByApplicant", mock.Anything, seeker.ID).Return(details, nil).Once()
		jobRepo.On("ListActive", mock.Anything, mock.MatchedBy(func(req *dto.ListJobsRequest) bool {
			return req.Limit == 5
		})).Return(recommended, nil).Once()

		svc := services.NewDashboardService(jobRepo, appRepo, profileRepo, new(mocks.CompanyRepository))
		resp, err := svc.SeekerDashboard(ctx, seeker.ID)

		require.NoError(t, err)
		assert.Len(t, resp.Applications, 2)
		assert.Len(t, resp.RecommendedJobs, 1)
		assert.Equal(t, 50, resp.ProfileCompletion)
		assert.Equal(t, 2, resp.Stats.TotalApplications)
		assert.Equal(t, 1, resp.Stats.Pending)
		assert.Equal(t, 1, resp.Stats.Offered)
	})
}
