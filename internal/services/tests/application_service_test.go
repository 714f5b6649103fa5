package services_test

import (
	"context"
	"errors"
	"testing"

	"jobboard-api/internal/mocks"
	"jobboard-api/internal/models"
	"jobboard-api/internal/services"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestApplicationService_Submit(t *testing.T) {
	companyID := uuid.New()
	jobID := uuid.New()

	activeJob := &models.Job{ID: jobID, CompanyID: companyID, Status: models.JobStatusActive}
	inactiveJob := &models.Job{ID: jobID, CompanyID: companyID, Status: models.JobStatusInactive}

	t.Run("Success - Resume Falls Back To Profile", func(t *testing.T) {
		ctx := context.Background()
		profileRepo := new(mocks.ProfileRepository)
		jobRepo := new(mocks.JobRepository)
		appRepo := new(mocks.ApplicationRepository)

		seeker := seekerProfile()
		seeker.ResumeURL = ptr("https://cdn.example.com/resume.pdf")
		profileRepo.On("GetByID", mock.Anything, seeker.ID).Return(seeker, nil).Once()
		jobRepo.On("GetByID", mock.Anything, jobID).Return(activeJob, nil).Once()
		appRepo.On("GetByJobAndApplicant", mock.Anything, jobID, seeker.ID).Return(nil, storage.ErrNotFound).Once()

		var captured *models.Application
		appRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Application")).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*models.Application)
			}).
			Return(&models.Application{ID: uuid.New(), Status: models.StatusPending}, nil).Once()

		svc := services.NewApplicationService(appRepo, jobRepo, profileRepo)
		created, err := svc.Submit(ctx, &dto.SubmitApplicationRequest{
			JobID:       jobID,
			ApplicantID: seeker.ID,
			CoverLetter: "I would be a great fit.",
		})

		require.NoError(t, err)
		require.NotNil(t, created)
		require.NotNil(t, captured)
		assert.Equal(t, models.StatusPending, captured.Status)
		assert.Equal(t, companyID, captured.CompanyID)
		require.NotNil(t, captured.ResumeURL)
		assert.Equal(t, "https://cdn.example.com/resume.pdf", *captured.ResumeURL)
		appRepo.AssertExpectations(t)
	})

	t.Run("Conflict - Already Applied", func(t *testing.T) {
		ctx := context.Background()
		profileRepo := new(mocks.ProfileRepository)
		jobRepo := new(mocks.JobRepository)
		appRepo := new(mocks.ApplicationRepository)

		seeker := seekerProfile()
		profileRepo.On("GetByID", mock.Anything, seeker.ID).Return(seeker, nil).Once()
		jobRepo.On("GetByID", mock.Anything, jobID).Return(activeJob, nil).Once()
		appRepo.On("GetByJobAndApplicant", mock.Anything, jobID, seeker.ID).
			Return(&models.Application{ID: uuid.New()}, nil).Once()

		svc := services.NewApplicationService(appRepo, jobRepo, profileRepo)
		_, err := svc.Submit(ctx, &dto.SubmitApplicationRequest{JobID: jobID, ApplicantID: seeker.ID})

		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrAlreadyApplied))
		appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Conflict - Duplicate Lost The Race", func(t *testing.T) {
		// The pre-check passed but the unique index caught the concurrent insert.
		ctx := context.Background()
		profileRepo := new(mocks.ProfileRepository)
		jobRepo := new(mocks.JobRepository)
		appRepo := new(mocks.ApplicationRepository)

		seeker := seekerProfile()
		profileRepo.On("GetByID", mock.Anything, seeker.ID).Return(seeker, nil).Once()
		jobRepo.On("GetByID", mock.Anything, jobID).Return(activeJob, nil).Once()
		appRepo.On("GetByJobAndApplicant", mock.Anything, jobID, seeker.ID).Return(nil, storage.ErrNotFound).Once()
		appRepo.On("Create", mock.Anything, mock.Anything).Return(nil, storage.ErrDuplicateApplication).Once()

		svc := services.NewApplicationService(appRepo, jobRepo, profileRepo)
		_, err := svc.Submit(ctx, &dto.SubmitApplicationRequest{JobID: jobID, ApplicantID: seeker.ID})

		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrAlreadyApplied))
	})

	t.Run("Conflict - Job Not Active", func(t *testing.T) {
		ctx := context.Background()
		profileRepo := new(mocks.ProfileRepository)
		jobRepo := new(mocks.JobRepository)
		appRepo := new(mocks.ApplicationRepository)

		seeker := seekerProfile()
		profileRepo.On("GetByID", mock.Anything, seeker.ID).Return(seeker, nil).Once()
		jobRepo.On("GetByID", mock.Anything, jobID).Return(inactiveJob, nil).Once()

		svc := services.NewApplicationService(appRepo, jobRepo, profileRepo)
		_, err := svc.Submit(ctx, &dto.SubmitApplicationRequest{JobID: jobID, ApplicantID: seeker.ID})

		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrJobNotOpen))
		appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Forbidden - Employer Cannot Apply", func(t *testing.T) {
		ctx := context.Background()
		profileRepo := new(mocks.ProfileRepository)
		jobRepo := new(mocks.JobRepository)
		appRepo := new(mocks.ApplicationRepository)

		employer := employerProfile(&companyID)
		profileRepo.On("GetByID", mock.Anything, employer.ID).Return(employer, nil).Once()

		svc := services.NewApplicationService(appRepo, jobRepo, profileRepo)
		_, err := svc.Submit(ctx, &dto.SubmitApplicationRequest{JobID: jobID, ApplicantID: employer.ID})

		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
		jobRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestApplicationService_UpdateStatus(t *testing.T) {
	companyID := uuid.New()
	appID := uuid.New()
	storedApp := &models.Application{ID: appID, CompanyID: companyID, Status: models.StatusPending}

	tests := []struct {
		name           string
		rawStatus      string
		expectedStatus models.ApplicationStatus
	}{
		{"Canonical Status", "interviewing", models.StatusInterviewing},
		{"Legacy - new", "new", models.StatusPending},
		{"Legacy - review", "review", models.StatusReviewed},
		{"Legacy - interview", "interview", models.StatusInterviewing},
		{"Legacy - hired", "hired", models.StatusOffered},
		{"Legacy - accepted", "accepted", models.StatusOffered},
		{"Case And Whitespace Folded", "  Offered ", models.StatusOffered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			profileRepo := new(mocks.ProfileRepository)
			appRepo := new(mocks.ApplicationRepository)

			employer := employerProfile(&companyID)
			appRepo.On("GetByID", mock.Anything, appID).Return(storedApp, nil).Once()
			profileRepo.On("GetByID", mock.Anything, employer.ID).Return(employer, nil).Once()
			appRepo.On("UpdateStatus", mock.Anything, appID, tt.expectedStatus, "Good progress").
				Return(&models.Application{ID: appID, Status: tt.expectedStatus, Feedback: "Good progress"}, nil).Once()

			svc := services.NewApplicationService(appRepo, new(mocks.JobRepository), profileRepo)
			updated, err := svc.UpdateStatus(ctx, employer.ID, appID, &dto.UpdateApplicationStatusRequest{
				Status:   tt.rawStatus,
				Feedback: "Good progress",
			})

			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, updated.Status)
			appRepo.AssertExpectations(t)
		})
	}

	t.Run("Unknown Status Rejected Before Any Repo Call", func(t *testing.T) {
		ctx := context.Background()
		appRepo := new(mocks.ApplicationRepository)

		svc := services.NewApplicationService(appRepo, new(mocks.JobRepository), new(mocks.ProfileRepository))
		_, err := svc.UpdateStatus(ctx, uuid.New(), appID, &dto.UpdateApplicationStatusRequest{Status: "ghosted"})

		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrInvalidStatus))
		appRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		appRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Forbidden - Other Company's Employer", func(t *testing.T) {
		ctx := context.Background()
		profileRepo := new(mocks.ProfileRepository)
		appRepo := new(mocks.ApplicationRepository)

		otherCompanyID := uuid.New()
		outsider := employerProfile(&otherCompanyID)
		appRepo.On("GetByID", mock.Anything, appID).Return(storedApp, nil).Once()
		profileRepo.On("GetByID", mock.Anything, outsider.ID).Return(outsider, nil).Once()

		svc := services.NewApplicationService(appRepo, new(mocks.JobRepository), profileRepo)
		_, err := svc.UpdateStatus(ctx, outsider.ID, appID, &dto.UpdateApplicationStatusRequest{Status: "reviewed"})

		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
		appRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestApplicationService_GetByID_Access(t *testing.T) {
	companyID := uuid.New()
	applicantID := uuid.New()
	appID := uuid.New()
	storedApp := &models.Application{ID: appID, CompanyID: companyID, ApplicantID: applicantID}

	t.Run("Applicant Sees Own Application", func(t *testing.T) {
		ctx := context.Background()
		appRepo := new(mocks.ApplicationRepository)
		appRepo.On("GetByID", mock.Anything, appID).Return(storedApp, nil).Once()

		svc := services.NewApplicationService(appRepo, new(mocks.JobRepository), new(mocks.ProfileRepository))
		app, err := svc.GetByID(ctx, applicantID, appID)

		require.NoError(t, err)
		assert.Equal(t, appID, app.ID)
	})

	t.Run("Unrelated Seeker Forbidden", func(t *testing.T) {
		ctx := context.Background()
		appRepo := new(mocks.ApplicationRepository)
		profileRepo := new(mocks.ProfileRepository)

		stranger := seekerProfile()
		appRepo.On("GetByID", mock.Anything, appID).Return(storedApp, nil).Once()
		profileRepo.On("GetByID", mock.Anything, stranger.ID).Return(stranger, nil).Once()

		svc := services.NewApplicationService(appRepo, new(mocks.JobRepository), profileRepo)
		_, err := svc.GetByID(ctx, stranger.ID, appID)

		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
	})

	t.Run("Company Employer Sees Application", func(t *testing.T) {
		ctx := context.Background()
		appRepo := new(mocks.ApplicationRepository)
		profileRepo := new(mocks.ProfileRepository)

		employer := employerProfile(&companyID)
		appRepo.On("GetByID", mock.Anything, appID).Return(storedApp, nil).Once()
		profileRepo.On("GetByID", mock.Anything, employer.ID).Return(employer, nil).Once()

		svc := services.NewApplicationService(appRepo, new(mocks.JobRepository), profileRepo)
		app, err := svc.GetByID(ctx, employer.ID, appID)

		require.NoError(t, err)
		assert.Equal(t, appID, app.ID)
	})
}
