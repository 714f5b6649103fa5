package services

import (
	"context"

	"jobboard-api/internal/models"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
)

// AuthService defines the interface for sign-up, sign-in and sign-out.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.Profile, string, error) // Returns profile and token
	Login(ctx context.Context, req *dto.LoginRequest) (*models.Profile, string, error)
	Logout(ctx context.Context, profileID uuid.UUID) error
	GetProfile(ctx context.Context, profileID uuid.UUID) (*models.Profile, error)
}

// ProfileService defines the interface for profile business logic.
type ProfileService interface {
	Get(ctx context.Context, profileID uuid.UUID) (*models.Profile, error)
	Update(ctx context.Context, req *dto.UpdateProfileRequest) (*models.Profile, error)
}

// CompanyService defines the interface for company business logic.
type CompanyService interface {
	// Create creates the company and points the caller's profile at it in a
	// single transaction.
	Create(ctx context.Context, callerID uuid.UUID, req *dto.CreateCompanyRequest) (*models.Company, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error)
	Update(ctx context.Context, callerID uuid.UUID, req *dto.UpdateCompanyRequest) (*models.Company, error)
}

// JobService defines the interface for job lifecycle business logic.
type JobService interface {
	Create(ctx context.Context, callerID uuid.UUID, req *dto.CreateJobRequest) (*models.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.JobWithCompany, error)
	ListActive(ctx context.Context, req *dto.ListJobsRequest) ([]models.JobWithCompany, error)
	ListCompanyJobs(ctx context.Context, callerID uuid.UUID, req *dto.ListCompanyJobsRequest) ([]models.JobWithApplicationCount, error)
	Update(ctx context.Context, callerID uuid.UUID, req *dto.UpdateJobRequest) (*models.Job, error)
	UpdateStatus(ctx context.Context, callerID uuid.UUID, jobID uuid.UUID, status models.JobStatus) (*models.Job, error)
}

// ApplicationService defines the interface for the application workflow.
type ApplicationService interface {
	Submit(ctx context.Context, req *dto.SubmitApplicationRequest) (*models.Application, error)
	GetByID(ctx context.Context, callerID uuid.UUID, id uuid.UUID) (*models.Application, error)
	ListMine(ctx context.Context, applicantID uuid.UUID) ([]models.ApplicationDetail, error)
	ListForJob(ctx context.Context, callerID uuid.UUID, jobID uuid.UUID) ([]models.Application, error)
	UpdateStatus(ctx context.Context, callerID uuid.UUID, id uuid.UUID, req *dto.UpdateApplicationStatusRequest) (*models.Application, error)
}

// DashboardService defines the interface for dashboard aggregation.
type DashboardService interface {
	EmployerDashboard(ctx context.Context, callerID uuid.UUID) (*dto.EmployerDashboardResponse, error)
	SeekerDashboard(ctx context.Context, callerID uuid.UUID) (*dto.SeekerDashboardResponse, error)
}
