package storage

import (
	"context"

	"jobboard-api/internal/models"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProfileRepository defines the interface for profile data operations.
type ProfileRepository interface {
	Create(ctx context.Context, req *dto.CreateProfileRequest) (*models.Profile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	GetByEmail(ctx context.Context, email string) (*models.Profile, error)
	Update(ctx context.Context, req *dto.UpdateProfileRequest) (*models.Profile, error)
	SetCompany(ctx context.Context, profileID, companyID uuid.UUID) error
	WithTx(tx pgx.Tx) ProfileRepository
}

// CompanyRepository defines the interface for company data operations.
type CompanyRepository interface {
	Create(ctx context.Context, req *dto.CreateCompanyRequest) (*models.Company, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error)
	Update(ctx context.Context, req *dto.UpdateCompanyRequest) (*models.Company, error)
	WithTx(tx pgx.Tx) CompanyRepository
}

// JobRepository defines the interface for job data operations.
type JobRepository interface {
	Create(ctx context.Context, job *models.Job) (*models.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error)
	GetByIDWithCompany(ctx context.Context, id uuid.UUID) (*models.JobWithCompany, error)
	ListActive(ctx context.Context, req *dto.ListJobsRequest) ([]models.JobWithCompany, error)
	ListByCompany(ctx context.Context, req *dto.ListCompanyJobsRequest) ([]models.Job, error)
	Update(ctx context.Context, job *models.Job) (*models.Job, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.JobStatus) (*models.Job, error)
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
	WithTx(tx pgx.Tx) JobRepository
}

// ApplicationRepository defines the interface for application data operations.
type ApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) (*models.Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error)
	GetByJobAndApplicant(ctx context.Context, jobID, applicantID uuid.UUID) (*models.Application, error)
	ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]models.ApplicationDetail, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.Application, error)
	ListRecentByCompany(ctx context.Context, companyID uuid.UUID, limit int) ([]models.Application, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]models.Application, error)
	CountByJobIDs(ctx context.Context, jobIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus, feedback string) (*models.Application, error)
	WithTx(tx pgx.Tx) ApplicationRepository
}
