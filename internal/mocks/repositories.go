// Package mocks provides testify mock implementations of the storage
// repository interfaces for unit testing the service layer.
package mocks

import (
	"context"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// ProfileRepository is a mock of storage.ProfileRepository.
type ProfileRepository struct {
	mock.Mock
}

func (m *ProfileRepository) Create(ctx context.Context, req *dto.CreateProfileRequest) (*models.Profile, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *ProfileRepository) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *ProfileRepository) Update(ctx context.Context, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *ProfileRepository) SetCompany(ctx context.Context, profileID, companyID uuid.UUID) error {
	args := m.Called(ctx, profileID, companyID)
	return args.Error(0)
}

func (m *ProfileRepository) WithTx(tx pgx.Tx) storage.ProfileRepository {
	args := m.Called(tx)
	return args.Get(0).(storage.ProfileRepository)
}

// CompanyRepository is a mock of storage.CompanyRepository.
type CompanyRepository struct {
	mock.Mock
}

func (m *CompanyRepository) Create(ctx context.Context, req *dto.CreateCompanyRequest) (*models.Company, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *CompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *CompanyRepository) Update(ctx context.Context, req *dto.UpdateCompanyRequest) (*models.Company, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *CompanyRepository) WithTx(tx pgx.Tx) storage.CompanyRepository {
	args := m.Called(tx)
	return args.Get(0).(storage.CompanyRepository)
}

// JobRepository is a mock of storage.JobRepository.
type JobRepository struct {
	mock.Mock
}

func (m *JobRepository) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	args := m.Called(ctx, job)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *JobRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *JobRepository) GetByIDWithCompany(ctx context.Context, id uuid.UUID) (*models.JobWithCompany, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobWithCompany), args.Error(1)
}

func (m *JobRepository) ListActive(ctx context.Context, req *dto.ListJobsRequest) ([]models.JobWithCompany, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.JobWithCompany), args.Error(1)
}

func (m *JobRepository) ListByCompany(ctx context.Context, req *dto.ListCompanyJobsRequest) ([]models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Job), args.Error(1)
}

func (m *JobRepository) Update(ctx context.Context, job *models.Job) (*models.Job, error) {
	args := m.Called(ctx, job)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *JobRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.JobStatus) (*models.Job, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *JobRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *JobRepository) WithTx(tx pgx.Tx) storage.JobRepository {
	args := m.Called(tx)
	return args.Get(0).(storage.JobRepository)
}

// ApplicationRepository is a mock of storage.ApplicationRepository.
type ApplicationRepository struct {
	mock.Mock
}

func (m *ApplicationRepository) Create(ctx context.Context, app *models.Application) (*models.Application, error) {
	args := m.Called(ctx, app)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *ApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *ApplicationRepository) GetByJobAndApplicant(ctx context.Context, jobID, applicantID uuid.UUID) (*models.Application, error) {
	args := m.Called(ctx, jobID, applicantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *ApplicationRepository) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]models.ApplicationDetail, error) {
	args := m.Called(ctx, applicantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ApplicationDetail), args.Error(1)
}

func (m *ApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.Application, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Application), args.Error(1)
}

func (m *ApplicationRepository) ListRecentByCompany(ctx context.Context, companyID uuid.UUID, limit int) ([]models.Application, error) {
	args := m.Called(ctx, companyID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Application), args.Error(1)
}

func (m *ApplicationRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]models.Application, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Application), args.Error(1)
}

func (m *ApplicationRepository) CountByJobIDs(ctx context.Context, jobIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	args := m.Called(ctx, jobIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]int64), args.Error(1)
}

func (m *ApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus, feedback string) (*models.Application, error) {
	args := m.Called(ctx, id, status, feedback)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *ApplicationRepository) WithTx(tx pgx.Tx) storage.ApplicationRepository {
	args := m.Called(tx)
	return args.Get(0).(storage.ApplicationRepository)
}
