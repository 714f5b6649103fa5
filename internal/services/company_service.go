package services

import (
	"context"
	"fmt"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

type companyService struct {
	companyRepo storage.CompanyRepository
	profileRepo storage.ProfileRepository
	db          *pgxpool.Pool // For the create+link transaction
}

// NewCompanyService creates a new instance of CompanyService.
func NewCompanyService(db *pgxpool.Pool, companyRepo storage.CompanyRepository, profileRepo storage.ProfileRepository) CompanyService {
	return &companyService{
		companyRepo: companyRepo,
		profileRepo: profileRepo,
		db:          db,
	}
}

// Create inserts the company and points the caller's profile at it inside one
// transaction, so a failed profile patch can never leave an orphaned company.
func (s *companyService) Create(ctx context.Context, callerID uuid.UUID, req *dto.CreateCompanyRequest) (*models.Company, error) {
	caller, err := s.profileRepo.GetByID(ctx, callerID)
	if err != nil {
		return nil, mapRepoError(err, "fetching caller profile")
	}
	if caller.Role != models.RoleEmployer {
		log.Warn().Str("profile_id", callerID.String()).Msg("CompanyService: non-employer attempted company creation")
		return nil, ErrForbidden
	}
	if caller.CompanyID != nil {
		return nil, fmt.Errorf("%w: profile already belongs to a company", ErrConflict)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		log.Error().Err(err).Msg("CompanyService: Error beginning transaction")
		return nil, fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx) // Rollback if anything fails

	company, err := s.companyRepo.WithTx(tx).Create(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "creating company")
	}

	if err := s.profileRepo.WithTx(tx).SetCompany(ctx, callerID, company.ID); err != nil {
		return nil, mapRepoError(err, "linking profile to company")
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error().Err(err).Msg("CompanyService: Error committing transaction")
		return nil, fmt.Errorf("internal error committing company creation: %w", err)
	}

	return company, nil
}

func (s *companyService) GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "fetching company")
	}
	return company, nil
}

// Update allows any profile referencing the company to edit it. There is no
// owner and no lock; concurrent edits are last-write-wins.
func (s *companyService) Update(ctx context.Context, callerID uuid.UUID, req *dto.UpdateCompanyRequest) (*models.Company, error) {
	caller, err := s.profileRepo.GetByID(ctx, callerID)
	if err != nil {
		return nil, mapRepoError(err, "fetching caller profile")
	}
	if caller.CompanyID == nil || *caller.CompanyID != req.ID {
		log.Warn().Str("profile_id", callerID.String()).Str("company_id", req.ID.String()).Msg("CompanyService: forbidden company update attempt")
		return nil, ErrForbidden
	}

	company, err := s.companyRepo.Update(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "updating company")
	}
	return company, nil
}
