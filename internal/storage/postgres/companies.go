package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

const companyColumns = `id, name, description, industry, size, website, logo_url, location, created_at, updated_at`

// CompanyRepo implements the storage.CompanyRepository interface using PostgreSQL.
type CompanyRepo struct {
	db Querier
}

// NewCompanyRepo creates a new CompanyRepo.
func NewCompanyRepo(db *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{db: db}
}

// WithTx creates a new CompanyRepo bound to the transaction.
func (r *CompanyRepo) WithTx(tx pgx.Tx) storage.CompanyRepository {
	return &CompanyRepo{db: tx}
}

var _ storage.CompanyRepository = (*CompanyRepo)(nil)

func scanCompany(row pgx.Row) (*models.Company, error) {
	var c models.Company
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.Industry,
		&c.Size,
		&c.Website,
		&c.LogoURL,
		&c.Location,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new company.
func (r *CompanyRepo) Create(ctx context.Context, req *dto.CreateCompanyRequest) (*models.Company, error) {
	query := `
		INSERT INTO companies (id, name, description, industry, size, website, logo_url, location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING ` + companyColumns

	row := r.db.QueryRow(ctx, query,
		uuid.New(),
		req.Name,
		req.Description,
		req.Industry,
		req.Size,
		req.Website,
		req.LogoURL,
		req.Location,
	)

	company, err := scanCompany(row)
	if err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("Error creating company")
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	return company, nil
}

// GetByID retrieves a company by its id.
func (r *CompanyRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`

	company, err := scanCompany(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Error().Err(err).Str("company_id", id.String()).Msg("Error scanning company by ID")
		return nil, fmt.Errorf("failed to get company by ID %s: %w", id, err)
	}

	return company, nil
}

// Update modifies a company based on non-nil fields in the request DTO.
// There is no ownership column and no locking: any profile referencing the
// company may write, and the last write wins.
func (r *CompanyRepo) Update(ctx context.Context, req *dto.UpdateCompanyRequest) (*models.Company, error) {
	var setClauses []string
	args := []interface{}{}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Name != nil {
		addSet("name", *req.Name)
	}
	if req.Description != nil {
		addSet("description", *req.Description)
	}
	if req.Industry != nil {
		addSet("industry", *req.Industry)
	}
	if req.Size != nil {
		addSet("size", *req.Size)
	}
	if req.Website != nil {
		addSet("website", *req.Website)
	}
	if req.LogoURL != nil {
		addSet("logo_url", *req.LogoURL)
	}
	if req.Location != nil {
		addSet("location", *req.Location)
	}

	if len(setClauses) == 0 {
		return r.GetByID(ctx, req.ID)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, req.ID)

	query := fmt.Sprintf(`UPDATE companies SET %s WHERE id = $%d RETURNING `+companyColumns,
		strings.Join(setClauses, ", "), len(args))

	company, err := scanCompany(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Error().Err(err).Str("company_id", req.ID.String()).Msg("Error updating company")
		return nil, fmt.Errorf("failed to update company %s: %w", req.ID, err)
	}

	return company, nil
}
