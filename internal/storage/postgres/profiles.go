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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

const profileColumns = `id, email, password_hash, first_name, last_name, bio, skills, experience,
	resume_url, avatar_url, role, company_id, created_at, updated_at`

// ProfileRepo implements the storage.ProfileRepository interface using PostgreSQL.
type ProfileRepo struct {
	db Querier
}

// NewProfileRepo creates a new ProfileRepo.
func NewProfileRepo(db *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{db: db}
}

// WithTx creates a new ProfileRepo bound to the transaction.
func (r *ProfileRepo) WithTx(tx pgx.Tx) storage.ProfileRepository {
	return &ProfileRepo{db: tx}
}

// Compile-time check to ensure ProfileRepo implements ProfileRepository
var _ storage.ProfileRepository = (*ProfileRepo)(nil)

func scanProfile(row pgx.Row) (*models.Profile, error) {
	var p models.Profile
	err := row.Scan(
		&p.ID,
		&p.Email,
		&p.PasswordHash,
		&p.FirstName,
		&p.LastName,
		&p.Bio,
		&p.Skills,
		&p.Experience,
		&p.ResumeURL,
		&p.AvatarURL,
		&p.Role,
		&p.CompanyID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new profile at sign-up. The role is written once here and
// has no update path in this repository.
func (r *ProfileRepo) Create(ctx context.Context, req *dto.CreateProfileRequest) (*models.Profile, error) {
	id := req.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query := `
		INSERT INTO profiles (id, email, password_hash, first_name, last_name, role, skills, experience, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, '{}', '{}', NOW(), NOW())
		RETURNING ` + profileColumns

	row := r.db.QueryRow(ctx, query,
		id,
		req.Email,
		req.PasswordHash,
		req.FirstName,
		req.LastName,
		req.Role,
	)

	profile, err := scanProfile(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, storage.ErrDuplicateEmail
		}
		log.Error().Err(err).Str("email", req.Email).Msg("Error creating profile")
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return profile, nil
}

// GetByID retrieves a profile by its id.
func (r *ProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

	profile, err := scanProfile(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Error().Err(err).Str("profile_id", id.String()).Msg("Error scanning profile by ID")
		return nil, fmt.Errorf("failed to get profile by ID %s: %w", id, err)
	}

	return profile, nil
}

// GetByEmail retrieves a profile by email, used by login.
func (r *ProfileRepo) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE email = $1`

	profile, err := scanProfile(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Error().Err(err).Str("email", email).Msg("Error scanning profile by email")
		return nil, fmt.Errorf("failed to get profile by email: %w", err)
	}

	return profile, nil
}

// Update modifies the caller-owned profile fields based on non-nil fields in
// the request DTO. Email, role and company_id are not touched here.
func (r *ProfileRepo) Update(ctx context.Context, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	var setClauses []string
	args := []interface{}{}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.FirstName != nil {
		addSet("first_name", *req.FirstName)
	}
	if req.LastName != nil {
		addSet("last_name", *req.LastName)
	}
	if req.Bio != nil {
		addSet("bio", *req.Bio)
	}
	if req.Skills != nil {
		addSet("skills", *req.Skills)
	}
	if req.Experience != nil {
		addSet("experience", *req.Experience)
	}
	if req.ResumeURL != nil {
		addSet("resume_url", *req.ResumeURL)
	}
	if req.AvatarURL != nil {
		addSet("avatar_url", *req.AvatarURL)
	}

	if len(setClauses) == 0 {
		return r.GetByID(ctx, req.ID)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, req.ID)

	query := fmt.Sprintf(`UPDATE profiles SET %s WHERE id = $%d RETURNING `+profileColumns,
		strings.Join(setClauses, ", "), len(args))

	profile, err := scanProfile(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Error().Err(err).Str("profile_id", req.ID.String()).Msg("Error updating profile")
		return nil, fmt.Errorf("failed to update profile %s: %w", req.ID, err)
	}

	return profile, nil
}

// SetCompany points a profile at a company. Called inside the company
// creation transaction so the company row and the reference commit together.
func (r *ProfileRepo) SetCompany(ctx context.Context, profileID, companyID uuid.UUID) error {
	query := `UPDATE profiles SET company_id = $1, updated_at = NOW() WHERE id = $2`

	tag, err := r.db.Exec(ctx, query, companyID, profileID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return fmt.Errorf("failed to set company: invalid company ID: %w", storage.ErrConflict)
		}
		log.Error().Err(err).Str("profile_id", profileID.String()).Msg("Error setting profile company")
		return fmt.Errorf("failed to set company for profile %s: %w", profileID, err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	return nil
}
