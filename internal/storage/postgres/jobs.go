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

const jobColumns = `id, company_id, created_by, title, description, requirements, location,
	salary_range, salary_min, salary_max, type, remote, category, skills, status,
	expires_at, view_count, created_at, updated_at`

// JobRepo implements the storage.JobRepository interface using PostgreSQL.
type JobRepo struct {
	db Querier
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db *pgxpool.Pool) *JobRepo {
	return &JobRepo{db: db}
}

// WithTx creates a new JobRepo bound to the transaction.
func (r *JobRepo) WithTx(tx pgx.Tx) storage.JobRepository {
	return &JobRepo{db: tx}
}

// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

func scanJob(row pgx.Row) (*models.Job, error) {
	var j models.Job
	err := row.Scan(
		&j.ID,
		&j.CompanyID,
		&j.CreatedBy,
		&j.Title,
		&j.Description,
		&j.Requirements,
		&j.Location,
		&j.SalaryRange,
		&j.SalaryMin,
		&j.SalaryMax,
		&j.Type,
		&j.Remote,
		&j.Category,
		&j.Skills,
		&j.Status,
		&j.ExpiresAt,
		&j.ViewCount,
		&j.CreatedAt,
		&j.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// Create saves a new job posting.
func (r *JobRepo) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	query := `
		INSERT INTO jobs (id, company_id, created_by, title, description, requirements, location,
			salary_range, salary_min, salary_max, type, remote, category, skills, status,
			expires_at, view_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, 0, NOW(), NOW())
		RETURNING ` + jobColumns

	row := r.db.QueryRow(ctx, query,
		uuid.New(),
		job.CompanyID,
		job.CreatedBy,
		job.Title,
		job.Description,
		job.Requirements,
		job.Location,
		job.SalaryRange,
		job.SalaryMin,
		job.SalaryMax,
		job.Type,
		job.Remote,
		job.Category,
		job.Skills,
		job.Status,
		job.ExpiresAt,
	)

	createdJob, err := scanJob(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			log.Error().Err(err).Str("company_id", job.CompanyID.String()).Msg("Error creating job: foreign key violation")
			return nil, fmt.Errorf("failed to create job: invalid company ID: %w", storage.ErrConflict)
		}
		log.Error().Err(err).Msg("Error creating job")
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	return createdJob, nil
}

// GetByID retrieves a specific job by its ID.
func (r *JobRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	job, err := scanJob(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Error().Err(err).Str("job_id", id.String()).Msg("Error scanning job by ID")
		return nil, fmt.Errorf("failed to get job by ID %s: %w", id, err)
	}

	return job, nil
}

const jobWithCompanySelect = `
	SELECT j.id, j.company_id, j.created_by, j.title, j.description, j.requirements, j.location,
		j.salary_range, j.salary_min, j.salary_max, j.type, j.remote, j.category, j.skills, j.status,
		j.expires_at, j.view_count, j.created_at, j.updated_at,
		c.id, c.name, c.description, c.industry, c.size, c.website, c.logo_url, c.location,
		c.created_at, c.updated_at
	FROM jobs j
	JOIN companies c ON c.id = j.company_id`

func scanJobWithCompany(row pgx.Row) (*models.JobWithCompany, error) {
	var jc models.JobWithCompany
	err := row.Scan(
		&jc.ID,
		&jc.CompanyID,
		&jc.CreatedBy,
		&jc.Title,
		&jc.Description,
		&jc.Requirements,
		&jc.Location,
		&jc.SalaryRange,
		&jc.SalaryMin,
		&jc.SalaryMax,
		&jc.Type,
		&jc.Remote,
		&jc.Category,
		&jc.Skills,
		&jc.Status,
		&jc.ExpiresAt,
		&jc.ViewCount,
		&jc.CreatedAt,
		&jc.UpdatedAt,
		&jc.Company.ID,
		&jc.Company.Name,
		&jc.Company.Description,
		&jc.Company.Industry,
		&jc.Company.Size,
		&jc.Company.Website,
		&jc.Company.LogoURL,
		&jc.Company.Location,
		&jc.Company.CreatedAt,
		&jc.Company.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &jc, nil
}

// GetByIDWithCompany retrieves a job joined with its company.
func (r *JobRepo) GetByIDWithCompany(ctx context.Context, id uuid.UUID) (*models.JobWithCompany, error) {
	query := jobWithCompanySelect + ` WHERE j.id = $1`

	jc, err := scanJobWithCompany(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Error().Err(err).Str("job_id", id.String()).Msg("Error scanning job with company")
		return nil, fmt.Errorf("failed to get job with company %s: %w", id, err)
	}

	return jc, nil
}

// ListActive retrieves the public listing of active jobs, newest first, with
// the text search and facet filters applied in SQL.
func (r *JobRepo) ListActive(ctx context.Context, req *dto.ListJobsRequest) ([]models.JobWithCompany, error) {
	conditions := []string{"j.status = $1"}
	args := []interface{}{models.JobStatusActive}

	if req.Search != "" {
		args = append(args, "%"+req.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(j.title ILIKE $%d OR j.description ILIKE $%d)", len(args), len(args)))
	}
	if req.Type != "" {
		args = append(args, req.Type)
		conditions = append(conditions, fmt.Sprintf("j.type = $%d", len(args)))
	}
	if req.Category != "" {
		args = append(args, req.Category)
		conditions = append(conditions, fmt.Sprintf("j.category = $%d", len(args)))
	}
	if req.Remote != nil {
		args = append(args, *req.Remote)
		conditions = append(conditions, fmt.Sprintf("j.remote = $%d", len(args)))
	}

	query := jobWithCompanySelect + " WHERE " + strings.Join(conditions, " AND ") + " ORDER BY j.created_at DESC"
	args = append(args, req.Limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, req.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Error().Err(err).Msg("Error querying active jobs")
		return nil, fmt.Errorf("failed to query active jobs: %w", err)
	}
	defer rows.Close()

	jobs := []models.JobWithCompany{}
	for rows.Next() {
		jc, err := scanJobWithCompany(rows)
		if err != nil {
			log.Error().Err(err).Msg("Error scanning active job row")
			return nil, fmt.Errorf("failed to scan active jobs: %w", err)
		}
		jobs = append(jobs, *jc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read active jobs: %w", err)
	}

	return jobs, nil
}

// ListByCompany retrieves all jobs for a company, newest first, with optional
// status and text filters.
func (r *JobRepo) ListByCompany(ctx context.Context, req *dto.ListCompanyJobsRequest) ([]models.Job, error) {
	baseQuery := `SELECT ` + jobColumns + ` FROM jobs`
	conditions := []string{"company_id = $1"}
	args := []interface{}{req.CompanyID}

	if req.Status != nil {
		args = append(args, *req.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if req.Search != "" {
		args = append(args, "%"+req.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}

	query := buildListQuery(baseQuery, conditions, &args, req.Offset, req.Limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		log.Error().Err(err).Str("company_id", req.CompanyID.String()).Msg("Error querying jobs by company")
		return nil, fmt.Errorf("failed to query jobs by company: %w", err)
	}
	defer rows.Close()

	jobs := []models.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			log.Error().Err(err).Str("company_id", req.CompanyID.String()).Msg("Error scanning job row")
			return nil, fmt.Errorf("failed to scan jobs by company: %w", err)
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read jobs by company: %w", err)
	}

	return jobs, nil
}

// Update rewrites the editable fields of a job. CreatedBy and CompanyID are
// never part of the SET list.
func (r *JobRepo) Update(ctx context.Context, job *models.Job) (*models.Job, error) {
	query := `
		UPDATE jobs
		SET title = $2, description = $3, requirements = $4, location = $5,
			salary_range = $6, salary_min = $7, salary_max = $8, type = $9, remote = $10,
			category = $11, skills = $12, status = $13, expires_at = $14, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + jobColumns

	row := r.db.QueryRow(ctx, query,
		job.ID,
		job.Title,
		job.Description,
		job.Requirements,
		job.Location,
		job.SalaryRange,
		job.SalaryMin,
		job.SalaryMax,
		job.Type,
		job.Remote,
		job.Category,
		job.Skills,
		job.Status,
		job.ExpiresAt,
	)

	updatedJob, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Error().Err(err).Str("job_id", job.ID.String()).Msg("Error updating job")
		return nil, fmt.Errorf("failed to update job %s: %w", job.ID, err)
	}

	return updatedJob, nil
}

// UpdateStatus changes only the lifecycle status of a job.
func (r *JobRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.JobStatus) (*models.Job, error) {
	query := `UPDATE jobs SET status = $2, updated_at = NOW() WHERE id = $1 RETURNING ` + jobColumns

	job, err := scanJob(r.db.QueryRow(ctx, query, id, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Error().Err(err).Str("job_id", id.String()).Msg("Error updating job status")
		return nil, fmt.Errorf("failed to update job status %s: %w", id, err)
	}

	return job, nil
}

// IncrementViewCount bumps the denormalized view counter. Fire-and-forget
// from the caller's perspective: a failed bump never fails the page.
func (r *JobRepo) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE jobs SET view_count = view_count + 1 WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, id); err != nil {
		log.Error().Err(err).Str("job_id", id.String()).Msg("Error incrementing job view count")
		return fmt.Errorf("failed to increment view count for job %s: %w", id, err)
	}

	return nil
}
