package postgres

import (
	"context"
	"errors"
	"fmt"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

const applicationColumns = `id, job_id, applicant_id, company_id, status, cover_letter,
	resume_url, feedback, match_score, created_at, updated_at`

// ApplicationRepo implements the storage.ApplicationRepository interface using PostgreSQL.
type ApplicationRepo struct {
	db Querier
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(db *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

// WithTx creates a new ApplicationRepo bound to the transaction.
func (r *ApplicationRepo) WithTx(tx pgx.Tx) storage.ApplicationRepository {
	return &ApplicationRepo{db: tx}
}

var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

func scanApplication(row pgx.Row) (*models.Application, error) {
	var a models.Application
	err := row.Scan(
		&a.ID,
		&a.JobID,
		&a.ApplicantID,
		&a.CompanyID,
		&a.Status,
		&a.CoverLetter,
		&a.ResumeURL,
		&a.Feedback,
		&a.MatchScore,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create saves a new application. The unique (job_id, applicant_id) index
// backs up the service-level duplicate check.
func (r *ApplicationRepo) Create(ctx context.Context, app *models.Application) (*models.Application, error) {
	query := `
		INSERT INTO applications (id, job_id, applicant_id, company_id, status, cover_letter, resume_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + applicationColumns

	row := r.db.QueryRow(ctx, query,
		uuid.New(),
		app.JobID,
		app.ApplicantID,
		app.CompanyID,
		app.Status,
		app.CoverLetter,
		app.ResumeURL,
	)

	created, err := scanApplication(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return nil, storage.ErrDuplicateApplication
			case pgForeignKeyViolation:
				return nil, fmt.Errorf("failed to create application: invalid job or applicant: %w", storage.ErrConflict)
			}
		}
		log.Error().Err(err).Str("job_id", app.JobID.String()).Msg("Error creating application")
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	return created, nil
}

// GetByID retrieves a specific application by its ID.
func (r *ApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`

	app, err := scanApplication(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Error().Err(err).Str("application_id", id.String()).Msg("Error scanning application by ID")
		return nil, fmt.Errorf("failed to get application by ID %s: %w", id, err)
	}

	return app, nil
}

// GetByJobAndApplicant retrieves the application a profile submitted for a
// job, used by the duplicate check. Returns storage.ErrNotFound when none.
func (r *ApplicationRepo) GetByJobAndApplicant(ctx context.Context, jobID, applicantID uuid.UUID) (*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE job_id = $1 AND applicant_id = $2`

	app, err := scanApplication(r.db.QueryRow(ctx, query, jobID, applicantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Error().Err(err).Str("job_id", jobID.String()).Msg("Error scanning application by job and applicant")
		return nil, fmt.Errorf("failed to get application by job and applicant: %w", err)
	}

	return app, nil
}

const applicationDetailSelect = `
	SELECT a.id, a.job_id, a.applicant_id, a.company_id, a.status, a.cover_letter,
		a.resume_url, a.feedback, a.match_score, a.created_at, a.updated_at,
		j.id, j.company_id, j.created_by, j.title, j.description, j.requirements, j.location,
		j.salary_range, j.salary_min, j.salary_max, j.type, j.remote, j.category, j.skills, j.status,
		j.expires_at, j.view_count, j.created_at, j.updated_at,
		c.id, c.name, c.description, c.industry, c.size, c.website, c.logo_url, c.location,
		c.created_at, c.updated_at
	FROM applications a
	JOIN jobs j ON j.id = a.job_id
	JOIN companies c ON c.id = a.company_id`

func scanApplicationDetail(row pgx.Row) (*models.ApplicationDetail, error) {
	var d models.ApplicationDetail
	err := row.Scan(
		&d.ID,
		&d.Application.JobID,
		&d.ApplicantID,
		&d.Application.CompanyID,
		&d.Status,
		&d.CoverLetter,
		&d.Application.ResumeURL,
		&d.Feedback,
		&d.MatchScore,
		&d.Application.CreatedAt,
		&d.Application.UpdatedAt,
		&d.Job.ID,
		&d.Job.CompanyID,
		&d.Job.CreatedBy,
		&d.Job.Title,
		&d.Job.Description,
		&d.Job.Requirements,
		&d.Job.Location,
		&d.Job.SalaryRange,
		&d.Job.SalaryMin,
		&d.Job.SalaryMax,
		&d.Job.Type,
		&d.Job.Remote,
		&d.Job.Category,
		&d.Job.Skills,
		&d.Job.Status,
		&d.Job.ExpiresAt,
		&d.Job.ViewCount,
		&d.Job.CreatedAt,
		&d.Job.UpdatedAt,
		&d.Company.ID,
		&d.Company.Name,
		&d.Company.Description,
		&d.Company.Industry,
		&d.Company.Size,
		&d.Company.Website,
		&d.Company.LogoURL,
		&d.Company.Location,
		&d.Company.CreatedAt,
		&d.Company.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListByApplicant retrieves all applications of a job seeker, newest first,
// joined with their jobs and companies for display.
func (r *ApplicationRepo) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]models.ApplicationDetail, error) {
	query := applicationDetailSelect + ` WHERE a.applicant_id = $1 ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query, applicantID)
	if err != nil {
		log.Error().Err(err).Str("applicant_id", applicantID.String()).Msg("Error querying applications by applicant")
		return nil, fmt.Errorf("failed to query applications by applicant: %w", err)
	}
	defer rows.Close()

	details := []models.ApplicationDetail{}
	for rows.Next() {
		d, err := scanApplicationDetail(rows)
		if err != nil {
			log.Error().Err(err).Str("applicant_id", applicantID.String()).Msg("Error scanning application detail row")
			return nil, fmt.Errorf("failed to scan applications by applicant: %w", err)
		}
		details = append(details, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read applications by applicant: %w", err)
	}

	return details, nil
}

func (r *ApplicationRepo) listApplications(ctx context.Context, query string, args ...any) ([]models.Application, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := []models.Application{}
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *a)
	}
	return apps, rows.Err()
}

// ListByJob retrieves all applications for a job, newest first.
func (r *ApplicationRepo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE job_id = $1 ORDER BY created_at DESC`

	apps, err := r.listApplications(ctx, query, jobID)
	if err != nil {
		log.Error().Err(err).Str("job_id", jobID.String()).Msg("Error querying applications by job")
		return nil, fmt.Errorf("failed to query applications by job: %w", err)
	}

	return apps, nil
}

// ListByCompany retrieves every application across all of a company's jobs.
// One query feeds the dashboard reducer; there is no per-job fan-out.
func (r *ApplicationRepo) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE company_id = $1 ORDER BY created_at DESC`

	apps, err := r.listApplications(ctx, query, companyID)
	if err != nil {
		log.Error().Err(err).Str("company_id", companyID.String()).Msg("Error querying applications by company")
		return nil, fmt.Errorf("failed to query applications by company: %w", err)
	}

	return apps, nil
}

// ListRecentByCompany retrieves the latest applications for a company.
func (r *ApplicationRepo) ListRecentByCompany(ctx context.Context, companyID uuid.UUID, limit int) ([]models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2`

	apps, err := r.listApplications(ctx, query, companyID, limit)
	if err != nil {
		log.Error().Err(err).Str("company_id", companyID.String()).Msg("Error querying recent applications")
		return nil, fmt.Errorf("failed to query recent applications: %w", err)
	}

	return apps, nil
}

// CountByJobIDs returns application totals for a set of jobs in one grouped
// query. Jobs with no applications are simply absent from the map.
func (r *ApplicationRepo) CountByJobIDs(ctx context.Context, jobIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(jobIDs))
	if len(jobIDs) == 0 {
		return counts, nil
	}

	query := `SELECT job_id, COUNT(*) FROM applications WHERE job_id = ANY($1) GROUP BY job_id`

	rows, err := r.db.Query(ctx, query, jobIDs)
	if err != nil {
		log.Error().Err(err).Msg("Error counting applications by job")
		return nil, fmt.Errorf("failed to count applications by job: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var jobID uuid.UUID
		var count int64
		if err := rows.Scan(&jobID, &count); err != nil {
			return nil, fmt.Errorf("failed to scan application count: %w", err)
		}
		counts[jobID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read application counts: %w", err)
	}

	return counts, nil
}

// UpdateStatus persists exactly the selected status and feedback, and bumps
// updated_at.
func (r *ApplicationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus, feedback string) (*models.Application, error) {
	query := `
		UPDATE applications
		SET status = $2, feedback = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + applicationColumns

	app, err := scanApplication(r.db.QueryRow(ctx, query, id, status, feedback))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Error().Err(err).Str("application_id", id.String()).Msg("Error updating application status")
		return nil, fmt.Errorf("failed to update application status %s: %w", id, err)
	}

	return app, nil
}
