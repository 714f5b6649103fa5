package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// --- Role Enum ---
//
// Role is assigned once at sign-up and never changes afterwards; no
// role-change operation exists anywhere in the API.
type Role string

const (
	RoleJobSeeker Role = "job-seeker"
	RoleEmployer  Role = "employer"
)

// Scan implements the sql.Scanner interface for Role
func (r *Role) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan Role: value is not string or []byte")
		}
	}
	v := Role(strVal)
	switch v {
	case RoleJobSeeker, RoleEmployer:
		*r = v
		return nil
	default:
		return fmt.Errorf("invalid Role value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for Role
func (r Role) Value() (driver.Value, error) {
	return string(r), nil
}

// --- Job Status Enum ---
type JobStatus string

const (
	JobStatusActive   JobStatus = "active"
	JobStatusInactive JobStatus = "inactive"
	JobStatusDraft    JobStatus = "draft"
)

// Scan implements the sql.Scanner interface for JobStatus
func (js *JobStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan JobStatus: value is not string or []byte")
		}
	}
	v := JobStatus(strVal)
	switch v {
	case JobStatusActive, JobStatusInactive, JobStatusDraft:
		*js = v
		return nil
	default:
		return fmt.Errorf("invalid JobStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for JobStatus
func (js JobStatus) Value() (driver.Value, error) {
	return string(js), nil
}

// --- Application Status Enum ---
//
// The canonical set is closed. Historical data (and older clients) used a
// second vocabulary on the employer side ("new", "interview", "hired",
// "accepted"); CanonicalStatus folds those in, anything else is an error.
type ApplicationStatus string

const (
	StatusPending      ApplicationStatus = "pending"
	StatusReviewed     ApplicationStatus = "reviewed"
	StatusInterviewing ApplicationStatus = "interviewing"
	StatusOffered      ApplicationStatus = "offered"
	StatusRejected     ApplicationStatus = "rejected"
)

// legacyStatuses maps retired status spellings to their canonical value.
var legacyStatuses = map[string]ApplicationStatus{
	"new":       StatusPending,
	"review":    StatusReviewed,
	"interview": StatusInterviewing,
	"hired":     StatusOffered,
	"accepted":  StatusOffered,
}

// CanonicalStatus normalizes a raw status string (any casing, legacy
// vocabulary included) to a canonical ApplicationStatus. Unknown values are
// rejected rather than stored as free text.
func CanonicalStatus(raw string) (ApplicationStatus, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	s := ApplicationStatus(normalized)
	switch s {
	case StatusPending, StatusReviewed, StatusInterviewing, StatusOffered, StatusRejected:
		return s, nil
	}
	if mapped, ok := legacyStatuses[normalized]; ok {
		return mapped, nil
	}
	return "", fmt.Errorf("unknown application status: %q", raw)
}

// Scan implements the sql.Scanner interface for ApplicationStatus
func (as *ApplicationStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan ApplicationStatus: value is not string or []byte")
		}
	}
	v, err := CanonicalStatus(strVal)
	if err != nil {
		return err
	}
	*as = v
	return nil
}

// Value implements the driver.Valuer interface for ApplicationStatus
func (as ApplicationStatus) Value() (driver.Value, error) {
	return string(as), nil
}

// Profile is the identity record: the authenticated principal plus its
// job-board profile. Role gates which dashboard and operations are allowed.
type Profile struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	FirstName    string     `json:"first_name" db:"first_name"`
	LastName     string     `json:"last_name" db:"last_name"`
	Bio          string     `json:"bio" db:"bio"`
	Skills       []string   `json:"skills" db:"skills"`
	Experience   []string   `json:"experience" db:"experience"`
	ResumeURL    *string    `json:"resume_url,omitempty" db:"resume_url"`
	AvatarURL    *string    `json:"avatar_url,omitempty" db:"avatar_url"`
	Role         Role       `json:"role" db:"role"`
	CompanyID    *uuid.UUID `json:"company_id,omitempty" db:"company_id"` // Pointer for NULLable UUID
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// Company is shared by every employer profile whose company_id points at it.
// There is no single owner and no locking; concurrent edits are
// last-write-wins by the database's plain UPDATE semantics.
type Company struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Industry    string    `json:"industry" db:"industry"`
	Size        string    `json:"size" db:"size"`
	Website     string    `json:"website" db:"website"`
	LogoURL     *string   `json:"logo_url,omitempty" db:"logo_url"`
	Location    string    `json:"location" db:"location"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Job belongs to exactly one Company. Jobs are never hard-deleted; the
// lifecycle is expressed entirely through Status.
type Job struct {
	ID           uuid.UUID `json:"id" db:"id"`
	CompanyID    uuid.UUID `json:"company_id" db:"company_id"`
	CreatedBy    uuid.UUID `json:"created_by" db:"created_by"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	Requirements string    `json:"requirements" db:"requirements"`
	Location     string    `json:"location" db:"location"`
	SalaryRange  string    `json:"salary_range" db:"salary_range"`
	SalaryMin    *int      `json:"salary_min,omitempty" db:"salary_min"` // NULL when the free text did not parse
	SalaryMax    *int      `json:"salary_max,omitempty" db:"salary_max"`
	Type         string    `json:"type" db:"type"`
	Remote       bool      `json:"remote" db:"remote"`
	Category     string    `json:"category" db:"category"`
	Skills       []string  `json:"skills" db:"skills"`
	Status       JobStatus `json:"status" db:"status"`
	ExpiresAt    time.Time `json:"expires_at" db:"expires_at"`
	ViewCount    int       `json:"view_count" db:"view_count"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Application belongs to exactly one Job and one applicant Profile.
// CompanyID is denormalized from the job for query convenience.
// MatchScore is stored but never computed anywhere in this codebase.
type Application struct {
	ID          uuid.UUID         `json:"id" db:"id"`
	JobID       uuid.UUID         `json:"job_id" db:"job_id"`
	ApplicantID uuid.UUID         `json:"applicant_id" db:"applicant_id"`
	CompanyID   uuid.UUID         `json:"company_id" db:"company_id"`
	Status      ApplicationStatus `json:"status" db:"status"`
	CoverLetter string            `json:"cover_letter" db:"cover_letter"`
	ResumeURL   *string           `json:"resume_url,omitempty" db:"resume_url"`
	Feedback    string            `json:"feedback" db:"feedback"`
	MatchScore  *float64          `json:"match_score,omitempty" db:"match_score"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at" db:"updated_at"`
}

// JobWithCompany is a job row joined with its company for listings.
type JobWithCompany struct {
	Job
	Company Company `json:"company"`
}

// ApplicationDetail is an application joined with its job and company, the
// shape the job seeker's application list renders from.
type ApplicationDetail struct {
	Application
	Job     Job     `json:"job"`
	Company Company `json:"company"`
}

// JobWithApplicationCount pairs a job with its application total, produced by
// a single grouped count query rather than one count per job.
type JobWithApplicationCount struct {
	Job
	ApplicationCount int64 `json:"application_count"`
}
