package handlers

import (
	"net/http"

	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/models"
	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// JobHandler holds the service dependency for job operations
type JobHandler struct {
	service   services.JobService
	validator *validator.Validate
}

// NewJobHandler creates a new JobHandler with the given service
func NewJobHandler(service services.JobService, validate *validator.Validate) *JobHandler {
	return &JobHandler{service: service, validator: validate}
}

// ListJobs godoc
// @Summary      Browse active jobs
// @Description  Lists active postings with their companies, newest first. Supports text search and type, category, and remote filters.
// @Tags         jobs
// @Produce      json
// @Param        search   query     string  false "Search in title and description"
// @Param        type     query     string  false "Employment type filter"
// @Param        category query     string  false "Category filter"
// @Param        remote   query     bool    false "Remote-only filter"
// @Param        limit    query     int     false "Page size" default(20)
// @Param        offset   query     int     false "Page offset" default(0)
// @Success      200  {array}   dto.JobResponse "Active jobs"
// @Failure      400  {object}  map[string]string{error=string} "Bad Request - Invalid filters"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	var req dto.ListJobsRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	jobs, err := h.service.ListActive(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		resp = append(resp, services.MapJobWithCompanyToResponse(&jobs[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// GetJob godoc
// @Summary      Get a job by ID
// @Description  Retrieves a posting with its company and counts the view.
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID" Format(uuid)
// @Success      200  {object}  dto.JobResponse "Job with company"
// @Failure      400  {object}  map[string]string{error=string} "Bad Request - Invalid ID"
// @Failure      404  {object}  map[string]string{error=string} "Job Not Found"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	job, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, services.MapJobWithCompanyToResponse(job))
}

// ListMyJobs godoc
// @Summary      List the caller's company jobs
// @Description  Lists postings belonging to the employer's company, each with its application count. Optionally filtered by status.
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        status query     string  false "Job status filter" Enums(active, inactive, draft)
// @Param        limit  query     int     false "Page size" default(20)
// @Param        offset query     int     false "Page offset" default(0)
// @Success      200  {array}   dto.JobResponse "Company jobs with application counts"
// @Failure      401  {object}  map[string]string{error=string} "Unauthorized"
// @Failure      403  {object}  map[string]string{error=string} "Forbidden - Not an employer"
// @Failure      409  {object}  map[string]string{error=string} "Conflict - No company yet"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /jobs/mine [get]
func (h *JobHandler) ListMyJobs(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dto.ListCompanyJobsRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	jobs, err := h.service.ListCompanyJobs(c.Request.Context(), userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		resp = append(resp, services.MapJobWithCountToResponse(&jobs[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// CreateJob godoc
// @Summary      Create a job posting
// @Description  Creates a posting for the employer's company. The salary text is parsed into numeric bounds when possible, and the posting expires after 30 days unless a duration is given.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        job  body      dto.CreateJobRequest true "Job details"
// @Success      201  {object}  dto.JobResponse "Job created"
// @Failure      400  {object}  map[string]string{error=string} "Bad Request - Invalid input"
// @Failure      403  {object}  map[string]string{error=string} "Forbidden - Not an employer"
// @Failure      409  {object}  map[string]string{error=string} "Conflict - No company yet"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dto.CreateJobRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	job, err := h.service.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, services.MapJobToResponse(job))
}

// UpdateJob godoc
// @Summary      Update a job posting
// @Description  Rewrites a posting's editable fields. Saving also pushes the expiration forward from now.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string               true "Job ID" Format(uuid)
// @Param        job  body      dto.UpdateJobRequest true "Job fields"
// @Success      200  {object}  dto.JobResponse "Updated job"
// @Failure      400  {object}  map[string]string{error=string} "Bad Request - Invalid input"
// @Failure      403  {object}  map[string]string{error=string} "Forbidden - Not this job's employer"
// @Failure      404  {object}  map[string]string{error=string} "Job Not Found"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /jobs/{id} [put]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateJobRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = id

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	job, err := h.service.Update(c.Request.Context(), userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, services.MapJobToResponse(job))
}

// UpdateJobStatus godoc
// @Summary      Change a job's status
// @Description  Activates, deactivates, or drafts a posting. Deactivation is the removal path; nothing is deleted.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      string                     true "Job ID" Format(uuid)
// @Param        status body      dto.UpdateJobStatusRequest true "New status"
// @Success      200  {object}  dto.JobResponse "Updated job"
// @Failure      400  {object}  map[string]string{error=string} "Bad Request - Invalid status"
// @Failure      403  {object}  map[string]string{error=string} "Forbidden - Not this job's employer"
// @Failure      404  {object}  map[string]string{error=string} "Job Not Found"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /jobs/{id}/status [patch]
func (h *JobHandler) UpdateJobStatus(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateJobStatusRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	job, err := h.service.UpdateStatus(c.Request.Context(), userID, id, models.JobStatus(req.Status))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, services.MapJobToResponse(job))
}
