package handlers

import (
	"net/http"

	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ApplicationHandler holds the service dependency for application operations
type ApplicationHandler struct {
	service   services.ApplicationService
	validator *validator.Validate
}

// NewApplicationHandler creates a new ApplicationHandler with the given service
func NewApplicationHandler(service services.ApplicationService, validate *validator.Validate) *ApplicationHandler {
	return &ApplicationHandler{service: service, validator: validate}
}

// SubmitApplication godoc
// @Summary      Apply to a job
// @Description  Submits one application per job per seeker. The resume URL defaults to the profile's when omitted.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id          path      string                       true "Job ID" Format(uuid)
// @Param        application body      dto.SubmitApplicationRequest true "Application details"
// @Success      201  {object}  dto.ApplicationResponse "Application submitted"
// @Failure      400  {object}  map[string]string{error=string} "Bad Request - Invalid input"
// @Failure      403  {object}  map[string]string{error=string} "Forbidden - Not a job seeker"
// @Failure      404  {object}  map[string]string{error=string} "Job Not Found"
// @Failure      409  {object}  map[string]string{error=string} "Conflict - Already applied or job closed"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /jobs/{id}/applications [post]
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	jobID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.SubmitApplicationRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.JobID = jobID
	req.ApplicantID = userID

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	app, err := h.service.Submit(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, services.MapApplicationToResponse(app))
}

// ListMyApplications godoc
// @Summary      List the caller's applications
// @Description  Lists the seeker's applications, each with its job and company, newest first.
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.ApplicationResponse "Applications with jobs and companies"
// @Failure      401  {object}  map[string]string{error=string} "Unauthorized"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /applications/mine [get]
func (h *ApplicationHandler) ListMyApplications(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	details, err := h.service.ListMine(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := make([]dto.ApplicationResponse, 0, len(details))
	for i := range details {
		resp = append(resp, services.MapApplicationDetailToResponse(&details[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// GetApplication godoc
// @Summary      Get an application by ID
// @Description  Returns an application to its applicant or to an employer of the owning company.
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Application ID" Format(uuid)
// @Success      200  {object}  dto.ApplicationResponse "Application"
// @Failure      400  {object}  map[string]string{error=string} "Bad Request - Invalid ID"
// @Failure      403  {object}  map[string]string{error=string} "Forbidden"
// @Failure      404  {object}  map[string]string{error=string} "Application Not Found"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /applications/{id} [get]
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	app, err := h.service.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, services.MapApplicationToResponse(app))
}

// ListJobApplications godoc
// @Summary      List applications for a job
// @Description  Lists all applications to one of the employer's postings, newest first.
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job ID" Format(uuid)
// @Success      200  {array}   dto.ApplicationResponse "Applications"
// @Failure      400  {object}  map[string]string{error=string} "Bad Request - Invalid ID"
// @Failure      403  {object}  map[string]string{error=string} "Forbidden - Not this job's employer"
// @Failure      404  {object}  map[string]string{error=string} "Job Not Found"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /jobs/{id}/applications [get]
func (h *ApplicationHandler) ListJobApplications(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	jobID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	apps, err := h.service.ListForJob(c.Request.Context(), userID, jobID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		resp = append(resp, services.MapApplicationToResponse(&apps[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateApplicationStatus godoc
// @Summary      Move an application through the workflow
// @Description  Sets a new status with optional feedback. Legacy status spellings are accepted and folded into the canonical vocabulary.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      string                             true "Application ID" Format(uuid)
// @Param        status body      dto.UpdateApplicationStatusRequest true "New status and feedback"
// @Success      200  {object}  dto.ApplicationResponse "Updated application"
// @Failure      400  {object}  map[string]string{error=string} "Bad Request - Unknown status"
// @Failure      403  {object}  map[string]string{error=string} "Forbidden - Not this company's employer"
// @Failure      404  {object}  map[string]string{error=string} "Application Not Found"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /applications/{id}/status [patch]
func (h *ApplicationHandler) UpdateApplicationStatus(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	app, err := h.service.UpdateStatus(c.Request.Context(), userID, id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, services.MapApplicationToResponse(app))
}
