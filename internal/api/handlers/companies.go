package handlers

import (
	"net/http"

	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// CompanyHandler holds the service dependency for company operations
type CompanyHandler struct {
	service   services.CompanyService
	validator *validator.Validate
}

// NewCompanyHandler creates a new CompanyHandler with the given service
func NewCompanyHandler(service services.CompanyService, validate *validator.Validate) *CompanyHandler {
	return &CompanyHandler{service: service, validator: validate}
}

// CreateCompany godoc
// @Summary      Create a company
// @Description  Creates the employer's company and links their profile to it in one step. Each employer can belong to one company.
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        company body      dto.CreateCompanyRequest true "Company details"
// @Success      201  {object}  dto.CompanyResponse "Company created"
// @Failure      400  {object}  map[string]string{error=string} "Bad Request - Invalid input"
// @Failure      403  {object}  map[string]string{error=string} "Forbidden - Not an employer"
// @Failure      409  {object}  map[string]string{error=string} "Conflict - Profile already has a company"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /companies [post]
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dto.CreateCompanyRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	company, err := h.service.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, services.MapCompanyToResponse(company))
}

// GetCompany godoc
// @Summary      Get a company by ID
// @Description  Retrieves a company's public details.
// @Tags         companies
// @Produce      json
// @Param        id   path      string  true  "Company ID" Format(uuid)
// @Success      200  {object}  dto.CompanyResponse "Company"
// @Failure      400  {object}  map[string]string{error=string} "Bad Request - Invalid ID"
// @Failure      404  {object}  map[string]string{error=string} "Company Not Found"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /companies/{id} [get]
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	company, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, services.MapCompanyToResponse(company))
}

// UpdateCompany godoc
// @Summary      Update a company
// @Description  Updates company details. Only employers linked to the company may edit it.
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string                   true "Company ID" Format(uuid)
// @Param        company body      dto.UpdateCompanyRequest true "Fields to update"
// @Success      200  {object}  dto.CompanyResponse "Updated company"
// @Failure      400  {object}  map[string]string{error=string} "Bad Request - Invalid input"
// @Failure      403  {object}  map[string]string{error=string} "Forbidden - Not this company's employer"
// @Failure      404  {object}  map[string]string{error=string} "Company Not Found"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /companies/{id} [put]
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCompanyRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = id

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	company, err := h.service.Update(c.Request.Context(), userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, services.MapCompanyToResponse(company))
}
