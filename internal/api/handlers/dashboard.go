package handlers

import (
	"net/http"

	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/services"

	"github.com/gin-gonic/gin"
)

// DashboardHandler holds the service dependency for dashboard aggregation
type DashboardHandler struct {
	service services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler with the given service
func NewDashboardHandler(service services.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// EmployerDashboard godoc
// @Summary      Employer dashboard
// @Description  Aggregates the employer's company, postings with application counts, recent applicants, and summary statistics in one response.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.EmployerDashboardResponse "Employer dashboard"
// @Failure      401  {object}  map[string]string{error=string} "Unauthorized"
// @Failure      403  {object}  map[string]string{error=string} "Forbidden - Not an employer"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /dashboard/employer [get]
func (h *DashboardHandler) EmployerDashboard(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	resp, err := h.service.EmployerDashboard(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SeekerDashboard godoc
// @Summary      Job seeker dashboard
// @Description  Aggregates the seeker's applications, recommended jobs, profile completion, and summary statistics in one response.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.SeekerDashboardResponse "Seeker dashboard"
// @Failure      401  {object}  map[string]string{error=string} "Unauthorized"
// @Failure      403  {object}  map[string]string{error=string} "Forbidden - Not a job seeker"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /dashboard/seeker [get]
func (h *DashboardHandler) SeekerDashboard(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	resp, err := h.service.SeekerDashboard(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
