package routes

import (
	"jobboard-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterCompanyRoutes registers all routes related to companies.
// Reads are public; writes require an authenticated employer.
func RegisterCompanyRoutes(
	rg *gin.RouterGroup,
	companyHandler *handlers.CompanyHandler,
	authMiddleware gin.HandlerFunc,
	employerOnly gin.HandlerFunc,
) {
	companies := rg.Group("/companies")
	{
		companies.GET("/:id", companyHandler.GetCompany)
		companies.POST("", authMiddleware, employerOnly, companyHandler.CreateCompany)
		companies.PUT("/:id", authMiddleware, employerOnly, companyHandler.UpdateCompany)
	}
}
