package handlers

import (
	"net/http"

	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// AuthHandler holds the service dependency for authentication operations
type AuthHandler struct {
	service   services.AuthService
	validator *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given service
func NewAuthHandler(service services.AuthService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{service: service, validator: validate}
}

// Register godoc
// @Summary      Register a new account
// @Description  Creates a profile with the chosen role and returns a signed token. The role is fixed at signup and cannot be changed later.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        account body      dto.RegisterRequest true "Registration details"
// @Success      201  {object}  dto.AuthResponse "Account created"
// @Failure      400  {object}  map[string]string{error=string} "Bad Request - Invalid input"
// @Failure      409  {object}  map[string]string{error=string} "Conflict - Email already registered"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	profile, token, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Token:   token,
		Profile: services.MapProfileToResponse(profile),
	})
}

// Login godoc
// @Summary      Log in
// @Description  Verifies credentials and returns a signed token with the profile.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body      dto.LoginRequest true "Login credentials"
// @Success      200  {object}  dto.AuthResponse "Authenticated"
// @Failure      400  {object}  map[string]string{error=string} "Bad Request - Invalid input"
// @Failure      401  {object}  map[string]string{error=string} "Unauthorized - Bad credentials"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	profile, token, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Token:   token,
		Profile: services.MapProfileToResponse(profile),
	})
}

// Logout godoc
// @Summary      Log out
// @Description  Drops the caller's cached session state. The token itself expires on its own.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      204  {object}  nil "Logged out"
// @Failure      401  {object}  map[string]string{error=string} "Unauthorized"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	if err := h.service.Logout(c.Request.Context(), userID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Me godoc
// @Summary      Get the authenticated profile
// @Description  Returns the profile belonging to the presented token.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ProfileResponse "Profile"
// @Failure      401  {object}  map[string]string{error=string} "Unauthorized"
// @Failure      404  {object}  map[string]string{error=string} "Profile Not Found"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, services.MapProfileToResponse(profile))
}
