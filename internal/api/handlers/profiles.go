package handlers

import (
	"net/http"

	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ProfileHandler holds the service dependency for profile operations
type ProfileHandler struct {
	service   services.ProfileService
	validator *validator.Validate
}

// NewProfileHandler creates a new ProfileHandler with the given service
func NewProfileHandler(service services.ProfileService, validate *validator.Validate) *ProfileHandler {
	return &ProfileHandler{service: service, validator: validate}
}

// GetProfile godoc
// @Summary      Get a profile by ID
// @Description  Retrieves a public profile. Email and role are included; the password hash never leaves the server.
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Profile ID" Format(uuid)
// @Success      200  {object}  dto.ProfileResponse "Profile"
// @Failure      400  {object}  map[string]string{error=string} "Bad Request - Invalid ID"
// @Failure      404  {object}  map[string]string{error=string} "Profile Not Found"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /profiles/{id} [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	profile, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, services.MapProfileToResponse(profile))
}

// UpdateProfile godoc
// @Summary      Update the caller's profile
// @Description  Patches the authenticated profile. Only supplied fields change; role and email are immutable.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        profile body      dto.UpdateProfileRequest true "Fields to update"
// @Success      200  {object}  dto.ProfileResponse "Updated profile"
// @Failure      400  {object}  map[string]string{error=string} "Bad Request - Invalid input"
// @Failure      401  {object}  map[string]string{error=string} "Unauthorized"
// @Failure      404  {object}  map[string]string{error=string} "Profile Not Found"
// @Failure      500  {object}  map[string]string{error=string} "Internal Server Error"
// @Router       /profiles/me [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req dto.UpdateProfileRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	// The target is always the caller; the body cannot redirect the update.
	req.ID = userID

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	profile, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, services.MapProfileToResponse(profile))
}
