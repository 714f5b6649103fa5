package middleware

import (
	"net/http"

	"jobboard-api/internal/cache"
	"jobboard-api/internal/models"
	"jobboard-api/internal/services"
	"jobboard-api/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RequireRole gates a route group to one role. The role comes from the cache
// when warm; on a miss the profile row is consulted and the cache refilled.
// The database row is authoritative, the cache only saves the lookup.
func RequireRole(role models.Role, roles services.RoleStore, profiles storage.ProfileRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := GetUserIDFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		entry, err := roles.Get(c.Request.Context(), userID)
		if err != nil {
			profile, err := profiles.GetByID(c.Request.Context(), userID)
			if err != nil {
				log.Warn().Err(err).Str("profile_id", userID.String()).Msg("Role middleware: failed to resolve role")
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid user"})
				return
			}
			entry = &cache.Entry{Role: profile.Role, CompanyID: profile.CompanyID}
			if err := roles.Set(c.Request.Context(), userID, entry); err != nil {
				// The request proceeds with the role read from the database.
				log.Warn().Err(err).Str("profile_id", userID.String()).Msg("Role middleware: failed to cache role")
			}
		}

		if entry.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		c.Next()
	}
}
