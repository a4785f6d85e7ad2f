package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hireline/marketplace-api/internal/auth"
	"github.com/hireline/marketplace-api/internal/model"
)

const profileContextKey = "profile"

type ProfileStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Profile, error)
}

// Profile resolves the calling profile from a bearer access token whose
// subject is the profile id, or from a profile_id header for local
// tooling. A request without a resolvable, existing profile is rejected.
func Profile(parser *auth.Parser, profiles ProfileStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		profileID, err := resolveProfileID(c, parser)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		profile, err := profiles.GetByID(c.Request.Context(), profileID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.Set(profileContextKey, *profile)
		c.Next()
	}
}

func resolveProfileID(c *gin.Context, parser *auth.Parser) (uuid.UUID, error) {
	authorization := strings.TrimSpace(c.GetHeader("Authorization"))
	if authorization != "" {
		token := strings.TrimSpace(strings.TrimPrefix(authorization, "Bearer"))
		return parser.ParseProfileID(token)
	}
	return uuid.Parse(strings.TrimSpace(c.GetHeader("profile_id")))
}

func MustProfile(c *gin.Context) (model.Profile, bool) {
	value, exists := c.Get(profileContextKey)
	if !exists {
		return model.Profile{}, false
	}
	profile, ok := value.(model.Profile)
	return profile, ok
}
