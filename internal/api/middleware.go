package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paksr/MiniProject-Shoseki/internal/auth"
	"github.com/paksr/MiniProject-Shoseki/internal/user"
)

// RequireAdmin ensures the authenticated user is an administrator. The
// check hits the database rather than trusting the token's role claim,
// so demoting an admin takes effect before their token expires.
// It MUST be used after auth.AuthRequired middleware.
func RequireAdmin(userService user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.GetUserID(c)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		u, err := userService.GetByID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}

		if !u.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: admin access required"})
			return
		}

		c.Next()
	}
}
