package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spacehub/internal/pkg/response"
)

// RequireRole ensures the authenticated user holds one of the given roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		role := Role(c)
		if role == "" {
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			return
		}

		if !allowed[role] {
			response.AbortError(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			return
		}

		c.Next()
	}
}

// AdminOnly restricts a route to platform admins.
func AdminOnly() gin.HandlerFunc {
	return RequireRole("admin")
}
