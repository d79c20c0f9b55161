package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"spacehub/internal/pkg/response"
)

// RequireTenant enforces tenant scoping on every scoped route. A tenantId
// query parameter, when present, must match the token's tenant — platform
// admins may cross tenants by passing an explicit tenantId.
func RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenTenant := TenantID(c)
		if tokenTenant == uuid.Nil {
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Tenant context missing from token")
			return
		}

		if q := c.Query("tenantId"); q != "" {
			requested, err := uuid.Parse(q)
			if err != nil {
				response.AbortError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid tenantId")
				return
			}
			if requested != tokenTenant {
				if Role(c) != "admin" {
					response.AbortError(c, http.StatusForbidden, "FORBIDDEN", "Access denied to this tenant")
					return
				}
				c.Set(ctxTenantID, requested)
			}
		}

		c.Next()
	}
}
