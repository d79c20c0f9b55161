package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"spacehub/internal/domain"
)

// MapDomainError translates the shared error taxonomy onto the HTTP
// envelope. Unknown errors become an opaque 500.
func MapDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
	case errors.Is(err, domain.ErrConflict):
		Error(c, http.StatusConflict, "BOOKING_CONFLICT", "Time range is not available")
	case errors.Is(err, domain.ErrValidation):
		Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input")
	case errors.Is(err, domain.ErrNoPricing):
		Error(c, http.StatusBadRequest, "NO_PRICING", "Unit has no pricing configured")
	case errors.Is(err, domain.ErrInvalidTransition):
		Error(c, http.StatusBadRequest, "INVALID_TRANSITION", "Status transition not allowed")
	case errors.Is(err, domain.ErrInvalidState):
		Error(c, http.StatusBadRequest, "INVALID_STATE", "Operation not allowed in current state")
	case errors.Is(err, domain.ErrForbidden):
		Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied")
	default:
		Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}
