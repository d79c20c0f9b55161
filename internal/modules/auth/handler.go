package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"spacehub/internal/middleware"
	"spacehub/internal/pkg/response"
	"spacehub/internal/pkg/validator"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.POST("/auth/register", h.Register)
	public.POST("/auth/login", h.Login)
	protected.GET("/me", h.Me)
	protected.GET("/auth/me", h.Me)
}

// Register creates a user account inside a tenant.
// @Summary		Register
// @Tags		Auth
// @Param		request	body	RegisterRequest	true	"Account data"
// @Success		201	{object}	map[string]interface{}	"Account created, token issued"
// @Failure		400	{object}	map[string]interface{}	"Validation error"
// @Failure		409	{object}	map[string]interface{}	"Email already registered in this tenant"
// @Router		/auth/register [POST]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields := validator.BindingErrors(err); fields != nil {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", fields)
			return
		}
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	u, token, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, AuthResponse{Token: token, User: toUserResponse(u)})
}

// Login exchanges credentials for a token.
// @Summary		Login
// @Tags		Auth
// @Param		request	body	LoginRequest	true	"Credentials"
// @Success		200	{object}	map[string]interface{}	"Token issued"
// @Failure		401	{object}	map[string]interface{}	"Wrong email or password"
// @Router		/auth/login [POST]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	u, token, err := h.svc.Login(c.Request.Context(), req)
	if errors.Is(err, ErrInvalidCredentials) {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Wrong email or password")
		return
	}
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, AuthResponse{Token: token, User: toUserResponse(u)})
}

// Me returns the authenticated user's profile.
// @Summary		Current user
// @Tags		Auth
// @Security	BearerAuth
// @Success		200	{object}	map[string]interface{}
// @Router		/auth/me [GET]
func (h *Handler) Me(c *gin.Context) {
	u, err := h.svc.Me(c.Request.Context(), middleware.TenantID(c), middleware.UserID(c))
	if err != nil {
		response.MapDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": toUserResponse(u)})
}
