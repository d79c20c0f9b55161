package tenant

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"spacehub/internal/pkg/response"
	"spacehub/internal/pkg/validator"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Onboarding is public; management of existing tenants is admin-only.
func (h *Handler) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.POST("/tenants", h.Onboard)
	admin.GET("/tenants", h.List)
	admin.GET("/tenants/:id", h.Get)
	admin.PUT("/tenants/:id", h.Update)
}

// Onboard creates a tenant and its first admin account.
// @Summary		Onboard a tenant
// @Tags		Tenants
// @Param		request	body	CreateTenantRequest	true	"Tenant and admin data"
// @Success		201	{object}	map[string]interface{}	"Tenant created"
// @Failure		409	{object}	map[string]interface{}	"Domain already taken"
// @Router		/tenants [POST]
func (h *Handler) Onboard(c *gin.Context) {
	var req CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields := validator.BindingErrors(err); fields != nil {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", fields)
			return
		}
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	t, admin, err := h.svc.Onboard(c.Request.Context(), req)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"tenant": toTenantResponse(t),
		"admin":  gin.H{"id": admin.ID, "email": admin.Email},
	})
}

// Get returns one tenant.
// @Summary		Get a tenant
// @Tags		Tenants
// @Security	BearerAuth
// @Param		id	path	string	true	"Tenant ID"
// @Success		200	{object}	map[string]interface{}
// @Failure		404	{object}	map[string]interface{}	"Tenant not found"
// @Router		/tenants/{id} [GET]
func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid tenant id")
		return
	}

	t, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"tenant": toTenantResponse(t)})
}

// List returns all tenants.
// @Summary		List tenants
// @Tags		Tenants
// @Security	BearerAuth
// @Param		limit	query	int	false	"Page size (max 100)"
// @Param		offset	query	int	false	"Page offset"
// @Success		200	{object}	map[string]interface{}
// @Router		/tenants [GET]
func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	tenants, total, err := h.svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	out := make([]TenantResponse, 0, len(tenants))
	for i := range tenants {
		out = append(out, toTenantResponse(&tenants[i]))
	}
	response.Success(c, http.StatusOK, gin.H{"tenants": out, "total": total})
}

// Update renames a tenant or changes its status.
// @Summary		Update a tenant
// @Tags		Tenants
// @Security	BearerAuth
// @Param		id		path	string				true	"Tenant ID"
// @Param		request	body	UpdateTenantRequest	true	"Fields to change"
// @Success		200	{object}	map[string]interface{}
// @Router		/tenants/{id} [PUT]
func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid tenant id")
		return
	}

	var req UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	t, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"tenant": toTenantResponse(t)})
}
