package property

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"spacehub/internal/domain"
	"spacehub/internal/middleware"
	"spacehub/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/properties", h.List)
	rg.POST("/properties", h.Create)
	rg.GET("/properties/:id", h.Get)
	rg.PUT("/properties/:id", h.Update)
	rg.DELETE("/properties/:id", h.Delete)
	rg.GET("/properties/slug/:slug", h.GetBySlug)
}

// Create registers a property.
// @Summary		Create a property
// @Tags		Properties
// @Security	BearerAuth
// @Param		request	body	CreatePropertyRequest	true	"Property data"
// @Success		201	{object}	map[string]interface{}	"Property created as draft"
// @Failure		400	{object}	map[string]interface{}	"Validation error"
// @Router		/properties [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.svc.Create(c.Request.Context(), middleware.TenantID(c), req)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"property": toPropertyResponse(p)})
}

// Get returns one property.
// @Summary		Get a property
// @Tags		Properties
// @Security	BearerAuth
// @Param		id	path	string	true	"Property ID"
// @Success		200	{object}	map[string]interface{}
// @Failure		404	{object}	map[string]interface{}	"Property not found"
// @Router		/properties/{id} [GET]
func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid property id")
		return
	}

	p, err := h.svc.Get(c.Request.Context(), middleware.TenantID(c), id)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"property": toPropertyResponse(p)})
}

// Delete retires a property. The record stays; its status becomes inactive.
// @Summary		Deactivate a property
// @Tags		Properties
// @Security	BearerAuth
// @Param		id	path	string	true	"Property ID"
// @Success		200	{object}	map[string]interface{}
// @Failure		404	{object}	map[string]interface{}	"Property not found"
// @Router		/properties/{id} [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid property id")
		return
	}

	p, err := h.svc.Deactivate(c.Request.Context(), middleware.TenantID(c), id)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"property": toPropertyResponse(p)})
}

// GetBySlug returns one property by its tenant-unique slug.
// @Summary		Get a property by slug
// @Tags		Properties
// @Security	BearerAuth
// @Param		slug	path	string	true	"Property slug"
// @Success		200	{object}	map[string]interface{}
// @Failure		404	{object}	map[string]interface{}	"Property not found"
// @Router		/properties/slug/{slug} [GET]
func (h *Handler) GetBySlug(c *gin.Context) {
	p, err := h.svc.GetBySlug(c.Request.Context(), middleware.TenantID(c), c.Param("slug"))
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"property": toPropertyResponse(p)})
}

// List returns the tenant's properties.
// @Summary		List properties
// @Tags		Properties
// @Security	BearerAuth
// @Param		status	query	string	false	"Filter by status"
// @Param		limit	query	int		false	"Page size (max 100)"
// @Param		offset	query	int		false	"Page offset"
// @Success		200	{object}	map[string]interface{}
// @Router		/properties [GET]
func (h *Handler) List(c *gin.Context) {
	var status *domain.PropertyStatus
	if v := c.Query("status"); v != "" {
		st := domain.PropertyStatus(v)
		status = &st
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	properties, total, err := h.svc.List(c.Request.Context(), middleware.TenantID(c), status, limit, offset)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	out := make([]PropertyResponse, 0, len(properties))
	for i := range properties {
		out = append(out, toPropertyResponse(&properties[i]))
	}
	response.Success(c, http.StatusOK, gin.H{"properties": out, "total": total})
}

// Update edits a property.
// @Summary		Update a property
// @Tags		Properties
// @Security	BearerAuth
// @Param		id		path	string					true	"Property ID"
// @Param		request	body	UpdatePropertyRequest	true	"Fields to change"
// @Success		200	{object}	map[string]interface{}
// @Router		/properties/{id} [PUT]
func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid property id")
		return
	}

	var req UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.svc.Update(c.Request.Context(), middleware.TenantID(c), id, req)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"property": toPropertyResponse(p)})
}
