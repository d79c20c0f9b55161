package unit

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

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
	rg.GET("/units", h.List)
	rg.POST("/units", h.Create)
	rg.GET("/units/:id", h.Get)
	rg.PUT("/units/:id", h.Update)
	rg.PUT("/units/:id/pricing", h.SetPricing)
	rg.PUT("/units/:id/real-estate-detail", h.SetRealEstateDetail)
	rg.PUT("/units/:id/coworking-detail", h.SetCoworkingDetail)
	rg.POST("/units/:id/amenities", h.AttachAmenity)
	rg.DELETE("/units/:id/amenities/:amenityId", h.DetachAmenity)

	rg.GET("/amenities", h.ListAmenities)
	rg.POST("/amenities", h.CreateAmenity)
}

// Create adds a unit under a property.
// @Summary		Create a unit
// @Tags		Units
// @Security	BearerAuth
// @Param		request	body	CreateUnitRequest	true	"Unit data"
// @Success		201	{object}	map[string]interface{}	"Unit created"
// @Failure		404	{object}	map[string]interface{}	"Property not found"
// @Router		/units [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	u, err := h.svc.Create(c.Request.Context(), middleware.TenantID(c), req)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"unit": toUnitResponse(u)})
}

// Get returns one unit with pricing, details and amenities.
// @Summary		Get a unit
// @Tags		Units
// @Security	BearerAuth
// @Param		id	path	string	true	"Unit ID"
// @Success		200	{object}	map[string]interface{}
// @Failure		404	{object}	map[string]interface{}	"Unit not found"
// @Router		/units/{id} [GET]
func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid unit id")
		return
	}

	u, err := h.svc.Get(c.Request.Context(), middleware.TenantID(c), id)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"unit": toUnitResponse(u)})
}

// List returns the tenant's units.
// @Summary		List units
// @Tags		Units
// @Security	BearerAuth
// @Param		property_id	query	string	false	"Filter by property"
// @Param		limit		query	int		false	"Page size (max 100)"
// @Param		offset		query	int		false	"Page offset"
// @Success		200	{object}	map[string]interface{}
// @Router		/units [GET]
func (h *Handler) List(c *gin.Context) {
	var propertyID *uuid.UUID
	if v := c.Query("property_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid property_id parameter")
			return
		}
		propertyID = &id
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	units, total, err := h.svc.List(c.Request.Context(), middleware.TenantID(c), propertyID, limit, offset)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"units": units, "total": total})
}

// Update edits a unit.
// @Summary		Update a unit
// @Tags		Units
// @Security	BearerAuth
// @Param		id		path	string				true	"Unit ID"
// @Param		request	body	UpdateUnitRequest	true	"Fields to change"
// @Success		200	{object}	map[string]interface{}
// @Router		/units/{id} [PUT]
func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid unit id")
		return
	}

	var req UpdateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	u, err := h.svc.Update(c.Request.Context(), middleware.TenantID(c), id, req)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"unit": toUnitResponse(u)})
}

// SetPricing creates or replaces one pricing model on a unit.
// @Summary		Set unit pricing
// @Tags		Units
// @Security	BearerAuth
// @Param		id		path	string				true	"Unit ID"
// @Param		request	body	SetPricingRequest	true	"Pricing data"
// @Success		200	{object}	map[string]interface{}
// @Router		/units/{id}/pricing [PUT]
func (h *Handler) SetPricing(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid unit id")
		return
	}

	var req SetPricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.svc.SetPricing(c.Request.Context(), middleware.TenantID(c), id, req)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"pricing": p})
}

// SetRealEstateDetail attaches the real-estate specialization.
// @Summary		Set real estate details
// @Tags		Units
// @Security	BearerAuth
// @Param		id		path	string						true	"Unit ID"
// @Param		request	body	RealEstateDetailRequest	true	"Detail data"
// @Success		204	"Details stored"
// @Failure		400	{object}	map[string]interface{}	"Wrong category for this detail type"
// @Router		/units/{id}/real-estate-detail [PUT]
func (h *Handler) SetRealEstateDetail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid unit id")
		return
	}

	var req RealEstateDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.svc.SetRealEstateDetail(c.Request.Context(), middleware.TenantID(c), id, req); err != nil {
		response.MapDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SetCoworkingDetail attaches the coworking specialization.
// @Summary		Set coworking details
// @Tags		Units
// @Security	BearerAuth
// @Param		id		path	string					true	"Unit ID"
// @Param		request	body	CoworkingDetailRequest	true	"Detail data"
// @Success		204	"Details stored"
// @Failure		400	{object}	map[string]interface{}	"Wrong category for this detail type"
// @Router		/units/{id}/coworking-detail [PUT]
func (h *Handler) SetCoworkingDetail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid unit id")
		return
	}

	var req CoworkingDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.svc.SetCoworkingDetail(c.Request.Context(), middleware.TenantID(c), id, req); err != nil {
		response.MapDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateAmenity registers a tenant-level amenity.
// @Summary		Create an amenity
// @Tags		Units
// @Security	BearerAuth
// @Param		request	body	CreateAmenityRequest	true	"Amenity data"
// @Success		201	{object}	map[string]interface{}
// @Router		/amenities [POST]
func (h *Handler) CreateAmenity(c *gin.Context) {
	var req CreateAmenityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	a, err := h.svc.CreateAmenity(c.Request.Context(), middleware.TenantID(c), req)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"amenity": a})
}

// ListAmenities returns all amenities of the tenant.
// @Summary		List amenities
// @Tags		Units
// @Security	BearerAuth
// @Success		200	{object}	map[string]interface{}
// @Router		/amenities [GET]
func (h *Handler) ListAmenities(c *gin.Context) {
	amenities, err := h.svc.ListAmenities(c.Request.Context(), middleware.TenantID(c))
	if err != nil {
		response.MapDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"amenities": amenities})
}

// AttachAmenity links an amenity to a unit.
// @Summary		Attach an amenity
// @Tags		Units
// @Security	BearerAuth
// @Param		id		path	string					true	"Unit ID"
// @Param		request	body	AttachAmenityRequest	true	"Amenity to attach"
// @Success		204	"Attached"
// @Router		/units/{id}/amenities [POST]
func (h *Handler) AttachAmenity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid unit id")
		return
	}

	var req AttachAmenityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.svc.AttachAmenity(c.Request.Context(), middleware.TenantID(c), id, req.AmenityID); err != nil {
		response.MapDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DetachAmenity unlinks an amenity from a unit.
// @Summary		Detach an amenity
// @Tags		Units
// @Security	BearerAuth
// @Param		id			path	string	true	"Unit ID"
// @Param		amenityId	path	string	true	"Amenity ID"
// @Success		204	"Detached"
// @Router		/units/{id}/amenities/{amenityId} [DELETE]
func (h *Handler) DetachAmenity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid unit id")
		return
	}
	amenityID, err := uuid.Parse(c.Param("amenityId"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid amenity id")
		return
	}

	if err := h.svc.DetachAmenity(c.Request.Context(), middleware.TenantID(c), id, amenityID); err != nil {
		response.MapDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
