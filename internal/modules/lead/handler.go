package lead

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
	rg.GET("/leads", h.List)
	rg.POST("/leads", h.Create)
	rg.GET("/leads/:id", h.Get)
	rg.PUT("/leads/:id", h.Update)
	rg.PUT("/leads/:id/status", h.UpdateStatus)
	rg.POST("/leads/:id/convert", h.Convert)
}

// Create registers an inbound lead.
// @Summary		Create a lead
// @Tags		Leads
// @Security	BearerAuth
// @Param		request	body	CreateLeadRequest	true	"Lead data"
// @Success		201	{object}	map[string]interface{}	"Lead created"
// @Failure		400	{object}	map[string]interface{}	"Validation error"
// @Router		/leads [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	l, err := h.svc.Create(c.Request.Context(), middleware.TenantID(c), req)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"lead": toLeadResponse(l)})
}

// Get returns one lead.
// @Summary		Get a lead
// @Tags		Leads
// @Security	BearerAuth
// @Param		id	path	string	true	"Lead ID"
// @Success		200	{object}	map[string]interface{}
// @Failure		404	{object}	map[string]interface{}	"Lead not found"
// @Router		/leads/{id} [GET]
func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid lead id")
		return
	}

	l, err := h.svc.Get(c.Request.Context(), middleware.TenantID(c), id)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"lead": toLeadResponse(l)})
}

// List returns the tenant's leads, newest first.
// @Summary		List leads
// @Tags		Leads
// @Security	BearerAuth
// @Param		status	query	int	false	"Filter by status code"
// @Param		limit	query	int	false	"Page size (max 100)"
// @Param		offset	query	int	false	"Page offset"
// @Success		200	{object}	map[string]interface{}
// @Router		/leads [GET]
func (h *Handler) List(c *gin.Context) {
	var status *domain.LeadStatus
	if v := c.Query("status"); v != "" {
		code, err := strconv.Atoi(v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid status parameter")
			return
		}
		st, ok := domain.LeadStatusFromCode(code)
		if !ok {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown status code")
			return
		}
		status = &st
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	leads, total, err := h.svc.List(c.Request.Context(), middleware.TenantID(c), status, limit, offset)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	out := make([]LeadResponse, 0, len(leads))
	for i := range leads {
		out = append(out, toLeadResponse(&leads[i]))
	}
	response.Success(c, http.StatusOK, gin.H{"leads": out, "total": total})
}

// Update edits a lead or moves it along the pipeline.
// @Summary		Update a lead
// @Description	Status moves through the pipeline by integer code. Converted cannot be set here; use the convert endpoint.
// @Tags		Leads
// @Security	BearerAuth
// @Param		id		path	string				true	"Lead ID"
// @Param		request	body	UpdateLeadRequest	true	"Fields to change"
// @Success		200	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{}	"Invalid transition"
// @Router		/leads/{id} [PUT]
func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid lead id")
		return
	}

	var req UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	l, err := h.svc.Update(c.Request.Context(), middleware.TenantID(c), id, req)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"lead": toLeadResponse(l)})
}

// UpdateStatus moves a lead along the pipeline by status code.
// @Summary		Change lead status
// @Description	Converted cannot be set here; use the convert endpoint.
// @Tags		Leads
// @Security	BearerAuth
// @Param		id		path	string					true	"Lead ID"
// @Param		request	body	UpdateLeadStatusRequest	true	"Target status code"
// @Success		200	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{}	"Invalid transition"
// @Router		/leads/{id}/status [PUT]
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid lead id")
		return
	}

	var req UpdateLeadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	l, err := h.svc.Update(c.Request.Context(), middleware.TenantID(c), id, UpdateLeadRequest{Status: &req.Status})
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"lead": toLeadResponse(l)})
}

// Convert turns a lead into a booking.
// @Summary		Convert a lead to a booking
// @Description	Creates a booking for the lead's prospect and marks the lead converted. Both happen atomically; if the time range is taken, the lead stays untouched.
// @Tags		Leads
// @Security	BearerAuth
// @Param		id		path	string				true	"Lead ID"
// @Param		request	body	ConvertLeadRequest	true	"Booking details"
// @Success		201	{object}	map[string]interface{}	"Lead converted"
// @Failure		400	{object}	map[string]interface{}	"Lead already closed"
// @Failure		409	{object}	map[string]interface{}	"Time range already taken"
// @Router		/leads/{id}/convert [POST]
func (h *Handler) Convert(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid lead id")
		return
	}

	var req ConvertLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	l, b, err := h.svc.Convert(c.Request.Context(), middleware.TenantID(c), middleware.UserID(c), id, req)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"lead":    toLeadResponse(l),
		"booking": gin.H{"id": b.ID, "status": b.Status.Code(), "total_price": b.TotalPrice},
	})
}
