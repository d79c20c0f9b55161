package widget

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

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

// Submission is public: embedded widgets post without a token, carrying the
// tenant id in the query string instead.
func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.POST("/widgets/:id/submit", h.Submit)

	protected.GET("/widgets", h.List)
	protected.POST("/widgets", h.Create)
	protected.GET("/widgets/:id", h.Get)
	protected.PUT("/widgets/:id", h.Update)
	protected.GET("/forms", h.ListForms)
	protected.POST("/forms", h.CreateForm)
}

// Create registers an embeddable widget.
// @Summary		Create a widget
// @Tags		Widgets
// @Security	BearerAuth
// @Param		request	body	CreateWidgetRequest	true	"Widget data"
// @Success		201	{object}	map[string]interface{}
// @Router		/widgets [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateWidgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	w, err := h.svc.Create(c.Request.Context(), middleware.TenantID(c), req)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"widget": w})
}

// Get returns one widget.
// @Summary		Get a widget
// @Tags		Widgets
// @Security	BearerAuth
// @Param		id	path	string	true	"Widget ID"
// @Success		200	{object}	map[string]interface{}
// @Failure		404	{object}	map[string]interface{}	"Widget not found"
// @Router		/widgets/{id} [GET]
func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid widget id")
		return
	}

	w, err := h.svc.Get(c.Request.Context(), middleware.TenantID(c), id)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"widget": w})
}

// List returns the tenant's widgets.
// @Summary		List widgets
// @Tags		Widgets
// @Security	BearerAuth
// @Success		200	{object}	map[string]interface{}
// @Router		/widgets [GET]
func (h *Handler) List(c *gin.Context) {
	widgets, err := h.svc.List(c.Request.Context(), middleware.TenantID(c))
	if err != nil {
		response.MapDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"widgets": widgets})
}

// Update edits a widget or toggles it on/off.
// @Summary		Update a widget
// @Tags		Widgets
// @Security	BearerAuth
// @Param		id		path	string				true	"Widget ID"
// @Param		request	body	UpdateWidgetRequest	true	"Fields to change"
// @Success		200	{object}	map[string]interface{}
// @Router		/widgets/{id} [PUT]
func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid widget id")
		return
	}

	var req UpdateWidgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	w, err := h.svc.Update(c.Request.Context(), middleware.TenantID(c), id, req)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"widget": w})
}

// CreateForm stores a form builder schema.
// @Summary		Create a form
// @Tags		Widgets
// @Security	BearerAuth
// @Param		request	body	CreateFormRequest	true	"Form schema"
// @Success		201	{object}	map[string]interface{}
// @Router		/forms [POST]
func (h *Handler) CreateForm(c *gin.Context) {
	var req CreateFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	f, err := h.svc.CreateForm(c.Request.Context(), middleware.TenantID(c), req)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"form": f})
}

// ListForms returns the tenant's form builders.
// @Summary		List forms
// @Tags		Widgets
// @Security	BearerAuth
// @Success		200	{object}	map[string]interface{}
// @Router		/forms [GET]
func (h *Handler) ListForms(c *gin.Context) {
	forms, err := h.svc.ListForms(c.Request.Context(), middleware.TenantID(c))
	if err != nil {
		response.MapDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"forms": forms})
}

// Submit accepts a public widget submission and records it as a lead.
// @Summary		Submit through a widget
// @Description	Public endpoint for embedded widgets. The tenant id travels in the tenantId query parameter.
// @Tags		Widgets
// @Param		id			path	string			true	"Widget ID"
// @Param		tenantId	query	string			true	"Tenant ID"
// @Param		request		body	SubmitRequest	true	"Submission"
// @Success		201	{object}	map[string]interface{}	"Lead recorded"
// @Failure		400	{object}	map[string]interface{}	"Widget disabled or bad payload"
// @Failure		404	{object}	map[string]interface{}	"Widget not found"
// @Router		/widgets/{id}/submit [POST]
func (h *Handler) Submit(c *gin.Context) {
	widgetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid widget id")
		return
	}
	tenantID, err := uuid.Parse(c.Query("tenantId"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing or invalid tenantId parameter")
		return
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields := validator.BindingErrors(err); fields != nil {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", fields)
			return
		}
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	l, err := h.svc.Submit(c.Request.Context(), tenantID, widgetID, req)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"lead": gin.H{"id": l.ID, "status": l.Status.Code()}})
}
