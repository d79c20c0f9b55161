package campaign

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
	rg.GET("/campaigns", h.List)
	rg.POST("/campaigns", h.Create)
	rg.GET("/campaigns/:id", h.Get)
	rg.PUT("/campaigns/:id", h.Update)
	rg.POST("/campaigns/:id/publish", h.Publish)
	rg.POST("/campaigns/:id/archive", h.Archive)
	rg.POST("/campaigns/:id/posts", h.AddSocialPost)
}

// Create opens a campaign draft.
// @Summary		Create a campaign
// @Tags		Campaigns
// @Security	BearerAuth
// @Param		request	body	CreateCampaignRequest	true	"Campaign data"
// @Success		201	{object}	map[string]interface{}	"Draft created"
// @Router		/campaigns [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	camp, err := h.svc.Create(c.Request.Context(), middleware.TenantID(c), req)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"campaign": camp})
}

// Get returns one campaign with its social posts.
// @Summary		Get a campaign
// @Tags		Campaigns
// @Security	BearerAuth
// @Param		id	path	string	true	"Campaign ID"
// @Success		200	{object}	map[string]interface{}
// @Failure		404	{object}	map[string]interface{}	"Campaign not found"
// @Router		/campaigns/{id} [GET]
func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid campaign id")
		return
	}

	camp, err := h.svc.Get(c.Request.Context(), middleware.TenantID(c), id)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"campaign": camp})
}

// List returns the tenant's campaigns, newest first.
// @Summary		List campaigns
// @Tags		Campaigns
// @Security	BearerAuth
// @Param		limit	query	int	false	"Page size (max 100)"
// @Param		offset	query	int	false	"Page offset"
// @Success		200	{object}	map[string]interface{}
// @Router		/campaigns [GET]
func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	campaigns, total, err := h.svc.List(c.Request.Context(), middleware.TenantID(c), limit, offset)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"campaigns": campaigns, "total": total})
}

// Update edits a draft campaign.
// @Summary		Update a campaign
// @Tags		Campaigns
// @Security	BearerAuth
// @Param		id		path	string					true	"Campaign ID"
// @Param		request	body	UpdateCampaignRequest	true	"Fields to change"
// @Success		200	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{}	"Campaign not a draft"
// @Router		/campaigns/{id} [PUT]
func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid campaign id")
		return
	}

	var req UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	camp, err := h.svc.Update(c.Request.Context(), middleware.TenantID(c), id, req)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"campaign": camp})
}

// Publish makes a draft campaign live.
// @Summary		Publish a campaign
// @Tags		Campaigns
// @Security	BearerAuth
// @Param		id	path	string	true	"Campaign ID"
// @Success		200	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{}	"Campaign not a draft"
// @Router		/campaigns/{id}/publish [POST]
func (h *Handler) Publish(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid campaign id")
		return
	}

	camp, err := h.svc.Publish(c.Request.Context(), middleware.TenantID(c), id)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"campaign": camp})
}

// Archive retires a campaign.
// @Summary		Archive a campaign
// @Tags		Campaigns
// @Security	BearerAuth
// @Param		id	path	string	true	"Campaign ID"
// @Success		200	{object}	map[string]interface{}
// @Router		/campaigns/{id}/archive [POST]
func (h *Handler) Archive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid campaign id")
		return
	}

	camp, err := h.svc.Archive(c.Request.Context(), middleware.TenantID(c), id)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"campaign": camp})
}

// AddSocialPost attaches a post to a social campaign.
// @Summary		Add a social post
// @Tags		Campaigns
// @Security	BearerAuth
// @Param		id		path	string					true	"Campaign ID"
// @Param		request	body	CreateSocialPostRequest	true	"Post data"
// @Success		201	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{}	"Campaign channel is not social"
// @Router		/campaigns/{id}/posts [POST]
func (h *Handler) AddSocialPost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid campaign id")
		return
	}

	var req CreateSocialPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.svc.AddSocialPost(c.Request.Context(), middleware.TenantID(c), id, req)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"post": p})
}
