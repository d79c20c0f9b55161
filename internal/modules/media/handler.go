package media

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
	rg.POST("/media", h.Upload)
	rg.GET("/media", h.ListByOwner)
	rg.DELETE("/media/:id", h.Delete)
}

// Upload stores a file against a property or unit.
// @Summary		Upload media
// @Description	Multipart upload. Form fields: file, owner_type (property|unit), owner_id, is_cover.
// @Tags		Media
// @Security	BearerAuth
// @Accept		multipart/form-data
// @Param		file		formData	file	true	"File (jpeg, png, webp or mp4, max 10 MB)"
// @Param		owner_type	formData	string	true	"property or unit"
// @Param		owner_id	formData	string	true	"Owner ID"
// @Param		is_cover	formData	bool	false	"Use as cover image"
// @Success		201	{object}	map[string]interface{}	"Media stored"
// @Failure		400	{object}	map[string]interface{}	"Bad file or owner"
// @Router		/media [POST]
func (h *Handler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing file")
		return
	}

	ownerID, err := uuid.Parse(c.PostForm("owner_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid owner_id")
		return
	}
	ownerType := domain.MediaOwner(c.PostForm("owner_type"))
	isCover, _ := strconv.ParseBool(c.PostForm("is_cover"))

	m, err := h.svc.Upload(c.Request.Context(), middleware.TenantID(c), ownerType, ownerID, file, isCover)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"media": m})
}

// ListByOwner returns all media of a property or unit.
// @Summary		List media
// @Tags		Media
// @Security	BearerAuth
// @Param		owner_type	query	string	true	"property or unit"
// @Param		owner_id	query	string	true	"Owner ID"
// @Success		200	{object}	map[string]interface{}
// @Router		/media [GET]
func (h *Handler) ListByOwner(c *gin.Context) {
	ownerID, err := uuid.Parse(c.Query("owner_id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid owner_id parameter")
		return
	}
	ownerType := domain.MediaOwner(c.Query("owner_type"))
	if ownerType != domain.MediaOwnerProperty && ownerType != domain.MediaOwnerUnit {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "owner_type must be property or unit")
		return
	}

	media, err := h.svc.ListByOwner(c.Request.Context(), middleware.TenantID(c), ownerType, ownerID)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"media": media})
}

// Delete removes a media record and its stored object.
// @Summary		Delete media
// @Tags		Media
// @Security	BearerAuth
// @Param		id	path	string	true	"Media ID"
// @Success		204	"Deleted"
// @Failure		404	{object}	map[string]interface{}	"Media not found"
// @Router		/media/{id} [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid media id")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), middleware.TenantID(c), id); err != nil {
		response.MapDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
