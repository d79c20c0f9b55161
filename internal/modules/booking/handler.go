package booking

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"spacehub/internal/domain"
	"spacehub/internal/middleware"
	"spacehub/internal/pkg/response"
	"spacehub/internal/repository"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.List)
	rg.POST("/bookings", h.Create)
	rg.GET("/bookings/stats", h.Stats)
	rg.GET("/bookings/:id", h.Get)
	rg.PUT("/bookings/:id", h.Update)
	rg.DELETE("/bookings/:id", h.Cancel)
	rg.PUT("/bookings/:id/status", h.UpdateStatus)

	// Availability is exposed under both resource spellings; coworking
	// front-ends call units "workspaces".
	rg.GET("/units/:id/availability", h.Availability)
	rg.GET("/workspaces/:id/availability", h.Availability)
}

// Create books a unit for a time range.
// @Summary		Create a booking
// @Description	Reserves a unit for the half-open interval [start_at, end_at). Price is snapshotted from the unit's pricing at creation time.
// @Tags		Bookings
// @Security	BearerAuth
// @Param		request	body	CreateBookingRequest	true	"Booking data"
// @Success		201	{object}	map[string]interface{}	"Booking created"
// @Failure		400	{object}	map[string]interface{}	"Validation error"
// @Failure		404	{object}	map[string]interface{}	"Unit not found"
// @Failure		409	{object}	map[string]interface{}	"Time range already taken"
// @Router		/bookings [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.svc.CreateBooking(c.Request.Context(), middleware.TenantID(c), middleware.UserID(c), req)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": toBookingResponse(b)})
}

// Get returns one booking.
// @Summary		Get a booking
// @Tags		Bookings
// @Security	BearerAuth
// @Param		id	path	string	true	"Booking ID"
// @Success		200	{object}	map[string]interface{}
// @Failure		404	{object}	map[string]interface{}	"Booking not found"
// @Router		/bookings/{id} [GET]
func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return
	}

	b, err := h.svc.Get(c.Request.Context(), middleware.TenantID(c), id)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": toBookingResponse(b)})
}

// List returns the tenant's bookings with optional filters.
// @Summary		List bookings
// @Tags		Bookings
// @Security	BearerAuth
// @Param		unit_id	query	string	false	"Filter by unit"
// @Param		user_id	query	string	false	"Filter by user"
// @Param		status	query	int		false	"Filter by status code"
// @Param		from	query	string	false	"Window start (RFC3339)"
// @Param		to		query	string	false	"Window end (RFC3339)"
// @Param		limit	query	int		false	"Page size (max 100)"
// @Param		offset	query	int		false	"Page offset"
// @Success		200	{object}	map[string]interface{}
// @Router		/bookings [GET]
func (h *Handler) List(c *gin.Context) {
	f, err := parseFilter(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	bookings, total, err := h.svc.List(c.Request.Context(), middleware.TenantID(c), f)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	out := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i]))
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": out, "total": total})
}

// Update reschedules a pending booking or edits its notes.
// @Summary		Update a booking
// @Description	Only pending bookings can change times. The new range goes through the same availability check as creation.
// @Tags		Bookings
// @Security	BearerAuth
// @Param		id		path	string					true	"Booking ID"
// @Param		request	body	UpdateBookingRequest	true	"Fields to change"
// @Success		200	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{}	"Not pending or invalid range"
// @Failure		409	{object}	map[string]interface{}	"New range already taken"
// @Router		/bookings/{id} [PUT]
func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.svc.Update(c.Request.Context(), middleware.TenantID(c), id, req)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": toBookingResponse(b)})
}

// UpdateStatus moves a booking through its lifecycle.
// @Summary		Change booking status
// @Description	Allowed transitions: pending to confirmed or cancelled; confirmed to cancelled, completed or no_show. Marking no_show requires manager or admin role.
// @Tags		Bookings
// @Security	BearerAuth
// @Param		id		path	string				true	"Booking ID"
// @Param		request	body	UpdateStatusRequest	true	"Target status code"
// @Success		200	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{}	"Transition not allowed"
// @Failure		403	{object}	map[string]interface{}	"Role not allowed to set this status"
// @Router		/bookings/{id}/status [PUT]
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	next, ok := domain.BookingStatusFromCode(req.Status)
	if !ok {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown status code")
		return
	}

	b, err := h.svc.UpdateStatus(c.Request.Context(), middleware.TenantID(c), id, middleware.Role(c), next)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": toBookingResponse(b)})
}

// Cancel cancels a booking. Records are kept, never deleted.
// @Summary		Cancel a booking
// @Tags		Bookings
// @Security	BearerAuth
// @Param		id	path	string	true	"Booking ID"
// @Success		200	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{}	"Booking already terminal"
// @Router		/bookings/{id} [DELETE]
func (h *Handler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return
	}

	b, err := h.svc.Cancel(c.Request.Context(), middleware.TenantID(c), id, middleware.Role(c))
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": toBookingResponse(b)})
}

// Availability checks a unit's free time inside a window.
// @Summary		Check unit availability
// @Description	Returns whether the whole window is free plus the free sub-intervals left after subtracting active bookings.
// @Tags		Bookings
// @Security	BearerAuth
// @Param		id			path	string	true	"Unit ID"
// @Param		startDate	query	string	true	"Window start (RFC3339)"
// @Param		endDate		query	string	true	"Window end (RFC3339)"
// @Success		200	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{}	"Invalid window"
// @Failure		404	{object}	map[string]interface{}	"Unit not found"
// @Router		/units/{id}/availability [GET]
func (h *Handler) Availability(c *gin.Context) {
	unitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid unit id")
		return
	}

	start, err := time.Parse(time.RFC3339, c.Query("startDate"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid startDate, want RFC3339")
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("endDate"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid endDate, want RFC3339")
		return
	}

	tenantID := middleware.TenantID(c)
	slots, err := h.svc.FindAvailableSlots(c.Request.Context(), tenantID, unitID, start, end)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	free := len(slots) == 1 && slots[0].StartAt.Equal(start) && slots[0].EndAt.Equal(end)
	response.Success(c, http.StatusOK, AvailabilityResponse{IsAvailable: free, AvailableSlots: slots})
}

// Stats returns the tenant's booking counters and revenue.
// @Summary		Booking statistics
// @Tags		Bookings
// @Security	BearerAuth
// @Success		200	{object}	map[string]interface{}
// @Router		/bookings/stats [GET]
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context(), middleware.TenantID(c))
	if err != nil {
		response.MapDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}

func parseFilter(c *gin.Context) (repository.BookingFilter, error) {
	var f repository.BookingFilter

	if v := c.Query("unit_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return f, errInvalidParam("unit_id")
		}
		f.UnitID = &id
	}
	if v := c.Query("user_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return f, errInvalidParam("user_id")
		}
		f.UserID = &id
	}
	if v := c.Query("status"); v != "" {
		code, err := strconv.Atoi(v)
		if err != nil {
			return f, errInvalidParam("status")
		}
		st, ok := domain.BookingStatusFromCode(code)
		if !ok {
			return f, errInvalidParam("status")
		}
		f.Status = &st
	}
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return f, errInvalidParam("from")
		}
		f.From = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return f, errInvalidParam("to")
		}
		f.To = &t
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return f, errInvalidParam("limit")
		}
		f.Limit = n
	}
	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return f, errInvalidParam("offset")
		}
		f.Offset = n
	}
	return f, nil
}

type paramError string

func (e paramError) Error() string { return "Invalid " + string(e) + " parameter" }

func errInvalidParam(name string) error { return paramError(name) }
