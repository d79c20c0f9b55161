package payment

import (
	"net/http"

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
	rg.POST("/payments/checkout", h.Checkout)
	rg.GET("/payments/:id", h.Get)
	rg.POST("/payments/:id/complete", h.Complete)
	rg.POST("/payments/:id/fail", h.Fail)
	rg.POST("/bookings/:id/pay", h.PayBooking)
	rg.GET("/bookings/:id/payments", h.ListByBooking)
}

// Checkout opens a payment for a booking.
// @Summary		Start a checkout
// @Description	Creates a pending payment for the booking's snapshotted price and returns the provider checkout URL.
// @Tags		Payments
// @Security	BearerAuth
// @Param		request	body	CreatePaymentRequest	true	"Booking to pay for"
// @Success		201	{object}	map[string]interface{}	"Payment created"
// @Failure		400	{object}	map[string]interface{}	"Booking not payable"
// @Failure		404	{object}	map[string]interface{}	"Booking not found"
// @Router		/payments/checkout [POST]
func (h *Handler) Checkout(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, checkoutURL, err := h.svc.Checkout(c.Request.Context(), middleware.TenantID(c), middleware.UserID(c), req)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, CheckoutResponse{
		Payment:     toPaymentResponse(p),
		CheckoutURL: checkoutURL,
	})
}

// Get returns one payment.
// @Summary		Get a payment
// @Tags		Payments
// @Security	BearerAuth
// @Param		id	path	string	true	"Payment ID"
// @Success		200	{object}	map[string]interface{}
// @Failure		404	{object}	map[string]interface{}	"Payment not found"
// @Router		/payments/{id} [GET]
func (h *Handler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payment id")
		return
	}

	p, err := h.svc.Get(c.Request.Context(), middleware.TenantID(c), id)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"payment": toPaymentResponse(p)})
}

// Complete confirms a payment and marks the booking paid.
// @Summary		Complete a payment
// @Tags		Payments
// @Security	BearerAuth
// @Param		id		path	string					true	"Payment ID"
// @Param		request	body	CompletePaymentRequest	true	"Provider transaction id"
// @Success		200	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{}	"Payment not pending"
// @Router		/payments/{id}/complete [POST]
func (h *Handler) Complete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payment id")
		return
	}

	var req CompletePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.svc.Complete(c.Request.Context(), middleware.TenantID(c), id, req)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"payment": toPaymentResponse(p)})
}

// Fail records a failed payment attempt.
// @Summary		Fail a payment
// @Tags		Payments
// @Security	BearerAuth
// @Param		id	path	string	true	"Payment ID"
// @Success		200	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{}	"Payment not pending"
// @Router		/payments/{id}/fail [POST]
func (h *Handler) Fail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payment id")
		return
	}

	p, err := h.svc.Fail(c.Request.Context(), middleware.TenantID(c), id)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"payment": toPaymentResponse(p)})
}

// PayBooking starts a checkout for the booking in the path. Same flow as
// Checkout with the booking id coming from the URL.
// @Summary		Pay for a booking
// @Tags		Payments
// @Security	BearerAuth
// @Param		id	path	string	true	"Booking ID"
// @Success		201	{object}	map[string]interface{}	"Payment created"
// @Failure		400	{object}	map[string]interface{}	"Booking not payable"
// @Failure		404	{object}	map[string]interface{}	"Booking not found"
// @Router		/bookings/{id}/pay [POST]
func (h *Handler) PayBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return
	}

	p, checkoutURL, err := h.svc.Checkout(c.Request.Context(), middleware.TenantID(c), middleware.UserID(c), CreatePaymentRequest{BookingID: bookingID})
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, CheckoutResponse{
		Payment:     toPaymentResponse(p),
		CheckoutURL: checkoutURL,
	})
}

// ListByBooking returns all payments for one booking.
// @Summary		List payments for a booking
// @Tags		Payments
// @Security	BearerAuth
// @Param		id	path	string	true	"Booking ID"
// @Success		200	{object}	map[string]interface{}
// @Router		/bookings/{id}/payments [GET]
func (h *Handler) ListByBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return
	}

	payments, err := h.svc.ListByBooking(c.Request.Context(), middleware.TenantID(c), bookingID)
	if err != nil {
		response.MapDomainError(c, err)
		return
	}

	out := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		out = append(out, toPaymentResponse(&payments[i]))
	}
	response.Success(c, http.StatusOK, gin.H{"payments": out})
}
