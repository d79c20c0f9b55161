package booking

import (
	"time"

	"github.com/google/uuid"

	"spacehub/internal/domain"
)

type CreateBookingRequest struct {
	UnitID  uuid.UUID `json:"unit_id" binding:"required"`
	StartAt time.Time `json:"start_at" binding:"required"`
	EndAt   time.Time `json:"end_at" binding:"required"`
	Notes   string    `json:"notes"`
}

// UpdateBookingRequest changes times/notes of a pending booking. Nil fields
// are left untouched.
type UpdateBookingRequest struct {
	StartAt *time.Time `json:"start_at"`
	EndAt   *time.Time `json:"end_at"`
	Notes   *string    `json:"notes"`
}

// UpdateStatusRequest carries the target status as its integer wire code.
type UpdateStatusRequest struct {
	Status int `json:"status" binding:"required"`
}

type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	UnitID        uuid.UUID `json:"unit_id"`
	UserID        uuid.UUID `json:"user_id"`
	StartAt       time.Time `json:"start_at"`
	EndAt         time.Time `json:"end_at"`
	Status        int       `json:"status"`
	StatusName    string    `json:"status_name"`
	TotalPrice    float64   `json:"total_price"`
	Currency      string    `json:"currency"`
	PricingModel  string    `json:"pricing_model"`
	PaymentStatus string    `json:"payment_status"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func toBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		UnitID:        b.UnitID,
		UserID:        b.UserID,
		StartAt:       b.StartAt,
		EndAt:         b.EndAt,
		Status:        b.Status.Code(),
		StatusName:    string(b.Status),
		TotalPrice:    b.TotalPrice,
		Currency:      b.Currency,
		PricingModel:  string(b.PricingModel),
		PaymentStatus: string(b.PaymentStatus),
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
	}
}

// Slot is one free sub-interval inside a requested window.
type Slot struct {
	StartAt time.Time `json:"startAt"`
	EndAt   time.Time `json:"endAt"`
}

type AvailabilityResponse struct {
	IsAvailable    bool   `json:"isAvailable"`
	AvailableSlots []Slot `json:"availableSlots"`
}
