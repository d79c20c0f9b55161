package lead

import (
	"time"

	"github.com/google/uuid"

	"spacehub/internal/domain"
)

type CreateLeadRequest struct {
	PropertyID *uuid.UUID `json:"property_id"`
	UnitID     *uuid.UUID `json:"unit_id"`
	Name       string     `json:"name" binding:"required"`
	Email      string     `json:"email" binding:"omitempty,email"`
	Phone      string     `json:"phone"`
	Message    string     `json:"message"`
	Source     string     `json:"source"`
}

type UpdateLeadRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone"`
	Message *string `json:"message"`
	Status  *int    `json:"status"`
}

type UpdateLeadStatusRequest struct {
	Status int `json:"status" binding:"required"`
}

// ConvertLeadRequest turns a lead into a booking on the given unit and range.
type ConvertLeadRequest struct {
	UnitID  uuid.UUID `json:"unit_id" binding:"required"`
	StartAt time.Time `json:"start_at" binding:"required"`
	EndAt   time.Time `json:"end_at" binding:"required"`
	Notes   string    `json:"notes"`
}

type LeadResponse struct {
	ID          uuid.UUID  `json:"id"`
	PropertyID  *uuid.UUID `json:"property_id,omitempty"`
	UnitID      *uuid.UUID `json:"unit_id,omitempty"`
	BookingID   *uuid.UUID `json:"booking_id,omitempty"`
	Name        string     `json:"name"`
	Email       string     `json:"email,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	Message     string     `json:"message,omitempty"`
	Source      string     `json:"source"`
	Status      int        `json:"status"`
	StatusName  string     `json:"status_name"`
	ContactedAt *time.Time `json:"contacted_at,omitempty"`
	ConvertedAt *time.Time `json:"converted_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func toLeadResponse(l *domain.Lead) LeadResponse {
	return LeadResponse{
		ID:          l.ID,
		PropertyID:  l.PropertyID,
		UnitID:      l.UnitID,
		BookingID:   l.BookingID,
		Name:        l.Name,
		Email:       l.Email,
		Phone:       l.Phone,
		Message:     l.Message,
		Source:      l.Source,
		Status:      l.Status.Code(),
		StatusName:  string(l.Status),
		ContactedAt: l.ContactedAt,
		ConvertedAt: l.ConvertedAt,
		CreatedAt:   l.CreatedAt,
	}
}
