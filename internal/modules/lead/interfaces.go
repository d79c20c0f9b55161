package lead

import (
	"context"

	"github.com/google/uuid"

	"spacehub/internal/domain"
	"spacehub/internal/modules/booking"
)

type LeadStore interface {
	Create(ctx context.Context, l *domain.Lead) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Lead, error)
	List(ctx context.Context, tenantID uuid.UUID, status *domain.LeadStatus, limit, offset int) ([]domain.Lead, int64, error)
	Save(ctx context.Context, l *domain.Lead) error
	ConvertToBooking(ctx context.Context, lead *domain.Lead, b *domain.Booking) error
}

// BookingBuilder validates and prices a booking without persisting it. The
// booking service implements it; conversion reuses its pricing snapshot so a
// converted lead is billed exactly like a direct booking.
type BookingBuilder interface {
	BuildBooking(ctx context.Context, tenantID, userID uuid.UUID, req booking.CreateBookingRequest) (*domain.Booking, error)
}

type EventPublisher interface {
	Publish(topic, eventType string, tenantID, entityID uuid.UUID)
}
