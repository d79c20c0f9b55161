package payment

import (
	"context"

	"github.com/google/uuid"

	"spacehub/internal/domain"
)

type PaymentStore interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Payment, error)
	ListByBooking(ctx context.Context, tenantID, bookingID uuid.UUID) ([]domain.Payment, error)
	Save(ctx context.Context, p *domain.Payment) error
	MarkCompleted(ctx context.Context, p *domain.Payment) error
}

type BookingReader interface {
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Booking, error)
}

// CheckoutProvider creates a hosted checkout session and returns its id and
// redirect URL. The stripe implementation lives in stripe.go; tests stub it.
type CheckoutProvider interface {
	CreateSession(ctx context.Context, p *domain.Payment, description string) (id, url string, err error)
}
