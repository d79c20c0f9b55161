package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"spacehub/internal/domain"
	"spacehub/internal/repository"
)

// BookingStore is the persistence contract for bookings. The availability
// check and insert/update must be atomic inside the store (see repository).
type BookingStore interface {
	CreateIfAvailable(ctx context.Context, b *domain.Booking) error
	UpdateTimesIfAvailable(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Booking, error)
	List(ctx context.Context, tenantID uuid.UUID, f repository.BookingFilter) ([]domain.Booking, int64, error)
	ListOverlapping(ctx context.Context, tenantID, unitID uuid.UUID, start, end time.Time) ([]domain.Booking, error)
	CountOverlapping(ctx context.Context, tenantID, unitID uuid.UUID, start, end time.Time, excludeID uuid.UUID) (int64, error)
	Save(ctx context.Context, b *domain.Booking) error
	Stats(ctx context.Context, tenantID uuid.UUID) (*domain.BookingStats, error)
}

// UnitStore resolves units and their pricing within a tenant.
type UnitStore interface {
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Unit, error)
	Pricing(ctx context.Context, unitID uuid.UUID) ([]domain.UnitPricing, error)
}

// EventPublisher emits domain events. Implementations must be best-effort.
type EventPublisher interface {
	Publish(topic, eventType string, tenantID, entityID uuid.UUID)
}

// StatsCache is a short-TTL read cache for the stats endpoint.
type StatsCache interface {
	GetJSON(ctx context.Context, key string, out any) error
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
