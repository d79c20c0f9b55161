package property

import (
	"context"

	"github.com/google/uuid"

	"spacehub/internal/domain"
)

type PropertyStore interface {
	Create(ctx context.Context, p *domain.Property) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Property, error)
	GetBySlug(ctx context.Context, tenantID uuid.UUID, slug string) (*domain.Property, error)
	List(ctx context.Context, tenantID uuid.UUID, status *domain.PropertyStatus, limit, offset int) ([]domain.Property, int64, error)
	Save(ctx context.Context, p *domain.Property) error
}
