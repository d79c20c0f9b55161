package tenant

import (
	"context"

	"github.com/google/uuid"

	"spacehub/internal/domain"
)

type TenantStore interface {
	Create(ctx context.Context, t *domain.Tenant) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
	GetByDomain(ctx context.Context, tenantDomain string) (*domain.Tenant, error)
	List(ctx context.Context, limit, offset int) ([]domain.Tenant, int64, error)
	Save(ctx context.Context, t *domain.Tenant) error
}

type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
}
