package unit

import (
	"context"

	"github.com/google/uuid"

	"spacehub/internal/domain"
)

type UnitStore interface {
	Create(ctx context.Context, u *domain.Unit) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Unit, error)
	List(ctx context.Context, tenantID uuid.UUID, propertyID *uuid.UUID, limit, offset int) ([]domain.Unit, int64, error)
	Save(ctx context.Context, u *domain.Unit) error
	Pricing(ctx context.Context, unitID uuid.UUID) ([]domain.UnitPricing, error)
	UpsertPricing(ctx context.Context, p *domain.UnitPricing) error
	SetRealEstateDetail(ctx context.Context, d *domain.RealEstateDetail) error
	SetCoworkingDetail(ctx context.Context, d *domain.CoworkingDetail) error
	AttachAmenity(ctx context.Context, u *domain.Unit, a *domain.Amenity) error
	DetachAmenity(ctx context.Context, u *domain.Unit, a *domain.Amenity) error
}

type PropertyStore interface {
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Property, error)
}

type AmenityStore interface {
	Create(ctx context.Context, a *domain.Amenity) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Amenity, error)
	List(ctx context.Context, tenantID uuid.UUID) ([]domain.Amenity, error)
}
