package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"spacehub/internal/domain"
)

type UnitRepository struct {
	db *gorm.DB
}

func NewUnitRepository(db *gorm.DB) *UnitRepository {
	return &UnitRepository{db: db}
}

func (r *UnitRepository) Create(ctx context.Context, u *domain.Unit) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UnitRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Unit, error) {
	var u domain.Unit
	err := r.db.WithContext(ctx).
		Preload("Pricing").
		Preload("RealEstateDetail").
		Preload("CoworkingDetail").
		Preload("Amenities").
		First(&u, "id = ? AND tenant_id = ?", id, tenantID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UnitRepository) List(ctx context.Context, tenantID uuid.UUID, propertyID *uuid.UUID, limit, offset int) ([]domain.Unit, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Unit{}).Where("tenant_id = ?", tenantID)
	if propertyID != nil {
		q = q.Where("property_id = ?", *propertyID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var out []domain.Unit
	err := q.Preload("Pricing").Order("created_at").Limit(limit).Offset(offset).Find(&out).Error
	return out, total, err
}

func (r *UnitRepository) Save(ctx context.Context, u *domain.Unit) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UnitRepository) Pricing(ctx context.Context, unitID uuid.UUID) ([]domain.UnitPricing, error) {
	var out []domain.UnitPricing
	err := r.db.WithContext(ctx).Where("unit_id = ?", unitID).Find(&out).Error
	return out, err
}

func (r *UnitRepository) UpsertPricing(ctx context.Context, p *domain.UnitPricing) error {
	var existing domain.UnitPricing
	err := r.db.WithContext(ctx).
		First(&existing, "unit_id = ? AND model = ?", p.UnitID, p.Model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.WithContext(ctx).Create(p).Error
	}
	if err != nil {
		return err
	}

	existing.Price = p.Price
	existing.Currency = p.Currency
	*p = existing
	return r.db.WithContext(ctx).Save(&existing).Error
}

func (r *UnitRepository) SetRealEstateDetail(ctx context.Context, d *domain.RealEstateDetail) error {
	return r.db.WithContext(ctx).
		Where("unit_id = ?", d.UnitID).
		Assign(d).
		FirstOrCreate(&domain.RealEstateDetail{}).Error
}

func (r *UnitRepository) SetCoworkingDetail(ctx context.Context, d *domain.CoworkingDetail) error {
	return r.db.WithContext(ctx).
		Where("unit_id = ?", d.UnitID).
		Assign(d).
		FirstOrCreate(&domain.CoworkingDetail{}).Error
}

func (r *UnitRepository) AttachAmenity(ctx context.Context, u *domain.Unit, a *domain.Amenity) error {
	return r.db.WithContext(ctx).Model(u).Association("Amenities").Append(a)
}

func (r *UnitRepository) DetachAmenity(ctx context.Context, u *domain.Unit, a *domain.Amenity) error {
	return r.db.WithContext(ctx).Model(u).Association("Amenities").Delete(a)
}
