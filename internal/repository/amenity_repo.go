package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"spacehub/internal/domain"
)

type AmenityRepository struct {
	db *gorm.DB
}

func NewAmenityRepository(db *gorm.DB) *AmenityRepository {
	return &AmenityRepository{db: db}
}

func (r *AmenityRepository) Create(ctx context.Context, a *domain.Amenity) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AmenityRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Amenity, error) {
	var a domain.Amenity
	err := r.db.WithContext(ctx).First(&a, "id = ? AND tenant_id = ?", id, tenantID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AmenityRepository) List(ctx context.Context, tenantID uuid.UUID) ([]domain.Amenity, error) {
	var out []domain.Amenity
	err := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID).Order("name").Find(&out).Error
	return out, err
}
