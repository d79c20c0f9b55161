package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"spacehub/internal/domain"
)

type MediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

func (r *MediaRepository) Create(ctx context.Context, m *domain.Media) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MediaRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Media, error) {
	var m domain.Media
	err := r.db.WithContext(ctx).First(&m, "id = ? AND tenant_id = ?", id, tenantID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MediaRepository) ListByOwner(ctx context.Context, tenantID uuid.UUID, ownerType domain.MediaOwner, ownerID uuid.UUID) ([]domain.Media, error) {
	var out []domain.Media
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND owner_type = ? AND owner_id = ?", tenantID, ownerType, ownerID).
		Order("position, created_at").
		Find(&out).Error
	return out, err
}

func (r *MediaRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Delete(&domain.Media{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
