package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"spacehub/internal/domain"
)

type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// Create assigns a tenant-unique slug from the property name, appending a
// date suffix when the plain slug is taken.
func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) error {
	if p.Slug == "" {
		s := slug.Make(p.Name)

		var cnt int64
		err := r.db.WithContext(ctx).Model(&domain.Property{}).
			Where("tenant_id = ? AND slug = ?", p.TenantID, s).
			Count(&cnt).Error
		if err != nil {
			return err
		}
		if cnt > 0 {
			s = fmt.Sprintf("%s-%s", s, time.Now().Format("20060102150405"))
		}
		p.Slug = s
	}

	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PropertyRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Property, error) {
	var p domain.Property
	err := r.db.WithContext(ctx).First(&p, "id = ? AND tenant_id = ?", id, tenantID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PropertyRepository) GetBySlug(ctx context.Context, tenantID uuid.UUID, s string) (*domain.Property, error) {
	var p domain.Property
	err := r.db.WithContext(ctx).First(&p, "tenant_id = ? AND slug = ?", tenantID, s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PropertyRepository) List(ctx context.Context, tenantID uuid.UUID, status *domain.PropertyStatus, limit, offset int) ([]domain.Property, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Property{}).Where("tenant_id = ?", tenantID)
	if status != nil {
		q = q.Where("status = ?", *status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var out []domain.Property
	err := q.Order("created_at").Limit(limit).Offset(offset).Find(&out).Error
	return out, total, err
}

func (r *PropertyRepository) Save(ctx context.Context, p *domain.Property) error {
	return r.db.WithContext(ctx).Save(p).Error
}
