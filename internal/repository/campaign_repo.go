package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"spacehub/internal/domain"
)

type CampaignRepository struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CampaignRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Campaign, error) {
	var c domain.Campaign
	err := r.db.WithContext(ctx).
		Preload("SocialPosts").
		First(&c, "id = ? AND tenant_id = ?", id, tenantID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepository) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]domain.Campaign, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Campaign{}).Where("tenant_id = ?", tenantID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var out []domain.Campaign
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&out).Error
	return out, total, err
}

func (r *CampaignRepository) Save(ctx context.Context, c *domain.Campaign) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CampaignRepository) CreateSocialPost(ctx context.Context, p *domain.SocialPost) error {
	return r.db.WithContext(ctx).Create(p).Error
}
