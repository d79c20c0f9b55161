package campaign

import (
	"context"

	"github.com/google/uuid"

	"spacehub/internal/domain"
)

type CampaignStore interface {
	Create(ctx context.Context, c *domain.Campaign) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Campaign, error)
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]domain.Campaign, int64, error)
	Save(ctx context.Context, c *domain.Campaign) error
	CreateSocialPost(ctx context.Context, p *domain.SocialPost) error
}

type EventPublisher interface {
	Publish(topic, eventType string, tenantID, entityID uuid.UUID)
}
