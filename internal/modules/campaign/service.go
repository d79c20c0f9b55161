package campaign

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"spacehub/internal/domain"
	"spacehub/internal/pkg/events"
)

type Service struct {
	campaigns CampaignStore
	pub       EventPublisher
}

func NewService(campaigns CampaignStore, pub EventPublisher) *Service {
	return &Service{campaigns: campaigns, pub: pub}
}

func (s *Service) Create(ctx context.Context, tenantID uuid.UUID, req CreateCampaignRequest) (*domain.Campaign, error) {
	c := &domain.Campaign{
		TenantID: tenantID,
		Name:     req.Name,
		Channel:  domain.CampaignChannel(req.Channel),
		Status:   domain.CampaignDraft,
		Subject:  req.Subject,
		Body:     req.Body,
	}
	if err := s.campaigns.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Get(ctx context.Context, tenantID, id uuid.UUID) (*domain.Campaign, error) {
	return s.campaigns.GetByID(ctx, tenantID, id)
}

func (s *Service) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]domain.Campaign, int64, error) {
	return s.campaigns.List(ctx, tenantID, limit, offset)
}

// Update edits a draft. Published and archived campaigns are immutable.
func (s *Service) Update(ctx context.Context, tenantID, id uuid.UUID, req UpdateCampaignRequest) (*domain.Campaign, error) {
	c, err := s.campaigns.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if c.Status != domain.CampaignDraft {
		return nil, fmt.Errorf("%w: campaign is %s", domain.ErrInvalidState, c.Status)
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Subject != nil {
		c.Subject = *req.Subject
	}
	if req.Body != nil {
		c.Body = *req.Body
	}

	if err := s.campaigns.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Publish flips a draft live and emits the campaign.published event for
// downstream delivery workers.
func (s *Service) Publish(ctx context.Context, tenantID, id uuid.UUID) (*domain.Campaign, error) {
	c, err := s.campaigns.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if c.Status != domain.CampaignDraft {
		return nil, fmt.Errorf("%w: campaign is %s", domain.ErrInvalidState, c.Status)
	}

	now := time.Now().UTC()
	c.Status = domain.CampaignPublished
	c.PublishedAt = &now

	if err := s.campaigns.Save(ctx, c); err != nil {
		return nil, err
	}

	s.pub.Publish(events.TopicCampaigns, events.CampaignPublished, tenantID, c.ID)
	return c, nil
}

func (s *Service) Archive(ctx context.Context, tenantID, id uuid.UUID) (*domain.Campaign, error) {
	c, err := s.campaigns.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if c.Status == domain.CampaignArchived {
		return nil, fmt.Errorf("%w: campaign already archived", domain.ErrInvalidState)
	}

	c.Status = domain.CampaignArchived
	if err := s.campaigns.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// AddSocialPost attaches a social post draft to a social campaign.
func (s *Service) AddSocialPost(ctx context.Context, tenantID, campaignID uuid.UUID, req CreateSocialPostRequest) (*domain.SocialPost, error) {
	c, err := s.campaigns.GetByID(ctx, tenantID, campaignID)
	if err != nil {
		return nil, err
	}
	if c.Channel != domain.ChannelSocial {
		return nil, fmt.Errorf("%w: campaign channel is %s", domain.ErrValidation, c.Channel)
	}

	p := &domain.SocialPost{
		TenantID:    tenantID,
		CampaignID:  c.ID,
		Network:     req.Network,
		Content:     req.Content,
		Status:      "draft",
		ScheduledAt: req.ScheduledAt,
	}
	if err := s.campaigns.CreateSocialPost(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
