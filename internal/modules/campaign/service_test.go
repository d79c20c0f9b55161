package campaign

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"spacehub/internal/domain"
)

type MockCampaignStore struct {
	mock.Mock
}

func (m *MockCampaignStore) Create(ctx context.Context, c *domain.Campaign) error {
	args := m.Called(ctx, c)
	if c != nil && c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockCampaignStore) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Campaign, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Campaign), args.Error(1)
}

func (m *MockCampaignStore) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]domain.Campaign, int64, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	return args.Get(0).([]domain.Campaign), args.Get(1).(int64), args.Error(2)
}

func (m *MockCampaignStore) Save(ctx context.Context, c *domain.Campaign) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCampaignStore) CreateSocialPost(ctx context.Context, p *domain.SocialPost) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type recordingPublisher struct {
	events []string
}

func (r *recordingPublisher) Publish(topic, eventType string, tenantID, entityID uuid.UUID) {
	r.events = append(r.events, eventType)
}

func TestPublish_DraftOnly(t *testing.T) {
	store := new(MockCampaignStore)
	pub := &recordingPublisher{}
	svc := NewService(store, pub)

	tenantID := uuid.New()
	c := &domain.Campaign{ID: uuid.New(), TenantID: tenantID, Status: domain.CampaignDraft}
	store.On("GetByID", mock.Anything, tenantID, c.ID).Return(c, nil)
	store.On("Save", mock.Anything, c).Return(nil)

	got, err := svc.Publish(context.Background(), tenantID, c.ID)

	assert.NoError(t, err)
	assert.Equal(t, domain.CampaignPublished, got.Status)
	assert.NotNil(t, got.PublishedAt)
	assert.Equal(t, []string{"campaign.published"}, pub.events)
}

func TestPublish_AlreadyPublished(t *testing.T) {
	store := new(MockCampaignStore)
	pub := &recordingPublisher{}
	svc := NewService(store, pub)

	tenantID := uuid.New()
	c := &domain.Campaign{ID: uuid.New(), TenantID: tenantID, Status: domain.CampaignPublished}
	store.On("GetByID", mock.Anything, tenantID, c.ID).Return(c, nil)

	_, err := svc.Publish(context.Background(), tenantID, c.ID)

	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Empty(t, pub.events)
}

func TestUpdate_PublishedIsImmutable(t *testing.T) {
	store := new(MockCampaignStore)
	svc := NewService(store, &recordingPublisher{})

	tenantID := uuid.New()
	c := &domain.Campaign{ID: uuid.New(), TenantID: tenantID, Status: domain.CampaignPublished}
	store.On("GetByID", mock.Anything, tenantID, c.ID).Return(c, nil)

	name := "renamed"
	_, err := svc.Update(context.Background(), tenantID, c.ID, UpdateCampaignRequest{Name: &name})

	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestAddSocialPost_SocialChannelOnly(t *testing.T) {
	store := new(MockCampaignStore)
	svc := NewService(store, &recordingPublisher{})

	tenantID := uuid.New()
	c := &domain.Campaign{ID: uuid.New(), TenantID: tenantID, Channel: domain.ChannelEmail, Status: domain.CampaignDraft}
	store.On("GetByID", mock.Anything, tenantID, c.ID).Return(c, nil)

	_, err := svc.AddSocialPost(context.Background(), tenantID, c.ID, CreateSocialPostRequest{
		Network: "instagram",
		Content: "hello",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAddSocialPost_Success(t *testing.T) {
	store := new(MockCampaignStore)
	svc := NewService(store, &recordingPublisher{})

	tenantID := uuid.New()
	c := &domain.Campaign{ID: uuid.New(), TenantID: tenantID, Channel: domain.ChannelSocial, Status: domain.CampaignDraft}
	store.On("GetByID", mock.Anything, tenantID, c.ID).Return(c, nil)
	store.On("CreateSocialPost", mock.Anything, mock.AnythingOfType("*domain.SocialPost")).Return(nil)

	p, err := svc.AddSocialPost(context.Background(), tenantID, c.ID, CreateSocialPostRequest{
		Network: "instagram",
		Content: "open day this friday",
	})

	assert.NoError(t, err)
	assert.Equal(t, c.ID, p.CampaignID)
	assert.Equal(t, "draft", p.Status)
}
