package lead

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"spacehub/internal/domain"
	"spacehub/internal/modules/booking"
)

type MockLeadStore struct {
	mock.Mock
}

func (m *MockLeadStore) Create(ctx context.Context, l *domain.Lead) error {
	args := m.Called(ctx, l)
	if l != nil && l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockLeadStore) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Lead, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lead), args.Error(1)
}

func (m *MockLeadStore) List(ctx context.Context, tenantID uuid.UUID, status *domain.LeadStatus, limit, offset int) ([]domain.Lead, int64, error) {
	args := m.Called(ctx, tenantID, status, limit, offset)
	return args.Get(0).([]domain.Lead), args.Get(1).(int64), args.Error(2)
}

func (m *MockLeadStore) Save(ctx context.Context, l *domain.Lead) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLeadStore) ConvertToBooking(ctx context.Context, lead *domain.Lead, b *domain.Booking) error {
	args := m.Called(ctx, lead, b)
	if args.Error(0) == nil {
		b.ID = uuid.New()
		now := time.Now().UTC()
		lead.Status = domain.LeadConverted
		lead.BookingID = &b.ID
		lead.ConvertedAt = &now
	}
	return args.Error(0)
}

type MockBookingBuilder struct {
	mock.Mock
}

func (m *MockBookingBuilder) BuildBooking(ctx context.Context, tenantID, userID uuid.UUID, req booking.CreateBookingRequest) (*domain.Booking, error) {
	args := m.Called(ctx, tenantID, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type noopPublisher struct{}

func (noopPublisher) Publish(topic, eventType string, tenantID, entityID uuid.UUID) {}

func newTestService(leads *MockLeadStore, builder *MockBookingBuilder) *Service {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewService(leads, builder, noopPublisher{}, log)
}

func at(h int) time.Time {
	return time.Date(2026, 9, 1, h, 0, 0, 0, time.UTC)
}

func TestCreate_DefaultsSourceAndStatus(t *testing.T) {
	leads := new(MockLeadStore)
	svc := newTestService(leads, new(MockBookingBuilder))

	tenantID := uuid.New()
	leads.On("Create", mock.Anything, mock.AnythingOfType("*domain.Lead")).Return(nil)

	l, err := svc.Create(context.Background(), tenantID, CreateLeadRequest{Name: "Jane Prospect"})

	assert.NoError(t, err)
	assert.Equal(t, domain.LeadNew, l.Status)
	assert.Equal(t, "website", l.Source)
}

func TestConvert_Success(t *testing.T) {
	leads := new(MockLeadStore)
	builder := new(MockBookingBuilder)
	svc := newTestService(leads, builder)

	tenantID := uuid.New()
	userID := uuid.New()
	unitID := uuid.New()
	lead := &domain.Lead{ID: uuid.New(), TenantID: tenantID, Name: "Jane", Status: domain.LeadQualified}

	built := &domain.Booking{
		TenantID:   tenantID,
		UnitID:     unitID,
		UserID:     userID,
		StartAt:    at(10),
		EndAt:      at(12),
		Status:     domain.BookingPending,
		TotalPrice: 100,
	}

	leads.On("GetByID", mock.Anything, tenantID, lead.ID).Return(lead, nil)
	builder.On("BuildBooking", mock.Anything, tenantID, userID, mock.AnythingOfType("booking.CreateBookingRequest")).
		Return(built, nil)
	leads.On("ConvertToBooking", mock.Anything, lead, built).Return(nil)

	gotLead, gotBooking, err := svc.Convert(context.Background(), tenantID, userID, lead.ID, ConvertLeadRequest{
		UnitID:  unitID,
		StartAt: at(10),
		EndAt:   at(12),
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.LeadConverted, gotLead.Status)
	assert.NotNil(t, gotLead.BookingID)
	assert.Equal(t, gotBooking.ID, *gotLead.BookingID)
	leads.AssertExpectations(t)
}

func TestConvert_AlreadyConverted(t *testing.T) {
	leads := new(MockLeadStore)
	builder := new(MockBookingBuilder)
	svc := newTestService(leads, builder)

	tenantID := uuid.New()
	lead := &domain.Lead{ID: uuid.New(), TenantID: tenantID, Status: domain.LeadConverted}
	leads.On("GetByID", mock.Anything, tenantID, lead.ID).Return(lead, nil)

	_, _, err := svc.Convert(context.Background(), tenantID, uuid.New(), lead.ID, ConvertLeadRequest{
		UnitID:  uuid.New(),
		StartAt: at(10),
		EndAt:   at(12),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidState)
	builder.AssertNotCalled(t, "BuildBooking", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestConvert_LostLead(t *testing.T) {
	leads := new(MockLeadStore)
	svc := newTestService(leads, new(MockBookingBuilder))

	tenantID := uuid.New()
	lead := &domain.Lead{ID: uuid.New(), TenantID: tenantID, Status: domain.LeadLost}
	leads.On("GetByID", mock.Anything, tenantID, lead.ID).Return(lead, nil)

	_, _, err := svc.Convert(context.Background(), tenantID, uuid.New(), lead.ID, ConvertLeadRequest{
		UnitID:  uuid.New(),
		StartAt: at(10),
		EndAt:   at(12),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestConvert_NotFound(t *testing.T) {
	leads := new(MockLeadStore)
	svc := newTestService(leads, new(MockBookingBuilder))

	tenantID := uuid.New()
	id := uuid.New()
	leads.On("GetByID", mock.Anything, tenantID, id).Return(nil, domain.ErrNotFound)

	_, _, err := svc.Convert(context.Background(), tenantID, uuid.New(), id, ConvertLeadRequest{
		UnitID:  uuid.New(),
		StartAt: at(10),
		EndAt:   at(12),
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConvert_ConflictLeavesLeadOpen(t *testing.T) {
	leads := new(MockLeadStore)
	builder := new(MockBookingBuilder)
	svc := newTestService(leads, builder)

	tenantID := uuid.New()
	userID := uuid.New()
	lead := &domain.Lead{ID: uuid.New(), TenantID: tenantID, Status: domain.LeadQualified}
	built := &domain.Booking{TenantID: tenantID, UnitID: uuid.New(), UserID: userID}

	leads.On("GetByID", mock.Anything, tenantID, lead.ID).Return(lead, nil)
	builder.On("BuildBooking", mock.Anything, tenantID, userID, mock.Anything).Return(built, nil)
	leads.On("ConvertToBooking", mock.Anything, lead, built).Return(domain.ErrConflict)

	_, _, err := svc.Convert(context.Background(), tenantID, userID, lead.ID, ConvertLeadRequest{
		UnitID:  built.UnitID,
		StartAt: at(10),
		EndAt:   at(12),
	})

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, domain.LeadQualified, lead.Status)
	assert.Nil(t, lead.BookingID)
}

func TestUpdate_StatusPipeline(t *testing.T) {
	leads := new(MockLeadStore)
	svc := newTestService(leads, new(MockBookingBuilder))

	tenantID := uuid.New()
	lead := &domain.Lead{ID: uuid.New(), TenantID: tenantID, Status: domain.LeadNew}
	leads.On("GetByID", mock.Anything, tenantID, lead.ID).Return(lead, nil)
	leads.On("Save", mock.Anything, lead).Return(nil)

	code := domain.LeadContacted.Code()
	got, err := svc.Update(context.Background(), tenantID, lead.ID, UpdateLeadRequest{Status: &code})

	assert.NoError(t, err)
	assert.Equal(t, domain.LeadContacted, got.Status)
	assert.NotNil(t, got.ContactedAt)
}

func TestUpdate_CannotSetConvertedDirectly(t *testing.T) {
	leads := new(MockLeadStore)
	svc := newTestService(leads, new(MockBookingBuilder))

	tenantID := uuid.New()
	lead := &domain.Lead{ID: uuid.New(), TenantID: tenantID, Status: domain.LeadQualified}
	leads.On("GetByID", mock.Anything, tenantID, lead.ID).Return(lead, nil)

	code := domain.LeadConverted.Code()
	_, err := svc.Update(context.Background(), tenantID, lead.ID, UpdateLeadRequest{Status: &code})

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestUpdate_ClosedLeadRejectsStatusChange(t *testing.T) {
	leads := new(MockLeadStore)
	svc := newTestService(leads, new(MockBookingBuilder))

	tenantID := uuid.New()
	lead := &domain.Lead{ID: uuid.New(), TenantID: tenantID, Status: domain.LeadLost}
	leads.On("GetByID", mock.Anything, tenantID, lead.ID).Return(lead, nil)

	code := domain.LeadContacted.Code()
	_, err := svc.Update(context.Background(), tenantID, lead.ID, UpdateLeadRequest{Status: &code})

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}
