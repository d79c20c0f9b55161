package booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"spacehub/internal/domain"
	"spacehub/internal/pkg/cache"
	"spacehub/internal/repository"
)

// Mock stores

type MockBookingStore struct {
	mock.Mock
}

func (m *MockBookingStore) CreateIfAvailable(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil && b.ID == uuid.Nil {
		b.ID = uuid.New() // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingStore) UpdateTimesIfAvailable(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingStore) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Booking, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingStore) List(ctx context.Context, tenantID uuid.UUID, f repository.BookingFilter) ([]domain.Booking, int64, error) {
	args := m.Called(ctx, tenantID, f)
	return args.Get(0).([]domain.Booking), args.Get(1).(int64), args.Error(2)
}

func (m *MockBookingStore) ListOverlapping(ctx context.Context, tenantID, unitID uuid.UUID, start, end time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, tenantID, unitID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingStore) CountOverlapping(ctx context.Context, tenantID, unitID uuid.UUID, start, end time.Time, excludeID uuid.UUID) (int64, error) {
	args := m.Called(ctx, tenantID, unitID, start, end, excludeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingStore) Save(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingStore) Stats(ctx context.Context, tenantID uuid.UUID) (*domain.BookingStats, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingStats), args.Error(1)
}

type MockUnitStore struct {
	mock.Mock
}

func (m *MockUnitStore) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Unit, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Unit), args.Error(1)
}

func (m *MockUnitStore) Pricing(ctx context.Context, unitID uuid.UUID) ([]domain.UnitPricing, error) {
	args := m.Called(ctx, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UnitPricing), args.Error(1)
}

type noopPublisher struct{}

func (noopPublisher) Publish(topic, eventType string, tenantID, entityID uuid.UUID) {}

type noopCache struct{}

func (noopCache) GetJSON(ctx context.Context, key string, out any) error { return cache.ErrMiss }
func (noopCache) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	return nil
}
func (noopCache) Delete(ctx context.Context, keys ...string) error { return nil }

func newTestService(bookings *MockBookingStore, units *MockUnitStore) *Service {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewService(bookings, units, noopPublisher{}, noopCache{}, log)
}

func at(h int) time.Time {
	return time.Date(2026, 9, 1, h, 0, 0, 0, time.UTC)
}

func availableUnit(tenantID uuid.UUID) *domain.Unit {
	return &domain.Unit{
		ID:       uuid.New(),
		TenantID: tenantID,
		Name:     "Room A",
		Category: domain.UnitMeetingRoom,
		Status:   domain.UnitAvailable,
	}
}

func TestCreateBooking_Success(t *testing.T) {
	bookings := new(MockBookingStore)
	units := new(MockUnitStore)
	svc := newTestService(bookings, units)

	tenantID := uuid.New()
	userID := uuid.New()
	unit := availableUnit(tenantID)

	units.On("GetByID", mock.Anything, tenantID, unit.ID).Return(unit, nil)
	units.On("Pricing", mock.Anything, unit.ID).Return([]domain.UnitPricing{
		{UnitID: unit.ID, Model: domain.PricingHourly, Price: 50, Currency: "USD"},
	}, nil)
	bookings.On("CreateIfAvailable", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)

	b, err := svc.CreateBooking(context.Background(), tenantID, userID, CreateBookingRequest{
		UnitID:  unit.ID,
		StartAt: at(10),
		EndAt:   at(12),
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, domain.PricingHourly, b.PricingModel)
	assert.Equal(t, 100.0, b.TotalPrice)
	assert.Equal(t, domain.BookingUnpaid, b.PaymentStatus)
	bookings.AssertExpectations(t)
}

func TestCreateBooking_InvalidRange(t *testing.T) {
	svc := newTestService(new(MockBookingStore), new(MockUnitStore))

	_, err := svc.CreateBooking(context.Background(), uuid.New(), uuid.New(), CreateBookingRequest{
		UnitID:  uuid.New(),
		StartAt: at(12),
		EndAt:   at(10),
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreateBooking_Conflict(t *testing.T) {
	bookings := new(MockBookingStore)
	units := new(MockUnitStore)
	svc := newTestService(bookings, units)

	tenantID := uuid.New()
	unit := availableUnit(tenantID)

	units.On("GetByID", mock.Anything, tenantID, unit.ID).Return(unit, nil)
	units.On("Pricing", mock.Anything, unit.ID).Return([]domain.UnitPricing{
		{UnitID: unit.ID, Model: domain.PricingHourly, Price: 50},
	}, nil)
	bookings.On("CreateIfAvailable", mock.Anything, mock.Anything).Return(domain.ErrConflict)

	_, err := svc.CreateBooking(context.Background(), tenantID, uuid.New(), CreateBookingRequest{
		UnitID:  unit.ID,
		StartAt: at(10),
		EndAt:   at(12),
	})

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreateBooking_NoPricing(t *testing.T) {
	bookings := new(MockBookingStore)
	units := new(MockUnitStore)
	svc := newTestService(bookings, units)

	tenantID := uuid.New()
	unit := availableUnit(tenantID)

	units.On("GetByID", mock.Anything, tenantID, unit.ID).Return(unit, nil)
	units.On("Pricing", mock.Anything, unit.ID).Return([]domain.UnitPricing{}, nil)

	_, err := svc.CreateBooking(context.Background(), tenantID, uuid.New(), CreateBookingRequest{
		UnitID:  unit.ID,
		StartAt: at(10),
		EndAt:   at(12),
	})

	assert.ErrorIs(t, err, domain.ErrNoPricing)
}

func TestCreateBooking_UnitNotAvailable(t *testing.T) {
	bookings := new(MockBookingStore)
	units := new(MockUnitStore)
	svc := newTestService(bookings, units)

	tenantID := uuid.New()
	unit := availableUnit(tenantID)
	unit.Status = domain.UnitMaintenance

	units.On("GetByID", mock.Anything, tenantID, unit.ID).Return(unit, nil)

	_, err := svc.CreateBooking(context.Background(), tenantID, uuid.New(), CreateBookingRequest{
		UnitID:  unit.ID,
		StartAt: at(10),
		EndAt:   at(12),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestIsAvailable_HalfOpenBoundary(t *testing.T) {
	bookings := new(MockBookingStore)
	units := new(MockUnitStore)
	svc := newTestService(bookings, units)

	tenantID := uuid.New()
	unit := availableUnit(tenantID)
	units.On("GetByID", mock.Anything, tenantID, unit.ID).Return(unit, nil)

	// Existing booking 10:00-12:00. A request for 11:00-13:00 overlaps,
	// 12:00-13:00 touches the boundary and does not.
	bookings.On("CountOverlapping", mock.Anything, tenantID, unit.ID, at(11), at(13), uuid.Nil).
		Return(int64(1), nil)
	bookings.On("CountOverlapping", mock.Anything, tenantID, unit.ID, at(12), at(13), uuid.Nil).
		Return(int64(0), nil)

	ok, err := svc.IsAvailable(context.Background(), tenantID, unit.ID, at(11), at(13))
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.IsAvailable(context.Background(), tenantID, unit.ID, at(12), at(13))
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestFindAvailableSlots(t *testing.T) {
	bookings := new(MockBookingStore)
	units := new(MockUnitStore)
	svc := newTestService(bookings, units)

	tenantID := uuid.New()
	unit := availableUnit(tenantID)
	units.On("GetByID", mock.Anything, tenantID, unit.ID).Return(unit, nil)

	busy := []domain.Booking{
		{UnitID: unit.ID, StartAt: at(10), EndAt: at(11), Status: domain.BookingConfirmed},
		{UnitID: unit.ID, StartAt: at(13), EndAt: at(15), Status: domain.BookingPending},
	}
	bookings.On("ListOverlapping", mock.Anything, tenantID, unit.ID, at(9), at(17)).
		Return(busy, nil)

	slots, err := svc.FindAvailableSlots(context.Background(), tenantID, unit.ID, at(9), at(17))
	assert.NoError(t, err)
	assert.Equal(t, []Slot{
		{StartAt: at(9), EndAt: at(10)},
		{StartAt: at(11), EndAt: at(13)},
		{StartAt: at(15), EndAt: at(17)},
	}, slots)
}

func TestFindAvailableSlots_FullyBooked(t *testing.T) {
	bookings := new(MockBookingStore)
	units := new(MockUnitStore)
	svc := newTestService(bookings, units)

	tenantID := uuid.New()
	unit := availableUnit(tenantID)
	units.On("GetByID", mock.Anything, tenantID, unit.ID).Return(unit, nil)

	busy := []domain.Booking{
		{UnitID: unit.ID, StartAt: at(8), EndAt: at(18), Status: domain.BookingConfirmed},
	}
	bookings.On("ListOverlapping", mock.Anything, tenantID, unit.ID, at(9), at(17)).
		Return(busy, nil)

	slots, err := svc.FindAvailableSlots(context.Background(), tenantID, unit.ID, at(9), at(17))
	assert.NoError(t, err)
	assert.Empty(t, slots)
}

func TestSubtractBusy_OverlappingBusyRanges(t *testing.T) {
	busy := []domain.Booking{
		{StartAt: at(10), EndAt: at(13)},
		{StartAt: at(12), EndAt: at(14)}, // overlaps the previous range
	}

	slots := subtractBusy(at(9), at(16), busy)

	assert.Equal(t, []Slot{
		{StartAt: at(9), EndAt: at(10)},
		{StartAt: at(14), EndAt: at(16)},
	}, slots)
}

func TestUpdateStatus_Transitions(t *testing.T) {
	cases := []struct {
		name string
		from domain.BookingStatus
		to   domain.BookingStatus
		ok   bool
	}{
		{"pending to confirmed", domain.BookingPending, domain.BookingConfirmed, true},
		{"pending to cancelled", domain.BookingPending, domain.BookingCancelled, true},
		{"pending to completed", domain.BookingPending, domain.BookingCompleted, false},
		{"confirmed to completed", domain.BookingConfirmed, domain.BookingCompleted, true},
		{"confirmed to no_show", domain.BookingConfirmed, domain.BookingNoShow, true},
		{"completed to pending", domain.BookingCompleted, domain.BookingPending, false},
		{"completed to cancelled", domain.BookingCompleted, domain.BookingCancelled, false},
		{"cancelled to confirmed", domain.BookingCancelled, domain.BookingConfirmed, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bookings := new(MockBookingStore)
			units := new(MockUnitStore)
			svc := newTestService(bookings, units)

			tenantID := uuid.New()
			b := &domain.Booking{ID: uuid.New(), TenantID: tenantID, Status: tc.from}
			bookings.On("GetByID", mock.Anything, tenantID, b.ID).Return(b, nil)
			if tc.ok {
				bookings.On("Save", mock.Anything, b).Return(nil)
			}

			got, err := svc.UpdateStatus(context.Background(), tenantID, b.ID, string(domain.RoleAdmin), tc.to)
			if tc.ok {
				assert.NoError(t, err)
				assert.Equal(t, tc.to, got.Status)
			} else {
				assert.ErrorIs(t, err, domain.ErrInvalidTransition)
			}
		})
	}
}

func TestUpdateStatus_NoShowRequiresManager(t *testing.T) {
	bookings := new(MockBookingStore)
	units := new(MockUnitStore)
	svc := newTestService(bookings, units)

	tenantID := uuid.New()
	b := &domain.Booking{ID: uuid.New(), TenantID: tenantID, Status: domain.BookingConfirmed}
	bookings.On("GetByID", mock.Anything, tenantID, b.ID).Return(b, nil)

	_, err := svc.UpdateStatus(context.Background(), tenantID, b.ID, string(domain.RoleMember), domain.BookingNoShow)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	bookings.On("Save", mock.Anything, b).Return(nil)
	got, err := svc.UpdateStatus(context.Background(), tenantID, b.ID, string(domain.RoleManager), domain.BookingNoShow)
	assert.NoError(t, err)
	assert.Equal(t, domain.BookingNoShow, got.Status)
}

func TestUpdateStatus_CancelSetsTimestamp(t *testing.T) {
	bookings := new(MockBookingStore)
	units := new(MockUnitStore)
	svc := newTestService(bookings, units)

	tenantID := uuid.New()
	b := &domain.Booking{ID: uuid.New(), TenantID: tenantID, Status: domain.BookingPending}
	bookings.On("GetByID", mock.Anything, tenantID, b.ID).Return(b, nil)
	bookings.On("Save", mock.Anything, b).Return(nil)

	got, err := svc.UpdateStatus(context.Background(), tenantID, b.ID, string(domain.RoleMember), domain.BookingCancelled)
	assert.NoError(t, err)
	assert.NotNil(t, got.CancelledAt)
}

func TestUpdate_OnlyPending(t *testing.T) {
	bookings := new(MockBookingStore)
	units := new(MockUnitStore)
	svc := newTestService(bookings, units)

	tenantID := uuid.New()
	b := &domain.Booking{ID: uuid.New(), TenantID: tenantID, Status: domain.BookingConfirmed}
	bookings.On("GetByID", mock.Anything, tenantID, b.ID).Return(b, nil)

	newStart := at(14)
	_, err := svc.Update(context.Background(), tenantID, b.ID, UpdateBookingRequest{StartAt: &newStart})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestUpdate_ReschedulesThroughAvailabilityCheck(t *testing.T) {
	bookings := new(MockBookingStore)
	units := new(MockUnitStore)
	svc := newTestService(bookings, units)

	tenantID := uuid.New()
	b := &domain.Booking{
		ID:       uuid.New(),
		TenantID: tenantID,
		Status:   domain.BookingPending,
		StartAt:  at(10),
		EndAt:    at(12),
	}
	bookings.On("GetByID", mock.Anything, tenantID, b.ID).Return(b, nil)
	bookings.On("UpdateTimesIfAvailable", mock.Anything, b).Return(domain.ErrConflict)

	newStart, newEnd := at(14), at(16)
	_, err := svc.Update(context.Background(), tenantID, b.ID, UpdateBookingRequest{
		StartAt: &newStart,
		EndAt:   &newEnd,
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestPickPricing_ModelByDuration(t *testing.T) {
	pricing := []domain.UnitPricing{
		{Model: domain.PricingHourly, Price: 10},
		{Model: domain.PricingDaily, Price: 100},
		{Model: domain.PricingMonthly, Price: 2000},
		{Model: domain.PricingYearly, Price: 20000},
	}

	cases := []struct {
		name     string
		duration time.Duration
		want     domain.PricingModel
	}{
		{"two hours", 2 * time.Hour, domain.PricingHourly},
		{"three days", 3 * 24 * time.Hour, domain.PricingDaily},
		{"two months", 60 * 24 * time.Hour, domain.PricingMonthly},
		{"two years", 2 * 365 * 24 * time.Hour, domain.PricingYearly},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := pickPricing(pricing, tc.duration)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, p.Model)
		})
	}
}

func TestPickPricing_FallsBackWhenPreferredMissing(t *testing.T) {
	pricing := []domain.UnitPricing{{Model: domain.PricingDaily, Price: 100}}

	p, err := pickPricing(pricing, 2*time.Hour)
	assert.NoError(t, err)
	assert.Equal(t, domain.PricingDaily, p.Model)
}

func TestComputeTotal(t *testing.T) {
	cases := []struct {
		name     string
		pricing  domain.UnitPricing
		duration time.Duration
		want     float64
	}{
		{"fixed", domain.UnitPricing{Model: domain.PricingFixed, Price: 500}, 3 * time.Hour, 500},
		{"fractional hours", domain.UnitPricing{Model: domain.PricingHourly, Price: 40}, 90 * time.Minute, 60},
		{"daily rounds up", domain.UnitPricing{Model: domain.PricingDaily, Price: 100}, 25 * time.Hour, 200},
		{"monthly rounds up", domain.UnitPricing{Model: domain.PricingMonthly, Price: 2000}, 31 * 24 * time.Hour, 4000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, computeTotal(&tc.pricing, tc.duration))
		})
	}
}

func TestStats_CacheMissReadsStore(t *testing.T) {
	bookings := new(MockBookingStore)
	units := new(MockUnitStore)
	svc := newTestService(bookings, units)

	tenantID := uuid.New()
	want := &domain.BookingStats{Total: 5, Confirmed: 3, Revenue: 1200}
	bookings.On("Stats", mock.Anything, tenantID).Return(want, nil)

	got, err := svc.Stats(context.Background(), tenantID)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}
