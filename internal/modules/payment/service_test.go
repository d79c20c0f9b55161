package payment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"spacehub/internal/domain"
)

type MockPaymentStore struct {
	mock.Mock
}

func (m *MockPaymentStore) Create(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	if p != nil && p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockPaymentStore) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Payment, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentStore) ListByBooking(ctx context.Context, tenantID, bookingID uuid.UUID) ([]domain.Payment, error) {
	args := m.Called(ctx, tenantID, bookingID)
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentStore) Save(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentStore) MarkCompleted(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type MockBookingReader struct {
	mock.Mock
}

func (m *MockBookingReader) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Booking, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type stubCheckout struct {
	id  string
	url string
	err error
}

func (s stubCheckout) CreateSession(ctx context.Context, p *domain.Payment, description string) (string, string, error) {
	return s.id, s.url, s.err
}

func newTestService(payments *MockPaymentStore, bookings *MockBookingReader, checkout CheckoutProvider) *Service {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewService(payments, bookings, checkout, log)
}

func TestCheckout_AmountFromBookingSnapshot(t *testing.T) {
	payments := new(MockPaymentStore)
	bookings := new(MockBookingReader)
	svc := newTestService(payments, bookings, stubCheckout{id: "cs_123", url: "https://pay.example/cs_123"})

	tenantID := uuid.New()
	b := &domain.Booking{
		ID:            uuid.New(),
		TenantID:      tenantID,
		Status:        domain.BookingConfirmed,
		PaymentStatus: domain.BookingUnpaid,
		TotalPrice:    250.50,
		Currency:      "EUR",
	}
	bookings.On("GetByID", mock.Anything, tenantID, b.ID).Return(b, nil)
	payments.On("Create", mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(nil)
	payments.On("Save", mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(nil)

	p, url, err := svc.Checkout(context.Background(), tenantID, uuid.New(), CreatePaymentRequest{BookingID: b.ID})

	assert.NoError(t, err)
	assert.Equal(t, 250.50, p.Amount)
	assert.Equal(t, "EUR", p.Currency)
	assert.Equal(t, "cs_123", p.TransactionID)
	assert.Equal(t, "https://pay.example/cs_123", url)
}

func TestCheckout_AlreadyPaid(t *testing.T) {
	payments := new(MockPaymentStore)
	bookings := new(MockBookingReader)
	svc := newTestService(payments, bookings, stubCheckout{})

	tenantID := uuid.New()
	b := &domain.Booking{
		ID:            uuid.New(),
		TenantID:      tenantID,
		Status:        domain.BookingConfirmed,
		PaymentStatus: domain.BookingPaid,
	}
	bookings.On("GetByID", mock.Anything, tenantID, b.ID).Return(b, nil)

	_, _, err := svc.Checkout(context.Background(), tenantID, uuid.New(), CreatePaymentRequest{BookingID: b.ID})

	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestCheckout_CancelledBooking(t *testing.T) {
	payments := new(MockPaymentStore)
	bookings := new(MockBookingReader)
	svc := newTestService(payments, bookings, stubCheckout{})

	tenantID := uuid.New()
	b := &domain.Booking{ID: uuid.New(), TenantID: tenantID, Status: domain.BookingCancelled}
	bookings.On("GetByID", mock.Anything, tenantID, b.ID).Return(b, nil)

	_, _, err := svc.Checkout(context.Background(), tenantID, uuid.New(), CreatePaymentRequest{BookingID: b.ID})

	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestComplete_MarksPaidAndSetsTimestamp(t *testing.T) {
	payments := new(MockPaymentStore)
	bookings := new(MockBookingReader)
	svc := newTestService(payments, bookings, stubCheckout{})

	tenantID := uuid.New()
	p := &domain.Payment{ID: uuid.New(), TenantID: tenantID, Status: domain.PaymentPending}
	payments.On("GetByID", mock.Anything, tenantID, p.ID).Return(p, nil)
	payments.On("MarkCompleted", mock.Anything, p).Return(nil)

	got, err := svc.Complete(context.Background(), tenantID, p.ID, CompletePaymentRequest{TransactionID: "txn_1"})

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentCompleted, got.Status)
	assert.Equal(t, "txn_1", got.TransactionID)
	assert.NotNil(t, got.PaidAt)
	assert.WithinDuration(t, time.Now().UTC(), *got.PaidAt, 5*time.Second)
}

func TestComplete_NotPending(t *testing.T) {
	payments := new(MockPaymentStore)
	bookings := new(MockBookingReader)
	svc := newTestService(payments, bookings, stubCheckout{})

	tenantID := uuid.New()
	p := &domain.Payment{ID: uuid.New(), TenantID: tenantID, Status: domain.PaymentCompleted}
	payments.On("GetByID", mock.Anything, tenantID, p.ID).Return(p, nil)

	_, err := svc.Complete(context.Background(), tenantID, p.ID, CompletePaymentRequest{TransactionID: "txn_2"})

	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestFail_PendingOnly(t *testing.T) {
	payments := new(MockPaymentStore)
	bookings := new(MockBookingReader)
	svc := newTestService(payments, bookings, stubCheckout{})

	tenantID := uuid.New()
	p := &domain.Payment{ID: uuid.New(), TenantID: tenantID, Status: domain.PaymentPending}
	payments.On("GetByID", mock.Anything, tenantID, p.ID).Return(p, nil)
	payments.On("Save", mock.Anything, p).Return(nil)

	got, err := svc.Fail(context.Background(), tenantID, p.ID)

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentFailed, got.Status)
}
