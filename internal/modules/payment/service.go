package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"spacehub/internal/domain"
)

type Service struct {
	payments PaymentStore
	bookings BookingReader
	checkout CheckoutProvider
	log      *logrus.Logger
}

func NewService(payments PaymentStore, bookings BookingReader, checkout CheckoutProvider, log *logrus.Logger) *Service {
	return &Service{payments: payments, bookings: bookings, checkout: checkout, log: log}
}

// Checkout opens a payment for a booking. Amount and currency come from the
// booking's price snapshot, never from the client.
func (s *Service) Checkout(ctx context.Context, tenantID, userID uuid.UUID, req CreatePaymentRequest) (*domain.Payment, string, error) {
	b, err := s.bookings.GetByID(ctx, tenantID, req.BookingID)
	if err != nil {
		return nil, "", err
	}
	if b.Status != domain.BookingPending && b.Status != domain.BookingConfirmed {
		return nil, "", fmt.Errorf("%w: booking is %s", domain.ErrInvalidState, b.Status)
	}
	if b.PaymentStatus == domain.BookingPaid {
		return nil, "", fmt.Errorf("%w: booking already paid", domain.ErrInvalidState)
	}

	p := &domain.Payment{
		TenantID:  tenantID,
		BookingID: b.ID,
		UserID:    userID,
		Amount:    b.TotalPrice,
		Currency:  b.Currency,
		Status:    domain.PaymentPending,
		Provider:  "stripe",
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, "", err
	}

	var checkoutURL string
	if s.checkout != nil {
		sessID, url, err := s.checkout.CreateSession(ctx, p, fmt.Sprintf("Booking %s", b.ID))
		if err != nil {
			// Payment row stays pending; the client can retry checkout.
			s.log.WithError(err).WithField("payment_id", p.ID.String()).Error("checkout session")
			return nil, "", err
		}
		p.TransactionID = sessID
		checkoutURL = url
		if err := s.payments.Save(ctx, p); err != nil {
			return nil, "", err
		}
	}

	return p, checkoutURL, nil
}

// Complete confirms the payment and marks the booking paid atomically.
func (s *Service) Complete(ctx context.Context, tenantID, id uuid.UUID, req CompletePaymentRequest) (*domain.Payment, error) {
	p, err := s.payments.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if p.Status != domain.PaymentPending {
		return nil, fmt.Errorf("%w: payment is %s", domain.ErrInvalidState, p.Status)
	}

	now := time.Now().UTC()
	p.Status = domain.PaymentCompleted
	p.TransactionID = req.TransactionID
	p.PaidAt = &now

	if err := s.payments.MarkCompleted(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Fail records a provider-side failure.
func (s *Service) Fail(ctx context.Context, tenantID, id uuid.UUID) (*domain.Payment, error) {
	p, err := s.payments.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if p.Status != domain.PaymentPending {
		return nil, fmt.Errorf("%w: payment is %s", domain.ErrInvalidState, p.Status)
	}

	p.Status = domain.PaymentFailed
	if err := s.payments.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, tenantID, id uuid.UUID) (*domain.Payment, error) {
	return s.payments.GetByID(ctx, tenantID, id)
}

func (s *Service) ListByBooking(ctx context.Context, tenantID, bookingID uuid.UUID) ([]domain.Payment, error) {
	return s.payments.ListByBooking(ctx, tenantID, bookingID)
}
