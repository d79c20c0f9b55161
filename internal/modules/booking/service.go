package booking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"spacehub/internal/domain"
	"spacehub/internal/pkg/cache"
	"spacehub/internal/pkg/events"
	"spacehub/internal/repository"
)

const statsTTL = 60 * time.Second

type Service struct {
	bookings BookingStore
	units    UnitStore
	pub      EventPublisher
	cache    StatsCache
	log      *logrus.Logger
}

func NewService(bookings BookingStore, units UnitStore, pub EventPublisher, c StatsCache, log *logrus.Logger) *Service {
	return &Service{bookings: bookings, units: units, pub: pub, cache: c, log: log}
}

// pickPricing chooses the pricing row whose model best matches the booking
// duration, falling back through the preference list when the preferred
// model is not configured for the unit.
func pickPricing(pricing []domain.UnitPricing, duration time.Duration) (*domain.UnitPricing, error) {
	if len(pricing) == 0 {
		return nil, domain.ErrNoPricing
	}

	byModel := make(map[domain.PricingModel]*domain.UnitPricing, len(pricing))
	for i := range pricing {
		byModel[pricing[i].Model] = &pricing[i]
	}

	var prefs []domain.PricingModel
	switch {
	case duration < 24*time.Hour:
		prefs = []domain.PricingModel{domain.PricingHourly, domain.PricingDaily, domain.PricingFixed}
	case duration < 28*24*time.Hour:
		prefs = []domain.PricingModel{domain.PricingDaily, domain.PricingHourly, domain.PricingMonthly, domain.PricingFixed}
	case duration < 365*24*time.Hour:
		prefs = []domain.PricingModel{domain.PricingMonthly, domain.PricingDaily, domain.PricingYearly, domain.PricingFixed}
	default:
		prefs = []domain.PricingModel{domain.PricingYearly, domain.PricingMonthly, domain.PricingFixed}
	}

	for _, m := range prefs {
		if p, ok := byModel[m]; ok {
			return p, nil
		}
	}
	// Any configured model beats rejecting the booking.
	return &pricing[0], nil
}

// computeTotal converts a duration into billable quantity under the chosen
// model. Partial hours bill fractionally; larger models bill in whole periods.
func computeTotal(p *domain.UnitPricing, duration time.Duration) float64 {
	var qty float64
	switch p.Model {
	case domain.PricingFixed:
		qty = 1
	case domain.PricingHourly:
		qty = duration.Hours()
	case domain.PricingDaily:
		qty = math.Ceil(duration.Hours() / 24)
	case domain.PricingMonthly:
		qty = math.Ceil(duration.Hours() / 24 / 30)
	case domain.PricingYearly:
		qty = math.Ceil(duration.Hours() / 24 / 365)
	}
	return math.Round(p.Price*qty*100) / 100
}

func validateRange(start, end time.Time) error {
	if !start.Before(end) {
		return fmt.Errorf("%w: start_at must be before end_at", domain.ErrValidation)
	}
	return nil
}

// BuildBooking validates the request, resolves the unit and snapshots
// pricing without persisting anything. Lead conversion shares it so the
// converted booking is priced identically to a direct one.
func (s *Service) BuildBooking(ctx context.Context, tenantID, userID uuid.UUID, req CreateBookingRequest) (*domain.Booking, error) {
	if err := validateRange(req.StartAt, req.EndAt); err != nil {
		return nil, err
	}

	unit, err := s.units.GetByID(ctx, tenantID, req.UnitID)
	if err != nil {
		return nil, err
	}
	if unit.Status != domain.UnitAvailable {
		return nil, fmt.Errorf("%w: unit is %s", domain.ErrInvalidState, unit.Status)
	}

	pricing, err := s.units.Pricing(ctx, unit.ID)
	if err != nil {
		return nil, err
	}
	chosen, err := pickPricing(pricing, req.EndAt.Sub(req.StartAt))
	if err != nil {
		return nil, err
	}

	return &domain.Booking{
		TenantID:      tenantID,
		UnitID:        unit.ID,
		UserID:        userID,
		StartAt:       req.StartAt.UTC(),
		EndAt:         req.EndAt.UTC(),
		Status:        domain.BookingPending,
		TotalPrice:    computeTotal(chosen, req.EndAt.Sub(req.StartAt)),
		Currency:      chosen.Currency,
		PricingModel:  chosen.Model,
		PaymentStatus: domain.BookingUnpaid,
		Notes:         req.Notes,
	}, nil
}

func (s *Service) CreateBooking(ctx context.Context, tenantID, userID uuid.UUID, req CreateBookingRequest) (*domain.Booking, error) {
	b, err := s.BuildBooking(ctx, tenantID, userID, req)
	if err != nil {
		return nil, err
	}

	if err := s.bookings.CreateIfAvailable(ctx, b); err != nil {
		return nil, err
	}

	s.invalidateStats(ctx, tenantID)
	s.pub.Publish(events.TopicBookings, events.BookingCreated, tenantID, b.ID)
	return b, nil
}

func (s *Service) Get(ctx context.Context, tenantID, id uuid.UUID) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, tenantID, id)
}

func (s *Service) List(ctx context.Context, tenantID uuid.UUID, f repository.BookingFilter) ([]domain.Booking, int64, error) {
	return s.bookings.List(ctx, tenantID, f)
}

// Update changes times or notes of a booking that is still pending.
func (s *Service) Update(ctx context.Context, tenantID, id uuid.UUID, req UpdateBookingRequest) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if b.Status != domain.BookingPending {
		return nil, fmt.Errorf("%w: only pending bookings can be rescheduled", domain.ErrInvalidState)
	}

	timesChanged := false
	if req.StartAt != nil {
		b.StartAt = req.StartAt.UTC()
		timesChanged = true
	}
	if req.EndAt != nil {
		b.EndAt = req.EndAt.UTC()
		timesChanged = true
	}
	if req.Notes != nil {
		b.Notes = *req.Notes
	}

	if timesChanged {
		if err := validateRange(b.StartAt, b.EndAt); err != nil {
			return nil, err
		}
		if err := s.bookings.UpdateTimesIfAvailable(ctx, b); err != nil {
			return nil, err
		}
	} else if err := s.bookings.Save(ctx, b); err != nil {
		return nil, err
	}

	s.invalidateStats(ctx, tenantID)
	return b, nil
}

// UpdateStatus drives the lifecycle machine. Marking no_show is restricted
// to manager and admin roles.
func (s *Service) UpdateStatus(ctx context.Context, tenantID, id uuid.UUID, role string, next domain.BookingStatus) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if !b.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, b.Status, next)
	}
	if next == domain.BookingNoShow && role != string(domain.RoleManager) && role != string(domain.RoleAdmin) {
		return nil, domain.ErrForbidden
	}

	b.Status = next
	if next == domain.BookingCancelled {
		now := time.Now().UTC()
		b.CancelledAt = &now
	}

	if err := s.bookings.Save(ctx, b); err != nil {
		return nil, err
	}

	s.invalidateStats(ctx, tenantID)
	switch next {
	case domain.BookingConfirmed:
		s.pub.Publish(events.TopicBookings, events.BookingConfirmed, tenantID, b.ID)
	case domain.BookingCancelled:
		s.pub.Publish(events.TopicBookings, events.BookingCancelled, tenantID, b.ID)
	}
	return b, nil
}

// Cancel is the DELETE semantics: cancel rather than remove, so the history
// and revenue reporting stay intact.
func (s *Service) Cancel(ctx context.Context, tenantID, id uuid.UUID, role string) (*domain.Booking, error) {
	return s.UpdateStatus(ctx, tenantID, id, role, domain.BookingCancelled)
}

// IsAvailable answers the point query: is [start, end) free on the unit.
func (s *Service) IsAvailable(ctx context.Context, tenantID, unitID uuid.UUID, start, end time.Time) (bool, error) {
	if err := validateRange(start, end); err != nil {
		return false, err
	}
	if _, err := s.units.GetByID(ctx, tenantID, unitID); err != nil {
		return false, err
	}

	cnt, err := s.bookings.CountOverlapping(ctx, tenantID, unitID, start, end, uuid.Nil)
	if err != nil {
		return false, err
	}
	return cnt == 0, nil
}

// FindAvailableSlots subtracts the unit's active bookings from the window
// and returns the free sub-intervals in chronological order.
func (s *Service) FindAvailableSlots(ctx context.Context, tenantID, unitID uuid.UUID, start, end time.Time) ([]Slot, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}
	if _, err := s.units.GetByID(ctx, tenantID, unitID); err != nil {
		return nil, err
	}

	busy, err := s.bookings.ListOverlapping(ctx, tenantID, unitID, start, end)
	if err != nil {
		return nil, err
	}
	return subtractBusy(start, end, busy), nil
}

// subtractBusy walks sorted busy intervals across the window, emitting the
// gaps. Busy ranges may overlap each other; the cursor only moves forward.
func subtractBusy(start, end time.Time, busy []domain.Booking) []Slot {
	slots := []Slot{}
	cursor := start

	for _, b := range busy {
		if b.StartAt.After(cursor) {
			slots = append(slots, Slot{StartAt: cursor, EndAt: b.StartAt})
		}
		if b.EndAt.After(cursor) {
			cursor = b.EndAt
		}
		if !cursor.Before(end) {
			return slots
		}
	}

	if cursor.Before(end) {
		slots = append(slots, Slot{StartAt: cursor, EndAt: end})
	}
	return slots
}

func statsKey(tenantID uuid.UUID) string {
	return "stats:bookings:" + tenantID.String()
}

// Stats serves the per-tenant booking counters, cached for a minute.
func (s *Service) Stats(ctx context.Context, tenantID uuid.UUID) (*domain.BookingStats, error) {
	var cached domain.BookingStats
	if err := s.cache.GetJSON(ctx, statsKey(tenantID), &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		s.log.WithError(err).Warn("stats cache read")
	}

	stats, err := s.bookings.Stats(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetJSON(ctx, statsKey(tenantID), stats, statsTTL); err != nil {
		s.log.WithError(err).Warn("stats cache write")
	}
	return stats, nil
}

func (s *Service) invalidateStats(ctx context.Context, tenantID uuid.UUID) {
	if err := s.cache.Delete(ctx, statsKey(tenantID)); err != nil {
		s.log.WithError(err).Warn("stats cache invalidate")
	}
}
