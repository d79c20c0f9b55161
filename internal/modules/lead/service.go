package lead

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"spacehub/internal/domain"
	"spacehub/internal/modules/booking"
	"spacehub/internal/pkg/events"
)

type Service struct {
	leads   LeadStore
	builder BookingBuilder
	pub     EventPublisher
	log     *logrus.Logger
}

func NewService(leads LeadStore, builder BookingBuilder, pub EventPublisher, log *logrus.Logger) *Service {
	return &Service{leads: leads, builder: builder, pub: pub, log: log}
}

func (s *Service) Create(ctx context.Context, tenantID uuid.UUID, req CreateLeadRequest) (*domain.Lead, error) {
	source := req.Source
	if source == "" {
		source = "website"
	}

	l := &domain.Lead{
		TenantID:   tenantID,
		PropertyID: req.PropertyID,
		UnitID:     req.UnitID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Message:    req.Message,
		Source:     source,
		Status:     domain.LeadNew,
	}
	if err := s.leads.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) Get(ctx context.Context, tenantID, id uuid.UUID) (*domain.Lead, error) {
	return s.leads.GetByID(ctx, tenantID, id)
}

func (s *Service) List(ctx context.Context, tenantID uuid.UUID, status *domain.LeadStatus, limit, offset int) ([]domain.Lead, int64, error) {
	return s.leads.List(ctx, tenantID, status, limit, offset)
}

// Update edits contact fields and moves the lead along the pipeline. The
// converted status can only be reached through Convert.
func (s *Service) Update(ctx context.Context, tenantID, id uuid.UUID, req UpdateLeadRequest) (*domain.Lead, error) {
	l, err := s.leads.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		l.Name = *req.Name
	}
	if req.Email != nil {
		l.Email = *req.Email
	}
	if req.Phone != nil {
		l.Phone = *req.Phone
	}
	if req.Message != nil {
		l.Message = *req.Message
	}
	if req.Status != nil {
		next, ok := domain.LeadStatusFromCode(*req.Status)
		if !ok {
			return nil, fmt.Errorf("%w: unknown status code", domain.ErrValidation)
		}
		if next == domain.LeadConverted {
			return nil, fmt.Errorf("%w: use convert to mark a lead converted", domain.ErrInvalidTransition)
		}
		if l.Status.Closed() {
			return nil, fmt.Errorf("%w: lead is %s", domain.ErrInvalidTransition, l.Status)
		}
		if next == domain.LeadContacted && l.ContactedAt == nil {
			now := time.Now().UTC()
			l.ContactedAt = &now
		}
		l.Status = next
	}

	if err := s.leads.Save(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// Convert turns a lead into a booking. The booking is built through the
// same validation and pricing path as a direct booking, then the insert and
// the lead update commit atomically.
func (s *Service) Convert(ctx context.Context, tenantID, userID, leadID uuid.UUID, req ConvertLeadRequest) (*domain.Lead, *domain.Booking, error) {
	l, err := s.leads.GetByID(ctx, tenantID, leadID)
	if err != nil {
		return nil, nil, err
	}
	if l.Status.Closed() {
		return nil, nil, fmt.Errorf("%w: lead is %s", domain.ErrInvalidState, l.Status)
	}

	b, err := s.builder.BuildBooking(ctx, tenantID, userID, booking.CreateBookingRequest{
		UnitID:  req.UnitID,
		StartAt: req.StartAt,
		EndAt:   req.EndAt,
		Notes:   req.Notes,
	})
	if err != nil {
		return nil, nil, err
	}

	if err := s.leads.ConvertToBooking(ctx, l, b); err != nil {
		return nil, nil, err
	}

	s.pub.Publish(events.TopicBookings, events.BookingCreated, tenantID, b.ID)
	s.log.WithFields(logrus.Fields{
		"lead_id":    l.ID.String(),
		"booking_id": b.ID.String(),
	}).Info("lead converted")

	return l, b, nil
}
