package widget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"spacehub/internal/domain"
)

type Service struct {
	widgets WidgetStore
	leads   LeadCreator
}

func NewService(widgets WidgetStore, leads LeadCreator) *Service {
	return &Service{widgets: widgets, leads: leads}
}

func (s *Service) Create(ctx context.Context, tenantID uuid.UUID, req CreateWidgetRequest) (*domain.Widget, error) {
	w := &domain.Widget{
		TenantID: tenantID,
		Kind:     domain.WidgetKind(req.Kind),
		Name:     req.Name,
		Config:   req.Config,
		Active:   true,
	}
	if err := s.widgets.Create(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *Service) Get(ctx context.Context, tenantID, id uuid.UUID) (*domain.Widget, error) {
	return s.widgets.GetByID(ctx, tenantID, id)
}

func (s *Service) List(ctx context.Context, tenantID uuid.UUID) ([]domain.Widget, error) {
	return s.widgets.List(ctx, tenantID)
}

func (s *Service) Update(ctx context.Context, tenantID, id uuid.UUID, req UpdateWidgetRequest) (*domain.Widget, error) {
	w, err := s.widgets.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		w.Name = *req.Name
	}
	if req.Config != nil {
		w.Config = *req.Config
	}
	if req.Active != nil {
		w.Active = *req.Active
	}

	if err := s.widgets.Save(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *Service) CreateForm(ctx context.Context, tenantID uuid.UUID, req CreateFormRequest) (*domain.FormBuilder, error) {
	f := &domain.FormBuilder{
		TenantID: tenantID,
		Name:     req.Name,
		Schema:   req.Schema,
		Active:   true,
	}
	if err := s.widgets.CreateForm(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *Service) ListForms(ctx context.Context, tenantID uuid.UUID) ([]domain.FormBuilder, error) {
	return s.widgets.ListForms(ctx, tenantID)
}

// Submit takes a public widget submission and records it as a lead. Only
// active widgets accept submissions.
func (s *Service) Submit(ctx context.Context, tenantID, widgetID uuid.UUID, req SubmitRequest) (*domain.Lead, error) {
	w, err := s.widgets.GetByID(ctx, tenantID, widgetID)
	if err != nil {
		return nil, err
	}
	if !w.Active {
		return nil, fmt.Errorf("%w: widget is disabled", domain.ErrInvalidState)
	}

	l := &domain.Lead{
		TenantID:   tenantID,
		PropertyID: req.PropertyID,
		UnitID:     req.UnitID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Message:    req.Message,
		Source:     "widget",
		Status:     domain.LeadNew,
	}
	if err := s.leads.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}
