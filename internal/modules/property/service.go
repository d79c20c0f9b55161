package property

import (
	"context"

	"github.com/google/uuid"

	"spacehub/internal/domain"
)

type Service struct {
	properties PropertyStore
}

func NewService(properties PropertyStore) *Service {
	return &Service{properties: properties}
}

// Create registers a property as a draft. The repository assigns the slug.
func (s *Service) Create(ctx context.Context, tenantID uuid.UUID, req CreatePropertyRequest) (*domain.Property, error) {
	p := &domain.Property{
		TenantID:     tenantID,
		Name:         req.Name,
		PropertyType: domain.PropertyType(req.PropertyType),
		Status:       domain.PropertyDraft,
		Description:  req.Description,
		AddressLine:  req.AddressLine,
		City:         req.City,
		State:        req.State,
		CountryCode:  req.CountryCode,
		PostalCode:   req.PostalCode,
	}
	if err := s.properties.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, tenantID, id uuid.UUID) (*domain.Property, error) {
	return s.properties.GetByID(ctx, tenantID, id)
}

func (s *Service) GetBySlug(ctx context.Context, tenantID uuid.UUID, slug string) (*domain.Property, error) {
	return s.properties.GetBySlug(ctx, tenantID, slug)
}

func (s *Service) List(ctx context.Context, tenantID uuid.UUID, status *domain.PropertyStatus, limit, offset int) ([]domain.Property, int64, error) {
	return s.properties.List(ctx, tenantID, status, limit, offset)
}

func (s *Service) Update(ctx context.Context, tenantID, id uuid.UUID, req UpdatePropertyRequest) (*domain.Property, error) {
	p, err := s.properties.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Status != nil {
		p.Status = domain.PropertyStatus(*req.Status)
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.AddressLine != nil {
		p.AddressLine = *req.AddressLine
	}
	if req.City != nil {
		p.City = *req.City
	}
	if req.State != nil {
		p.State = *req.State
	}
	if req.CountryCode != nil {
		p.CountryCode = *req.CountryCode
	}
	if req.PostalCode != nil {
		p.PostalCode = *req.PostalCode
	}

	if err := s.properties.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Deactivate retires a property without destroying its history. Listings stop
// showing it; existing units and bookings keep their references.
func (s *Service) Deactivate(ctx context.Context, tenantID, id uuid.UUID) (*domain.Property, error) {
	p, err := s.properties.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	p.Status = domain.PropertyInactive
	if err := s.properties.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
