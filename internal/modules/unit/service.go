package unit

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"spacehub/internal/domain"
)

type Service struct {
	units      UnitStore
	properties PropertyStore
	amenities  AmenityStore
}

func NewService(units UnitStore, properties PropertyStore, amenities AmenityStore) *Service {
	return &Service{units: units, properties: properties, amenities: amenities}
}

// Create adds a unit under a property owned by the same tenant.
func (s *Service) Create(ctx context.Context, tenantID uuid.UUID, req CreateUnitRequest) (*domain.Unit, error) {
	if _, err := s.properties.GetByID(ctx, tenantID, req.PropertyID); err != nil {
		return nil, err
	}

	u := &domain.Unit{
		TenantID:   tenantID,
		PropertyID: req.PropertyID,
		Name:       req.Name,
		Category:   domain.UnitCategory(req.Category),
		Capacity:   req.Capacity,
		SizeSqft:   req.SizeSqft,
		Status:     domain.UnitAvailable,
	}
	if err := s.units.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) Get(ctx context.Context, tenantID, id uuid.UUID) (*domain.Unit, error) {
	return s.units.GetByID(ctx, tenantID, id)
}

func (s *Service) List(ctx context.Context, tenantID uuid.UUID, propertyID *uuid.UUID, limit, offset int) ([]domain.Unit, int64, error) {
	return s.units.List(ctx, tenantID, propertyID, limit, offset)
}

func (s *Service) Update(ctx context.Context, tenantID, id uuid.UUID, req UpdateUnitRequest) (*domain.Unit, error) {
	u, err := s.units.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Status != nil {
		u.Status = domain.UnitStatus(*req.Status)
	}
	if req.Capacity != nil {
		u.Capacity = *req.Capacity
	}
	if req.SizeSqft != nil {
		u.SizeSqft = *req.SizeSqft
	}

	if err := s.units.Save(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// SetPricing creates or replaces the price for one model on a unit.
func (s *Service) SetPricing(ctx context.Context, tenantID, unitID uuid.UUID, req SetPricingRequest) (*domain.UnitPricing, error) {
	if _, err := s.units.GetByID(ctx, tenantID, unitID); err != nil {
		return nil, err
	}

	currency := strings.ToUpper(req.Currency)
	if currency == "" {
		currency = "USD"
	}

	p := &domain.UnitPricing{
		UnitID:   unitID,
		Model:    domain.PricingModel(req.Model),
		Price:    req.Price,
		Currency: currency,
	}
	if err := s.units.UpsertPricing(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// SetRealEstateDetail attaches or replaces the real-estate specialization.
// Rejected for coworking-only categories.
func (s *Service) SetRealEstateDetail(ctx context.Context, tenantID, unitID uuid.UUID, req RealEstateDetailRequest) error {
	u, err := s.units.GetByID(ctx, tenantID, unitID)
	if err != nil {
		return err
	}
	if u.Category == domain.UnitDesk || u.Category == domain.UnitMeetingRoom {
		return fmt.Errorf("%w: %s units take coworking details", domain.ErrValidation, u.Category)
	}

	return s.units.SetRealEstateDetail(ctx, &domain.RealEstateDetail{
		UnitID:    unitID,
		Bedrooms:  req.Bedrooms,
		Bathrooms: req.Bathrooms,
		Floor:     req.Floor,
		YearBuilt: req.YearBuilt,
		Furnished: req.Furnished,
	})
}

func (s *Service) SetCoworkingDetail(ctx context.Context, tenantID, unitID uuid.UUID, req CoworkingDetailRequest) error {
	u, err := s.units.GetByID(ctx, tenantID, unitID)
	if err != nil {
		return err
	}
	if u.Category == domain.UnitApartment || u.Category == domain.UnitRetail {
		return fmt.Errorf("%w: %s units take real estate details", domain.ErrValidation, u.Category)
	}

	return s.units.SetCoworkingDetail(ctx, &domain.CoworkingDetail{
		UnitID:        unitID,
		DeskCount:     req.DeskCount,
		HasProjector:  req.HasProjector,
		HasWhiteboard: req.HasWhiteboard,
		AllDayAccess:  req.AllDayAccess,
	})
}

func (s *Service) CreateAmenity(ctx context.Context, tenantID uuid.UUID, req CreateAmenityRequest) (*domain.Amenity, error) {
	a := &domain.Amenity{
		TenantID: tenantID,
		Name:     req.Name,
		Icon:     req.Icon,
	}
	if err := s.amenities.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) ListAmenities(ctx context.Context, tenantID uuid.UUID) ([]domain.Amenity, error) {
	return s.amenities.List(ctx, tenantID)
}

func (s *Service) AttachAmenity(ctx context.Context, tenantID, unitID, amenityID uuid.UUID) error {
	u, err := s.units.GetByID(ctx, tenantID, unitID)
	if err != nil {
		return err
	}
	a, err := s.amenities.GetByID(ctx, tenantID, amenityID)
	if err != nil {
		return err
	}
	return s.units.AttachAmenity(ctx, u, a)
}

func (s *Service) DetachAmenity(ctx context.Context, tenantID, unitID, amenityID uuid.UUID) error {
	u, err := s.units.GetByID(ctx, tenantID, unitID)
	if err != nil {
		return err
	}
	a, err := s.amenities.GetByID(ctx, tenantID, amenityID)
	if err != nil {
		return err
	}
	return s.units.DetachAmenity(ctx, u, a)
}
