package unit

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"spacehub/internal/domain"
)

type MockUnitStore struct {
	mock.Mock
}

func (m *MockUnitStore) Create(ctx context.Context, u *domain.Unit) error {
	args := m.Called(ctx, u)
	if u != nil && u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockUnitStore) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Unit, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Unit), args.Error(1)
}

func (m *MockUnitStore) List(ctx context.Context, tenantID uuid.UUID, propertyID *uuid.UUID, limit, offset int) ([]domain.Unit, int64, error) {
	args := m.Called(ctx, tenantID, propertyID, limit, offset)
	return args.Get(0).([]domain.Unit), args.Get(1).(int64), args.Error(2)
}

func (m *MockUnitStore) Save(ctx context.Context, u *domain.Unit) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUnitStore) Pricing(ctx context.Context, unitID uuid.UUID) ([]domain.UnitPricing, error) {
	args := m.Called(ctx, unitID)
	return args.Get(0).([]domain.UnitPricing), args.Error(1)
}

func (m *MockUnitStore) UpsertPricing(ctx context.Context, p *domain.UnitPricing) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockUnitStore) SetRealEstateDetail(ctx context.Context, d *domain.RealEstateDetail) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockUnitStore) SetCoworkingDetail(ctx context.Context, d *domain.CoworkingDetail) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockUnitStore) AttachAmenity(ctx context.Context, u *domain.Unit, a *domain.Amenity) error {
	args := m.Called(ctx, u, a)
	return args.Error(0)
}

func (m *MockUnitStore) DetachAmenity(ctx context.Context, u *domain.Unit, a *domain.Amenity) error {
	args := m.Called(ctx, u, a)
	return args.Error(0)
}

type MockPropertyStore struct {
	mock.Mock
}

func (m *MockPropertyStore) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Property, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

type MockAmenityStore struct {
	mock.Mock
}

func (m *MockAmenityStore) Create(ctx context.Context, a *domain.Amenity) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAmenityStore) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Amenity, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Amenity), args.Error(1)
}

func (m *MockAmenityStore) List(ctx context.Context, tenantID uuid.UUID) ([]domain.Amenity, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]domain.Amenity), args.Error(1)
}

func TestCreate_PropertyMustExistInTenant(t *testing.T) {
	units := new(MockUnitStore)
	properties := new(MockPropertyStore)
	svc := NewService(units, properties, new(MockAmenityStore))

	tenantID := uuid.New()
	propertyID := uuid.New()
	properties.On("GetByID", mock.Anything, tenantID, propertyID).Return(nil, domain.ErrNotFound)

	_, err := svc.Create(context.Background(), tenantID, CreateUnitRequest{
		PropertyID: propertyID,
		Name:       "Desk 4",
		Category:   "desk",
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	units.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_DefaultsToAvailable(t *testing.T) {
	units := new(MockUnitStore)
	properties := new(MockPropertyStore)
	svc := NewService(units, properties, new(MockAmenityStore))

	tenantID := uuid.New()
	propertyID := uuid.New()
	properties.On("GetByID", mock.Anything, tenantID, propertyID).
		Return(&domain.Property{ID: propertyID, TenantID: tenantID}, nil)
	units.On("Create", mock.Anything, mock.AnythingOfType("*domain.Unit")).Return(nil)

	u, err := svc.Create(context.Background(), tenantID, CreateUnitRequest{
		PropertyID: propertyID,
		Name:       "Office 201",
		Category:   "office",
		Capacity:   6,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.UnitAvailable, u.Status)
	assert.Equal(t, domain.UnitOffice, u.Category)
}

func TestSetPricing_DefaultsCurrency(t *testing.T) {
	units := new(MockUnitStore)
	svc := NewService(units, new(MockPropertyStore), new(MockAmenityStore))

	tenantID := uuid.New()
	unitID := uuid.New()
	units.On("GetByID", mock.Anything, tenantID, unitID).
		Return(&domain.Unit{ID: unitID, TenantID: tenantID}, nil)
	units.On("UpsertPricing", mock.Anything, mock.AnythingOfType("*domain.UnitPricing")).Return(nil)

	p, err := svc.SetPricing(context.Background(), tenantID, unitID, SetPricingRequest{
		Model: "hourly",
		Price: 25,
	})

	assert.NoError(t, err)
	assert.Equal(t, "USD", p.Currency)
	assert.Equal(t, domain.PricingHourly, p.Model)
}

func TestSetRealEstateDetail_RejectsCoworkingCategories(t *testing.T) {
	units := new(MockUnitStore)
	svc := NewService(units, new(MockPropertyStore), new(MockAmenityStore))

	tenantID := uuid.New()
	unitID := uuid.New()
	units.On("GetByID", mock.Anything, tenantID, unitID).
		Return(&domain.Unit{ID: unitID, TenantID: tenantID, Category: domain.UnitDesk}, nil)

	err := svc.SetRealEstateDetail(context.Background(), tenantID, unitID, RealEstateDetailRequest{Bedrooms: 2})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSetCoworkingDetail_RejectsResidentialCategories(t *testing.T) {
	units := new(MockUnitStore)
	svc := NewService(units, new(MockPropertyStore), new(MockAmenityStore))

	tenantID := uuid.New()
	unitID := uuid.New()
	units.On("GetByID", mock.Anything, tenantID, unitID).
		Return(&domain.Unit{ID: unitID, TenantID: tenantID, Category: domain.UnitApartment}, nil)

	err := svc.SetCoworkingDetail(context.Background(), tenantID, unitID, CoworkingDetailRequest{DeskCount: 10})

	assert.ErrorIs(t, err, domain.ErrValidation)
}
