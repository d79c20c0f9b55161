package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UnitCategory string

const (
	UnitApartment   UnitCategory = "apartment"
	UnitOffice      UnitCategory = "office"
	UnitDesk        UnitCategory = "desk"
	UnitMeetingRoom UnitCategory = "meeting_room"
	UnitRetail      UnitCategory = "retail"
)

type UnitStatus string

const (
	UnitAvailable   UnitStatus = "available"
	UnitOccupied    UnitStatus = "occupied"
	UnitMaintenance UnitStatus = "maintenance"
	UnitInactive    UnitStatus = "inactive"
)

// Unit is the bookable resource: an apartment, an office, a desk or a room.
type Unit struct {
	ID         uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	TenantID   uuid.UUID    `json:"tenant_id" gorm:"type:uuid;index"`
	PropertyID uuid.UUID    `json:"property_id" gorm:"type:uuid;index"`
	Name       string       `json:"name" gorm:"not null"`
	Category   UnitCategory `json:"unit_category" gorm:"column:unit_category;not null"`
	Capacity   int          `json:"capacity"`
	SizeSqft   int          `json:"size_sqft"`
	Status     UnitStatus   `json:"status" gorm:"not null;default:'available'"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	Pricing          []UnitPricing     `json:"pricing,omitempty" gorm:"foreignKey:UnitID"`
	RealEstateDetail *RealEstateDetail `json:"real_estate_detail,omitempty" gorm:"foreignKey:UnitID"`
	CoworkingDetail  *CoworkingDetail  `json:"coworking_detail,omitempty" gorm:"foreignKey:UnitID"`
	Amenities        []Amenity         `json:"amenities,omitempty" gorm:"many2many:unit_amenities"`
}

func (Unit) TableName() string { return "units" }

func (u *Unit) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

type PricingModel string

const (
	PricingFixed   PricingModel = "fixed"
	PricingHourly  PricingModel = "hourly"
	PricingDaily   PricingModel = "daily"
	PricingMonthly PricingModel = "monthly"
	PricingYearly  PricingModel = "yearly"
)

type UnitPricing struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UnitID    uuid.UUID      `json:"unit_id" gorm:"type:uuid;index;uniqueIndex:idx_unit_pricing_model"`
	Model     PricingModel   `json:"model" gorm:"not null;uniqueIndex:idx_unit_pricing_model"`
	Price     float64        `json:"price" gorm:"not null"`
	Currency  string         `json:"currency" gorm:"not null;default:'USD'"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (UnitPricing) TableName() string { return "unit_pricing" }

func (p *UnitPricing) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// RealEstateDetail is the specialization record for residential/commercial units.
type RealEstateDetail struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UnitID    uuid.UUID `json:"unit_id" gorm:"type:uuid;uniqueIndex"`
	Bedrooms  int       `json:"bedrooms"`
	Bathrooms int       `json:"bathrooms"`
	Floor     int       `json:"floor"`
	YearBuilt int       `json:"year_built"`
	Furnished bool      `json:"furnished"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (RealEstateDetail) TableName() string { return "real_estate_details" }

func (d *RealEstateDetail) BeforeCreate(*gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// CoworkingDetail is the specialization record for coworking units.
type CoworkingDetail struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UnitID        uuid.UUID `json:"unit_id" gorm:"type:uuid;uniqueIndex"`
	DeskCount     int       `json:"desk_count"`
	HasProjector  bool      `json:"has_projector"`
	HasWhiteboard bool      `json:"has_whiteboard"`
	AllDayAccess  bool      `json:"all_day_access"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (CoworkingDetail) TableName() string { return "coworking_details" }

func (d *CoworkingDetail) BeforeCreate(*gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

type Amenity struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	TenantID  uuid.UUID      `json:"tenant_id" gorm:"type:uuid;index;uniqueIndex:idx_tenant_amenity_name"`
	Name      string         `json:"name" gorm:"not null;uniqueIndex:idx_tenant_amenity_name"`
	Icon      string         `json:"icon"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Amenity) TableName() string { return "amenities" }

func (a *Amenity) BeforeCreate(*gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
