package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PropertyType string

const (
	PropertyResidential  PropertyType = "residential"
	PropertyCommercial   PropertyType = "commercial"
	PropertyCoworkingHub PropertyType = "coworking_hub"
	PropertyMixedUse     PropertyType = "mixed_use"
)

type PropertyStatus string

const (
	PropertyActive   PropertyStatus = "active"
	PropertyDraft    PropertyStatus = "draft"
	PropertyInactive PropertyStatus = "inactive"
)

type Property struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	TenantID     uuid.UUID      `json:"tenant_id" gorm:"type:uuid;index;uniqueIndex:idx_tenant_property_slug"`
	Name         string         `json:"name" gorm:"not null"`
	Slug         string         `json:"slug" gorm:"not null;uniqueIndex:idx_tenant_property_slug"`
	PropertyType PropertyType   `json:"property_type" gorm:"not null"`
	Status       PropertyStatus `json:"status" gorm:"not null;default:'draft'"`
	Description  string         `json:"description" gorm:"type:text"`

	AddressLine string `json:"address_line"`
	City        string `json:"city"`
	State       string `json:"state"`
	CountryCode string `json:"country_code"`
	PostalCode  string `json:"postal_code"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	Units []Unit `json:"units,omitempty" gorm:"foreignKey:PropertyID"`
}

func (Property) TableName() string { return "properties" }

func (p *Property) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
