package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TenantType string

const (
	TenantRealEstate TenantType = "real_estate"
	TenantCoworking  TenantType = "coworking"
	TenantMixed      TenantType = "mixed"
)

type TenantStatus string

const (
	TenantActive    TenantStatus = "active"
	TenantSuspended TenantStatus = "suspended"
	TenantInactive  TenantStatus = "inactive"
)

// Tenant is the isolation boundary. Every other entity carries a TenantID
// and repositories must never return rows across tenants.
type Tenant struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string         `json:"name" gorm:"not null"`
	Domain    string         `json:"domain" gorm:"uniqueIndex"`
	Type      TenantType     `json:"type" gorm:"not null;default:'mixed'"`
	Status    TenantStatus   `json:"status" gorm:"not null;default:'active'"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Tenant) TableName() string { return "tenants" }

func (t *Tenant) BeforeCreate(*gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
