package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WidgetKind string

const (
	WidgetBooking  WidgetKind = "booking"
	WidgetLeadForm WidgetKind = "lead_form"
	WidgetListing  WidgetKind = "listing"
)

// Widget is an embeddable tenant-facing component. Config is an opaque
// JSON blob owned by the frontend.
type Widget struct {
	ID       uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	TenantID uuid.UUID  `json:"tenant_id" gorm:"type:uuid;index"`
	Kind     WidgetKind `json:"kind" gorm:"not null"`
	Name     string     `json:"name" gorm:"not null"`
	Config   string     `json:"config" gorm:"type:text"`
	Active   bool       `json:"active" gorm:"default:true"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Widget) TableName() string { return "widgets" }

func (w *Widget) BeforeCreate(*gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

type FormBuilder struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	TenantID uuid.UUID `json:"tenant_id" gorm:"type:uuid;index"`
	Name     string    `json:"name" gorm:"not null"`
	Schema   string    `json:"schema" gorm:"type:text"`
	Active   bool      `json:"active" gorm:"default:true"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (FormBuilder) TableName() string { return "form_builders" }

func (f *FormBuilder) BeforeCreate(*gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
