package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MediaOwner string

const (
	MediaOwnerProperty MediaOwner = "property"
	MediaOwnerUnit     MediaOwner = "unit"
)

type Media struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	TenantID  uuid.UUID  `json:"tenant_id" gorm:"type:uuid;index"`
	OwnerType MediaOwner `json:"owner_type" gorm:"not null;index:idx_media_owner"`
	OwnerID   uuid.UUID  `json:"owner_id" gorm:"type:uuid;not null;index:idx_media_owner"`

	URL         string `json:"url" gorm:"not null"`
	StorageKey  string `json:"-" gorm:"not null"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
	IsCover     bool   `json:"is_cover" gorm:"default:false"`
	Position    int    `json:"position" gorm:"default:0"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Media) TableName() string { return "media" }

func (m *Media) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
