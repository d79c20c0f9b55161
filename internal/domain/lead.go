package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeadStatus string

const (
	LeadNew       LeadStatus = "new"
	LeadContacted LeadStatus = "contacted"
	LeadQualified LeadStatus = "qualified"
	LeadConverted LeadStatus = "converted"
	LeadLost      LeadStatus = "lost"
)

var leadStatusCodes = map[LeadStatus]int{
	LeadNew:       1,
	LeadContacted: 2,
	LeadQualified: 3,
	LeadConverted: 4,
	LeadLost:      5,
}

func (s LeadStatus) Code() int { return leadStatusCodes[s] }

func LeadStatusFromCode(code int) (LeadStatus, bool) {
	for s, c := range leadStatusCodes {
		if c == code {
			return s, true
		}
	}
	return "", false
}

// Closed reports whether the lead pipeline is finished for this lead.
// Converted and lost leads cannot be converted again.
func (s LeadStatus) Closed() bool { return s == LeadConverted || s == LeadLost }

type Lead struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	TenantID   uuid.UUID  `json:"tenant_id" gorm:"type:uuid;index"`
	PropertyID *uuid.UUID `json:"property_id,omitempty" gorm:"type:uuid;index"`
	UnitID     *uuid.UUID `json:"unit_id,omitempty" gorm:"type:uuid;index"`
	BookingID  *uuid.UUID `json:"booking_id,omitempty" gorm:"type:uuid;index"`

	Name    string     `json:"name" gorm:"not null"`
	Email   string     `json:"email" gorm:"index"`
	Phone   string     `json:"phone"`
	Message string     `json:"message" gorm:"type:text"`
	Source  string     `json:"source" gorm:"default:'website'"`
	Status  LeadStatus `json:"status" gorm:"not null;default:'new'"`

	ContactedAt *time.Time `json:"contacted_at,omitempty"`
	ConvertedAt *time.Time `json:"converted_at,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Lead) TableName() string { return "leads" }

func (l *Lead) BeforeCreate(*gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
