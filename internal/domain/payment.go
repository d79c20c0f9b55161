package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentState string

const (
	PaymentPending   PaymentState = "pending"
	PaymentCompleted PaymentState = "completed"
	PaymentFailed    PaymentState = "failed"
	PaymentRefunded  PaymentState = "refunded"
)

type Payment struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	TenantID  uuid.UUID `json:"tenant_id" gorm:"type:uuid;index"`
	BookingID uuid.UUID `json:"booking_id" gorm:"type:uuid;index"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;index"`

	Amount        float64      `json:"amount" gorm:"not null"`
	Currency      string       `json:"currency" gorm:"not null;default:'USD'"`
	Status        PaymentState `json:"status" gorm:"not null;default:'pending'"`
	TransactionID string       `json:"transaction_id" gorm:"index"`
	Provider      string       `json:"provider"`
	PaidAt        *time.Time   `json:"paid_at,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	Booking *Booking `json:"booking,omitempty" gorm:"foreignKey:BookingID"`
}

func (Payment) TableName() string { return "payments" }

func (p *Payment) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
