package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
	BookingNoShow    BookingStatus = "no_show"
)

// Wire format carries booking statuses as integer codes.
var bookingStatusCodes = map[BookingStatus]int{
	BookingPending:   1,
	BookingConfirmed: 2,
	BookingCancelled: 3,
	BookingCompleted: 4,
	BookingNoShow:    5,
}

func (s BookingStatus) Code() int { return bookingStatusCodes[s] }

func BookingStatusFromCode(code int) (BookingStatus, bool) {
	for s, c := range bookingStatusCodes {
		if c == code {
			return s, true
		}
	}
	return "", false
}

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCancelled, BookingCompleted, BookingNoShow},
}

// CanTransitionTo reports whether the status machine allows moving to next.
// cancelled, completed and no_show are terminal.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s BookingStatus) Terminal() bool { return len(bookingTransitions[s]) == 0 }

// ActiveBookingStatuses are the statuses that occupy a unit's time range
// for availability purposes.
var ActiveBookingStatuses = []BookingStatus{BookingPending, BookingConfirmed}

type BookingPaymentStatus string

const (
	BookingUnpaid   BookingPaymentStatus = "unpaid"
	BookingPaid     BookingPaymentStatus = "paid"
	BookingRefunded BookingPaymentStatus = "refunded"
)

// Booking reserves a unit for the half-open interval [StartAt, EndAt).
// For a given unit no two bookings in an active status may overlap.
type Booking struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	TenantID uuid.UUID `json:"tenant_id" gorm:"type:uuid;index"`
	UnitID   uuid.UUID `json:"unit_id" gorm:"type:uuid;index"`
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;index"`

	StartAt time.Time `json:"start_at" gorm:"not null;index"`
	EndAt   time.Time `json:"end_at" gorm:"not null;index"`

	Status        BookingStatus        `json:"status" gorm:"not null;default:'pending'"`
	TotalPrice    float64              `json:"total_price"`
	Currency      string               `json:"currency" gorm:"default:'USD'"`
	PricingModel  PricingModel         `json:"pricing_model"`
	PaymentStatus BookingPaymentStatus `json:"payment_status" gorm:"not null;default:'unpaid'"`
	Notes         string               `json:"notes,omitempty" gorm:"type:text"`

	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	CancelledAt *time.Time     `json:"cancelled_at,omitempty"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	Unit *Unit `json:"unit,omitempty" gorm:"foreignKey:UnitID"`
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (Booking) TableName() string { return "bookings" }

func (b *Booking) BeforeCreate(*gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Overlaps applies the half-open interval test against another range.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartAt.Before(end) && b.EndAt.After(start)
}

type BookingStats struct {
	Total     int64   `json:"total"`
	Pending   int64   `json:"pending"`
	Confirmed int64   `json:"confirmed"`
	Cancelled int64   `json:"cancelled"`
	Completed int64   `json:"completed"`
	NoShow    int64   `json:"no_show"`
	Revenue   float64 `json:"revenue"`
}
