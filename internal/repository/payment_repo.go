package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"spacehub/internal/domain"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Payment, error) {
	var p domain.Payment
	err := r.db.WithContext(ctx).First(&p, "id = ? AND tenant_id = ?", id, tenantID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) ListByBooking(ctx context.Context, tenantID, bookingID uuid.UUID) ([]domain.Payment, error) {
	var out []domain.Payment
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND booking_id = ?", tenantID, bookingID).
		Order("created_at").
		Find(&out).Error
	return out, err
}

func (r *PaymentRepository) Save(ctx context.Context, p *domain.Payment) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// MarkCompleted flips a payment to completed and syncs the owning booking's
// payment status in the same transaction.
func (r *PaymentRepository) MarkCompleted(ctx context.Context, p *domain.Payment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(p).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Booking{}).
			Where("id = ? AND tenant_id = ?", p.BookingID, p.TenantID).
			Update("payment_status", domain.BookingPaid).Error
	})
}
