package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"spacehub/internal/domain"
)

type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

func (r *LeadRepository) Create(ctx context.Context, l *domain.Lead) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LeadRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Lead, error) {
	var l domain.Lead
	err := r.db.WithContext(ctx).
		First(&l, "id = ? AND tenant_id = ?", id, tenantID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LeadRepository) List(ctx context.Context, tenantID uuid.UUID, status *domain.LeadStatus, limit, offset int) ([]domain.Lead, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Lead{}).Where("tenant_id = ?", tenantID)
	if status != nil {
		q = q.Where("status = ?", *status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var out []domain.Lead
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&out).Error
	return out, total, err
}

func (r *LeadRepository) Save(ctx context.Context, l *domain.Lead) error {
	return r.db.WithContext(ctx).Save(l).Error
}

// ConvertToBooking persists the booking and flips the lead to converted in
// one transaction: either both rows land or neither does. The availability
// re-check runs inside the same transaction under the unit lock.
func (r *LeadRepository) ConvertToBooking(ctx context.Context, lead *domain.Lead, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := createIfAvailableTx(tx, b); err != nil {
			return err
		}

		now := time.Now().UTC()
		lead.Status = domain.LeadConverted
		lead.BookingID = &b.ID
		lead.ConvertedAt = &now
		lead.UnitID = &b.UnitID

		return tx.Save(lead).Error
	})
}
