package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"spacehub/internal/database"
	"spacehub/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// BookingFilter narrows List results. Nil fields are ignored.
type BookingFilter struct {
	UnitID *uuid.UUID
	UserID *uuid.UUID
	Status *domain.BookingStatus
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

// lockUnit serializes concurrent check-and-create for one unit within the
// surrounding transaction. No-op outside Postgres; the SQLite driver used in
// tests serializes writers anyway.
func lockUnit(tx *gorm.DB, unitID uuid.UUID) error {
	if !database.IsPostgres(tx) {
		return nil
	}
	return tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", unitID.String()).Error
}

func countOverlapping(tx *gorm.DB, tenantID, unitID uuid.UUID, start, end time.Time, excludeID uuid.UUID) (int64, error) {
	var cnt int64
	q := tx.Model(&domain.Booking{}).
		Where("tenant_id = ? AND unit_id = ?", tenantID, unitID).
		Where("status IN ?", []domain.BookingStatus{domain.BookingPending, domain.BookingConfirmed}).
		Where("start_at < ? AND end_at > ?", end, start)
	if excludeID != uuid.Nil {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&cnt).Error; err != nil {
		return 0, err
	}
	return cnt, nil
}

// createIfAvailableTx is the check-then-act core. It must run inside a
// transaction with the unit lock held so two concurrent requests cannot both
// observe an empty overlap count.
func createIfAvailableTx(tx *gorm.DB, b *domain.Booking) error {
	if err := lockUnit(tx, b.UnitID); err != nil {
		return err
	}

	cnt, err := countOverlapping(tx, b.TenantID, b.UnitID, b.StartAt, b.EndAt, uuid.Nil)
	if err != nil {
		return err
	}
	if cnt > 0 {
		return domain.ErrConflict
	}

	if err := tx.Create(b).Error; err != nil {
		return translateConstraintErr(err)
	}
	return nil
}

// translateConstraintErr maps Postgres unique/exclusion violations raised at
// commit onto the conflict sentinel so racing callers see a retryable error.
func translateConstraintErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && (pgErr.Code == "23505" || pgErr.Code == "23P01") {
		return domain.ErrConflict
	}
	return err
}

// CreateIfAvailable inserts the booking if its interval is free on the unit.
func (r *BookingRepository) CreateIfAvailable(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return createIfAvailableTx(tx, b)
	})
}

// UpdateTimesIfAvailable moves a pending booking to a new interval, ignoring
// the booking's own prior interval in the overlap check.
func (r *BookingRepository) UpdateTimesIfAvailable(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockUnit(tx, b.UnitID); err != nil {
			return err
		}

		cnt, err := countOverlapping(tx, b.TenantID, b.UnitID, b.StartAt, b.EndAt, b.ID)
		if err != nil {
			return err
		}
		if cnt > 0 {
			return domain.ErrConflict
		}

		return tx.Save(b).Error
	})
}

func (r *BookingRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).
		First(&b, "id = ? AND tenant_id = ?", id, tenantID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) List(ctx context.Context, tenantID uuid.UUID, f BookingFilter) ([]domain.Booking, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Booking{}).Where("tenant_id = ?", tenantID)

	if f.UnitID != nil {
		q = q.Where("unit_id = ?", *f.UnitID)
	}
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.From != nil {
		q = q.Where("end_at > ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("start_at < ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var out []domain.Booking
	err := q.Order("start_at").Limit(limit).Offset(f.Offset).Find(&out).Error
	return out, total, err
}

// ListOverlapping returns active bookings intersecting [start, end) on a
// unit, sorted by start time. Feeds the availability subtraction.
func (r *BookingRepository) ListOverlapping(ctx context.Context, tenantID, unitID uuid.UUID, start, end time.Time) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND unit_id = ?", tenantID, unitID).
		Where("status IN ?", []domain.BookingStatus{domain.BookingPending, domain.BookingConfirmed}).
		Where("start_at < ? AND end_at > ?", end, start).
		Order("start_at").
		Find(&out).Error
	return out, err
}

func (r *BookingRepository) CountOverlapping(ctx context.Context, tenantID, unitID uuid.UUID, start, end time.Time, excludeID uuid.UUID) (int64, error) {
	return countOverlapping(r.db.WithContext(ctx), tenantID, unitID, start, end, excludeID)
}

func (r *BookingRepository) Save(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingRepository) Stats(ctx context.Context, tenantID uuid.UUID) (*domain.BookingStats, error) {
	type row struct {
		Status domain.BookingStatus
		Count  int64
	}

	var rows []row
	err := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Select("status, COUNT(1) AS count").
		Where("tenant_id = ?", tenantID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := &domain.BookingStats{}
	for _, r := range rows {
		stats.Total += r.Count
		switch r.Status {
		case domain.BookingPending:
			stats.Pending = r.Count
		case domain.BookingConfirmed:
			stats.Confirmed = r.Count
		case domain.BookingCancelled:
			stats.Cancelled = r.Count
		case domain.BookingCompleted:
			stats.Completed = r.Count
		case domain.BookingNoShow:
			stats.NoShow = r.Count
		}
	}

	err = r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("tenant_id = ?", tenantID).
		Where("status NOT IN ?", []domain.BookingStatus{domain.BookingCancelled, domain.BookingNoShow}).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&stats.Revenue).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// SweepConfirmedPast marks confirmed bookings whose interval has fully
// elapsed as completed. Used by the hourly cron sweep.
func (r *BookingRepository) SweepConfirmedPast(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("status = ? AND end_at <= ?", domain.BookingConfirmed, now).
		Update("status", domain.BookingCompleted)
	return res.RowsAffected, res.Error
}

// SweepStalePending cancels pending bookings whose start passed more than
// the grace window ago without confirmation.
func (r *BookingRepository) SweepStalePending(ctx context.Context, cutoff time.Time) (int64, error) {
	now := time.Now().UTC()
	res := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("status = ? AND start_at <= ?", domain.BookingPending, cutoff).
		Updates(map[string]any{"status": domain.BookingCancelled, "cancelled_at": &now})
	return res.RowsAffected, res.Error
}
