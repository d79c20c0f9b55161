package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"spacehub/internal/database"
	"spacehub/internal/domain"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)

	// In-memory sqlite lives per connection; keep the pool at one so every
	// query sees the same database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(domain.AllModels()...))
	return db
}

func seedBookingFixtures(t *testing.T, db *gorm.DB) (tenantID, unitID, userID uuid.UUID) {
	t.Helper()

	tenant := domain.Tenant{Name: "T", Domain: uuid.NewString(), Type: domain.TenantMixed, Status: domain.TenantActive}
	require.NoError(t, db.Create(&tenant).Error)

	user := domain.User{TenantID: tenant.ID, Email: "u@t.dev", PasswordHash: "x", Role: domain.RoleMember}
	require.NoError(t, db.Create(&user).Error)

	prop := domain.Property{TenantID: tenant.ID, Name: "P", Slug: uuid.NewString(), PropertyType: domain.PropertyCoworkingHub, Status: domain.PropertyActive}
	require.NoError(t, db.Create(&prop).Error)

	unit := domain.Unit{TenantID: tenant.ID, PropertyID: prop.ID, Name: "U", Category: domain.UnitMeetingRoom, Status: domain.UnitAvailable}
	require.NoError(t, db.Create(&unit).Error)

	return tenant.ID, unit.ID, user.ID
}

func mkBooking(tenantID, unitID, userID uuid.UUID, start, end time.Time, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		TenantID: tenantID,
		UnitID:   unitID,
		UserID:   userID,
		StartAt:  start,
		EndAt:    end,
		Status:   status,
	}
}

func TestCreateIfAvailable_RejectsOverlap(t *testing.T) {
	db := testDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	tenantID, unitID, userID := seedBookingFixtures(t, db)
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	first := mkBooking(tenantID, unitID, userID, day.Add(10*time.Hour), day.Add(12*time.Hour), domain.BookingConfirmed)
	require.NoError(t, repo.CreateIfAvailable(ctx, first))

	overlapping := mkBooking(tenantID, unitID, userID, day.Add(11*time.Hour), day.Add(13*time.Hour), domain.BookingPending)
	err := repo.CreateIfAvailable(ctx, overlapping)
	assert.ErrorIs(t, err, domain.ErrConflict)

	var cnt int64
	require.NoError(t, db.Model(&domain.Booking{}).Count(&cnt).Error)
	assert.Equal(t, int64(1), cnt)
}

func TestCreateIfAvailable_ConcurrentCallersOneWins(t *testing.T) {
	db := testDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	tenantID, unitID, userID := seedBookingFixtures(t, db)
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b := mkBooking(tenantID, unitID, userID, day.Add(10*time.Hour), day.Add(12*time.Hour), domain.BookingPending)
			errs <- repo.CreateIfAvailable(ctx, b)
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded, conflicted int
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, domain.ErrConflict):
			conflicted++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, conflicted)

	var cnt int64
	require.NoError(t, db.Model(&domain.Booking{}).Count(&cnt).Error)
	assert.Equal(t, int64(1), cnt)
}

func TestCreateIfAvailable_BoundaryTouchAllowed(t *testing.T) {
	db := testDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	tenantID, unitID, userID := seedBookingFixtures(t, db)
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	first := mkBooking(tenantID, unitID, userID, day.Add(10*time.Hour), day.Add(12*time.Hour), domain.BookingConfirmed)
	require.NoError(t, repo.CreateIfAvailable(ctx, first))

	// [12,14) starts exactly where [10,12) ends: no overlap under half-open
	// intervals.
	adjacent := mkBooking(tenantID, unitID, userID, day.Add(12*time.Hour), day.Add(14*time.Hour), domain.BookingPending)
	assert.NoError(t, repo.CreateIfAvailable(ctx, adjacent))
}

func TestCreateIfAvailable_CancelledBookingDoesNotBlock(t *testing.T) {
	db := testDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	tenantID, unitID, userID := seedBookingFixtures(t, db)
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	cancelled := mkBooking(tenantID, unitID, userID, day.Add(10*time.Hour), day.Add(12*time.Hour), domain.BookingCancelled)
	require.NoError(t, db.Create(cancelled).Error)

	b := mkBooking(tenantID, unitID, userID, day.Add(10*time.Hour), day.Add(12*time.Hour), domain.BookingPending)
	assert.NoError(t, repo.CreateIfAvailable(ctx, b))
}

func TestCreateIfAvailable_OtherTenantSameWindow(t *testing.T) {
	db := testDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	tenantID, unitID, userID := seedBookingFixtures(t, db)
	otherTenantID, otherUnitID, otherUserID := seedBookingFixtures(t, db)
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	first := mkBooking(tenantID, unitID, userID, day.Add(10*time.Hour), day.Add(12*time.Hour), domain.BookingConfirmed)
	require.NoError(t, repo.CreateIfAvailable(ctx, first))

	// Another tenant's unit is a different resource even for the same window.
	other := mkBooking(otherTenantID, otherUnitID, otherUserID, day.Add(10*time.Hour), day.Add(12*time.Hour), domain.BookingPending)
	assert.NoError(t, repo.CreateIfAvailable(ctx, other))
}

func TestUpdateTimesIfAvailable_IgnoresOwnInterval(t *testing.T) {
	db := testDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	tenantID, unitID, userID := seedBookingFixtures(t, db)
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	b := mkBooking(tenantID, unitID, userID, day.Add(10*time.Hour), day.Add(12*time.Hour), domain.BookingPending)
	require.NoError(t, repo.CreateIfAvailable(ctx, b))

	// Shifting one hour later overlaps the booking's own old window, which
	// must not count against it.
	b.StartAt = day.Add(11 * time.Hour)
	b.EndAt = day.Add(13 * time.Hour)
	assert.NoError(t, repo.UpdateTimesIfAvailable(ctx, b))

	got, err := repo.GetByID(ctx, tenantID, b.ID)
	require.NoError(t, err)
	assert.True(t, got.StartAt.Equal(day.Add(11*time.Hour)))
}

func TestUpdateTimesIfAvailable_ConflictWithNeighbour(t *testing.T) {
	db := testDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	tenantID, unitID, userID := seedBookingFixtures(t, db)
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	neighbour := mkBooking(tenantID, unitID, userID, day.Add(14*time.Hour), day.Add(16*time.Hour), domain.BookingConfirmed)
	require.NoError(t, repo.CreateIfAvailable(ctx, neighbour))

	b := mkBooking(tenantID, unitID, userID, day.Add(10*time.Hour), day.Add(12*time.Hour), domain.BookingPending)
	require.NoError(t, repo.CreateIfAvailable(ctx, b))

	b.StartAt = day.Add(15 * time.Hour)
	b.EndAt = day.Add(17 * time.Hour)
	assert.ErrorIs(t, repo.UpdateTimesIfAvailable(ctx, b), domain.ErrConflict)
}

func TestGetByID_ScopedToTenant(t *testing.T) {
	db := testDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	tenantID, unitID, userID := seedBookingFixtures(t, db)
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	b := mkBooking(tenantID, unitID, userID, day.Add(10*time.Hour), day.Add(12*time.Hour), domain.BookingPending)
	require.NoError(t, repo.CreateIfAvailable(ctx, b))

	_, err := repo.GetByID(ctx, uuid.New(), b.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListOverlapping_SortedAndFiltered(t *testing.T) {
	db := testDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	tenantID, unitID, userID := seedBookingFixtures(t, db)
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	late := mkBooking(tenantID, unitID, userID, day.Add(15*time.Hour), day.Add(16*time.Hour), domain.BookingConfirmed)
	early := mkBooking(tenantID, unitID, userID, day.Add(10*time.Hour), day.Add(11*time.Hour), domain.BookingPending)
	cancelled := mkBooking(tenantID, unitID, userID, day.Add(12*time.Hour), day.Add(13*time.Hour), domain.BookingCancelled)
	for _, b := range []*domain.Booking{late, early} {
		require.NoError(t, repo.CreateIfAvailable(ctx, b))
	}
	require.NoError(t, db.Create(cancelled).Error)

	got, err := repo.ListOverlapping(ctx, tenantID, unitID, day.Add(9*time.Hour), day.Add(18*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, early.ID, got[0].ID)
	assert.Equal(t, late.ID, got[1].ID)
}

func TestConvertToBooking_Atomic(t *testing.T) {
	db := testDB(t)
	leads := NewLeadRepository(db)
	bookings := NewBookingRepository(db)
	ctx := context.Background()

	tenantID, unitID, userID := seedBookingFixtures(t, db)
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	lead := &domain.Lead{TenantID: tenantID, Name: "Prospect", Status: domain.LeadQualified}
	require.NoError(t, leads.Create(ctx, lead))

	b := mkBooking(tenantID, unitID, userID, day.Add(10*time.Hour), day.Add(12*time.Hour), domain.BookingPending)
	require.NoError(t, leads.ConvertToBooking(ctx, lead, b))

	assert.Equal(t, domain.LeadConverted, lead.Status)
	require.NotNil(t, lead.BookingID)
	assert.Equal(t, b.ID, *lead.BookingID)

	got, err := bookings.GetByID(ctx, tenantID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingPending, got.Status)
}

func TestConvertToBooking_ConflictLeavesLeadUntouched(t *testing.T) {
	db := testDB(t)
	leads := NewLeadRepository(db)
	bookings := NewBookingRepository(db)
	ctx := context.Background()

	tenantID, unitID, userID := seedBookingFixtures(t, db)
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	blocker := mkBooking(tenantID, unitID, userID, day.Add(10*time.Hour), day.Add(12*time.Hour), domain.BookingConfirmed)
	require.NoError(t, bookings.CreateIfAvailable(ctx, blocker))

	lead := &domain.Lead{TenantID: tenantID, Name: "Prospect", Status: domain.LeadQualified}
	require.NoError(t, leads.Create(ctx, lead))

	b := mkBooking(tenantID, unitID, userID, day.Add(11*time.Hour), day.Add(13*time.Hour), domain.BookingPending)
	err := leads.ConvertToBooking(ctx, lead, b)
	assert.ErrorIs(t, err, domain.ErrConflict)

	stored, err := leads.GetByID(ctx, tenantID, lead.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LeadQualified, stored.Status)
	assert.Nil(t, stored.BookingID)
}

func TestStats_CountsAndRevenue(t *testing.T) {
	db := testDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	tenantID, unitID, userID := seedBookingFixtures(t, db)
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	rows := []struct {
		status domain.BookingStatus
		price  float64
	}{
		{domain.BookingPending, 50},
		{domain.BookingConfirmed, 100},
		{domain.BookingCompleted, 200},
		{domain.BookingCancelled, 75},
	}
	for i, r := range rows {
		b := mkBooking(tenantID, unitID, userID,
			day.Add(time.Duration(i*2)*time.Hour),
			day.Add(time.Duration(i*2+1)*time.Hour), r.status)
		b.TotalPrice = r.price
		require.NoError(t, db.Create(b).Error)
	}

	stats, err := repo.Stats(ctx, tenantID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.Total)
	assert.Equal(t, int64(1), stats.Pending)
	assert.Equal(t, int64(1), stats.Confirmed)
	assert.Equal(t, int64(1), stats.Completed)
	assert.Equal(t, int64(1), stats.Cancelled)
	// Cancelled bookings do not count toward revenue.
	assert.InDelta(t, 350.0, stats.Revenue, 0.001)
}

func TestSweeps(t *testing.T) {
	db := testDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	tenantID, unitID, userID := seedBookingFixtures(t, db)
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

	past := mkBooking(tenantID, unitID, userID, now.Add(-4*time.Hour), now.Add(-2*time.Hour), domain.BookingConfirmed)
	future := mkBooking(tenantID, unitID, userID, now.Add(2*time.Hour), now.Add(4*time.Hour), domain.BookingConfirmed)
	stale := mkBooking(tenantID, unitID, userID, now.Add(-90*time.Minute), now.Add(-30*time.Minute), domain.BookingPending)
	for _, b := range []*domain.Booking{past, future, stale} {
		require.NoError(t, db.Create(b).Error)
	}

	completed, err := repo.SweepConfirmedPast(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), completed)

	cancelled, err := repo.SweepStalePending(ctx, now.Add(-30*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1), cancelled)

	got, err := repo.GetByID(ctx, tenantID, future.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, got.Status)

	got, err = repo.GetByID(ctx, tenantID, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, got.Status)
	assert.NotNil(t, got.CancelledAt)
}
