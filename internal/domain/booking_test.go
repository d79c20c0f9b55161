package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to BookingStatus
		ok       bool
	}{
		{BookingPending, BookingConfirmed, true},
		{BookingPending, BookingCancelled, true},
		{BookingPending, BookingCompleted, false},
		{BookingPending, BookingNoShow, false},
		{BookingConfirmed, BookingCancelled, true},
		{BookingConfirmed, BookingCompleted, true},
		{BookingConfirmed, BookingNoShow, true},
		{BookingConfirmed, BookingPending, false},
		{BookingCancelled, BookingPending, false},
		{BookingCompleted, BookingConfirmed, false},
		{BookingNoShow, BookingConfirmed, false},
	}

	for _, c := range cases {
		assert.Equal(t, c.ok, c.from.CanTransitionTo(c.to), "%s -> %s", c.from, c.to)
	}
}

func TestBookingStatusTerminal(t *testing.T) {
	assert.False(t, BookingPending.Terminal())
	assert.False(t, BookingConfirmed.Terminal())
	assert.True(t, BookingCancelled.Terminal())
	assert.True(t, BookingCompleted.Terminal())
	assert.True(t, BookingNoShow.Terminal())
}

func TestBookingStatusCodes(t *testing.T) {
	for _, s := range []BookingStatus{BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted, BookingNoShow} {
		got, ok := BookingStatusFromCode(s.Code())
		assert.True(t, ok)
		assert.Equal(t, s, got)
	}

	_, ok := BookingStatusFromCode(0)
	assert.False(t, ok)
	_, ok = BookingStatusFromCode(99)
	assert.False(t, ok)
}

func TestLeadStatusCodesAndClosed(t *testing.T) {
	for _, s := range []LeadStatus{LeadNew, LeadContacted, LeadQualified, LeadConverted, LeadLost} {
		got, ok := LeadStatusFromCode(s.Code())
		assert.True(t, ok)
		assert.Equal(t, s, got)
	}

	assert.True(t, LeadConverted.Closed())
	assert.True(t, LeadLost.Closed())
	assert.False(t, LeadNew.Closed())
	assert.False(t, LeadQualified.Closed())
}

func TestBookingOverlaps(t *testing.T) {
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	b := &Booking{StartAt: day.Add(10 * time.Hour), EndAt: day.Add(12 * time.Hour)}

	assert.True(t, b.Overlaps(day.Add(11*time.Hour), day.Add(13*time.Hour)))
	assert.True(t, b.Overlaps(day.Add(9*time.Hour), day.Add(11*time.Hour)))
	assert.True(t, b.Overlaps(day.Add(10*time.Hour), day.Add(12*time.Hour)))

	// Touching endpoints do not overlap: intervals are half-open.
	assert.False(t, b.Overlaps(day.Add(12*time.Hour), day.Add(14*time.Hour)))
	assert.False(t, b.Overlaps(day.Add(8*time.Hour), day.Add(10*time.Hour)))
}
