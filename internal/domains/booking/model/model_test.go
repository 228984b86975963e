package model_test

import (
	"pitch/internal/domains/booking/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLedgerEntry_WithBooking(t *testing.T) {
	entry := model.NewLedgerEntry("2025-03-10", 3)

	next := entry.WithBooking(model.BookingRecord{ID: "a", Date: "2025-03-10", GroundID: "1"})
	next = next.WithBooking(model.BookingRecord{ID: "b", Date: "2025-03-10", GroundID: "2"})

	assert.Equal(t, 0, entry.BookedSlots)
	assert.Empty(t, entry.Bookings)
	assert.Equal(t, 2, next.BookedSlots)
	assert.Len(t, next.Bookings, 2)
	assert.False(t, next.IsFull())
	assert.Equal(t, 1, next.CountForGround("1"))
	assert.Equal(t, 0, next.CountForGround("9"))

	full := next.WithBooking(model.BookingRecord{ID: "c", Date: "2025-03-10"})
	assert.True(t, full.IsFull())
}

func TestLedgerEntry_Clone(t *testing.T) {
	entry := model.NewLedgerEntry("2025-03-10", 3).WithBooking(model.BookingRecord{ID: "a"})

	clone := entry.Clone()
	clone.Bookings[0].ID = "changed"

	assert.Equal(t, "a", entry.Bookings[0].ID)
}

func TestLedgerEntry_Validate(t *testing.T) {
	valid := model.NewLedgerEntry("2025-03-10", 1).WithBooking(model.BookingRecord{ID: "a"})
	assert.NoError(t, valid.Validate())

	overbooked := valid.WithBooking(model.BookingRecord{ID: "b"})
	assert.ErrorIs(t, overbooked.Validate(), model.ErrInconsistentEntry)

	drifted := valid
	drifted.BookedSlots = 0
	assert.ErrorIs(t, drifted.Validate(), model.ErrInconsistentEntry)

	assert.ErrorIs(t, model.LedgerEntry{TotalSlots: 3}.Validate(), model.ErrInconsistentEntry)
}
