package dto_test

import (
	"encoding/json"
	"pitch/internal/domains/booking/model"
	"pitch/internal/domains/booking/model/dto"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		Date:          "2025-03-10",
		GroundID:      "2",
		CustomerName:  "Rohit",
		CustomerPhone: "9876543210",
	}

	first := req.ToModel(time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC))
	second := req.ToModel(time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC))

	_, err := uuid.Parse(first.ID)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "2025-03-10", first.Date)
	assert.Equal(t, "2", first.GroundID)
	assert.Equal(t, "Rohit", first.CustomerName)
	assert.Equal(t, "9876543210", first.CustomerPhone)
	assert.False(t, first.CreatedAt.IsZero())
}

func TestAvailabilityResponse_EmptyListsEncodeAsArrays(t *testing.T) {
	res := dto.AvailabilityResponse{}
	res.FromModel(model.Availability{AvailableDates: []string{"2025-02-01"}})

	body, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"availableDates":["2025-02-01"],"partialDates":[],"fullDates":[]}`, string(body))
}

func TestLedgerEntryResponse_FromModel(t *testing.T) {
	entry := model.NewLedgerEntry("2025-03-10", 3).
		WithBooking(model.BookingRecord{ID: "a", Date: "2025-03-10", CreatedAt: time.Now()})

	res := dto.LedgerEntryResponse{}
	res.FromModel(entry)

	assert.Equal(t, "2025-03-10", res.Date)
	assert.Equal(t, 3, res.TotalSlots)
	assert.Equal(t, 1, res.BookedSlots)
	require.Len(t, res.Bookings, 1)
	assert.Equal(t, "a", res.Bookings[0].ID)
	assert.NotEmpty(t, res.Bookings[0].CreatedAt)
}
