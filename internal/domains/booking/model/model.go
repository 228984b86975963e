package model

import (
	"errors"
	"net/http"
	"pitch/shared/failure"
	"time"
)

const (
	LedgerTableName  = "slot_ledger"
	BookingTableName = "slot_bookings"
	EntityName       = "booking"

	FieldDate          = "date"
	FieldTotalSlots    = "total_slots"
	FieldBookedSlots   = "booked_slots"
	FieldID            = "id"
	FieldGroundID      = "ground_id"
	FieldCustomerName  = "customer_name"
	FieldCustomerPhone = "customer_phone"
	FieldCreatedAt     = "created_at"
	FieldModifiedAt    = "modified_at"
	FieldSequence      = "seq"
)

var (
	ErrDateRequired     = &failure.Failure{Code: http.StatusBadRequest, Message: "date is required (YYYY-MM-DD)"}
	ErrPeriodRequired   = &failure.Failure{Code: http.StatusBadRequest, Message: "year and month query params required"}
	ErrInvalidPeriod    = &failure.Failure{Code: http.StatusBadRequest, Message: "year must be between 1 and 9999 and month between 0 and 11"}
	ErrCapacityExceeded = &failure.Failure{Code: http.StatusConflict, Message: "No slots available for this date"}

	ErrInconsistentEntry = errors.New("ledger entry booked slots must equal its bookings and stay within capacity")
)

// BookingRecord is a single admitted reservation. It is never mutated after admission.
type BookingRecord struct {
	ID            string    `db:"id"             json:"id"`
	Date          string    `db:"date"           json:"date"`
	GroundID      string    `db:"ground_id"      json:"groundId,omitempty"`
	CustomerName  string    `db:"customer_name"  json:"customerName,omitempty"`
	CustomerPhone string    `db:"customer_phone" json:"customerPhone,omitempty"`
	CreatedAt     time.Time `db:"created_at"     json:"createdAt"`
}

// LedgerEntry is the capacity record of one calendar day.
// BookedSlots always equals len(Bookings) and never exceeds TotalSlots.
type LedgerEntry struct {
	Date        string          `db:"date"         json:"date"`
	TotalSlots  int             `db:"total_slots"  json:"totalSlots"`
	BookedSlots int             `db:"booked_slots" json:"bookedSlots"`
	Bookings    []BookingRecord `db:"-"            json:"bookings"`
}

// NewLedgerEntry returns an empty entry for date with the given capacity.
func NewLedgerEntry(date string, totalSlots int) LedgerEntry {
	return LedgerEntry{
		Date:       date,
		TotalSlots: totalSlots,
		Bookings:   []BookingRecord{},
	}
}

// IsFull reports whether no further booking can be admitted.
func (e LedgerEntry) IsFull() bool {
	return e.BookedSlots >= e.TotalSlots
}

// WithBooking returns a copy of the entry with record appended. The receiver is left untouched.
func (e LedgerEntry) WithBooking(record BookingRecord) LedgerEntry {
	bookings := make([]BookingRecord, 0, len(e.Bookings)+1)
	bookings = append(bookings, e.Bookings...)
	bookings = append(bookings, record)

	return LedgerEntry{
		Date:        e.Date,
		TotalSlots:  e.TotalSlots,
		BookedSlots: len(bookings),
		Bookings:    bookings,
	}
}

// Validate checks the entry invariants before it is stored.
func (e LedgerEntry) Validate() error {
	if e.Date == "" || e.TotalSlots < 1 || e.BookedSlots != len(e.Bookings) || e.BookedSlots > e.TotalSlots {
		return ErrInconsistentEntry
	}

	return nil
}

// CountForGround returns how many bookings of the day were made for groundID.
func (e LedgerEntry) CountForGround(groundID string) int {
	count := 0

	for _, booking := range e.Bookings {
		if booking.GroundID == groundID {
			count++
		}
	}

	return count
}

// Clone returns a deep copy so callers cannot alias stored booking slices.
func (e LedgerEntry) Clone() LedgerEntry {
	clone := e
	clone.Bookings = make([]BookingRecord, len(e.Bookings))
	copy(clone.Bookings, e.Bookings)

	return clone
}

// Availability is the per-month classification of calendar days.
type Availability struct {
	AvailableDates []string
	PartialDates   []string
	FullDates      []string
}
