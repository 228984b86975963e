package dto

import (
	"pitch/internal/domains/booking/model"
	"pitch/shared/constant"
	"pitch/shared/timezone"
	"time"

	"github.com/google/uuid"
)

const MessageBookingCreated = "Booking created"

type CreateBookingRequest struct {
	Date          string `json:"date"          validate:"omitempty,isodate"`
	GroundID      string `json:"groundId"      validate:"omitempty,max=64"`
	CustomerName  string `json:"customerName"  validate:"omitempty,max=100"`
	CustomerPhone string `json:"customerPhone" validate:"omitempty,max=20"`
}

// ToModel builds the record admitted for day. day must already be a validated calendar date.
func (c *CreateBookingRequest) ToModel(day time.Time) model.BookingRecord {
	return model.BookingRecord{
		ID:            uuid.NewString(),
		Date:          timezone.FormatDate(day),
		GroundID:      c.GroundID,
		CustomerName:  c.CustomerName,
		CustomerPhone: c.CustomerPhone,
		CreatedAt:     timezone.Now(),
	}
}

type AvailabilityRequest struct {
	Year     string
	Month    string
	GroundID string
}

type AvailabilityResponse struct {
	AvailableDates []string `json:"availableDates"`
	PartialDates   []string `json:"partialDates"`
	FullDates      []string `json:"fullDates"`
}

func (r *AvailabilityResponse) FromModel(availability model.Availability) {
	r.AvailableDates = nonNil(availability.AvailableDates)
	r.PartialDates = nonNil(availability.PartialDates)
	r.FullDates = nonNil(availability.FullDates)
}

type BookingResponse struct {
	ID            string `json:"id"`
	Date          string `json:"date"`
	GroundID      string `json:"groundId,omitempty"`
	CustomerName  string `json:"customerName,omitempty"`
	CustomerPhone string `json:"customerPhone,omitempty"`
	CreatedAt     string `json:"createdAt"`
}

func (r *BookingResponse) FromModel(record model.BookingRecord) {
	r.ID = record.ID
	r.Date = record.Date
	r.GroundID = record.GroundID
	r.CustomerName = record.CustomerName
	r.CustomerPhone = record.CustomerPhone
	r.CreatedAt = timezone.Format(record.CreatedAt, constant.DateFormat)
}

type CreateBookingResponse struct {
	Message string          `json:"message"`
	Booking BookingResponse `json:"booking"`
}

func (r *CreateBookingResponse) FromModel(record model.BookingRecord) {
	r.Message = MessageBookingCreated
	r.Booking.FromModel(record)
}

type LedgerEntryResponse struct {
	Date        string            `json:"date"`
	TotalSlots  int               `json:"totalSlots"`
	BookedSlots int               `json:"bookedSlots"`
	Bookings    []BookingResponse `json:"bookings"`
}

func (r *LedgerEntryResponse) FromModel(entry model.LedgerEntry) {
	r.Date = entry.Date
	r.TotalSlots = entry.TotalSlots
	r.BookedSlots = entry.BookedSlots

	r.Bookings = make([]BookingResponse, len(entry.Bookings))
	for i, record := range entry.Bookings {
		r.Bookings[i].FromModel(record)
	}
}

func nonNil(dates []string) []string {
	if dates == nil {
		return []string{}
	}

	return dates
}

// BookingCreatedEvent is published on the booking created topic, keyed by date.
type BookingCreatedEvent struct {
	Booking     BookingResponse `json:"booking"`
	BookedSlots int             `json:"bookedSlots"`
	TotalSlots  int             `json:"totalSlots"`
}

func (e *BookingCreatedEvent) FromModel(record model.BookingRecord, entry model.LedgerEntry) {
	e.Booking.FromModel(record)
	e.BookedSlots = entry.BookedSlots
	e.TotalSlots = entry.TotalSlots
}
