package service

import (
	"context"
	"errors"
	"fmt"
	"pitch/config"
	"pitch/infras/kafka"
	"pitch/infras/otel"
	"pitch/internal/domains/booking/model"
	"pitch/internal/domains/booking/model/dto"
	"pitch/internal/domains/booking/repository"
	"pitch/shared/constant"
	"pitch/shared/failure"
	"pitch/shared/timezone"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	minYear  = 1
	maxYear  = 9999
	minMonth = 0
	maxMonth = 11
)

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

type Booking interface {
	Availability(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	GetLedger(ctx context.Context, date string) (dto.LedgerEntryResponse, error)
}

type serviceImpl struct {
	ledger    repository.Ledger
	publisher kafka.Client
	cfg       *config.Config
	otel      otel.Otel
}

// New wires the booking service. publisher may be nil, in which case created bookings are only logged.
func New(ledger repository.Ledger, publisher kafka.Client, cfg *config.Config, otel otel.Otel) Booking {
	return &serviceImpl{
		ledger:    ledger,
		publisher: publisher,
		cfg:       cfg,
		otel:      otel,
	}
}

func (s *serviceImpl) totalSlots() int {
	return s.cfg.App.Booking.TotalSlots
}

// Availability classifies every day of a zero based month.
func (s *serviceImpl) Availability(ctx context.Context, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	year, month, err := parsePeriod(req.Year, req.Month)
	if err != nil {
		return res, err
	}

	scope.SetAttributes(map[string]any{
		constant.RequestParamYear:   year,
		constant.RequestParamMonth:  month,
		constant.RequestParamGround: req.GroundID,
	})

	first := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	availability := model.Availability{}

	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		date := timezone.FormatDate(day)

		entry, found, err := s.ledger.Get(ctx, date)
		if err != nil {
			log.Error().Err(err).Str("date", date).Msg("failed to get ledger entry")

			return res, fmt.Errorf("failed to get ledger entry: %w", err)
		}

		booked, totalSlots := 0, s.totalSlots()
		if found {
			totalSlots = entry.TotalSlots
			booked = entry.BookedSlots

			if req.GroundID != "" {
				booked = entry.CountForGround(req.GroundID)
			}
		}

		switch {
		case booked == 0:
			availability.AvailableDates = append(availability.AvailableDates, date)
		case booked >= totalSlots:
			availability.FullDates = append(availability.FullDates, date)
		default:
			availability.PartialDates = append(availability.PartialDates, date)
		}
	}

	res.FromModel(availability)

	return res, nil
}

func parsePeriod(rawYear, rawMonth string) (year, month int, err error) {
	year, yearErr := strconv.Atoi(strings.TrimSpace(rawYear))
	month, monthErr := strconv.Atoi(strings.TrimSpace(rawMonth))

	if yearErr != nil || monthErr != nil {
		return 0, 0, model.ErrPeriodRequired
	}

	if year < minYear || year > maxYear || month < minMonth || month > maxMonth {
		return 0, 0, model.ErrInvalidPeriod
	}

	return year, month, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if strings.TrimSpace(req.Date) == "" {
		return res, model.ErrDateRequired
	}

	day, err := timezone.ParseDate(req.Date)
	if err != nil {
		log.Warn().Err(err).Str("date", req.Date).Msg("rejected booking with malformed date")

		return res, failure.InvalidDateParam
	}

	record := req.ToModel(day)

	entry, err := s.ledger.Admit(ctx, record.Date, s.totalSlots(), record)
	if errors.Is(err, model.ErrCapacityExceeded) {
		log.Info().Str("date", record.Date).Msg("booking rejected, no slots left")

		return res, model.ErrCapacityExceeded
	}

	if err != nil {
		log.Error().Err(err).Str("date", record.Date).Msg("failed to admit booking")

		return res, fmt.Errorf("failed to admit booking: %w", err)
	}

	scope.SetAttributes(map[string]any{
		"booking.id":           record.ID,
		"booking.date":         record.Date,
		"booking.booked_slots": entry.BookedSlots,
	})

	s.publishCreated(ctx, record, entry)

	res.FromModel(record)

	return res, nil
}

// publishCreated sends the booking created event in the background.
// Publishing never changes the outcome of an admission.
func (s *serviceImpl) publishCreated(ctx context.Context, record model.BookingRecord, entry model.LedgerEntry) {
	event := dto.BookingCreatedEvent{}
	event.FromModel(record, entry)

	if s.publisher == nil {
		log.Info().
			Str("id", record.ID).
			Str("date", record.Date).
			Int("bookedSlots", entry.BookedSlots).
			Msg("booking created")

		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		c, scope := s.otel.NewScope(c, constant.OtelEventScopeName, constant.OtelEventScopeName+".BookingCreated")
		defer scope.End()

		err := s.publisher.SendMessages(c, s.cfg.Kafka.Topic.BookingCreated, kafka.Message{Key: record.Date, Value: event})
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("id", record.ID).Msg("failed to publish booking created event")
		}
	}()
}

func (s *serviceImpl) GetLedger(ctx context.Context, date string) (res dto.LedgerEntryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetLedger")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	day, err := timezone.ParseDate(date)
	if err != nil {
		return res, failure.InvalidDateParam
	}

	date = timezone.FormatDate(day)

	entry, found, err := s.ledger.Get(ctx, date)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("failed to get ledger entry")

		return res, fmt.Errorf("failed to get ledger entry: %w", err)
	}

	if !found {
		entry = model.NewLedgerEntry(date, s.totalSlots())
	}

	res.FromModel(entry)

	return res, nil
}
