package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"pitch/config"
	"pitch/infras/otel"
	"pitch/infras/postgres"
	"pitch/internal/domains/booking/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Ledger stores one entry per calendar day.
type Ledger interface {
	// Get returns the entry for date. found is false when the day has never been booked.
	Get(ctx context.Context, date string) (entry model.LedgerEntry, found bool, err error)
	// Upsert replaces the entry for entry.Date as a whole.
	Upsert(ctx context.Context, entry model.LedgerEntry) error
	// Admit appends record to the entry for date, creating it with totalSlots when absent.
	// It returns model.ErrCapacityExceeded and leaves the entry untouched when the day is full.
	Admit(ctx context.Context, date string, totalSlots int, record model.BookingRecord) (model.LedgerEntry, error)
}

var (
	ErrInvalidTotalSlots = errors.New("APP_BOOKING_TOTAL_SLOTS must be at least 1")
	ErrMissingRedis      = errors.New("redis ledger requires CACHE_REDIS_PRIMARY_HOST")
	ErrMissingPostgres   = errors.New("postgres ledger requires a database connection")
	ErrUnknownDriver     = errors.New("unknown ledger driver")
)

// New selects the ledger backend configured by APP_BOOKING_LEDGER_DRIVER.
// A misconfigured deployment is rejected here so the service never starts with it.
func New(cfg *config.Config, redisClient *redis.Client, db *postgres.Connection, otel otel.Otel) (Ledger, error) {
	booking := cfg.App.Booking

	if booking.TotalSlots < 1 {
		log.Error().Int("totalSlots", booking.TotalSlots).Msg("invalid slot capacity")

		return nil, fmt.Errorf("%w, got %d", ErrInvalidTotalSlots, booking.TotalSlots)
	}

	switch booking.LedgerDriver {
	case config.LedgerDriverRedis:
		if redisClient == nil {
			return nil, ErrMissingRedis
		}

		return NewRedis(redisClient, booking.LedgerKeyPrefix, booking.MaxAdmitRetries, otel), nil
	case config.LedgerDriverPostgres:
		if db == nil {
			return nil, ErrMissingPostgres
		}

		return NewPostgres(db, otel), nil
	case config.LedgerDriverMemory, "":
		return NewMemory(otel), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, booking.LedgerDriver)
	}
}
