package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"pitch/infras/otel"
	"pitch/internal/domains/booking/model"
	"pitch/shared/cache"
	"pitch/shared/constant"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const ledgerEntryKey = "entry"

type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

type redisLedger struct {
	client     *redis.Client
	prefix     string
	maxRetries int
	otel       otel.Otel
}

// NewRedis returns a ledger shared by every instance connected to the same Redis.
// Admissions use WATCH/MULTI and are retried up to maxRetries times when another
// writer touches the same day in between.
func NewRedis(client *redis.Client, prefix string, maxRetries int, otel otel.Otel) Ledger {
	return &redisLedger{
		client:     client,
		prefix:     prefix,
		maxRetries: max(maxRetries, 1),
		otel:       otel,
	}
}

func (r *redisLedger) key(date string) string {
	return cache.BuildKey(r.prefix, ledgerEntryKey, date)
}

func (r *redisLedger) read(ctx context.Context, getter stringGetter, key string) (model.LedgerEntry, bool, error) {
	payload, err := getter.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.LedgerEntry{}, false, nil
	}

	if err != nil {
		return model.LedgerEntry{}, false, fmt.Errorf("failed to read ledger entry: %w", err)
	}

	entry := model.LedgerEntry{}
	if err = json.Unmarshal(payload, &entry); err != nil {
		return model.LedgerEntry{}, false, fmt.Errorf("failed to decode ledger entry: %w", err)
	}

	return entry, true, nil
}

func (r *redisLedger) Get(ctx context.Context, date string) (entry model.LedgerEntry, found bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".redis.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key := r.key(date)
	scope.SetAttribute(constant.OtelQueryAttributeKey, key)

	entry, found, err = r.read(ctx, r.client, key)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to get ledger entry")

		return model.LedgerEntry{}, false, err
	}

	return entry, found, nil
}

func (r *redisLedger) Upsert(ctx context.Context, entry model.LedgerEntry) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".redis.Upsert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = entry.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode ledger entry: %w", err)
	}

	key := r.key(entry.Date)
	if err = r.client.Set(ctx, key, payload, 0).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to upsert ledger entry")

		return fmt.Errorf("failed to upsert ledger entry: %w", err)
	}

	return nil
}

func (r *redisLedger) Admit(ctx context.Context, date string, totalSlots int, record model.BookingRecord) (res model.LedgerEntry, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".redis.Admit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key := r.key(date)
	scope.SetAttribute(constant.OtelQueryAttributeKey, key)

	admit := func(tx *redis.Tx) error {
		current, found, err := r.read(ctx, tx, key)
		if err != nil {
			return err
		}

		if !found {
			current = model.NewLedgerEntry(date, totalSlots)
		}

		if current.IsFull() {
			return model.ErrCapacityExceeded
		}

		next := current.WithBooking(record)

		payload, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("failed to encode ledger entry: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, 0)

			return nil
		})
		if err != nil {
			return err //nolint:wrapcheck
		}

		res = next

		return nil
	}

	for attempt := range r.maxRetries {
		err = r.client.Watch(ctx, admit, key)

		switch {
		case err == nil:
			return res, nil
		case errors.Is(err, model.ErrCapacityExceeded):
			return model.LedgerEntry{}, model.ErrCapacityExceeded
		case errors.Is(err, redis.TxFailedErr):
			log.Debug().Str("key", key).Int("attempt", attempt+1).Msg("ledger entry changed during admission, retrying")

			continue
		default:
			log.Error().Err(err).Str("key", key).Msg("failed to admit booking")

			return model.LedgerEntry{}, fmt.Errorf("failed to admit booking: %w", err)
		}
	}

	log.Error().Str("key", key).Int("attempts", r.maxRetries).Msg("admission kept conflicting with other writers")

	return model.LedgerEntry{}, fmt.Errorf("failed to admit booking after %d attempts: %w", r.maxRetries, err)
}
