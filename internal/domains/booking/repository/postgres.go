package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"pitch/infras/otel"
	"pitch/infras/postgres"
	"pitch/internal/domains/booking/model"
	"pitch/shared/constant"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	querySelectEntry = `SELECT to_char(date, 'YYYY-MM-DD') AS date, total_slots, booked_slots
		FROM slot_ledger WHERE date = $1::date`
	querySelectBookings = `SELECT id, to_char(date, 'YYYY-MM-DD') AS date, ground_id, customer_name, customer_phone, created_at
		FROM slot_bookings WHERE date = $1::date ORDER BY seq`
	queryEnsureEntry = `INSERT INTO slot_ledger (date, total_slots) VALUES ($1::date, $2)
		ON CONFLICT (date) DO NOTHING`
	queryClaimSlot = `UPDATE slot_ledger SET booked_slots = booked_slots + 1, modified_at = NOW()
		WHERE date = $1::date AND booked_slots < total_slots`
	queryInsertBooking = `INSERT INTO slot_bookings (id, date, ground_id, customer_name, customer_phone, created_at)
		VALUES (:id, CAST(:date AS date), :ground_id, :customer_name, :customer_phone, :created_at)`
	queryUpsertEntry = `INSERT INTO slot_ledger (date, total_slots, booked_slots) VALUES ($1::date, $2, $3)
		ON CONFLICT (date) DO UPDATE SET total_slots = EXCLUDED.total_slots,
		booked_slots = EXCLUDED.booked_slots, modified_at = NOW()`
	queryDeleteBookings = `DELETE FROM slot_bookings WHERE date = $1::date`
)

type postgresLedger struct {
	db   *postgres.Connection
	otel otel.Otel
}

// NewPostgres returns a durable ledger. Admission claims the slot with a conditional UPDATE,
// so the row lock taken by Postgres orders concurrent admissions on the same day.
func NewPostgres(db *postgres.Connection, otel otel.Otel) Ledger {
	return &postgresLedger{
		db:   db,
		otel: otel,
	}
}

func (p *postgresLedger) load(ctx context.Context, queryer sqlx.QueryerContext, date string) (model.LedgerEntry, bool, error) {
	entry := model.LedgerEntry{}

	err := sqlx.GetContext(ctx, queryer, &entry, querySelectEntry, date)
	if errors.Is(err, sql.ErrNoRows) {
		return model.LedgerEntry{}, false, nil
	}

	if err != nil {
		return model.LedgerEntry{}, false, fmt.Errorf("failed to select ledger entry: %w", err)
	}

	entry.Bookings = []model.BookingRecord{}
	if err = sqlx.SelectContext(ctx, queryer, &entry.Bookings, querySelectBookings, date); err != nil {
		return model.LedgerEntry{}, false, fmt.Errorf("failed to select bookings: %w", err)
	}

	return entry, true, nil
}

func (p *postgresLedger) Get(ctx context.Context, date string) (entry model.LedgerEntry, found bool, err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".postgres.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	// One snapshot for both statements so the entry and its bookings agree.
	tx, err := p.db.Read.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		log.Error().Err(err).Msg("failed to begin ledger read")

		return model.LedgerEntry{}, false, fmt.Errorf("failed to begin ledger read: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	entry, found, err = p.load(ctx, tx, date)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("failed to get ledger entry")

		return model.LedgerEntry{}, false, err
	}

	return entry, found, nil
}

func (p *postgresLedger) Upsert(ctx context.Context, entry model.LedgerEntry) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".postgres.Upsert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = entry.Validate(); err != nil {
		return err
	}

	tx, err := p.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin ledger upsert: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err = tx.ExecContext(ctx, queryUpsertEntry, entry.Date, entry.TotalSlots, entry.BookedSlots); err != nil {
		log.Error().Err(err).Str("date", entry.Date).Msg("failed to upsert ledger entry")

		return fmt.Errorf("failed to upsert ledger entry: %w", err)
	}

	if _, err = tx.ExecContext(ctx, queryDeleteBookings, entry.Date); err != nil {
		return fmt.Errorf("failed to clear bookings: %w", err)
	}

	for _, record := range entry.Bookings {
		record.Date = entry.Date

		if _, err = tx.NamedExecContext(ctx, queryInsertBooking, record); err != nil {
			log.Error().Err(err).Str("id", record.ID).Msg("failed to insert booking")

			return fmt.Errorf("failed to insert booking: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit ledger upsert: %w", err)
	}

	return nil
}

func (p *postgresLedger) Admit(ctx context.Context, date string, totalSlots int, record model.BookingRecord) (res model.LedgerEntry, err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".postgres.Admit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tx, err := p.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin admission")

		return model.LedgerEntry{}, fmt.Errorf("failed to begin admission: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err = tx.ExecContext(ctx, queryEnsureEntry, date, totalSlots); err != nil {
		log.Error().Err(err).Str("date", date).Msg("failed to create ledger entry")

		return model.LedgerEntry{}, fmt.Errorf("failed to create ledger entry: %w", err)
	}

	result, err := tx.ExecContext(ctx, queryClaimSlot, date)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("failed to claim slot")

		return model.LedgerEntry{}, fmt.Errorf("failed to claim slot: %w", err)
	}

	claimed, err := result.RowsAffected()
	if err != nil {
		return model.LedgerEntry{}, fmt.Errorf("failed to read claimed rows: %w", err)
	}

	if claimed == 0 {
		return model.LedgerEntry{}, model.ErrCapacityExceeded
	}

	record.Date = date
	if _, err = tx.NamedExecContext(ctx, queryInsertBooking, record); err != nil {
		log.Error().Err(err).Str("id", record.ID).Msg("failed to insert booking")

		return model.LedgerEntry{}, fmt.Errorf("failed to insert booking: %w", err)
	}

	res, _, err = p.load(ctx, tx, date)
	if err != nil {
		return model.LedgerEntry{}, err
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Str("date", date).Msg("failed to commit admission")

		return model.LedgerEntry{}, fmt.Errorf("failed to commit admission: %w", err)
	}

	return res, nil
}
