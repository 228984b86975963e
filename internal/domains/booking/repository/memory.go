package repository

import (
	"context"
	"pitch/infras/otel"
	"pitch/internal/domains/booking/model"
	"pitch/shared/constant"
	"sync"
)

type memoryLedger struct {
	mu      sync.RWMutex
	entries map[string]model.LedgerEntry
	otel    otel.Otel
}

// NewMemory returns a process local ledger. Entries are replaced whole on every write,
// so a reader holding a value never observes a later admission.
func NewMemory(otel otel.Otel) Ledger {
	return &memoryLedger{
		entries: make(map[string]model.LedgerEntry),
		otel:    otel,
	}
}

func (m *memoryLedger) Get(ctx context.Context, date string) (model.LedgerEntry, bool, error) {
	_, scope := m.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".memory.Get")
	defer scope.End()

	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, found := m.entries[date]
	if !found {
		return model.LedgerEntry{}, false, nil
	}

	return entry.Clone(), true, nil
}

func (m *memoryLedger) Upsert(ctx context.Context, entry model.LedgerEntry) (err error) {
	_, scope := m.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".memory.Upsert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = entry.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[entry.Date] = entry.Clone()

	return nil
}

func (m *memoryLedger) Admit(ctx context.Context, date string, totalSlots int, record model.BookingRecord) (res model.LedgerEntry, err error) {
	_, scope := m.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".memory.Admit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	m.mu.Lock()
	defer m.mu.Unlock()

	current, found := m.entries[date]
	if !found {
		current = model.NewLedgerEntry(date, totalSlots)
	}

	if current.IsFull() {
		return model.LedgerEntry{}, model.ErrCapacityExceeded
	}

	next := current.WithBooking(record)
	m.entries[date] = next

	return next.Clone(), nil
}
