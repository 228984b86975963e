package service_test

import (
	"context"
	"errors"
	"pitch/config"
	kafkaPkg "pitch/infras/kafka"
	kafkaMocks "pitch/infras/kafka/mocks"
	"pitch/infras/otel/mocks"
	bookingMocks "pitch/internal/domains/booking/mocks"
	"pitch/internal/domains/booking/model"
	"pitch/internal/domains/booking/model/dto"
	"pitch/internal/domains/booking/repository"
	"pitch/internal/domains/booking/service"
	"pitch/shared/failure"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Booking.TotalSlots = 3
	cfg.Kafka.Topic.BookingCreated = "booking.created"

	return cfg
}

func classify(res dto.AvailabilityResponse, date string) string {
	for name, dates := range map[string][]string{
		"available": res.AvailableDates,
		"partial":   res.PartialDates,
		"full":      res.FullDates,
	} {
		for _, d := range dates {
			if d == date {
				return name
			}
		}
	}

	return ""
}

func TestBookingService_FillingADay(t *testing.T) {
	ctx := context.Background()
	ledger := repository.NewMemory(mocks.NewOtel())
	svc := service.New(ledger, nil, newConfig(), mocks.NewOtel())
	period := dto.AvailabilityRequest{Year: "2024", Month: "11"}

	res, err := svc.Availability(ctx, period)
	require.NoError(t, err)
	assert.Equal(t, "available", classify(res, "2024-12-15"))

	_, err = svc.Create(ctx, dto.CreateBookingRequest{Date: "2024-12-15", GroundID: "1"})
	require.NoError(t, err)

	res, err = svc.Availability(ctx, period)
	require.NoError(t, err)
	assert.Equal(t, "partial", classify(res, "2024-12-15"))

	for range 2 {
		_, err = svc.Create(ctx, dto.CreateBookingRequest{Date: "2024-12-15"})
		require.NoError(t, err)
	}

	res, err = svc.Availability(ctx, period)
	require.NoError(t, err)
	assert.Equal(t, "full", classify(res, "2024-12-15"))

	_, err = svc.Create(ctx, dto.CreateBookingRequest{Date: "2024-12-15"})
	assert.ErrorIs(t, err, model.ErrCapacityExceeded)
	assert.Equal(t, 409, failure.GetCode(err))

	entry, _, err := ledger.Get(ctx, "2024-12-15")
	require.NoError(t, err)
	assert.Equal(t, 3, entry.BookedSlots)
	assert.Len(t, entry.Bookings, 3)
}

func TestBookingService_AvailabilityCoversWholeMonth(t *testing.T) {
	svc := service.New(repository.NewMemory(mocks.NewOtel()), nil, newConfig(), mocks.NewOtel())

	tests := []struct {
		name  string
		year  string
		month string
		days  int
		first string
		last  string
	}{
		{name: "december", year: "2024", month: "11", days: 31, first: "2024-12-01", last: "2024-12-31"},
		{name: "leap february", year: "2024", month: "1", days: 29, first: "2024-02-01", last: "2024-02-29"},
		{name: "february", year: "2025", month: "1", days: 28, first: "2025-02-01", last: "2025-02-28"},
		{name: "january", year: "2025", month: "0", days: 31, first: "2025-01-01", last: "2025-01-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Availability(context.Background(), dto.AvailabilityRequest{Year: tt.year, Month: tt.month})

			require.NoError(t, err)
			assert.Len(t, res.AvailableDates, tt.days)
			assert.Equal(t, tt.first, res.AvailableDates[0])
			assert.Equal(t, tt.last, res.AvailableDates[tt.days-1])
			assert.Empty(t, res.PartialDates)
			assert.Empty(t, res.FullDates)
		})
	}
}

func TestBookingService_AvailabilityByGround(t *testing.T) {
	ctx := context.Background()
	svc := service.New(repository.NewMemory(mocks.NewOtel()), nil, newConfig(), mocks.NewOtel())

	for range 3 {
		_, err := svc.Create(ctx, dto.CreateBookingRequest{Date: "2024-12-15", GroundID: "G2"})
		require.NoError(t, err)
	}

	res, err := svc.Availability(ctx, dto.AvailabilityRequest{Year: "2024", Month: "11", GroundID: "G1"})
	require.NoError(t, err)
	assert.Equal(t, "available", classify(res, "2024-12-15"))

	res, err = svc.Availability(ctx, dto.AvailabilityRequest{Year: "2024", Month: "11", GroundID: "G2"})
	require.NoError(t, err)
	assert.Equal(t, "full", classify(res, "2024-12-15"))
}

func TestBookingService_EveryDayInExactlyOneList(t *testing.T) {
	ctx := context.Background()
	svc := service.New(repository.NewMemory(mocks.NewOtel()), nil, newConfig(), mocks.NewOtel())

	fullDates := []string{"2024-12-05", "2024-12-10", "2024-12-20"}

	var (
		wg       sync.WaitGroup
		admitted atomic.Int32
		rejected atomic.Int32
	)

	for i := range 100 {
		wg.Add(1)

		go func(date string) {
			defer wg.Done()

			_, err := svc.Create(ctx, dto.CreateBookingRequest{Date: date})

			switch {
			case err == nil:
				admitted.Add(1)
			case errors.Is(err, model.ErrCapacityExceeded):
				rejected.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(fullDates[i%len(fullDates)])
	}

	wg.Wait()

	assert.Equal(t, int32(9), admitted.Load())
	assert.Equal(t, int32(91), rejected.Load())

	_, err := svc.Create(ctx, dto.CreateBookingRequest{Date: "2024-12-25"})
	require.NoError(t, err)

	res, err := svc.Availability(ctx, dto.AvailabilityRequest{Year: "2024", Month: "11"})
	require.NoError(t, err)

	seen := map[string]int{}
	for _, dates := range [][]string{res.AvailableDates, res.PartialDates, res.FullDates} {
		for _, date := range dates {
			seen[date]++
		}
	}

	assert.Len(t, seen, 31)

	for date, count := range seen {
		assert.Equal(t, 1, count, date)
	}

	assert.ElementsMatch(t, fullDates, res.FullDates)
	assert.Equal(t, []string{"2024-12-25"}, res.PartialDates)
	assert.Len(t, res.AvailableDates, 27)
}

func TestBookingService_CreateTracesFailures(t *testing.T) {
	ctx := context.Background()
	recorder := mocks.NewRecorder()
	cfg := newConfig()
	cfg.App.Booking.TotalSlots = 1
	svc := service.New(repository.NewMemory(mocks.NewOtel()), nil, cfg, recorder)

	_, err := svc.Create(ctx, dto.CreateBookingRequest{})
	require.ErrorIs(t, err, model.ErrDateRequired)

	_, err = svc.Create(ctx, dto.CreateBookingRequest{Date: "2025-03-10"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, dto.CreateBookingRequest{Date: "2025-03-10"})
	require.ErrorIs(t, err, model.ErrCapacityExceeded)

	traced := recorder.Errors()
	require.Len(t, traced, 2)
	assert.ErrorIs(t, traced[0], model.ErrDateRequired)
	assert.ErrorIs(t, traced[1], model.ErrCapacityExceeded)
}

func TestBookingService_AvailabilityUsesEntryCapacity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := bookingMocks.NewMockLedger(ctrl)
	svc := service.New(mockLedger, nil, newConfig(), mocks.NewOtel())

	bigDay := model.NewLedgerEntry("2025-02-10", 5)
	for _, id := range []string{"a", "b", "c"} {
		bigDay = bigDay.WithBooking(model.BookingRecord{ID: id})
	}

	mockLedger.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, date string) (model.LedgerEntry, bool, error) {
			if date == "2025-02-10" {
				return bigDay, true, nil
			}

			return model.LedgerEntry{}, false, nil
		}).
		Times(28)

	res, err := svc.Availability(context.Background(), dto.AvailabilityRequest{Year: "2025", Month: "1"})

	require.NoError(t, err)
	assert.Equal(t, []string{"2025-02-10"}, res.PartialDates)
	assert.Empty(t, res.FullDates)
	assert.Len(t, res.AvailableDates, 27)
}

func TestBookingService_AvailabilityErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := bookingMocks.NewMockLedger(ctrl)
	svc := service.New(mockLedger, nil, newConfig(), mocks.NewOtel())

	tests := []struct {
		name      string
		req       dto.AvailabilityRequest
		setupMock func()
		wantErr   error
	}{
		{name: "missing year", req: dto.AvailabilityRequest{Month: "1"}, setupMock: func() {}, wantErr: model.ErrPeriodRequired},
		{name: "non numeric month", req: dto.AvailabilityRequest{Year: "2025", Month: "feb"}, setupMock: func() {}, wantErr: model.ErrPeriodRequired},
		{name: "month overflow", req: dto.AvailabilityRequest{Year: "2025", Month: "12"}, setupMock: func() {}, wantErr: model.ErrInvalidPeriod},
		{name: "negative month", req: dto.AvailabilityRequest{Year: "2025", Month: "-1"}, setupMock: func() {}, wantErr: model.ErrInvalidPeriod},
		{name: "year zero", req: dto.AvailabilityRequest{Year: "0", Month: "1"}, setupMock: func() {}, wantErr: model.ErrInvalidPeriod},
		{
			name: "ledger failure",
			req:  dto.AvailabilityRequest{Year: "2025", Month: "1"},
			setupMock: func() {
				mockLedger.EXPECT().
					Get(gomock.Any(), "2025-02-01").
					Return(model.LedgerEntry{}, false, errors.New("redis down"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.Availability(context.Background(), tt.req)

			require.Error(t, err)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 400, failure.GetCode(err))
			} else {
				assert.Equal(t, 500, failure.GetCode(err))
			}
		})
	}
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := bookingMocks.NewMockLedger(ctrl)
	svc := service.New(mockLedger, nil, newConfig(), mocks.NewOtel())

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   error
		wantCode  int
	}{
		{
			name: "successful booking",
			req:  dto.CreateBookingRequest{Date: "2025-03-10", GroundID: "2", CustomerName: "Rohit"},
			setupMock: func() {
				mockLedger.EXPECT().
					Admit(gomock.Any(), "2025-03-10", 3, gomock.Any()).
					DoAndReturn(func(_ context.Context, date string, total int, rec model.BookingRecord) (model.LedgerEntry, error) {
						return model.NewLedgerEntry(date, total).WithBooking(rec), nil
					})
			},
		},
		{
			name:      "missing date never touches the ledger",
			req:       dto.CreateBookingRequest{GroundID: "2"},
			setupMock: func() {},
			wantErr:   model.ErrDateRequired,
			wantCode:  400,
		},
		{
			name:      "malformed date",
			req:       dto.CreateBookingRequest{Date: "10/03/2025"},
			setupMock: func() {},
			wantErr:   failure.InvalidDateParam,
			wantCode:  400,
		},
		{
			name: "day is full",
			req:  dto.CreateBookingRequest{Date: "2025-03-10"},
			setupMock: func() {
				mockLedger.EXPECT().
					Admit(gomock.Any(), "2025-03-10", 3, gomock.Any()).
					Return(model.LedgerEntry{}, model.ErrCapacityExceeded)
			},
			wantErr:  model.ErrCapacityExceeded,
			wantCode: 409,
		},
		{
			name: "ledger failure",
			req:  dto.CreateBookingRequest{Date: "2025-03-10"},
			setupMock: func() {
				mockLedger.EXPECT().
					Admit(gomock.Any(), "2025-03-10", 3, gomock.Any()).
					Return(model.LedgerEntry{}, errors.New("connection reset"))
			},
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantCode == 0 {
				require.NoError(t, err)
				assert.Equal(t, dto.MessageBookingCreated, res.Message)
				assert.NotEmpty(t, res.Booking.ID)
				assert.Equal(t, tt.req.Date, res.Booking.Date)
				assert.Equal(t, tt.req.GroundID, res.Booking.GroundID)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestBookingService_CreatePublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPublisher := kafkaMocks.NewMockClient(ctrl)
	svc := service.New(repository.NewMemory(mocks.NewOtel()), mockPublisher, newConfig(), mocks.NewOtel())

	published := make(chan kafkaPkg.Message, 1)

	mockPublisher.EXPECT().
		SendMessages(gomock.Any(), "booking.created", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafkaPkg.Message) error {
			published <- messages[0]

			return errors.New("broker unavailable")
		})

	res, err := svc.Create(context.Background(), dto.CreateBookingRequest{Date: "2025-03-10", GroundID: "4"})
	require.NoError(t, err)

	select {
	case msg := <-published:
		assert.Equal(t, "2025-03-10", msg.Key)

		event, ok := msg.Value.(dto.BookingCreatedEvent)
		require.True(t, ok)
		assert.Equal(t, res.Booking.ID, event.Booking.ID)
		assert.Equal(t, 1, event.BookedSlots)
		assert.Equal(t, 3, event.TotalSlots)
	case <-time.After(time.Second):
		t.Fatal("booking created event was not published")
	}
}

func TestBookingService_GetLedger(t *testing.T) {
	ctx := context.Background()
	svc := service.New(repository.NewMemory(mocks.NewOtel()), nil, newConfig(), mocks.NewOtel())

	empty, err := svc.GetLedger(ctx, "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, 3, empty.TotalSlots)
	assert.Equal(t, 0, empty.BookedSlots)
	assert.Empty(t, empty.Bookings)

	created, err := svc.Create(ctx, dto.CreateBookingRequest{Date: "2025-03-10", CustomerPhone: "98765"})
	require.NoError(t, err)

	entry, err := svc.GetLedger(ctx, "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, 1, entry.BookedSlots)
	require.Len(t, entry.Bookings, 1)
	assert.Equal(t, created.Booking.ID, entry.Bookings[0].ID)

	_, err = svc.GetLedger(ctx, "2025-13-01")
	assert.ErrorIs(t, err, failure.InvalidDateParam)
}
