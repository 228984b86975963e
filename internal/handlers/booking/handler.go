package booking

import (
	"net/http"
	"pitch/infras/otel"
	"pitch/internal/domains/booking/model/dto"
	"pitch/internal/domains/booking/service"
	"pitch/shared/constant"
	"pitch/shared/validator"
	"pitch/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/availability", handler.GetAvailability)
	router.Get("/ledger/{date}", handler.GetLedger)

	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/availability", handler.GetAvailability)
	})
}

// GetAvailability classifies every day of a month.
// @Summary Get monthly availability
// @Description Classify each day of a month as available, partial or full. The month is zero based.
// @Tags Booking
// @Produce json
// @Param year query int true "Year, e.g. 2024"
// @Param month query int true "Zero based month, 0 is January"
// @Param groundId query string false "Only count bookings of this ground"
// @Success 200 {object} dto.AvailabilityResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/availability [get]
// @Router /api/bookings/availability [get]
func (handler *Handler) GetAvailability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	query := request.URL.Query()

	res, err := handler.service.Availability(ctx, dto.AvailabilityRequest{
		Year:     query.Get(constant.RequestParamYear),
		Month:    query.Get(constant.RequestParamMonth),
		GroundID: query.Get(constant.RequestParamGround),
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get availability")

		response.WithError(writer, err)

		return
	}

	response.WithPayload(writer, http.StatusOK, res)
}

// CreateBooking admits a booking for a day.
// @Summary Create a booking
// @Description Reserve one of the day's slots. Fails with 409 when the day is full.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} dto.CreateBookingResponse
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("date", req.Date).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created " + res.Booking.ID)

	response.WithPayload(writer, http.StatusCreated, res)
}

// GetLedger returns the stored entry of a day.
// @Summary Inspect a day's ledger entry
// @Description Return capacity and bookings of a day. Days never booked return an empty entry.
// @Tags Booking
// @Produce json
// @Param date path string true "Date formatted as YYYY-MM-DD"
// @Success 200 {object} response.Data[dto.LedgerEntryResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/ledger/{date} [get]
func (handler *Handler) GetLedger(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLedger")
	defer scope.End()

	date := chi.URLParam(request, constant.RequestParamDate)

	res, err := handler.service.GetLedger(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("date", date).Msg("failed to get ledger entry")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
