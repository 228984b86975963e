package ground

import (
	"net/http"
	"pitch/infras/otel"
	"pitch/internal/domains/ground/model/dto"
	"pitch/internal/domains/ground/service"
	"pitch/shared/constant"
	"pitch/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Ground
	otel    otel.Otel
}

func New(service service.Ground, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/grounds", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetGrounds)
		routerGroup.Get("/{id}", handler.GetGroundByID)
	})
	router.Get("/pricing-tiers", handler.GetPricingTiers)
}

// GetGrounds lists the ground catalog.
// @Summary List grounds
// @Description List the cricket grounds, optionally only featured or popular ones.
// @Tags Ground
// @Produce json
// @Param featured query bool false "Filter by featured flag"
// @Param popular query bool false "Filter by popular flag"
// @Success 200 {object} response.Data[dto.GetGroundsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/grounds [get]
func (handler *Handler) GetGrounds(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGrounds")
	defer scope.End()

	filter := dto.GroundFilter{}
	if err := filter.FromRequest(r); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.GetAll(ctx, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get grounds")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetGroundByID returns one ground.
// @Summary Get ground by ID
// @Tags Ground
// @Produce json
// @Param id path string true "Ground ID"
// @Success 200 {object} response.Data[dto.GroundResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/grounds/{id} [get]
func (handler *Handler) GetGroundByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGroundByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetPricingTiers lists the pricing plans.
// @Summary List pricing tiers
// @Tags Ground
// @Produce json
// @Success 200 {object} response.Data[[]dto.PricingTierResponse]
// @Failure 500 {object} response.Error
// @Router /api/pricing-tiers [get]
func (handler *Handler) GetPricingTiers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPricingTiers")
	defer scope.End()

	res, err := handler.service.GetPricingTiers(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get pricing tiers")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
