package newsletter

import (
	"net/http"
	"pitch/infras/otel"
	"pitch/internal/domains/newsletter/model/dto"
	"pitch/internal/domains/newsletter/service"
	"pitch/shared/constant"
	"pitch/shared/validator"
	"pitch/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Newsletter
	otel    otel.Otel
}

func New(service service.Newsletter, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/newsletter", handler.Subscribe)
}

// Subscribe handles newsletter signups
// @Summary Subscribe to the newsletter
// @Description Queues a confirmation email for the given address.
// @Tags Newsletter
// @Accept json
// @Produce json
// @Param request body dto.SubscribeRequest true "Subscribe Request"
// @Success 200 {object} dto.SubscribeResponse
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /api/newsletter [post]
func (handler *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Subscribe")
	defer scope.End()

	req := dto.SubscribeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Subscribe(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithPayload(w, http.StatusOK, res)
}
