package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"pitch/config"
	"pitch/infras/kafka"
	"pitch/infras/otel"
	"pitch/internal/domains/newsletter/model"
	"pitch/internal/domains/newsletter/model/dto"
	"pitch/shared/constant"
	"pitch/shared/validator"

	"github.com/rs/zerolog/log"
)

const emailRule = "email"

type Newsletter interface {
	Subscribe(ctx context.Context, req dto.SubscribeRequest) (dto.SubscribeResponse, error)
}

type serviceImpl struct {
	publisher kafka.Client
	cfg       *config.Config
	otel      otel.Otel
}

// New wires the newsletter service. Without a publisher subscriptions are only logged.
func New(publisher kafka.Client, cfg *config.Config, otel otel.Otel) Newsletter {
	return &serviceImpl{
		publisher: publisher,
		cfg:       cfg,
		otel:      otel,
	}
}

func (s *serviceImpl) Subscribe(ctx context.Context, req dto.SubscribeRequest) (res dto.SubscribeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Subscribe")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	email := req.NormalizedEmail()
	if email == "" {
		return res, model.ErrEmailRequired
	}

	if validator.ValidateVar(email, emailRule) != nil {
		return res, model.ErrInvalidEmail
	}

	subscription := req.ToModel()

	if s.publisher == nil {
		log.Warn().Msg("No Kafka brokers configured, subscription logged but no confirmation email queued")
		log.Info().Str("email", subscription.Email).Msg("newsletter subscription")

		res.FromModel(subscription)

		return res, nil
	}

	message := kafka.Message{Key: subscription.Email, Value: subscription}

	if err = s.publisher.SendMessages(ctx, s.cfg.Kafka.Topic.NewsletterSubscribe, message); err != nil {
		log.Error().Err(err).Str("email", subscription.Email).Msg("failed to publish newsletter subscription")

		return res, model.ErrRelayFailed
	}

	log.Info().Str("email", subscription.Email).Msg("newsletter subscription queued")

	res.FromModel(subscription)

	return res, nil
}
