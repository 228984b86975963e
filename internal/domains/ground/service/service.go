package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Ground=MockGroundService

import (
	"context"
	"fmt"
	"pitch/infras/otel"
	"pitch/internal/domains/ground/model"
	"pitch/internal/domains/ground/model/dto"
	"pitch/internal/domains/ground/repository"
	"pitch/shared/constant"
	"pitch/shared/failure"

	"github.com/rs/zerolog/log"
)

type Ground interface {
	GetAll(ctx context.Context, filter dto.GroundFilter) (dto.GetGroundsResponse, error)
	Get(ctx context.Context, id string) (dto.GroundResponse, error)
	GetPricingTiers(ctx context.Context) ([]dto.PricingTierResponse, error)
}

type serviceImpl struct {
	repo repository.Ground
	otel otel.Otel
}

func New(repo repository.Ground, otel otel.Otel) Ground {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, filter dto.GroundFilter) (res dto.GetGroundsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ground.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	grounds, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get grounds")

		return res, fmt.Errorf("failed to get grounds: %w", err)
	}

	matched := make([]model.Ground, 0, len(grounds))
	for _, ground := range grounds {
		if filter.Match(ground) {
			matched = append(matched, ground)
		}
	}

	res.FromModels(matched)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.GroundResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ground.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	ground, found, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get ground")

		return res, fmt.Errorf("failed to get ground: %w", err)
	}

	if !found {
		return res, failure.NotFound(model.EntityName + " not found") //nolint:wrapcheck
	}

	res.FromModel(ground)

	return res, nil
}

func (s *serviceImpl) GetPricingTiers(ctx context.Context) (res []dto.PricingTierResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ground.GetPricingTiers")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tiers, err := s.repo.GetPricingTiers(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get pricing tiers")

		return nil, fmt.Errorf("failed to get pricing tiers: %w", err)
	}

	return dto.FromPricingTiers(tiers), nil
}
