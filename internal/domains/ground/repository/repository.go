package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"pitch/infras/otel"
	"pitch/internal/domains/ground/model"
	"pitch/shared/constant"
)

//go:embed catalog.json
var catalogJSON []byte

type Ground interface {
	GetAll(ctx context.Context) ([]model.Ground, error)
	Get(ctx context.Context, id string) (model.Ground, bool, error)
	GetPricingTiers(ctx context.Context) ([]model.PricingTier, error)
}

type repositoryImpl struct {
	catalog model.Catalog
	byID    map[string]model.Ground
	otel    otel.Otel
}

// New decodes the embedded catalog once.
func New(otel otel.Otel) (Ground, error) {
	return NewFromJSON(catalogJSON, otel)
}

func NewFromJSON(raw []byte, otel otel.Otel) (Ground, error) {
	catalog := model.Catalog{}
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("failed to decode ground catalog: %w", err)
	}

	byID := make(map[string]model.Ground, len(catalog.Grounds))
	for _, ground := range catalog.Grounds {
		if _, dup := byID[ground.ID]; dup {
			return nil, fmt.Errorf("duplicate ground id %q in catalog", ground.ID)
		}

		byID[ground.ID] = ground
	}

	return &repositoryImpl{
		catalog: catalog,
		byID:    byID,
		otel:    otel,
	}, nil
}

func (r *repositoryImpl) GetAll(ctx context.Context) ([]model.Ground, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".ground.GetAll")
	defer scope.End()

	grounds := make([]model.Ground, len(r.catalog.Grounds))
	copy(grounds, r.catalog.Grounds)

	return grounds, nil
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (model.Ground, bool, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".ground.Get")
	defer scope.End()

	ground, found := r.byID[id]

	return ground, found, nil
}

func (r *repositoryImpl) GetPricingTiers(ctx context.Context) ([]model.PricingTier, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".ground.GetPricingTiers")
	defer scope.End()

	tiers := make([]model.PricingTier, len(r.catalog.PricingTiers))
	copy(tiers, r.catalog.PricingTiers)

	return tiers, nil
}
