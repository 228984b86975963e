package repository_test

import (
	"context"
	"pitch/infras/otel/mocks"
	"pitch/internal/domains/ground/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedCatalog(t *testing.T) {
	repo, err := repository.New(mocks.NewOtel())
	require.NoError(t, err)

	ctx := context.Background()

	grounds, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, grounds, 6)

	elite, found, err := repo.Get(ctx, "6")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Elite Cricket Stadium", elite.Name)
	assert.True(t, elite.Featured)
	assert.True(t, elite.Popular)
	assert.Equal(t, 5000, elite.PricePerHour)

	_, found, err = repo.Get(ctx, "99")
	require.NoError(t, err)
	assert.False(t, found)

	tiers, err := repo.GetPricingTiers(ctx)
	require.NoError(t, err)
	require.Len(t, tiers, 3)
	assert.Equal(t, "premium", tiers[1].ID)
	assert.True(t, tiers[1].Popular)
}

func TestNewFromJSON(t *testing.T) {
	_, err := repository.NewFromJSON([]byte(`{"grounds":[{"id":"1"},{"id":"1"}]}`), mocks.NewOtel())
	assert.Error(t, err)

	_, err = repository.NewFromJSON([]byte(`not json`), mocks.NewOtel())
	assert.Error(t, err)
}
