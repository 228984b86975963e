package cache_test

import (
	"context"
	"pitch/infras/otel/mocks"
	"pitch/shared/cache"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T) (cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisCache(client, mocks.NewOtel()), server
}

func TestRedisCache_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	c, server := newCache(t)

	require.NoError(t, c.Save(ctx, "limiter:1.2.3.4", 7, 60))

	var count int
	require.NoError(t, c.Get(ctx, "limiter:1.2.3.4", &count))
	assert.Equal(t, 7, count)
	assert.Equal(t, 60*time.Second, server.TTL("limiter:1.2.3.4"))

	require.NoError(t, c.Save(ctx, "greeting", "hello", 60))

	var greeting string
	require.NoError(t, c.Get(ctx, "greeting", &greeting))
	assert.Equal(t, "hello", greeting)

	require.NoError(t, c.Delete(ctx, "greeting"))
	assert.ErrorIs(t, c.Get(ctx, "greeting", &greeting), cache.Nil)
}

func TestRedisCache_Miss(t *testing.T) {
	c, _ := newCache(t)

	var count int
	assert.ErrorIs(t, c.Get(context.Background(), "absent", &count), cache.Nil)
}

func TestNoopCache(t *testing.T) {
	c := cache.NewRedisCache(nil, mocks.NewOtel())

	assert.NoError(t, c.Save(context.Background(), "k", 1, 10))

	var count int
	assert.ErrorIs(t, c.Get(context.Background(), "k", &count), cache.Nil)
	assert.NoError(t, c.Delete(context.Background(), "k"))
}

func TestBuildKey(t *testing.T) {
	assert.Equal(t, "limiter:1.2.3.4:curl", cache.BuildKey("limiter", "1.2.3.4", "curl"))
	assert.Equal(t, "ledger:entry", cache.BuildKey("ledger", "", "entry"))
	assert.Equal(t, "ledger", cache.BuildKey("ledger"))
}
