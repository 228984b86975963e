//go:build wireinject
// +build wireinject

package di

import (
	"pitch/config"
	"pitch/infras/jwt"
	"pitch/infras/kafka"
	"pitch/infras/otel"
	"pitch/infras/postgres"
	"pitch/infras/redis"
	"pitch/shared/cache"
	"pitch/transport/http"
	"pitch/transport/http/middleware"
	"pitch/transport/http/router"

	"github.com/google/wire"

	authService "pitch/internal/domains/auth/service"
	authHandler "pitch/internal/handlers/auth"

	bookingRepository "pitch/internal/domains/booking/repository"
	bookingService "pitch/internal/domains/booking/service"
	bookingHandler "pitch/internal/handlers/booking"

	groundRepository "pitch/internal/domains/ground/repository"
	groundService "pitch/internal/domains/ground/service"
	groundHandler "pitch/internal/handlers/ground"

	newsletterService "pitch/internal/domains/newsletter/service"
	newsletterHandler "pitch/internal/handlers/newsletter"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
	jwt.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var groundDomain = wire.NewSet(
	groundRepository.New,
	groundService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var newsletterDomain = wire.NewSet(
	newsletterService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	groundDomain,
	authDomain,
	newsletterDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	groundHandler.New,
	authHandler.New,
	newsletterHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}
