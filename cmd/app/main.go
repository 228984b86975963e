package main

import (
	"pitch/config"
	"pitch/di"
	"pitch/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Pitch API
// @version 1.0
// @description Cricket ground booking backend.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg.Server.Env)

	logger.SetLogLevel(cfg)

	http, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	http.Serve()
}
