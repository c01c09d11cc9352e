package main

import (
	"github.com/rs/zerolog/log"

	"tourism/config"
	"tourism/di"
	"tourism/helper"
	"tourism/shared/logger"
)

// @title Tourism API
// @version 1.0
// @description Tourism booking backend: accounts, reservations, hotels, tours, travel agencies, comments and geo places.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
