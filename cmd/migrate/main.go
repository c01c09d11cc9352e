package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"tourism/config"
	"tourism/helper"
	"tourism/shared/logger"
)

const (
	argLength = 2
)

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration action (up, down, drop or step-up) is required")
	}

	cfg := config.Get()

	logger.SetLogLevel(cfg)

	if err := helper.Runner(cfg, helper.Action(os.Args[1])); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}
}
