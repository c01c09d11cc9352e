package logger_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"

	"tourism/config"
	"tourism/shared/constant"
	"tourism/shared/logger"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	original := log.Logger
	originalLevel := zerolog.GlobalLevel()

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	t.Cleanup(func() {
		log.Logger = original
		zerolog.SetGlobalLevel(originalLevel)
	})

	return &buf
}

func TestInitLogger(t *testing.T) {
	captureLogs(t)

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestErrorWithStack(t *testing.T) {
	buf := captureLogs(t)

	logger.ErrorWithStack(errors.New("reservation lookup failed"))

	assert.Contains(t, buf.String(), "reservation lookup failed")
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected zerolog.Level
	}{
		{name: "debug", level: "debug", expected: zerolog.DebugLevel},
		{name: "info", level: "info", expected: zerolog.InfoLevel},
		{name: "warn", level: "warn", expected: zerolog.WarnLevel},
		{name: "error", level: "error", expected: zerolog.ErrorLevel},
		{name: "unknown falls back to trace", level: "verbose", expected: zerolog.TraceLevel},
		{name: "empty means no level", level: "", expected: zerolog.NoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captureLogs(t)

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.level

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
		})
	}
}

func TestCtx(t *testing.T) {
	buf := captureLogs(t)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")
	logger.Ctx(ctx).Info().Msg("linked")

	assert.Contains(t, buf.String(), `"user_id":"user-1"`)

	buf.Reset()
	logger.Ctx(context.Background()).Info().Msg("anonymous")

	assert.NotContains(t, buf.String(), "user_id")
}
