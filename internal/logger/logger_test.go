// SPDX-License-Identifier: MIT

package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/physq/internal/logger"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		debug       bool
	}{
		{name: "Development Environment", environment: logger.DevelopmentEnvironment, debug: true},
		{name: "Production Environment", environment: logger.ProductionEnvironment, debug: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l *zap.Logger
			require.NotPanics(t, func() {
				l = logger.Setup(tt.environment)
			})
			require.NotNil(t, l)

			ctx := context.Background()
			assert.Same(t, l, logger.Get(ctx))
			assert.Equal(t, tt.debug, logger.IsDebug(ctx))
		})
	}
}

func TestWithLogger(t *testing.T) {
	logger.Setup(logger.ProductionEnvironment)
	core, logs := observer.New(zap.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	logger.Warn(ctx, "warn message")
	logger.Error(ctx, "error message")

	require.Equal(t, 4, logs.Len())
	assert.Equal(t, "info message", logs.All()[1].Message)
	assert.True(t, logger.IsDebug(ctx))
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))
	ctx = logger.WithFields(ctx, zap.String("command", "table"))

	logger.Info(ctx, "rendered")

	entries := logs.FilterField(zap.String("command", "table")).All()
	require.Len(t, entries, 1)
	assert.Equal(t, "rendered", entries[0].Message)
}
