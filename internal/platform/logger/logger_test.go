package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slidegenie/slidegenie-api/internal/config"
)

func TestSetupLevels(t *testing.T) {
	tests := []struct {
		configured string
		enabled    slog.Level
		disabled   slog.Level
	}{
		{"debug", slog.LevelDebug, slog.LevelDebug - 4},
		{"info", slog.LevelInfo, slog.LevelDebug},
		{"warn", slog.LevelWarn, slog.LevelInfo},
		{"error", slog.LevelError, slog.LevelWarn},
		// Unknown levels fall back to info.
		{"verbose", slog.LevelInfo, slog.LevelDebug},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.configured, func(t *testing.T) {
			logger := Setup(config.ServerConfig{Port: 8080, LogLevel: tc.configured})
			require.NotNil(t, logger)

			assert.True(t, logger.Enabled(context.Background(), tc.enabled),
				"level %v should be enabled for configured level %q", tc.enabled, tc.configured)
			assert.False(t, logger.Enabled(context.Background(), tc.disabled),
				"level %v should be disabled for configured level %q", tc.disabled, tc.configured)
		})
	}
}

func TestSetupSetsDefaultLogger(t *testing.T) {
	logger := Setup(config.ServerConfig{Port: 8080, LogLevel: "warn"})
	assert.Equal(t, logger, slog.Default())
}
