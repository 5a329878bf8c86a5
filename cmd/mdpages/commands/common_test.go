package commands

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLogLevelDefaults(t *testing.T) {
	t.Setenv("MDPAGES_LOG_LEVEL", "")
	assert.Equal(t, slog.LevelInfo, parseLogLevel(false))
	assert.Equal(t, slog.LevelDebug, parseLogLevel(true))
}

func TestParseLogLevelEnvOverridesFlag(t *testing.T) {
	t.Setenv("MDPAGES_LOG_LEVEL", "error")
	assert.Equal(t, slog.LevelError, parseLogLevel(true))

	t.Setenv("MDPAGES_LOG_LEVEL", "warn")
	assert.Equal(t, slog.LevelWarn, parseLogLevel(false))

	t.Setenv("MDPAGES_LOG_LEVEL", "debug")
	assert.Equal(t, slog.LevelDebug, parseLogLevel(false))
}

func TestParseLogLevelIgnoresUnknownValue(t *testing.T) {
	t.Setenv("MDPAGES_LOG_LEVEL", "loud")
	assert.Equal(t, slog.LevelInfo, parseLogLevel(false))
}
