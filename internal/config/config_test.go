package config

import (
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"BVTRACKER_DB", "BIND_ADDR", "PORT", "LOG_LEVEL", "TARGET_AVERAGE", "SEED"} {
		// Setenv restores the original value when the test ends.
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "bvtracker.db", cfg.DBPath)
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
	assert.Equal(t, log.InfoLevel, cfg.Level())
	assert.Equal(t, 457, cfg.TargetAverage)
	assert.Equal(t, int64(0), cfg.Seed)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("BVTRACKER_DB", "/tmp/tracker.db")
	t.Setenv("PORT", "9090")
	t.Setenv("BIND_ADDR", "0.0.0.0")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TARGET_AVERAGE", "500")
	t.Setenv("SEED", "42")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/tracker.db", cfg.DBPath)
	assert.Equal(t, "0.0.0.0:9090", cfg.Addr())
	assert.Equal(t, log.DebugLevel, cfg.Level())
	assert.Equal(t, 500, cfg.TargetAverage)
	assert.Equal(t, int64(42), cfg.Seed)

	// A fixed seed gives a reproducible source.
	assert.Equal(t, cfg.Rand().Int63(), cfg.Rand().Int63())
}

func TestLoad_RejectsBadNumbers(t *testing.T) {
	t.Setenv("TARGET_AVERAGE", "lots")
	_, err := Load()
	assert.Error(t, err)
}

func TestLevel_FallsBackToInfo(t *testing.T) {
	assert.Equal(t, log.InfoLevel, Config{LogLevel: "shouty"}.Level())
}
