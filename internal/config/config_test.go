package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ORDERBOARD_DB", "")
	t.Setenv("ORDERBOARD_POLL_INTERVAL", "")
	t.Setenv("ORDERBOARD_LOG_USECASES", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.PollInterval)
	assert.False(t, cfg.LogUseCases)
	assert.Contains(t, cfg.DBPath, ".orderboard")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ORDERBOARD_DB", "/tmp/orders-test.db")
	t.Setenv("ORDERBOARD_POLL_INTERVAL", "10s")
	t.Setenv("ORDERBOARD_LOG_USECASES", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/orders-test.db", cfg.DBPath)
	assert.Equal(t, 10*time.Second, cfg.PollInterval)
	assert.True(t, cfg.LogUseCases)
}

func TestLoad_BadIntervalKeepsDefault(t *testing.T) {
	t.Setenv("ORDERBOARD_DB", "/tmp/orders-test.db")
	t.Setenv("ORDERBOARD_POLL_INTERVAL", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.PollInterval)
}
