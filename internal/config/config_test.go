package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mywebhosting", cfg.AdminUsername)
	assert.Equal(t, ":3000", cfg.ListenAddr)
	assert.Equal(t, "db.json", cfg.DataFile)
	assert.Equal(t, 20*time.Second, cfg.SyncInterval)
	assert.Equal(t, 5*time.Second, cfg.SyncTimeout)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Empty(t, cfg.PostgresDSN)
}

func TestOverrides(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "ops")
	t.Setenv("SYNC_INTERVAL", "90s")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "ops", cfg.AdminUsername)
	assert.Equal(t, 90*time.Second, cfg.SyncInterval)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
}

func TestBadDuration(t *testing.T) {
	t.Setenv("SYNC_INTERVAL", "soon")
	_, err := Load()
	require.Error(t, err)
}
