package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "APP_PORT", "DB_USER", "DB_HOST", "DB_NAME", "CHAT_CONSUMER_ENABLED"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "3306", cfg.DBPort)
	assert.False(t, cfg.ChatConsumerEnabled)
	assert.False(t, cfg.DatabaseConfigured())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DB_USER", "consulting")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "consulting")
	t.Setenv("CHAT_CONSUMER_ENABLED", "true")

	cfg := Load()
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.ChatConsumerEnabled)
	assert.True(t, cfg.DatabaseConfigured())
}

func TestLoadCacheConfig(t *testing.T) {
	t.Setenv("CACHE_ENABLED", "")
	t.Setenv("CACHE_TTL", "")
	t.Setenv("CACHE_PREFIX", "")

	cfg := LoadCacheConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 30*time.Second, cfg.TTL)
	assert.Equal(t, "cache", cfg.Prefix)

	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("CACHE_TTL", "2m")
	assert.False(t, LoadCacheConfig().Enabled)
	assert.Equal(t, 2*time.Minute, LoadCacheConfig().TTL)

	// Malformed durations fall back to one second.
	t.Setenv("CACHE_TTL", "soon")
	assert.Equal(t, time.Second, LoadCacheConfig().TTL)
}
