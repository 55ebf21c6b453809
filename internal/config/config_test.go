package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, "3000", cfg.HTTPPort)
	assert.Equal(t, "2468", cfg.AdminPIN)
	assert.Equal(t, 8*time.Hour, cfg.AdminSessionTTL)
	assert.Equal(t, "memory", cfg.QueueBackend)
	assert.False(t, cfg.EmailConfigured())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ADMIN_SESSION_TTL", "30m")
	t.Setenv("RATE_LIMIT_PER_MIN", "5")
	t.Setenv("SENDGRID_API_KEY", "sg-key")
	t.Setenv("NOTIFY_EMAIL", "noreply@example.com")
	t.Setenv("ADMIN_EMAIL", "admin@example.com")

	cfg := Load()
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 30*time.Minute, cfg.AdminSessionTTL)
	assert.Equal(t, 5, cfg.RateLimitPerMin)
	assert.True(t, cfg.EmailConfigured())
}

func TestLoadBadValuesFallBack(t *testing.T) {
	t.Setenv("ADMIN_SESSION_TTL", "not-a-duration")
	t.Setenv("RATE_LIMIT_PER_MIN", "lots")

	cfg := Load()
	assert.Equal(t, 8*time.Hour, cfg.AdminSessionTTL)
	assert.Equal(t, 120, cfg.RateLimitPerMin)
}
