package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresBackendBaseURL(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "BACKEND_BASE_URL")
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "http://helpdesk.internal")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "helpdesk-portal", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, "helpdesk_session", cfg.Session.CookieName)
	assert.False(t, cfg.Session.UseRedis)
	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout())
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
}

func TestLoadReadsOverrides(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "http://helpdesk.internal")
	t.Setenv("BACKEND_TIMEOUT_SECONDS", "3")
	t.Setenv("SESSION_USE_REDIS", "true")
	t.Setenv("SESSION_COOKIE_NAME", "sid")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.Backend.Timeout())
	assert.True(t, cfg.Session.UseRedis)
	assert.Equal(t, "sid", cfg.Session.CookieName)
}
