package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("IDENTITY_BASE_URL", "https://id.example.com")
	t.Setenv("IDENTITY_SERVICE_KEY", "service-key")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "storefront", cfg.MongoDatabase)
	assert.Equal(t, "auth_codes", cfg.AuthCodeCollection)
	assert.Equal(t, 10*time.Minute, cfg.AuthCodeTTL)
	assert.Equal(t, 60*time.Second, cfg.AuthResendCooldown)
	assert.Equal(t, 5, cfg.AuthRateLimit)
	assert.Equal(t, 15*time.Minute, cfg.AuthRateWindow)
	assert.Equal(t, 60, cfg.APIRateLimit)
	assert.Equal(t, time.Minute, cfg.APIRateWindow)
	assert.Equal(t, 5*time.Minute, cfg.SiteConfigCacheTTL)
	assert.False(t, cfg.TracingEnabled)
}

func TestLoadConfigOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("AUTH_CODE_TTL", "5m")
	t.Setenv("ADMIN_EMAILS", "admin@sweetmoments.co.uk, second@sweetmoments.co.uk")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 5*time.Minute, cfg.AuthCodeTTL)
	assert.Equal(t, []string{"admin@sweetmoments.co.uk", "second@sweetmoments.co.uk"}, cfg.AdminEmails)
}

func TestLoadConfigRequiresIdentityProvider(t *testing.T) {
	t.Setenv("IDENTITY_BASE_URL", "")
	t.Setenv("IDENTITY_SERVICE_KEY", "service-key")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("IDENTITY_BASE_URL", "https://id.example.com")
	t.Setenv("IDENTITY_SERVICE_KEY", "")
	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	setRequiredEnv(t)

	t.Setenv("PORT", "not-a-port")
	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigTrimsIdentityBaseURL(t *testing.T) {
	t.Setenv("IDENTITY_BASE_URL", "https://id.example.com/")
	t.Setenv("IDENTITY_SERVICE_KEY", "service-key")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://id.example.com", cfg.IdentityBaseURL)
}

func TestIsAdminEmail(t *testing.T) {
	cfg := &Config{AdminEmails: []string{"admin@sweetmoments.co.uk"}}

	assert.True(t, cfg.IsAdminEmail("admin@sweetmoments.co.uk"))
	assert.True(t, cfg.IsAdminEmail("Admin@SweetMoments.co.uk"))
	assert.False(t, cfg.IsAdminEmail("alice@example.com"))
	assert.False(t, cfg.IsAdminEmail(""))
}
