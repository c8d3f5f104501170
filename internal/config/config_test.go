package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.App.Port)
	assert.Equal(t, "console", cfg.Email.Provider)
	assert.Equal(t, 60*time.Minute, cfg.Forms.RateLimitWindow)
	assert.Equal(t, 5, cfg.Forms.ContactLimit)
	assert.Equal(t, 3, cfg.Forms.NewsletterLimit)
	assert.Equal(t, 3, cfg.Forms.WaitlistLimit)
	assert.Equal(t, 0, cfg.Forms.ServiceLimit)
	assert.True(t, cfg.Forms.NewsletterScopeByIP)
	assert.False(t, cfg.Forms.ContactScopeByIP)
	assert.False(t, cfg.Forms.WaitlistScopeByIP)
	assert.True(t, cfg.Content.StaticFallback)
	assert.True(t, cfg.App.TrustProxyHeaders)
	assert.Same(t, cfg, Get())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DEBUG", "true")
	t.Setenv("CONTACT_RATE_LIMIT", "10")
	t.Setenv("CONTACT_RATE_LIMIT_PER_IP", "true")
	t.Setenv("RATE_LIMIT_WINDOW_MINUTES", "15")
	t.Setenv("EMAIL_PROVIDER", "SES")
	t.Setenv("ALLOWED_HOSTS", "https://brightbooks.com, https://www.brightbooks.com")
	t.Setenv("PUBLIC_BASE_URL", "https://api.brightbooks.com/")
	t.Setenv("TRUST_PROXY_HEADERS", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Forms.ContactLimit)
	assert.True(t, cfg.Forms.ContactScopeByIP)
	assert.Equal(t, 15*time.Minute, cfg.Forms.RateLimitWindow)
	assert.Equal(t, "ses", cfg.Email.Provider)
	assert.Equal(t, []string{"https://brightbooks.com", "https://www.brightbooks.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "https://api.brightbooks.com", cfg.App.BaseURL)
	assert.False(t, cfg.App.TrustProxyHeaders)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown provider", env: map[string]string{"DEBUG": "true", "EMAIL_PROVIDER": "pigeon"}},
		{name: "negative limit", env: map[string]string{"DEBUG": "true", "WAITLIST_RATE_LIMIT": "-1"}},
		{name: "zero window", env: map[string]string{"DEBUG": "true", "RATE_LIMIT_WINDOW_MINUTES": "0"}},
		{name: "short secret in production", env: map[string]string{"DEBUG": "false", "DOWNLOAD_TOKEN_SECRET": "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestDatabaseURLHelpers(t *testing.T) {
	sqliteCfg := DatabaseConfig{URL: "sqlite:///./brightbooks.db"}
	assert.False(t, sqliteCfg.IsPostgres())
	assert.Equal(t, "./brightbooks.db", sqliteCfg.GetSQLitePath())

	pgCfg := DatabaseConfig{URL: "postgresql://app:secret@db:5432/brightbooks"}
	assert.True(t, pgCfg.IsPostgres())
	assert.Equal(t, "postgresql://app:secret@db:5432/brightbooks?sslmode=disable", pgCfg.GetPostgresDSN())

	pgWithParams := DatabaseConfig{URL: "postgres://app@db/brightbooks?sslmode=require"}
	assert.Equal(t, "postgres://app@db/brightbooks?sslmode=require", pgWithParams.GetPostgresDSN())

	dsnCfg := DatabaseConfig{URL: "host=db port=5432 user=app dbname=brightbooks"}
	assert.True(t, dsnCfg.IsPostgres())
	assert.Equal(t, dsnCfg.URL, dsnCfg.GetPostgresDSN())
}
