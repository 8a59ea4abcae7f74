package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "web", cfg.WebDir)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.True(t, cfg.UseStubAPI(), "development defaults to stub mode")
	assert.False(t, cfg.SSOConfigured())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("FITTRACK_ADDR", ":9999")
	t.Setenv("FITTRACK_API_BASE_URL", "https://api.example.com")
	t.Setenv("FITTRACK_SESSION_TTL", "2h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "https://api.example.com", cfg.APIBaseURL)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
}

func TestUseStubAPI(t *testing.T) {
	tests := []struct {
		name        string
		apiStub     string
		environment string
		want        bool
	}{
		{"explicit true wins in production", "true", "production", true},
		{"explicit false wins in development", "false", "development", false},
		{"unset follows development", "", "development", true},
		{"unset follows production", "", "production", false},
		{"garbage falls back to environment", "maybe", "production", false},
		{"case insensitive", "TRUE", "production", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{APIStub: tt.apiStub, Environment: tt.environment}
			assert.Equal(t, tt.want, cfg.UseStubAPI())
		})
	}
}

func TestSSOConfigured(t *testing.T) {
	cfg := &Config{
		OIDCIssuerURL:    "https://issuer.example.com",
		OIDCClientID:     "client",
		OIDCClientSecret: "secret",
		OIDCRedirectURL:  "https://app.example.com/auth/sso/callback",
	}
	assert.True(t, cfg.SSOConfigured())

	cfg.OIDCClientSecret = ""
	assert.False(t, cfg.SSOConfigured())
}
