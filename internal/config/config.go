// Package config loads runtime configuration from the environment.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "FITTRACK"

// Config holds everything the server needs at startup. All values come from
// FITTRACK_* environment variables with sensible development defaults.
type Config struct {
	Addr        string        `mapstructure:"addr"`
	WebDir      string        `mapstructure:"web_dir"`
	Environment string        `mapstructure:"environment"`
	APIBaseURL  string        `mapstructure:"api_base_url"`
	APIStub     string        `mapstructure:"api_stub"`
	DatabaseURL string        `mapstructure:"database_url"`
	SessionTTL  time.Duration `mapstructure:"session_ttl"`

	OIDCIssuerURL    string `mapstructure:"oidc_issuer_url"`
	OIDCClientID     string `mapstructure:"oidc_client_id"`
	OIDCClientSecret string `mapstructure:"oidc_client_secret"`
	OIDCRedirectURL  string `mapstructure:"oidc_redirect_url"`
}

// Load reads the environment into a Config.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("addr", ":8080")
	v.SetDefault("web_dir", "web")
	v.SetDefault("environment", "development")
	v.SetDefault("api_base_url", "http://localhost:9000")
	v.SetDefault("api_stub", "")
	v.SetDefault("database_url", "")
	v.SetDefault("session_ttl", 24*time.Hour)
	v.SetDefault("oidc_issuer_url", "")
	v.SetDefault("oidc_client_id", "")
	v.SetDefault("oidc_client_secret", "")
	v.SetDefault("oidc_redirect_url", "")

	// AutomaticEnv alone does not surface env-only keys through Unmarshal;
	// binding each known key does.
	for _, key := range []string{
		"addr", "web_dir", "environment", "api_base_url", "api_stub",
		"database_url", "session_ttl",
		"oidc_issuer_url", "oidc_client_id", "oidc_client_secret", "oidc_redirect_url",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// UseStubAPI decides which resource API mode to run. An explicit
// FITTRACK_API_STUB value of "true" or "false" wins; otherwise stub mode is
// on everywhere except production.
func (c *Config) UseStubAPI() bool {
	switch strings.ToLower(strings.TrimSpace(c.APIStub)) {
	case "true":
		return true
	case "false":
		return false
	}
	return !c.IsProduction()
}

// IsProduction reports whether the environment is production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(c.Environment), "production")
}

// SSOConfigured reports whether all OIDC settings are present. Without them
// only the stub dev sign-in is available.
func (c *Config) SSOConfigured() bool {
	return c.OIDCIssuerURL != "" && c.OIDCClientID != "" &&
		c.OIDCClientSecret != "" && c.OIDCRedirectURL != ""
}
