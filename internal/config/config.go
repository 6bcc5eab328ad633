package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Global singleton so the cron scheduler can observe env reloads
var globalConfig *Config

// Config holds all environment backed configuration for catalog-api.
type Config struct {
	// HTTP Server
	HTTPPort    int `env:"HTTP_PORT" envDefault:"8080"`
	MetricsPort int `env:"METRICS_PORT" envDefault:"9091"`

	// Provider credentials. An absent key skips that provider's live API
	// source; its id universe then comes from the static fallback table.
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`
	GeminiAPIKey    string `env:"GEMINI_API_KEY"`

	// Refresh. An interval of 0 disables the periodic refresh; the startup
	// refresh and POST /v1/refresh still work.
	RefreshIntervalMinutes int           `env:"REFRESH_INTERVAL_MINUTES" envDefault:"60"`
	FetchConcurrency       int64         `env:"FETCH_CONCURRENCY" envDefault:"5"`
	HTTPTimeout            time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
	RefreshTimeout         time.Duration `env:"REFRESH_TIMEOUT" envDefault:"10m"`

	// Persistence. Empty path disables the on-disk snapshot cache.
	DBPath string `env:"DB_PATH" envDefault:"data/models.db"`

	// Provider bootstrap file (optional overrides for source URLs)
	ProviderConfigsEnabled bool                     `env:"PROVIDER_CONFIGS" envDefault:"false"`
	ProviderConfigFile     string                   `env:"PROVIDER_CONFIGS_FILE"`
	ProviderBootstrap      *ProviderBootstrapConfig `env:"-"`

	// Observability / Logging
	ServiceName string `env:"SERVICE_NAME" envDefault:"catalog-api"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"console"`

	// Internal
	EnvReloadedAt time.Time
}

// Load parses environment variables into Config and performs minimal validation.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.FetchConcurrency <= 0 {
		cfg.FetchConcurrency = 5
	}

	if cfg.ProviderConfigsEnabled {
		configFile := strings.TrimSpace(cfg.ProviderConfigFile)
		if configFile == "" {
			configFile = DefaultProviderConfigFile
		}
		bootstrap, err := LoadProviderBootstrapConfig(configFile)
		if err != nil {
			return nil, fmt.Errorf("load provider configs: %w", err)
		}
		cfg.ProviderBootstrap = bootstrap
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.EnvReloadedAt = time.Now()

	globalConfig = cfg

	return cfg, nil
}

// GetGlobal returns the global config instance for backwards compatibility.
func GetGlobal() *Config {
	return globalConfig
}

// APIKeyFor returns the configured credential for a provider, or "".
func (c *Config) APIKeyFor(provider string) string {
	switch provider {
	case "openai":
		return c.OpenAIAPIKey
	case "anthropic":
		return c.AnthropicAPIKey
	case "google":
		return c.GeminiAPIKey
	}
	return ""
}

var Version = "dev"

func IsDev() bool {
	return strings.HasPrefix(Version, "dev")
}
