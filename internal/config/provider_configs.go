package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"catalog-api/internal/infrastructure/logger"
)

const DefaultProviderConfigFile = "config/providers.yml"

// ProviderBootstrapEntry describes one upstream provider's source endpoints.
// Zero values fall back to the built-in defaults for the named provider.
type ProviderBootstrapEntry struct {
	Name           string
	BaseURL        string
	DocsPageURL    string
	PricingPageURL string
	Enabled        bool
}

// ProviderBootstrapConfig maintains the configured provider entries.
type ProviderBootstrapConfig struct {
	entries []ProviderBootstrapEntry
}

// Providers returns a copy of the configured provider entries.
func (c *ProviderBootstrapConfig) Providers() []ProviderBootstrapEntry {
	if c == nil || len(c.entries) == 0 {
		return nil
	}
	result := make([]ProviderBootstrapEntry, len(c.entries))
	copy(result, c.entries)
	return result
}

type providerConfigDocument struct {
	Providers []providerConfigEntry `yaml:"providers"`
}

type providerConfigEntry struct {
	Name           string `yaml:"name"`
	BaseURL        string `yaml:"base_url"`
	DocsPageURL    string `yaml:"docs_page_url"`
	PricingPageURL string `yaml:"pricing_page_url"`
	Enabled        *bool  `yaml:"enabled"`
}

// LoadProviderBootstrapConfig parses the yaml file at the provided path.
func LoadProviderBootstrapConfig(path string) (*ProviderBootstrapConfig, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("provider config path is empty")
	}

	log := logger.GetLogger()
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("read provider config %q: %w", cleanPath, err)
	}
	log.Info().Str("path", cleanPath).Msg("loading provider config file")

	var doc providerConfigDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse provider config %q: %w", cleanPath, err)
	}

	if len(doc.Providers) == 0 {
		return nil, fmt.Errorf("provider config %q has no providers defined", cleanPath)
	}

	result := &ProviderBootstrapConfig{}
	for idx, entry := range doc.Providers {
		name := strings.ToLower(strings.TrimSpace(entry.Name))
		if name == "" {
			return nil, fmt.Errorf("providers[%d]: name is required", idx)
		}
		enabled := true
		if entry.Enabled != nil {
			enabled = *entry.Enabled
		}
		if !enabled {
			log.Info().Str("provider", name).Msg("skipping provider (enabled=false)")
			continue
		}
		result.entries = append(result.entries, ProviderBootstrapEntry{
			Name:           name,
			BaseURL:        strings.TrimRight(strings.TrimSpace(entry.BaseURL), "/"),
			DocsPageURL:    strings.TrimSpace(entry.DocsPageURL),
			PricingPageURL: strings.TrimSpace(entry.PricingPageURL),
			Enabled:        true,
		})
	}

	if len(result.entries) == 0 {
		return nil, fmt.Errorf("provider config %q enables no providers", cleanPath)
	}

	return result, nil
}
