package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/firstfu/app-store-crawler/internal/export"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

type Export struct {
	Format string `yaml:"format"`
	Dir    string `yaml:"dir,omitempty"`
}

type Config struct {
	Country      string `yaml:"country"`
	SearchLimit  int    `yaml:"search_limit"`
	ReviewLimit  int    `yaml:"review_limit"`
	RequestDelay string `yaml:"request_delay,omitempty"`
	Export       Export `yaml:"export"`
}

// RequestDelayDuration returns the pause between review-feed page requests,
// defaulting to one second.
func (c *Config) RequestDelayDuration() time.Duration {
	d, err := time.ParseDuration(c.RequestDelay)
	if err != nil || d < 0 {
		return time.Second
	}
	return d
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "appscan", "config.yaml")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	// Not validated here: flag overrides may still repair file values, so
	// the caller validates the effective config.
	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

// Validate checks the effective configuration, after any flag overrides have
// been layered on top of the file values.
func Validate(cfg *Config) error {
	if len(cfg.Country) != 2 {
		return fmt.Errorf("country must be a two-letter storefront code, got %q", cfg.Country)
	}
	if cfg.SearchLimit <= 0 {
		return fmt.Errorf("search_limit must be positive, got %d", cfg.SearchLimit)
	}
	if cfg.ReviewLimit <= 0 {
		return fmt.Errorf("review_limit must be positive, got %d", cfg.ReviewLimit)
	}
	if !export.ValidFormat(cfg.Export.Format) {
		return fmt.Errorf("export format %q unknown (valid: xlsx, json, docx)", cfg.Export.Format)
	}
	return nil
}
