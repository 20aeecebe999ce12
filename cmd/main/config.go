package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/CTAG07/Kiln/pkg/publish"
	"github.com/CTAG07/Kiln/pkg/templating"
	"github.com/natefinch/atomic"
)

const defaultConfigPath = "./kiln.json"

// SiteConfig holds the settings of a build.
type SiteConfig struct {
	OutputDir    string `json:"output_dir"`
	LogLevel     string `json:"log_level"`
	Timezone     string `json:"timezone"`
	Today        string `json:"today"`
	DatabasePath string `json:"database_path"`
}

// Config is the top-level configuration struct that aggregates all other configs.
type Config struct {
	Site      *SiteConfig                `json:"site_config"`
	Templates *templating.TemplateConfig `json:"template_config"`
	Publish   *publish.PublishConfig     `json:"publish_config"`
}

// DefaultSiteConfig creates a site configuration with default values.
func DefaultSiteConfig() *SiteConfig {
	return &SiteConfig{
		OutputDir: ".",
		LogLevel:  "info",
		Timezone:  "Local",
	}
}

// LoadConfig reads the configuration from a JSON file at the given path.
// If the file doesn't exist, it creates one with default values.
func LoadConfig(path string) (*Config, error) {
	config := &Config{
		Site:      DefaultSiteConfig(),
		Templates: templating.DefaultConfig(),
		Publish:   publish.DefaultConfig(),
	}

	file, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			var data []byte
			data, err = json.MarshalIndent(config, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("failed to marshal default config: %w", err)
			}
			if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
				// Defaults are still usable without the file.
				fmt.Printf("warning: failed to write default config file: %v\n", err)
			}
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err = json.Unmarshal(file, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	// An explicit null section decodes to nil.
	if config.Site == nil {
		config.Site = DefaultSiteConfig()
	}
	if config.Templates == nil {
		config.Templates = templating.DefaultConfig()
	}
	if config.Publish == nil {
		config.Publish = publish.DefaultConfig()
	}
	return config, nil
}

// configPath returns the config file location, overridable with KILN_CONFIG.
func configPath() string {
	if p := os.Getenv("KILN_CONFIG"); p != "" {
		return p
	}
	return defaultConfigPath
}

// ResolveToday returns the build date: the configured override if set,
// otherwise now in the configured timezone.
func (c *SiteConfig) ResolveToday(now time.Time) (time.Time, error) {
	if c.Today != "" {
		today, err := time.Parse(time.DateOnly, c.Today)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid today override %q: %w", c.Today, err)
		}
		return today, nil
	}
	if c.Timezone == "" || c.Timezone == "Local" {
		return now, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return now.In(loc), nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
