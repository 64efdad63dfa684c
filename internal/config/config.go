// Package config provides configuration loading and validation for the CV dashboard.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/cv-dashboard/internal/dashboard"
	"github.com/jonathan/cv-dashboard/internal/server/ratelimit"
	"github.com/jonathan/cv-dashboard/internal/types"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override, e.g. CVD_PORT or CVD_DATA__ENTRIES
const EnvPrefix = "CVD_"

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "CVD_CONFIG"

// Config represents the dashboard configuration.
// Precedence, low to high: defaults, YAML file, CVD_ environment variables.
type Config struct {
	Port      int           `koanf:"port" validate:"gte=1,lte=65535"`
	Layout    string        `koanf:"layout" validate:"oneof=sidebar two-column single-column"`
	Verbose   bool          `koanf:"verbose"`
	Data      Data          `koanf:"data"`
	Profile   types.Profile `koanf:"profile"`
	RateLimit RateLimit     `koanf:"rate_limit"`
}

// RateLimit configures per-client request limits, e.g. CVD_RATE_LIMIT__DEFAULT_LIMIT.
// Whitelist and blacklist accept comma-separated IPs from the environment.
type RateLimit struct {
	Enabled         bool          `koanf:"enabled"`
	DefaultLimit    int           `koanf:"default_limit" validate:"gte=0"`
	DefaultWindow   time.Duration `koanf:"default_window" validate:"gte=0"`
	CleanupInterval time.Duration `koanf:"cleanup_interval" validate:"gte=0"`
	IdleTimeout     time.Duration `koanf:"idle_timeout" validate:"gte=0"`
	Whitelist       []string      `koanf:"whitelist" validate:"dive,ip"`
	Blacklist       []string      `koanf:"blacklist" validate:"dive,ip"`
}

// Data locates the spreadsheets and images
type Data struct {
	Entries       string `koanf:"entries"`        // Path to the CV workbook
	EntriesSheet  string `koanf:"entries_sheet"`  // Worksheet name, first sheet if empty
	Skills        string `koanf:"skills"`         // Path to the skills workbook
	SkillsSheet   string `koanf:"skills_sheet"`   // Worksheet name, first sheet if empty
	Social        string `koanf:"social"`         // Path to the social media workbook
	SocialSheet   string `koanf:"social_sheet"`   // Worksheet name, first sheet if empty
	SocialNetwork string `koanf:"social_network"` // Network whose profile link is shown
	ImageDir      string `koanf:"image_dir"`      // Directory with profile photo and entry images
}

// Default returns the configuration used when nothing else is set
func Default() *Config {
	return &Config{
		Port:   8080,
		Layout: "two-column",
		Data: Data{
			Entries:       "CV.xlsx",
			Skills:        "Kenntnisse.xlsx",
			Social:        "Social Media.xlsx",
			SocialNetwork: dashboard.DefaultSocialNetwork,
			ImageDir:      "images",
		},
		RateLimit: RateLimit{
			Enabled:         true,
			DefaultLimit:    600,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
			IdleTimeout:     time.Hour,
		},
	}
}

// Load builds a Config from defaults, the optional YAML file at path and the
// environment. When path is empty, CVD_CONFIG is consulted. Relative data
// paths in a config file are resolved against the file's directory.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}

	cfg := Default()
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	// CVD_DATA__IMAGE_DIR -> data.image_dir
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, EnvPrefix)
		return strings.ReplaceAll(strings.ToLower(s), "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if path != "" {
		cfg.resolvePaths(filepath.Dir(path))
	}

	return cfg, nil
}

func (c *Config) resolvePaths(baseDir string) {
	for _, p := range []*string{&c.Data.Entries, &c.Data.Skills, &c.Data.Social, &c.Data.ImageDir} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(baseDir, *p)
		}
	}
}

// Validate checks that the configuration has valid values.
// Missing data files are not an error: the dashboard degrades per source.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// Sources returns the data locations in the form the dashboard builder expects
func (c *Config) Sources() dashboard.Sources {
	return dashboard.Sources{
		EntriesPath:   c.Data.Entries,
		EntriesSheet:  c.Data.EntriesSheet,
		SkillsPath:    c.Data.Skills,
		SkillsSheet:   c.Data.SkillsSheet,
		SocialPath:    c.Data.Social,
		SocialSheet:   c.Data.SocialSheet,
		SocialNetwork: c.Data.SocialNetwork,
		ImageDir:      c.Data.ImageDir,
	}
}

// RateLimitConfig returns the limiter settings with the default per-route limits
func (c *Config) RateLimitConfig() *ratelimit.Config {
	if !c.RateLimit.Enabled {
		return &ratelimit.Config{Enabled: false}
	}
	return &ratelimit.Config{
		Enabled:         true,
		DefaultLimit:    c.RateLimit.DefaultLimit,
		DefaultWindow:   c.RateLimit.DefaultWindow,
		CleanupInterval: c.RateLimit.CleanupInterval,
		IdleTimeout:     c.RateLimit.IdleTimeout,
		Whitelist:       ratelimit.IPSet(c.RateLimit.Whitelist),
		Blacklist:       ratelimit.IPSet(c.RateLimit.Blacklist),
		EndpointConfigs: ratelimit.DefaultEndpointConfigs(),
	}
}
