package main

import (
	"github.com/jonathan/cv-dashboard/internal/config"
	"github.com/jonathan/cv-dashboard/internal/dashboard"
	"github.com/jonathan/cv-dashboard/internal/metrics"
)

// loadConfig loads and validates the configuration named by --config
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newBuilder creates the dashboard builder for cfg. m may be nil.
func newBuilder(cfg *config.Config, m *metrics.Metrics) *dashboard.Builder {
	return dashboard.NewBuilder(cfg.Sources(), cfg.Profile, m)
}
