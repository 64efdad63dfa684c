package ratelimit

import (
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path; a trailing "/" makes it a prefix
	Method string        // HTTP method
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// DefaultConfig returns the limits used when nothing is configured.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    600,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		IdleTimeout:     time.Hour,
		Whitelist:       map[string]bool{},
		Blacklist:       map[string]bool{},
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the per-route limits. Every page and API
// request re-reads the spreadsheets, so those are the strictest.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		{Path: "/", Method: "GET", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/api/dashboard", Method: "GET", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/api/entries/", Method: "GET", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/images/", Method: "GET", Limit: 300, Window: time.Minute, Burst: 50},
	}
}

// IPSet turns a list of IP addresses into a set, skipping blanks.
func IPSet(ips []string) map[string]bool {
	result := make(map[string]bool, len(ips))
	for _, ip := range ips {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
