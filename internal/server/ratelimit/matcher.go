package ratelimit

import "strings"

// unlimitedPaths are never rate limited
var unlimitedPaths = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// MatchEndpoint matches a request path and method to an endpoint configuration.
// Exact paths win over prefixes; the bare "/" only matches the root.
// Returns nil when no configuration applies.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	if unlimitedPaths[path] {
		return &EndpointConfig{Path: path, Method: method}
	}

	for i := range configs {
		if configs[i].Path == path && configs[i].Method == method {
			return &configs[i]
		}
	}

	for i := range configs {
		c := &configs[i]
		if c.Method == method && c.Path != "/" && strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) {
			return c
		}
	}

	return nil
}
