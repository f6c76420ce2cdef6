package ratelimit

import "strings"

// MatchEndpoint resolves a request path and method to its endpoint tier.
// Exact path matches win over prefix matches; tiers whose path ends in "/"
// match any request under that prefix, so "/api/render/" covers every
// render variant. A nil result means no tier applies and the caller
// falls back to the global default limit.
//
// Health checks bypass the configured tiers entirely. Load balancer
// probes must never be throttled, so GET /health always resolves to a
// zero-limit tier, which the limiter treats as unlimited.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		exempt := EndpointConfig{Path: path, Method: method}
		return &exempt
	}

	var prefixMatch *EndpointConfig
	for i := range configs {
		config := &configs[i]
		if config.Method != method {
			continue
		}
		if config.Path == path {
			return config
		}
		if prefixMatch == nil && strings.HasSuffix(config.Path, "/") && strings.HasPrefix(path, config.Path) {
			prefixMatch = config
		}
	}
	return prefixMatch
}
