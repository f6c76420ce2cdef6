// Package llm provides the text-completion oracle client used by the
// extraction and analysis pipelines.
package llm

import "fmt"

// DefaultModel is used when configuration names no model or deployment
const DefaultModel = "gemini-2.5-flash"

// Config holds oracle credentials and model selection. Two credential modes
// are supported on a single code path: direct API key, or a managed endpoint
// with an explicit API version and deployment name.
type Config struct {
	APIKey string `json:"api_key,omitempty"`
	Model  string `json:"model,omitempty"`

	// Managed-endpoint mode. When Endpoint is set the client talks to that
	// endpoint instead of the public API, Deployment overrides Model, and
	// APIVersion pins the endpoint's API revision.
	Endpoint   string `json:"endpoint,omitempty"`
	APIVersion string `json:"api_version,omitempty"`
	Deployment string `json:"deployment,omitempty"`
}

// ModelName resolves the effective model: deployment name in managed mode,
// configured model otherwise, falling back to DefaultModel.
func (c *Config) ModelName() string {
	if c.Endpoint != "" && c.Deployment != "" {
		return c.Deployment
	}
	if c.Model != "" {
		return c.Model
	}
	return DefaultModel
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("llm config: api key is required")
	}
	if c.Endpoint == "" && c.Deployment != "" {
		return fmt.Errorf("llm config: deployment requires an endpoint")
	}
	return nil
}
