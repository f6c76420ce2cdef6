// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents process configuration. Values can come from a JSON file,
// environment variables, or CLI flags; flags win, then the file, then env.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Oracle credentials. Endpoint/APIVersion/Deployment select the
	// managed-endpoint mode; with only APIKey set the direct mode is used.
	APIKey     string `json:"api_key,omitempty"`
	Model      string `json:"model,omitempty"`
	Endpoint   string `json:"endpoint,omitempty"`
	APIVersion string `json:"api_version,omitempty"`
	Deployment string `json:"deployment,omitempty"`

	// Extraction
	ParserStrategy string `json:"parser_strategy,omitempty"` // "heuristic" or "llm"

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from environment variables
func FromEnv() Config {
	cfg := Config{
		APIKey:         os.Getenv("GEMINI_API_KEY"),
		Model:          os.Getenv("GEMINI_MODEL"),
		Endpoint:       os.Getenv("GEMINI_ENDPOINT"),
		APIVersion:     os.Getenv("GEMINI_API_VERSION"),
		Deployment:     os.Getenv("GEMINI_DEPLOYMENT"),
		ParserStrategy: os.Getenv("PARSER_STRATEGY"),
	}
	if port := os.Getenv("PORT"); port != "" {
		if v, err := strconv.Atoi(port); err == nil {
			cfg.Port = v
		}
	}
	return cfg
}

// Validate checks that the configuration has valid values.
// Required fields are checked later, after merging with CLI flags.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.ParserStrategy != "" && c.ParserStrategy != "heuristic" && c.ParserStrategy != "llm" {
		return fmt.Errorf("config error: 'parser_strategy' must be \"heuristic\" or \"llm\"")
	}
	if c.Deployment != "" && c.Endpoint == "" {
		return fmt.Errorf("config error: 'deployment' requires 'endpoint'")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.Endpoint == "" {
		result.Endpoint = defaults.Endpoint
	}
	if result.APIVersion == "" {
		result.APIVersion = defaults.APIVersion
	}
	if result.Deployment == "" {
		result.Deployment = defaults.Deployment
	}
	if result.ParserStrategy == "" {
		result.ParserStrategy = defaults.ParserStrategy
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
