// Package config provides configuration loading and validation for the CLI
// and the HTTP server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Config is loaded from an optional JSON file; environment variables
// override file values. All fields are optional at load time — Validate
// enforces what a given command actually needs.
type Config struct {
	// APIKey is the Gemini credential.
	APIKey string `json:"api_key,omitempty"`
	// DatabaseURL selects the PostgreSQL exemplar store when set.
	DatabaseURL string `json:"database_url,omitempty"`
	// CorpusPath selects the JSON-file exemplar store when set.
	CorpusPath string `json:"corpus_path,omitempty"`

	// Model names per call kind; empty values use package defaults.
	SummaryModel   string `json:"summary_model,omitempty"`
	DraftModel     string `json:"draft_model,omitempty"`
	EmbeddingModel string `json:"embedding_model,omitempty"`

	// Addr is the HTTP listen address for serve.
	Addr string `json:"addr,omitempty"`
	// CallTimeoutSeconds bounds each external service call.
	CallTimeoutSeconds int `json:"call_timeout_seconds,omitempty"`
	// Verbose prints detailed progress information.
	Verbose bool `json:"verbose,omitempty"`
}

// Load reads configuration from an optional JSON file and applies
// environment overrides. An empty path skips the file step.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("CORPUS_PATH"); v != "" {
		c.CorpusPath = v
	}
	if v := os.Getenv("SUMMARY_MODEL"); v != "" {
		c.SummaryModel = v
	}
	if v := os.Getenv("DRAFT_MODEL"); v != "" {
		c.DraftModel = v
	}
	if v := os.Getenv("EMBEDDING_MODEL"); v != "" {
		c.EmbeddingModel = v
	}
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	if c.DatabaseURL != "" && c.CorpusPath != "" {
		return fmt.Errorf("config error: 'database_url' and 'corpus_path' are mutually exclusive")
	}
	if c.CallTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'call_timeout_seconds' must be non-negative")
	}
	if c.CorpusPath != "" {
		if _, err := os.Stat(c.CorpusPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: corpus file not found: %s", c.CorpusPath)
		}
	}
	return nil
}

// CallTimeout returns the configured per-call timeout, or zero when unset
// so callers fall back to their own default.
func (c *Config) CallTimeout() time.Duration {
	return time.Duration(c.CallTimeoutSeconds) * time.Second
}
