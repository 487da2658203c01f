package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Default values for settings that are not configured explicitly.
const (
	DefaultOllamaBaseURL     = "http://localhost:11434"
	DefaultOllamaModel       = "llama2"
	DefaultMaxEmailsPerBatch = 10
	DefaultDaysBack          = 7
	DefaultMinConfidence     = 0.5
	DefaultOllamaTimeout     = 60 * time.Second
	DefaultMaxBodyLength     = 2000
)

// Config holds the runtime configuration for an analysis run.
type Config struct {
	// OllamaBaseURL is the base URL of the Ollama endpoint (default: http://localhost:11434)
	OllamaBaseURL string `yaml:"ollama_base_url"`

	// OllamaModel is the model name passed to the generate endpoint (default: llama2)
	OllamaModel string `yaml:"ollama_model"`

	// OllamaTimeout bounds a single generate call (default: 60s)
	OllamaTimeout time.Duration `yaml:"ollama_timeout"`

	// MaxEmailsPerBatch caps the number of messages fetched per run (default: 10)
	MaxEmailsPerBatch int `yaml:"max_emails_per_batch"`

	// DaysBack is the look-back window for message retrieval (default: 7)
	DaysBack int `yaml:"days_back"`

	// MinConfidence is the minimum confidence score for a result to count
	// as a lab record in reports (default: 0.5)
	MinConfidence float64 `yaml:"min_confidence"`

	// MaxBodyLength caps the message body embedded in the prompt, in bytes
	// (default: 2000). Truncation never splits a UTF-8 rune.
	MaxBodyLength int `yaml:"max_body_length"`

	// Keywords holds the record-policy tables used by the fallback classifier.
	Keywords Keywords `yaml:"keywords"`
}

// Default returns a Config populated from environment variables, falling back
// to the built-in defaults and the canonical keyword tables.
func Default() Config {
	return Config{
		OllamaBaseURL:     getEnvOrDefault("OLLAMA_BASE_URL", DefaultOllamaBaseURL),
		OllamaModel:       getEnvOrDefault("OLLAMA_MODEL", DefaultOllamaModel),
		OllamaTimeout:     DefaultOllamaTimeout,
		MaxEmailsPerBatch: getEnvIntOrDefault("MAX_EMAILS_PER_BATCH", DefaultMaxEmailsPerBatch),
		DaysBack:          getEnvIntOrDefault("DAYS_BACK", DefaultDaysBack),
		MinConfidence:     getEnvFloatOrDefault("MIN_CONFIDENCE", DefaultMinConfidence),
		MaxBodyLength:     DefaultMaxBodyLength,
		Keywords:          DefaultKeywords(),
	}
}

// Load reads a YAML file and overlays it on top of Default(). Fields absent
// from the file keep their default values; a keyword section present in the
// file replaces the corresponding default table wholesale.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var overlay fileOverlay
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	overlay.apply(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration for values that would break a run.
func (c *Config) Validate() error {
	if c.OllamaBaseURL == "" {
		return fmt.Errorf("ollama base URL cannot be empty")
	}
	if c.OllamaModel == "" {
		return fmt.Errorf("ollama model cannot be empty")
	}
	if c.MaxEmailsPerBatch <= 0 {
		return fmt.Errorf("max emails per batch must be positive, got %d", c.MaxEmailsPerBatch)
	}
	if c.DaysBack <= 0 {
		return fmt.Errorf("days back must be positive, got %d", c.DaysBack)
	}
	if c.MinConfidence < 0 || c.MinConfidence > 1 {
		return fmt.Errorf("min confidence must be between 0.0 and 1.0, got %f", c.MinConfidence)
	}
	if c.MaxBodyLength <= 0 {
		return fmt.Errorf("max body length must be positive, got %d", c.MaxBodyLength)
	}
	return c.Keywords.Validate()
}

// fileOverlay mirrors Config with pointer fields so that absent YAML keys can
// be told apart from zero values.
type fileOverlay struct {
	OllamaBaseURL     *string        `yaml:"ollama_base_url"`
	OllamaModel       *string        `yaml:"ollama_model"`
	OllamaTimeout     *time.Duration `yaml:"ollama_timeout"`
	MaxEmailsPerBatch *int           `yaml:"max_emails_per_batch"`
	DaysBack          *int           `yaml:"days_back"`
	MinConfidence     *float64       `yaml:"min_confidence"`
	MaxBodyLength     *int           `yaml:"max_body_length"`
	Keywords          *Keywords      `yaml:"keywords"`
}

func (o *fileOverlay) apply(cfg *Config) {
	if o.OllamaBaseURL != nil {
		cfg.OllamaBaseURL = *o.OllamaBaseURL
	}
	if o.OllamaModel != nil {
		cfg.OllamaModel = *o.OllamaModel
	}
	if o.OllamaTimeout != nil {
		cfg.OllamaTimeout = *o.OllamaTimeout
	}
	if o.MaxEmailsPerBatch != nil {
		cfg.MaxEmailsPerBatch = *o.MaxEmailsPerBatch
	}
	if o.DaysBack != nil {
		cfg.DaysBack = *o.DaysBack
	}
	if o.MinConfidence != nil {
		cfg.MinConfidence = *o.MinConfidence
	}
	if o.MaxBodyLength != nil {
		cfg.MaxBodyLength = *o.MaxBodyLength
	}
	if o.Keywords != nil {
		if len(o.Keywords.Business) > 0 {
			cfg.Keywords.Business = o.Keywords.Business
		}
		if len(o.Keywords.Action) > 0 {
			cfg.Keywords.Action = o.Keywords.Action
		}
		if len(o.Keywords.Exclusions) > 0 {
			cfg.Keywords.Exclusions = o.Keywords.Exclusions
		}
		if len(o.Keywords.RecordTypes) > 0 {
			cfg.Keywords.RecordTypes = o.Keywords.RecordTypes
		}
	}
}

// getEnvOrDefault returns the environment variable value or a default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvIntOrDefault returns the environment variable as an int or a default.
func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvFloatOrDefault returns the environment variable as a float64 or a default.
func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
