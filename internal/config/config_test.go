package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "http://localhost:11434", cfg.OllamaBaseURL)
	assert.Equal(t, "llama2", cfg.OllamaModel)
	assert.Equal(t, 60*time.Second, cfg.OllamaTimeout)
	assert.Equal(t, 10, cfg.MaxEmailsPerBatch)
	assert.Equal(t, 7, cfg.DaysBack)
	assert.Equal(t, 0.5, cfg.MinConfidence)
	assert.Equal(t, 2000, cfg.MaxBodyLength)
	assert.NoError(t, cfg.Validate())
}

func TestDefaultFromEnvironment(t *testing.T) {
	t.Setenv("OLLAMA_BASE_URL", "http://ollama.internal:11434")
	t.Setenv("OLLAMA_MODEL", "mistral")
	t.Setenv("MAX_EMAILS_PER_BATCH", "50")
	t.Setenv("DAYS_BACK", "30")
	t.Setenv("MIN_CONFIDENCE", "0.75")

	cfg := Default()

	assert.Equal(t, "http://ollama.internal:11434", cfg.OllamaBaseURL)
	assert.Equal(t, "mistral", cfg.OllamaModel)
	assert.Equal(t, 50, cfg.MaxEmailsPerBatch)
	assert.Equal(t, 30, cfg.DaysBack)
	assert.Equal(t, 0.75, cfg.MinConfidence)
}

func TestDefaultIgnoresUnparsableEnvironment(t *testing.T) {
	t.Setenv("MAX_EMAILS_PER_BATCH", "not-a-number")
	t.Setenv("MIN_CONFIDENCE", "high")

	cfg := Default()

	assert.Equal(t, DefaultMaxEmailsPerBatch, cfg.MaxEmailsPerBatch)
	assert.Equal(t, DefaultMinConfidence, cfg.MinConfidence)
}

func TestLoadOverlaysFile(t *testing.T) {
	path := writeConfigFile(t, `
ollama_model: qwen2
days_back: 14
keywords:
  business:
    - widget
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "qwen2", cfg.OllamaModel)
	assert.Equal(t, 14, cfg.DaysBack)
	assert.Equal(t, []string{"widget"}, cfg.Keywords.Business)

	// Untouched fields keep their defaults, including the other keyword tables.
	assert.Equal(t, DefaultOllamaBaseURL, cfg.OllamaBaseURL)
	assert.Equal(t, DefaultMaxEmailsPerBatch, cfg.MaxEmailsPerBatch)
	assert.Equal(t, DefaultKeywords().Action, cfg.Keywords.Action)
	assert.Equal(t, DefaultKeywords().Exclusions, cfg.Keywords.Exclusions)
}

func TestLoadReplacesExclusionTableWholesale(t *testing.T) {
	path := writeConfigFile(t, `
keywords:
  exclusions:
    - name: noise
      keywords:
        - lorem
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Len(t, cfg.Keywords.Exclusions, 1)
	assert.Equal(t, "noise", cfg.Keywords.Exclusions[0].Name)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "ollama_model: [unclosed")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := writeConfigFile(t, "days_back: -3")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}, wantErr: ""},
		{
			name:    "empty base URL",
			mutate:  func(c *Config) { c.OllamaBaseURL = "" },
			wantErr: "ollama base URL",
		},
		{
			name:    "empty model",
			mutate:  func(c *Config) { c.OllamaModel = "" },
			wantErr: "ollama model",
		},
		{
			name:    "zero batch size",
			mutate:  func(c *Config) { c.MaxEmailsPerBatch = 0 },
			wantErr: "max emails per batch",
		},
		{
			name:    "negative days back",
			mutate:  func(c *Config) { c.DaysBack = -1 },
			wantErr: "days back",
		},
		{
			name:    "confidence above one",
			mutate:  func(c *Config) { c.MinConfidence = 1.5 },
			wantErr: "min confidence",
		},
		{
			name:    "zero body length",
			mutate:  func(c *Config) { c.MaxBodyLength = 0 },
			wantErr: "max body length",
		},
		{
			name:    "empty business table",
			mutate:  func(c *Config) { c.Keywords.Business = nil },
			wantErr: "business keyword table",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
