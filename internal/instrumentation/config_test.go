package instrumentation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	t.Setenv("OTEL_SERVICE_NAME", "")
	t.Setenv("INSTRUMENTATION_ENABLED", "")

	cfg := DefaultConfig()

	assert.Equal(t, "labrecords", cfg.ServiceName)
	assert.Equal(t, "unknown", cfg.ServiceVersion)
	assert.False(t, cfg.Enabled)
}

func TestDefaultConfigFromEnvironment(t *testing.T) {
	t.Setenv("OTEL_SERVICE_NAME", "labrecords-test")
	t.Setenv("INSTRUMENTATION_ENABLED", "true")

	cfg := DefaultConfig()

	assert.Equal(t, "labrecords-test", cfg.ServiceName)
	assert.True(t, cfg.Enabled)
}

func TestDefaultConfigIgnoresInvalidBool(t *testing.T) {
	t.Setenv("INSTRUMENTATION_ENABLED", "maybe")

	cfg := DefaultConfig()

	assert.False(t, cfg.Enabled)
}
