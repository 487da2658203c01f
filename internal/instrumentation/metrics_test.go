package instrumentation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/metric"
)

func TestZeroValueMetricsIsNoOp(t *testing.T) {
	ctx := context.Background()
	m := &Metrics{}

	// Must not panic with uninitialized instruments.
	m.RecordEmailAnalyzed(ctx, "record")
	m.RecordFallback(ctx)
	m.RecordGenerateDuration(ctx, time.Second, true)
	m.RecordGmailOperation(ctx, "list_messages", false)
}

func TestNewMetrics(t *testing.T) {
	provider := metric.NewMeterProvider()
	defer provider.Shutdown(context.Background())

	m, err := NewMetrics(provider.Meter("test"))

	require.NoError(t, err)
	require.NotNil(t, m)

	ctx := context.Background()
	m.RecordEmailAnalyzed(ctx, "record")
	m.RecordEmailAnalyzed(ctx, "excluded")
	m.RecordFallback(ctx)
	m.RecordGenerateDuration(ctx, 2*time.Second, true)
	m.RecordGenerateDuration(ctx, 500*time.Millisecond, false)
	m.RecordGmailOperation(ctx, "get_message", true)
}

func TestProviderDisabled(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Enabled: false})

	require.NoError(t, err)
	assert.False(t, p.Enabled())
	require.NotNil(t, p.Metrics())

	// The no-op recorder and shutdown must both be safe.
	p.Metrics().RecordFallback(context.Background())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestProviderEnabled(t *testing.T) {
	cfg := Config{
		ServiceName:    "labrecords-test",
		ServiceVersion: "test",
		Enabled:        true,
	}

	p, err := NewProvider(context.Background(), cfg)

	require.NoError(t, err)
	assert.True(t, p.Enabled())
	require.NotNil(t, p.Metrics())

	p.Metrics().RecordEmailAnalyzed(context.Background(), "record")
	assert.NoError(t, p.Shutdown(context.Background()))
}
