package instrumentation

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys.
const (
	attrOutcome   = "outcome"
	attrResult    = "result"
	attrOperation = "operation"
)

// Result attribute values.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Metrics provides methods for recording observability metrics. The zero
// value is a no-op recorder, so callers never need to nil-check.
type Metrics struct {
	emailsAnalyzed   metric.Int64Counter
	fallbackTotal    metric.Int64Counter
	generateDuration metric.Float64Histogram
	gmailOperations  metric.Int64Counter
}

// NewMetrics creates a Metrics instance with all instruments initialized.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}

	var err error

	m.emailsAnalyzed, err = meter.Int64Counter(
		"emails_analyzed_total",
		metric.WithDescription("Total number of emails classified"),
		metric.WithUnit("{email}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create emails_analyzed_total counter: %w", err)
	}

	m.fallbackTotal, err = meter.Int64Counter(
		"classification_fallback_total",
		metric.WithDescription("Total number of classifications resolved by the keyword fallback"),
		metric.WithUnit("{classification}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create classification_fallback_total counter: %w", err)
	}

	m.generateDuration, err = meter.Float64Histogram(
		"ollama_generate_duration_seconds",
		metric.WithDescription("Ollama generate call duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.1, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0, 60.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create ollama_generate_duration_seconds histogram: %w", err)
	}

	m.gmailOperations, err = meter.Int64Counter(
		"gmail_operations_total",
		metric.WithDescription("Total number of Gmail API operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail_operations_total counter: %w", err)
	}

	return m, nil
}

// RecordEmailAnalyzed records one classified email with its outcome
// (record, not_record, excluded, error).
func (m *Metrics) RecordEmailAnalyzed(ctx context.Context, outcome string) {
	if m.emailsAnalyzed == nil {
		return
	}
	m.emailsAnalyzed.Add(ctx, 1, metric.WithAttributes(
		attribute.String(attrOutcome, outcome),
	))
}

// RecordFallback records one classification resolved by the keyword fallback.
func (m *Metrics) RecordFallback(ctx context.Context) {
	if m.fallbackTotal == nil {
		return
	}
	m.fallbackTotal.Add(ctx, 1)
}

// RecordGenerateDuration records the duration of one generate call.
func (m *Metrics) RecordGenerateDuration(ctx context.Context, duration time.Duration, success bool) {
	if m.generateDuration == nil {
		return
	}
	result := ResultSuccess
	if !success {
		result = ResultError
	}
	m.generateDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String(attrResult, result),
	))
}

// RecordGmailOperation records one Gmail API operation.
func (m *Metrics) RecordGmailOperation(ctx context.Context, operation string, success bool) {
	if m.gmailOperations == nil {
		return
	}
	result := ResultSuccess
	if !success {
		result = ResultError
	}
	m.gmailOperations.Add(ctx, 1, metric.WithAttributes(
		attribute.String(attrOperation, operation),
		attribute.String(attrResult, result),
	))
}
