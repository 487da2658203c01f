// Package instrumentation provides OpenTelemetry metrics for labrecords.
//
// Instrumentation is disabled by default for CLI runs and enabled via
// INSTRUMENTATION_ENABLED=true, which exports metrics to stdout through a
// periodic reader. When disabled, the Metrics recorder is a no-op and callers
// do not need to guard their recording calls.
//
// Recorded signals:
//   - emails_analyzed_total, by outcome (record, not_record, excluded, error)
//   - classification_fallback_total
//   - ollama_generate_duration_seconds, by result
//   - gmail_operations_total, by operation and result
package instrumentation
