// Package logging provides slog helpers for consistent structured logging.
//
// It defines the shared attribute keys used across the codebase and small
// constructors for common attributes. Email addresses are never logged
// verbatim; AnonymizeEmail hashes them so log entries can be correlated
// without exposing PII.
package logging
