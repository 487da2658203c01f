// Package classify implements the lab-record decision engine.
//
// A record is a message that is both business-related and documents an action
// or decision, and does not fall into one of four excluded categories
// (calendar, announcement, personal, mass communication).
//
// Each message goes through two possible paths:
//
//   - Model path: the Builder renders the message into a policy prompt, the
//     model responds with a JSON object, and the Parser extracts it.
//   - Fallback path: when no parseable JSON comes back, the Fallback
//     classifier reapplies the same policy deterministically with keyword
//     substring matching against the configured tables.
//
// The two paths produce structurally identical Results, and both uphold the
// invariant that is_lab_record implies both criteria hold and no exclusion
// applies. The Analyzer drives the per-message flow and downgrades endpoint
// failures to error-flagged Results so a single bad message never aborts a
// batch.
package classify
