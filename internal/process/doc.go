// Package process drives batch classification runs: retrieve messages from
// the mailbox, classify each one in order, and hand the result sequence to
// the reporter.
//
// Messages are processed sequentially and results keep input order, so
// reports are stable across runs over the same batch. A failing message never
// aborts the batch: the analyzer downgrades endpoint failures to
// error-flagged results, and per-ID retrieval failures are logged and
// skipped. Only total inability to retrieve messages ends a run early, as a
// "no emails" outcome rather than an error.
package process
