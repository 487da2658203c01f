// Package report aggregates classification results into summary statistics
// and a human-readable analysis report, and persists results to disk.
//
// All aggregation is pure: results are never mutated, and rendering the same
// result sequence with the same timestamp yields byte-identical output.
// Breakdown sections follow the canonical record-type and exclusion-category
// orders rather than map iteration order.
package report
