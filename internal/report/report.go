package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/teemow/labrecords/internal/classify"
	"github.com/teemow/labrecords/internal/config"
)

// exclusionOrder is the canonical rendering order for exclusion reasons.
// Reasons outside this list (free-form model output) are appended sorted.
var exclusionOrder = []string{
	config.ExclusionCalendar,
	config.ExclusionAnnouncement,
	config.ExclusionPersonal,
	config.ExclusionMassCommunication,
}

// Stats summarizes a batch of classification results.
type Stats struct {
	TotalEmails   int            `json:"total_emails"`
	LabRecords    int            `json:"lab_records"`
	LabRecordRate float64        `json:"lab_record_rate"` // percent of total
	AvgConfidence float64        `json:"avg_confidence"`  // over lab records only
	MeetsBusiness int            `json:"meets_business"`
	MeetsAction   int            `json:"meets_action"`
	Excluded      int            `json:"excluded"`
	Errors        int            `json:"errors"`
	RecordTypes   map[string]int `json:"record_types"`      // among lab records
	ExclusionHits map[string]int `json:"exclusion_reasons"` // among all excluded
}

// Filter returns the results that qualify as lab records at or above the
// minimum confidence. Pure; the input slice is not modified.
func Filter(results []*classify.Result, minConfidence float64) []*classify.Result {
	var filtered []*classify.Result
	for _, r := range results {
		if r.IsLabRecord && r.ConfidenceScore >= minConfidence {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Summarize computes batch statistics. An empty input yields all-zero stats;
// mean confidence never divides by zero.
func Summarize(results []*classify.Result, minConfidence float64) Stats {
	stats := Stats{
		RecordTypes:   map[string]int{},
		ExclusionHits: map[string]int{},
	}

	stats.TotalEmails = len(results)
	if stats.TotalEmails == 0 {
		return stats
	}

	records := Filter(results, minConfidence)
	stats.LabRecords = len(records)
	stats.LabRecordRate = float64(stats.LabRecords) / float64(stats.TotalEmails) * 100

	var confidenceSum float64
	for _, r := range records {
		confidenceSum += r.ConfidenceScore
		stats.RecordTypes[r.RecordType]++
	}
	if stats.LabRecords > 0 {
		stats.AvgConfidence = confidenceSum / float64(stats.LabRecords)
	}

	for _, r := range results {
		if r.MeetsBusinessCriteria {
			stats.MeetsBusiness++
		}
		if r.MeetsActionCriteria {
			stats.MeetsAction++
		}
		if r.IsExcluded {
			stats.Excluded++
			reason := r.ExclusionReason
			if reason == "" {
				reason = "unknown"
			}
			stats.ExclusionHits[reason]++
		}
		if r.Error {
			stats.Errors++
		}
	}

	return stats
}

// Render produces the full analysis report as deterministic text. Every
// detail block has the same shape; absent fields render as "N/A".
func Render(results []*classify.Result, minConfidence float64, generatedAt time.Time) string {
	stats := Summarize(results, minConfidence)
	records := Filter(results, minConfidence)

	var sb strings.Builder

	sb.WriteString("Berkeley Lab Email Record Analysis Report\n")
	sb.WriteString("Generated: " + generatedAt.Format("2006-01-02 15:04:05") + "\n\n")

	sb.WriteString("SUMMARY:\n")
	fmt.Fprintf(&sb, "- Total emails analyzed: %d\n", stats.TotalEmails)
	fmt.Fprintf(&sb, "- Lab records identified: %d\n", stats.LabRecords)
	fmt.Fprintf(&sb, "- Lab record rate: %.1f%%\n\n", stats.LabRecordRate)

	sb.WriteString("CRITERIA ANALYSIS:\n")
	fmt.Fprintf(&sb, "- Emails meeting lab business criteria: %d (%.1f%%)\n", stats.MeetsBusiness, percent(stats.MeetsBusiness, stats.TotalEmails))
	fmt.Fprintf(&sb, "- Emails meeting action/decision criteria: %d (%.1f%%)\n", stats.MeetsAction, percent(stats.MeetsAction, stats.TotalEmails))
	fmt.Fprintf(&sb, "- Emails meeting BOTH criteria (lab records): %d (%.1f%%)\n", stats.LabRecords, percent(stats.LabRecords, stats.TotalEmails))
	fmt.Fprintf(&sb, "- Excluded emails: %d (%.1f%%)\n", stats.Excluded, percent(stats.Excluded, stats.TotalEmails))

	sb.WriteString("\nRECORD TYPE BREAKDOWN:\n")
	for _, rt := range orderedKeys(stats.RecordTypes, classify.RecordTypePriority) {
		fmt.Fprintf(&sb, "- %s: %d\n", titleCase(rt), stats.RecordTypes[rt])
	}

	if stats.Excluded > 0 {
		sb.WriteString("\nEXCLUSION REASONS:\n")
		for _, reason := range orderedKeys(stats.ExclusionHits, exclusionOrder) {
			fmt.Fprintf(&sb, "- %s: %d\n", titleCase(reason), stats.ExclusionHits[reason])
		}
	}

	sb.WriteString("\nDETAILED LAB RECORDS:\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")

	for _, r := range records {
		fmt.Fprintf(&sb, "\nSubject: %s\n", orNA(r.Subject))
		fmt.Fprintf(&sb, "From: %s\n", orNA(r.From))
		fmt.Fprintf(&sb, "Date: %s\n", orNA(r.Date))
		fmt.Fprintf(&sb, "Record Type: %s\n", titleCase(orNA(r.RecordType)))
		fmt.Fprintf(&sb, "Confidence: %.2f\n\n", r.ConfidenceScore)
		fmt.Fprintf(&sb, "Lab Business Indicators: %s\n", joinOrNA(r.BusinessIndicators))
		fmt.Fprintf(&sb, "Action/Decision Indicators: %s\n\n", joinOrNA(r.ActionIndicators))
		fmt.Fprintf(&sb, "Summary: %s\n\n", orNA(r.Summary))
		fmt.Fprintf(&sb, "Key Evidence: %s\n\n", joinOrNA(r.KeyEvidence))
		sb.WriteString(strings.Repeat("-", 60) + "\n")
	}

	return sb.String()
}

// orderedKeys returns the keys of counts present in the canonical order
// first, then any remaining keys sorted.
func orderedKeys(counts map[string]int, canonical []string) []string {
	var keys []string
	seen := make(map[string]bool, len(counts))
	for _, k := range canonical {
		if _, ok := counts[k]; ok {
			keys = append(keys, k)
			seen[k] = true
		}
	}
	var rest []string
	for k := range counts {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func joinOrNA(items []string) string {
	if len(items) == 0 {
		return "N/A"
	}
	return strings.Join(items, ", ")
}

// titleCase renders an identifier like "mass_communication" as
// "Mass Communication" for display.
func titleCase(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
