package classify

import (
	"strings"

	"github.com/teemow/labrecords/internal/config"
)

// Fallback confidence tiers. The fallback path never produces any other
// confidence value.
const (
	fallbackRecordConfidence   = 0.7
	fallbackExcludedConfidence = 0.8
	fallbackDefaultConfidence  = 0.3
)

// Fallback is the deterministic keyword classifier used when the model
// response cannot be parsed. It is a pure function of the input text and the
// configured tables: the same text always yields the same result.
type Fallback struct {
	keywords config.Keywords
}

// NewFallback creates a fallback classifier over the given tables.
func NewFallback(keywords config.Keywords) *Fallback {
	return &Fallback{keywords: keywords}
}

// Classify applies the record policy to text by substring matching.
//
// Exclusion categories are checked first in table order and the first
// category with a hit wins. A text matching no keyword at all yields
// record_type "none" with the low-confidence default; that is an
// insufficient-evidence outcome, not an error.
func (f *Fallback) Classify(text string) *Result {
	content := strings.ToLower(text)

	isExcluded := false
	exclusionReason := ""
	for _, cat := range f.keywords.Exclusions {
		if matchesAny(content, cat.Keywords) {
			isExcluded = true
			exclusionReason = cat.Name
			break
		}
	}

	businessIndicators := matchingKeywords(content, f.keywords.Business)
	actionIndicators := matchingKeywords(content, f.keywords.Action)
	businessFound := len(businessIndicators) > 0
	actionFound := len(actionIndicators) > 0

	recordType := RecordNone
	switch {
	case isExcluded:
		recordType = RecordExcluded
	case businessFound && actionFound:
		recordType = RecordGeneral
		for _, rule := range f.keywords.RecordTypes {
			if matchesAny(content, rule.Keywords) {
				recordType = rule.Type
				break
			}
		}
	}

	// Both criteria must hold and no exclusion may apply.
	isLabRecord := businessFound && actionFound && !isExcluded

	confidence := fallbackDefaultConfidence
	if isLabRecord {
		confidence = fallbackRecordConfidence
	} else if isExcluded {
		confidence = fallbackExcludedConfidence
	}

	return &Result{
		IsLabRecord:           isLabRecord,
		MeetsBusinessCriteria: businessFound,
		MeetsActionCriteria:   actionFound,
		IsExcluded:            isExcluded,
		ExclusionReason:       exclusionReason,
		ConfidenceScore:       confidence,
		BusinessIndicators:    businessIndicators,
		ActionIndicators:      actionIndicators,
		RecordType:            recordType,
		Summary:               fallbackSummary(isLabRecord, isExcluded, exclusionReason),
		KeyEvidence:           dedupe(append(append([]string{}, businessIndicators...), actionIndicators...)),
	}
}

func fallbackSummary(isLabRecord, isExcluded bool, exclusionReason string) string {
	verdict := "Does not qualify as lab record"
	if isExcluded {
		verdict = "Excluded - " + strings.ReplaceAll(exclusionReason, "_", " ")
	} else if isLabRecord {
		verdict = "Qualifies as lab record"
	}
	return "Fallback analysis: " + verdict + " based on keyword matching"
}

// matchesAny reports whether any keyword is a substring of content.
func matchesAny(content string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(content, kw) {
			return true
		}
	}
	return false
}

// matchingKeywords collects every keyword that is a substring of content,
// deduplicated, in table order.
func matchingKeywords(content string, keywords []string) []string {
	var matched []string
	for _, kw := range keywords {
		if strings.Contains(content, kw) {
			matched = append(matched, kw)
		}
	}
	return dedupe(matched)
}

// dedupe removes duplicates preserving first-seen order.
func dedupe(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}
