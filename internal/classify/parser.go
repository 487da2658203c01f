package classify

import (
	"encoding/json"
	"strings"
)

// Source identifies which path produced a Result.
type Source int

const (
	// SourceModel means the result was parsed from structured model output.
	SourceModel Source = iota
	// SourceFallback means the result came from the keyword fallback.
	SourceFallback
)

// Parser extracts a structured Result from raw model output, delegating to
// the fallback classifier when no parseable JSON object is present.
type Parser struct {
	fallback *Fallback
}

// NewParser creates a parser backed by the given fallback classifier.
func NewParser(fallback *Fallback) *Parser {
	return &Parser{fallback: fallback}
}

// Parse locates the outermost brace pair in the raw text and unmarshals it as
// a Result. Parse failure is binary: on any failure the entire raw text is
// reclassified by the fallback path, with no partial trust of malformed
// output. Parse never fails.
func (p *Parser) Parse(raw string) (*Result, Source) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")

	if start == -1 || end == -1 || end < start {
		return p.fallback.Classify(raw), SourceFallback
	}

	var result Result
	if err := json.Unmarshal([]byte(raw[start:end+1]), &result); err != nil {
		return p.fallback.Classify(raw), SourceFallback
	}

	result.Normalize()
	return &result, SourceModel
}
