package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/teemow/labrecords/internal/classify"
)

// DefaultBaseName returns the timestamped base name used for output files
// when the caller does not supply one.
func DefaultBaseName(now time.Time) string {
	return "lab_record_analysis_" + now.Format("20060102_150405")
}

// SaveJSON writes the full result sequence to path as pretty-printed JSON.
func SaveJSON(results []*classify.Result, path string) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write results to %s: %w", path, err)
	}
	return nil
}

// SaveReport writes a rendered report to path.
func SaveReport(text, path string) error {
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", path, err)
	}
	return nil
}
