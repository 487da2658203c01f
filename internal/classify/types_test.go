package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		in       Result
		expected Result
	}{
		{
			name: "record claim with failing criterion is corrected",
			in: Result{
				IsLabRecord:           true,
				MeetsBusinessCriteria: true,
				MeetsActionCriteria:   false,
				ConfidenceScore:       0.9,
				RecordType:            RecordResearch,
			},
			expected: Result{
				IsLabRecord:           false,
				MeetsBusinessCriteria: true,
				MeetsActionCriteria:   false,
				ConfidenceScore:       0.9,
				RecordType:            RecordResearch,
			},
		},
		{
			name: "excluded mail is never a record",
			in: Result{
				IsLabRecord:           true,
				MeetsBusinessCriteria: true,
				MeetsActionCriteria:   true,
				IsExcluded:            true,
				ExclusionReason:       "calendar",
				ConfidenceScore:       0.8,
				RecordType:            RecordExcluded,
			},
			expected: Result{
				IsLabRecord:           false,
				MeetsBusinessCriteria: true,
				MeetsActionCriteria:   true,
				IsExcluded:            true,
				ExclusionReason:       "calendar",
				ConfidenceScore:       0.8,
				RecordType:            RecordExcluded,
			},
		},
		{
			name: "missed record claim is promoted",
			in: Result{
				IsLabRecord:           false,
				MeetsBusinessCriteria: true,
				MeetsActionCriteria:   true,
				ConfidenceScore:       0.7,
				RecordType:            RecordGeneral,
			},
			expected: Result{
				IsLabRecord:           true,
				MeetsBusinessCriteria: true,
				MeetsActionCriteria:   true,
				ConfidenceScore:       0.7,
				RecordType:            RecordGeneral,
			},
		},
		{
			name:     "negative confidence clamps to zero",
			in:       Result{ConfidenceScore: -0.5},
			expected: Result{ConfidenceScore: 0, RecordType: RecordNone},
		},
		{
			name:     "confidence above one clamps to one",
			in:       Result{ConfidenceScore: 2.5},
			expected: Result{ConfidenceScore: 1, RecordType: RecordNone},
		},
		{
			name:     "stale exclusion reason is cleared",
			in:       Result{ExclusionReason: "personal", RecordType: RecordNone},
			expected: Result{RecordType: RecordNone},
		},
		{
			name:     "empty record type defaults to excluded when excluded",
			in:       Result{IsExcluded: true, ExclusionReason: "announcement"},
			expected: Result{IsExcluded: true, ExclusionReason: "announcement", RecordType: RecordExcluded},
		},
		{
			name:     "empty record type defaults to none otherwise",
			in:       Result{},
			expected: Result{RecordType: RecordNone},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in
			got.Normalize()
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	r := Result{
		IsLabRecord:           true,
		MeetsBusinessCriteria: true,
		MeetsActionCriteria:   true,
		ConfidenceScore:       1.7,
	}

	r.Normalize()
	once := r
	r.Normalize()

	assert.Equal(t, once, r)
}
