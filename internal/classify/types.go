package classify

// Record types assigned to confirmed lab records for reporting. The order of
// RecordTypePriority is the resolution order used by the fallback classifier
// and the report breakdown.
const (
	RecordResearch       = "research"
	RecordOperational    = "operational"
	RecordAdministrative = "administrative"
	RecordSafety         = "safety"
	RecordProcurement    = "procurement"
	RecordGeneral        = "general"
	RecordExcluded       = "excluded"
	RecordNone           = "none"
)

// RecordTypePriority lists every record type in resolution order.
var RecordTypePriority = []string{
	RecordResearch,
	RecordOperational,
	RecordAdministrative,
	RecordSafety,
	RecordProcurement,
	RecordGeneral,
	RecordExcluded,
	RecordNone,
}

// Result is the classification outcome for a single message. The JSON field
// names are the wire schema requested from the model, so a model response
// unmarshals directly into this type.
//
// Invariant: IsLabRecord implies MeetsBusinessCriteria, MeetsActionCriteria,
// and not IsExcluded. Normalize enforces it on model output; the fallback
// classifier satisfies it by construction.
type Result struct {
	IsLabRecord           bool     `json:"is_lab_record"`
	MeetsBusinessCriteria bool     `json:"meets_lab_business_criteria"`
	MeetsActionCriteria   bool     `json:"meets_action_decision_criteria"`
	IsExcluded            bool     `json:"is_excluded_type"`
	ExclusionReason       string   `json:"exclusion_reason"`
	ConfidenceScore       float64  `json:"confidence_score"`
	BusinessIndicators    []string `json:"lab_business_indicators"`
	ActionIndicators      []string `json:"action_decision_indicators"`
	RecordType            string   `json:"record_type"`
	Summary               string   `json:"summary"`
	KeyEvidence           []string `json:"key_evidence"`

	// Message metadata, copied in by the analyzer.
	EmailID string `json:"email_id,omitempty"`
	Subject string `json:"subject,omitempty"`
	From    string `json:"from,omitempty"`
	Date    string `json:"date,omitempty"`

	// Error is set when the model endpoint call itself failed.
	Error bool `json:"error,omitempty"`
}

// Normalize enforces the record invariant and bounds on a result. Model
// output that claims is_lab_record while a sub-criterion fails, or that
// reports an out-of-range confidence, is corrected rather than trusted.
func (r *Result) Normalize() {
	r.IsLabRecord = r.MeetsBusinessCriteria && r.MeetsActionCriteria && !r.IsExcluded

	if r.ConfidenceScore < 0 {
		r.ConfidenceScore = 0
	}
	if r.ConfidenceScore > 1 {
		r.ConfidenceScore = 1
	}

	if !r.IsExcluded {
		r.ExclusionReason = ""
	}
	if r.RecordType == "" {
		if r.IsExcluded {
			r.RecordType = RecordExcluded
		} else {
			r.RecordType = RecordNone
		}
	}
}
