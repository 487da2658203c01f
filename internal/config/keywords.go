package config

import "fmt"

// Exclusion category names. The values double as the exclusion_reason field
// in classification results.
const (
	ExclusionCalendar          = "calendar"
	ExclusionAnnouncement      = "announcement"
	ExclusionPersonal          = "personal"
	ExclusionMassCommunication = "mass_communication"
)

// ExclusionCategory pairs an exclusion category with its keyword list.
type ExclusionCategory struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// RecordTypeRule pairs a record type with the keywords that select it.
type RecordTypeRule struct {
	Type     string   `yaml:"type"`
	Keywords []string `yaml:"keywords"`
}

// Keywords holds all record-policy tables. Exclusions and RecordTypes are
// ordered: the fallback classifier takes the first matching entry.
type Keywords struct {
	Business    []string            `yaml:"business"`
	Action      []string            `yaml:"action"`
	Exclusions  []ExclusionCategory `yaml:"exclusions"`
	RecordTypes []RecordTypeRule    `yaml:"record_types"`
}

// Validate checks that every table is non-empty and category names are unique.
func (k *Keywords) Validate() error {
	if len(k.Business) == 0 {
		return fmt.Errorf("business keyword table cannot be empty")
	}
	if len(k.Action) == 0 {
		return fmt.Errorf("action keyword table cannot be empty")
	}
	if len(k.Exclusions) == 0 {
		return fmt.Errorf("exclusion keyword table cannot be empty")
	}
	seen := make(map[string]bool, len(k.Exclusions))
	for _, cat := range k.Exclusions {
		if cat.Name == "" {
			return fmt.Errorf("exclusion category name cannot be empty")
		}
		if seen[cat.Name] {
			return fmt.Errorf("duplicate exclusion category %q", cat.Name)
		}
		seen[cat.Name] = true
		if len(cat.Keywords) == 0 {
			return fmt.Errorf("exclusion category %q has no keywords", cat.Name)
		}
	}
	for _, rule := range k.RecordTypes {
		if rule.Type == "" {
			return fmt.Errorf("record type name cannot be empty")
		}
		if len(rule.Keywords) == 0 {
			return fmt.Errorf("record type %q has no keywords", rule.Type)
		}
	}
	return nil
}

// DefaultKeywords returns the built-in record-policy tables.
func DefaultKeywords() Keywords {
	return Keywords{
		Business: []string{
			"research", "experiment", "laboratory", "lab", "project", "study",
			"analysis", "data", "results", "findings", "methodology", "protocol",
			"sample", "testing", "measurement", "calibration", "equipment",
			"safety", "compliance", "quality", "procedure", "standard",
			"berkeley lab", "lbnl", "department", "division", "group",
			"operational", "administrative", "facility", "resource",
		},
		Action: []string{
			"decision", "approve", "approved", "authorize", "authorized",
			"reject", "rejected", "deny", "denied", "accept", "accepted",
			"implement", "implemented", "execute", "executed", "action",
			"directive", "instruction", "order", "mandate", "require",
			"assign", "assigned", "allocate", "allocated", "budget",
			"fund", "funded", "purchase", "procure", "contract",
			"agreement", "policy", "procedure", "protocol", "standard",
			"recommendation", "conclude", "determine", "establish",
			"schedule", "plan", "strategy", "milestone", "deliverable",
		},
		// Checked in order; the first category with a hit wins.
		Exclusions: []ExclusionCategory{
			{
				Name: ExclusionCalendar,
				Keywords: []string{
					"meeting", "calendar", "invite", "invitation",
					"agenda", "zoom", "schedule", "appointment",
				},
			},
			{
				Name: ExclusionAnnouncement,
				Keywords: []string{
					"announcement", "outage", "maintenance", "drill",
					"notification", "alert", "system",
				},
			},
			{
				Name: ExclusionPersonal,
				Keywords: []string{
					"personal", "private", "family", "vacation",
					"birthday", "congratulations",
				},
			},
			{
				Name: ExclusionMassCommunication,
				Keywords: []string{
					"newsletter", "listserv", "unsubscribe",
					"promotional", "marketing", "spam",
				},
			},
		},
		// Checked in order; the first rule with a hit assigns the type.
		RecordTypes: []RecordTypeRule{
			{Type: "research", Keywords: []string{"research", "experiment", "study", "analysis"}},
			{Type: "operational", Keywords: []string{"operational", "facility", "equipment"}},
			{Type: "administrative", Keywords: []string{"administrative", "department", "policy"}},
			{Type: "safety", Keywords: []string{"safety", "compliance", "procedure"}},
			{Type: "procurement", Keywords: []string{"purchase", "procure", "contract", "budget"}},
		},
	}
}
