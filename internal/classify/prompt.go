package classify

import (
	"fmt"
	"unicode/utf8"

	"github.com/teemow/labrecords/internal/gmail"
)

// labRecordPrompt is the policy instruction wrapped around every message.
// The keyword examples in here are guidance for the model only; the
// configured tables used by the fallback classifier are the canonical policy.
const labRecordPrompt = `
Analyze the following email to determine if it qualifies as a Berkeley Lab record according to the official definition.

Email Content:
%s

BERKELEY LAB RECORD DEFINITION:
A record is material that has been created or received in the course of Laboratory business, and provides evidence of the Lab's decisions or actions related to a research or operational function.

An email must be marked as a record if its contents include BOTH of the following criteria:
1. Lab business or is related to responsibilities at the Lab; AND
2. Documents an action or decision

IMPORTANT: The following are NOT examples of records and should be classified as NOT lab records:
- Calendar responses: invitations, acceptances, meeting announcements, meeting agendas, Zoom invitations, scheduling notifications
- Formal and informal announcements: system outages, drills, routine IT maintenance work, general notifications
- Personal emails: anything unrelated to Lab business
- Newsletters/Listservs and junk mail: mass communications, promotional content, general information distribution

Please analyze this email and respond with a JSON object containing:
1. "is_lab_record": boolean (true if this email meets BOTH criteria for a lab record AND is not in the exclusion list)
2. "meets_lab_business_criteria": boolean (true if related to lab business/responsibilities)
3. "meets_action_decision_criteria": boolean (true if documents an action or decision)
4. "is_excluded_type": boolean (true if this falls into one of the excluded categories)
5. "exclusion_reason": string (if excluded, specify which exclusion category applies)
6. "confidence_score": number between 0 and 1 (overall confidence in classification)
7. "lab_business_indicators": array of strings (specific phrases indicating lab business)
8. "action_decision_indicators": array of strings (specific phrases indicating actions/decisions)
9. "record_type": string (e.g., "research", "operational", "administrative", "safety", "procurement", "excluded", "none")
10. "summary": brief explanation of why this does or doesn't qualify as a lab record
11. "key_evidence": array of strings (most important phrases that support the classification)

Lab Business Examples (that could be records if they document actions/decisions):
- Research activities, experiments, data analysis results
- Operational functions, facility management decisions
- Administrative duties, departmental work assignments
- Safety procedures, compliance matters, policy implementations
- Equipment procurement, resource allocation decisions
- Berkeley Lab projects, divisions, groups work coordination

Action/Decision Examples:
- Approvals, authorizations, rejections, confirmations of actions
- Implementation of procedures or policies
- Assignment of tasks, resources, or responsibilities
- Budget decisions, procurement actions, contract decisions
- Project planning, milestone setting, deliverable assignments
- Conclusions, recommendations, determinations that affect work
- Problem resolution, corrective actions taken

Exclusion Categories to Check:
1. Calendar/Scheduling: meeting invites, calendar responses, agenda distributions, Zoom links
2. Announcements: system notifications, maintenance alerts, general announcements, drills
3. Personal: non-work related content, personal communications
4. Mass Communications: newsletters, listservs, promotional emails, junk mail

Remember: Even if an email is related to lab business, it must ALSO document an action or decision to be considered a record, AND it must not fall into the excluded categories.

Respond only with valid JSON.
`

// Builder renders messages into classification prompts.
type Builder struct {
	maxBodyLength int
}

// NewBuilder creates a prompt builder. maxBodyLength caps the message body
// embedded in the prompt, in bytes.
func NewBuilder(maxBodyLength int) *Builder {
	return &Builder{maxBodyLength: maxBodyLength}
}

// Build renders a message into the full policy prompt. Deterministic for the
// same message; no side effects.
func (b *Builder) Build(msg *gmail.Message) string {
	content := fmt.Sprintf("Subject: %s\nFrom: %s\nTo: %s\nDate: %s\n\nBody:\n%s",
		msg.Subject, msg.From, msg.To, msg.Date, truncateBody(msg.Body, b.maxBodyLength))
	return fmt.Sprintf(labRecordPrompt, content)
}

// truncateBody caps the body at max bytes, backing up so the cut never splits
// a multi-byte UTF-8 sequence.
func truncateBody(body string, max int) string {
	if max <= 0 || len(body) <= max {
		return body
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(body[cut]) {
		cut--
	}
	return body[:cut]
}
