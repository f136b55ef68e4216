package entities

import "time"

// PlanType is the household/plan category of a lead.
type PlanType string

const (
	PlanTypeIndividual  PlanType = "Individual"
	PlanTypeFamiliar    PlanType = "Familiar"
	PlanTypeEmpresarial PlanType = "Empresarial"
)

// LeadStatusNew is the status written on every freshly captured lead row.
const LeadStatusNew = "Novo Lead"

// LeadExcerptLimit bounds the transcript excerpt stored with a lead, in characters.
const LeadExcerptLimit = 500

// LeadRecord is a prospective customer's profile captured from a chat transcript.
//
// Extracted fields keep the text exactly as captured; an empty string means the
// field could not be found. A LeadRecord is never mutated after creation.
//
// Storage model (spreadsheet):
//   - one row per lead, columns in the order of Row()
type LeadRecord struct {
	CapturedAt        time.Time `json:"captured_at"`
	Name              string    `json:"name,omitempty"`
	Age               string    `json:"age,omitempty"`
	Phone             string    `json:"phone,omitempty"`
	Email             string    `json:"email,omitempty"`
	Location          string    `json:"location,omitempty"`
	PlanType          PlanType  `json:"plan_type"`
	HouseholdSize     string    `json:"household_size,omitempty"`
	Status            string    `json:"status"`
	TranscriptExcerpt string    `json:"transcript_excerpt"`
}

// LeadTimestampLayout is the dd/mm/yyyy hh:mm layout used in the spreadsheet.
const LeadTimestampLayout = "02/01/2006 15:04"

// Row renders the fixed-column spreadsheet row for the lead.
func (l LeadRecord) Row() []string {
	return []string{
		l.CapturedAt.Format(LeadTimestampLayout),
		l.Name,
		l.Age,
		l.Phone,
		l.Email,
		l.Location,
		string(l.PlanType),
		l.HouseholdSize,
		l.Status,
		l.TranscriptExcerpt,
	}
}

// Excerpt truncates text to at most limit characters (runes, not bytes).
func Excerpt(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	r := []rune(text)
	if len(r) <= limit {
		return text
	}
	return string(r[:limit])
}

// LeadOutcome describes what happened to a lead on a ready turn.
type LeadOutcome string

const (
	LeadOutcomeAppended            LeadOutcome = "appended"
	LeadOutcomeSkippedUnconfigured LeadOutcome = "skipped_unconfigured"
	LeadOutcomeDuplicate           LeadOutcome = "duplicate"
	LeadOutcomeFailed              LeadOutcome = "failed"
)
