// Package leadparse holds the rule-based heuristics applied to chat transcripts:
// structured field extraction and quote-readiness detection.
//
// Both are keyword/regex matchers over free text, not language understanding.
// Every pattern list is ordered and the first successful match wins.
package leadparse

import (
	"regexp"
	"strings"

	"cotacao_ia/internal/domain/entities"
)

// letters accepted inside captured names and locations (Latin-1 accented range included).
const letters = `A-Za-zÀ-ÿ`

var (
	namePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:meu nome é|me chamo|sou o|sou a)\s+([` + letters + `\s]+)`),
		regexp.MustCompile(`(?i)nome:\s*([` + letters + `\s]+)`),
	}
	ageRE       = regexp.MustCompile(`(?i)(\d{1,2})\s*anos?`)
	phoneRE     = regexp.MustCompile(`(\(?[0-9]{2}\)?[\s-]?[0-9]{4,5}[\s-]?[0-9]{4})`)
	emailRE     = regexp.MustCompile(`([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`)
	householdRE = regexp.MustCompile(`(?i)(\d+)\s*pessoas?`)

	// cidade, estado, bairro, "moro" (I live), "vivo" (I live)
	locationPatterns = compileLocationPatterns("cidade", "estado", "bairro", "moro", "vivo")
)

func compileLocationPatterns(keywords ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(keywords))
	for _, kw := range keywords {
		out = append(out, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(kw)+`[:\s]*([`+letters+`\s]+)`))
	}
	return out
}

// Extract builds a partial lead from the user-authored transcript text.
//
// Each field is extracted independently; a miss leaves the field empty. PlanType
// is always set. CapturedAt, Status and the excerpt are left to the caller.
func Extract(text string) entities.LeadRecord {
	return entities.LeadRecord{
		Name:          firstCapture(namePatterns, text),
		Age:           capture(ageRE, text),
		Phone:         capture(phoneRE, text),
		Email:         capture(emailRE, text),
		Location:      firstCapture(locationPatterns, text),
		PlanType:      DetectPlanType(text),
		HouseholdSize: capture(householdRE, text),
	}
}

// DetectPlanType maps the transcript to a plan category: any mention of "família"
// wins over "empresa", and the default is Individual.
func DetectPlanType(text string) entities.PlanType {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "família"):
		return entities.PlanTypeFamiliar
	case strings.Contains(lower, "empresa"):
		return entities.PlanTypeEmpresarial
	default:
		return entities.PlanTypeIndividual
	}
}

func firstCapture(patterns []*regexp.Regexp, text string) string {
	for _, re := range patterns {
		if v := capture(re, text); v != "" {
			return v
		}
	}
	return ""
}

func capture(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(m[1])
}
