package leadparse

import (
	"regexp"
	"strings"
	"unicode"

	"cotacao_ia/internal/domain/entities"
)

// Keyword sets scanned by IsReadyForQuote. Matching is plain substring presence
// over the lower-cased user text, so "sp" also matches inside other words.
var (
	nameKeywords     = []string{"nome", "chamo", "sou"}
	ageKeywords      = []string{"anos", "idade"}
	contactKeywords  = []string{"telefone", "celular", "email", "@"}
	locationKeywords = []string{"cidade", "estado", "bairro", "moro", "vivo", "sp", "rj", "mg"}
	planKeywords     = []string{"pessoa", "família", "empresa", "individual", "familiar"}

	// Any Brazilian state abbreviation written as a standalone token ("Recife - PE").
	stateCodeRE = regexp.MustCompile(`\b(ac|al|ap|am|ba|ce|df|es|go|ma|mt|ms|mg|pa|pb|pr|pe|pi|rj|rn|rs|ro|rr|sc|sp|se|to)\b`)
)

// Signals reports which readiness predicates hold for a transcript.
type Signals struct {
	Name     bool
	Age      bool
	Contact  bool
	Location bool
	PlanType bool
}

// Ready is true only when all five signals are present.
func (s Signals) Ready() bool {
	return s.Name && s.Age && s.Contact && s.Location && s.PlanType
}

// DetectSignals evaluates the readiness predicates over the user-authored turns.
//
// Known limitation: the age signal also fires on any digit anywhere in the text
// (a phone number is enough). This coarse behaviour is intended.
func DetectSignals(turns []entities.ConversationTurn) Signals {
	text := strings.ToLower(entities.UserText(turns))
	return Signals{
		Name:     containsAny(text, nameKeywords),
		Age:      containsAny(text, ageKeywords) || strings.IndexFunc(text, unicode.IsDigit) >= 0,
		Contact:  containsAny(text, contactKeywords),
		Location: containsAny(text, locationKeywords) || stateCodeRE.MatchString(text),
		PlanType: containsAny(text, planKeywords),
	}
}

// IsReadyForQuote decides whether enough profile information was gathered.
func IsReadyForQuote(turns []entities.ConversationTurn) bool {
	return DetectSignals(turns).Ready()
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
