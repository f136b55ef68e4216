package entities

import "strings"

// QuotePlanType is the plan category requested for a quote.
type QuotePlanType string

const (
	QuotePlanIndividual  QuotePlanType = "individual"
	QuotePlanFamiliar    QuotePlanType = "familiar"
	QuotePlanEmpresarial QuotePlanType = "empresarial"
)

// ParseQuotePlanType normalizes a caller-supplied plan type. ok is false for
// values outside the three known categories.
func ParseQuotePlanType(s string) (QuotePlanType, bool) {
	switch QuotePlanType(strings.ToLower(strings.TrimSpace(s))) {
	case QuotePlanIndividual:
		return QuotePlanIndividual, true
	case QuotePlanFamiliar:
		return QuotePlanFamiliar, true
	case QuotePlanEmpresarial:
		return QuotePlanEmpresarial, true
	}
	return "", false
}

// CustomerProfile is the immutable input of a quote request.
type CustomerProfile struct {
	Name          string
	Age           int
	Phone         string
	Email         string
	City          string
	State         string
	PlanType      QuotePlanType
	HouseholdSize int
	DependentAges []int
}

// EffectiveHouseholdSize never reports less than one person.
func (p CustomerProfile) EffectiveHouseholdSize() int {
	if p.HouseholdSize < 1 {
		return 1
	}
	return p.HouseholdSize
}

// PlanQuote is one health plan offer. Produced per request, never stored.
type PlanQuote struct {
	Insurer         string
	PlanName        string
	MonthlyPrice    float64
	CoverageScope   string
	ProviderNetwork string
	WaitingPeriod   string
	Benefits        []string
	ContractLink    string
}

// QuoteSource tags where a quote list came from.
type QuoteSource string

const (
	QuoteSourceExternalAPI        QuoteSource = "External API"
	QuoteSourceSimulation         QuoteSource = "Simulation"
	QuoteSourceSimulationAPIError QuoteSource = "Simulation (API error)"
)

// QuoteResult is the outcome of a quote request. FallbackErr is set only when
// Source is QuoteSourceSimulationAPIError and carries the pricing API failure.
type QuoteResult struct {
	Quotes      []PlanQuote
	Source      QuoteSource
	FallbackErr error
}

// InterestAck acknowledges a register-interest request.
type InterestAck struct {
	Message  string
	Protocol string
}
