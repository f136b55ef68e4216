// Package pricing computes the simulated health plan premiums used when the
// external pricing API cannot serve a quote.
package pricing

import (
	"cotacao_ia/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const (
	simulatedWaitingPeriod = "180 dias"
	simulatedContractLink  = "https://viddasegurossaude.com.br/contato"
)

type catalogEntry struct {
	insurer   string
	planName  string
	basePrice int64
	coverage  string
	network   string
	benefits  []string
}

// catalog is the fixed simulated offer list, in presentation order.
var catalog = []catalogEntry{
	{
		insurer:   "Amil",
		planName:  "Amil Fácil",
		basePrice: 180,
		coverage:  "Nacional",
		network:   "Ampla rede credenciada",
		benefits:  []string{"Consultas", "Exames", "Internações", "Urgência/Emergência"},
	},
	{
		insurer:   "Bradesco Saúde",
		planName:  "Bradesco Efetivo",
		basePrice: 220,
		coverage:  "Nacional",
		network:   "Rede própria + credenciados",
		benefits:  []string{"Consultas", "Exames", "Internações", "Telemedicina"},
	},
	{
		insurer:   "SulAmérica",
		planName:  "SulAmérica Clássico",
		basePrice: 280,
		coverage:  "Nacional",
		network:   "Hospitais de referência",
		benefits:  []string{"Consultas", "Exames", "Internações", "Medicina preventiva"},
	},
	{
		insurer:   "Unimed",
		planName:  "Unimed Essencial",
		basePrice: 320,
		coverage:  "Regional",
		network:   "Cooperativas Unimed",
		benefits:  []string{"Consultas", "Exames", "Internações", "Programa de saúde"},
	},
}

// Age brackets, checked top-down; the first threshold the age exceeds wins.
var ageBrackets = []struct {
	over   int
	factor decimal.Decimal
}{
	{over: 50, factor: decimal.RequireFromString("1.8")},
	{over: 35, factor: decimal.RequireFromString("1.4")},
	{over: 25, factor: decimal.RequireFromString("1.2")},
}

// AgeFactor returns the premium multiplier for an age.
func AgeFactor(age int) decimal.Decimal {
	for _, b := range ageBrackets {
		if age > b.over {
			return b.factor
		}
	}
	return decimal.NewFromInt(1)
}

// HouseholdFactor multiplies the premium by the number of covered people.
func HouseholdFactor(size int) decimal.Decimal {
	if size > 1 {
		return decimal.NewFromInt(int64(size))
	}
	return decimal.NewFromInt(1)
}

// MonthlyPrice is base x age factor x household factor, rounded to cents.
func MonthlyPrice(base int64, age, householdSize int) float64 {
	price := decimal.NewFromInt(base).
		Mul(AgeFactor(age)).
		Mul(HouseholdFactor(householdSize)).
		Round(2)
	return price.InexactFloat64()
}

// Simulate builds the four simulated quotes for a profile. It is a pure function
// of the profile's age and household size.
func Simulate(profile entities.CustomerProfile) []entities.PlanQuote {
	size := profile.EffectiveHouseholdSize()
	quotes := make([]entities.PlanQuote, 0, len(catalog))
	for _, c := range catalog {
		benefits := make([]string, len(c.benefits))
		copy(benefits, c.benefits)
		quotes = append(quotes, entities.PlanQuote{
			Insurer:         c.insurer,
			PlanName:        c.planName,
			MonthlyPrice:    MonthlyPrice(c.basePrice, profile.Age, size),
			CoverageScope:   c.coverage,
			ProviderNetwork: c.network,
			WaitingPeriod:   simulatedWaitingPeriod,
			Benefits:        benefits,
			ContractLink:    simulatedContractLink,
		})
	}
	return quotes
}
