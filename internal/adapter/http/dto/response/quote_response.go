package response

import "cotacao_ia/internal/domain/entities"

type PlanQuoteResponse struct {
	Insurer         string   `json:"insurer"`
	PlanName        string   `json:"plan_name"`
	MonthlyPrice    float64  `json:"monthly_price"`
	CoverageScope   string   `json:"coverage_scope"`
	ProviderNetwork string   `json:"provider_network"`
	WaitingPeriod   string   `json:"waiting_period"`
	Benefits        []string `json:"benefits"`
	ContractLink    string   `json:"contract_link"`
}

// QuoteResponse always carries success=true; the source tells real quotes
// from simulated ones.
type QuoteResponse struct {
	Success bool                `json:"success"`
	Quotes  []PlanQuoteResponse `json:"quotes"`
	Source  string              `json:"source" example:"Simulation"`
}

type InterestResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Protocol string `json:"protocol" example:"VID1727571891"`
}

type HealthResponse struct {
	Service   string `json:"service"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func FromPlanQuote(q entities.PlanQuote) PlanQuoteResponse {
	benefits := q.Benefits
	if benefits == nil {
		benefits = []string{}
	}
	return PlanQuoteResponse{
		Insurer:         q.Insurer,
		PlanName:        q.PlanName,
		MonthlyPrice:    q.MonthlyPrice,
		CoverageScope:   q.CoverageScope,
		ProviderNetwork: q.ProviderNetwork,
		WaitingPeriod:   q.WaitingPeriod,
		Benefits:        benefits,
		ContractLink:    q.ContractLink,
	}
}

func FromQuoteResult(r entities.QuoteResult) QuoteResponse {
	quotes := make([]PlanQuoteResponse, 0, len(r.Quotes))
	for _, q := range r.Quotes {
		quotes = append(quotes, FromPlanQuote(q))
	}
	return QuoteResponse{Success: true, Quotes: quotes, Source: string(r.Source)}
}

func FromInterestAck(a entities.InterestAck) InterestResponse {
	return InterestResponse{Success: true, Message: a.Message, Protocol: a.Protocol}
}
