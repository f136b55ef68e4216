package pricing

import (
	"context"
	"cotacao_ia/internal/domain/entities"
	"cotacao_ia/internal/usecase/interfaces"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const quotePath = "/cotacao"

var pricingTracer = otel.Tracer("cotacao.internal.infrastructure.pricing")

type quoteRequest struct {
	Nome              string `json:"nome"`
	Idade             int    `json:"idade"`
	Telefone          string `json:"telefone"`
	Email             string `json:"email"`
	Cidade            string `json:"cidade"`
	Estado            string `json:"estado"`
	TipoCobertura     string `json:"tipo_cobertura"`
	QtdPessoas        int    `json:"qtd_pessoas"`
	IdadesDependentes []int  `json:"idades_dependentes"`
}

type quoteResponse struct {
	Planos []planItem `json:"planos"`
}

// planItem is one plan as returned by the API. valor_mensal arrives either as
// a number or as a numeric string.
type planItem struct {
	Operadora       string              `json:"operadora"`
	NomePlano       string              `json:"nome_plano"`
	ValorMensal     decimal.NullDecimal `json:"valor_mensal"`
	TipoCobertura   string              `json:"tipo_cobertura"`
	RedeCredenciada string              `json:"rede_credenciada"`
	Carencia        string              `json:"carencia"`
	Beneficios      []string            `json:"beneficios"`
	Link            string              `json:"link"`
}

// TrindadeGateway implements interfaces.IPricingGateway against the Trindade
// Tecnologia quote API. One attempt per call, no retries.
type TrindadeGateway struct {
	apiKey     string
	httpClient *resty.Client
}

var _ interfaces.IPricingGateway = (*TrindadeGateway)(nil)

func NewTrindadeGateway(baseURL, apiKey string, timeout time.Duration) *TrindadeGateway {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)
	return &TrindadeGateway{apiKey: strings.TrimSpace(apiKey), httpClient: client}
}

func (g *TrindadeGateway) FetchQuotes(ctx context.Context, profile entities.CustomerProfile) ([]entities.PlanQuote, error) {
	if g == nil || g.apiKey == "" {
		return nil, interfaces.ErrPricingNotConfigured
	}

	ctx, span := pricingTracer.Start(ctx, "pricing.fetch_quotes")
	defer span.End()
	span.SetAttributes(
		attribute.String("pricing.plan_type", string(profile.PlanType)),
		attribute.Int("pricing.household_size", profile.EffectiveHouseholdSize()),
	)

	quotes, err := g.fetch(ctx, profile)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "pricing api failed")
		return nil, err
	}
	span.SetAttributes(attribute.Int("pricing.quotes", len(quotes)))
	return quotes, nil
}

func (g *TrindadeGateway) fetch(ctx context.Context, profile entities.CustomerProfile) ([]entities.PlanQuote, error) {
	dependents := profile.DependentAges
	if dependents == nil {
		dependents = []int{}
	}

	resp, err := g.httpClient.R().
		SetContext(ctx).
		SetAuthToken(g.apiKey).
		SetBody(quoteRequest{
			Nome:              profile.Name,
			Idade:             profile.Age,
			Telefone:          profile.Phone,
			Email:             profile.Email,
			Cidade:            profile.City,
			Estado:            profile.State,
			TipoCobertura:     string(profile.PlanType),
			QtdPessoas:        profile.EffectiveHouseholdSize(),
			IdadesDependentes: dependents,
		}).
		Post(quotePath)
	if err != nil {
		return nil, fmt.Errorf("pricing: request failed: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("pricing: unexpected status %d: %s", resp.StatusCode(), resp.String())
	}

	var body quoteResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("pricing: invalid response body: %w", err)
	}
	return formatQuotes(body.Planos)
}

// formatQuotes maps the API plan list into PlanQuote values. Missing fields
// become zero values; benefits default to an empty list.
func formatQuotes(items []planItem) ([]entities.PlanQuote, error) {
	quotes := make([]entities.PlanQuote, 0, len(items))
	for i, it := range items {
		price := decimal.Zero
		if it.ValorMensal.Valid {
			price = it.ValorMensal.Decimal
		}
		if price.IsNegative() {
			return nil, fmt.Errorf("pricing: plan %d has negative monthly price %s", i, price)
		}
		benefits := it.Beneficios
		if benefits == nil {
			benefits = []string{}
		}
		quotes = append(quotes, entities.PlanQuote{
			Insurer:         it.Operadora,
			PlanName:        it.NomePlano,
			MonthlyPrice:    price.InexactFloat64(),
			CoverageScope:   it.TipoCobertura,
			ProviderNetwork: it.RedeCredenciada,
			WaitingPeriod:   it.Carencia,
			Benefits:        benefits,
			ContractLink:    it.Link,
		})
	}
	return quotes, nil
}
