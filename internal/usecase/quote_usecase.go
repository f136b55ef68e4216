package usecase

import (
	"context"
	"cotacao_ia/internal/domain/entities"
	"cotacao_ia/internal/domain/pricing"
	"cotacao_ia/internal/observability/metrics"
	"cotacao_ia/internal/usecase/interfaces"
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
)

var ErrPricingPanic = errors.New("pricing gateway panicked")

const (
	InterestMessage        = "Interesse registrado! Nossa equipe entrará em contato em breve."
	InterestProtocolPrefix = "VID"
	InterestDefaultStamp   = "000000"
	interestTimestampField = "timestamp"
)

// IQuoteUseCase produces health plan quotes and registers customer interest.
//
// GetQuotes always yields a quote list: the external pricing API is tried first
// and any failure falls back to the local simulation, tagged by cause.
type IQuoteUseCase interface {
	GetQuotes(ctx context.Context, profile entities.CustomerProfile) entities.QuoteResult
	RegisterInterest(ctx context.Context, payload map[string]any) entities.InterestAck
}

type QuoteUseCase struct {
	gateway interfaces.IPricingGateway
	metrics *metrics.QuoteMetrics
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

// NewQuoteUseCase wires the orchestrator. A nil gateway means the pricing API
// is not configured.
func NewQuoteUseCase(gateway interfaces.IPricingGateway, m *metrics.QuoteMetrics) *QuoteUseCase {
	return &QuoteUseCase{gateway: gateway, metrics: m}
}

func (u *QuoteUseCase) GetQuotes(ctx context.Context, profile entities.CustomerProfile) (result entities.QuoteResult) {
	profile.HouseholdSize = profile.EffectiveHouseholdSize()
	defer func() { u.metrics.ObserveQuote(string(result.Source)) }()

	if u.gateway == nil {
		return simulatedResult(profile, entities.QuoteSourceSimulation, nil)
	}

	quotes, err := u.fetchQuotes(ctx, profile)
	switch {
	case errors.Is(err, interfaces.ErrPricingNotConfigured):
		log.Debug().Msg("[quote][usecase] pricing api not configured; simulating")
		return simulatedResult(profile, entities.QuoteSourceSimulation, nil)
	case err != nil:
		log.Warn().Err(err).Int("age", profile.Age).Msg("[quote][usecase] pricing api failed; simulating")
		return simulatedResult(profile, entities.QuoteSourceSimulationAPIError, err)
	}

	if quotes == nil {
		quotes = []entities.PlanQuote{}
	}
	log.Info().Int("quotes", len(quotes)).Msg("[quote][usecase] quotes from pricing api")
	return entities.QuoteResult{Quotes: quotes, Source: entities.QuoteSourceExternalAPI}
}

func (u *QuoteUseCase) fetchQuotes(ctx context.Context, profile entities.CustomerProfile) (quotes []entities.PlanQuote, err error) {
	defer func() {
		if r := recover(); r != nil {
			quotes = nil
			err = fmt.Errorf("%w: %v", ErrPricingPanic, r)
		}
	}()
	return u.gateway.FetchQuotes(ctx, profile)
}

func simulatedResult(profile entities.CustomerProfile, source entities.QuoteSource, cause error) entities.QuoteResult {
	return entities.QuoteResult{
		Quotes:      pricing.Simulate(profile),
		Source:      source,
		FallbackErr: cause,
	}
}

// RegisterInterest acknowledges interest in a plan. Nothing is persisted; the
// protocol is the fixed prefix followed by the caller's timestamp.
func (u *QuoteUseCase) RegisterInterest(ctx context.Context, payload map[string]any) entities.InterestAck {
	protocol := InterestProtocolPrefix + interestStamp(payload[interestTimestampField])
	log.Info().Str("protocol", protocol).Msg("[quote][usecase] interest registered")
	return entities.InterestAck{Message: InterestMessage, Protocol: protocol}
}

func interestStamp(v any) string {
	switch t := v.(type) {
	case nil:
		return InterestDefaultStamp
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
