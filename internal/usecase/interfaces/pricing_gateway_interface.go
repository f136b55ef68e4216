package interfaces

import (
	"context"
	"cotacao_ia/internal/domain/entities"
	"errors"
)

// ErrPricingNotConfigured is returned by gateways without an API key.
var ErrPricingNotConfigured = errors.New("pricing api not configured")

// IPricingGateway abstracts the external health plan pricing API.
type IPricingGateway interface {
	FetchQuotes(ctx context.Context, profile entities.CustomerProfile) ([]entities.PlanQuote, error)
}
