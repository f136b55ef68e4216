package llm

import (
	"context"
	"cotacao_ia/internal/domain/entities"
	"cotacao_ia/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

// FallbackClient tries the primary provider and, on failure, the fallback.
// A single attempt is made against each.
type FallbackClient struct {
	primary  interfaces.ICompletionClient
	fallback interfaces.ICompletionClient
}

var _ interfaces.ICompletionClient = (*FallbackClient)(nil)

func NewFallbackClient(primary, fallback interfaces.ICompletionClient) *FallbackClient {
	return &FallbackClient{primary: primary, fallback: fallback}
}

func (c *FallbackClient) Complete(ctx context.Context, req entities.CompletionRequest) (string, error) {
	text, err := c.primary.Complete(ctx, req)
	if err == nil {
		return text, nil
	}
	log.Warn().Err(err).Bool("fallback_available", c.fallback != nil).Msg("[chat][llm] primary provider failed")
	if c.fallback == nil {
		return "", err
	}

	text, fallbackErr := c.fallback.Complete(ctx, req)
	if fallbackErr != nil {
		log.Error().Err(fallbackErr).AnErr("primary_err", err).Msg("[chat][llm] fallback provider also failed")
		return "", fallbackErr
	}
	log.Info().Msg("[chat][llm] fallback provider succeeded")
	return text, nil
}
