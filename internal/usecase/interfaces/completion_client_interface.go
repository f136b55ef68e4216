package interfaces

import (
	"context"
	"cotacao_ia/internal/domain/entities"
)

// ICompletionClient abstracts a text-completion provider (OpenAI, Gemini).
//
// It receives the role-tagged transcript with the system prompt first and
// returns the generated reply text.
type ICompletionClient interface {
	Complete(ctx context.Context, req entities.CompletionRequest) (string, error)
}
