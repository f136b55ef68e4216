package llm

import (
	"context"
	"cotacao_ia/internal/domain/entities"
	"cotacao_ia/internal/usecase/interfaces"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIClient implements interfaces.ICompletionClient with the chat completions API.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

var _ interfaces.ICompletionClient = (*OpenAIClient)(nil)

// NewOpenAIClient builds a client for the given key. baseURL is optional and
// points the client at an OpenAI-compatible endpoint.
func NewOpenAIClient(apiKey, baseURL, model string) (*OpenAIClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("llm: openai api key is required")
	}
	cfg := openai.DefaultConfig(apiKey)
	if strings.TrimSpace(baseURL) != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	if strings.TrimSpace(model) == "" {
		model = openai.GPT3Dot5Turbo
	}
	return &OpenAIClient{client: openai.NewClientWithConfig(cfg), model: model}, nil
}

func (c *OpenAIClient) Complete(ctx context.Context, req entities.CompletionRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = c.model
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		if strings.TrimSpace(m.Content) == "" {
			continue
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openAIRole(m.Role),
			Content: m.Content,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("llm: openai completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("llm: openai returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func openAIRole(r entities.Role) string {
	switch r {
	case entities.RoleSystem:
		return openai.ChatMessageRoleSystem
	case entities.RoleAssistant:
		return openai.ChatMessageRoleAssistant
	default:
		return openai.ChatMessageRoleUser
	}
}
