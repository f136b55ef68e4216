package llm

import (
	"context"
	"cotacao_ia/internal/domain/entities"
	"cotacao_ia/internal/usecase/interfaces"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient implements interfaces.ICompletionClient using Google's Gemini API.
// It is wired as the fallback provider.
type GeminiClient struct {
	client  *genai.Client
	modelID string
}

var _ interfaces.ICompletionClient = (*GeminiClient)(nil)

func NewGeminiClient(ctx context.Context, apiKey, modelID string) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("llm: gemini api key is required")
	}
	if strings.TrimSpace(modelID) == "" {
		modelID = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("llm: failed to create gemini client: %w", err)
	}
	return &GeminiClient{client: client, modelID: modelID}, nil
}

// Complete ignores req.Model: the OpenAI model name is meaningless to Gemini.
func (c *GeminiClient) Complete(ctx context.Context, req entities.CompletionRequest) (string, error) {
	system, history, last, err := splitForGemini(req.Messages)
	if err != nil {
		return "", err
	}

	model := c.client.GenerativeModel(c.modelID)
	if req.Temperature >= 0 {
		model.SetTemperature(req.Temperature)
	}
	if req.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(req.MaxTokens))
	}
	if system != "" {
		model.SystemInstruction = genai.NewUserContent(genai.Text(system))
	}

	cs := model.StartChat()
	cs.History = history

	resp, err := cs.SendMessage(ctx, genai.Text(last))
	if err != nil {
		return "", fmt.Errorf("llm: gemini completion failed: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return "", errors.New("llm: gemini returned no candidates")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errors.New("llm: gemini returned empty content")
	}

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}
	return strings.TrimSpace(text.String()), nil
}

// splitForGemini moves system turns into the system instruction, maps the
// remaining turns to chat history and returns the final user text separately.
func splitForGemini(turns []entities.ConversationTurn) (string, []*genai.Content, string, error) {
	var system []string
	var rest []entities.ConversationTurn
	for _, t := range turns {
		if strings.TrimSpace(t.Content) == "" {
			continue
		}
		if t.Role == entities.RoleSystem {
			system = append(system, t.Content)
			continue
		}
		rest = append(rest, t)
	}
	if len(rest) == 0 {
		return "", nil, "", errors.New("llm: gemini requires at least one message")
	}

	history := make([]*genai.Content, 0, len(rest)-1)
	for _, t := range rest[:len(rest)-1] {
		role := "user"
		if t.Role == entities.RoleAssistant {
			role = "model"
		}
		history = append(history, &genai.Content{Role: role, Parts: []genai.Part{genai.Text(t.Content)}})
	}
	return strings.Join(system, "\n\n"), history, rest[len(rest)-1].Content, nil
}

func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}
