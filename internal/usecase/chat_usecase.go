package usecase

import (
	"context"
	"cotacao_ia/internal/domain/entities"
	"cotacao_ia/internal/domain/leadparse"
	"cotacao_ia/internal/observability/metrics"
	"cotacao_ia/internal/usecase/interfaces"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrEmptyMessage            = errors.New("message must not be empty")
	ErrInvalidTurnRole         = errors.New("invalid conversation turn role")
	ErrCompletionNotConfigured = errors.New("chat completion provider not configured")
	ErrCompletionFailed        = errors.New("chat completion failed")
)

// ConsultantPrompt is the system prompt that opens every conversation.
const ConsultantPrompt = `Você é um consultor especialista em seguros de saúde da Vidda Seguros Saúde.

Conduza uma conversa natural e consultiva para coletar as seguintes informações:
- Nome do cliente
- Idade
- Telefone
- Email
- Cidade/Estado/Bairro
- Se o plano é somente para a pessoa, família ou empresa
- Caso seja para família e empresa perguntar para quantas pessoas e as idades

IMPORTANTE:
- Seja natural, empático e consultivo
- Faça UMA pergunta por vez
- Use linguagem amigável e profissional
- Quando tiver todas as informações, ofereça para buscar cotações reais
- Não use scripts rígidos, seja conversacional
- NÃO forneça sugestões de resposta, deixe o cliente responder livremente

Responda sempre em português brasileiro.`

var conversationNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://viddasegurossaude.com.br/cotacao-ia/conversation"))

// ChatSettings are the sampling parameters sent with every completion.
type ChatSettings struct {
	Model       string
	MaxTokens   int
	Temperature float32
}

// IChatUseCase runs one turn of the lead-intake conversation.
//
// Each call is stateless: the caller resupplies the full history. When the
// transcript first becomes ready for quoting the lead is recorded as a side
// effect; later ready turns of the same conversation are de-duplicated.
type IChatUseCase interface {
	Reply(ctx context.Context, in entities.ChatInput) (entities.ChatReply, error)
}

type ChatUseCase struct {
	completion interfaces.ICompletionClient
	leads      ILeadRecorderUseCase
	settings   ChatSettings
	metrics    *metrics.QuoteMetrics
}

var _ IChatUseCase = (*ChatUseCase)(nil)

func NewChatUseCase(completion interfaces.ICompletionClient, leads ILeadRecorderUseCase, settings ChatSettings, m *metrics.QuoteMetrics) *ChatUseCase {
	return &ChatUseCase{completion: completion, leads: leads, settings: settings, metrics: m}
}

func (u *ChatUseCase) Reply(ctx context.Context, in entities.ChatInput) (entities.ChatReply, error) {
	if strings.TrimSpace(in.Message) == "" {
		return entities.ChatReply{}, ErrEmptyMessage
	}
	for _, turn := range in.History {
		switch turn.Role {
		case entities.RoleSystem, entities.RoleUser, entities.RoleAssistant:
		default:
			return entities.ChatReply{}, fmt.Errorf("%w: %q", ErrInvalidTurnRole, turn.Role)
		}
	}
	if u.completion == nil {
		log.Error().Msg("[chat][usecase] completion provider not configured")
		return entities.ChatReply{}, ErrCompletionNotConfigured
	}

	transcript := make([]entities.ConversationTurn, 0, len(in.History)+1)
	transcript = append(transcript, in.History...)
	transcript = append(transcript, entities.ConversationTurn{Role: entities.RoleUser, Content: in.Message})

	conversationID := strings.TrimSpace(in.ConversationID)
	if conversationID == "" {
		conversationID = DeriveConversationID(transcript)
	}

	messages := make([]entities.ConversationTurn, 0, len(transcript)+1)
	messages = append(messages, entities.ConversationTurn{Role: entities.RoleSystem, Content: ConsultantPrompt})
	messages = append(messages, transcript...)

	started := time.Now()
	text, err := u.completion.Complete(ctx, entities.CompletionRequest{
		Model:       u.settings.Model,
		Messages:    messages,
		MaxTokens:   u.settings.MaxTokens,
		Temperature: u.settings.Temperature,
	})
	u.metrics.ObserveCompletionLatency(time.Since(started).Seconds())
	if err != nil {
		log.Error().Err(err).Str("conversation_id", conversationID).Msg("[chat][usecase] completion failed")
		return entities.ChatReply{}, fmt.Errorf("%w: %v", ErrCompletionFailed, err)
	}

	ready := leadparse.IsReadyForQuote(transcript)
	u.metrics.ObserveChat(ready)
	if ready && u.leads != nil {
		outcome := u.leads.Record(ctx, conversationID, transcript)
		log.Info().
			Str("conversation_id", conversationID).
			Str("outcome", string(outcome)).
			Msg("[chat][usecase] transcript ready for quote")
	}

	return entities.ChatReply{
		ConversationID: conversationID,
		Response:       text,
		Suggestions:    []string{},
		ReadyForQuote:  ready,
	}, nil
}

// DeriveConversationID computes a stable id for callers that do not send one.
//
// The id hashes the user-authored text up to the turn where the transcript
// first became ready (or all of it while not ready yet). Since history only
// grows, every later turn of the same conversation derives the same id.
func DeriveConversationID(turns []entities.ConversationTurn) string {
	end := len(turns)
	for k := 1; k <= len(turns); k++ {
		if turns[k-1].Role != entities.RoleUser {
			continue
		}
		if leadparse.IsReadyForQuote(turns[:k]) {
			end = k
			break
		}
	}
	return uuid.NewSHA1(conversationNamespace, []byte(entities.UserText(turns[:end]))).String()
}
