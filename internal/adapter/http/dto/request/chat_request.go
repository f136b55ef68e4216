package request

import "cotacao_ia/internal/domain/entities"

type ChatTurnRequest struct {
	Role    string `json:"role" binding:"required,oneof=system user assistant"`
	Content string `json:"content"`
}

// ChatRequest is one chat turn. The caller resupplies the whole history on
// every call; conversation_id is optional.
type ChatRequest struct {
	ConversationID      string            `json:"conversation_id"`
	Message             string            `json:"message" binding:"required"`
	ConversationHistory []ChatTurnRequest `json:"conversation_history" binding:"omitempty,dive"`
}

func (r ChatRequest) ToInput() entities.ChatInput {
	history := make([]entities.ConversationTurn, 0, len(r.ConversationHistory))
	for _, t := range r.ConversationHistory {
		history = append(history, entities.ConversationTurn{Role: entities.Role(t.Role), Content: t.Content})
	}
	return entities.ChatInput{
		ConversationID: r.ConversationID,
		Message:        r.Message,
		History:        history,
	}
}
