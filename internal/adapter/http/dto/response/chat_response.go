package response

import "cotacao_ia/internal/domain/entities"

type ChatResponse struct {
	ConversationID string   `json:"conversation_id"`
	Response       string   `json:"response"`
	Suggestions    []string `json:"suggestions"`
	ReadyForQuote  bool     `json:"ready_for_quote"`
}

func FromChatReply(r entities.ChatReply) ChatResponse {
	suggestions := r.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}
	return ChatResponse{
		ConversationID: r.ConversationID,
		Response:       r.Response,
		Suggestions:    suggestions,
		ReadyForQuote:  r.ReadyForQuote,
	}
}
