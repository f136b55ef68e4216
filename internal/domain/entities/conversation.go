package entities

import "strings"

// Role tags who authored a conversation turn.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ConversationTurn is a single message of a chat transcript.
//
// The transcript is owned by the caller: every chat request resupplies the full
// history, nothing is kept between requests.
type ConversationTurn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest is what the chat flow hands to a text-completion provider.
type CompletionRequest struct {
	Model       string
	Messages    []ConversationTurn
	MaxTokens   int
	Temperature float32
}

// UserText concatenates the user-authored turns separated by a single space.
func UserText(turns []ConversationTurn) string {
	parts := make([]string, 0, len(turns))
	for _, t := range turns {
		if t.Role == RoleUser {
			parts = append(parts, t.Content)
		}
	}
	return strings.Join(parts, " ")
}

// ChatInput is one inbound chat turn plus the history resupplied by the caller.
// ConversationID is optional; when empty a stable id is derived from the history.
type ChatInput struct {
	ConversationID string
	Message        string
	History        []ConversationTurn
}

// ChatReply is the outcome of one chat turn. Suggestions is always empty.
type ChatReply struct {
	ConversationID string
	Response       string
	Suggestions    []string
	ReadyForQuote  bool
}
