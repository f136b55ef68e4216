package interfaces

import "context"

// ILeadMarkerRepository keeps the "lead already recorded" marker per conversation.
//
// MarkRecorded atomically claims the conversation id. It returns true when the
// claim is new and false when the conversation was already recorded.
type ILeadMarkerRepository interface {
	MarkRecorded(ctx context.Context, conversationID string) (bool, error)
}
