package repository

import (
	"context"
	"sync"
	"time"

	"cotacao_ia/internal/usecase/interfaces"
)

// LeadMarkerMemoryRepository is the single-instance marker store. Markers are
// lost on restart.
type LeadMarkerMemoryRepository struct {
	mu      sync.Mutex
	ttl     time.Duration
	expires map[string]time.Time
	now     func() time.Time
}

var _ interfaces.ILeadMarkerRepository = (*LeadMarkerMemoryRepository)(nil)

func NewLeadMarkerMemoryRepository(ttl time.Duration) *LeadMarkerMemoryRepository {
	return &LeadMarkerMemoryRepository{ttl: ttl, expires: make(map[string]time.Time), now: time.Now}
}

func (r *LeadMarkerMemoryRepository) MarkRecorded(_ context.Context, conversationID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if exp, ok := r.expires[conversationID]; ok && now.Before(exp) {
		return false, nil
	}
	r.pruneLocked(now)
	r.expires[conversationID] = now.Add(r.ttl)
	return true, nil
}

func (r *LeadMarkerMemoryRepository) pruneLocked(now time.Time) {
	for id, exp := range r.expires {
		if !now.Before(exp) {
			delete(r.expires, id)
		}
	}
}
