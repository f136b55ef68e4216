package repository

import (
	"context"
	"fmt"
	"time"

	"cotacao_ia/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const leadMarkerKeyPrefix = "cotacao:lead-recorded:"

// LeadMarkerRedisRepository keeps the markers as Redis keys set with NX and a TTL.
type LeadMarkerRedisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

var _ interfaces.ILeadMarkerRepository = (*LeadMarkerRedisRepository)(nil)

func NewLeadMarkerRedisRepository(client *redis.Client, ttl time.Duration) *LeadMarkerRedisRepository {
	return &LeadMarkerRedisRepository{client: client, ttl: ttl}
}

func (r *LeadMarkerRedisRepository) MarkRecorded(ctx context.Context, conversationID string) (bool, error) {
	ok, err := r.client.SetNX(ctx, leadMarkerKeyPrefix+conversationID, time.Now().UTC().Format(time.RFC3339), r.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx lead marker: %w", err)
	}
	return ok, nil
}
