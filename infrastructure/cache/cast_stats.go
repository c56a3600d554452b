package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"jobcast/domain/repository"
)

// CastStats keeps webhook-driven counters in Redis: reaction tallies per cast,
// follower deltas per account, and the set of job-related casts. All methods
// are no-ops when constructed with a nil client.
type CastStats struct {
	client *redis.Client
}

func NewCastStats(client *redis.Client) repository.ICastStats {
	return &CastStats{client: client}
}

func (s *CastStats) IncrementReaction(ctx context.Context, castHash, reactionType string) (int64, error) {
	if s.client == nil {
		return 0, nil
	}
	return s.client.Incr(ctx, fmt.Sprintf("cast:%s:%ss", castHash, reactionType)).Result()
}

func (s *CastStats) MarkJobRelatedCast(ctx context.Context, castHash string) error {
	if s.client == nil {
		return nil
	}
	return s.client.SAdd(ctx, "casts:job-related", castHash).Err()
}

func (s *CastStats) IncrementFollowers(ctx context.Context, fid int64) error {
	if s.client == nil {
		return nil
	}
	return s.client.Incr(ctx, fmt.Sprintf("fid:%d:followers", fid)).Err()
}

func (s *CastStats) InvalidateUser(ctx context.Context, fid int64) error {
	if s.client == nil {
		return nil
	}
	return s.client.Del(ctx, fmt.Sprintf("user:%d", fid)).Err()
}
