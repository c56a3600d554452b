package repository

import "context"

// ICastStats tracks webhook-driven counters. Implementations may be backed by
// Redis or a no-op when no cache is configured.
type ICastStats interface {
	IncrementReaction(ctx context.Context, castHash, reactionType string) (int64, error)
	MarkJobRelatedCast(ctx context.Context, castHash string) error
	IncrementFollowers(ctx context.Context, fid int64) error
	InvalidateUser(ctx context.Context, fid int64) error
}
