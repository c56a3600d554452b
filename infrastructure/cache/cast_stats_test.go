package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Webhook processing must survive a missing Redis; every method degrades to a
// no-op with a nil client.
func TestCastStats_NilClientNoOps(t *testing.T) {
	stats := NewCastStats(nil)
	ctx := context.Background()

	count, err := stats.IncrementReaction(ctx, "0xcast", "like")
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	assert.NoError(t, stats.MarkJobRelatedCast(ctx, "0xcast"))
	assert.NoError(t, stats.IncrementFollowers(ctx, 3621))
	assert.NoError(t, stats.InvalidateUser(ctx, 3621))
}
