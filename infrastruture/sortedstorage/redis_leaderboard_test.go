package sortedstorage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisLeaderboard(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	board, err := NewRedisLeaderboard(client, "")
	require.NoError(t, err)

	alice, bob, carol := uuid.New(), uuid.New(), uuid.New()
	require.NoError(t, board.Submit(ctx, alice, 40))
	require.NoError(t, board.Submit(ctx, bob, 25))
	require.NoError(t, board.Submit(ctx, carol, 31))

	// only improvements are kept
	require.NoError(t, board.Submit(ctx, alice, 50))
	require.NoError(t, board.Submit(ctx, alice, 20))
	require.NoError(t, board.Submit(ctx, bob, 26))

	assert.Error(t, board.Submit(ctx, carol, 0))

	entries, err := board.Top(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, alice, entries[0].PlayerID)
	assert.Equal(t, 20, entries[0].Steps)
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, bob, entries[1].PlayerID)
	assert.Equal(t, 25, entries[1].Steps)

	entries, err = board.Top(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestNewRedisLeaderboardRequiresClient(t *testing.T) {
	_, err := NewRedisLeaderboard(nil, "board")
	assert.Error(t, err)
}
