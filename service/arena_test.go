package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/beka-birhanu/maze-arena/game"
	"github.com/beka-birhanu/maze-arena/identity"
	"github.com/beka-birhanu/maze-arena/maze"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type arenaFixture struct {
	arena       *Arena
	games       *memGameStore
	attempts    *memAttempts
	leaderboard *memLeaderboard
	users       *memUsers
}

func newArenaFixture(t *testing.T) *arenaFixture {
	t.Helper()
	f := &arenaFixture{
		games:       newMemGameStore(),
		attempts:    &memAttempts{},
		leaderboard: newMemLeaderboard(),
		users:       newMemUsers(),
	}

	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	arena, err := NewArena(ArenaConfig{
		Games:       f.games,
		Attempts:    f.attempts,
		Leaderboard: f.leaderboard,
		Users:       f.users,
		Source:      rand.New(rand.NewPCG(1, 2)),
		Logger:      nopLogger{},
		Now:         func() time.Time { return fixed },
	})
	require.NoError(t, err)
	f.arena = arena
	return f
}

func TestNewArenaValidatesConfig(t *testing.T) {
	_, err := NewArena(ArenaConfig{})
	assert.Error(t, err)

	_, err = NewArena(ArenaConfig{
		Games:       newMemGameStore(),
		Attempts:    &memAttempts{},
		Leaderboard: newMemLeaderboard(),
		Users:       newMemUsers(),
		Source:      rand.New(rand.NewPCG(1, 2)),
		Logger:      nopLogger{},
		Bounds:      maze.Bounds{Min: 10, Max: 5},
	})
	assert.Error(t, err)
}

func TestNewGame(t *testing.T) {
	f := newArenaFixture(t)
	player := uuid.New()

	g, err := f.arena.NewGame(context.Background(), player, 10)
	require.NoError(t, err)

	assert.Equal(t, player, g.PlayerID)
	assert.Equal(t, 10, g.Level)
	assert.Equal(t, 15, g.Maze.Width)
	assert.Equal(t, 15, g.Maze.Height)
	assert.NoError(t, g.Maze.Validate())
	assert.Greater(t, g.Par, 0)
	assert.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), g.CreatedAt)

	stored, err := f.games.ByID(context.Background(), g.ID)
	require.NoError(t, err)
	assert.Equal(t, g.Maze, stored.Maze)

	for _, level := range []int{-1, 11} {
		_, err := f.arena.NewGame(context.Background(), player, level)
		assert.ErrorIs(t, err, ErrInvalidLevel)
	}
}

func TestNewGameStoreFailure(t *testing.T) {
	f := newArenaFixture(t)
	f.games.saveErr = errors.New("redis down")

	_, err := f.arena.NewGame(context.Background(), uuid.New(), 3)
	assert.EqualError(t, err, "redis down")
}

func TestGameOwnership(t *testing.T) {
	f := newArenaFixture(t)
	owner := uuid.New()
	g, err := f.arena.NewGame(context.Background(), owner, 2)
	require.NoError(t, err)

	_, err = f.arena.Game(context.Background(), uuid.New(), g.ID)
	assert.ErrorIs(t, err, ErrNotGameOwner)

	_, err = f.arena.Game(context.Background(), owner, uuid.New())
	assert.ErrorIs(t, err, game.ErrNotFound)
}

func TestCheckMove(t *testing.T) {
	f := newArenaFixture(t)
	owner := uuid.New()
	g, err := f.arena.NewGame(context.Background(), owner, 10)
	require.NoError(t, err)

	for _, d := range maze.Directions {
		valid, next, err := f.arena.CheckMove(context.Background(), owner, g.ID, g.Maze.Start, d)
		require.NoError(t, err)
		assert.Equal(t, g.Maze.IsValidMove(g.Maze.Start, d), valid)
		if valid {
			assert.Equal(t, maze.NextPosition(g.Maze.Start, d), next)
		} else {
			assert.Equal(t, g.Maze.Start, next)
		}
	}

	outside := maze.Position{X: -1}
	valid, next, err := f.arena.CheckMove(context.Background(), owner, g.ID, outside, maze.Up)
	require.NoError(t, err)
	assert.False(t, valid)
	assert.Equal(t, outside, next)
}

func TestAttemptLogsCarryGameAndPlayer(t *testing.T) {
	ctx := context.Background()
	logger := newRecordingLogger()
	arena, err := NewArena(ArenaConfig{
		Games:       newMemGameStore(),
		Attempts:    &memAttempts{},
		Leaderboard: newMemLeaderboard(),
		Users:       newMemUsers(),
		Source:      rand.New(rand.NewPCG(5, 6)),
		Logger:      logger,
	})
	require.NoError(t, err)

	owner := uuid.New()
	g, err := arena.NewGame(ctx, owner, 3)
	require.NoError(t, err)

	_, _, err = arena.Attempt(ctx, owner, g.ID, []maze.Direction{maze.Up})
	require.NoError(t, err)

	entries := *logger.entries
	require.NotEmpty(t, entries)
	last := entries[len(entries)-1]
	assert.Equal(t, "info", last.level)
	assert.Contains(t, last.msg, "attempt 1")
	assert.Equal(t, g.ID, last.fields["game"])
	assert.Equal(t, owner, last.fields["player"])
}

func TestAttempt(t *testing.T) {
	ctx := context.Background()
	f := newArenaFixture(t)
	owner := uuid.New()
	g, err := f.arena.NewGame(ctx, owner, 10)
	require.NoError(t, err)

	solution, ok := g.Maze.Solution()
	require.True(t, ok)
	require.Equal(t, g.Par, len(solution))

	t.Run("partial run fails", func(t *testing.T) {
		attempt, result, err := f.arena.Attempt(ctx, owner, g.ID, solution[:1])
		require.NoError(t, err)
		assert.Equal(t, maze.OutOfMoves, result.Outcome)
		assert.Equal(t, maze.OutOfMoves, attempt.Outcome)
		assert.Equal(t, 1, attempt.Number)
		assert.Empty(t, f.leaderboard.best)
	})

	t.Run("solution succeeds", func(t *testing.T) {
		attempt, result, err := f.arena.Attempt(ctx, owner, g.ID, solution)
		require.NoError(t, err)
		assert.True(t, result.Success())
		assert.Equal(t, 2, attempt.Number)
		assert.Equal(t, len(solution), attempt.Steps)
		assert.Equal(t, len(solution), f.leaderboard.best[owner])

		stored, err := f.games.ByID(ctx, g.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, stored.Attempts)
		assert.True(t, stored.Solved)
	})

	t.Run("stats count both attempts", func(t *testing.T) {
		stats, err := f.arena.Stats(ctx, owner)
		require.NoError(t, err)
		assert.Equal(t, game.Stats{Attempts: 2, Successes: 1, Failures: 1}, stats)
	})

	t.Run("rejected input", func(t *testing.T) {
		_, _, err := f.arena.Attempt(ctx, owner, g.ID, nil)
		assert.ErrorIs(t, err, ErrNoMoves)

		_, _, err = f.arena.Attempt(ctx, owner, g.ID, make([]maze.Direction, maxMovesPerAttempt+1))
		assert.ErrorIs(t, err, ErrTooManyMoves)

		_, _, err = f.arena.Attempt(ctx, uuid.New(), g.ID, solution)
		assert.ErrorIs(t, err, ErrNotGameOwner)

		_, _, err = f.arena.Attempt(ctx, owner, uuid.New(), solution)
		assert.ErrorIs(t, err, game.ErrNotFound)
	})

	assert.Len(t, f.attempts.saved, 2)
	// empty and oversized move lists are rejected before locking
	assert.Equal(t, 4, f.games.locks)
}

func TestLeaderboard(t *testing.T) {
	ctx := context.Background()
	f := newArenaFixture(t)

	alice := &identity.User{ID: uuid.New(), Username: "alice"}
	require.NoError(t, f.users.Save(ctx, alice))
	ghost := uuid.New()

	require.NoError(t, f.leaderboard.Submit(ctx, alice.ID, 30))
	require.NoError(t, f.leaderboard.Submit(ctx, ghost, 12))
	require.NoError(t, f.leaderboard.Submit(ctx, alice.ID, 40))

	entries, err := f.arena.Leaderboard(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, game.LeaderboardEntry{Rank: 1, PlayerID: ghost, Steps: 12}, entries[0])
	assert.Equal(t, game.LeaderboardEntry{Rank: 2, PlayerID: alice.ID, Username: "alice", Steps: 30}, entries[1])

	entries, err = f.arena.Leaderboard(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
