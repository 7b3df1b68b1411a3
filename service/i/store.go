package i

import (
	"context"

	"github.com/beka-birhanu/maze-arena/game"
	"github.com/google/uuid"
)

// GameStore keeps issued games for a limited time.
type GameStore interface {
	// Save stores a new game, replacing any game with the same ID.
	Save(ctx context.Context, g *game.Game) error

	// Update overwrites an existing game without extending its lifetime.
	Update(ctx context.Context, g *game.Game) error

	// ByID returns game.ErrNotFound when the game is unknown or expired.
	ByID(ctx context.Context, id uuid.UUID) (*game.Game, error)

	// Lock acquires an exclusive lock on the game and returns the function
	// releasing it.
	Lock(ctx context.Context, id uuid.UUID) (func() error, error)
}

// Leaderboard ranks players by the fewest steps of any solved run.
type Leaderboard interface {
	// Submit records steps for the player, keeping the lowest value seen.
	Submit(ctx context.Context, playerID uuid.UUID, steps int) error
	// Top returns up to limit entries ordered from best to worst.
	Top(ctx context.Context, limit int64) ([]game.LeaderboardEntry, error)
}
