package i

import (
	"context"

	"github.com/beka-birhanu/maze-arena/game"
	"github.com/beka-birhanu/maze-arena/maze"
	"github.com/google/uuid"
)

// Arena issues mazes to players and judges their recorded runs.
type Arena interface {
	NewGame(ctx context.Context, playerID uuid.UUID, level int) (*game.Game, error)
	Game(ctx context.Context, playerID, gameID uuid.UUID) (*game.Game, error)
	CheckMove(ctx context.Context, playerID, gameID uuid.UUID, pos maze.Position, dir maze.Direction) (bool, maze.Position, error)
	Attempt(ctx context.Context, playerID, gameID uuid.UUID, moves []maze.Direction) (*game.Attempt, maze.Result, error)
	Stats(ctx context.Context, playerID uuid.UUID) (game.Stats, error)
	Leaderboard(ctx context.Context, limit int64) ([]game.LeaderboardEntry, error)
}
