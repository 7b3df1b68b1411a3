package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/beka-birhanu/maze-arena/game"
	"github.com/beka-birhanu/maze-arena/maze"
	"github.com/beka-birhanu/maze-arena/service/i"
	"github.com/google/uuid"
)

const (
	maxMovesPerAttempt = 4096

	defaultLeaderboardSize = 10
	maxLeaderboardSize     = 100
)

var (
	_ i.Arena = &Arena{}

	ErrInvalidLevel = fmt.Errorf("level must be between %d and %d", maze.MinLevel, maze.MaxLevel)
	ErrNoMoves      = errors.New("no moves recorded")
	ErrTooManyMoves = fmt.Errorf("more than %d moves recorded", maxMovesPerAttempt)
	ErrNotGameOwner = errors.New("game belongs to another player")
)

// Arena issues mazes and judges replays of recorded moves against them.
type Arena struct {
	games       i.GameStore
	attempts    i.AttemptRepo
	leaderboard i.Leaderboard
	users       i.UserRepo
	logger      i.Logger
	now         func() time.Time

	genMu     sync.Mutex // guards generator and its source
	generator *maze.Generator
}

// ArenaConfig holds the dependencies of an Arena.
type ArenaConfig struct {
	Games       i.GameStore
	Attempts    i.AttemptRepo
	Leaderboard i.Leaderboard
	Users       i.UserRepo
	Source      maze.Source
	Bounds      maze.Bounds // zero value means maze.DefaultBounds
	Logger      i.Logger
	Now         func() time.Time
}

// NewArena validates the configuration and creates an Arena.
func NewArena(c ArenaConfig) (*Arena, error) {
	if c.Games == nil || c.Attempts == nil || c.Leaderboard == nil || c.Users == nil {
		return nil, errors.New("arena requires game store, attempt repo, leaderboard and user repo")
	}
	if c.Source == nil {
		return nil, errors.New("arena requires a random source")
	}
	if c.Logger == nil {
		return nil, errors.New("arena requires a logger")
	}

	generator := maze.NewGenerator(c.Source)
	if c.Bounds != (maze.Bounds{}) {
		if c.Bounds.Min < 1 || c.Bounds.Max < c.Bounds.Min {
			return nil, fmt.Errorf("invalid maze bounds %d..%d", c.Bounds.Min, c.Bounds.Max)
		}
		generator.Bounds = c.Bounds
	}

	now := c.Now
	if now == nil {
		now = time.Now
	}

	return &Arena{
		games:       c.Games,
		attempts:    c.Attempts,
		leaderboard: c.Leaderboard,
		users:       c.Users,
		logger:      c.Logger,
		now:         now,
		generator:   generator,
	}, nil
}

// NewGame carves a maze for the level and stores it for the player.
func (a *Arena) NewGame(ctx context.Context, playerID uuid.UUID, level int) (*game.Game, error) {
	if level < maze.MinLevel || level > maze.MaxLevel {
		return nil, ErrInvalidLevel
	}

	a.genMu.Lock()
	m := a.generator.GenerateLevel(level)
	a.genMu.Unlock()

	par := -1
	if solution, ok := m.Solution(); ok {
		par = len(solution)
	} else {
		a.logger.Warning(fmt.Sprintf("no route between start %v and end %v", m.Start, m.End))
	}

	g := &game.Game{
		ID:        uuid.New(),
		PlayerID:  playerID,
		Level:     level,
		Par:       par,
		Maze:      m,
		CreatedAt: a.now().UTC(),
	}

	if err := a.games.Save(ctx, g); err != nil {
		a.logger.Error(fmt.Sprintf("saving game %s: %s", g.ID, err))
		return nil, err
	}

	a.logger.Info(fmt.Sprintf("created %dx%d game %s at level %d for player %s", m.Width, m.Height, g.ID, level, playerID))
	return g, nil
}

// Game returns the player's game.
func (a *Arena) Game(ctx context.Context, playerID, gameID uuid.UUID) (*game.Game, error) {
	g, err := a.games.ByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if g.PlayerID != playerID {
		return nil, ErrNotGameOwner
	}
	return g, nil
}

// CheckMove reports whether a single step is legal and where it leads.
// An illegal step, including one from outside the maze, leaves the
// position unchanged.
func (a *Arena) CheckMove(ctx context.Context, playerID, gameID uuid.UUID, pos maze.Position, dir maze.Direction) (bool, maze.Position, error) {
	g, err := a.Game(ctx, playerID, gameID)
	if err != nil {
		return false, pos, err
	}
	if !g.Maze.IsValidMove(pos, dir) {
		return false, pos, nil
	}
	return true, maze.NextPosition(pos, dir), nil
}

// Attempt replays moves from the start of the game, records the attempt and
// updates the leaderboard when the end is reached. Attempts on the same
// game are serialised through the store's lock.
func (a *Arena) Attempt(ctx context.Context, playerID, gameID uuid.UUID, moves []maze.Direction) (*game.Attempt, maze.Result, error) {
	if len(moves) == 0 {
		return nil, maze.Result{}, ErrNoMoves
	}
	if len(moves) > maxMovesPerAttempt {
		return nil, maze.Result{}, ErrTooManyMoves
	}

	log := a.logger.With("game", gameID).With("player", playerID)

	unlock, err := a.games.Lock(ctx, gameID)
	if err != nil {
		log.Error(fmt.Sprintf("locking game: %s", err))
		return nil, maze.Result{}, err
	}
	defer func() {
		if err := unlock(); err != nil {
			log.Warning(fmt.Sprintf("unlocking game: %s", err))
		}
	}()

	g, err := a.Game(ctx, playerID, gameID)
	if err != nil {
		return nil, maze.Result{}, err
	}

	result := g.Maze.Replay(moves)

	g.Attempts++
	g.Solved = g.Solved || result.Success()
	attempt := &game.Attempt{
		ID:        uuid.New(),
		GameID:    g.ID,
		PlayerID:  playerID,
		Number:    g.Attempts,
		Level:     g.Level,
		Moves:     moves,
		Outcome:   result.Outcome,
		Steps:     result.Steps,
		CreatedAt: a.now().UTC(),
	}

	if err := a.attempts.Save(ctx, attempt); err != nil {
		log.Error(fmt.Sprintf("saving attempt: %s", err))
		return nil, maze.Result{}, err
	}

	if err := a.games.Update(ctx, g); err != nil {
		log.Warning(fmt.Sprintf("updating game: %s", err))
	}

	if result.Success() {
		if err := a.leaderboard.Submit(ctx, playerID, result.Steps); err != nil {
			log.Warning(fmt.Sprintf("submitting %d steps: %s", result.Steps, err))
		}
	}

	log.Info(fmt.Sprintf("attempt %d: %s after %d steps", attempt.Number, result.Outcome, result.Steps))
	return attempt, result, nil
}

// Stats returns the player's attempt counts.
func (a *Arena) Stats(ctx context.Context, playerID uuid.UUID) (game.Stats, error) {
	return a.attempts.Stats(ctx, playerID)
}

// Leaderboard returns the best players, resolving their usernames where
// possible. limit is clamped to [1, 100]; zero or less selects 10.
func (a *Arena) Leaderboard(ctx context.Context, limit int64) ([]game.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = defaultLeaderboardSize
	}
	limit = min(limit, maxLeaderboardSize)

	entries, err := a.leaderboard.Top(ctx, limit)
	if err != nil {
		a.logger.Error(fmt.Sprintf("reading leaderboard: %s", err))
		return nil, err
	}

	for idx := range entries {
		user, err := a.users.ByID(ctx, entries[idx].PlayerID)
		if err != nil {
			a.logger.Warning(fmt.Sprintf("resolving leaderboard player %s: %s", entries[idx].PlayerID, err))
			continue
		}
		entries[idx].Username = user.Username
	}

	return entries, nil
}
