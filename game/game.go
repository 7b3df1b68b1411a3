// Package game holds the records the arena keeps about mazes handed to
// players and the attempts made on them.
package game

import (
	"errors"
	"time"

	"github.com/beka-birhanu/maze-arena/maze"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("game not found")

// Game is a maze issued to a single player.
type Game struct {
	ID        uuid.UUID  `json:"id"`
	PlayerID  uuid.UUID  `json:"player_id"`
	Level     int        `json:"level"`
	Par       int        `json:"par"` // length of the shortest route from start to end
	Maze      *maze.Maze `json:"maze"`
	Attempts  int        `json:"attempts"`
	Solved    bool       `json:"solved"`
	CreatedAt time.Time  `json:"created_at"`
}

// Attempt is one replay of a recorded move list against a game.
type Attempt struct {
	ID        uuid.UUID        `json:"id" bson:"_id"`
	GameID    uuid.UUID        `json:"game_id" bson:"gameId"`
	PlayerID  uuid.UUID        `json:"player_id" bson:"playerId"`
	Number    int              `json:"number" bson:"number"`
	Level     int              `json:"level" bson:"level"`
	Moves     []maze.Direction `json:"moves" bson:"moves"`
	Outcome   maze.Outcome     `json:"outcome" bson:"outcome"`
	Steps     int              `json:"steps" bson:"steps"`
	CreatedAt time.Time        `json:"created_at" bson:"createdAt"`
}

// Stats summarises a player's attempts.
type Stats struct {
	Attempts  int64 `json:"attempts"`
	Successes int64 `json:"successes"`
	Failures  int64 `json:"failures"`
}

// NewStats derives the failure count from attempts and successes.
func NewStats(attempts, successes int64) Stats {
	return Stats{
		Attempts:  attempts,
		Successes: successes,
		Failures:  attempts - successes,
	}
}

// LeaderboardEntry is a player's best solved run.
type LeaderboardEntry struct {
	Rank     int       `json:"rank"`
	PlayerID uuid.UUID `json:"player_id"`
	Username string    `json:"username,omitempty"`
	Steps    int       `json:"steps"`
}
