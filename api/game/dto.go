// Package gameapi exposes maze games over HTTP.
package gameapi

import (
	"time"

	"github.com/beka-birhanu/maze-arena/game"
	"github.com/beka-birhanu/maze-arena/maze"
	"github.com/google/uuid"
)

// NewGameRequest asks for a maze at a difficulty level.
type NewGameRequest struct {
	Level *int `json:"level" binding:"required"`
}

// CheckMoveRequest asks whether a single step is legal.
type CheckMoveRequest struct {
	Position  *maze.Position  `json:"position" binding:"required"`
	Direction *maze.Direction `json:"direction" binding:"required"`
}

// CheckMoveResponse reports the verdict and the resulting position.
type CheckMoveResponse struct {
	Valid bool          `json:"valid"`
	Next  maze.Position `json:"next"`
}

// AttemptRequest carries a recorded move list.
type AttemptRequest struct {
	Moves []maze.Direction `json:"moves" binding:"required"`
}

// AttemptResponse describes a judged attempt.
type AttemptResponse struct {
	AttemptID  uuid.UUID       `json:"attempt_id"`
	Number     int             `json:"number"`
	Outcome    maze.Outcome    `json:"outcome"`
	Success    bool            `json:"success"`
	Steps      int             `json:"steps"`
	Final      maze.Position   `json:"final"`
	Path       []maze.Position `json:"path"`
	FailedMove *int            `json:"failed_move,omitempty"`
}

// GameResponse is the data a client needs to draw and play a maze.
type GameResponse struct {
	ID        uuid.UUID     `json:"id"`
	Level     int           `json:"level"`
	Par       int           `json:"par"`
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	Start     maze.Position `json:"start"`
	End       maze.Position `json:"end"`
	Grid      [][]maze.Cell `json:"grid"`
	Attempts  int           `json:"attempts"`
	Solved    bool          `json:"solved"`
	CreatedAt time.Time     `json:"created_at"`
}

func newGameResponse(g *game.Game) *GameResponse {
	return &GameResponse{
		ID:        g.ID,
		Level:     g.Level,
		Par:       g.Par,
		Width:     g.Maze.Width,
		Height:    g.Maze.Height,
		Start:     g.Maze.Start,
		End:       g.Maze.End,
		Grid:      g.Maze.Grid,
		Attempts:  g.Attempts,
		Solved:    g.Solved,
		CreatedAt: g.CreatedAt,
	}
}

func newAttemptResponse(a *game.Attempt, r maze.Result) *AttemptResponse {
	res := &AttemptResponse{
		AttemptID: a.ID,
		Number:    a.Number,
		Outcome:   r.Outcome,
		Success:   r.Success(),
		Steps:     r.Steps,
		Final:     r.Final,
		Path:      r.Path,
	}
	if r.FailedMove >= 0 {
		failed := r.FailedMove
		res.FailedMove = &failed
	}
	return res
}
