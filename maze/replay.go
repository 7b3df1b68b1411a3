package maze

// Outcome describes how a replayed move sequence ended.
type Outcome string

const (
	// Reached means the end cell was entered. Moves after it are ignored.
	Reached Outcome = "reached"
	// HitWall means a move was blocked by a wall or left the maze.
	HitWall Outcome = "hit_wall"
	// OutOfMoves means every move was legal but the end was never entered.
	OutOfMoves Outcome = "out_of_moves"
)

// Result is the outcome of replaying a move sequence from the start cell.
type Result struct {
	Outcome Outcome    `json:"outcome"`
	Final   Position   `json:"final"`
	Steps   int        `json:"steps"`
	Path    []Position `json:"path"`
	// FailedMove is the index of the blocked move, or -1.
	FailedMove int `json:"failed_move"`
}

// Success reports whether the replay entered the end cell.
func (r Result) Success() bool {
	return r.Outcome == Reached
}

// Replay walks moves from m.Start, one step per move, and stops at the
// first blocked move or as soon as the end cell is entered.
func (m *Maze) Replay(moves []Direction) Result {
	pos := m.Start
	res := Result{
		Path:       append(make([]Position, 0, len(moves)+1), pos),
		FailedMove: -1,
	}

	for i, d := range moves {
		if !m.IsValidMove(pos, d) {
			res.Outcome = HitWall
			res.FailedMove = i
			res.Final = pos
			return res
		}

		pos = NextPosition(pos, d)
		res.Steps++
		res.Path = append(res.Path, pos)

		if pos == m.End {
			res.Outcome = Reached
			res.Final = pos
			return res
		}
	}

	res.Outcome = OutOfMoves
	res.Final = pos
	return res
}
