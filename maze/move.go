package maze

// IsValidMove reports whether a player standing at p may step in direction
// d. It fails closed: positions outside the maze and unknown directions are
// never valid. The destination is not checked separately because a wall is
// only ever opened between two in-bound cells.
func (m *Maze) IsValidMove(p Position, d Direction) bool {
	cell, ok := m.Cell(p)
	if !ok || !d.Valid() {
		return false
	}
	return !cell.HasWall(d)
}

// IsValidMove is the function form of (*Maze).IsValidMove.
func IsValidMove(m *Maze, p Position, d Direction) bool {
	return m.IsValidMove(p, d)
}

// NextPosition returns the position one step from p in direction d. It does
// no bounds or wall checking; call IsValidMove first.
func NextPosition(p Position, d Direction) Position {
	delta := d.Delta()
	return Position{X: p.X + delta.X, Y: p.Y + delta.Y}
}
