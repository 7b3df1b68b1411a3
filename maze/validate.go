package maze

import (
	"errors"
	"fmt"
)

var ErrMalformedMaze = errors.New("malformed maze")

// Validate checks the structural invariants of a maze that did not come
// from New, such as one decoded from storage: grid dimensions, cell
// coordinates, closed outer border, mirrored interior walls, endpoints in
// bounds and a spanning-tree passage graph.
func (m *Maze) Validate() error {
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("%w: non-positive dimensions %dx%d", ErrMalformedMaze, m.Width, m.Height)
	}
	if len(m.Grid) != m.Height {
		return fmt.Errorf("%w: grid has %d rows, want %d", ErrMalformedMaze, len(m.Grid), m.Height)
	}

	edges := 0
	for y, row := range m.Grid {
		if len(row) != m.Width {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedMaze, y, len(row), m.Width)
		}
		for x := range row {
			cell := &row[x]
			if cell.X != x || cell.Y != y {
				return fmt.Errorf("%w: cell at %d,%d claims %d,%d", ErrMalformedMaze, x, y, cell.X, cell.Y)
			}
			for _, d := range Directions {
				next := NextPosition(cell.Position(), d)
				if !m.InBound(next) {
					if !cell.HasWall(d) {
						return fmt.Errorf("%w: cell %d,%d is open %s to the outside", ErrMalformedMaze, x, y, d)
					}
					continue
				}
				if cell.HasWall(d) != m.Grid[next.Y][next.X].HasWall(d.Opposite()) {
					return fmt.Errorf("%w: wall %s of cell %d,%d is not mirrored", ErrMalformedMaze, d, x, y)
				}
				// count each passage once
				if (d == Right || d == Down) && !cell.HasWall(d) {
					edges++
				}
			}
		}
	}

	if !m.InBound(m.Start) || !m.InBound(m.End) {
		return fmt.Errorf("%w: start %v or end %v out of bounds", ErrMalformedMaze, m.Start, m.End)
	}

	if edges != m.Width*m.Height-1 {
		return fmt.Errorf("%w: %d passages, want %d", ErrMalformedMaze, edges, m.Width*m.Height-1)
	}
	if reachable := m.reachableFrom(m.Start); reachable != m.Width*m.Height {
		return fmt.Errorf("%w: only %d of %d cells reachable", ErrMalformedMaze, reachable, m.Width*m.Height)
	}

	return nil
}

// reachableFrom counts the cells connected to p through open walls.
func (m *Maze) reachableFrom(p Position) int {
	seen := map[Position]struct{}{p: {}}
	stack := []Position{p}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range Directions {
			if !m.IsValidMove(current, d) {
				continue
			}
			next := NextPosition(current, d)
			if _, ok := seen[next]; !ok {
				seen[next] = struct{}{}
				stack = append(stack, next)
			}
		}
	}
	return len(seen)
}
