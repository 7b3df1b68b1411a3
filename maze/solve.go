package maze

// ShortestPath returns the moves of the shortest route from one cell to
// another, found by breadth-first search through open walls. ok is false
// if either position is out of bounds or no route exists.
func (m *Maze) ShortestPath(from, to Position) (moves []Direction, ok bool) {
	if !m.InBound(from) || !m.InBound(to) {
		return nil, false
	}
	if from == to {
		return []Direction{}, true
	}

	type step struct {
		prev Position
		dir  Direction
	}
	cameFrom := make(map[Position]step, m.Width*m.Height)
	cameFrom[from] = step{}

	queue := []Position{from}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == to {
			break
		}

		for _, d := range Directions {
			if !m.IsValidMove(current, d) {
				continue
			}
			next := NextPosition(current, d)
			if _, seen := cameFrom[next]; seen {
				continue
			}
			cameFrom[next] = step{prev: current, dir: d}
			queue = append(queue, next)
		}
	}

	if _, found := cameFrom[to]; !found {
		return nil, false
	}

	for p := to; p != from; p = cameFrom[p].prev {
		moves = append(moves, cameFrom[p].dir)
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	return moves, true
}

// Solution returns the shortest route from the start to the end cell.
func (m *Maze) Solution() ([]Direction, bool) {
	return m.ShortestPath(m.Start, m.End)
}
