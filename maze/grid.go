package maze

// newGrid allocates height rows of width cells, each closed on every side.
// Both dimensions must be positive.
func newGrid(width, height int) [][]Cell {
	grid := make([][]Cell, height)
	for y := range grid {
		grid[y] = make([]Cell, width)
		for x := range grid[y] {
			grid[y][x] = Cell{
				X: x,
				Y: y,
				Walls: Walls{
					Top:    true,
					Right:  true,
					Bottom: true,
					Left:   true,
				},
			}
		}
	}
	return grid
}
