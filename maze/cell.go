package maze

// Walls holds the four wall flags of a cell. A true flag means the side is
// closed and cannot be crossed.
type Walls struct {
	Top    bool `json:"top"`
	Right  bool `json:"right"`
	Bottom bool `json:"bottom"`
	Left   bool `json:"left"`
}

// Cell represents a single cell in a maze grid.
type Cell struct {
	X     int   `json:"x"`
	Y     int   `json:"y"`
	Walls Walls `json:"walls"`
}

// Position is a pair of grid coordinates.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// HasWall reports whether the side of the cell facing d is closed.
// Unknown directions are treated as closed.
func (c *Cell) HasWall(d Direction) bool {
	switch d {
	case Up:
		return c.Walls.Top
	case Right:
		return c.Walls.Right
	case Down:
		return c.Walls.Bottom
	case Left:
		return c.Walls.Left
	default:
		return true
	}
}

// Position returns the coordinates of the cell.
func (c *Cell) Position() Position {
	return Position{X: c.X, Y: c.Y}
}

func (c *Cell) openWall(d Direction) {
	switch d {
	case Up:
		c.Walls.Top = false
	case Right:
		c.Walls.Right = false
	case Down:
		c.Walls.Bottom = false
	case Left:
		c.Walls.Left = false
	}
}
