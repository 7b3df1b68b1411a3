package maze

import "strings"

// String renders the maze as ASCII art. The start cell is marked S and the
// end cell E.
func (m *Maze) String() string {
	var b strings.Builder

	// Top boundary
	b.WriteString("+")
	for x := 0; x < m.Width; x++ {
		if m.Grid[0][x].Walls.Top {
			b.WriteString("---+")
		} else {
			b.WriteString("   +")
		}
	}
	b.WriteString("\n")

	for y := 0; y < m.Height; y++ {
		// Cell rows
		if m.Grid[y][0].Walls.Left {
			b.WriteString("|")
		} else {
			b.WriteString(" ")
		}
		for x := 0; x < m.Width; x++ {
			cell := m.Grid[y][x]
			switch cell.Position() {
			case m.Start:
				b.WriteString(" S ")
			case m.End:
				b.WriteString(" E ")
			default:
				b.WriteString("   ")
			}

			if cell.Walls.Right {
				b.WriteString("|")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")

		// Wall rows
		b.WriteString("+")
		for x := 0; x < m.Width; x++ {
			if m.Grid[y][x].Walls.Bottom {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
