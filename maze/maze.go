/*
Package maze generates perfect rectangular mazes and validates moves made
through them.

A maze is carved with a randomized recursive backtracker, so its passages
form a spanning tree over the grid: every cell is reachable from every other
cell along exactly one simple path. Randomness is injected through Source,
which makes generation reproducible under a seeded generator.

The package also replays recorded move sequences, finds shortest paths and
renders mazes as ASCII text.
*/
package maze

const (
	// cornerSpan is the side of the square block in which the start
	// (top-left) and end (bottom-right) cells are placed.
	cornerSpan = 3
)

// Source supplies the randomness used while carving and placing endpoints.
// IntN returns a uniformly distributed integer in [0, n). *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// Bounds is the inclusive range every maze side is clamped to.
type Bounds struct {
	Min int
	Max int
}

// DefaultBounds caps every generated maze at 15x15 no matter how large a
// size was requested.
var DefaultBounds = Bounds{Min: 5, Max: 15}

func (b Bounds) clamp(v int) int {
	return max(b.Min, min(b.Max, v))
}

// Maze is a fully carved rectangular maze. Grid is indexed Grid[y][x].
// A Maze is never modified once New returns it.
type Maze struct {
	Grid   [][]Cell `json:"grid"`
	Start  Position `json:"start"`
	End    Position `json:"end"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
}

// Generator builds mazes whose dimensions are derived from a requested size
// and complexity and then clamped to Bounds.
type Generator struct {
	Bounds Bounds
	Source Source
}

// NewGenerator returns a Generator using DefaultBounds.
func NewGenerator(src Source) *Generator {
	return &Generator{Bounds: DefaultBounds, Source: src}
}

// Generate scales width and height by complexity/10, clamps each side to
// DefaultBounds and carves a maze of the resulting size.
func Generate(width, height, complexity int, src Source) *Maze {
	return NewGenerator(src).Generate(width, height, complexity)
}

// Generate scales width and height by complexity/10, clamps each side to
// g.Bounds and carves a maze of the resulting size.
//
// width and height must be positive and g.Bounds.Min at least 1.
func (g *Generator) Generate(width, height, complexity int) *Maze {
	w, h := g.Dimensions(width, height, complexity)
	return New(w, h, g.Source)
}

// Dimensions returns the carved size Generate would use for the request.
func (g *Generator) Dimensions(width, height, complexity int) (int, int) {
	return g.Bounds.clamp(width * complexity / 10), g.Bounds.clamp(height * complexity / 10)
}

// New carves a maze of exactly width x height cells and places its start
// and end. Both dimensions must be positive.
func New(width, height int, src Source) *Maze {
	m := &Maze{
		Grid:   newGrid(width, height),
		Width:  width,
		Height: height,
	}
	m.carve(src)
	m.placeEndpoints(src)
	return m
}

// carve runs the recursive backtracker with an explicit stack. Visitation is
// tracked locally so no carving state is left on the cells.
func (m *Maze) carve(src Source) {
	visited := make([]bool, m.Width*m.Height)
	index := func(p Position) int { return p.Y*m.Width + p.X }

	start := Position{X: src.IntN(m.Width), Y: src.IntN(m.Height)}
	visited[index(start)] = true
	stack := []Position{start}

	candidates := make([]Direction, 0, len(Directions))
	for len(stack) > 0 {
		current := stack[len(stack)-1]

		candidates = candidates[:0]
		for _, d := range Directions {
			next := NextPosition(current, d)
			if m.InBound(next) && !visited[index(next)] {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[src.IntN(len(candidates))]
		next := NextPosition(current, d)
		visited[index(next)] = true
		m.openWall(current, d)
		stack = append(stack, next)
	}
}

// openWall clears the wall on p's side facing d and the mirrored wall on
// the neighbour.
func (m *Maze) openWall(p Position, d Direction) {
	n := NextPosition(p, d)
	m.Grid[p.Y][p.X].openWall(d)
	m.Grid[n.Y][n.X].openWall(d.Opposite())
}

// placeEndpoints puts the start in the top-left corner block and the end in
// the bottom-right one. A collision is resolved by stepping the end one cell
// up and left, clamped at zero. That is best effort: with the default bounds
// only a 1x1 maze can still collide, but custom Bounds below 3 allow grids
// such as 2x2 where start and end may coincide.
func (m *Maze) placeEndpoints(src Source) {
	m.Start = Position{
		X: randomInt(src, 0, min(cornerSpan-1, m.Width-1)),
		Y: randomInt(src, 0, min(cornerSpan-1, m.Height-1)),
	}
	m.End = Position{
		X: randomInt(src, max(0, m.Width-cornerSpan), m.Width-1),
		Y: randomInt(src, max(0, m.Height-cornerSpan), m.Height-1),
	}

	if m.Start == m.End {
		m.End.X = max(0, m.End.X-1)
		m.End.Y = max(0, m.End.Y-1)
	}
}

// randomInt returns a uniformly distributed integer in [lo, hi].
func randomInt(src Source, lo, hi int) int {
	return lo + src.IntN(hi-lo+1)
}

// InBound reports whether p lies inside the maze.
func (m *Maze) InBound(p Position) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Height
}

// Cell returns a copy of the cell at p. ok is false when p is out of bounds.
func (m *Maze) Cell(p Position) (cell Cell, ok bool) {
	if !m.InBound(p) {
		return Cell{}, false
	}
	return m.Grid[p.Y][p.X], true
}
