package maze

const (
	MinLevel = 0
	MaxLevel = 10

	minLevelSize = 5
	maxLevelSize = 50
)

// LevelParams maps a difficulty level in [MinLevel, MaxLevel] to the size
// and complexity passed to Generate. Levels outside the range are clamped.
// Because of the generator's bounds every level above 5 produces a 15x15
// maze.
func LevelParams(level int) (size, complexity int) {
	level = max(MinLevel, min(MaxLevel, level))
	size = minLevelSize + (maxLevelSize-minLevelSize)*level/MaxLevel
	complexity = max(1, level)
	return size, complexity
}

// GenerateLevel carves a square maze for the given difficulty level.
func (g *Generator) GenerateLevel(level int) *Maze {
	size, complexity := LevelParams(level)
	return g.Generate(size, size, complexity)
}
