package maze

import (
	"errors"
	"fmt"
	"strings"
)

// Direction is one of the four orthogonal moves a player can make.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

var (
	ErrInvalidDirection = errors.New("invalid direction")

	// Directions lists every direction in the order neighbours are inspected
	// while carving.
	Directions = [...]Direction{Up, Right, Down, Left}

	deltas = [...]Position{
		Up:    {X: 0, Y: -1},
		Right: {X: 1, Y: 0},
		Down:  {X: 0, Y: 1},
		Left:  {X: -1, Y: 0},
	}

	names = [...]string{
		Up:    "up",
		Right: "right",
		Down:  "down",
		Left:  "left",
	}
)

// Valid reports whether d is one of Up, Right, Down or Left.
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

// Delta returns the coordinate offset of a single step in direction d.
// Invalid directions yield a zero offset.
func (d Direction) Delta() Position {
	if !d.Valid() {
		return Position{}
	}
	return deltas[d]
}

// Opposite returns the direction pointing back the way d came.
func (d Direction) Opposite() Direction {
	if !d.Valid() {
		return d
	}
	return (d + 2) % 4
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return names[d]
}

// ParseDirection converts "up", "right", "down" or "left" (case-insensitive)
// into a Direction.
func ParseDirection(s string) (Direction, error) {
	for i, name := range names {
		if strings.EqualFold(s, name) {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
	}
	return []byte(names[d]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
