package element

import (
	"fmt"
	"strings"
)

// Direction is one of the four cardinal navigation directions.
type Direction int

const (
	Up Direction = iota
	Left
	Right
	Down
)

// Directions lists every valid direction in declaration order.
var Directions = [...]Direction{Up, Left, Right, Down}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Down
}

// Opposite returns the reverse direction. It panics for invalid values, the
// same way an out-of-range slice index does.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Left:
		return Right
	case Right:
		return Left
	case Down:
		return Up
	}
	panic(fmt.Sprintf("element: %v", invalidDirection(d)))
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Left:
		return "left"
	case Right:
		return "right"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection converts a case-insensitive direction name.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "down":
		return Down, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

func invalidDirection(d Direction) error {
	return fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
}

// slot maps d to its neighbor array index, panicking on invalid directions.
func (d Direction) slot() int {
	if !d.Valid() {
		panic(fmt.Sprintf("element: %v", invalidDirection(d)))
	}
	return int(d)
}
