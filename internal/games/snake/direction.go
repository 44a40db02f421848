package snake

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// ErrInvalidDirection is returned for direction names other than
// up, down, left and right.
var ErrInvalidDirection = errors.New("snake: invalid direction")

// Direction is the snake's facing direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// ParseDirection maps a canonical direction name to a Direction.
func ParseDirection(name string) (Direction, error) {
	switch name {
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, name)
}

// delta is the one-cell offset of a move in direction d. y grows downwards.
func (d Direction) delta() core.Point {
	switch d {
	case DirUp:
		return core.Point{Y: -1}
	case DirDown:
		return core.Point{Y: 1}
	case DirLeft:
		return core.Point{X: -1}
	default:
		return core.Point{X: 1}
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
