package snake

import (
	"github.com/vovakirdan/gridsnake/internal/core"
)

// Snake is the player's snake: body segments head first and a facing direction.
// The body is never empty.
type Snake struct {
	body      []core.Point // Head at index 0
	direction Direction
	food      *Food
}

// NewSnake creates a two-segment snake with its head at start and its tail one
// cell to the left, facing right. Moving onto food grows the snake and
// replaces the food; a nil food disables that.
func NewSnake(start core.Point, food *Food) *Snake {
	return &Snake{
		body: []core.Point{
			start,
			{X: start.X - 1, Y: start.Y},
		},
		direction: DirRight,
		food:      food,
	}
}

// Move advances the head one cell in the current direction.
// When the new head lands on the attached food the tail is kept, the food is
// replaced and Move returns true. Otherwise the tail is dropped and the length
// stays the same. Bounds are not checked here, see HitWall.
func (s *Snake) Move() bool {
	head := s.body[0].Add(s.direction.delta())
	s.body = append([]core.Point{head}, s.body...)

	if s.food != nil && head == s.food.Location() {
		s.food.Replace()
		return true
	}
	s.body = s.body[:len(s.body)-1]
	return false
}

// HitWall reports whether the head is outside [0, columns) x [0, rows).
func (s *Snake) HitWall(rows, columns int) bool {
	return !s.body[0].In(rows, columns)
}

// Eat grows the snake by a copy of its tail when the head is on food.
// It is the growth trigger for snakes moved without attached food; a snake
// that already grew in Move must not also Eat the same food.
func (s *Snake) Eat(food *Food) bool {
	if s.body[0] != food.Location() {
		return false
	}
	s.body = append(s.body, s.body[len(s.body)-1])
	return true
}

// ChangeDirection turns the snake. Unknown names leave the direction as is
// and return ErrInvalidDirection. Reversing into the body is allowed; the
// resulting collision is detected by the game.
func (s *Snake) ChangeDirection(name string) error {
	d, err := ParseDirection(name)
	if err != nil {
		return err
	}
	s.direction = d
	return nil
}

// Head returns the head segment.
func (s *Snake) Head() core.Point {
	return s.body[0]
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []core.Point {
	body := make([]core.Point, len(s.body))
	copy(body, s.body)
	return body
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the facing direction.
func (s *Snake) Direction() Direction {
	return s.direction
}

// Occupies reports whether any segment is on p.
func (s *Snake) Occupies(p core.Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}
