package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Food is the single piece of food on the board.
type Food struct {
	location core.Point
	rows     int
	columns  int
	rng      *rand.Rand
}

// NewFood places food uniformly at random on a rows x columns board.
// A nil rng is seeded from the clock.
func NewFood(rows, columns int, rng *rand.Rand) *Food {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	f := &Food{
		rows:    rows,
		columns: columns,
		rng:     rng,
	}
	f.location = f.GenerateLocation()
	return f
}

// GenerateLocation samples each axis uniformly from the board range.
// Snake occupancy is not excluded.
func (f *Food) GenerateLocation() core.Point {
	return core.Point{
		X: f.rng.Intn(f.columns),
		Y: f.rng.Intn(f.rows),
	}
}

// Replace moves the food to a freshly generated location.
func (f *Food) Replace() {
	f.location = f.GenerateLocation()
}

// Location returns the food's cell.
func (f *Food) Location() core.Point {
	return f.location
}

// IsOnSnake reports whether the food shares a cell with any snake segment.
func (f *Food) IsOnSnake(s *Snake) bool {
	return s.Occupies(f.location)
}
