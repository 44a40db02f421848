package snake

import (
	"github.com/vovakirdan/gridsnake/internal/core"
)

// State is the game's lifecycle state.
type State string

const (
	StateReady   State = "ready"   // board drawn, timer not armed yet
	StateRunning State = "running" // ticks advance the snake
	StatePaused  State = "paused"  // timer stopped by the player
	StateOver    State = "over"    // transient, between crash and reset
	StateWaiting State = "waiting" // round reset, waiting for a manual restart
)

// Snapshot is a copy of everything needed to draw or inspect the game.
type Snapshot struct {
	Rows       int
	Columns    int
	Body       []core.Point // Head first
	Direction  Direction
	Food       core.Point
	FoodHidden bool // food shares a cell with the snake and is not drawn
	Score      int
	Best       int
	LastScore  int // final score of the previous round
	Round      int // 1-based
	Tick       uint64
	State      State
}

// Head returns the head segment.
func (s Snapshot) Head() core.Point {
	if len(s.Body) == 0 {
		return core.Point{}
	}
	return s.Body[0]
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Rows:       g.rows,
		Columns:    g.columns,
		Body:       g.snake.Body(),
		Direction:  g.snake.Direction(),
		Food:       g.food.Location(),
		FoodHidden: g.food.IsOnSnake(g.snake),
		Score:      g.score.Current(),
		Best:       g.score.Best(),
		LastScore:  g.lastScore,
		Round:      g.round,
		Tick:       g.tick,
		State:      g.state,
	}
}
