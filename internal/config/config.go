// Package config provides YAML-based configuration loading for gridsnake.
package config

import (
	"fmt"
	"time"
)

// SnakeConfig contains all configuration for a game of snake.
type SnakeConfig struct {
	Board   BoardConfig `yaml:"board"`
	Tick    TickConfig  `yaml:"tick"`
	Start   StartConfig `yaml:"start"`
	Restart RestartMode `yaml:"restart"`
}

// BoardConfig fixes the grid size for every round.
type BoardConfig struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
}

// TickConfig defines the game loop period.
type TickConfig struct {
	IntervalMS int `yaml:"interval_ms"`
}

// Interval returns the tick period as a duration.
func (t TickConfig) Interval() time.Duration {
	return time.Duration(t.IntervalMS) * time.Millisecond
}

// StartConfig is where the head spawns. The single body segment starts one
// cell to its left and the snake faces right.
type StartConfig struct {
	HeadX int `yaml:"head_x"`
	HeadY int `yaml:"head_y"`
}

// RestartMode says what happens after a crash.
type RestartMode string

const (
	RestartAuto   RestartMode = "auto"   // new round starts on the next tick
	RestartManual RestartMode = "manual" // new round waits for the restart key
)

// Validate reports the first invalid field.
func (c SnakeConfig) Validate() error {
	if c.Board.Rows <= 0 || c.Board.Columns <= 0 {
		return fmt.Errorf("board must be at least 1x1, got %dx%d", c.Board.Columns, c.Board.Rows)
	}
	if c.Tick.IntervalMS <= 0 {
		return fmt.Errorf("tick.interval_ms must be positive, got %d", c.Tick.IntervalMS)
	}
	switch c.Restart {
	case RestartAuto, RestartManual:
	default:
		return fmt.Errorf("restart must be %q or %q, got %q", RestartAuto, RestartManual, c.Restart)
	}
	// Both the head and the segment behind it must be on the board.
	if c.Start.HeadX < 1 || c.Start.HeadX >= c.Board.Columns ||
		c.Start.HeadY < 0 || c.Start.HeadY >= c.Board.Rows {
		return fmt.Errorf("start position (%d,%d) does not fit a %dx%d board",
			c.Start.HeadX, c.Start.HeadY, c.Board.Columns, c.Board.Rows)
	}
	return nil
}
