package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the classic 20x20 board at 10 ticks per second.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Rows:    20,
			Columns: 20,
		},
		Tick: TickConfig{
			IntervalMS: 100,
		},
		Start: StartConfig{
			HeadX: 10,
			HeadY: 10,
		},
		Restart: RestartAuto,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
