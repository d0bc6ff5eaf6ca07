package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:     10,
			Height:    10,
			CellWidth: 2,
		},
		Timing: TimingConfig{
			TickMS:            20,
			CountdownMS:       3000,
			StepMS:            200,
			FreezeStepOnPause: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
