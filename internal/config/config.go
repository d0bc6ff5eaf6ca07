// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Timing TimingConfig `yaml:"timing"`
}

// BoardConfig defines the grid.
type BoardConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	CellWidth int `yaml:"cell_width"` // Terminal columns per grid cell
}

// TimingConfig defines tick and step pacing in milliseconds.
type TimingConfig struct {
	TickMS            int  `yaml:"tick_ms"`
	CountdownMS       int  `yaml:"countdown_ms"`
	StepMS            int  `yaml:"step_ms"`
	FreezeStepOnPause bool `yaml:"freeze_step_on_pause"`
}

// Tick returns the UI tick interval.
func (t TimingConfig) Tick() time.Duration {
	return time.Duration(t.TickMS) * time.Millisecond
}

// Countdown returns the pre-match countdown duration.
func (t TimingConfig) Countdown() time.Duration {
	return time.Duration(t.CountdownMS) * time.Millisecond
}

// Step returns the interval between snake steps.
func (t TimingConfig) Step() time.Duration {
	return time.Duration(t.StepMS) * time.Millisecond
}

// Validate reports every invalid field.
func (c SnakeConfig) Validate() error {
	var errs []error
	if c.Board.Width <= 0 {
		errs = append(errs, fmt.Errorf("board.width must be positive, got %d", c.Board.Width))
	}
	if c.Board.Height <= 0 {
		errs = append(errs, fmt.Errorf("board.height must be positive, got %d", c.Board.Height))
	}
	if c.Board.CellWidth <= 0 {
		errs = append(errs, fmt.Errorf("board.cell_width must be positive, got %d", c.Board.CellWidth))
	}
	if c.Timing.TickMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_ms must be positive, got %d", c.Timing.TickMS))
	}
	if c.Timing.CountdownMS < 0 {
		errs = append(errs, fmt.Errorf("timing.countdown_ms must not be negative, got %d", c.Timing.CountdownMS))
	}
	if c.Timing.StepMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.step_ms must be positive, got %d", c.Timing.StepMS))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
