package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded default = %+v, hardcoded = %+v", cfg, DefaultSnakeConfig())
	}
}

func TestTimingDurations(t *testing.T) {
	timing := DefaultSnakeConfig().Timing
	if timing.Tick() != 20*time.Millisecond {
		t.Errorf("Tick() = %v, expected 20ms", timing.Tick())
	}
	if timing.Countdown() != 3*time.Second {
		t.Errorf("Countdown() = %v, expected 3s", timing.Countdown())
	}
	if timing.Step() != 200*time.Millisecond {
		t.Errorf("Step() = %v, expected 200ms", timing.Step())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SnakeConfig)
		wantErr string
	}{
		{"default is valid", func(*SnakeConfig) {}, ""},
		{"zero width", func(c *SnakeConfig) { c.Board.Width = 0 }, "board.width"},
		{"negative height", func(c *SnakeConfig) { c.Board.Height = -3 }, "board.height"},
		{"zero cell width", func(c *SnakeConfig) { c.Board.CellWidth = 0 }, "board.cell_width"},
		{"zero tick", func(c *SnakeConfig) { c.Timing.TickMS = 0 }, "timing.tick_ms"},
		{"negative countdown", func(c *SnakeConfig) { c.Timing.CountdownMS = -1 }, "timing.countdown_ms"},
		{"zero step", func(c *SnakeConfig) { c.Timing.StepMS = 0 }, "timing.step_ms"},
		{"zero countdown is fine", func(c *SnakeConfig) { c.Timing.CountdownMS = 0 }, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error mentioning %q", err, tc.wantErr)
			}
		})
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("board:\n  width: 20\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Board.Width != 20 {
		t.Errorf("Width = %d, expected 20", cfg.Board.Width)
	}
	if cfg.Board.Height != 10 || cfg.Timing.StepMS != 200 {
		t.Errorf("missing fields should keep defaults, got %+v", cfg)
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse([]byte("board: [")); err == nil {
		t.Error("expected YAML syntax error")
	}
	if _, err := Parse([]byte("timing:\n  step_ms: -5\n")); err == nil {
		t.Error("expected validation error")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("timing:\n  step_ms: 90\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if cfg.Timing.StepMS != 90 {
		t.Errorf("StepMS = %d, expected 90", cfg.Timing.StepMS)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".snake")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("board:\n  height: 12\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Board.Height != 12 {
		t.Errorf("Height = %d, expected 12 from user config", cfg.Board.Height)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("Load() = %+v, expected defaults", cfg)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultSnakeConfig())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), "step_ms: 200") {
		t.Errorf("marshalled YAML missing step_ms:\n%s", data)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		step   int
	}{
		{DifficultyEasy, 300},
		{DifficultyNormal, 200},
		{DifficultyHard, 120},
		{DifficultyInsane, 70},
	}
	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			if err := ApplyPreset(&cfg, tc.preset); err != nil {
				t.Fatalf("ApplyPreset failed: %v", err)
			}
			if cfg.Timing.StepMS != tc.step {
				t.Errorf("StepMS = %d, expected %d", cfg.Timing.StepMS, tc.step)
			}
		})
	}

	cfg := DefaultSnakeConfig()
	if err := ApplyPreset(&cfg, ""); err != nil || cfg != DefaultSnakeConfig() {
		t.Errorf("empty preset should be a no-op, got %+v, %v", cfg, err)
	}
	if err := ApplyPreset(&cfg, "nightmare"); err == nil {
		t.Error("expected error for unknown preset")
	}
}
