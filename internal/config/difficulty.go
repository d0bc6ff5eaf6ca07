package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyInsane DifficultyPreset = "insane"
)

// Presets lists the presets in increasing speed.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyInsane}

// StepMSForPreset returns the step interval for a difficulty preset.
func StepMSForPreset(preset DifficultyPreset) (int, error) {
	switch preset {
	case DifficultyEasy:
		return 300, nil
	case DifficultyNormal:
		return 200, nil
	case DifficultyHard:
		return 120, nil
	case DifficultyInsane:
		return 70, nil
	default:
		return 0, fmt.Errorf("config: unknown difficulty %q", preset)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config unchanged.
func ApplyPreset(cfg *SnakeConfig, preset DifficultyPreset) error {
	if preset == "" {
		return nil
	}
	step, err := StepMSForPreset(preset)
	if err != nil {
		return err
	}
	cfg.Timing.StepMS = step
	return nil
}
