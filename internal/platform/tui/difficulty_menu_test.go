package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
)

func TestDifficultyModelSelect(t *testing.T) {
	m := NewDifficultyModel(config.DifficultyNormal, 60, 20)
	if !strings.Contains(m.View(), "hard") {
		t.Error("View() should list every preset")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(DifficultyModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(DifficultyModel)

	if cmd == nil {
		t.Fatal("Enter should quit the picker")
	}
	preset, ok := m.Selected()
	if !ok || preset != config.DifficultyHard {
		t.Errorf("Selected() = %q, %v; expected hard, true", preset, ok)
	}
}

func TestDifficultyModelClampsCursor(t *testing.T) {
	m := NewDifficultyModel("", 60, 20)
	for i := 0; i < 3; i++ {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
		m = next.(DifficultyModel)
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(DifficultyModel)

	if preset, _ := m.Selected(); preset != config.DifficultyEasy {
		t.Errorf("Selected() = %q, expected easy", preset)
	}
}

func TestDifficultyModelQuit(t *testing.T) {
	m := NewDifficultyModel(config.DifficultyEasy, 60, 20)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(DifficultyModel)

	if _, ok := m.Selected(); ok {
		t.Error("Selected() should report no choice after quitting")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}
