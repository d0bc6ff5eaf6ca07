package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRenderMenuOverlay(t *testing.T) {
	c := newTestController(t, nil)
	s := core.NewScreen(40, 16)
	c.Render(s, base)

	if !strings.Contains(s.String(), "Press Enter to start") {
		t.Errorf("menu overlay missing:\n%s", s.String())
	}
}

func TestRenderTooSmall(t *testing.T) {
	c := newTestController(t, nil)
	w, h := c.MinScreenSize()
	if w != 22 || h != 13 {
		t.Fatalf("MinScreenSize() = %dx%d, expected 22x13", w, h)
	}

	s := core.NewScreen(w-1, h)
	c.Render(s, base)
	if !strings.Contains(s.String(), "too small") {
		t.Errorf("expected too-small message:\n%s", s.String())
	}
}

func TestRenderBoardCells(t *testing.T) {
	c := newTestController(t, nil)
	t0 := startPlaying(t, c)

	w, h := c.MinScreenSize()
	s := core.NewScreen(w, h)
	c.Render(s, t0)

	// Frame starts at (0, 1); cell (x, y) maps to column 1+2x, row 2+y
	head := core.Pt(5, 5)
	if got := s.GetCell(1+2*head.X, 2+head.Y); got.Rune != glyphHead || got.Color != core.ColorSnakeHead {
		t.Errorf("head cell = %+v, expected head glyph", got)
	}
	if got := s.Get(1+2*farApple.X, 2+farApple.Y); got != glyphApple {
		t.Errorf("apple cell = %q, expected %q", got, glyphApple)
	}
	if s.Get(0, 1) != '┌' || s.Get(w-1, h-1) != '┘' {
		t.Error("board border missing")
	}
	if !strings.Contains(s.Row(0), "Score: 0") {
		t.Errorf("HUD = %q, expected score", s.Row(0))
	}
}

func TestRenderStateOverlays(t *testing.T) {
	c := newTestController(t, nil)
	s := core.NewScreen(40, 16)

	c.StartMatch(base)
	c.Render(s, base)
	if !strings.Contains(s.String(), "3") || !strings.Contains(s.String(), "Get ready") {
		t.Errorf("countdown overlay missing:\n%s", s.String())
	}

	t0 := base.Add(c.cfg.Timing.Countdown())
	c.Tick(t0)
	c.ProcessPause(t0)
	c.Render(s, t0)
	if !strings.Contains(s.String(), "Game paused") {
		t.Errorf("pause overlay missing:\n%s", s.String())
	}

	c.ProcessPause(t0)
	c.endMatch(t0, EndCollision)
	c.Render(s, t0)
	if !strings.Contains(s.String(), "Game Over") || !strings.Contains(s.String(), "Press R to restart") {
		t.Errorf("game over overlay missing:\n%s", s.String())
	}
}
