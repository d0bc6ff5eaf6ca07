package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// footerHeight is the number of lines below the game screen.
const footerHeight = 1

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configure a game model.
type Options struct {
	Player string // Recorded with saved results
	Seed   int64  // 0 means time-based
	Width  int
	Height int
	Logger *log.Logger      // nil discards
	Now    func() time.Time // nil means time.Now
}

// Model is the Bubble Tea model for running the snake game.
type Model struct {
	ctrl       *snake.Controller
	screen     *core.Screen
	store      *storage.Store
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	now        func() time.Time
	tick       time.Duration
	player     string
	inputFrame core.InputFrame
	best       int
	quitting   bool
	saved      bool // Whether the result has been saved for the current game over
}

// NewModel creates a new Bubble Tea model around a fresh controller.
func NewModel(cfg config.SnakeConfig, store *storage.Store, opts Options) (Model, error) {
	// Use time-based seed if not specified
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	ctrl, err := snake.NewController(cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		return Model{}, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	player := opts.Player
	if player == "" {
		player = storage.LocalPlayer
	}

	ctrl.SetTransitionHook(func(from, to snake.State) {
		logger.Debug("state change", "from", from, "to", to)
	})

	m := Model{
		ctrl:       ctrl,
		screen:     core.NewScreen(opts.Width, max(opts.Height-footerHeight, 0)),
		store:      store,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     logger,
		now:        now,
		tick:       cfg.Timing.Tick(),
		player:     player,
		inputFrame: core.NewInputFrame(),
	}
	m.help.Width = opts.Width
	m.best = m.loadBest()
	return m, nil
}

// Controller exposes the game controller, mainly for tests.
func (m Model) Controller() *snake.Controller {
	return m.ctrl
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tick)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-footerHeight, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records an action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.inputFrame.Set(action)
	return m, nil
}

// handleTick applies buffered input and advances the game.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	now := m.now()

	for _, action := range m.inputFrame.Actions {
		m.apply(action, now)
	}
	m.inputFrame.Clear()

	m.ctrl.Tick(now)

	if m.ctrl.State() != snake.StatePostMatch {
		m.saved = false
	} else if !m.saved {
		m.saveResult(now)
		m.saved = true
	}

	return m, tickCmd(m.tick)
}

// apply routes one action to the controller entry point.
func (m Model) apply(action core.Action, now time.Time) {
	if dir, ok := snake.DirectionFromAction(action); ok {
		m.ctrl.AddNextDirection(dir)
		return
	}
	switch action {
	case core.ActionConfirm:
		m.ctrl.StartMatch(now)
	case core.ActionPause:
		m.ctrl.ProcessPause(now)
	case core.ActionRestart:
		m.ctrl.TryRestart(now)
	}
}

// saveResult persists the finished match. Storage failures are logged only.
func (m *Model) saveResult(now time.Time) {
	result := storage.MatchResult{
		Player:    m.player,
		Score:     m.ctrl.Score(),
		Length:    m.ctrl.Length(),
		EndReason: string(m.ctrl.EndReason()),
		Duration:  m.ctrl.MatchDuration(now),
	}

	if m.store != nil {
		saved, err := m.store.SaveResult(result)
		if err != nil {
			m.logger.Warn("could not save result", "error", err)
		} else {
			result = saved
		}
	}
	m.best = max(m.best, result.Score)

	m.logger.Info("match finished",
		"match", result.MatchID,
		"score", result.Score,
		"length", result.Length,
		"reason", result.EndReason,
		"duration", result.Duration.Round(time.Millisecond),
	)
}

func (m Model) loadBest() int {
	if m.store == nil {
		return 0
	}
	best, err := m.store.HighScore()
	if err != nil {
		m.logger.Warn("could not load high score", "error", err)
		return 0
	}
	return best
}

// saveScreenshot writes the current screen as plain text under ~/.snake/screenshots.
func (m *Model) saveScreenshot() {
	m.ctrl.Render(m.screen, m.now())

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot: no home directory", "error", err)
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot: cannot create directory", "error", err)
		return
	}

	filename := fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot: cannot write", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.ctrl.Render(m.screen, m.now())

	footer := fmt.Sprintf("Best: %d  ", m.best) + m.help.View(m.keys)
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(footer)
}

// Run starts the Bubble Tea program for a local game.
func Run(cfg config.SnakeConfig, store *storage.Store, opts Options) error {
	model, err := NewModel(cfg, store, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
