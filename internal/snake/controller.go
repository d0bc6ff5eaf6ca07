// Package snake implements the snake game: the match state machine driven by
// a periodic tick, the snake movement model and apple placement.
//
// The controller is not safe for concurrent use. All entry points take the
// caller's current time so pacing stays deterministic under test.
package snake

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// TransitionFunc is called after every state change.
type TransitionFunc func(from, to State)

// Controller owns the game state machine.
type Controller struct {
	cfg    config.SnakeConfig
	bounds core.Rect
	rng    *rand.Rand
	state  State

	snake     *Snake
	apple     *Apple
	score     int
	endReason EndReason

	preMatchAt time.Time // Entry into PreMatch
	startedAt  time.Time // Entry into InProgress
	lastStepAt time.Time
	pausedAt   time.Time
	pausedFor  time.Duration // Total time spent paused this match
	endedAt    time.Time

	onTransition TransitionFunc
}

// NewController creates a controller in the InMenu state.
// A nil rng is replaced with a time-seeded one.
func NewController(cfg config.SnakeConfig, rng *rand.Rand) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	c := &Controller{
		cfg:    cfg,
		bounds: core.NewRect(0, 0, cfg.Board.Width, cfg.Board.Height),
		rng:    rng,
		state:  StateInMenu,
	}
	// Show a board behind the menu overlay
	c.snake = NewSnake(c.bounds.Center(), DirRight)
	c.apple = NewApple(c.bounds, rng)
	return c, nil
}

// SetTransitionHook registers fn to be called on every state change.
func (c *Controller) SetTransitionHook(fn TransitionFunc) {
	c.onTransition = fn
}

// StartMatch leaves the menu and starts the countdown.
func (c *Controller) StartMatch(now time.Time) {
	if c.state == StateInMenu {
		c.prepareForMatch(now)
	}
}

// TryRestart starts a new match after game over. Ignored in other states.
func (c *Controller) TryRestart(now time.Time) {
	if c.state == StatePostMatch {
		c.prepareForMatch(now)
	}
}

// ProcessPause toggles between InProgress and Paused.
func (c *Controller) ProcessPause(now time.Time) {
	switch c.state {
	case StateInProgress:
		c.pausedAt = now
		c.setState(StatePaused)
	case StatePaused:
		paused := now.Sub(c.pausedAt)
		c.pausedFor += paused
		if c.cfg.Timing.FreezeStepOnPause {
			c.lastStepAt = c.lastStepAt.Add(paused)
		}
		c.setState(StateInProgress)
	}
}

// AddNextDirection buffers a direction change for the next step.
// Only accepted while a match is in progress.
func (c *Controller) AddNextDirection(dir Direction) {
	if c.state == StateInProgress {
		c.snake.TryAddNextDirection(dir)
	}
}

// Tick advances the state machine to now.
func (c *Controller) Tick(now time.Time) {
	switch c.state {
	case StatePreMatch:
		if now.Sub(c.preMatchAt) >= c.cfg.Timing.Countdown() {
			c.startedAt = now
			c.lastStepAt = now
			c.setState(StateInProgress)
		}
	case StateInProgress:
		if now.Sub(c.lastStepAt) >= c.cfg.Timing.Step() {
			c.step(now)
		}
	}
}

// step performs one snake step.
func (c *Controller) step(now time.Time) {
	c.lastStepAt = now

	if !c.snake.TryMove(c.bounds, c.apple.Position()) {
		c.endMatch(now, EndCollision)
		return
	}

	if c.snake.Head() == c.apple.Position() {
		c.score++
		if !c.apple.Replace(c.snake) {
			c.endMatch(now, EndBoardFull)
		}
	}
}

// prepareForMatch builds a fresh snake and apple and enters PreMatch.
func (c *Controller) prepareForMatch(now time.Time) {
	c.preMatchAt = now
	c.lastStepAt = now
	c.startedAt = time.Time{}
	c.endedAt = time.Time{}
	c.pausedFor = 0
	c.score = 0
	c.endReason = EndNone

	c.snake = NewSnake(c.bounds.Center(), DirRight)
	c.apple = NewApple(c.bounds, c.rng)

	c.setState(StatePreMatch)

	if !c.apple.Replace(c.snake) {
		c.endMatch(now, EndBoardFull)
	}
}

func (c *Controller) endMatch(now time.Time, reason EndReason) {
	c.endReason = reason
	c.endedAt = now
	c.setState(StatePostMatch)
}

func (c *Controller) setState(next State) {
	prev := c.state
	c.state = next
	if c.onTransition != nil && prev != next {
		c.onTransition(prev, next)
	}
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Bounds returns the board rectangle.
func (c *Controller) Bounds() core.Rect {
	return c.bounds
}

// Config returns the configuration the controller was built with.
func (c *Controller) Config() config.SnakeConfig {
	return c.cfg
}

// Segments returns a copy of the snake body, head first.
func (c *Controller) Segments() []core.Point {
	return c.snake.Segments()
}

// Head returns the snake's head position.
func (c *Controller) Head() core.Point {
	return c.snake.Head()
}

// Length returns the snake's length.
func (c *Controller) Length() int {
	return c.snake.Len()
}

// Direction returns the snake's current direction.
func (c *Controller) Direction() Direction {
	return c.snake.Direction()
}

// Apple returns the apple position, or NoPosition.
func (c *Controller) Apple() core.Point {
	return c.apple.Position()
}

// Score returns the number of apples eaten this match.
func (c *Controller) Score() int {
	return c.score
}

// EndReason returns why the last match ended, or EndNone.
func (c *Controller) EndReason() EndReason {
	return c.endReason
}

// CountdownRemaining returns the time left before the match starts.
// Zero outside PreMatch.
func (c *Controller) CountdownRemaining(now time.Time) time.Duration {
	if c.state != StatePreMatch {
		return 0
	}
	return max(c.preMatchAt.Add(c.cfg.Timing.Countdown()).Sub(now), 0)
}

// CountdownSeconds returns the remaining countdown rounded up to whole seconds.
func (c *Controller) CountdownSeconds(now time.Time) int {
	return int(math.Ceil(c.CountdownRemaining(now).Seconds()))
}

// MatchDuration returns the time spent in play, excluding pauses.
func (c *Controller) MatchDuration(now time.Time) time.Duration {
	if c.startedAt.IsZero() {
		return 0
	}
	end := now
	switch c.state {
	case StatePostMatch:
		end = c.endedAt
	case StatePaused:
		end = c.pausedAt
	}
	return max(end.Sub(c.startedAt)-c.pausedFor, 0)
}
