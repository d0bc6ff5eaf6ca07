package snake

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snapshot captures the observable game state for determinism testing and logging.
type Snapshot struct {
	State     State
	Score     int
	SnakeLen  int
	Head      core.Point
	Dir       Direction
	Apple     core.Point
	EndReason EndReason
	Countdown int // Whole seconds left in PreMatch
}

// Snapshot returns the current game snapshot.
func (c *Controller) Snapshot(now time.Time) Snapshot {
	return Snapshot{
		State:     c.state,
		Score:     c.score,
		SnakeLen:  c.snake.Len(),
		Head:      c.snake.Head(),
		Dir:       c.snake.Direction(),
		Apple:     c.apple.Position(),
		EndReason: c.endReason,
		Countdown: c.CountdownSeconds(now),
	}
}

func (s Snapshot) String() string {
	return fmt.Sprintf("state=%s score=%d len=%d head=%s dir=%s apple=%s end=%q countdown=%d",
		s.State, s.Score, s.SnakeLen, s.Head, s.Dir, s.Apple, s.EndReason, s.Countdown)
}
