package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// NoPosition marks an apple that could not be placed.
var NoPosition = core.Pt(-1, -1)

// Apple is the single piece of food on the board.
type Apple struct {
	pos    core.Point
	bounds core.Rect
	rng    *rand.Rand
}

// NewApple creates an unplaced apple. Call Replace to put it on the board.
func NewApple(bounds core.Rect, rng *rand.Rand) *Apple {
	return &Apple{
		pos:    NoPosition,
		bounds: bounds,
		rng:    rng,
	}
}

// Position returns the apple cell, or NoPosition.
func (a *Apple) Position() core.Point {
	return a.pos
}

// Replace moves the apple to a random cell not occupied by s, chosen
// uniformly among free cells. It returns false when the board is full.
func (a *Apple) Replace(s *Snake) bool {
	occupied := make(map[core.Point]bool, s.Len())
	for _, seg := range s.body {
		occupied[seg] = true
	}

	free := make([]core.Point, 0, max(a.bounds.Area()-len(occupied), 0))
	for _, p := range a.bounds.Cells() {
		if !occupied[p] {
			free = append(free, p)
		}
	}

	if len(free) == 0 {
		a.pos = NoPosition
		return false
	}

	a.pos = free[a.rng.Intn(len(free))]
	return true
}
