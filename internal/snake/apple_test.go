package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// serpentine returns every cell of a w×h grid as one connected path,
// left to right on even rows and right to left on odd rows.
func serpentine(w, h int) []core.Point {
	path := make([]core.Point, 0, w*h)
	for y := 0; y < h; y++ {
		for i := 0; i < w; i++ {
			x := i
			if y%2 == 1 {
				x = w - 1 - i
			}
			path = append(path, core.Pt(x, y))
		}
	}
	return path
}

// reversed returns a head-first body from a tail-first path.
func reversed(path []core.Point) []core.Point {
	out := make([]core.Point, len(path))
	for i, p := range path {
		out[len(path)-1-i] = p
	}
	return out
}

func TestAppleNeverOnSnake(t *testing.T) {
	rng := rand.New(rand.NewSource(999))
	path := serpentine(10, 10)

	for n := 1; n < 100; n += 7 {
		s := NewSnakeWithBody(reversed(path[:n]), DirRight)
		a := NewApple(board10, rng)
		for i := 0; i < 50; i++ {
			if !a.Replace(s) {
				t.Fatalf("Replace() failed with %d free cells", 100-n)
			}
			p := a.Position()
			if s.Occupies(p) {
				t.Fatalf("apple placed on snake at %v", p)
			}
			if !board10.ContainsPoint(p) {
				t.Fatalf("apple placed out of bounds at %v", p)
			}
		}
	}
}

func TestAppleReplaceFullBoard(t *testing.T) {
	s := NewSnakeWithBody(reversed(serpentine(10, 10)), DirLeft)
	a := NewApple(board10, rand.New(rand.NewSource(1)))

	if a.Replace(s) {
		t.Errorf("Replace() = true on a full board, apple at %v", a.Position())
	}
	if a.Position() != NoPosition {
		t.Errorf("Position() = %v, expected NoPosition", a.Position())
	}
}

func TestAppleReplaceLastFreeCell(t *testing.T) {
	path := serpentine(10, 10)
	s := NewSnakeWithBody(reversed(path[:99]), DirLeft)
	a := NewApple(board10, rand.New(rand.NewSource(7)))

	if !a.Replace(s) {
		t.Fatal("Replace() failed with one free cell")
	}
	if a.Position() != path[99] {
		t.Errorf("Position() = %v, expected %v", a.Position(), path[99])
	}
}

func TestAppleReplaceCoversFreeCells(t *testing.T) {
	bounds := core.NewRect(0, 0, 2, 2)
	s := NewSnakeWithBody([]core.Point{core.Pt(0, 0), core.Pt(1, 0)}, DirRight)
	a := NewApple(bounds, rand.New(rand.NewSource(3)))

	seen := make(map[core.Point]int)
	for i := 0; i < 1000; i++ {
		a.Replace(s)
		seen[a.Position()]++
	}
	if len(seen) != 2 || seen[core.Pt(0, 1)] == 0 || seen[core.Pt(1, 1)] == 0 {
		t.Errorf("expected both free cells to be chosen, got %v", seen)
	}
}

func TestAppleDeterministicForSeed(t *testing.T) {
	s := NewSnake(core.Pt(5, 5), DirRight)
	a1 := NewApple(board10, rand.New(rand.NewSource(42)))
	a2 := NewApple(board10, rand.New(rand.NewSource(42)))

	for i := 0; i < 20; i++ {
		a1.Replace(s)
		a2.Replace(s)
		if a1.Position() != a2.Position() {
			t.Fatalf("placement %d differs: %v vs %v", i, a1.Position(), a2.Position())
		}
	}
}
