package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snake is an ordered sequence of cells, head first.
type Snake struct {
	body      []core.Point // Head at index 0
	direction Direction
	nextDir   Direction // Buffered direction for next move
}

// NewSnake creates a snake of length 1.
func NewSnake(head core.Point, dir Direction) *Snake {
	return NewSnakeWithBody([]core.Point{head}, dir)
}

// NewSnakeWithBody creates a snake from a head-first body. The body is copied.
func NewSnakeWithBody(body []core.Point, dir Direction) *Snake {
	return &Snake{
		body:      append([]core.Point(nil), body...),
		direction: dir,
		nextDir:   dir,
	}
}

// Head returns the head position.
func (s *Snake) Head() core.Point {
	return s.body[0]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []core.Point {
	return append([]core.Point(nil), s.body...)
}

// Direction returns the direction applied at the last step.
func (s *Snake) Direction() Direction {
	return s.direction
}

// NextDirection returns the buffered direction for the next step.
func (s *Snake) NextDirection() Direction {
	return s.nextDir
}

// Occupies reports whether any segment is at p.
func (s *Snake) Occupies(p core.Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// TryAddNextDirection buffers dir for the next step.
// A reversal is refused while the snake is longer than one cell.
func (s *Snake) TryAddNextDirection(dir Direction) bool {
	if s.isReversal(dir) {
		return false
	}
	s.nextDir = dir
	return true
}

// isReversal reports whether dir would send the head back into the neck.
func (s *Snake) isReversal(dir Direction) bool {
	if len(s.body) < 2 {
		return false
	}
	return dir == s.direction.Opposite() || s.body[0].Add(dir.Vector()) == s.body[1]
}

// TryMove advances the snake one cell. It grows when the new head lands on
// apple. It returns false, leaving the snake unchanged except for its
// direction, when the head would leave bounds or hit the body.
func (s *Snake) TryMove(bounds core.Rect, apple core.Point) bool {
	// Apply buffered direction
	if !s.isReversal(s.nextDir) {
		s.direction = s.nextDir
	}
	s.nextDir = s.direction

	newHead := s.body[0].Add(s.direction.Vector())
	if !bounds.ContainsPoint(newHead) {
		return false
	}

	eats := newHead == apple
	tail := len(s.body) - 1
	for i, seg := range s.body {
		if seg != newHead {
			continue
		}
		// The tail vacates its cell this step unless the snake grows
		if i == tail && !eats {
			continue
		}
		return false
	}

	s.body = append(s.body, core.Point{})
	copy(s.body[1:], s.body)
	s.body[0] = newHead
	if !eats {
		s.body = s.body[:len(s.body)-1]
	}
	return true
}
