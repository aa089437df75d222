package entity

import (
	"grid-snake/game/types"
)

// Snake owns the body and the movement direction. It is the only place
// that decides whether a move is legal.
//
// The direction field has a single writer (SetDirection, driven by input)
// and a single reader (Advance, driven by the tick). Both run on the frame
// loop goroutine. If ticks are ever moved to their own goroutine, guard
// direction with a sync.Mutex or swap it atomically.
type Snake struct {
	grid      types.Grid
	start     types.Point
	body      []types.Point
	direction types.Point
}

func NewSnake(grid types.Grid, start types.Point) *Snake {
	s := &Snake{
		grid:  grid,
		start: start,
	}
	s.Reset()
	return s
}

// Reset puts the snake back to a single cell at its start position, moving right.
func (s *Snake) Reset() {
	s.body = []types.Point{s.start}
	s.direction = types.Right
}

// SetDirection applies a raw key. Turns along the current axis are ignored,
// which also rules out reversing into the neck. Unknown keys are a no-op.
func (s *Snake) SetDirection(key types.Key) {
	dir, ok := key.Direction()
	if !ok {
		return
	}
	if dir.X != 0 && s.direction.X != 0 {
		return
	}
	if dir.Y != 0 && s.direction.Y != 0 {
		return
	}
	s.direction = dir
}

// Advance moves the snake one cell. It returns false, leaving the body
// untouched, when the new head would leave the grid or hit the body.
func (s *Snake) Advance() (bool, types.Point) {
	newHead := s.Head().Add(s.direction)

	if !s.grid.Contains(newHead) || s.Occupies(newHead) {
		return false, newHead
	}

	s.body = append([]types.Point{newHead}, s.body[:len(s.body)-1]...)
	return true, newHead
}

// Grow duplicates the tail cell. The copy stays behind on the next advance,
// so the body ends up exactly one cell longer.
func (s *Snake) Grow() {
	tail := s.body[len(s.body)-1]
	s.body = append(s.body, tail)
}

func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.body {
		if part == p {
			return true
		}
	}
	return false
}

func (s *Snake) Head() types.Point {
	return s.body[0]
}

// Body returns a copy of the occupied cells, head first.
func (s *Snake) Body() []types.Point {
	body := make([]types.Point, len(s.body))
	copy(body, s.body)
	return body
}

func (s *Snake) Len() int {
	return len(s.body)
}

func (s *Snake) Direction() types.Point {
	return s.direction
}
