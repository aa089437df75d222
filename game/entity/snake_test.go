package entity

import (
	"testing"

	"grid-snake/game/types"
)

var grid20 = types.Grid{Width: 20, Height: 20}

func TestNewSnake_StartsAtStartMovingRight(t *testing.T) {
	s := NewSnake(grid20, types.Point{X: 10, Y: 10})
	if s.Len() != 1 {
		t.Fatalf("Len %d, want 1", s.Len())
	}
	if s.Head() != (types.Point{X: 10, Y: 10}) {
		t.Errorf("Head %v, want (10,10)", s.Head())
	}
	if s.Direction() != types.Right {
		t.Errorf("Direction %v, want %v", s.Direction(), types.Right)
	}
}

func TestAdvance_MovesHeadAndKeepsLength(t *testing.T) {
	s := NewSnake(grid20, types.Point{X: 10, Y: 10})
	s.body = []types.Point{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}}

	ok, head := s.Advance()
	if !ok {
		t.Fatal("Advance should succeed on an open board")
	}
	if head != (types.Point{X: 11, Y: 10}) {
		t.Errorf("head %v, want (11,10)", head)
	}
	want := []types.Point{{X: 11, Y: 10}, {X: 10, Y: 10}, {X: 9, Y: 10}}
	got := s.Body()
	if len(got) != len(want) {
		t.Fatalf("body %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("body[%d] %v, want %v", i, got[i], want[i])
		}
	}
}

func TestAdvance_SelfCollisionFails(t *testing.T) {
	s := NewSnake(grid20, types.Point{X: 10, Y: 10})
	s.body = []types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}, {X: 3, Y: 6}, {X: 4, Y: 6}, {X: 5, Y: 6}}
	s.direction = types.Left
	before := s.Body()

	ok, head := s.Advance()
	if ok {
		t.Fatal("Advance into (4,5) should fail")
	}
	if head != (types.Point{X: 4, Y: 5}) {
		t.Errorf("head %v, want (4,5)", head)
	}
	after := s.Body()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("body mutated on failed advance: %v -> %v", before, after)
		}
	}
}

func TestAdvance_WallCollisionFails(t *testing.T) {
	s := NewSnake(grid20, types.Point{X: 19, Y: 5})
	if ok, _ := s.Advance(); ok {
		t.Error("Advance past x=19 should fail on a 20 wide board")
	}
	if s.Head() != (types.Point{X: 19, Y: 5}) {
		t.Errorf("Head %v, want (19,5)", s.Head())
	}

	s = NewSnake(grid20, types.Point{X: 0, Y: 0})
	s.SetDirection(types.KeyArrowUp)
	if ok, _ := s.Advance(); ok {
		t.Error("Advance past y=0 should fail")
	}
}

func TestAdvance_TailCellCountsAsBody(t *testing.T) {
	s := NewSnake(grid20, types.Point{X: 10, Y: 10})
	// Square loop: the next head lands on the current tail.
	s.body = []types.Point{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}}
	s.direction = types.Right
	if ok, _ := s.Advance(); ok {
		t.Error("moving onto the tail cell should fail")
	}
}

func TestSetDirection_RejectsReversal(t *testing.T) {
	s := NewSnake(grid20, types.Point{X: 10, Y: 10})
	s.SetDirection(types.KeyArrowLeft)
	if s.Direction() != types.Right {
		t.Errorf("Direction %v, want unchanged %v", s.Direction(), types.Right)
	}
	s.SetDirection(types.KeyArrowRight)
	if s.Direction() != types.Right {
		t.Errorf("Direction %v, want %v", s.Direction(), types.Right)
	}
}

func TestSetDirection_Turns(t *testing.T) {
	s := NewSnake(grid20, types.Point{X: 10, Y: 10})
	s.SetDirection(types.KeyArrowUp)
	if s.Direction() != types.Up {
		t.Fatalf("Direction %v, want %v", s.Direction(), types.Up)
	}
	s.SetDirection(types.KeyArrowDown)
	if s.Direction() != types.Up {
		t.Errorf("Down while moving up should be ignored, got %v", s.Direction())
	}
	s.SetDirection(types.KeyArrowLeft)
	if s.Direction() != types.Left {
		t.Errorf("Direction %v, want %v", s.Direction(), types.Left)
	}
}

func TestSetDirection_UnknownKeyIgnored(t *testing.T) {
	s := NewSnake(grid20, types.Point{X: 10, Y: 10})
	for _, k := range []types.Key{types.KeyUnknown, "a", "", "Enter"} {
		s.SetDirection(k)
	}
	if s.Direction() != types.Right {
		t.Errorf("Direction %v, want %v", s.Direction(), types.Right)
	}
}

func TestSetDirection_LastWriteWins(t *testing.T) {
	s := NewSnake(grid20, types.Point{X: 10, Y: 10})
	s.SetDirection(types.KeyArrowUp)
	s.SetDirection(types.KeyArrowLeft)
	if s.Direction() != types.Left {
		t.Errorf("Direction %v, want %v", s.Direction(), types.Left)
	}
}

func TestGrow_AddsExactlyOneCell(t *testing.T) {
	s := NewSnake(grid20, types.Point{X: 10, Y: 10})
	s.Grow()
	if s.Len() != 2 {
		t.Fatalf("Len %d after Grow, want 2", s.Len())
	}
	for i := 0; i < 3; i++ {
		if ok, _ := s.Advance(); !ok {
			t.Fatalf("Advance %d failed", i)
		}
		if s.Len() != 2 {
			t.Errorf("Len %d after advance %d, want 2", s.Len(), i)
		}
	}
	body := s.Body()
	if body[0] != (types.Point{X: 13, Y: 10}) || body[1] != (types.Point{X: 12, Y: 10}) {
		t.Errorf("body %v, want [(13,10) (12,10)]", body)
	}
}

func TestReset_AfterGrowthAndTurns(t *testing.T) {
	s := NewSnake(grid20, types.Point{X: 10, Y: 10})
	s.Grow()
	s.Grow()
	s.SetDirection(types.KeyArrowDown)
	s.Advance()
	s.Advance()

	s.Reset()
	if s.Len() != 1 || s.Head() != (types.Point{X: 10, Y: 10}) {
		t.Errorf("body %v, want [(10,10)]", s.Body())
	}
	if s.Direction() != types.Right {
		t.Errorf("Direction %v, want %v", s.Direction(), types.Right)
	}
}

func TestOccupies(t *testing.T) {
	s := NewSnake(grid20, types.Point{X: 10, Y: 10})
	s.body = []types.Point{{X: 1, Y: 1}, {X: 1, Y: 2}}
	if !s.Occupies(types.Point{X: 1, Y: 2}) {
		t.Error("Occupies((1,2)) should be true")
	}
	if s.Occupies(types.Point{X: 2, Y: 2}) {
		t.Error("Occupies((2,2)) should be false")
	}
}

func TestBody_ReturnsCopy(t *testing.T) {
	s := NewSnake(grid20, types.Point{X: 10, Y: 10})
	b := s.Body()
	b[0] = types.Point{X: 0, Y: 0}
	if s.Head() != (types.Point{X: 10, Y: 10}) {
		t.Error("mutating Body() result changed the snake")
	}
}
