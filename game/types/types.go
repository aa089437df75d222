package types

// Point is a single cell of the board, addressed by column and row.
type Point struct {
	X, Y int
}

// Add returns the point shifted by delta.
func (p Point) Add(delta Point) Point {
	return Point{X: p.X + delta.X, Y: p.Y + delta.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies on the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Center returns the cell used as the starting position of a life.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Movement deltas. Y grows downwards.
var (
	Up    = Point{X: 0, Y: -1}
	Down  = Point{X: 0, Y: 1}
	Left  = Point{X: -1, Y: 0}
	Right = Point{X: 1, Y: 0}
)

// Key is a raw key symbol as produced by the input source.
type Key string

const (
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyUnknown    Key = "Unidentified"
)

// Direction returns the movement delta bound to k.
func (k Key) Direction() (Point, bool) {
	switch k {
	case KeyArrowUp:
		return Up, true
	case KeyArrowDown:
		return Down, true
	case KeyArrowLeft:
		return Left, true
	case KeyArrowRight:
		return Right, true
	default:
		return Point{}, false
	}
}

type Color struct {
	R, G, B, A uint8
}

var (
	Green = Color{R: 0, G: 228, B: 48, A: 255}
	Lime  = Color{R: 0, G: 158, B: 47, A: 255}
	Red   = Color{R: 230, G: 41, B: 55, A: 255}
)
