package game

import "grid-snake/game/types"

// Surface is the pixel sink the board paints onto.
type Surface interface {
	Clear()
	FillRect(x, y, width, height int32, color types.Color)
}

// Board maps cells to square pixel regions of a Surface.
type Board struct {
	Grid     types.Grid
	cellSize int32
	surface  Surface
}

func NewBoard(grid types.Grid, cellSize int, surface Surface) *Board {
	return &Board{
		Grid:     grid,
		cellSize: int32(cellSize),
		surface:  surface,
	}
}

func (b *Board) Clear() {
	b.surface.Clear()
}

// PaintCell fills the region of p. p is not bounds checked.
func (b *Board) PaintCell(p types.Point, color types.Color) {
	b.surface.FillRect(int32(p.X)*b.cellSize, int32(p.Y)*b.cellSize, b.cellSize, b.cellSize, color)
}

// PixelSize is the drawable area in pixels.
func (b *Board) PixelSize() (int32, int32) {
	return int32(b.Grid.Width) * b.cellSize, int32(b.Grid.Height) * b.cellSize
}
