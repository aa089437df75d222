package manager

import (
	"grid-snake/game/types"
)

// Source is the random source used for food placement.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Occupier reports whether a cell is taken. The snake implements it.
type Occupier interface {
	Occupies(p types.Point) bool
}

type FoodManager struct {
	grid        types.Grid
	rng         Source
	position    types.Point
	avoid       Occupier
	relocations int
}

// NewFoodManager places the first food immediately. When avoid is non-nil,
// placements skip the cells it occupies; with nil, food may land anywhere.
func NewFoodManager(grid types.Grid, rng Source, avoid Occupier) *FoodManager {
	fm := &FoodManager{
		grid:  grid,
		rng:   rng,
		avoid: avoid,
	}
	fm.Relocate()
	return fm
}

// Relocate draws a new position uniformly over the whole grid.
func (fm *FoodManager) Relocate() {
	fm.relocations++
	fm.position = fm.draw()
	if fm.avoid == nil {
		return
	}

	// Bounded so a board filled by the snake cannot hang the tick.
	for tries := fm.grid.Width * fm.grid.Height * 4; tries > 0; tries-- {
		if !fm.avoid.Occupies(fm.position) {
			return
		}
		fm.position = fm.draw()
	}
}

func (fm *FoodManager) draw() types.Point {
	return types.Point{
		X: fm.rng.Intn(fm.grid.Width),
		Y: fm.rng.Intn(fm.grid.Height),
	}
}

func (fm *FoodManager) Position() types.Point {
	return fm.position
}

// Relocations counts Relocate calls, including the initial placement.
func (fm *FoodManager) Relocations() int {
	return fm.relocations
}
