package game

import (
	"fmt"
	"time"
)

const (
	DefaultWidth        = 20
	DefaultHeight       = 20
	DefaultCellSize     = 20
	DefaultTickInterval = 100 * time.Millisecond
)

type Config struct {
	Width        int
	Height       int
	CellSize     int
	TickInterval time.Duration
	// AvoidSnakeOnPlacement keeps food off snake cells. Off by default:
	// food may spawn under the snake.
	AvoidSnakeOnPlacement bool
	// Seed for food placement. Zero seeds from the clock.
	Seed uint64
}

func DefaultConfig() Config {
	return Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		CellSize:     DefaultCellSize,
		TickInterval: DefaultTickInterval,
	}
}

// Validate checks that the board and timing are usable.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid board size %dx%d: both sides must be positive", c.Width, c.Height)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("invalid cell size %d: must be positive", c.CellSize)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("invalid tick interval %v: must be positive", c.TickInterval)
	}
	return nil
}
