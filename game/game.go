package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"grid-snake/game/entity"
	"grid-snake/game/manager"
	"grid-snake/game/types"
)

// GameOverText is shown to the player when a life ends.
const GameOverText = "Game Over!"

var (
	FoodColor  = types.Red
	SnakeColor = types.Green
	HeadColor  = types.Lime
)

// Notifier shows the game over message and returns once the player
// has acknowledged it.
type Notifier interface {
	GameOver(message string)
}

// Deps are the collaborators a Game talks to. Rand and Clock are optional.
type Deps struct {
	Surface  Surface
	Display  manager.ScoreDisplay
	Notifier Notifier
	Rand     manager.Source
	Clock    func() time.Time
}

// Game owns the board, snake, food, score and tick timer for the whole
// process. Lives are started by resetting these in place.
type Game struct {
	UUID   string
	LifeID string
	Lives  int

	Board  *Board
	Snake  *entity.Snake
	Food   *manager.FoodManager
	Score  *manager.ScoreManager
	Ticker *Ticker
	Events *EventBus

	notifier Notifier
	now      func() time.Time
}

func NewGame(cfg Config, deps Deps) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create game: %v", err)
	}
	if deps.Surface == nil || deps.Display == nil || deps.Notifier == nil {
		return nil, fmt.Errorf("failed to create game: surface, display and notifier are required")
	}

	rng := deps.Rand
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		rng = rand.New(rand.NewSource(seed))
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	grid := types.Grid{Width: cfg.Width, Height: cfg.Height}
	snake := entity.NewSnake(grid, grid.Center())
	var avoid manager.Occupier
	if cfg.AvoidSnakeOnPlacement {
		avoid = snake
	}
	food := manager.NewFoodManager(grid, rng, avoid)

	return &Game{
		UUID:     uuid.New().String(),
		Board:    NewBoard(grid, cfg.CellSize, deps.Surface),
		Snake:    snake,
		Food:     food,
		Score:    manager.NewScoreManager(deps.Display),
		Ticker:   NewTicker(cfg.TickInterval),
		Events:   NewEventBus(),
		notifier: deps.Notifier,
		now:      clock,
	}, nil
}

// Start draws the first frame and arms the tick timer.
func (g *Game) Start() {
	g.beginLife()
	g.Draw()
	g.Ticker.Start(g.now())
}

// Stop disarms the tick timer. The game can be started again.
func (g *Game) Stop() {
	g.Ticker.Stop()
}

// HandleKey forwards input to the snake. It may be called at any time;
// the new direction is used on the next tick.
func (g *Game) HandleKey(key types.Key) {
	g.Snake.SetDirection(key)
}

// Step runs at most one tick if one is due. Call it once per frame.
func (g *Game) Step() bool {
	if !g.Ticker.Due(g.now()) {
		return false
	}
	g.Update()
	return true
}

// Update is a single tick.
func (g *Game) Update() {
	ok, head := g.Snake.Advance()
	if !ok {
		g.gameOver(head)
		return
	}

	if food := g.Food.Position(); head == food {
		g.Snake.Grow()
		g.Food.Relocate()
		g.Score.Increase()
		g.Events.Emit(Event{
			Type:   EventFoodEaten,
			LifeID: g.LifeID,
			Score:  g.Score.Value(),
			Cell:   food,
			Length: g.Snake.Len(),
		})
	}

	g.Draw()
}

// Draw repaints the whole board: food first, then the snake over it.
func (g *Game) Draw() {
	g.Board.Clear()
	g.Board.PaintCell(g.Food.Position(), FoodColor)
	for i, p := range g.Snake.Body() {
		color := SnakeColor
		if i == 0 {
			color = HeadColor
		}
		g.Board.PaintCell(p, color)
	}
	g.Score.Render()
}

func (g *Game) gameOver(fatal types.Point) {
	g.Ticker.Stop()
	g.Events.Emit(Event{
		Type:   EventGameOver,
		LifeID: g.LifeID,
		Score:  g.Score.Value(),
		Cell:   fatal,
		Length: g.Snake.Len(),
	})

	g.notifier.GameOver(GameOverText)

	g.Score.Reset()
	g.Snake.Reset()
	g.Food.Relocate()
	g.beginLife()
	g.Ticker.Start(g.now())
}

func (g *Game) beginLife() {
	g.LifeID = uuid.New().String()
	g.Lives++
	g.Events.Emit(Event{
		Type:   EventLifeStarted,
		LifeID: g.LifeID,
		Cell:   g.Snake.Head(),
		Length: g.Snake.Len(),
	})
}
