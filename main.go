package main

import (
	"flag"
	"log"
	"os"

	"grid-snake/game"
	"grid-snake/ui"
)

func main() {
	cfg := game.DefaultConfig()
	flag.IntVar(&cfg.Width, "width", cfg.Width, "Board width in cells")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Board height in cells")
	flag.IntVar(&cfg.CellSize, "cell", cfg.CellSize, "Cell size in pixels")
	flag.DurationVar(&cfg.TickInterval, "tick", cfg.TickInterval, "Time between snake moves")
	flag.BoolVar(&cfg.AvoidSnakeOnPlacement, "avoid-snake", cfg.AvoidSnakeOnPlacement, "Never place food on the snake")
	flag.Uint64Var(&cfg.Seed, "seed", 0, "Food placement seed (0 = random)")
	flag.Parse()

	logger := log.New(os.Stderr, "[snake] ", log.LstdFlags)

	if err := cfg.Validate(); err != nil {
		logger.Fatalf("invalid configuration: %v", err)
	}

	renderer := ui.NewRenderer(int32(cfg.Width*cfg.CellSize), int32(cfg.Height*cfg.CellSize), "Snake")
	defer renderer.Close()

	g, err := game.NewGame(cfg, game.Deps{
		Surface:  renderer,
		Display:  renderer,
		Notifier: renderer,
	})
	if err != nil {
		renderer.Close()
		logger.Fatalf("%v", err)
	}
	subscribeLogger(g, logger)

	logger.Printf("game %s: %dx%d board, tick %v", g.UUID, cfg.Width, cfg.Height, cfg.TickInterval)
	g.Start()
	defer g.Stop()

	// One input path for the whole process; lives only reset state.
	for !renderer.ShouldClose() {
		for _, key := range renderer.PollKeys() {
			g.HandleKey(key)
		}
		g.Step()
		renderer.Present()
	}

	logger.Printf("game %s: %d lives, best score %d", g.UUID, g.Lives, g.Score.Best())
}

func subscribeLogger(g *game.Game, logger *log.Logger) {
	g.Events.Subscribe(game.EventLifeStarted, func(e game.Event) {
		logger.Printf("life %s started at (%d,%d)", e.LifeID, e.Cell.X, e.Cell.Y)
	})
	g.Events.Subscribe(game.EventFoodEaten, func(e game.Event) {
		logger.Printf("life %s ate food at (%d,%d): score %d, length %d", e.LifeID, e.Cell.X, e.Cell.Y, e.Score, e.Length)
	})
	g.Events.Subscribe(game.EventGameOver, func(e game.Event) {
		logger.Printf("life %s over at (%d,%d): score %d, length %d", e.LifeID, e.Cell.X, e.Cell.Y, e.Score, e.Length)
	})
}
