package ui

import (
	"grid-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	scoreBarHeight = 30
	fontSize       = 20
	promptFontSize = 40
)

type rect struct {
	x, y, w, h int32
	color      rl.Color
}

// Renderer is the raylib side of the game: it records board paint calls,
// holds the score text, shows the game over prompt and reads the keyboard.
// raylib redraws every frame, so paint calls go into a display list that
// Present replays until the next Clear.
type Renderer struct {
	boardWidth  int32
	boardHeight int32
	frame       []rect
	scoreText   string
}

// NewRenderer opens the window sized for a board of boardWidth x boardHeight
// pixels with the score bar underneath.
func NewRenderer(boardWidth, boardHeight int32, title string) *Renderer {
	rl.InitWindow(boardWidth, boardHeight+scoreBarHeight, title)
	rl.SetTargetFPS(60)
	return &Renderer{
		boardWidth:  boardWidth,
		boardHeight: boardHeight,
	}
}

func (r *Renderer) Close() {
	rl.CloseWindow()
}

func (r *Renderer) ShouldClose() bool {
	return rl.WindowShouldClose()
}

func (r *Renderer) Clear() {
	r.frame = r.frame[:0]
}

func (r *Renderer) FillRect(x, y, width, height int32, color types.Color) {
	r.frame = append(r.frame, rect{x, y, width, height, toRaylib(color)})
}

func (r *Renderer) SetText(text string) {
	r.scoreText = text
}

// Present draws one frame.
func (r *Renderer) Present() {
	rl.BeginDrawing()
	r.drawFrame()
	rl.EndDrawing()
}

func (r *Renderer) drawFrame() {
	rl.ClearBackground(rl.Black)
	for _, c := range r.frame {
		rl.DrawRectangle(c.x, c.y, c.w, c.h, c.color)
	}
	rl.DrawRectangle(0, r.boardHeight, r.boardWidth, scoreBarHeight, rl.DarkGray)
	rl.DrawText(r.scoreText, 10, r.boardHeight+(scoreBarHeight-fontSize)/2, fontSize, rl.White)
}

// GameOver blocks until the player presses Enter or Space, or closes the window.
func (r *Renderer) GameOver(message string) {
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeySpace) {
			break
		}

		rl.BeginDrawing()
		r.drawFrame()
		rl.DrawRectangle(0, 0, r.boardWidth, r.boardHeight, rl.Fade(rl.Black, 0.6))
		textWidth := rl.MeasureText(message, promptFontSize)
		rl.DrawText(message, (r.boardWidth-textWidth)/2, r.boardHeight/2-promptFontSize, promptFontSize, rl.RayWhite)
		hint := "Press Enter"
		hintWidth := rl.MeasureText(hint, fontSize)
		rl.DrawText(hint, (r.boardWidth-hintWidth)/2, r.boardHeight/2+fontSize/2, fontSize, rl.LightGray)
		rl.EndDrawing()
	}

	// Keys pressed while the prompt was up must not steer the next life.
	for rl.GetKeyPressed() != 0 {
	}
}

// PollKeys returns the keys pressed since the last frame, in order.
func (r *Renderer) PollKeys() []types.Key {
	var keys []types.Key
	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		keys = append(keys, keySymbol(k))
	}
	return keys
}

func keySymbol(k int32) types.Key {
	switch k {
	case rl.KeyUp:
		return types.KeyArrowUp
	case rl.KeyDown:
		return types.KeyArrowDown
	case rl.KeyLeft:
		return types.KeyArrowLeft
	case rl.KeyRight:
		return types.KeyArrowRight
	default:
		return types.KeyUnknown
	}
}

func toRaylib(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
