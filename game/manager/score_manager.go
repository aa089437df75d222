package manager

import "fmt"

// ScoreDisplay is the single text slot the score is written to.
type ScoreDisplay interface {
	SetText(text string)
}

type ScoreManager struct {
	display ScoreDisplay
	score   int
	best    int
}

func NewScoreManager(display ScoreDisplay) *ScoreManager {
	return &ScoreManager{display: display}
}

func (sm *ScoreManager) Increase() {
	sm.score++
	if sm.score > sm.best {
		sm.best = sm.score
	}
	sm.Render()
}

func (sm *ScoreManager) Reset() {
	sm.score = 0
	sm.Render()
}

// Render pushes the current value to the display.
func (sm *ScoreManager) Render() {
	sm.display.SetText(fmt.Sprintf("Score: %d", sm.score))
}

func (sm *ScoreManager) Value() int {
	return sm.score
}

// Best is the highest score reached since the process started. It is not saved.
func (sm *ScoreManager) Best() int {
	return sm.best
}
