package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/lane-racer/internal/core"
)

// Keyboard polls Ebitengine's key state. Must be used from Update.
type Keyboard struct{}

// Poll returns the keys held right now.
func (Keyboard) Poll() core.InputFrame {
	return inputFrom(ebiten.IsKeyPressed)
}

// inputFrom maps held keys to actions.
func inputFrom(pressed func(ebiten.Key) bool) core.InputFrame {
	in := core.NewInputFrame()
	if pressed(ebiten.KeyArrowLeft) || pressed(ebiten.KeyA) {
		in.Set(core.ActionLeft)
	}
	if pressed(ebiten.KeyArrowRight) || pressed(ebiten.KeyD) {
		in.Set(core.ActionRight)
	}
	if pressed(ebiten.KeyR) {
		in.Set(core.ActionRestart)
	}
	if pressed(ebiten.KeyQ) || pressed(ebiten.KeyEscape) {
		in.Set(core.ActionQuit)
	}
	return in
}
