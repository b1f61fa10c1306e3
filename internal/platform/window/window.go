// Package window runs the racer in a desktop window with Ebitengine. Draw
// instructions map 1:1 onto window pixels and keys are read as held state,
// so steering is exactly level-triggered.
package window

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/lane-racer/internal/core"
	"github.com/vovakirdan/lane-racer/internal/loop"
	"github.com/vovakirdan/lane-racer/internal/racer"
	"github.com/vovakirdan/lane-racer/internal/registry"
)

// faceSize is the pixel height the bitmap face is designed for. Text ops
// are scaled by FontSize / faceSize.
const faceSize = 16.0

func init() {
	registry.Register("window", func() registry.Frontend { return Frontend{} })
}

// Game adapts the frame driver to ebiten.Game. Ebitengine calls Update at
// the configured TPS and Draw afterwards on the same goroutine.
type Game struct {
	ctx      context.Context
	driver   *loop.Driver
	title    string
	runtime  core.RuntimeConfig
	face     text.Face
	target   *frameTarget
	maxTicks uint64
}

// NewGame creates a window game for the session reading input from in.
// A nil input reads the keyboard.
func NewGame(ctx context.Context, s registry.Session, in loop.InputSource) *Game {
	game := racer.New(s.Config)
	game.Reset(s.Runtime)
	if in == nil {
		in = Keyboard{}
	}

	g := &Game{
		ctx:      ctx,
		title:    game.Title(),
		runtime:  s.Runtime,
		face:     text.NewGoXFace(bitmapfont.Face),
		target:   &frameTarget{},
		maxTicks: s.MaxTicks,
	}
	g.driver = loop.New(game, in, g.target, s.Logger)
	return g
}

// Update runs one simulation tick.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	quit, err := g.driver.Tick()
	if err != nil {
		return err
	}
	if quit || (g.maxTicks > 0 && g.driver.Stats().Ticks >= g.maxTicks) {
		return ebiten.Termination
	}
	return nil
}

// Draw paints the last frame onto the window.
func (g *Game) Draw(screen *ebiten.Image) {
	frame := g.target.frame
	if frame == nil {
		return
	}
	for _, op := range frame.Ops() {
		switch op.Kind {
		case core.DrawFillRect:
			vector.DrawFilledRect(screen, float32(op.X), float32(op.Y), float32(op.W), float32(op.H), op.Color, false)
		case core.DrawFillCircle:
			vector.DrawFilledCircle(screen, float32(op.X), float32(op.Y), float32(op.R), op.Color, true)
		case core.DrawText:
			g.drawText(screen, op)
		}
	}
}

func (g *Game) drawText(screen *ebiten.Image, op core.DrawOp) {
	scale := float64(op.FontSize) / faceSize
	if scale <= 0 {
		scale = 1
	}

	opts := &text.DrawOptions{}
	opts.GeoM.Scale(scale, scale)
	opts.GeoM.Translate(op.X, op.Y)
	opts.ColorScale.ScaleWithColor(op.Color)
	text.Draw(screen, op.Text, g.face, opts)
}

// Layout keeps the logical screen at the playfield size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.runtime.ScreenW, g.runtime.ScreenH
}

// Title returns the window caption.
func (g *Game) Title() string {
	return g.title
}

// Stats returns the driver counters so far.
func (g *Game) Stats() loop.Stats {
	return g.driver.Stats()
}

// frameTarget is the loop.Renderer half of the window: the driver hands it
// a frame during Update and Ebitengine paints it in the following Draw.
type frameTarget struct {
	frame *core.DrawList
}

// Draw keeps the frame. The list stays valid until the next tick.
func (t *frameTarget) Draw(frame *core.DrawList) {
	t.frame = frame
}

// Present is a no-op: Ebitengine presents after Draw.
func (t *frameTarget) Present() error {
	return nil
}

// Frontend plays in a desktop window.
type Frontend struct{}

// ID returns "window".
func (Frontend) ID() string { return "window" }

// Title returns the display name.
func (Frontend) Title() string { return "Desktop window (Ebitengine)" }

// Run opens the window and plays until the player quits, the window is
// closed or ctx is cancelled.
func (Frontend) Run(ctx context.Context, s registry.Session) error {
	g := NewGame(ctx, s, nil)

	ebiten.SetWindowSize(s.Runtime.ScreenW, s.Runtime.ScreenH)
	ebiten.SetWindowTitle(g.Title())
	ebiten.SetTPS(s.Runtime.TickRate)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: run game: %w", err)
	}

	stats := g.Stats()
	if s.Logger != nil {
		s.Logger.Info("session finished", "ticks", stats.Ticks, "rounds", stats.Rounds, "best", stats.BestScore)
	}
	return nil
}
