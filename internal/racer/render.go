package racer

import (
	"fmt"

	"github.com/vovakirdan/lane-racer/internal/core"
)

// Font sizes used by text instructions.
const (
	HUDFontSize   = 36
	TitleFontSize = 74
)

// Car detail geometry, relative to the body.
const (
	detailInset    = 10 // windshield and wheel offset from the body edge
	windshieldH    = 20
	wheelRadius    = 8
	rearWindowLift = 30 // obstacle windshield distance from its bottom edge
)

// Render draws the current state into dst without advancing the game.
func (g *Game) Render(dst *core.DrawList) {
	dst.Reset()
	if g.phase == core.PhaseGameOver {
		g.drawGameOver(dst)
		return
	}
	g.drawPlaying(dst)
}

// drawPlaying emits the in-round scene: grass, road, dashes, the player,
// obstacles and the score.
func (g *Game) drawPlaying(dst *core.DrawList) {
	g.drawScene(dst)

	pal := g.runtime.Palette
	dst.Text(10, 10, fmt.Sprintf("Score: %d", g.score), pal.HUD, HUDFontSize)
}

// drawGameOver keeps the frozen scene underneath the final score and prompt.
func (g *Game) drawGameOver(dst *core.DrawList) {
	g.drawScene(dst)

	pal := g.runtime.Palette
	cx := float64(g.runtime.ScreenW / 2)
	cy := float64(g.runtime.ScreenH / 2)

	dst.Text(cx-200, cy-100, "GAME OVER", pal.Alert, TitleFontSize)
	dst.Text(cx-80, cy, fmt.Sprintf("Score: %d", g.score), pal.Text, HUDFontSize)
	dst.Text(cx-220, cy+50, "Press R to Restart or Q to Quit", pal.Text, HUDFontSize)
}

// drawScene emits everything except text.
func (g *Game) drawScene(dst *core.DrawList) {
	g.drawRoad(dst)
	g.drawCar(dst)
	for _, o := range g.obstacles {
		g.drawObstacle(dst, o)
	}
}

// drawRoad emits the grass background, the road surface and the centre dashes.
func (g *Game) drawRoad(dst *core.DrawList) {
	pal := g.runtime.Palette
	w := float64(g.runtime.ScreenW)
	h := float64(g.runtime.ScreenH)
	road := g.cfg.Road
	lane := float64(road.LaneWidth)

	dst.FillRect(core.NewRect(0, 0, w, h), pal.Grass)
	dst.FillRect(core.NewRect(lane, 0, w-2*lane, h), pal.Road)

	if road.DividerSpacing <= 0 {
		return
	}
	x := float64(g.runtime.ScreenW/2 - road.DividerWidth/2)
	for y := 0; y < g.runtime.ScreenH; y += road.DividerSpacing {
		dst.FillRect(core.NewRect(x, float64(y), float64(road.DividerWidth), float64(road.DividerLength)), pal.Divider)
	}
}

// drawCar emits the player's body, windshield and rear wheels.
func (g *Game) drawCar(dst *core.DrawList) {
	pal := g.runtime.Palette
	c := g.car

	dst.FillRect(c.Rect(), pal.Car)
	dst.FillRect(core.NewRect(c.X+detailInset, c.Y+detailInset, c.Width-2*detailInset, windshieldH), pal.Detail)
	dst.FillCircle(c.X+detailInset, c.Y+c.Height-detailInset, wheelRadius, pal.Detail)
	dst.FillCircle(c.X+c.Width-detailInset, c.Y+c.Height-detailInset, wheelRadius, pal.Detail)
}

// drawObstacle emits an oncoming car: body plus a windshield near its
// bottom edge, since it faces the player.
func (g *Game) drawObstacle(dst *core.DrawList, o Obstacle) {
	pal := g.runtime.Palette

	dst.FillRect(o.Rect(), pal.Obstacle)
	dst.FillRect(core.NewRect(o.X+detailInset, o.Y+o.Height-rearWindowLift, o.Width-2*detailInset, windshieldH), pal.Detail)
}
