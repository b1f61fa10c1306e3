package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lane-racer/internal/core"
)

// Rasterizer is a loop.Renderer that maps the pixel draw list onto a
// character grid. Each cell samples a worldW/cols by worldH/rows block of
// the playfield; shapes thinner than a cell still cover one cell so lane
// dashes and wheels stay visible.
type Rasterizer struct {
	screen *core.Screen
	worldW float64
	worldH float64
}

// NewRasterizer creates a rasterizer for a worldW x worldH pixel playfield
// shown on cols x rows cells.
func NewRasterizer(worldW, worldH, cols, rows int) *Rasterizer {
	return &Rasterizer{
		screen: core.NewScreen(core.Max(cols, 1), core.Max(rows, 1)),
		worldW: float64(worldW),
		worldH: float64(worldH),
	}
}

// Resize changes the cell grid, e.g. after a terminal resize.
func (r *Rasterizer) Resize(cols, rows int) {
	r.screen.Resize(core.Max(cols, 1), core.Max(rows, 1))
}

// Screen returns the cell grid holding the last drawn frame.
func (r *Rasterizer) Screen() *core.Screen {
	return r.screen
}

// Draw repaints the grid from frame, in order.
func (r *Rasterizer) Draw(frame *core.DrawList) {
	r.screen.Clear()
	sx, sy := r.scale()

	for _, op := range frame.Ops() {
		switch op.Kind {
		case core.DrawFillRect, core.DrawFillCircle:
			b := op.Bounds()
			c0, c1 := span(b.X, b.W, sx, r.screen.Width())
			r0, r1 := span(b.Y, b.H, sy, r.screen.Height())
			for y := r0; y < r1; y++ {
				for x := c0; x < c1; x++ {
					r.screen.Paint(x, y, op.Color)
				}
			}
		case core.DrawText:
			r.screen.DrawText(int(op.X/sx), int(op.Y/sy), op.Text, op.Color)
		}
	}
}

// Present is a no-op: Bubble Tea pulls the grid through View.
func (r *Rasterizer) Present() error {
	return nil
}

func (r *Rasterizer) scale() (sx, sy float64) {
	return r.worldW / float64(r.screen.Width()), r.worldH / float64(r.screen.Height())
}

// span returns the half-open cell range covered by [pos, pos+size),
// clipped to [0, limit).
func span(pos, size, scale float64, limit int) (int, int) {
	lo := int(math.Round(pos / scale))
	hi := int(math.Round((pos + size) / scale))
	if hi <= lo {
		hi = lo + 1
	}
	return core.Clamp(lo, 0, limit), core.Clamp(hi, 0, limit)
}

type cellStyle struct {
	fg, bg core.Color
}

// Painter turns a cell grid into ANSI-styled text. Styles are cached per
// colour pair since a frame only uses a handful.
type Painter struct {
	renderer *lipgloss.Renderer
	styles   map[cellStyle]lipgloss.Style
}

// NewPainter creates a painter for renderer. A nil renderer uses the
// process-wide default, which is right for a local terminal but not for SSH
// sessions.
func NewPainter(renderer *lipgloss.Renderer) *Painter {
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	return &Painter{
		renderer: renderer,
		styles:   make(map[cellStyle]lipgloss.Style),
	}
}

func (p *Painter) style(key cellStyle) lipgloss.Style {
	if s, ok := p.styles[key]; ok {
		return s
	}
	s := p.renderer.NewStyle().
		Foreground(lipgloss.Color(key.fg.Hex())).
		Background(lipgloss.Color(key.bg.Hex()))
	p.styles[key] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func (p *Painter) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)
			key := cellStyle{fg: first.Fg, bg: first.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != key.fg || cell.Bg != key.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.style(key).Render(run.String()))
		}
	}
	return sb.String()
}
