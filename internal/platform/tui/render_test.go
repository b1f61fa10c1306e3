package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lane-racer/internal/config"
	"github.com/vovakirdan/lane-racer/internal/core"
	"github.com/vovakirdan/lane-racer/internal/racer"
)

func TestSpan(t *testing.T) {
	tests := []struct {
		name           string
		pos, size      float64
		scale          float64
		wantLo, wantHi int
	}{
		{"aligned", 100, 600, 10, 10, 70},
		{"thin shape keeps one cell", 398, 4, 10, 40, 41},
		{"rounds to nearest", 104, 12, 10, 10, 12},
		{"zero size", 50, 0, 10, 5, 6},
		{"clipped above", -75, 80, 10, 0, 1},
		{"clipped below", 590, 80, 10, 59, 60},
		{"fully outside", 700, 80, 10, 60, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := span(tt.pos, tt.size, tt.scale, 60)
			if lo != tt.wantLo || hi != tt.wantHi {
				t.Errorf("span(%v, %v, %v) = [%d, %d), want [%d, %d)",
					tt.pos, tt.size, tt.scale, lo, hi, tt.wantLo, tt.wantHi)
			}
		})
	}
}

func TestRasterizerRect(t *testing.T) {
	r := NewRasterizer(800, 600, 80, 30)
	red := core.RGB(255, 0, 0)
	blue := core.RGB(0, 0, 255)

	dl := core.NewDrawList(2)
	dl.FillRect(core.NewRect(0, 0, 800, 600), red)
	dl.FillRect(core.NewRect(100, 100, 50, 80), blue)
	r.Draw(dl)

	s := r.Screen()
	if got := s.GetCell(0, 0).Bg; got != red {
		t.Errorf("background cell = %v, want %v", got, red)
	}
	// 100..150 px -> cols 10..15, 100..180 px -> rows 5..9
	if got := s.GetCell(10, 5).Bg; got != blue {
		t.Errorf("rect top-left cell = %v, want %v", got, blue)
	}
	if got := s.GetCell(14, 8).Bg; got != blue {
		t.Errorf("rect bottom-right cell = %v, want %v", got, blue)
	}
	if got := s.GetCell(15, 5).Bg; got != red {
		t.Errorf("cell right of rect = %v, want %v", got, red)
	}
	if got := s.GetCell(10, 9).Bg; got != red {
		t.Errorf("cell below rect = %v, want %v", got, red)
	}
}

func TestRasterizerTextKeepsBackground(t *testing.T) {
	r := NewRasterizer(800, 600, 80, 30)
	green := core.RGB(0, 128, 0)
	white := core.RGB(255, 255, 255)

	dl := core.NewDrawList(2)
	dl.FillRect(core.NewRect(0, 0, 800, 600), green)
	dl.Text(10, 10, "Score: 0", white, 36)
	r.Draw(dl)

	s := r.Screen()
	if got := s.Row(0)[1:9]; got != "Score: 0" {
		t.Errorf("row 0 = %q, want score text at col 1", s.Row(0))
	}
	cell := s.GetCell(1, 0)
	if cell.Fg != white || cell.Bg != green {
		t.Errorf("text cell = %+v, want white on green", cell)
	}
}

func TestRasterizerGameFrame(t *testing.T) {
	cfg := config.DefaultRacerConfig()
	g := racer.New(cfg)
	g.Reset(cfg.Runtime(1))

	res := g.Step(core.NewInputFrame())
	r := NewRasterizer(800, 600, 80, 30)
	r.Draw(res.Frame)

	s := r.Screen()
	pal := cfg.Palette
	if got := s.GetCell(5, 15).Bg; got != pal.Grass {
		t.Errorf("left verge = %v, want grass", got)
	}
	if got := s.GetCell(20, 15).Bg; got != pal.Road {
		t.Errorf("left lane = %v, want road", got)
	}
	// Dashes start at y=0 every 40px: rows 0, 2, 4...
	if got := s.GetCell(40, 2).Bg; got != pal.Divider {
		t.Errorf("dash cell = %v, want divider", got)
	}
	if got := s.GetCell(40, 3).Bg; got != pal.Road {
		t.Errorf("gap between dashes = %v, want road", got)
	}
	// Car body at x=375..425, y=500..580
	if got := s.GetCell(40, 27).Bg; got != pal.Car {
		t.Errorf("car cell = %v, want car colour", got)
	}
	if !strings.Contains(s.Row(0), "Score: 0") {
		t.Errorf("row 0 should carry the score, got %q", s.Row(0))
	}
}

func TestRasterizerResize(t *testing.T) {
	r := NewRasterizer(800, 600, 80, 30)
	r.Resize(40, 0)
	if r.Screen().Width() != 40 || r.Screen().Height() != 1 {
		t.Errorf("expected 40x1 after resize, got %dx%d", r.Screen().Width(), r.Screen().Height())
	}
	if err := r.Present(); err != nil {
		t.Errorf("Present() = %v", err)
	}
}

func TestPainterRendersText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab", core.RGB(255, 255, 255))
	s.Paint(3, 1, core.RGB(255, 0, 0))

	p := NewPainter(lipgloss.NewRenderer(&strings.Builder{}))
	out := p.RenderScreen(s)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "ab") {
		t.Errorf("first line should contain text, got %q", lines[0])
	}
	if len(p.styles) != 3 {
		t.Errorf("expected 3 cached colour pairs, got %d", len(p.styles))
	}
}
