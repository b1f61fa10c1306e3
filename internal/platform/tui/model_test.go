package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lane-racer/internal/config"
	"github.com/vovakirdan/lane-racer/internal/registry"
)

func newTestModel(maxTicks uint64) Model {
	cfg := config.DefaultRacerConfig()
	return NewModel(registry.Session{
		Config:   cfg,
		Runtime:  cfg.Runtime(1),
		MaxTicks: maxTicks,
	}, 80, 31)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelTickDrawsFrame(t *testing.T) {
	m := newTestModel(0)
	if m.Init() == nil {
		t.Fatal("Init should start the tick loop")
	}

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil || isQuit(cmd) {
		t.Fatal("a playing tick should schedule the next tick")
	}

	view := m.View()
	if !strings.Contains(view, "Score: 0") {
		t.Error("view should show the score overlay")
	}
	if !strings.Contains(view, "quit") {
		t.Error("view should show the controls footer")
	}
	if m.Stats().Ticks != 1 {
		t.Errorf("expected 1 tick, got %d", m.Stats().Ticks)
	}
}

func TestModelSteering(t *testing.T) {
	m := newTestModel(0)
	startX := m.game.Car().X

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, TickMsg{})

	if got := m.game.Car().X; got != startX-5 {
		t.Errorf("car x = %v after one held-left tick, want %v", got, startX-5)
	}
}

func TestModelQuitKey(t *testing.T) {
	m := newTestModel(0)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd != nil {
		t.Error("quit key should wait for the next tick")
	}

	m, cmd = update(t, m, TickMsg{})
	if !isQuit(cmd) {
		t.Error("tick after quit key should quit the program")
	}
	if m.View() != "" {
		t.Error("view should be empty once quitting")
	}
	if m.Err() != nil {
		t.Errorf("quit should not be an error, got %v", m.Err())
	}
}

func TestModelTickBudget(t *testing.T) {
	m := newTestModel(3)

	var cmd tea.Cmd
	for i := 0; i < 3; i++ {
		m, cmd = update(t, m, TickMsg{})
	}
	if !isQuit(cmd) {
		t.Error("model should quit when the tick budget is spent")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(0)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 41})
	if w, h := m.raster.Screen().Width(), m.raster.Screen().Height(); w != 100 || h != 40 {
		t.Errorf("playfield = %dx%d, want 100x40", w, h)
	}
}
