package tui

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/vovakirdan/lane-racer/internal/core"
	"github.com/vovakirdan/lane-racer/internal/loop"
	"github.com/vovakirdan/lane-racer/internal/racer"
	"github.com/vovakirdan/lane-racer/internal/registry"
)

// footerRows is the space below the playfield reserved for the controls.
const footerRows = 1

func init() {
	registry.Register("tui", func() registry.Frontend { return Frontend{} })
}

// Model is the Bubble Tea model for one racer session. Bubble Tea calls
// Update and View from a single goroutine, so each tick is fully simulated
// before the next View reads the grid.
type Model struct {
	game     *racer.Game
	driver   *loop.Driver
	keys     *HeldKeys
	raster   *Rasterizer
	painter  *Painter
	keyMap   KeyMap
	help     help.Model
	tickRate int
	maxTicks uint64
	quitting bool
	err      error
}

// NewModel creates a model for the session, drawn on a cols x rows terminal.
func NewModel(s registry.Session, cols, rows int) Model {
	game := racer.New(s.Config)
	game.Reset(s.Runtime)

	keys := NewHeldKeys(DefaultHoldWindow)
	raster := NewRasterizer(s.Runtime.ScreenW, s.Runtime.ScreenH, cols, rows-footerRows)

	return Model{
		game:     game,
		driver:   loop.New(game, keys, raster, s.Logger),
		keys:     keys,
		raster:   raster,
		painter:  NewPainter(nil),
		keyMap:   DefaultKeyMap(),
		help:     help.New(),
		tickRate: s.Runtime.TickRate,
		maxTicks: s.MaxTicks,
	}
}

// WithRenderer returns a copy of the model that styles output through r.
func (m Model) WithRenderer(r *lipgloss.Renderer) Model {
	m.painter = NewPainter(r)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if a := m.keyMap.Action(msg); a != core.ActionNone {
			m.keys.Press(a)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.raster.Resize(msg.Width, msg.Height-footerRows)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick runs one frame through the driver.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	quit, err := m.driver.Tick()
	if err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	if quit || (m.maxTicks > 0 && m.driver.Stats().Ticks >= m.maxTicks) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.tickRate)
}

// View renders the last frame and the controls footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.painter.RenderScreen(m.raster.Screen()) + "\n" + m.help.View(m.keyMap)
}

// Stats returns the driver counters for the session so far.
func (m Model) Stats() loop.Stats {
	return m.driver.Stats()
}

// Err returns the error that stopped the session, if any.
func (m Model) Err() error {
	return m.err
}

// Frontend plays in the local terminal.
type Frontend struct{}

// ID returns "tui".
func (Frontend) ID() string { return "tui" }

// Title returns the display name.
func (Frontend) Title() string { return "Terminal (Bubble Tea)" }

// Run plays until the player quits or ctx is cancelled.
func (Frontend) Run(ctx context.Context, s registry.Session) error {
	cols, rows := terminalSize()

	p := tea.NewProgram(
		NewModel(s, cols, rows),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: run program: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return nil
	}
	stats := m.Stats()
	if s.Logger != nil {
		s.Logger.Info("session finished", "ticks", stats.Ticks, "rounds", stats.Rounds, "best", stats.BestScore)
	}
	return m.Err()
}

// terminalSize reports the size of stdout, falling back to 80x24.
func terminalSize() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}
