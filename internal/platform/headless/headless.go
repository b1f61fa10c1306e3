// Package headless runs the racer without a display. The autopilot drives
// and a logging renderer reports progress, which makes it useful for soak
// runs, demos over a plain log stream and deterministic replays by seed.
package headless

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-racer/internal/core"
	"github.com/vovakirdan/lane-racer/internal/loop"
	"github.com/vovakirdan/lane-racer/internal/racer"
	"github.com/vovakirdan/lane-racer/internal/registry"
)

func init() {
	registry.Register("headless", func() registry.Frontend { return Frontend{} })
}

// LogRenderer is a loop.Renderer that logs a summary of every Nth frame
// instead of drawing it.
type LogRenderer struct {
	logger *log.Logger
	every  uint64
	frames uint64
	ops    int
	texts  []string
}

// NewLogRenderer logs once every `every` frames. Zero disables logging.
func NewLogRenderer(logger *log.Logger, every uint64) *LogRenderer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &LogRenderer{logger: logger, every: every}
}

// Draw records the frame's size and text lines.
func (r *LogRenderer) Draw(frame *core.DrawList) {
	r.ops = frame.Len()
	r.texts = r.texts[:0]
	for _, op := range frame.Ops() {
		if op.Kind == core.DrawText {
			r.texts = append(r.texts, op.Text)
		}
	}
}

// Present counts the frame and logs it when due.
func (r *LogRenderer) Present() error {
	r.frames++
	if r.every > 0 && r.frames%r.every == 0 {
		r.logger.Debug("frame", "n", r.frames, "ops", r.ops, "text", r.texts)
	}
	return nil
}

// Frames returns the number of frames presented.
func (r *LogRenderer) Frames() uint64 {
	return r.frames
}

// Result summarises a headless run.
type Result struct {
	Stats  loop.Stats
	Frames uint64
	State  core.GameState
}

// Play runs the autopilot for the session. With a tick budget the loop runs
// unpaced and returns when the budget is spent; without one it runs in real
// time until ctx is cancelled.
func Play(ctx context.Context, s registry.Session) (Result, error) {
	game := racer.New(s.Config)
	game.Reset(s.Runtime)

	renderer := NewLogRenderer(s.Logger, uint64(s.Runtime.TickRate))
	driver := loop.New(game, racer.NewAutopilot(game, racer.DefaultLookahead), renderer, s.Logger)

	var clock loop.Clock = loop.FreeClock{}
	if s.MaxTicks == 0 {
		ticker := loop.NewTickerClock(s.Runtime.TickRate)
		defer ticker.Stop()
		clock = ticker
	}

	if err := driver.RunTicks(ctx, clock, s.MaxTicks); err != nil {
		return Result{}, fmt.Errorf("headless: %w", err)
	}

	return Result{
		Stats:  driver.Stats(),
		Frames: renderer.Frames(),
		State:  game.State(),
	}, nil
}

// Frontend is the display-less autopilot frontend.
type Frontend struct{}

// ID returns "headless".
func (Frontend) ID() string { return "headless" }

// Title returns the display name.
func (Frontend) Title() string { return "Headless autopilot" }

// Run plays and logs the outcome.
func (Frontend) Run(ctx context.Context, s registry.Session) error {
	res, err := Play(ctx, s)
	if err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.Info("run finished",
			"ticks", res.Stats.Ticks,
			"crashes", res.Stats.Rounds,
			"best", res.Stats.BestScore,
			"score", res.State.Score,
			"phase", res.State.Phase,
		)
	}
	return nil
}
