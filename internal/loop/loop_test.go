package loop

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/lane-racer/internal/config"
	"github.com/vovakirdan/lane-racer/internal/core"
	"github.com/vovakirdan/lane-racer/internal/racer"
)

// scriptedInput replays one frame per poll and quits when it runs out.
type scriptedInput struct {
	frames []core.InputFrame
	polls  int
}

func (s *scriptedInput) Poll() core.InputFrame {
	s.polls++
	if s.polls > len(s.frames) {
		return core.InputOf(core.ActionQuit)
	}
	return s.frames[s.polls-1]
}

func idle(n int) *scriptedInput {
	frames := make([]core.InputFrame, n)
	for i := range frames {
		frames[i] = core.NewInputFrame()
	}
	return &scriptedInput{frames: frames}
}

// recordingRenderer keeps the size of every drawn frame.
type recordingRenderer struct {
	drawn      []int
	presents   int
	presentErr error
}

func (r *recordingRenderer) Draw(frame *core.DrawList) {
	r.drawn = append(r.drawn, frame.Len())
}

func (r *recordingRenderer) Present() error {
	r.presents++
	return r.presentErr
}

func newGame() *racer.Game {
	cfg := config.DefaultRacerConfig()
	g := racer.New(cfg)
	g.Reset(cfg.Runtime(1))
	return g
}

func TestRunStopsOnQuit(t *testing.T) {
	g := newGame()
	in := idle(60)
	r := &recordingRenderer{}
	d := New(g, in, r, nil)

	if err := d.Run(context.Background(), FreeClock{}); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if len(r.drawn) != 60 || r.presents != 60 {
		t.Errorf("expected 60 frames drawn and presented, got %d/%d", len(r.drawn), r.presents)
	}
	if d.Stats().Ticks != 61 {
		t.Errorf("expected 61 ticks including the quit, got %d", d.Stats().Ticks)
	}
	if g.State().Score != 0 || len(g.Obstacles()) != 0 {
		t.Error("nothing should spawn in the first 60 ticks")
	}

	// Further ticks are no-ops
	quit, err := d.Tick()
	if !quit || err != nil {
		t.Errorf("Tick() after quit = (%v, %v), expected (true, nil)", quit, err)
	}
}

func TestRunCountsRounds(t *testing.T) {
	g := newGame()
	g.SetLaneSource(fixedLane(1))

	// Idle centred car crashes into the first centre-lane obstacle at tick
	// 161, then restarts and crashes again 161 ticks later.
	frames := make([]core.InputFrame, 0, 400)
	for i := 0; i < 161; i++ {
		frames = append(frames, core.NewInputFrame())
	}
	frames = append(frames, core.InputOf(core.ActionRestart))
	for i := 0; i < 161; i++ {
		frames = append(frames, core.NewInputFrame())
	}

	d := New(g, &scriptedInput{frames: frames}, &recordingRenderer{}, nil)
	if err := d.Run(context.Background(), FreeClock{}); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if d.Stats().Rounds != 2 {
		t.Errorf("expected 2 finished rounds, got %d", d.Stats().Rounds)
	}
	if !g.State().GameOver() {
		t.Error("second round should have ended in a crash")
	}
}

func TestRunInterruptedByContext(t *testing.T) {
	g := newGame()
	in := &scriptedInput{frames: nil}
	in.frames = make([]core.InputFrame, 1<<20)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := New(g, in, &recordingRenderer{}, nil)
	if err := d.Run(ctx, FreeClock{}); err != nil {
		t.Errorf("cancelled Run() should return nil, got %v", err)
	}
	if d.Stats().Ticks != 0 {
		t.Errorf("no tick should run after cancellation, got %d", d.Stats().Ticks)
	}
}

func TestRunPropagatesPresentError(t *testing.T) {
	boom := errors.New("display lost")
	d := New(newGame(), idle(10), &recordingRenderer{presentErr: boom}, nil)

	err := d.Run(context.Background(), FreeClock{})
	if !errors.Is(err, boom) {
		t.Errorf("expected present error, got %v", err)
	}
}

func TestTickerClockPaces(t *testing.T) {
	clock := NewTickerClock(200)
	defer clock.Stop()

	start := time.Now()
	for i := 0; i < 5; i++ {
		if err := clock.Wait(context.Background()); err != nil {
			t.Fatalf("Wait() failed: %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("5 ticks at 200/s should take at least 20ms, took %v", elapsed)
	}
}

func TestTickerClockCancel(t *testing.T) {
	clock := NewTickerClock(1)
	defer clock.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if err := clock.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline error, got %v", err)
	}
}

type fixedLane int

func (f fixedLane) Intn(n int) int {
	return int(f) % n
}

func TestRunTicksBudget(t *testing.T) {
	g := newGame()
	r := &recordingRenderer{}
	d := New(g, idle(1000), r, nil)

	if err := d.RunTicks(context.Background(), FreeClock{}, 100); err != nil {
		t.Fatalf("RunTicks() failed: %v", err)
	}
	if d.Stats().Ticks != 100 || len(r.drawn) != 100 {
		t.Errorf("expected exactly 100 ticks, got %d ticks and %d frames", d.Stats().Ticks, len(r.drawn))
	}
	if len(g.Obstacles()) != 1 {
		t.Errorf("one obstacle should be on the road after 100 ticks, got %d", len(g.Obstacles()))
	}
}
