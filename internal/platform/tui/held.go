package tui

import (
	"time"

	"github.com/vovakirdan/lane-racer/internal/core"
)

// DefaultHoldWindow is how long a steering key counts as held after the
// terminal last reported it. Terminals send presses and auto-repeats but
// never releases.
const DefaultHoldWindow = 150 * time.Millisecond

// HeldKeys turns discrete key events into level-triggered input frames.
// Steering stays active for the hold window after each press or repeat;
// restart and quit fire once on the next poll.
type HeldKeys struct {
	window   time.Duration
	now      func() time.Time
	lastSeen map[core.Action]time.Time
	pending  core.InputFrame
}

// NewHeldKeys creates a tracker. A non-positive window uses DefaultHoldWindow.
func NewHeldKeys(window time.Duration) *HeldKeys {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HeldKeys{
		window:   window,
		now:      time.Now,
		lastSeen: make(map[core.Action]time.Time),
		pending:  core.NewInputFrame(),
	}
}

// Press records a key event for action a.
func (h *HeldKeys) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		h.lastSeen[core.ActionLeft] = h.now()
		delete(h.lastSeen, core.ActionRight)
	case core.ActionRight:
		h.lastSeen[core.ActionRight] = h.now()
		delete(h.lastSeen, core.ActionLeft)
	case core.ActionRestart, core.ActionQuit:
		h.pending.Set(a)
	}
}

// Poll returns the input for the coming tick and consumes one-shot actions.
func (h *HeldKeys) Poll() core.InputFrame {
	frame := h.pending.Clone()
	h.pending.Clear()

	now := h.now()
	for a, seen := range h.lastSeen {
		if now.Sub(seen) <= h.window {
			frame.Set(a)
		} else {
			delete(h.lastSeen, a)
		}
	}
	return frame
}
