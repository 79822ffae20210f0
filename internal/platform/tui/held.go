package tui

import (
	"time"

	"github.com/vovakirdan/borno/internal/core"
)

// DefaultHoldWindow is how long a key counts as held after its last press
// or auto-repeat. It must exceed the interval between auto-repeats; the
// longer delay before the first repeat shows up as a short stutter.
const DefaultHoldWindow = 150 * time.Millisecond

// HeldKeys emulates key-down state from the press and repeat events a
// terminal delivers. Movement, focus and fire stay held while repeats keep
// arriving; pause and restart fire once per press.
type HeldKeys struct {
	window  time.Duration
	seen    map[core.Action]time.Time
	pressed core.InputFrame
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(window time.Duration) *HeldKeys {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HeldKeys{
		window:  window,
		seen:    make(map[core.Action]time.Time),
		pressed: core.NewInputFrame(),
	}
}

// isHeld reports whether an action is a continuous key-down action.
func isHeld(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight,
		core.ActionFocus, core.ActionFire:
		return true
	}
	return false
}

// Press records a key event at now.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	if isHeld(a) {
		h.seen[a] = now
		return
	}
	h.pressed.Set(a)
}

// Frame returns the input for a frame ending at now and consumes the
// one-shot presses.
func (h *HeldKeys) Frame(now time.Time) core.InputFrame {
	frame := h.pressed.Clone()
	h.pressed.Clear()

	for a, at := range h.seen {
		if now.Sub(at) <= h.window {
			frame.Set(a)
		} else {
			delete(h.seen, a)
		}
	}

	// Opposite directions: the most recent one wins, matching how a
	// terminal only repeats the last key held.
	h.resolve(&frame, core.ActionLeft, core.ActionRight)
	h.resolve(&frame, core.ActionUp, core.ActionDown)
	return frame
}

func (h *HeldKeys) resolve(frame *core.InputFrame, a, b core.Action) {
	if !frame.Has(a) || !frame.Has(b) {
		return
	}
	if h.seen[a].After(h.seen[b]) {
		delete(frame.Actions, b)
	} else {
		delete(frame.Actions, a)
	}
}

// Release forgets every held key.
func (h *HeldKeys) Release() {
	clear(h.seen)
	h.pressed.Clear()
}
