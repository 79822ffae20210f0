package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, W - move up
	ActionDown           // Down arrow, S - move down
	ActionLeft           // Left arrow, A - move left
	ActionRight          // Right arrow, D - move right
	ActionFocus          // Shift, X - slow focused movement and split shot
	ActionFire           // Z, Space - shoot (held)
	ActionConfirm        // Enter - confirm selection
	ActionBack           // B, Escape - go back
	ActionRestart        // R key - restart after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFocus:
		return "Focus"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for the player during one simulation tick.
// Movement, focus and fire are "held" actions: set for every frame the key is down.
// Pause and restart are "pressed" actions: set only on the frame the key went down.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// Direction returns the normalized movement direction from the held arrows.
// Opposite keys cancel out on their axis.
func (f InputFrame) Direction() Vec2 {
	var d Vec2
	switch {
	case f.Has(ActionLeft) && f.Has(ActionRight):
	case f.Has(ActionLeft):
		d.X = -1
	case f.Has(ActionRight):
		d.X = 1
	}
	switch {
	case f.Has(ActionUp) && f.Has(ActionDown):
	case f.Has(ActionUp):
		d.Y = -1
	case f.Has(ActionDown):
		d.Y = 1
	}
	return d.Normalize()
}
