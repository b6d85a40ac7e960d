package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, H - move left while held
	ActionRight          // Right arrow, D, L - move right while held
	ActionRestart        // R, Enter after game over - restart
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
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

// InputFrame holds the actions active during one simulation tick.
// Held actions (Left/Right) are present on every tick they are held;
// one-shot actions (Pause, Restart) only on the tick they were pressed.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
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

// HoldTracker turns key-press events into a held state for terminals,
// which report presses (and auto-repeats) but never releases.
// A press keeps the action held for ttl ticks; auto-repeat refreshes it.
type HoldTracker struct {
	ttl       int
	remaining map[Action]int
}

// NewHoldTracker creates a tracker that holds each press for ttl ticks.
func NewHoldTracker(ttl int) *HoldTracker {
	if ttl < 1 {
		ttl = 1
	}
	return &HoldTracker{
		ttl:       ttl,
		remaining: make(map[Action]int),
	}
}

// Press marks a as held for the next ttl ticks.
func (h *HoldTracker) Press(a Action) {
	h.remaining[a] = h.ttl
}

// Release drops a immediately.
func (h *HoldTracker) Release(a Action) {
	delete(h.remaining, a)
}

// Held reports whether a is currently held.
func (h *HoldTracker) Held(a Action) bool {
	return h.remaining[a] > 0
}

// Apply sets every held action on the frame and ages the holds by one tick.
func (h *HoldTracker) Apply(f *InputFrame) {
	for a, n := range h.remaining {
		f.Set(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
}

// Reset releases everything.
func (h *HoldTracker) Reset() {
	for a := range h.remaining {
		delete(h.remaining, a)
	}
}
