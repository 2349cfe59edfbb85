package core

// Action is a semantic input intent, abstracted from physical keys and buttons.
// Keyboard and pointer sources are unified before they reach the game.
type Action int

const (
	ActionNone     Action = iota
	ActionActivate        // Space, Up, W, left click - start flight, flap, restart
	ActionRestart         // R, Enter - restart after game over
	ActionQuit            // Q, Ctrl+C - leave the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionActivate:
		return "Activate"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state for one simulation tick.
//
// Actions holds discrete events delivered during the tick (key presses,
// button presses). Held holds continuous state sampled at the tick
// (a pointer button that is still down).
type InputFrame struct {
	Actions map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
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
	return f.Actions[a]
}

// Hold marks an action as continuously held during this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// IsHeld returns true if the action is being held down.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a]
}

// Active reports whether an action was either triggered or held this frame.
// This is the level signal used for edge detection.
func (f InputFrame) Active(a Action) bool {
	return f.Has(a) || f.IsHeld(a)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.Held)
}

// EdgeDetector turns a level signal into a rising-edge trigger.
// It fires once per continuous press and re-arms when the signal drops.
type EdgeDetector struct {
	latched bool
}

// Update feeds the current level and reports whether this is a rising edge.
func (e *EdgeDetector) Update(level bool) bool {
	if !level {
		e.latched = false
		return false
	}
	if e.latched {
		return false
	}
	e.latched = true
	return true
}

// Latch marks the signal as already consumed for the current press.
func (e *EdgeDetector) Latch() {
	e.latched = true
}

// Reset re-arms the detector.
func (e *EdgeDetector) Reset() {
	e.latched = false
}
