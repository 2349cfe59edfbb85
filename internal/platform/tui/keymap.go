package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// KeyMapper translates Bubble Tea input messages to game actions.
//
// Terminals report key presses but not releases, so a key is a one-tick
// event. The left mouse button does report releases and is tracked as a
// held level while it is down.
type KeyMapper struct {
	pointerDown bool
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return core.ActionQuit, true
	case " ", "up", "w", "k":
		return core.ActionActivate, false
	case "r", "enter":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// MapMouseToFrame records a left-button press as an activate event and
// tracks whether the button is still down.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	if msg.Button != tea.MouseButtonLeft {
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		km.pointerDown = true
		frame.Set(core.ActionActivate)
	case tea.MouseActionRelease:
		km.pointerDown = false
	}
}

// HoldPointer marks activate as held on the frame while the button is down.
func (km *KeyMapper) HoldPointer(frame *core.InputFrame) {
	if km.pointerDown {
		frame.Hold(core.ActionActivate)
	}
}

// PointerDown reports whether the left mouse button is currently held.
func (km *KeyMapper) PointerDown() bool {
	return km.pointerDown
}
