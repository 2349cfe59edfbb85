package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionActivate, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionActivate, false},
		{"w", runeKey('w'), core.ActionActivate, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionRestart, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	km := NewKeyMapper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('w'), &frame) {
		t.Fatal("w reported as quit")
	}
	if !frame.Has(core.ActionActivate) {
		t.Error("activate not set")
	}

	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q not reported as quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit should not reach the game")
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapMouseToFrame(tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}, &frame)
	if !frame.Has(core.ActionActivate) || !km.PointerDown() {
		t.Fatal("left press should activate and hold")
	}

	frame.Clear()
	km.HoldPointer(&frame)
	if !frame.IsHeld(core.ActionActivate) || frame.Has(core.ActionActivate) {
		t.Error("held button should be a level, not a new event")
	}

	km.MapMouseToFrame(tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease}, &frame)
	frame.Clear()
	km.HoldPointer(&frame)
	if frame.Active(core.ActionActivate) || km.PointerDown() {
		t.Error("released button still active")
	}

	km.MapMouseToFrame(tea.MouseMsg{Button: tea.MouseButtonRight, Action: tea.MouseActionPress}, &frame)
	if frame.Active(core.ActionActivate) {
		t.Error("right button should be ignored")
	}
}
