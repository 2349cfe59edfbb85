package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionActivate) {
		t.Error("empty frame should not have Activate")
	}

	f.Set(ActionActivate)
	if !f.Has(ActionActivate) || !f.Active(ActionActivate) {
		t.Error("Activate should be set and active")
	}
	if f.IsHeld(ActionActivate) {
		t.Error("Set should not mark the action as held")
	}

	f.Clear()
	if f.Has(ActionActivate) {
		t.Error("Clear should reset actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionQuit) || f.IsHeld(ActionQuit) {
		t.Error("zero frame should report nothing")
	}
	f.Hold(ActionActivate)
	if !f.Active(ActionActivate) {
		t.Error("Hold on zero frame should allocate and mark held")
	}
}

func TestEdgeDetector(t *testing.T) {
	var e EdgeDetector

	levels := []bool{true, true, true, false, true, false, false, true}
	want := []bool{true, false, false, false, true, false, false, true}

	for i, level := range levels {
		if got := e.Update(level); got != want[i] {
			t.Errorf("tick %d: Update(%v) = %v, expected %v", i, level, got, want[i])
		}
	}
}

func TestEdgeDetectorLatch(t *testing.T) {
	var e EdgeDetector
	e.Latch()

	if e.Update(true) {
		t.Error("latched detector should not fire while the signal stays high")
	}
	e.Update(false)
	if !e.Update(true) {
		t.Error("detector should fire after release")
	}
}

func TestActionString(t *testing.T) {
	if ActionActivate.String() != "Activate" {
		t.Errorf("String() = %q", ActionActivate.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("String() = %q", Action(99).String())
	}
}
