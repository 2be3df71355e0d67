package core

import "testing"

func TestInputFrameEdgeAndLevel(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPadFire)
	f.Hold(ActionLeft)
	f.Axis = -0.7
	f.DevicePresent = true

	if !f.FirePressed() {
		t.Error("FirePressed() = false, expected true for PadFire")
	}
	if f.Has(ActionLeft) {
		t.Error("Has(Left) = true, expected held-only action not to be pressed")
	}
	if !f.IsHeld(ActionLeft) {
		t.Error("IsHeld(Left) = false, expected true")
	}

	clone := f.Clone()
	f.Clear()

	if f.FirePressed() || f.IsHeld(ActionLeft) || f.Axis != 0 {
		t.Error("Clear() should drop actions, held state and axis")
	}
	if !f.DevicePresent {
		t.Error("Clear() should keep device presence")
	}
	if !clone.Has(ActionPadFire) || !clone.IsHeld(ActionLeft) || clone.Axis != -0.7 {
		t.Error("Clone() should not share state with the original")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionFire) || f.IsHeld(ActionRight) {
		t.Error("zero InputFrame should report nothing")
	}
	f.Set(ActionFire)
	if !f.Has(ActionFire) {
		t.Error("Set() on zero InputFrame should allocate")
	}
}
