package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionFire) {
		t.Error("new frame should have no actions")
	}

	f.Set(ActionFire)
	f.Set(ActionTurnLeft)
	if !f.Has(ActionFire) || !f.Has(ActionTurnLeft) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionThrust) {
		t.Error("unset action should not be reported")
	}

	f.Clear()
	if f.Has(ActionFire) || f.Has(ActionTurnLeft) {
		t.Error("Clear should remove all actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionFire) {
		t.Error("zero frame should report no actions")
	}
	f.Set(ActionFire) // Should not panic on nil map
	if !f.Has(ActionFire) {
		t.Error("Set on zero frame should work")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionThrust)

	clone := f.Clone()
	f.Clear()

	if !clone.Has(ActionThrust) {
		t.Error("clone should be independent of the original")
	}
}

func TestActionString(t *testing.T) {
	if ActionFire.String() != "Fire" {
		t.Errorf("ActionFire.String() = %q, expected %q", ActionFire.String(), "Fire")
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q, expected %q", Action(99).String(), "Unknown")
	}
}
