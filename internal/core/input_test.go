package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero InputFrame should have no actions")
	}
	if !f.Empty() {
		t.Error("zero InputFrame should be empty")
	}

	f.Set(ActionLeft)
	if !f.Has(ActionLeft) {
		t.Error("Has(Left) should be true after Set")
	}
	if f.Has(ActionRight) {
		t.Error("Has(Right) should be false")
	}

	f.Clear()
	if f.Has(ActionLeft) || !f.Empty() {
		t.Error("Clear should remove all actions")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:    "None",
		ActionUp:      "Up",
		ActionRight:   "Right",
		ActionRestart: "Restart",
		Action(99):    "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, want %q", int(a), got, want)
		}
	}
}
