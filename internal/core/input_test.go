package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionLeft) {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionLeft)
	f.Set(ActionPause)
	if !f.Has(ActionLeft) || !f.Has(ActionPause) {
		t.Error("Set actions should be reported by Has")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear should drop all actions")
	}
	if !clone.Has(ActionLeft) {
		t.Error("Clone should not share storage with the original")
	}

	var zero InputFrame
	if zero.Has(ActionRight) {
		t.Error("zero-value frame should report nothing")
	}
	zero.Set(ActionRight)
	if !zero.Has(ActionRight) {
		t.Error("Set on zero-value frame should allocate")
	}
}

func TestHoldTrackerExpires(t *testing.T) {
	h := NewHoldTracker(3)
	h.Press(ActionRight)

	for i := 0; i < 3; i++ {
		f := NewInputFrame()
		h.Apply(&f)
		if !f.Has(ActionRight) {
			t.Fatalf("tick %d: right should still be held", i)
		}
	}

	f := NewInputFrame()
	h.Apply(&f)
	if f.Has(ActionRight) {
		t.Error("hold should expire after ttl ticks")
	}
}

func TestHoldTrackerRepeatRefreshes(t *testing.T) {
	h := NewHoldTracker(2)
	h.Press(ActionLeft)

	f := NewInputFrame()
	h.Apply(&f)
	h.Press(ActionLeft) // auto-repeat

	for i := 0; i < 2; i++ {
		f = NewInputFrame()
		h.Apply(&f)
		if !f.Has(ActionLeft) {
			t.Fatalf("tick %d: repeat should refresh the hold", i)
		}
	}
}

func TestHoldTrackerRelease(t *testing.T) {
	h := NewHoldTracker(10)
	h.Press(ActionLeft)
	h.Press(ActionRight)
	h.Release(ActionLeft)

	if h.Held(ActionLeft) {
		t.Error("released action should not be held")
	}
	if !h.Held(ActionRight) {
		t.Error("other holds should survive a release")
	}

	h.Reset()
	if h.Held(ActionRight) {
		t.Error("Reset should release everything")
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" {
		t.Errorf("ActionLeft.String() = %q", ActionLeft.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
