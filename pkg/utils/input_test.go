package utils

import "testing"

func TestPointerTrackerMouse(t *testing.T) {
	pt := NewPointerTracker()

	steps := []struct {
		sample PointerSample
		phase  PointerPhase
		x, y   int
	}{
		{PointerSample{MouseX: 5, MouseY: 5}, PointerIdle, 5, 5},
		{PointerSample{MousePressed: true, MouseX: 10, MouseY: 20}, PointerPressed, 10, 20},
		{PointerSample{MousePressed: true, MouseX: 15, MouseY: 25}, PointerHeld, 15, 25},
		{PointerSample{MouseX: 16, MouseY: 26}, PointerReleased, 16, 26},
		{PointerSample{MouseX: 16, MouseY: 26}, PointerIdle, 16, 26},
	}
	for i, s := range steps {
		ev := pt.Step(s.sample)
		if ev.Phase != s.phase || ev.X != s.x || ev.Y != s.y {
			t.Errorf("step %d: got %+v, want phase %d at (%d,%d)", i, ev, s.phase, s.x, s.y)
		}
		if ev.IsTouch {
			t.Errorf("step %d: mouse input reported as touch", i)
		}
	}
}

func TestPointerTrackerFirstTouchOnly(t *testing.T) {
	pt := NewPointerTracker()

	ev := pt.Step(PointerSample{Touches: []TouchSample{{ID: 3, X: 1, Y: 1}}})
	if ev.Phase != PointerPressed || !ev.IsTouch {
		t.Fatalf("Expected touch press, got %+v", ev)
	}

	// A second finger joins; only touch 3 is followed.
	ev = pt.Step(PointerSample{Touches: []TouchSample{{ID: 7, X: 90, Y: 90}, {ID: 3, X: 2, Y: 4}}})
	if ev.Phase != PointerHeld || ev.X != 2 || ev.Y != 4 {
		t.Errorf("Expected held at (2,4), got %+v", ev)
	}

	// Touch 3 lifts while 7 stays down: release at the last known position.
	ev = pt.Step(PointerSample{Touches: []TouchSample{{ID: 7, X: 91, Y: 91}}})
	if ev.Phase != PointerReleased || ev.X != 2 || ev.Y != 4 {
		t.Errorf("Expected release at (2,4), got %+v", ev)
	}
	if pt.Active() {
		t.Error("Tracker should be idle after release")
	}
}

func TestPointerTrackerTouchBeatsMouse(t *testing.T) {
	pt := NewPointerTracker()
	ev := pt.Step(PointerSample{
		MousePressed: true, MouseX: 50, MouseY: 50,
		Touches: []TouchSample{{ID: 1, X: 8, Y: 9}},
	})
	if !ev.IsTouch || ev.X != 8 || ev.Y != 9 {
		t.Errorf("Expected touch to win, got %+v", ev)
	}
}

func TestPointerTrackerReset(t *testing.T) {
	pt := NewPointerTracker()
	pt.Step(PointerSample{MousePressed: true})
	pt.Reset()
	if pt.Active() {
		t.Error("Reset should end the gesture")
	}
	ev := pt.Step(PointerSample{MousePressed: true, MouseX: 3, MouseY: 3})
	if ev.Phase != PointerPressed {
		t.Errorf("Expected a fresh press after reset, got %+v", ev)
	}
}
