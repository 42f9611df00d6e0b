package bouquet

import "testing"

func snap(caption string) Snapshot {
	return Snapshot{Caption: caption}
}

func TestHistoryEmpty(t *testing.T) {
	h := NewHistory()
	if h.CanUndo() || h.CanRedo() {
		t.Fatal("Expected empty history")
	}
	if _, ok := h.Undo(snap("x")); ok {
		t.Error("Undo on empty history should fail")
	}
	if _, ok := h.Redo(snap("x")); ok {
		t.Error("Redo on empty history should fail")
	}
	if u, r := h.Len(); u != 0 || r != 0 {
		t.Errorf("Expected stacks 0/0 after failed undo/redo, got %d/%d", u, r)
	}
}

func TestHistoryUndoRedo(t *testing.T) {
	h := NewHistory()
	h.Record(snap("a"))
	h.Record(snap("b"))

	prev, ok := h.Undo(snap("c"))
	if !ok || prev.Caption != "b" {
		t.Fatalf("Expected undo to return b, got %q (ok=%t)", prev.Caption, ok)
	}
	if u, r := h.Len(); u != 1 || r != 1 {
		t.Errorf("Expected stacks 1/1, got %d/%d", u, r)
	}

	next, ok := h.Redo(snap("b"))
	if !ok || next.Caption != "c" {
		t.Fatalf("Expected redo to return c, got %q (ok=%t)", next.Caption, ok)
	}
	if u, r := h.Len(); u != 2 || r != 0 {
		t.Errorf("Expected stacks 2/0, got %d/%d", u, r)
	}
}

func TestHistoryRecordClearsRedo(t *testing.T) {
	h := NewHistory()
	h.Record(snap("a"))
	h.Undo(snap("b"))
	if !h.CanRedo() {
		t.Fatal("Expected a redo entry after undo")
	}

	h.Record(snap("a"))
	if h.CanRedo() {
		t.Error("Recording should clear the redo stack")
	}
}

func TestHistoryIsolation(t *testing.T) {
	h := NewHistory()
	s := Snapshot{
		Flowers: []SpriteState{{Path: "rose", X: 1, Y: 2, Width: 60, Height: 60, Scale: 1}},
		Vase:    &SpriteState{Path: "vase", Width: 180, Height: 170},
	}
	h.Record(s)

	// Mutating the recorded value must not leak into the history.
	s.Flowers[0].X = 99
	s.Vase.Width = 300

	got, _ := h.Undo(Snapshot{})
	if got.Flowers[0].X != 1 {
		t.Errorf("Expected recorded X=1, got %v", got.Flowers[0].X)
	}
	if got.Vase.Width != 180 {
		t.Errorf("Expected recorded vase width=180, got %v", got.Vase.Width)
	}
}

func TestSnapshotClone(t *testing.T) {
	s := Snapshot{
		Flowers: []SpriteState{{Path: "rose"}},
		Vase:    &SpriteState{Path: "vase"},
		Caption: "hi",
	}
	c := s.Clone()
	c.Flowers[0].Path = "tulip"
	c.Vase.Path = "other"

	if s.Flowers[0].Path != "rose" || s.Vase.Path != "vase" {
		t.Error("Clone should not share memory with the original")
	}
	if c.Caption != "hi" {
		t.Errorf("Expected caption hi, got %q", c.Caption)
	}
	if (Snapshot{}).Clone().Vase != nil {
		t.Error("Clone of an empty snapshot should have no vase")
	}
}
