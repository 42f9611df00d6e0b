package bouquet

// History is a linear undo/redo history of whole-bouquet snapshots.
//
// Record must be called before every mutation with the state the mutation
// is about to replace. Recording clears the redo stack, so history never
// branches.
type History struct {
	undo []Snapshot
	redo []Snapshot
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// Record pushes s onto the undo stack and discards every redo entry.
func (h *History) Record(s Snapshot) {
	h.undo = append(h.undo, s.Clone())
	h.redo = h.redo[:0]
}

// Undo pops the most recent undo entry and pushes current onto the redo
// stack. Returns false, and leaves both stacks untouched, when there is
// nothing to undo.
func (h *History) Undo(current Snapshot) (Snapshot, bool) {
	prev, ok := pop(&h.undo)
	if !ok {
		return Snapshot{}, false
	}
	h.redo = append(h.redo, current.Clone())
	return prev, true
}

// Redo is the mirror image of Undo.
func (h *History) Redo(current Snapshot) (Snapshot, bool) {
	next, ok := pop(&h.redo)
	if !ok {
		return Snapshot{}, false
	}
	h.undo = append(h.undo, current.Clone())
	return next, true
}

// CanUndo reports whether Undo would do anything.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether Redo would do anything.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Len returns the sizes of the undo and redo stacks.
func (h *History) Len() (undo, redo int) {
	return len(h.undo), len(h.redo)
}

func pop(stack *[]Snapshot) (Snapshot, bool) {
	n := len(*stack)
	if n == 0 {
		return Snapshot{}, false
	}
	s := (*stack)[n-1]
	(*stack)[n-1] = Snapshot{}
	*stack = (*stack)[:n-1]
	return s.Clone(), true
}
