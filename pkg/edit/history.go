package edit

import "errors"

var (
	// ErrNothingToUndo is returned by [Engine.Undo] when no applied
	// command remains.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrNothingToRedo is returned by [Engine.Redo] when no undone
	// command remains.
	ErrNothingToRedo = errors.New("nothing to redo")
)

// history is the two-stack undo/redo ledger. past holds applied commands,
// most recent last; future holds undone commands, most recently undone
// last. Recording a new command discards the future.
type history struct {
	past   []Command
	future []Command
}

func (h *history) record(c Command) {
	h.past = append(h.past, c)
	h.future = h.future[:0]
}

func (h *history) canUndo() bool { return len(h.past) > 0 }
func (h *history) canRedo() bool { return len(h.future) > 0 }

// peekPast returns the most recent applied command without moving it.
func (h *history) peekPast() (Command, bool) {
	if len(h.past) == 0 {
		return nil, false
	}
	return h.past[len(h.past)-1], true
}

// peekFuture returns the most recently undone command without moving it.
func (h *history) peekFuture() (Command, bool) {
	if len(h.future) == 0 {
		return nil, false
	}
	return h.future[len(h.future)-1], true
}

// shiftToFuture moves the top of past onto future. Call only after the
// command's inverse has been applied successfully.
func (h *history) shiftToFuture() {
	c := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append(h.future, c)
}

// shiftToPast moves the top of future back onto past. Call only after the
// command's forward mutation has been re-applied successfully.
func (h *history) shiftToPast() {
	c := h.future[len(h.future)-1]
	h.future = h.future[:len(h.future)-1]
	h.past = append(h.past, c)
}
