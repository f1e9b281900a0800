package edit

import (
	"testing"

	"github.com/tvogel/dotpad/pkg/graph"
)

// noop is an inert command for exercising the ledger in isolation.
type noop struct{ name string }

func (n *noop) Describe() string          { return n.name }
func (n *noop) undo(g *graph.Graph) error { return nil }
func (n *noop) redo(g *graph.Graph) error { return nil }

func TestHistoryRecordClearsFuture(t *testing.T) {
	var h history
	h.record(&noop{name: "one"})
	h.record(&noop{name: "two"})
	h.shiftToFuture()

	if !h.canRedo() {
		t.Fatal("expected a redoable entry")
	}
	h.record(&noop{name: "three"})
	if h.canRedo() {
		t.Error("record must discard the future partition")
	}
	if len(h.past) != 2 {
		t.Errorf("past length = %d, want 2", len(h.past))
	}
}

func TestHistoryOrdering(t *testing.T) {
	var h history
	h.record(&noop{name: "one"})
	h.record(&noop{name: "two"})

	c, ok := h.peekPast()
	if !ok || c.Describe() != "two" {
		t.Fatalf("peekPast = %v, %v, want most recent entry", c, ok)
	}
	h.shiftToFuture()
	h.shiftToFuture()

	// Most recently undone comes back first.
	c, ok = h.peekFuture()
	if !ok || c.Describe() != "one" {
		t.Fatalf("peekFuture = %v, %v, want %q", c, ok, "one")
	}
	h.shiftToPast()
	c, _ = h.peekPast()
	if c.Describe() != "one" {
		t.Errorf("after shiftToPast, top = %q, want %q", c.Describe(), "one")
	}
}

func TestHistoryEmpty(t *testing.T) {
	var h history
	if h.canUndo() || h.canRedo() {
		t.Error("zero-value history should be empty")
	}
	if _, ok := h.peekPast(); ok {
		t.Error("peekPast on empty history should report false")
	}
	if _, ok := h.peekFuture(); ok {
		t.Error("peekFuture on empty history should report false")
	}
}
