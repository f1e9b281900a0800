package edit

import (
	"github.com/tvogel/dotpad/pkg/graph"
)

// Engine coordinates the graph store, command application, and history.
// All mutations flow through it: validate first, apply second, record
// third. A failed operation leaves both the graph and the history exactly
// as they were.
//
// Engine is not safe for concurrent use; dotpad applies one command at a
// time by construction.
type Engine struct {
	g    *graph.Graph
	hist history
}

// New creates an engine around g. A nil g starts an empty graph.
// The engine assumes exclusive ownership of the graph; mutating it through
// any other path breaks undo.
func New(g *graph.Graph) *Engine {
	if g == nil {
		g = graph.New()
	}
	return &Engine{g: g}
}

// Graph returns the underlying store for read-only collaborators
// (snapshot, export, rendering).
func (e *Engine) Graph() *graph.Graph { return e.g }

// AddNode adds a node with the given label and returns its identifier.
func (e *Engine) AddNode(label string) (graph.NodeID, error) {
	id, err := e.g.AddNode(label)
	if err != nil {
		return 0, err
	}
	e.hist.record(&addNode{node: graph.Node{ID: id, Label: label}})
	return id, nil
}

// RenameNode replaces the node's label.
func (e *Engine) RenameNode(id graph.NodeID, label string) error {
	prev, err := e.g.RenameNode(id, label)
	if err != nil {
		return err
	}
	e.hist.record(&renameNode{id: id, prev: prev, next: label})
	return nil
}

// DeleteNode removes the node and all incident edges as one atomic unit
// and returns the removed records. A single Undo restores all of them.
func (e *Engine) DeleteNode(id graph.NodeID) (graph.Removal, error) {
	removed, err := e.g.DeleteNode(id)
	if err != nil {
		return graph.Removal{}, err
	}
	e.hist.record(&deleteNode{removed: removed})
	return removed, nil
}

// AddEdge adds an edge from -> to with the given label and returns its
// identifier. Both endpoints must currently exist.
func (e *Engine) AddEdge(from, to graph.NodeID, label string) (graph.EdgeID, error) {
	id, err := e.g.AddEdge(from, to, label)
	if err != nil {
		return 0, err
	}
	e.hist.record(&addEdge{edge: graph.Edge{ID: id, From: from, To: to, Label: label}})
	return id, nil
}

// RelabelEdge replaces the edge's label.
func (e *Engine) RelabelEdge(id graph.EdgeID, label string) error {
	prev, err := e.g.RelabelEdge(id, label)
	if err != nil {
		return err
	}
	e.hist.record(&relabelEdge{id: id, prev: prev, next: label})
	return nil
}

// DeleteEdge removes the edge and returns its prior record.
func (e *Engine) DeleteEdge(id graph.EdgeID) (graph.Edge, error) {
	edge, err := e.g.DeleteEdge(id)
	if err != nil {
		return graph.Edge{}, err
	}
	e.hist.record(&deleteEdge{edge: edge})
	return edge, nil
}

// Undo reverts the most recent applied command and returns it for
// reporting. Returns ErrNothingToUndo at the history boundary.
func (e *Engine) Undo() (Command, error) {
	c, ok := e.hist.peekPast()
	if !ok {
		return nil, ErrNothingToUndo
	}
	if err := c.undo(e.g); err != nil {
		return nil, err
	}
	e.hist.shiftToFuture()
	return c, nil
}

// Redo re-applies the most recently undone command and returns it for
// reporting. Deletions are re-applied through the identifier-preserving
// restore path. Returns ErrNothingToRedo at the history boundary.
func (e *Engine) Redo() (Command, error) {
	c, ok := e.hist.peekFuture()
	if !ok {
		return nil, ErrNothingToRedo
	}
	if err := c.redo(e.g); err != nil {
		return nil, err
	}
	e.hist.shiftToPast()
	return c, nil
}

// CanUndo reports whether an applied command remains to revert.
func (e *Engine) CanUndo() bool { return e.hist.canUndo() }

// CanRedo reports whether an undone command remains to re-apply.
func (e *Engine) CanRedo() bool { return e.hist.canRedo() }
