package edit

import (
	"fmt"

	"github.com/tvogel/dotpad/pkg/graph"
)

// Command is one applied, invertible graph mutation. Commands are created
// by the [Engine] with their inversion state already captured; external
// callers only ever see them through [Engine.Undo] and [Engine.Redo]
// results, for reporting.
type Command interface {
	// Describe returns a short past-tense summary, e.g. "added node n0".
	Describe() string

	// undo reverts the mutation against g.
	undo(g *graph.Graph) error
	// redo re-applies the mutation against g, preserving identifiers via
	// the restore path where the forward operation deleted entities.
	redo(g *graph.Graph) error
}

// addNode records an AddNode application.
type addNode struct {
	node graph.Node
}

func (c *addNode) Describe() string {
	return fmt.Sprintf("added node %s %q", c.node.ID, c.node.Label)
}

// At undo time the node has no incident edges: any edge added afterwards
// belongs to a later command and has been undone first.
func (c *addNode) undo(g *graph.Graph) error {
	_, err := g.DeleteNode(c.node.ID)
	return err
}

func (c *addNode) redo(g *graph.Graph) error {
	return g.RestoreNode(c.node)
}

// renameNode records a RenameNode application with both labels.
type renameNode struct {
	id   graph.NodeID
	prev string
	next string
}

func (c *renameNode) Describe() string {
	return fmt.Sprintf("renamed node %s to %q", c.id, c.next)
}

func (c *renameNode) undo(g *graph.Graph) error {
	_, err := g.RenameNode(c.id, c.prev)
	return err
}

func (c *renameNode) redo(g *graph.Graph) error {
	_, err := g.RenameNode(c.id, c.next)
	return err
}

// deleteNode records a cascading node delete as a single composite unit.
type deleteNode struct {
	removed graph.Removal
}

func (c *deleteNode) Describe() string {
	if n := len(c.removed.Edges); n > 0 {
		return fmt.Sprintf("deleted node %s and %d edge(s)", c.removed.Node.ID, n)
	}
	return fmt.Sprintf("deleted node %s", c.removed.Node.ID)
}

func (c *deleteNode) undo(g *graph.Graph) error {
	if err := g.RestoreNode(c.removed.Node); err != nil {
		return err
	}
	for _, e := range c.removed.Edges {
		if err := g.RestoreEdge(e); err != nil {
			return err
		}
	}
	return nil
}

func (c *deleteNode) redo(g *graph.Graph) error {
	_, err := g.DeleteNode(c.removed.Node.ID)
	return err
}

// addEdge records an AddEdge application.
type addEdge struct {
	edge graph.Edge
}

func (c *addEdge) Describe() string {
	return fmt.Sprintf("linked %s -> %s as %s", c.edge.From, c.edge.To, c.edge.ID)
}

func (c *addEdge) undo(g *graph.Graph) error {
	_, err := g.DeleteEdge(c.edge.ID)
	return err
}

func (c *addEdge) redo(g *graph.Graph) error {
	return g.RestoreEdge(c.edge)
}

// relabelEdge records a RelabelEdge application with both labels.
type relabelEdge struct {
	id   graph.EdgeID
	prev string
	next string
}

func (c *relabelEdge) Describe() string {
	return fmt.Sprintf("relabeled edge %s to %q", c.id, c.next)
}

func (c *relabelEdge) undo(g *graph.Graph) error {
	_, err := g.RelabelEdge(c.id, c.prev)
	return err
}

func (c *relabelEdge) redo(g *graph.Graph) error {
	_, err := g.RelabelEdge(c.id, c.next)
	return err
}

// deleteEdge records a DeleteEdge application with the full prior record.
type deleteEdge struct {
	edge graph.Edge
}

func (c *deleteEdge) Describe() string {
	return fmt.Sprintf("deleted edge %s", c.edge.ID)
}

func (c *deleteEdge) undo(g *graph.Graph) error {
	return g.RestoreEdge(c.edge)
}

func (c *deleteEdge) redo(g *graph.Graph) error {
	_, err := g.DeleteEdge(c.edge.ID)
	return err
}
