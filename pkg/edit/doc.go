// Package edit provides the command protocol and undo/redo machinery on top
// of the graph store. The [Engine] is the sole sanctioned mutation entry
// point: it validates each requested operation, applies it, and records an
// invertible [Command] in the history.
//
// Commands are self-contained values. At apply time they capture everything
// needed to undo and to redo the mutation - allocated identifiers, the
// labels they overwrote, the full records they deleted - and never hold
// references into graph internals. A cascading node delete (the node plus
// every incident edge) is recorded as one composite command, so a single
// undo restores all removed entities together with their original
// identifiers.
//
// History follows the usual branch-discarding model: applying a new command
// after an undo clears the redo stack.
//
//	e := edit.New(nil)
//	a, _ := e.AddNode("auth")
//	b, _ := e.AddNode("db")
//	e.AddEdge(a, b, "reads")
//	e.Undo() // removes the edge
//	e.Redo() // edge is back, same identifier
//
// A rejected operation changes nothing and records nothing; the caller can
// report the error and carry on.
package edit
