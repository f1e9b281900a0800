package cli

import (
	"fmt"
	"strings"

	"github.com/tvogel/dotpad/pkg/graph"
)

// actionKind enumerates the editor commands.
type actionKind int

const (
	actNone actionKind = iota
	actAddNode
	actRenameNode
	actDeleteNode
	actAddEdge
	actRelabelEdge
	actDeleteEdge
	actUndo
	actRedo
	actSearch
	actList
	actPrint
	actPrintJSON
	actSave
	actHelp
	actQuit
)

// action is one parsed editor command with its arguments.
type action struct {
	kind   actionKind
	nodeID graph.NodeID
	edgeID graph.EdgeID
	from   graph.NodeID
	to     graph.NodeID
	label  string
}

// editorHelp is the command reference shown by "h".
const editorHelp = `commands:
  a <label>            add a node
  r <node> <label>     rename a node
  l <from> <to> [lbl]  link two nodes with an edge
  e <edge> <label>     relabel an edge
  d <id>               delete a node (cascades) or an edge
  u / y                undo / redo
  s <text>             find nodes and edges whose label contains text
  ls                   list nodes and edges
  p                    print the graph as DOT
  j                    print the graph as JSON
  w                    save the snapshot
  h                    show this help
  q                    quit`

// parseInput parses one line of editor input. Labels run to the end of the
// line, so they may contain spaces without quoting.
func parseInput(line string) (action, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return action{kind: actNone}, nil
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "a":
		if len(args) == 0 {
			return action{}, fmt.Errorf("usage: a <label>")
		}
		return action{kind: actAddNode, label: strings.Join(args, " ")}, nil

	case "r":
		if len(args) < 2 {
			return action{}, fmt.Errorf("usage: r <node> <label>")
		}
		id, err := graph.ParseNodeID(args[0])
		if err != nil {
			return action{}, fmt.Errorf("%q is not a node ID", args[0])
		}
		return action{kind: actRenameNode, nodeID: id, label: strings.Join(args[1:], " ")}, nil

	case "l":
		if len(args) < 2 {
			return action{}, fmt.Errorf("usage: l <from> <to> [label]")
		}
		from, err := graph.ParseNodeID(args[0])
		if err != nil {
			return action{}, fmt.Errorf("%q is not a node ID", args[0])
		}
		to, err := graph.ParseNodeID(args[1])
		if err != nil {
			return action{}, fmt.Errorf("%q is not a node ID", args[1])
		}
		return action{kind: actAddEdge, from: from, to: to, label: strings.Join(args[2:], " ")}, nil

	case "e":
		if len(args) < 2 {
			return action{}, fmt.Errorf("usage: e <edge> <label>")
		}
		id, err := graph.ParseEdgeID(args[0])
		if err != nil {
			return action{}, fmt.Errorf("%q is not an edge ID", args[0])
		}
		return action{kind: actRelabelEdge, edgeID: id, label: strings.Join(args[1:], " ")}, nil

	case "d":
		if len(args) != 1 {
			return action{}, fmt.Errorf("usage: d <id>")
		}
		if id, err := graph.ParseNodeID(args[0]); err == nil {
			return action{kind: actDeleteNode, nodeID: id}, nil
		}
		if id, err := graph.ParseEdgeID(args[0]); err == nil {
			return action{kind: actDeleteEdge, edgeID: id}, nil
		}
		return action{}, fmt.Errorf("%q is neither a node nor an edge ID", args[0])

	case "s":
		if len(args) == 0 {
			return action{}, fmt.Errorf("usage: s <text>")
		}
		return action{kind: actSearch, label: strings.Join(args, " ")}, nil

	case "u":
		return bareAction(actUndo, cmd, args)
	case "y":
		return bareAction(actRedo, cmd, args)
	case "ls":
		return bareAction(actList, cmd, args)
	case "p":
		return bareAction(actPrint, cmd, args)
	case "j":
		return bareAction(actPrintJSON, cmd, args)
	case "w":
		return bareAction(actSave, cmd, args)
	case "h":
		return bareAction(actHelp, cmd, args)
	case "q":
		return bareAction(actQuit, cmd, args)
	}

	return action{}, fmt.Errorf("unknown command %q (h for help)", cmd)
}

func bareAction(kind actionKind, cmd string, args []string) (action, error) {
	if len(args) != 0 {
		return action{}, fmt.Errorf("%s takes no arguments", cmd)
	}
	return action{kind: kind}, nil
}
