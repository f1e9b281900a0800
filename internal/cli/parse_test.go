package cli

import (
	"testing"

	"github.com/tvogel/dotpad/pkg/graph"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		want  action
		valid bool
	}{
		{"empty", "", action{kind: actNone}, true},
		{"whitespace", "   ", action{kind: actNone}, true},
		{"add node", "a web server", action{kind: actAddNode, label: "web server"}, true},
		{"add node missing label", "a", action{}, false},
		{"rename", "r n3 database", action{kind: actRenameNode, nodeID: graph.NodeID(3), label: "database"}, true},
		{"rename bad id", "r e3 database", action{}, false},
		{"rename missing label", "r n3", action{}, false},
		{"link", "l n0 n1 calls", action{kind: actAddEdge, from: graph.NodeID(0), to: graph.NodeID(1), label: "calls"}, true},
		{"link unlabeled", "l n0 n0", action{kind: actAddEdge, from: graph.NodeID(0), to: graph.NodeID(0)}, true},
		{"link bad endpoint", "l n0 x1", action{}, false},
		{"relabel edge", "e e2 uses", action{kind: actRelabelEdge, edgeID: graph.EdgeID(2), label: "uses"}, true},
		{"relabel bad id", "e n2 uses", action{}, false},
		{"delete node", "d n4", action{kind: actDeleteNode, nodeID: graph.NodeID(4)}, true},
		{"delete edge", "d e4", action{kind: actDeleteEdge, edgeID: graph.EdgeID(4)}, true},
		{"delete bad id", "d x4", action{}, false},
		{"delete extra args", "d n4 n5", action{}, false},
		{"search", "s billing", action{kind: actSearch, label: "billing"}, true},
		{"search multiword", "s load balancer", action{kind: actSearch, label: "load balancer"}, true},
		{"search missing text", "s", action{}, false},
		{"undo", "u", action{kind: actUndo}, true},
		{"redo", "y", action{kind: actRedo}, true},
		{"list", "ls", action{kind: actList}, true},
		{"print", "p", action{kind: actPrint}, true},
		{"print json", "j", action{kind: actPrintJSON}, true},
		{"save", "w", action{kind: actSave}, true},
		{"help", "h", action{kind: actHelp}, true},
		{"quit", "q", action{kind: actQuit}, true},
		{"bare with args", "u now", action{}, false},
		{"unknown", "z", action{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseInput(tt.line)
			if tt.valid && err != nil {
				t.Fatalf("parseInput(%q) error: %v", tt.line, err)
			}
			if !tt.valid {
				if err == nil {
					t.Fatalf("parseInput(%q) should fail", tt.line)
				}
				return
			}
			if got != tt.want {
				t.Errorf("parseInput(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseInputLabelsKeepSpaces(t *testing.T) {
	got, err := parseInput("r n0 load   balancer")
	if err != nil {
		t.Fatalf("parseInput: %v", err)
	}
	if got.label != "load balancer" {
		t.Errorf("label = %q, want fields rejoined with single spaces", got.label)
	}
}
