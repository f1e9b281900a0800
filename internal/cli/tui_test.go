package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tvogel/dotpad/pkg/edit"
	"github.com/tvogel/dotpad/pkg/snapshot"
)

func testEditor(t *testing.T) editorModel {
	t.Helper()
	c := New(io.Discard, LogInfo)
	c.Config = DefaultConfig()
	c.Config.AutoRender = false // no background renders in tests
	path := filepath.Join(t.TempDir(), "graph.json")
	return newEditorModel(c, edit.New(nil), path, "")
}

// run feeds one line of input to the editor and returns the updated model.
func run(t *testing.T, m editorModel, line string) editorModel {
	t.Helper()
	model, _ := m.execute(line)
	return model.(editorModel)
}

func lastLine(m editorModel) string {
	if len(m.lines) == 0 {
		return ""
	}
	return m.lines[len(m.lines)-1]
}

func TestEditorAddAndUndo(t *testing.T) {
	m := testEditor(t)

	m = run(t, m, "a web server")
	if got := lastLine(m); got != `added node n0 "web server"` {
		t.Errorf("feedback = %q", got)
	}
	if m.eng.Graph().NodeCount() != 1 {
		t.Error("node not added")
	}

	m = run(t, m, "u")
	if got := lastLine(m); !strings.Contains(got, "undid:") {
		t.Errorf("undo feedback = %q", got)
	}
	if m.eng.Graph().NodeCount() != 0 {
		t.Error("undo did not remove the node")
	}

	m = run(t, m, "y")
	if m.eng.Graph().NodeCount() != 1 {
		t.Error("redo did not restore the node")
	}
}

func TestEditorCascadingDelete(t *testing.T) {
	m := testEditor(t)
	m = run(t, m, "a hub")
	m = run(t, m, "a leaf")
	m = run(t, m, "l n0 n1 feeds")
	m = run(t, m, "d n0")

	if got := lastLine(m); !strings.Contains(got, "deleted node n0 and 1 edge(s)") {
		t.Errorf("feedback = %q", got)
	}
	g := m.eng.Graph()
	if g.NodeCount() != 1 || g.EdgeCount() != 0 {
		t.Errorf("got %d nodes, %d edges after cascade", g.NodeCount(), g.EdgeCount())
	}

	m = run(t, m, "u")
	g = m.eng.Graph()
	if g.NodeCount() != 2 || g.EdgeCount() != 1 {
		t.Errorf("got %d nodes, %d edges after undo", g.NodeCount(), g.EdgeCount())
	}
}

func TestEditorErrorsKeepState(t *testing.T) {
	m := testEditor(t)
	m = run(t, m, "a only")
	m = run(t, m, "l n0 n9")

	if m.eng.Graph().EdgeCount() != 0 {
		t.Error("invalid link should not create an edge")
	}
	// Undo still targets the add, not the failed link
	m = run(t, m, "u")
	if m.eng.Graph().NodeCount() != 0 {
		t.Error("undo after failed command should revert the add")
	}
}

func TestEditorAutosaves(t *testing.T) {
	m := testEditor(t)
	m = run(t, m, "a saved")

	doc, err := snapshot.ReadFile(m.path)
	if err != nil {
		t.Fatalf("snapshot not written: %v", err)
	}
	if len(doc.Nodes) != 1 || doc.Nodes[0].Label != "saved" {
		t.Errorf("snapshot content = %+v", doc.Nodes)
	}
	dot, err := os.ReadFile(siblingPath(m.path, ".dot"))
	if err != nil {
		t.Fatalf("DOT file not written: %v", err)
	}
	if !strings.Contains(string(dot), "digraph G {") {
		t.Errorf("DOT file content:\n%s", dot)
	}
	if doc.ID == "" {
		t.Error("snapshot missing document ID")
	}

	// Document ID stays stable across subsequent saves
	m = run(t, m, "a again")
	doc2, err := snapshot.ReadFile(m.path)
	if err != nil {
		t.Fatalf("snapshot not written: %v", err)
	}
	if doc2.ID != doc.ID {
		t.Errorf("document ID changed across saves: %q -> %q", doc.ID, doc2.ID)
	}
}

func TestEditorKeyInput(t *testing.T) {
	m := testEditor(t)

	var model tea.Model = m
	for _, r := range "a hi" {
		if r == ' ' {
			model, _ = model.(editorModel).Update(tea.KeyMsg{Type: tea.KeySpace})
			continue
		}
		model, _ = model.(editorModel).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	model, _ = model.(editorModel).Update(tea.KeyMsg{Type: tea.KeyEnter})

	got := model.(editorModel)
	if got.eng.Graph().NodeCount() != 1 {
		t.Errorf("typed command did not run, %d nodes", got.eng.Graph().NodeCount())
	}
	if got.input != "" {
		t.Errorf("input not cleared after enter: %q", got.input)
	}
}

func TestEditorSearch(t *testing.T) {
	m := testEditor(t)
	m = run(t, m, "a Billing service")
	m = run(t, m, "a ledger db")
	m = run(t, m, "l n0 n1 writes bills")

	before := len(m.lines)
	m = run(t, m, "s bill")

	results := m.lines[before:]
	if len(results) != 3 {
		t.Fatalf("got %d transcript lines, want 2 matches plus a count:\n%s",
			len(results), strings.Join(results, "\n"))
	}
	if !strings.Contains(results[0], "Billing service") {
		t.Errorf("first match = %q, want the node (case-insensitive)", results[0])
	}
	if !strings.Contains(results[1], "writes bills") {
		t.Errorf("second match = %q, want the edge label", results[1])
	}
	if !strings.Contains(results[2], "(2)") {
		t.Errorf("count line = %q, want (2)", results[2])
	}

	before = len(m.lines)
	m = run(t, m, "s nothing here")
	if got := lastLine(m); !strings.Contains(got, "(0)") {
		t.Errorf("no-match count = %q, want (0)", got)
	}
	if len(m.lines)-before != 1 {
		t.Errorf("no-match search should add only the count line")
	}
}

func TestEditorBackspaceRemovesRune(t *testing.T) {
	m := testEditor(t)

	var model tea.Model = m
	for _, r := range "a café" {
		if r == ' ' {
			model, _ = model.(editorModel).Update(tea.KeyMsg{Type: tea.KeySpace})
			continue
		}
		model, _ = model.(editorModel).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	model, _ = model.(editorModel).Update(tea.KeyMsg{Type: tea.KeyBackspace})

	got := model.(editorModel)
	if got.input != "a caf" {
		t.Errorf("input = %q, want the whole trailing rune removed", got.input)
	}
	if !utf8.ValidString(got.input) {
		t.Errorf("input is not valid UTF-8: %q", got.input)
	}
}

func TestEditorView(t *testing.T) {
	m := testEditor(t)
	m = run(t, m, "a visible")
	m.input = "ls"

	view := m.View()
	if !strings.Contains(view, `added node n0 "visible"`) {
		t.Errorf("view missing transcript:\n%s", view)
	}
	if !strings.Contains(view, "ls") {
		t.Errorf("view missing pending input:\n%s", view)
	}
}
