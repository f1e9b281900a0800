package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tvogel/dotpad/pkg/edit"
	"github.com/tvogel/dotpad/pkg/graph"
	"github.com/tvogel/dotpad/pkg/render"
	"github.com/tvogel/dotpad/pkg/snapshot"
)

// Editor styles
var (
	editorPromptStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	editorErrorStyle  = lipgloss.NewStyle().Foreground(colorRed)
	editorDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// editorModel - Interactive graph editor
// =============================================================================

// renderDoneMsg reports the outcome of a background re-render.
type renderDoneMsg struct {
	path string
	err  error
}

// editorModel is the bubbletea model for the interactive editor. Every
// successful mutation is saved to the snapshot immediately, and when
// autorender is on, the SVG next to it is refreshed in the background.
type editorModel struct {
	cli   *CLI
	eng   *edit.Engine
	path  string // snapshot file
	docID string

	input     string
	lines     []string // transcript, newest last
	height    int
	rendering bool
	quitting  bool
}

func newEditorModel(c *CLI, eng *edit.Engine, path, docID string) editorModel {
	return editorModel{
		cli:    c,
		eng:    eng,
		path:   path,
		docID:  docID,
		height: 20,
		lines: []string{
			fmt.Sprintf("editing %s (%d nodes, %d edges), h for help, q to quit",
				path, eng.Graph().NodeCount(), eng.Graph().EdgeCount()),
		},
	}
}

func (m editorModel) Init() tea.Cmd {
	return nil
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			line := m.input
			m.input = ""
			return m.execute(line)
		case "backspace":
			if len(m.input) > 0 {
				_, size := utf8.DecodeLastRuneInString(m.input)
				m.input = m.input[:len(m.input)-size]
			}
		default:
			switch msg.Type {
			case tea.KeySpace:
				m.input += " "
			case tea.KeyRunes:
				m.input += string(msg.Runes)
			}
		}

	case tea.WindowSizeMsg:
		m.height = msg.Height - 4
		if m.height < 5 {
			m.height = 5
		}

	case renderDoneMsg:
		m.rendering = false
		if msg.err != nil {
			m.lines = append(m.lines, editorErrorStyle.Render("render failed: "+msg.err.Error()))
		}
	}
	return m, nil
}

// execute runs one parsed command against the engine and appends feedback
// to the transcript.
func (m editorModel) execute(line string) (tea.Model, tea.Cmd) {
	act, err := parseInput(line)
	if err != nil {
		m.lines = append(m.lines, editorErrorStyle.Render(err.Error()))
		return m, nil
	}

	switch act.kind {
	case actNone:
		return m, nil

	case actAddNode:
		return m.mutate(func() (string, error) {
			id, err := m.eng.AddNode(act.label)
			return fmt.Sprintf("added node %s %q", id, act.label), err
		})
	case actRenameNode:
		return m.mutate(func() (string, error) {
			err := m.eng.RenameNode(act.nodeID, act.label)
			return fmt.Sprintf("renamed node %s to %q", act.nodeID, act.label), err
		})
	case actDeleteNode:
		return m.mutate(func() (string, error) {
			removed, err := m.eng.DeleteNode(act.nodeID)
			return fmt.Sprintf("deleted node %s and %d edge(s)", act.nodeID, len(removed.Edges)), err
		})
	case actAddEdge:
		return m.mutate(func() (string, error) {
			id, err := m.eng.AddEdge(act.from, act.to, act.label)
			return fmt.Sprintf("linked %s -> %s as %s", act.from, act.to, id), err
		})
	case actRelabelEdge:
		return m.mutate(func() (string, error) {
			err := m.eng.RelabelEdge(act.edgeID, act.label)
			return fmt.Sprintf("relabeled edge %s to %q", act.edgeID, act.label), err
		})
	case actDeleteEdge:
		return m.mutate(func() (string, error) {
			_, err := m.eng.DeleteEdge(act.edgeID)
			return fmt.Sprintf("deleted edge %s", act.edgeID), err
		})

	case actUndo:
		cmd, err := m.eng.Undo()
		if err != nil {
			m.lines = append(m.lines, editorDimStyle.Render(err.Error()))
			return m, nil
		}
		m.lines = append(m.lines, "undid: "+cmd.Describe())
		return m, m.autosave()

	case actRedo:
		cmd, err := m.eng.Redo()
		if err != nil {
			m.lines = append(m.lines, editorDimStyle.Render(err.Error()))
			return m, nil
		}
		m.lines = append(m.lines, "redid: "+cmd.Describe())
		return m, m.autosave()

	case actSearch:
		m.lines = append(m.lines, searchGraph(m.eng.Graph(), act.label)...)
		return m, nil

	case actList:
		m.lines = append(m.lines, listGraph(m.eng.Graph())...)
		return m, nil

	case actPrint:
		dot := render.ToDOT(m.eng.Graph(), m.cli.renderOptions())
		m.lines = append(m.lines, strings.Split(strings.TrimRight(dot, "\n"), "\n")...)
		return m, nil

	case actPrintJSON:
		var buf bytes.Buffer
		if err := snapshot.Write(snapshot.FromGraph(m.eng.Graph(), m.docID), &buf); err != nil {
			m.lines = append(m.lines, editorErrorStyle.Render(err.Error()))
			return m, nil
		}
		m.lines = append(m.lines, strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")...)
		return m, nil

	case actSave:
		if err := m.save(); err != nil {
			m.lines = append(m.lines, editorErrorStyle.Render("save failed: "+err.Error()))
		} else {
			m.lines = append(m.lines, editorDimStyle.Render("saved "+m.path))
		}
		return m, nil

	case actHelp:
		m.lines = append(m.lines, strings.Split(editorHelp, "\n")...)
		return m, nil

	case actQuit:
		if err := m.save(); err != nil {
			m.lines = append(m.lines, editorErrorStyle.Render("save failed: "+err.Error()))
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// mutate runs one graph mutation, reports the outcome, and autosaves.
func (m editorModel) mutate(op func() (string, error)) (tea.Model, tea.Cmd) {
	feedback, err := op()
	if err != nil {
		m.lines = append(m.lines, editorErrorStyle.Render(err.Error()))
		return m, nil
	}
	m.lines = append(m.lines, feedback)
	return m, m.autosave()
}

// save writes the snapshot, keeping the document ID stable across saves.
func (m *editorModel) save() error {
	doc := snapshot.FromGraph(m.eng.Graph(), m.docID)
	m.docID = doc.ID
	return snapshot.WriteFile(doc, m.path)
}

// autosave persists the snapshot and DOT file and, when autorender is on,
// refreshes the SVG next to them in the background.
func (m *editorModel) autosave() tea.Cmd {
	if err := m.save(); err != nil {
		m.lines = append(m.lines, editorErrorStyle.Render("save failed: "+err.Error()))
		return nil
	}

	dot := render.ToDOT(m.eng.Graph(), m.cli.renderOptions())
	if err := writeOutput(siblingPath(m.path, ".dot"), []byte(dot)); err != nil {
		m.lines = append(m.lines, editorErrorStyle.Render("save failed: "+err.Error()))
	}

	if !m.cli.Config.AutoRender || m.rendering {
		return nil
	}

	m.rendering = true
	out := siblingPath(m.path, ".svg")
	return func() tea.Msg {
		svg, err := render.SVG(context.Background(), dot)
		if err != nil {
			return renderDoneMsg{path: out, err: err}
		}
		return renderDoneMsg{path: out, err: writeOutput(out, svg)}
	}
}

func (m editorModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	start := 0
	if len(m.lines) > m.height {
		start = len(m.lines) - m.height
	}
	for _, line := range m.lines[start:] {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(editorPromptStyle.Render("> "))
	b.WriteString(m.input)
	if m.rendering {
		b.WriteString(editorDimStyle.Render("  (rendering...)"))
	}
	b.WriteString("\n")

	return b.String()
}

// searchGraph lists every node and edge whose label contains query,
// case-insensitively, followed by the match count.
func searchGraph(g *graph.Graph, query string) []string {
	q := strings.ToLower(query)
	var lines []string
	for _, n := range g.Nodes() {
		if strings.Contains(strings.ToLower(n.Label), q) {
			lines = append(lines, fmt.Sprintf("  %s  %q", n.ID, n.Label))
		}
	}
	for _, e := range g.Edges() {
		if e.Label != "" && strings.Contains(strings.ToLower(e.Label), q) {
			lines = append(lines, fmt.Sprintf("  %s  %s -> %s  %q", e.ID, e.From, e.To, e.Label))
		}
	}
	return append(lines, editorDimStyle.Render(fmt.Sprintf("(%d)", len(lines))))
}

// listGraph formats the graph as transcript lines, one entity per line.
func listGraph(g *graph.Graph) []string {
	lines := make([]string, 0, g.NodeCount()+g.EdgeCount())
	for _, n := range g.Nodes() {
		lines = append(lines, fmt.Sprintf("  %s  %q", n.ID, n.Label))
	}
	for _, e := range g.Edges() {
		if e.Label != "" {
			lines = append(lines, fmt.Sprintf("  %s  %s -> %s  %q", e.ID, e.From, e.To, e.Label))
		} else {
			lines = append(lines, fmt.Sprintf("  %s  %s -> %s", e.ID, e.From, e.To))
		}
	}
	if len(lines) == 0 {
		return []string{editorDimStyle.Render("  (empty graph)")}
	}
	return lines
}
