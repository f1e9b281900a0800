package render

import (
	"strings"
	"testing"

	"github.com/tvogel/dotpad/pkg/graph"
)

func buildGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	a, _ := g.AddNode("alpha")
	b, _ := g.AddNode("beta")
	if _, err := g.AddEdge(a, b, "knows"); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if _, err := g.AddEdge(b, b, ""); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	return g
}

func TestToDOT(t *testing.T) {
	g := buildGraph(t)
	dot := ToDOT(g, Options{})

	for _, want := range []string{
		"digraph G {",
		"rankdir=LR;",
		`"n0" [label="alpha"];`,
		`"n1" [label="beta"];`,
		`"n0" -> "n1" [label="knows"];`,
		`"n1" -> "n1";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTShowIDs(t *testing.T) {
	g := buildGraph(t)
	dot := ToDOT(g, Options{ShowIDs: true})

	for _, want := range []string{
		`"n0" [label="n0\nalpha"];`,
		`"n0" -> "n1" [label="e0\nknows"];`,
		`"n1" -> "n1" [label="e1"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTRankDir(t *testing.T) {
	dot := ToDOT(graph.New(), Options{RankDir: "TB"})
	if !strings.Contains(dot, "rankdir=TB;") {
		t.Errorf("DOT missing rankdir=TB:\n%s", dot)
	}
}

func TestToDOTEscapesLabels(t *testing.T) {
	g := graph.New()
	if _, err := g.AddNode(`say "hi"`); err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	dot := ToDOT(g, Options{})
	if !strings.Contains(dot, `[label="say \"hi\""];`) {
		t.Errorf("quotes not escaped:\n%s", dot)
	}
}

func TestToDOTDeterministic(t *testing.T) {
	g := buildGraph(t)
	first := ToDOT(g, Options{})
	for range 10 {
		if got := ToDOT(g, Options{}); got != first {
			t.Fatal("output varies between runs")
		}
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<?xml version="1.0"?>
<svg width="134pt" height="44pt" viewBox="0.00 0.00 134.00 44.00" xmlns="http://www.w3.org/2000/svg">
<g></g>
</svg>`)

	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 134.00 44.00"`) {
		t.Errorf("viewBox not normalized:\n%s", out)
	}
	if !strings.Contains(out, `width="134" height="44"`) {
		t.Errorf("dimensions not rewritten:\n%s", out)
	}
}

func TestNormalizeViewBoxPassthrough(t *testing.T) {
	in := []byte("<svg><g></g></svg>")
	if got := normalizeViewBox(in); string(got) != string(in) {
		t.Errorf("SVG without viewBox should pass through unchanged, got:\n%s", got)
	}
}
