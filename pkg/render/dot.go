package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/tvogel/dotpad/pkg/graph"
)

// Options configures DOT generation.
type Options struct {
	// RankDir sets the Graphviz layout direction ("TB", "LR", ...).
	// Empty defaults to "LR".
	RankDir string

	// ShowIDs prefixes every label with the entity's identifier, which is
	// handy while editing since commands address entities by ID.
	ShowIDs bool
}

// ToDOT converts a graph to Graphviz DOT. Nodes and edges appear in
// identifier order, so equal graphs always produce identical output.
// The resulting string can be rendered with [SVG] or [PNG].
func ToDOT(g *graph.Graph, opts Options) string {
	rankdir := opts.RankDir
	if rankdir == "" {
		rankdir = "LR"
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", n.ID.String(), nodeLabel(n, opts.ShowIDs))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		if label := edgeLabel(e, opts.ShowIDs); label != "" {
			fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", e.From.String(), e.To.String(), label)
		} else {
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.From.String(), e.To.String())
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeLabel(n graph.Node, showIDs bool) string {
	if showIDs {
		return n.ID.String() + "\n" + n.Label
	}
	return n.Label
}

func edgeLabel(e graph.Edge, showIDs bool) string {
	if !showIDs {
		return e.Label
	}
	if e.Label == "" {
		return e.ID.String()
	}
	return e.ID.String() + "\n" + e.Label
}

// SVG renders a DOT graph to SVG using the embedded Graphviz engine and
// normalizes the root viewBox so the result scales cleanly when embedded.
func SVG(ctx context.Context, dot string) ([]byte, error) {
	out, err := renderFormat(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// PNG renders a DOT graph to PNG using the embedded Graphviz engine.
func PNG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.PNG)
}

func renderFormat(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
