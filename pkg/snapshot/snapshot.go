// Package snapshot persists the graph as a structured JSON document and
// reconstructs an equivalent graph from it. The document carries the
// identifier allocators' high-water marks alongside the node and edge
// records, so identifier uniqueness survives process restarts, and a
// stable document UUID assigned on first save.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/tvogel/dotpad/pkg/graph"
)

// Document is the serialization format for a saved graph.
type Document struct {
	ID         string       `json:"id"` // stable UUID, assigned on first save
	Nodes      []NodeRecord `json:"nodes"`
	Edges      []EdgeRecord `json:"edges"`
	NextNodeID int64        `json:"next_node_id"`
	NextEdgeID int64        `json:"next_edge_id"`
	SavedAt    time.Time    `json:"saved_at,omitzero"`
}

// NodeRecord is one node in the document, with its textual identifier.
type NodeRecord struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// EdgeRecord is one edge in the document, with textual identifiers.
type EdgeRecord struct {
	ID    string `json:"id"`
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label,omitempty"`
}

// FromGraph converts a graph into its document form. docID carries the
// document identity across saves; pass "" to mint a fresh UUID.
// Nodes and edges are ordered by identifier for deterministic output.
func FromGraph(g *graph.Graph, docID string) Document {
	if docID == "" {
		docID = uuid.NewString()
	}

	nodes := g.Nodes()
	edges := g.Edges()
	doc := Document{
		ID:      docID,
		Nodes:   make([]NodeRecord, len(nodes)),
		Edges:   make([]EdgeRecord, len(edges)),
		SavedAt: time.Now().UTC(),
	}
	nextNode, nextEdge := g.HighWater()
	doc.NextNodeID = int64(nextNode)
	doc.NextEdgeID = int64(nextEdge)

	for i, n := range nodes {
		doc.Nodes[i] = NodeRecord{ID: n.ID.String(), Label: n.Label}
	}
	for i, e := range edges {
		doc.Edges[i] = EdgeRecord{ID: e.ID.String(), From: e.From.String(), To: e.To.String(), Label: e.Label}
	}
	return doc
}

// Graph reconstructs the graph described by the document. Entities are
// reinserted under their recorded identifiers and the allocators are
// seeded with the persisted high-water marks, so identifiers retired in
// earlier runs are never reissued.
func (d Document) Graph() (*graph.Graph, error) {
	g := graph.New()

	for _, rec := range d.Nodes {
		id, err := graph.ParseNodeID(rec.ID)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", rec.ID, err)
		}
		if err := g.RestoreNode(graph.Node{ID: id, Label: rec.Label}); err != nil {
			return nil, fmt.Errorf("node %s: %w", id, err)
		}
	}
	for _, rec := range d.Edges {
		id, err := graph.ParseEdgeID(rec.ID)
		if err != nil {
			return nil, fmt.Errorf("edge %q: %w", rec.ID, err)
		}
		from, err := graph.ParseNodeID(rec.From)
		if err != nil {
			return nil, fmt.Errorf("edge %s: from: %w", id, err)
		}
		to, err := graph.ParseNodeID(rec.To)
		if err != nil {
			return nil, fmt.Errorf("edge %s: to: %w", id, err)
		}
		if err := g.RestoreEdge(graph.Edge{ID: id, From: from, To: to, Label: rec.Label}); err != nil {
			return nil, fmt.Errorf("edge %s: %w", id, err)
		}
	}

	g.SetHighWater(graph.NodeID(d.NextNodeID), graph.EdgeID(d.NextEdgeID))
	return g, nil
}

// Write encodes the document as indented JSON to w.
func Write(d Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Read decodes a document from r.
func Read(r io.Reader) (Document, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return Document{}, fmt.Errorf("decode: %w", err)
	}
	return d, nil
}

// WriteFile writes the document to a JSON file at path, creating it with
// 0644 permissions.
func WriteFile(d Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(d, f)
}

// ReadFile reads the document from the JSON file at path.
func ReadFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// LoadGraph reads the document at path and reconstructs its graph.
// If the file does not exist, it returns a fresh empty graph and an empty
// document ID, so first runs start from nothing.
func LoadGraph(path string) (*graph.Graph, string, error) {
	doc, err := ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return graph.New(), "", nil
	}
	if err != nil {
		return nil, "", err
	}
	g, err := doc.Graph()
	if err != nil {
		return nil, "", fmt.Errorf("load %s: %w", path, err)
	}
	return g, doc.ID, nil
}
