package graph

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrNodeNotFound is returned when an operation references a node ID
	// that is not currently present in the graph.
	ErrNodeNotFound = errors.New("node not found")

	// ErrEdgeNotFound is returned when an operation references an edge ID
	// that is not currently present in the graph.
	ErrEdgeNotFound = errors.New("edge not found")

	// ErrEdgeEndpoint is returned by [Graph.AddEdge] and [Graph.RestoreEdge]
	// when an endpoint references a missing node. It wraps ErrNodeNotFound,
	// so errors.Is(err, ErrNodeNotFound) also holds.
	ErrEdgeEndpoint = fmt.Errorf("edge endpoint: %w", ErrNodeNotFound)

	// ErrDuplicateID is returned by the restore methods when the identifier
	// is already occupied. Restores only reinsert deleted entities; a live
	// duplicate indicates a caller bug.
	ErrDuplicateID = errors.New("identifier already in use")

	// ErrInvalidID is returned by ParseNodeID and ParseEdgeID for input
	// that is not a well-formed identifier.
	ErrInvalidID = errors.New("malformed identifier")

	// ErrIDExhausted is returned when an identifier namespace overflows.
	// This is not recoverable; allocating past the end would reissue
	// identifiers and break entity identity.
	ErrIDExhausted = errors.New("identifier namespace exhausted")
)

// Node is a vertex with a free-form display label. The ID is assigned at
// creation and never changes; only the label is mutable.
type Node struct {
	ID    NodeID
	Label string
}

// Edge is a directed connection between two nodes with a free-form display
// label. From and To may be equal (self-loop), and multiple edges between
// the same ordered pair are allowed.
type Edge struct {
	ID    EdgeID
	From  NodeID
	To    NodeID
	Label string
}

// Removal is the full set of entities removed by a cascading node delete:
// the node itself plus every edge that touched it. It carries enough state
// to reinsert all of them under their original identifiers.
type Removal struct {
	Node  Node
	Edges []Edge // incident edges, sorted by ID
}

// Graph is the authoritative in-memory store of nodes and edges.
// The zero value is not usable; call New. Graph is not safe for concurrent
// use - dotpad applies one command at a time by construction.
type Graph struct {
	nodes map[NodeID]*Node
	edges map[EdgeID]*Edge

	nodeIDs counter
	edgeIDs counter
}

// New creates an empty graph with fresh identifier namespaces.
func New() *Graph {
	return &Graph{
		nodes: make(map[NodeID]*Node),
		edges: make(map[EdgeID]*Edge),
	}
}

// AddNode allocates a node identifier, inserts a node with the given label,
// and returns the new ID. The only failure mode is namespace exhaustion.
func (g *Graph) AddNode(label string) (NodeID, error) {
	raw, err := g.nodeIDs.take()
	if err != nil {
		return 0, err
	}
	id := NodeID(raw)
	g.nodes[id] = &Node{ID: id, Label: label}
	return id, nil
}

// RenameNode replaces the node's label and returns the previous label.
// Returns ErrNodeNotFound if the ID is absent.
func (g *Graph) RenameNode(id NodeID, label string) (string, error) {
	n, ok := g.nodes[id]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}
	prev := n.Label
	n.Label = label
	return prev, nil
}

// DeleteNode removes the node and every edge whose source or destination
// equals it, returning the full removed records so the operation can be
// inverted as a unit. Returns ErrNodeNotFound if the ID is absent, in which
// case nothing changes.
func (g *Graph) DeleteNode(id NodeID) (Removal, error) {
	n, ok := g.nodes[id]
	if !ok {
		return Removal{}, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}

	var incident []Edge
	for _, e := range g.edges {
		if e.From == id || e.To == id {
			incident = append(incident, *e)
		}
	}
	slices.SortFunc(incident, func(a, b Edge) int { return cmp.Compare(a.ID, b.ID) })

	for _, e := range incident {
		delete(g.edges, e.ID)
	}
	delete(g.nodes, id)

	return Removal{Node: *n, Edges: incident}, nil
}

// AddEdge allocates an edge identifier and inserts an edge from -> to with
// the given label. Both endpoints must currently exist; otherwise
// ErrEdgeEndpoint is returned and nothing changes, including the allocator.
func (g *Graph) AddEdge(from, to NodeID, label string) (EdgeID, error) {
	if _, ok := g.nodes[from]; !ok {
		return 0, fmt.Errorf("%w: source %s", ErrEdgeEndpoint, from)
	}
	if _, ok := g.nodes[to]; !ok {
		return 0, fmt.Errorf("%w: destination %s", ErrEdgeEndpoint, to)
	}
	raw, err := g.edgeIDs.take()
	if err != nil {
		return 0, err
	}
	id := EdgeID(raw)
	g.edges[id] = &Edge{ID: id, From: from, To: to, Label: label}
	return id, nil
}

// RelabelEdge replaces the edge's label and returns the previous label.
// Returns ErrEdgeNotFound if the ID is absent.
func (g *Graph) RelabelEdge(id EdgeID, label string) (string, error) {
	e, ok := g.edges[id]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrEdgeNotFound, id)
	}
	prev := e.Label
	e.Label = label
	return prev, nil
}

// DeleteEdge removes the edge and returns its prior record.
// Returns ErrEdgeNotFound if the ID is absent.
func (g *Graph) DeleteEdge(id EdgeID) (Edge, error) {
	e, ok := g.edges[id]
	if !ok {
		return Edge{}, fmt.Errorf("%w: %s", ErrEdgeNotFound, id)
	}
	delete(g.edges, id)
	return *e, nil
}

// RestoreNode reinserts a previously deleted node under its original
// identifier, bypassing the allocator. The allocator's high-water mark is
// raised so the identifier can never be reissued. Returns ErrDuplicateID
// if the identifier is occupied.
func (g *Graph) RestoreNode(n Node) error {
	if _, ok := g.nodes[n.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateID, n.ID)
	}
	g.nodes[n.ID] = &n
	g.nodeIDs.bump(int64(n.ID))
	return nil
}

// RestoreEdge reinserts a previously deleted edge under its original
// identifier, bypassing the allocator. Both endpoints must exist. Returns
// ErrDuplicateID if the identifier is occupied, or ErrEdgeEndpoint if an
// endpoint is missing; in either case nothing changes.
func (g *Graph) RestoreEdge(e Edge) error {
	if _, ok := g.edges[e.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateID, e.ID)
	}
	if _, ok := g.nodes[e.From]; !ok {
		return fmt.Errorf("%w: source %s", ErrEdgeEndpoint, e.From)
	}
	if _, ok := g.nodes[e.To]; !ok {
		return fmt.Errorf("%w: destination %s", ErrEdgeEndpoint, e.To)
	}
	g.edges[e.ID] = &e
	g.edgeIDs.bump(int64(e.ID))
	return nil
}

// Node returns a copy of the node with the given ID, and whether it exists.
func (g *Graph) Node(id NodeID) (Node, bool) {
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// Edge returns a copy of the edge with the given ID, and whether it exists.
func (g *Graph) Edge(id EdgeID) (Edge, bool) {
	e, ok := g.edges[id]
	if !ok {
		return Edge{}, false
	}
	return *e, true
}

// Nodes returns copies of all nodes, sorted by ID for deterministic output.
func (g *Graph) Nodes() []Node {
	nodes := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		nodes = append(nodes, *n)
	}
	slices.SortFunc(nodes, func(a, b Node) int { return cmp.Compare(a.ID, b.ID) })
	return nodes
}

// Edges returns copies of all edges, sorted by ID for deterministic output.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		edges = append(edges, *e)
	}
	slices.SortFunc(edges, func(a, b Edge) int { return cmp.Compare(a.ID, b.ID) })
	return edges
}

// NodeCount returns the number of nodes currently in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges currently in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HighWater returns the next unissued identifier in each namespace.
// Snapshots persist these so identity survives process restarts.
func (g *Graph) HighWater() (NodeID, EdgeID) {
	return NodeID(g.nodeIDs.next), EdgeID(g.edgeIDs.next)
}

// SetHighWater raises the allocator high-water marks. Values at or below
// the current marks are ignored; allocators only move forward. Snapshot
// loading uses this to retire identifiers issued in previous runs.
func (g *Graph) SetHighWater(node NodeID, edge EdgeID) {
	g.nodeIDs.bump(int64(node) - 1)
	g.edgeIDs.bump(int64(edge) - 1)
}
