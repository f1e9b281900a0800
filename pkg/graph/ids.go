package graph

import (
	"fmt"
	"strconv"
	"strings"
)

// NodeID identifies a node. IDs are allocated monotonically and render as
// "n0", "n1", ... in snapshots, DOT output, and the editor.
type NodeID int64

// EdgeID identifies an edge. IDs are allocated monotonically and render as
// "e0", "e1", ... IDs live in a namespace separate from node IDs.
type EdgeID int64

// String returns the textual form of the ID, e.g. "n3".
func (id NodeID) String() string { return "n" + strconv.FormatInt(int64(id), 10) }

// String returns the textual form of the ID, e.g. "e3".
func (id EdgeID) String() string { return "e" + strconv.FormatInt(int64(id), 10) }

// ParseNodeID parses the textual form produced by [NodeID.String].
// Returns ErrInvalidID if s is not of the form "n<k>" with k >= 0.
func ParseNodeID(s string) (NodeID, error) {
	v, err := parseID(s, "n")
	return NodeID(v), err
}

// ParseEdgeID parses the textual form produced by [EdgeID.String].
// Returns ErrInvalidID if s is not of the form "e<k>" with k >= 0.
func ParseEdgeID(s string) (EdgeID, error) {
	v, err := parseID(s, "e")
	return EdgeID(v), err
}

// parseID accepts exactly the canonical forms String emits: a sign or a
// leading zero would let distinct strings alias one identifier.
func parseID(s, prefix string) (int64, error) {
	rest, ok := strings.CutPrefix(s, prefix)
	if !ok || rest == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	if rest[0] == '+' || rest[0] == '-' || (rest[0] == '0' && len(rest) > 1) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	v, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return v, nil
}

// counter is a monotonic identifier allocator for one namespace.
// It never reissues a value. Overflow is reported instead of wrapping,
// since a wrapped counter would collide with live identifiers.
type counter struct {
	next int64
}

// take returns the next unissued value and advances the counter.
func (c *counter) take() (int64, error) {
	if c.next < 0 {
		return 0, ErrIDExhausted
	}
	id := c.next
	c.next++
	return id, nil
}

// bump raises the counter so that id can never be issued again.
// Lower values are ignored; the counter only moves forward.
func (c *counter) bump(id int64) {
	if id >= c.next {
		c.next = id + 1
	}
}
