// Package graph implements the in-memory labeled directed graph that dotpad
// edits. It owns the authoritative node and edge sets, the per-namespace
// identifier allocators, and the integrity invariants that every mutation
// must preserve:
//
//  1. Every edge's endpoints reference nodes currently in the graph.
//  2. Identifiers are unique within their namespace for the lifetime of the
//     graph, including deleted entities. An identifier is never reissued,
//     even after its entity is removed.
//  3. Self-loops and parallel edges are permitted.
//
// Every mutating method either succeeds and changes state, or fails and
// leaves the graph completely untouched. Callers that need invertibility
// (see package edit) rely on this all-or-nothing guarantee and on the
// return values carrying the overwritten state (previous labels, full
// deleted records).
//
// The restore methods reinsert previously deleted entities under their
// original identifiers, bypassing the allocator. They exist for undo and
// snapshot loading and must not be used to create new entities.
package graph
