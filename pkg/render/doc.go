// Package render converts graphs to Graphviz DOT and rasterizes them.
//
// [ToDOT] produces deterministic DOT text suitable for export or diffing.
// [SVG] and [PNG] run the DOT through the embedded Graphviz layout engine,
// so rendering needs no external binaries.
package render
