// Package ch implements Contraction Hierarchies preprocessing and query
// (spec.md §4.J, §4.K): it contracts nodes one independent-set round at a
// time, recording shortcut edges that preserve shortest-path distances
// when the query only ever walks upward in node level, then answers
// queries with a bidirectional Dijkstra restricted to that upward DAG.
package ch

import (
	"errors"

	"github.com/seacharts/oceanroute/csrgraph"
)

// ErrResumeMismatch indicates a checkpoint file does not match the graph
// being preprocessed (different node/edge counts), so it cannot be
// resumed from and the preprocessor falls back to a fresh start.
var ErrResumeMismatch = errors.New("ch: checkpoint does not match input graph")

// Graph is the finished Contraction Hierarchy: Upward keeps only edges
// (original or shortcut) oriented from a lower-level to a higher-level
// node, so a query walking strictly upward from both endpoints is
// guaranteed to meet at the highest-level node on the optimal path.
type Graph struct {
	Upward *csrgraph.Graph
	Level  []uint32
}
