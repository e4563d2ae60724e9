// Package csrgraph implements the compact, immutable compressed-sparse-row
// graph that the routing engines consume (spec.md §4.G). Once built, a
// Graph is read-only: many routing queries may run over it concurrently
// without coordination (spec.md §5).
package csrgraph

import (
	"errors"

	"github.com/seacharts/oceanroute/geo"
)

// ErrGraphInconsistency indicates the node/edge/offset arrays fail the
// CSR invariants: offsets must be nondecreasing, start at 0, end at
// len(edges), and every edge in offsets[i]:offsets[i+1] must have
// Src == i.
var ErrGraphInconsistency = errors.New("csrgraph: node count mismatches edge src references")

// Node is one graph vertex. ID equals its position in Nodes.
type Node struct {
	ID  uint32
	Lon float32
	Lat float32
}

// Coordinate returns the node's position as a geo.Coordinate.
func (n Node) Coordinate() geo.Coordinate {
	return geo.Coordinate{Lon: n.Lon, Lat: n.Lat}
}

// Edge is one directed arc; an undirected connection is represented by
// two Edge values (src->tgt and tgt->src), each carrying the same Dist.
type Edge struct {
	Src  uint32
	Tgt  uint32
	Dist uint32
}

// Graph is the compact adjacency representation: Edges is sorted by Src,
// and Offsets[i]:Offsets[i+1] slices out node i's outgoing edges.
type Graph struct {
	Nodes   []Node
	Edges   []Edge
	Offsets []uint32
}

// New builds a Graph from a node list and a Src-sorted edge list,
// deriving Offsets by a single scan. Returns ErrGraphInconsistency if
// any edge references a node outside [0, len(nodes)) or the edges are
// not sorted by Src.
//
// Complexity: O(V + E).
func New(nodes []Node, edges []Edge) (*Graph, error) {
	offsets := make([]uint32, len(nodes)+1)
	var cur uint32
	for i, e := range edges {
		if e.Src >= uint32(len(nodes)) || e.Tgt >= uint32(len(nodes)) {
			return nil, ErrGraphInconsistency
		}
		if e.Src < cur {
			return nil, ErrGraphInconsistency
		}
		for cur < e.Src {
			cur++
			offsets[cur] = uint32(i)
		}
	}
	for cur < uint32(len(nodes)) {
		cur++
		offsets[cur] = uint32(len(edges))
	}

	return &Graph{Nodes: nodes, Edges: edges, Offsets: offsets}, nil
}

// Neighbors returns the outgoing edges of node id.
//
// Complexity: O(1) to slice; O(degree) to iterate.
func (g *Graph) Neighbors(id uint32) []Edge {
	return g.Edges[g.Offsets[id]:g.Offsets[id+1]]
}

// ClosestNode returns the id of the node nearest to c by Haversine
// distance, via a linear scan.
//
// Acceptable at N <= ~4M: only two calls happen per routing query (src
// and tgt lookup) and the inner loop is a few nanoseconds per node
// (spec.md §4.G).
func (g *Graph) ClosestNode(c geo.Coordinate) uint32 {
	var best uint32
	bestDist := geo.HaversineMeters(c, g.Nodes[0].Coordinate())
	for i := 1; i < len(g.Nodes); i++ {
		d := geo.HaversineMeters(c, g.Nodes[i].Coordinate())
		if d < bestDist {
			bestDist = d
			best = uint32(i)
		}
	}

	return best
}
