package route

import (
	"sort"
	"time"

	"github.com/seacharts/oceanroute/csrgraph"
	"github.com/seacharts/oceanroute/pqheap"
)

// BidirectionalDijkstra runs two simultaneous Dijkstra searches, forward
// from src over g and backward from tgt over a reverse adjacency built
// on the fly, alternating expansion between whichever frontier has the
// smaller top-of-heap distance. It terminates by the standard symmetric
// rule: once topF + topB >= best, no unexplored node can improve on the
// best meeting-point distance found so far (spec.md §4.I).
//
// Building the reverse adjacency costs O(E) per call; for a routing
// engine that answers many queries against the same graph this is
// cheaper to precompute once, but spec.md scopes that precomputation to
// the CH preprocessor's upward/downward DAG split (§4.J), not here.
func BidirectionalDijkstra(g *csrgraph.Graph, src, tgt uint32) Result {
	start := time.Now()
	if src == tgt {
		return Result{DistanceM: 0, Path: []uint32{src}, Visited: 0, Elapsed: time.Since(start)}
	}

	reverse := buildReverse(g)

	distF := map[uint32]int64{src: 0}
	distB := map[uint32]int64{tgt: 0}
	prevF := map[uint32]uint32{}
	prevB := map[uint32]uint32{}
	settledF := map[uint32]bool{}
	settledB := map[uint32]bool{}

	hf := pqheap.New(0)
	hb := pqheap.New(0)
	hf.Push(src, 0)
	hb.Push(tgt, 0)

	best := int64(NoPath)
	var meet uint32
	found := false
	var visited uint32

	for hf.Len() > 0 && hb.Len() > 0 {
		topF := hf.Peek().Priority
		topB := hb.Peek().Priority
		if found && topF+topB >= best {
			break
		}

		if topF <= topB {
			visited += stepDirection(g, hf, distF, prevF, settledF, distB, &best, &meet, &found)
		} else {
			visited += stepDirection(reverse, hb, distB, prevB, settledB, distF, &best, &meet, &found)
		}
	}

	if !found {
		return unreachable(visited, time.Since(start))
	}

	return Result{
		DistanceM: uint32(best),
		Path:      stitch(prevF, prevB, src, tgt, meet),
		Visited:   visited,
		Elapsed:   time.Since(start),
	}
}

// stepDirection pops one node from h, settles it, relaxes its outgoing
// edges in g, and checks the settled node and each improved neighbor
// already reached by the opposite side for a new best meeting distance.
// Returns 1 if a node was newly settled, 0 if the popped entry was stale.
func stepDirection(
	g *csrgraph.Graph,
	h *pqheap.Heap,
	dist map[uint32]int64,
	prev map[uint32]uint32,
	settled map[uint32]bool,
	otherDist map[uint32]int64,
	best *int64,
	meet *uint32,
	found *bool,
) uint32 {
	item := h.Pop()
	u := item.Node
	if settled[u] {
		return 0
	}
	settled[u] = true

	if od, ok := otherDist[u]; ok {
		cand := dist[u] + od
		if !*found || cand < *best {
			*best = cand
			*meet = u
			*found = true
		}
	}

	for _, e := range g.Neighbors(u) {
		nd := dist[u] + int64(e.Dist)
		if old, ok := dist[e.Tgt]; !ok || nd < old {
			dist[e.Tgt] = nd
			prev[e.Tgt] = u
			h.Update(e.Tgt, nd)
			if od, ok := otherDist[e.Tgt]; ok && (!*found || nd+od < *best) {
				*best = nd + od
				*meet = e.Tgt
				*found = true
			}
		}
	}

	return 1
}

// stitch joins the forward path src->meet with the reverse path
// meet->tgt (walked via prevB, then reversed) into one src->tgt path.
func stitch(prevF, prevB map[uint32]uint32, src, tgt, meet uint32) []uint32 {
	var fwd []uint32
	cur := meet
	fwd = append(fwd, cur)
	for cur != src {
		cur = prevF[cur]
		fwd = append(fwd, cur)
	}
	for i, j := 0, len(fwd)-1; i < j; i, j = i+1, j-1 {
		fwd[i], fwd[j] = fwd[j], fwd[i]
	}

	var bwd []uint32
	cur = meet
	for cur != tgt {
		cur = prevB[cur]
		bwd = append(bwd, cur)
	}

	return append(fwd, bwd...)
}

// buildReverse constructs a CSR graph with every edge's direction
// flipped, used as the backward search's adjacency.
func buildReverse(g *csrgraph.Graph) *csrgraph.Graph {
	edges := make([]csrgraph.Edge, len(g.Edges))
	for i, e := range g.Edges {
		edges[i] = csrgraph.Edge{Src: e.Tgt, Tgt: e.Src, Dist: e.Dist}
	}
	// Sort by Src to satisfy csrgraph.New's ordering precondition.
	sort.Slice(edges, func(i, j int) bool { return edges[i].Src < edges[j].Src })

	rg, err := csrgraph.New(g.Nodes, edges)
	if err != nil {
		// g's edges were already validated by csrgraph.New; flipping
		// src/tgt and re-sorting cannot reintroduce an out-of-range
		// node reference, so this is unreachable outside a corrupted
		// input graph.
		panic(err)
	}

	return rg
}
