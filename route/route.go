// Package route implements shortest-path search over an immutable
// csrgraph.Graph: plain Dijkstra, bidirectional Dijkstra, and A* with a
// Haversine heuristic (spec.md §4.I). All three walk CSR offsets instead
// of a hashmap adjacency, and use pqheap.Heap's true decrease-key rather
// than a lazy duplicate-push heap, since node counts here run into the
// millions and a churning lazy heap would waste significant memory.
//
// A Graph is read-only once built (csrgraph.Graph's contract), so the
// three search functions need no synchronization of their own: many
// queries may run concurrently over the same *csrgraph.Graph.
package route

import (
	"math"
	"time"

	"github.com/seacharts/oceanroute/csrgraph"
	"github.com/seacharts/oceanroute/geo"
	"github.com/seacharts/oceanroute/pqheap"
)

// NoPath is the distance value used when src and tgt are not connected.
// Routing failure is not an error (spec.md §7): callers check
// Result.DistanceM == NoPath rather than an error return.
const NoPath = math.MaxUint32

// Result carries a search's outcome: the path distance in meters, the
// recovered node sequence (nil if unreachable; the single node src when
// src == tgt), and diagnostics for test_random-style comparisons.
type Result struct {
	DistanceM uint32
	Path      []uint32
	Visited   uint32
	Elapsed   time.Duration
}

func unreachable(visited uint32, elapsed time.Duration) Result {
	return Result{DistanceM: NoPath, Path: nil, Visited: visited, Elapsed: elapsed}
}

// Dijkstra computes the shortest path from src to tgt by expanding nodes
// in increasing distance order until tgt is settled.
//
// Complexity: O((V + E) log V) worst case, but in practice terminates
// once tgt is popped, long before the whole graph is settled.
func Dijkstra(g *csrgraph.Graph, src, tgt uint32) Result {
	start := time.Now()
	dist := make(map[uint32]int64, 1024)
	prev := make(map[uint32]uint32, 1024)
	settled := make(map[uint32]bool, 1024)

	h := pqheap.New(0)
	dist[src] = 0
	h.Push(src, 0)

	var visited uint32
	for h.Len() > 0 {
		item := h.Pop()
		u := item.Node
		if settled[u] {
			continue
		}
		settled[u] = true
		visited++

		if u == tgt {
			return Result{
				DistanceM: uint32(dist[u]),
				Path:      reconstruct(prev, src, tgt),
				Visited:   visited,
				Elapsed:   time.Since(start),
			}
		}

		for _, e := range g.Neighbors(u) {
			if settled[e.Tgt] {
				continue
			}
			nd := dist[u] + int64(e.Dist)
			if old, ok := dist[e.Tgt]; !ok || nd < old {
				dist[e.Tgt] = nd
				prev[e.Tgt] = u
				h.Update(e.Tgt, nd)
			}
		}
	}

	return unreachable(visited, time.Since(start))
}

// AStar computes the shortest path using Haversine-to-target as an
// admissible, consistent heuristic on a sphere: the great-circle
// distance never overestimates a path constrained to that same sphere.
// The heuristic for a node is computed once and cached.
func AStar(g *csrgraph.Graph, src, tgt uint32) Result {
	start := time.Now()
	tgtCoord := g.Nodes[tgt].Coordinate()
	hCache := make(map[uint32]float64, 1024)
	heuristic := func(n uint32) float64 {
		if v, ok := hCache[n]; ok {
			return v
		}
		v := geo.HaversineMeters(g.Nodes[n].Coordinate(), tgtCoord)
		hCache[n] = v

		return v
	}

	gScore := make(map[uint32]int64, 1024)
	prev := make(map[uint32]uint32, 1024)
	settled := make(map[uint32]bool, 1024)

	h := pqheap.New(0)
	gScore[src] = 0
	h.Push(src, int64(heuristic(src)))

	var visited uint32
	for h.Len() > 0 {
		item := h.Pop()
		u := item.Node
		if settled[u] {
			continue
		}
		settled[u] = true
		visited++

		if u == tgt {
			return Result{
				DistanceM: uint32(gScore[u]),
				Path:      reconstruct(prev, src, tgt),
				Visited:   visited,
				Elapsed:   time.Since(start),
			}
		}

		for _, e := range g.Neighbors(u) {
			if settled[e.Tgt] {
				continue
			}
			ng := gScore[u] + int64(e.Dist)
			if old, ok := gScore[e.Tgt]; !ok || ng < old {
				gScore[e.Tgt] = ng
				prev[e.Tgt] = u
				f := ng + int64(heuristic(e.Tgt))
				h.Update(e.Tgt, f)
			}
		}
	}

	return unreachable(visited, time.Since(start))
}

// reconstruct walks prev from tgt back to src, returning the path in
// src->tgt order. Returns []uint32{tgt} if tgt == src (a single-node
// path); returns nil only when prev has no entry for some node on the
// walk back, meaning tgt is unreachable from src.
func reconstruct(prev map[uint32]uint32, src, tgt uint32) []uint32 {
	path := []uint32{tgt}
	cur := tgt
	for cur != src {
		p, ok := prev[cur]
		if !ok {
			return nil
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
