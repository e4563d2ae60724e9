package ch

import (
	"math"
	"time"

	"github.com/seacharts/oceanroute/pqheap"
	"github.com/seacharts/oceanroute/route"
)

// Query answers a shortest-path request on a preprocessed Graph with a
// bidirectional Dijkstra restricted to upward edges (spec.md §4.K):
// the forward search only relaxes edges into higher-level neighbors of
// src, the backward search only relaxes edges into higher-level
// neighbors of tgt, and the two meet at the highest-level node on the
// optimal path. Termination is the CH-specific asymmetric rule
// topF >= best AND topB >= best, not plain bidirectional Dijkstra's
// topF + topB >= best: because both searches only ever go up, the
// meeting node is found once neither frontier can still improve on the
// best path seen, rather than once their combined distance does.
func Query(chg *Graph, src, tgt uint32) route.Result {
	start := time.Now()

	if src == tgt {
		return route.Result{DistanceM: 0, Path: []uint32{src}, Visited: 1, Elapsed: time.Since(start)}
	}

	g := chg.Upward
	distF := map[uint32]int64{src: 0}
	distB := map[uint32]int64{tgt: 0}
	prevF := map[uint32]uint32{}
	prevB := map[uint32]uint32{}

	heapF := pqheap.New(1)
	heapB := pqheap.New(1)
	heapF.Push(src, 0)
	heapB.Push(tgt, 0)

	best := int64(math.MaxInt64)
	var meet uint32
	found := false
	var visited uint32

	for heapF.Len() > 0 || heapB.Len() > 0 {
		topF := int64(math.MaxInt64)
		if heapF.Len() > 0 {
			topF = heapF.Peek().Priority
		}
		topB := int64(math.MaxInt64)
		if heapB.Len() > 0 {
			topB = heapB.Peek().Priority
		}

		if found && topF >= best && topB >= best {
			break
		}

		if heapF.Len() > 0 && topF <= topB {
			item := heapF.Pop()
			visited++
			u := item.Node
			for _, e := range g.Neighbors(u) {
				nd := item.Priority + int64(e.Dist)
				if cur, ok := distF[e.Tgt]; !ok || nd < cur {
					distF[e.Tgt] = nd
					prevF[e.Tgt] = u
					if heapF.Contains(e.Tgt) {
						heapF.Update(e.Tgt, nd)
					} else {
						heapF.Push(e.Tgt, nd)
					}
					if db, ok := distB[e.Tgt]; ok && nd+db < best {
						best = nd + db
						meet = e.Tgt
						found = true
					}
				}
			}
			continue
		}

		if heapB.Len() > 0 {
			item := heapB.Pop()
			visited++
			u := item.Node
			for _, e := range g.Neighbors(u) {
				nd := item.Priority + int64(e.Dist)
				if cur, ok := distB[e.Tgt]; !ok || nd < cur {
					distB[e.Tgt] = nd
					prevB[e.Tgt] = u
					if heapB.Contains(e.Tgt) {
						heapB.Update(e.Tgt, nd)
					} else {
						heapB.Push(e.Tgt, nd)
					}
					if df, ok := distF[e.Tgt]; ok && nd+df < best {
						best = nd + df
						meet = e.Tgt
						found = true
					}
				}
			}
		}
	}

	if !found {
		return route.Result{DistanceM: route.NoPath, Visited: visited, Elapsed: time.Since(start)}
	}

	return route.Result{
		DistanceM: uint32(best),
		Path:      stitchUpward(prevF, prevB, src, tgt, meet),
		Visited:   visited,
		Elapsed:   time.Since(start),
	}
}

func stitchUpward(prevF, prevB map[uint32]uint32, src, tgt, meet uint32) []uint32 {
	var forward []uint32
	for n := meet; ; {
		forward = append([]uint32{n}, forward...)
		if n == src {
			break
		}
		n = prevF[n]
	}

	var backward []uint32
	for n := meet; n != tgt; {
		n = prevB[n]
		backward = append(backward, n)
	}

	return append(forward, backward...)
}
