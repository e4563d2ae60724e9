package ch

import (
	"sort"
	"strconv"

	"github.com/seacharts/oceanroute/csrgraph"
)

func itoa(id uint32) string { return strconv.Itoa(int(id)) }

// contractSet removes every node in selected from H, recording each of
// its current edges as an upward edge (the contracted node always has
// the lower level), splicing in the shortcuts computed for it, and
// bumping the level counter of its surviving neighbors. It returns the
// (deduplicated) set of those neighbors, which need their importance
// and pending shortcuts refreshed before the next round.
func (st *state) contractSet(selected []string) []string {
	var touched []string

	for _, n := range selected {
		neighbors, _ := st.h.NeighborIDs(n)

		for _, m := range neighbors {
			w := st.edgeWeight(n, m)
			if w < 0 {
				continue
			}
			st.upEdges = append(st.upEdges, csrgraph.Edge{
				Src:  st.idOf[n],
				Tgt:  st.idOf[m],
				Dist: uint32(w),
			})
		}

		for _, sc := range st.pending[n] {
			if st.contracted[sc.a] || st.contracted[sc.b] {
				continue
			}
			st.addOrImproveEdge(sc.a, sc.b, sc.dist, sc.hopcount)
		}

		for _, m := range neighbors {
			if !st.contracted[m] {
				st.level[m]++
				touched = append(touched, m)
			}
		}

		st.rank[n] = st.nextRank
		st.nextRank++
		st.contracted[n] = true
		_ = st.h.RemoveVertex(n)
	}

	return dedupStrings(touched)
}

// addOrImproveEdge inserts (or tightens) the undirected shortcut a–b in
// H, keeping hopcount consistent with whichever weight wins.
func (st *state) addOrImproveEdge(a, b string, dist, hopcount int64) {
	ab := st.findEdge(a, b)
	if ab != nil {
		if ab.Weight <= dist {
			return
		}
		_ = st.h.RemoveEdge(ab.ID)
		if ba := st.findEdge(b, a); ba != nil {
			_ = st.h.RemoveEdge(ba.ID)
		}
	}
	_, _ = st.h.AddEdge(a, b, dist)
	_, _ = st.h.AddEdge(b, a, dist)
	st.setHop(a, b, hopcount)
	st.setHop(b, a, hopcount)
}

// finalizeCore assigns a final, strictly increasing rank to every node
// still left in H once contraction stops (spec.md's node floor), then
// emits all remaining mutual edges as upward edges ordered by that
// rank, so the untouched core stays fully navigable.
func (st *state) finalizeCore() {
	remaining := st.h.Vertices()
	sort.Strings(remaining)

	for _, n := range remaining {
		st.rank[n] = st.nextRank
		st.nextRank++
	}

	for _, a := range remaining {
		neighbors, _ := st.h.NeighborIDs(a)
		for _, b := range neighbors {
			if st.rank[a] >= st.rank[b] {
				continue
			}
			w := st.edgeWeight(a, b)
			if w < 0 {
				continue
			}
			st.upEdges = append(st.upEdges, csrgraph.Edge{
				Src:  st.idOf[a],
				Tgt:  st.idOf[b],
				Dist: uint32(w),
			})
		}
	}
}

// buildGraph assembles the finished upward DAG as a csrgraph.Graph
// alongside the per-node level array.
func (st *state) buildGraph(g *csrgraph.Graph) *Graph {
	sort.Slice(st.upEdges, func(i, j int) bool {
		if st.upEdges[i].Src != st.upEdges[j].Src {
			return st.upEdges[i].Src < st.upEdges[j].Src
		}
		return st.upEdges[i].Tgt < st.upEdges[j].Tgt
	})

	upward, err := csrgraph.New(g.Nodes, st.upEdges)
	if err != nil {
		// Construction from internally-consistent state should never
		// fail; surface a zero-edge graph rather than panicking.
		upward, _ = csrgraph.New(g.Nodes, nil)
	}

	level := make([]uint32, len(g.Nodes))
	for id, idx := range st.idOf {
		level[idx] = st.rank[id]
	}

	return &Graph{Upward: upward, Level: level}
}
