package gridgraph

import (
	"sort"

	"github.com/seacharts/oceanroute/csrgraph"
)

// Components walks g's adjacency (treated as undirected: every edge in
// this package's graphs already has a reverse counterpart, per
// csrgraph's convention) and returns each connected component as a
// sorted slice of node ids. A fully-connected ocean graph returns one
// component; a graph with landlocked seas (the Black Sea, the Caspian)
// returns one component per sea, which is the expected, non-error
// outcome of graph generation rather than a defect to fix.
//
// Complexity: O(V + E) time, O(V) memory.
func Components(g *csrgraph.Graph) ([][]uint32, error) {
	if len(g.Nodes) == 0 {
		return nil, ErrEmptyGraph
	}

	visited := make([]bool, len(g.Nodes))
	var components [][]uint32

	for start := range g.Nodes {
		if visited[start] {
			continue
		}
		queue := []uint32{uint32(start)}
		visited[start] = true
		var comp []uint32

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, e := range g.Neighbors(u) {
				if !visited[e.Tgt] {
					visited[e.Tgt] = true
					queue = append(queue, e.Tgt)
				}
			}
		}

		sort.Slice(comp, func(i, j int) bool { return comp[i] < comp[j] })
		components = append(components, comp)
	}

	return components, nil
}
