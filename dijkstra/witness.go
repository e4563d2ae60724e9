package dijkstra

import (
	"math"
	"strconv"

	"github.com/seacharts/oceanroute/core"
	"github.com/seacharts/oceanroute/geo"
	"github.com/seacharts/oceanroute/pqheap"
)

// defaultExpansionCap bounds how many vertices a witness search expands
// before giving up and reporting "no better witness" (spec.md §4.J): the
// CH preprocessor only needs to know whether some path shorter than a
// candidate shortcut exists, not the exact distance to every vertex, so
// capping expansion keeps each of the O(V) witness searches per
// contraction round cheap.
const defaultExpansionCap = 100

// WitnessSearcher runs capped A* witness searches against one working
// graph h across the whole lifetime of a Contraction Hierarchies
// preprocessing run (spec.md §4.J), which calls Distance on the order
// of one per candidate-neighbor-pair per node per round -- easily a
// billion calls over a full continental graph. A fresh map and heap per
// call (as a one-shot Dijkstra would use) would dominate the run in
// allocation churn, so the heap and every scratch array are allocated
// once and reused: a monotonically increasing generation counter
// distinguishes "touched by the call currently running" from stale data
// left by an earlier call, so clearing between calls only costs
// touching the (small, capped) set of vertices the search actually
// visited rather than the whole graph.
type WitnessSearcher struct {
	h *core.Graph

	// coords and idOf translate between h's string vertex IDs and the
	// dense node indices the heuristic and scratch arrays are keyed by.
	// idOf[v] is also v's int value, since every vertex ID in h is the
	// decimal string of its original node index for the lifetime of a
	// Preprocess run (contraction only ever removes vertices or splices
	// shortcut edges between existing ones, never mints a new ID).
	coords []geo.Coordinate
	idOf   map[string]uint32

	heap       *pqheap.Heap
	gScore     []int64
	gen        []uint32
	generation uint32
}

// NewWitnessSearcher builds a searcher over h. coords and idOf must
// share the dense indexing of h's original node set: coords[idOf[v]]
// is vertex v's coordinate for every v ever present in h.
func NewWitnessSearcher(h *core.Graph, coords []geo.Coordinate, idOf map[string]uint32) *WitnessSearcher {
	return &WitnessSearcher{
		h:      h,
		coords: coords,
		idOf:   idOf,
		heap:   pqheap.New(16),
		gScore: make([]int64, len(coords)),
		gen:    make([]uint32, len(coords)),
	}
}

// Distance runs a capped A* search from a to b over h, skipping the
// excluded vertex entirely (it stands for the node currently being
// contracted, so paths through it don't count as witnesses), and
// returns the shortest a->b distance found within bound. The search is
// guided by a Haversine-to-b heuristic (spec.md §4.J), admissible
// because every edge weight is geo.EdgeWeightMeters's ceil(Haversine),
// always at least as large as the heuristic's floor(Haversine). Returns
// math.MaxInt64 if no path under bound is found within expansionCap
// vertex expansions or before the search exhausts itself.
//
// a, b, and exclude must all be distinct vertices present in h.
//
// Complexity: O(min(expansionCap, V) log V).
func (ws *WitnessSearcher) Distance(a, b, exclude string, bound int64, expansionCap int) int64 {
	if expansionCap <= 0 {
		expansionCap = defaultExpansionCap
	}

	ws.generation++
	gen := ws.generation

	ai, bi, ei := ws.idOf[a], ws.idOf[b], ws.idOf[exclude]
	tgt := ws.coords[bi]

	ws.heap.Reset()
	ws.gScore[ai] = 0
	ws.gen[ai] = gen
	ws.heap.Push(ai, ws.priority(ai, 0, tgt))

	expansions := 0
	for ws.heap.Len() > 0 && expansions < expansionCap {
		item := ws.heap.Pop()
		u := item.Node
		d := ws.gScore[u]
		expansions++

		if u == bi {
			return d
		}
		if d > bound {
			break
		}

		neighbors, err := ws.h.Neighbors(strconv.Itoa(int(u)))
		if err != nil {
			continue
		}
		for _, e := range neighbors {
			vi := ws.idOf[e.To]
			if vi == ei {
				continue
			}
			nd := d + e.Weight
			if nd > bound {
				continue
			}
			if ws.gen[vi] != gen || nd < ws.gScore[vi] {
				ws.gScore[vi] = nd
				ws.gen[vi] = gen
				ws.heap.Update(vi, ws.priority(vi, nd, tgt))
			}
		}
	}

	return math.MaxInt64
}

// priority returns node n's A* priority (g-score plus the admissible
// Haversine-to-target heuristic) given it is reached with g-score g.
func (ws *WitnessSearcher) priority(n uint32, g int64, tgt geo.Coordinate) int64 {
	return g + int64(math.Floor(geo.HaversineMeters(ws.coords[n], tgt)))
}
