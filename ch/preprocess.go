package ch

import (
	"sort"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/seacharts/oceanroute/core"
	"github.com/seacharts/oceanroute/csrgraph"
	"github.com/seacharts/oceanroute/dijkstra"
	"github.com/seacharts/oceanroute/geo"
)

// witnessExpansionCap bounds each witness search (spec.md §4.J: "a
// witness_expansions safety cap per search (>= 100) falls back to
// 'shortcut needed' -- conservative").
const witnessExpansionCap = 100

// independentSetSlack is how far above the minimum-selected importance
// a popped node's importance may still be to join this round's
// independent set (spec.md §4.J step 2.b).
const independentSetSlack = 1000 // priorities are importance*1000

// shortcut is a candidate edge (a, b) that would replace paths through
// a node pending contraction, carrying the combined distance and the
// combined hopcount of the two edges it would splice together.
type shortcut struct {
	a, b     string
	dist     int64
	hopcount int64
}

// state holds all mutable working data for one Preprocess run.
type state struct {
	h          *core.Graph // remaining uncontracted graph
	hop        map[string]map[string]int64
	level      map[string]int // L(n): count of contracted neighbors so far
	contracted map[string]bool
	rank       map[string]uint32
	nextRank   uint32
	pending    map[string][]shortcut
	upEdges    []csrgraph.Edge
	idOf       map[string]uint32 // string vertex id -> original node index
	coords     []geo.Coordinate  // original node index -> coordinate, for witness's heuristic
	witness    *dijkstra.WitnessSearcher
}

// Preprocess builds the Contraction Hierarchy for g: it repeatedly
// contracts an independent set of minimum-importance nodes until at
// most nodeFloor remain, recording shortcut edges so that a query
// walking only upward in level recovers every shortest-path distance.
// checkpointPath is where progress is periodically saved (see
// Checkpoint); pass "" to disable checkpointing. checkpointEvery is the
// minimum wall-clock gap between writes (spec.md: "every few wall-clock
// minutes"); pass <= 0 to checkpoint only once, when preprocessing
// finishes.
func Preprocess(g *csrgraph.Graph, nodeFloor int, checkpointPath string, checkpointEvery time.Duration) (*Graph, error) {
	st := newState(g)

	remaining := len(g.Nodes)
	updateNodes := make([]string, 0, remaining)
	for i := range g.Nodes {
		updateNodes = append(updateNodes, strconv.Itoa(i))
	}

	heap := newImportanceHeap(st, updateNodes)

	round := 0
	lastCheckpoint := time.Now()
	for remaining > nodeFloor {
		round++
		st.refreshImportance(heap, updateNodes)

		selected := st.selectIndependentSet(heap)
		if len(selected) == 0 {
			// The first node the heap yields is always selected, so
			// an empty selection means the heap yielded none.
			// Contract one node directly to make progress.
			selected = []string{updateNodes[0]}
		}

		contractedNeighbors := st.contractSet(selected)
		remaining -= len(selected)
		updateNodes = dedupStrings(contractedNeighbors)

		log.Info().Int("round", round).Int("contracted", len(selected)).
			Int("remaining", remaining).Msg("ch: contraction round")

		if checkpointPath != "" && checkpointEvery > 0 && time.Since(lastCheckpoint) >= checkpointEvery {
			if err := st.save(checkpointPath, g); err != nil {
				log.Warn().Err(err).Msg("ch: checkpoint write failed")
			}
			lastCheckpoint = time.Now()
		}
	}

	if checkpointPath != "" {
		if err := st.save(checkpointPath, g); err != nil {
			log.Warn().Err(err).Msg("ch: final checkpoint write failed")
		}
	}

	st.finalizeCore()

	return st.buildGraph(g), nil
}

func newState(g *csrgraph.Graph) *state {
	st := &state{
		h:          core.NewGraph(core.WithDirected(true), core.WithWeighted()),
		hop:        make(map[string]map[string]int64, len(g.Nodes)),
		level:      make(map[string]int, len(g.Nodes)),
		contracted: make(map[string]bool, len(g.Nodes)),
		rank:       make(map[string]uint32, len(g.Nodes)),
		pending:    make(map[string][]shortcut, len(g.Nodes)),
		idOf:       make(map[string]uint32, len(g.Nodes)),
	}

	coords := make([]geo.Coordinate, len(g.Nodes))
	for i := range g.Nodes {
		id := strconv.Itoa(i)
		_ = st.h.AddVertex(id)
		st.idOf[id] = uint32(i)
		coords[i] = g.Nodes[i].Coordinate()
	}
	for i := range g.Nodes {
		a := strconv.Itoa(i)
		for _, e := range g.Neighbors(uint32(i)) {
			b := strconv.Itoa(int(e.Tgt))
			_, _ = st.h.AddEdge(a, b, int64(e.Dist))
			st.setHop(a, b, 1)
		}
	}

	st.coords = coords
	st.witness = dijkstra.NewWitnessSearcher(st.h, coords, st.idOf)

	return st
}

func (st *state) setHop(a, b string, hc int64) {
	m, ok := st.hop[a]
	if !ok {
		m = make(map[string]int64)
		st.hop[a] = m
	}
	m[b] = hc
}

func (st *state) getHop(a, b string) int64 {
	if m, ok := st.hop[a]; ok {
		if hc, ok := m[b]; ok {
			return hc
		}
	}

	return 1
}

// edgeWeight returns the weight of the directed edge a->b in H, or -1
// if absent.
func (st *state) edgeWeight(a, b string) int64 {
	e := st.findEdge(a, b)
	if e == nil {
		return -1
	}

	return e.Weight
}

// findEdge returns the directed edge a->b in H, or nil if absent.
func (st *state) findEdge(a, b string) *core.Edge {
	neighbors, err := st.h.Neighbors(a)
	if err != nil {
		return nil
	}
	for _, e := range neighbors {
		if e.To == b {
			return e
		}
	}

	return nil
}

func dedupStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)

	return out
}
