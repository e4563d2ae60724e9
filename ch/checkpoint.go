package ch

import (
	"bytes"
	"encoding/gob"
	"errors"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/seacharts/oceanroute/core"
	"github.com/seacharts/oceanroute/csrgraph"
	"github.com/seacharts/oceanroute/dijkstra"
)

// Checkpoint is the full state needed to resume an interrupted
// Preprocess run: the remaining working graph H, the upward edges
// accumulated into F so far, and the per-node bookkeeping the
// contraction loop needs to pick up where it left off.
type Checkpoint struct {
	RunID       string
	NodeCount   int
	EdgeCount   int
	HVertices   []string
	HEdges      []checkpointEdge
	Hop         map[string]map[string]int64
	Level       map[string]int
	Contracted  map[string]bool
	Rank        map[string]uint32
	NextRank    uint32
	UpEdges     []csrgraph.Edge
	UpdateNodes []string
}

type checkpointEdge struct {
	From, To string
	Weight   int64
}

// save serializes the current contraction state to path, stamped with
// a fresh run ID and the input graph's size so Resume can detect a
// mismatched checkpoint.
func (st *state) save(path string, g *csrgraph.Graph) error {
	cp := Checkpoint{
		RunID:      uuid.NewString(),
		NodeCount:  len(g.Nodes),
		EdgeCount:  len(g.Edges),
		Hop:        st.hop,
		Level:      st.level,
		Contracted: st.contracted,
		Rank:       st.rank,
		NextRank:   st.nextRank,
		UpEdges:    st.upEdges,
	}

	for _, v := range st.h.Vertices() {
		cp.HVertices = append(cp.HVertices, v)
	}
	for _, e := range st.h.Edges() {
		cp.HEdges = append(cp.HEdges, checkpointEdge{From: e.From, To: e.To, Weight: e.Weight})
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(cp); err != nil {
		return err
	}

	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// LoadCheckpoint reads back a Checkpoint previously written by
// Preprocess. It returns ErrResumeMismatch if the checkpoint's node or
// edge counts do not match g, since resuming against a different graph
// would silently corrupt the contraction.
func LoadCheckpoint(path string, g *csrgraph.Graph) (*Checkpoint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cp Checkpoint
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&cp); err != nil {
		return nil, err
	}

	if cp.NodeCount != len(g.Nodes) || cp.EdgeCount != len(g.Edges) {
		return nil, ErrResumeMismatch
	}

	return &cp, nil
}

// ResumePreprocess continues a Preprocess run from a checkpoint
// previously written against g, rebuilding the working graph H and all
// contraction bookkeeping before re-entering the main contraction loop.
// If the checkpoint does not match g (ErrResumeMismatch), it logs a
// warning and runs Preprocess from scratch instead; any other load
// error is returned.
// checkpointEvery is the minimum wall-clock gap between checkpoint
// writes; pass <= 0 to checkpoint only once, at the end of the run.
func ResumePreprocess(g *csrgraph.Graph, nodeFloor int, checkpointPath string, checkpointEvery time.Duration) (*Graph, error) {
	cp, err := LoadCheckpoint(checkpointPath, g)
	if errors.Is(err, ErrResumeMismatch) {
		log.Warn().Err(err).Msg("ch: checkpoint does not match graph, starting fresh")
		return Preprocess(g, nodeFloor, checkpointPath, checkpointEvery)
	}
	if err != nil {
		return nil, err
	}
	log.Info().Str("run_id", cp.RunID).Msg("ch: resuming checkpoint")

	st := newState(g)
	st.h = core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, v := range cp.HVertices {
		_ = st.h.AddVertex(v)
	}
	for _, e := range cp.HEdges {
		_, _ = st.h.AddEdge(e.From, e.To, e.Weight)
	}
	// newState built st.witness against the pre-resume H; rebuild it
	// against the checkpoint's rebuilt H now that st.h has been replaced.
	st.witness = dijkstra.NewWitnessSearcher(st.h, st.coords, st.idOf)

	st.hop = cp.Hop
	st.level = cp.Level
	st.contracted = cp.Contracted
	st.rank = cp.Rank
	st.nextRank = cp.NextRank
	st.upEdges = cp.UpEdges

	remaining := len(cp.HVertices)

	updateNodes := append([]string(nil), cp.HVertices...)
	heap := newImportanceHeap(st, updateNodes)

	lastCheckpoint := time.Now()
	for remaining > nodeFloor {
		st.refreshImportance(heap, updateNodes)

		selected := st.selectIndependentSet(heap)
		if len(selected) == 0 {
			selected = []string{updateNodes[0]}
		}

		touched := st.contractSet(selected)
		remaining -= len(selected)
		updateNodes = touched

		if checkpointPath != "" && checkpointEvery > 0 && time.Since(lastCheckpoint) >= checkpointEvery {
			_ = st.save(checkpointPath, g)
			lastCheckpoint = time.Now()
		}
	}

	if checkpointPath != "" {
		_ = st.save(checkpointPath, g)
	}

	st.finalizeCore()

	return st.buildGraph(g), nil
}
