package dijkstra_test

import (
	"math"
	"testing"

	"github.com/seacharts/oceanroute/core"
	"github.com/seacharts/oceanroute/dijkstra"
	"github.com/seacharts/oceanroute/geo"
)

// triangleGraph mirrors how ch builds its working graph H: a directed
// core.Graph with reciprocal edges standing in for an undirected link,
// vertex IDs "0", "1", "2" standing in for node indices, and an idOf
// map a WitnessSearcher needs to translate a vertex ID to its
// coordinate. All three nodes share one coordinate, so the A*
// heuristic contributes zero and the search reduces to plain Dijkstra
// -- these tests exercise witness-distance/bound/exclusion behavior,
// not the heuristic itself.
func triangleGraph(t *testing.T) *dijkstra.WitnessSearcher {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, v := range []string{"0", "1", "2"} {
		if err := g.AddVertex(v); err != nil {
			t.Fatal(err)
		}
	}
	type edge struct {
		from, to string
		weight   int64
	}
	edges := []edge{
		{"0", "1", 5}, {"1", "0", 5},
		{"1", "2", 5}, {"2", "1", 5},
		{"0", "2", 20}, {"2", "0", 20},
	}
	for _, e := range edges {
		if _, err := g.AddEdge(e.from, e.to, e.weight); err != nil {
			t.Fatal(err)
		}
	}

	coords := []geo.Coordinate{{Lon: 0, Lat: 0}, {Lon: 0, Lat: 0}, {Lon: 0, Lat: 0}}
	idOf := map[string]uint32{"0": 0, "1": 1, "2": 2}

	return dijkstra.NewWitnessSearcher(g, coords, idOf)
}

func TestWitnessDistanceFindsDetourAroundExcludedNode(t *testing.T) {
	ws := triangleGraph(t)
	d := ws.Distance("0", "2", "1", 100, 10)
	if d != 20 {
		t.Fatalf("expected 20 (direct edge, detour via node 1 excluded), got %d", d)
	}
}

func TestWitnessDistanceRespectsBound(t *testing.T) {
	ws := triangleGraph(t)
	d := ws.Distance("0", "2", "1", 5, 10)
	if d != math.MaxInt64 {
		t.Fatalf("expected no witness within bound 5, got %d", d)
	}
}

func TestWitnessDistanceUnreachableWithoutExcludedNode(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, v := range []string{"0", "1"} {
		if err := g.AddVertex(v); err != nil {
			t.Fatal(err)
		}
	}
	coords := []geo.Coordinate{{Lon: 0, Lat: 0}, {Lon: 0, Lat: 0}}
	idOf := map[string]uint32{"0": 0, "1": 1}
	ws := dijkstra.NewWitnessSearcher(g, coords, idOf)

	d := ws.Distance("0", "1", "", 1000, 10)
	if d != math.MaxInt64 {
		t.Fatalf("expected unreachable, got %d", d)
	}
}

func TestWitnessDistanceReusesSearcherAcrossCalls(t *testing.T) {
	ws := triangleGraph(t)

	first := ws.Distance("0", "2", "1", 100, 10)
	if first != 20 {
		t.Fatalf("first call: expected 20, got %d", first)
	}

	// A second call with a different excluded node must not see stale
	// state (distances, generation) left by the first.
	second := ws.Distance("0", "1", "2", 100, 10)
	if second != 5 {
		t.Fatalf("second call: expected 5, got %d", second)
	}
}
