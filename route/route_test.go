package route

import (
	"testing"

	"github.com/seacharts/oceanroute/csrgraph"
	"github.com/stretchr/testify/require"
)

// lineGraph builds a 5-node chain 0-1-2-3-4 with unit coordinates spaced
// along the equator, each hop costing 100 in each direction.
func lineGraph(t *testing.T) *csrgraph.Graph {
	nodes := []csrgraph.Node{
		{ID: 0, Lon: 0, Lat: 0},
		{ID: 1, Lon: 1, Lat: 0},
		{ID: 2, Lon: 2, Lat: 0},
		{ID: 3, Lon: 3, Lat: 0},
		{ID: 4, Lon: 4, Lat: 0},
	}
	var edges []csrgraph.Edge
	for i := 0; i < 4; i++ {
		edges = append(edges,
			csrgraph.Edge{Src: uint32(i), Tgt: uint32(i + 1), Dist: 100},
			csrgraph.Edge{Src: uint32(i + 1), Tgt: uint32(i), Dist: 100},
		)
	}
	g, err := csrgraph.New(nodes, edges)
	require.NoError(t, err)

	return g
}

// disconnectedGraph has two components: {0,1} and {2,3}.
func disconnectedGraph(t *testing.T) *csrgraph.Graph {
	nodes := []csrgraph.Node{
		{ID: 0, Lon: 0, Lat: 0},
		{ID: 1, Lon: 1, Lat: 0},
		{ID: 2, Lon: 10, Lat: 0},
		{ID: 3, Lon: 11, Lat: 0},
	}
	edges := []csrgraph.Edge{
		{Src: 0, Tgt: 1, Dist: 50},
		{Src: 1, Tgt: 0, Dist: 50},
		{Src: 2, Tgt: 3, Dist: 50},
		{Src: 3, Tgt: 2, Dist: 50},
	}
	g, err := csrgraph.New(nodes, edges)
	require.NoError(t, err)

	return g
}

func TestDijkstraFindsShortestPath(t *testing.T) {
	g := lineGraph(t)
	r := Dijkstra(g, 0, 4)
	require.Equal(t, uint32(400), r.DistanceM)
	require.Equal(t, []uint32{0, 1, 2, 3, 4}, r.Path)
}

func TestDijkstraUnreachableReturnsNoPath(t *testing.T) {
	g := disconnectedGraph(t)
	r := Dijkstra(g, 0, 2)
	require.Equal(t, uint32(NoPath), r.DistanceM)
	require.Nil(t, r.Path)
}

func TestAStarAgreesWithDijkstra(t *testing.T) {
	g := lineGraph(t)
	d := Dijkstra(g, 0, 4)
	a := AStar(g, 0, 4)
	require.Equal(t, d.DistanceM, a.DistanceM)
	require.Equal(t, d.Path, a.Path)
}

func TestBidirectionalAgreesWithDijkstra(t *testing.T) {
	g := lineGraph(t)
	d := Dijkstra(g, 0, 4)
	b := BidirectionalDijkstra(g, 0, 4)
	require.Equal(t, d.DistanceM, b.DistanceM)
}

func TestBidirectionalSameNode(t *testing.T) {
	g := lineGraph(t)
	r := BidirectionalDijkstra(g, 2, 2)
	require.Equal(t, uint32(0), r.DistanceM)
	require.Equal(t, []uint32{2}, r.Path)
}

func TestBidirectionalUnreachable(t *testing.T) {
	g := disconnectedGraph(t)
	r := BidirectionalDijkstra(g, 0, 3)
	require.Equal(t, uint32(NoPath), r.DistanceM)
}
