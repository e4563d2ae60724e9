package csrgraph

import (
	"testing"

	"github.com/seacharts/oceanroute/geo"
	"github.com/stretchr/testify/require"
)

func smallGraph(t *testing.T) *Graph {
	nodes := []Node{
		{ID: 0, Lon: 0, Lat: 0},
		{ID: 1, Lon: 1, Lat: 0},
		{ID: 2, Lon: 2, Lat: 0},
	}
	edges := []Edge{
		{Src: 0, Tgt: 1, Dist: 100},
		{Src: 1, Tgt: 0, Dist: 100},
		{Src: 1, Tgt: 2, Dist: 100},
		{Src: 2, Tgt: 1, Dist: 100},
	}
	g, err := New(nodes, edges)
	require.NoError(t, err)
	return g
}

func TestCSRInvariants(t *testing.T) {
	g := smallGraph(t)
	require.Equal(t, uint32(0), g.Offsets[0])
	require.Equal(t, uint32(len(g.Edges)), g.Offsets[len(g.Nodes)])
	for i := 1; i < len(g.Offsets); i++ {
		require.True(t, g.Offsets[i] >= g.Offsets[i-1])
	}
	for i := range g.Nodes {
		for _, e := range g.Neighbors(uint32(i)) {
			require.Equal(t, uint32(i), e.Src)
		}
	}
}

func TestCSRRejectsUnsortedEdges(t *testing.T) {
	nodes := []Node{{ID: 0}, {ID: 1}}
	edges := []Edge{{Src: 1, Tgt: 0, Dist: 1}, {Src: 0, Tgt: 1, Dist: 1}}
	_, err := New(nodes, edges)
	require.ErrorIs(t, err, ErrGraphInconsistency)
}

func TestCSRRejectsOutOfRangeNode(t *testing.T) {
	nodes := []Node{{ID: 0}}
	edges := []Edge{{Src: 0, Tgt: 5, Dist: 1}}
	_, err := New(nodes, edges)
	require.ErrorIs(t, err, ErrGraphInconsistency)
}

func TestClosestNode(t *testing.T) {
	g := smallGraph(t)
	id := g.ClosestNode(geo.Coordinate{Lon: 1.1, Lat: 0})
	require.Equal(t, uint32(1), id)
}
