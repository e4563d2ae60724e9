package core_test

import (
	"errors"
	"testing"

	"github.com/seacharts/oceanroute/core"
	"github.com/stretchr/testify/require"
)

func TestAddVertexIsIdempotent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("0"))
	require.NoError(t, g.AddVertex("0"))
	require.Equal(t, 1, g.VertexCount())
}

func TestAddVertexRejectsEmptyID(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
}

func TestAddEdgeDirectedDoesNotMirror(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, err := g.AddEdge("0", "1", 10)
	require.NoError(t, err)

	require.True(t, g.HasEdge("0", "1"))
	require.False(t, g.HasEdge("1", "0"))

	neighbors, err := g.Neighbors("0")
	require.NoError(t, err)
	require.Len(t, neighbors, 1)
	require.Equal(t, "1", neighbors[0].To)

	neighbors, err = g.Neighbors("1")
	require.NoError(t, err)
	require.Empty(t, neighbors)
}

func TestAddEdgeUndirectedMirrors(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("0", "1", 10)
	require.NoError(t, err)

	require.True(t, g.HasEdge("0", "1"))
	require.True(t, g.HasEdge("1", "0"))

	ids, err := g.NeighborIDs("1")
	require.NoError(t, err)
	require.Equal(t, []string{"0"}, ids)
}

func TestAddEdgeRejectsWeightOnUnweightedGraph(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("0", "1", 5)
	require.ErrorIs(t, err, core.ErrBadWeight)
}

func TestAddEdgeRejectsEmptyEndpoint(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("", "1", 0)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestRemoveEdgeDeletesBothDirectionsWhenUndirected(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	eid, err := g.AddEdge("0", "1", 10)
	require.NoError(t, err)

	require.NoError(t, g.RemoveEdge(eid))
	require.False(t, g.HasEdge("0", "1"))
	require.False(t, g.HasEdge("1", "0"))
}

func TestRemoveEdgeUnknownIDIsError(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.RemoveEdge("e404"), core.ErrEdgeNotFound)
}

func TestRemoveVertexDropsIncidentEdges(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, err := g.AddEdge("0", "1", 5)
	require.NoError(t, err)
	_, err = g.AddEdge("1", "2", 5)
	require.NoError(t, err)

	require.NoError(t, g.RemoveVertex("1"))
	require.False(t, g.HasVertex("1"))
	require.False(t, g.HasEdge("0", "1"))
	require.False(t, g.HasEdge("1", "2"))
	require.Equal(t, 0, g.EdgeCount())
}

func TestRemoveVertexUnknownIDIsError(t *testing.T) {
	g := core.NewGraph()
	require.True(t, errors.Is(g.RemoveVertex("missing"), core.ErrVertexNotFound))
}

func TestVerticesAndEdgesAreSortedAndDeterministic(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, v := range []string{"2", "0", "1"} {
		require.NoError(t, g.AddVertex(v))
	}
	_, err := g.AddEdge("2", "0", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("0", "1", 1)
	require.NoError(t, err)

	require.Equal(t, []string{"0", "1", "2"}, g.Vertices())

	edges := g.Edges()
	require.Len(t, edges, 2)
	require.Less(t, edges[0].ID, edges[1].ID)
}

func TestGetEdgeReturnsReadOnlySnapshot(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	eid, err := g.AddEdge("0", "1", 42)
	require.NoError(t, err)

	e, err := g.GetEdge(eid)
	require.NoError(t, err)
	require.Equal(t, int64(42), e.Weight)

	_, err = g.GetEdge("nope")
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestNeighborsReflectsBidirectionalEdgesBuiltAsReciprocalPairs(t *testing.T) {
	// Mirrors how ch.newState builds H: every undirected road edge is two
	// explicit directed AddEdge calls, not a single mirrored one.
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, err := g.AddEdge("0", "1", 7)
	require.NoError(t, err)
	_, err = g.AddEdge("1", "0", 7)
	require.NoError(t, err)

	ids0, err := g.NeighborIDs("0")
	require.NoError(t, err)
	require.Equal(t, []string{"1"}, ids0)

	ids1, err := g.NeighborIDs("1")
	require.NoError(t, err)
	require.Equal(t, []string{"0"}, ids1)
}
