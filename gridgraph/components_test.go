package gridgraph

import (
	"testing"

	"github.com/seacharts/oceanroute/csrgraph"
	"github.com/stretchr/testify/require"
)

func TestComponentsSingleComponent(t *testing.T) {
	nodes := []csrgraph.Node{{ID: 0}, {ID: 1}, {ID: 2}}
	edges := []csrgraph.Edge{
		{Src: 0, Tgt: 1, Dist: 1}, {Src: 1, Tgt: 0, Dist: 1},
		{Src: 1, Tgt: 2, Dist: 1}, {Src: 2, Tgt: 1, Dist: 1},
	}
	g, err := csrgraph.New(nodes, edges)
	require.NoError(t, err)

	comps, err := Components(g)
	require.NoError(t, err)
	require.Len(t, comps, 1)
	require.Len(t, comps[0], 3)
}

func TestComponentsTwoSeparateSeas(t *testing.T) {
	nodes := []csrgraph.Node{{ID: 0}, {ID: 1}, {ID: 2}, {ID: 3}}
	edges := []csrgraph.Edge{
		{Src: 0, Tgt: 1, Dist: 1}, {Src: 1, Tgt: 0, Dist: 1},
		{Src: 2, Tgt: 3, Dist: 1}, {Src: 3, Tgt: 2, Dist: 1},
	}
	g, err := csrgraph.New(nodes, edges)
	require.NoError(t, err)

	comps, err := Components(g)
	require.NoError(t, err)
	require.Len(t, comps, 2)
}

func TestComponentsEmptyGraph(t *testing.T) {
	g, err := csrgraph.New(nil, nil)
	require.NoError(t, err)
	_, err = Components(g)
	require.ErrorIs(t, err, ErrEmptyGraph)
}
