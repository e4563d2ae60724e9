package graphgen

import (
	"testing"

	"github.com/seacharts/oceanroute/geo"
	"github.com/seacharts/oceanroute/gridgraph"
	"github.com/seacharts/oceanroute/islandindex"
	"github.com/stretchr/testify/require"
)

func coord(lon, lat float32) geo.Coordinate {
	return geo.Coordinate{Lon: lon, Lat: lat}
}

func TestGenerateProducesValidCSRGraph(t *testing.T) {
	idx, err := islandindex.NewIndex(nil)
	require.NoError(t, err)

	g, err := Generate(Config{NodeCount: 200, CutoffKM: 2000, Seed: 7}, idx)
	require.NoError(t, err)
	require.Len(t, g.Nodes, 200)
	require.NotEmpty(t, g.Edges)

	for _, e := range g.Edges {
		require.Less(t, e.Src, uint32(len(g.Nodes)))
		require.Less(t, e.Tgt, uint32(len(g.Nodes)))
	}
}

func TestGenerateIsDeterministicForFixedSeed(t *testing.T) {
	idx, err := islandindex.NewIndex(nil)
	require.NoError(t, err)

	g1, err := Generate(Config{NodeCount: 100, CutoffKM: 1500, Seed: 42}, idx)
	require.NoError(t, err)
	g2, err := Generate(Config{NodeCount: 100, CutoffKM: 1500, Seed: 42}, idx)
	require.NoError(t, err)

	require.Equal(t, g1.Nodes, g2.Nodes)
	require.Equal(t, g1.Edges, g2.Edges)
}

func TestQuadrantOfClassifiesFourDirections(t *testing.T) {
	origin := coord(0, 0)
	require.Equal(t, quadNE, quadrantOf(origin, coord(1, 1)))
	require.Equal(t, quadSE, quadrantOf(origin, coord(1, -1)))
	require.Equal(t, quadSW, quadrantOf(origin, coord(-1, -1)))
	require.Equal(t, quadNW, quadrantOf(origin, coord(-1, 1)))
}

// A point at lon=-179.9 is a hair east of one at lon=179.9 (the short
// way around, across the antimeridian), not west of it the long way
// around spec.md §4.F step 3's wraparound. A plain lon>=lon comparison
// gets this backwards.
func TestQuadrantOfHandlesAntimeridianWraparound(t *testing.T) {
	origin := coord(179.9, 0)
	other := coord(-179.9, 1)
	require.Equal(t, quadNE, quadrantOf(origin, other))

	origin2 := coord(-179.9, 0)
	other2 := coord(179.9, -1)
	require.Equal(t, quadSW, quadrantOf(origin2, other2))
}

// nearestInQuadrant must find a node a few kilometers away across the
// antimeridian, not report it unreachable just because it lives in a
// far-apart grid column under plain (non-wrapping) indexing.
func TestNearestInQuadrantCrossesAntimeridian(t *testing.T) {
	coords := []geo.Coordinate{
		coord(179.95, 0), // self
		coord(-179.95, 0.05),
	}
	grid := gridgraph.NewNodeGrid(coords)

	got, ok := nearestInQuadrant(grid, coords, 0, coords[0], quadNE, 2000)
	require.True(t, ok)
	require.Equal(t, uint32(1), got)
}
