package gridgraph

import (
	"testing"

	"github.com/seacharts/oceanroute/geo"
	"github.com/stretchr/testify/require"
)

func TestNewNodeGridBucketsByDegree(t *testing.T) {
	coords := []geo.Coordinate{
		{Lon: 0.4, Lat: 0.4},
		{Lon: 0.6, Lat: 0.6},
		{Lon: -179.9, Lat: -89.9},
	}
	ng := NewNodeGrid(coords)

	x, y := ng.BucketOf(coords[0])
	x2, y2 := ng.BucketOf(coords[1])
	require.Equal(t, x, x2)
	require.Equal(t, y, y2)
	nodes := ng.CellNodes(x, y)
	require.ElementsMatch(t, []uint32{0, 1}, nodes)

	x3, y3 := ng.BucketOf(coords[2])
	require.Equal(t, 0, x3)
	require.Equal(t, 0, y3)
}

func TestCellNodesOutOfBoundsIsNil(t *testing.T) {
	ng := NewNodeGrid(nil)
	require.Nil(t, ng.CellNodes(-1, 0))
	require.Nil(t, ng.CellNodes(0, gridHeight))
}

// A point just east of the antimeridian and one just west of it are
// ~44km apart, but sit at opposite ends of a plain [0, 360) column
// index: bucketOf puts them in columns 359 and 0, which WrapColumn
// makes adjacent (spec.md §4.F step 3).
func TestBucketOfWrapsColumnsAcrossAntimeridian(t *testing.T) {
	ng := NewNodeGrid(nil)

	xEast, yEast := ng.BucketOf(geo.Coordinate{Lon: 179.8, Lat: 10})
	xWest, yWest := ng.BucketOf(geo.Coordinate{Lon: -179.8, Lat: 10})

	require.Equal(t, yEast, yWest)
	require.Equal(t, gridWidth-1, xEast)
	require.Equal(t, 0, xWest)
	require.Equal(t, xWest, ng.WrapColumn(xEast+1))
}

func TestWrapColumnFoldsNegativeAndOverflowingIndices(t *testing.T) {
	ng := NewNodeGrid(nil)
	require.Equal(t, gridWidth-1, ng.WrapColumn(-1))
	require.Equal(t, 0, ng.WrapColumn(gridWidth))
	require.Equal(t, 5, ng.WrapColumn(gridWidth+5))
}
