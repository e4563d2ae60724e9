package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seacharts/oceanroute/geo"
)

func square(offset float32) []geo.Coordinate {
	return []geo.Coordinate{
		{Lon: offset, Lat: offset},
		{Lon: offset + 1, Lat: offset},
		{Lon: offset + 1, Lat: offset + 1},
		{Lon: offset, Lat: offset},
	}
}

func TestGeoJSONSplitRoundTrip(t *testing.T) {
	dir := t.TempDir()
	rings := [][]geo.Coordinate{square(0), square(10), square(20)}

	require.NoError(t, writeGeoJSONSplit(dir, "test", rings))

	got, err := readGeoJSONSplit(dir, "test")
	require.NoError(t, err)
	require.Len(t, got, len(rings))
}

func TestSplitByRankPutsSmallSetIntoContinents(t *testing.T) {
	ranked := [][]geo.Coordinate{square(0), square(1), square(2)}
	buckets := splitByRank(ranked)

	require.Len(t, buckets[0], 3)
	require.Empty(t, buckets[1])
	require.Empty(t, buckets[2])
	require.Empty(t, buckets[3])
}
