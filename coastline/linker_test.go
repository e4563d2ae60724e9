package coastline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinkSimpleSquare(t *testing.T) {
	// Four edges of a square, given out of order.
	segs := []Polyline{
		{3, 4}, {1, 2}, {4, 1}, {2, 3},
	}
	rings, err := Link(segs)
	require.NoError(t, err)
	require.Len(t, rings, 1)
	ring := rings[0]
	require.True(t, ring.closed())
	require.ElementsMatch(t, []uint64{1, 2, 3, 4}, dedupRing(ring))
}

func TestLinkAlreadyClosed(t *testing.T) {
	segs := []Polyline{{1, 2, 3, 1}}
	rings, err := Link(segs)
	require.NoError(t, err)
	require.Len(t, rings, 1)
}

func TestLinkTwoIndependentRings(t *testing.T) {
	segs := []Polyline{
		{1, 2}, {2, 1}, // ring A, two halves
		{10, 11}, {11, 12}, {12, 10}, // ring B, three segments
	}
	rings, err := Link(segs)
	require.NoError(t, err)
	require.Len(t, rings, 2)
}

func TestLinkOpenCoastlineFails(t *testing.T) {
	segs := []Polyline{{1, 2}, {2, 3}} // dangling at 1 and 3
	_, err := Link(segs)
	require.ErrorIs(t, err, ErrOpenCoastline)
}

func TestLinkPreservesVertexMultiset(t *testing.T) {
	// A perfectly pairable set: the concatenated vertex multiset (minus
	// deduplicated joints) equals the input's.
	segs := []Polyline{
		{1, 2, 3}, {3, 4}, {4, 1},
	}
	rings, err := Link(segs)
	require.NoError(t, err)
	require.Len(t, rings, 1)
	require.Equal(t, []uint64{1, 2, 3, 4, 1}, []uint64(rings[0]))
}

func dedupRing(p Polyline) []uint64 {
	return []uint64(p[:len(p)-1])
}
