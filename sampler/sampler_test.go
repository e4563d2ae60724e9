package sampler

import (
	"math/rand"
	"testing"

	"github.com/seacharts/oceanroute/islandindex"
	"github.com/stretchr/testify/require"
)

func TestSpherePointWithinRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		c := SpherePoint(rng)
		require.True(t, c.Lon >= -180 && c.Lon <= 180)
		require.True(t, c.Lat >= -90 && c.Lat <= 90)
	}
}

func TestSpherePointLongitudeRoughlyUniform(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	const n = 20000
	const buckets = 8
	counts := make([]int, buckets)
	for i := 0; i < n; i++ {
		c := SpherePoint(rng)
		b := int((float64(c.Lon) + 180) / (360.0 / buckets))
		if b >= buckets {
			b = buckets - 1
		}
		counts[b]++
	}
	expected := float64(n) / buckets
	var chiSq float64
	for _, c := range counts {
		diff := float64(c) - expected
		chiSq += diff * diff / expected
	}
	// With 7 degrees of freedom the 99.9% critical value is ~24.3; a
	// uniform sampler should comfortably clear this on 20k draws.
	require.Less(t, chiSq, 30.0)
}

func TestWaterPointNeverOnLand(t *testing.T) {
	idx, err := islandindex.NewIndex(nil)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 2000; i++ {
		c := WaterPoint(rng, idx)
		require.False(t, idx.IsLand(c))
	}
}
