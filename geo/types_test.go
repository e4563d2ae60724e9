package geo

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHaversineZeroForEqualPoints(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		c := Coordinate{
			Lon: float32(rng.Float64()*360 - 180),
			Lat: float32(rng.Float64()*180 - 90),
		}
		d := HaversineMeters(c, c)
		require.InDelta(t, 0, d, 1e-6)
	}
}

func TestHaversineSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 10000; i++ {
		a := Coordinate{Lon: float32(rng.Float64()*360 - 180), Lat: float32(rng.Float64()*180 - 90)}
		b := Coordinate{Lon: float32(rng.Float64()*360 - 180), Lat: float32(rng.Float64()*180 - 90)}
		require.Equal(t, HaversineMeters(a, b), HaversineMeters(b, a))
	}
}

func TestHaversineKnownDistance(t *testing.T) {
	// Equator quarter-turn: (0,0) to (90,0) ~ quarter of Earth's circumference.
	a := Coordinate{Lon: 0, Lat: 0}
	b := Coordinate{Lon: 90, Lat: 0}
	d := HaversineMeters(a, b)
	expected := math.Pi / 2 * EarthRadiusMeters
	require.InDelta(t, expected, d, 1.0)
}

func TestEdgeWeightMetersCeils(t *testing.T) {
	a := Coordinate{Lon: 0, Lat: 0}
	b := Coordinate{Lon: 0.0001, Lat: 0}
	w := EdgeWeightMeters(a, b)
	require.True(t, float64(w) >= HaversineMeters(a, b))
	require.True(t, float64(w) < HaversineMeters(a, b)+1.0)
}
