// Package sampler draws uniformly random points on the sphere and
// rejects land, producing water coordinates for the graph builder
// (spec.md §4.E).
package sampler

import (
	"math"
	"math/rand"

	"github.com/seacharts/oceanroute/geo"
	"github.com/seacharts/oceanroute/islandindex"
)

// minCubeNorm is the minimum vector length accepted before normalizing,
// avoiding division-by-near-zero for vectors close to the cube's center.
const minCubeNorm = 0.001

// SpherePoint draws a point uniformly distributed on the unit sphere via
// rejection sampling on the cube [-1,1]^3: draw (x,y,z) until its norm
// lies in (minCubeNorm, 1], then normalize and convert to (lon, lat).
//
// Complexity: O(1) expected (a geometric number of rejections, success
// probability = volume of unit ball / volume of cube = pi/6 ~ 0.524).
func SpherePoint(rng *rand.Rand) geo.Coordinate {
	for {
		x := rng.Float64()*2 - 1
		y := rng.Float64()*2 - 1
		z := rng.Float64()*2 - 1
		norm := math.Sqrt(x*x + y*y + z*z)
		if norm <= minCubeNorm || norm > 1 {
			continue
		}

		x, y, z = x/norm, y/norm, z/norm
		lat := math.Asin(z) * 180 / math.Pi
		lon := math.Atan2(y, x) * 180 / math.Pi

		return geo.Coordinate{Lon: float32(lon), Lat: float32(lat)}
	}
}

// WaterPoint draws sphere points and rejects land (via idx.IsLand) until
// one lands in water. Expected cost is O(1) per accepted point: roughly
// 71% of Earth's surface is water, so acceptance dominates.
func WaterPoint(rng *rand.Rand, idx *islandindex.Index) geo.Coordinate {
	for {
		c := SpherePoint(rng)
		if !idx.IsLand(c) {
			return c
		}
	}
}
