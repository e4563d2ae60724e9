package graphgen

import (
	"github.com/seacharts/oceanroute/geo"
	"github.com/seacharts/oceanroute/gridgraph"
)

// maxRingExpansion bounds how many grid rings outward the quadrant
// search will walk before giving up. At one-degree cells this covers
// well beyond any realistic CutoffKM before the search aborts.
const maxRingExpansion = 30

// nearestInQuadrant finds the closest node to (self, c) lying strictly
// in quadrant q, within cutoffKM, by expanding a ring of grid cells
// around c's bucket. Once a candidate is found, expansion stops when
// the ring's closest possible distance exceeds the running best;
// without one, it continues out to maxRingExpansion rings.
//
// Complexity: O(1) amortized for a roughly-uniform point distribution,
// since the ring search terminates within a small, bounded number of
// cells once any candidate is found.
func nearestInQuadrant(
	grid *gridgraph.NodeGrid,
	coords []geo.Coordinate,
	self uint32,
	c geo.Coordinate,
	q quadrant,
	cutoffKM float64,
) (uint32, bool) {
	cx, cy := grid.BucketOf(c)
	cutoffM := cutoffKM * 1000

	best := uint32(0)
	bestDist := cutoffM
	found := false

	for ring := 0; ring <= maxRingExpansion; ring++ {
		// Once we have a candidate, stop expanding once the ring's
		// nearest possible point (ring-1 degrees away, roughly) can no
		// longer beat bestDist.
		if found && float64(ring-1)*110000 > bestDist {
			break
		}

		for _, cell := range ringCells(cx, cy, ring, grid) {
			for _, idx := range grid.CellNodes(cell[0], cell[1]) {
				if idx == self {
					continue
				}
				other := coords[idx]
				if quadrantOf(c, other) != q {
					continue
				}
				d := geo.HaversineMeters(c, other)
				if d <= bestDist {
					bestDist = d
					best = idx
					found = true
				}
			}
		}

		if ring == maxRingExpansion && !found {
			break
		}
	}

	return best, found
}

// quadrantOf classifies other relative to origin: NE (lon>=, lat>=), SE
// (lon>=, lat<), SW (lon<, lat<), NW (lon<, lat>=). Ties on the
// boundary resolve to the "greater-or-equal" side consistently so every
// other point falls in exactly one quadrant. "East" is decided by the
// signed shortest angular step from origin to other (spec.md §4.F step
// 3's antimeridian wraparound), not a raw longitude comparison: a point
// at lon=-179.9 is east of one at lon=+179.9, not west of it.
func quadrantOf(origin, other geo.Coordinate) quadrant {
	east := lonDelta(origin.Lon, other.Lon) >= 0
	north := other.Lat >= origin.Lat
	switch {
	case east && north:
		return quadNE
	case east && !north:
		return quadSE
	case !east && !north:
		return quadSW
	default:
		return quadNW
	}
}

// lonDelta returns the signed shortest angular step in degrees from
// origin to other, wrapped to (-180, 180], so a step across the
// antimeridian reports its true short-way sign instead of the raw
// (possibly ~360-degree) difference.
func lonDelta(origin, other float32) float32 {
	d := other - origin
	for d > 180 {
		d -= 360
	}
	for d <= -180 {
		d += 360
	}

	return d
}

// ringCells returns the grid cells forming the square ring at Chebyshev
// distance `ring` from (cx, cy). ring==0 returns just the center cell.
// Column indices wrap modulo the grid's width (spec.md §4.F step 3), so
// a ring overshooting column 0 or Width-1 picks up the columns across
// the antimeridian seam instead of being clipped away; rows are clipped
// at the poles, since latitude does not wrap.
func ringCells(cx, cy, ring int, grid *gridgraph.NodeGrid) [][2]int {
	if ring == 0 {
		return [][2]int{{grid.WrapColumn(cx), cy}}
	}

	var cells [][2]int
	for x := cx - ring; x <= cx+ring; x++ {
		cells = append(cells, [2]int{x, cy - ring}, [2]int{x, cy + ring})
	}
	for y := cy - ring + 1; y <= cy+ring-1; y++ {
		cells = append(cells, [2]int{cx - ring, y}, [2]int{cx + ring, y})
	}

	out := cells[:0]
	for _, cell := range cells {
		y := cell[1]
		if y < 0 || y >= grid.Height {
			continue
		}
		out = append(out, [2]int{grid.WrapColumn(cell[0]), y})
	}

	return out
}
