// Package islandindex turns a set of closed coastline rings into a
// queryable land/water classifier fast enough to call billions of times
// (spec.md §4.C, §4.D).
//
// It builds one Island per ring, tiles the sphere into a fixed,
// nonuniform 36-latitude-band grid (1675 cells total, sized so cells
// stay roughly equal-area), classifies every cell as water, land, or
// "touched by these islands", and answers IsLand via a grid lookup that
// only falls back to a full ray-cast for the touched cells.
package islandindex

import (
	"errors"

	"github.com/seacharts/oceanroute/geo"
)

// ErrEmptyRing indicates a ring with fewer than 4 coordinates (not
// enough to form a closed polygon with interior) was passed to NewIsland.
var ErrEmptyRing = errors.New("islandindex: ring must have at least 4 coordinates")

// ErrNotClosed indicates the ring's first and last coordinates differ.
var ErrNotClosed = errors.New("islandindex: ring is not closed (first != last)")

// GridDivisions is the number of cells per latitude band, ordered north
// to south (36 bands, 5 degrees tall each). Sum = 1675.
//
// This is a fixed nonuniform sphere tiling calibrated so that cell
// widths stay roughly equal-area near the poles as well as the equator;
// treat it as a constant, not a tunable.
var GridDivisions = [36]int{
	3, 9, 16, 22, 28, 33, 39, 44, 49, 53, 57, 61, 64, 67, 69, 70,
	71, 72, 72, 71, 70, 69, 67, 64, 61, 57, 53, 49, 44, 39, 33, 28,
	22, 16, 9, 3,
}

const gridRows = 36
const gridRowHeightDeg = 180.0 / gridRows

// boundaryEpsilon keeps grid-cell lookups away from the exact +/-180 or
// +/-90 boundary, where naive floor() division would index out of
// bounds (spec.md's CellIndexOutOfBounds failure mode).
const boundaryEpsilon = 0.001

// cellState tags what a grid cell contains.
type cellState int

const (
	cellWater cellState = iota
	cellLand
	cellIslands
)

// gridCell is one cell of the coarse sphere grid. For cellLand, island
// names the single enclosing polygon (whichever claimed the interior
// first); for cellIslands, islands lists every ring whose coastline
// passes through the cell, each of which must be ray-cast at query time.
type gridCell struct {
	state   cellState
	island  *Island
	islands []*Island
}

// Island is one closed coastline ring (a continent or an island) plus
// the acceleration structures built once at index-construction time.
type Island struct {
	// Coastline is the ordered ring, first == last.
	Coastline []geo.Coordinate

	// BoundingBox is [[minLon,maxLon],[minLat,maxLat]].
	BoundingBox [2][2]float32

	// Center is the midpoint of BoundingBox (debug identity only).
	Center geo.Coordinate

	// lonBucketWidth and lonBuckets accelerate the ray-cast for large
	// polygons: lonBuckets[i] lists coastline vertex indices whose
	// longitude falls in the i-th bucket of width lonBucketWidth,
	// starting at BoundingBox[0][0]. Built only when the polygon has
	// more than 1000 vertices and its longitudinal span exceeds 10x the
	// bucket width; nil otherwise (ray-cast then visits every edge).
	lonBucketWidth float32
	lonBuckets      [][]int

	// touchedCells[row] is the set of grid-column indices in that
	// latitude row that hold at least one of this island's coastline
	// vertices; cells an edge crosses without a vertex are not included.
	touchedCells [gridRows]map[int]struct{}
}

// Index is the finished, immutable classifier: all islands plus the
// sealed grid. Build with NewIndex; once built, cell classification
// never changes (spec.md invariant (ii)).
type Index struct {
	islands []*Island
	grid    [gridRows][]gridCell
}

// Islands returns the islands backing this index, in insertion order.
// Read-only: callers must not mutate the returned slice's elements.
func (idx *Index) Islands() []*Island {
	return idx.islands
}
