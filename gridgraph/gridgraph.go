package gridgraph

import (
	"math"

	"github.com/seacharts/oceanroute/geo"
)

// NewNodeGrid buckets each coordinate into its one-degree lon/lat cell.
// The caller passes coordinates in node-id order; the returned
// NodeGrid's Cells[y*Width+x] holds the ids of every node whose
// coordinate bucketed into cell (x, y).
//
// Complexity: O(N) time and memory.
func NewNodeGrid(coords []geo.Coordinate) *NodeGrid {
	ng := &NodeGrid{
		Width:  gridWidth,
		Height: gridHeight,
		Cells:  make([][]uint32, gridWidth*gridHeight),
	}
	for i, c := range coords {
		x, y := ng.bucketOf(c)
		idx := ng.index(x, y)
		ng.Cells[idx] = append(ng.Cells[idx], uint32(i))
	}

	return ng
}

// bucketOf maps a coordinate to its (x, y) cell. Both axes bucket by
// floor, not truncation: floor(-179.9) is -180, not -179, so a point a
// sliver west of the antimeridian lands in the westmost whole-degree
// cell rather than drifting one cell east of it. Longitude then wraps
// modulo the grid's width (spec.md §4.F step 3), so lon=180 folds into
// column 0. lon=+179.9 and lon=-179.9 bucket into columns 359 and 0,
// the two ends of the grid, which WrapColumn treats as adjacent.
// Latitude has no such wraparound and is clamped instead.
func (ng *NodeGrid) bucketOf(c geo.Coordinate) (x, y int) {
	x = ng.WrapColumn(int(math.Floor(float64(c.Lon))) + gridWidth/2)
	y = int(math.Floor(float64(c.Lat))) + gridHeight/2
	if y < 0 {
		y = 0
	} else if y >= gridHeight {
		y = gridHeight - 1
	}

	return x, y
}

// BucketOf is the exported form of bucketOf, used by graphgen to find
// which cell a query coordinate falls in.
func (ng *NodeGrid) BucketOf(c geo.Coordinate) (x, y int) {
	return ng.bucketOf(c)
}

// WrapColumn folds an arbitrary column index into [0, Width) modulo the
// grid's width, so a ring expansion that overshoots one edge of the
// grid lands on the columns adjacent to it across the antimeridian
// instead of being clipped away.
func (ng *NodeGrid) WrapColumn(x int) int {
	x %= ng.Width
	if x < 0 {
		x += ng.Width
	}

	return x
}

// InBounds reports whether (x, y) lies within the grid. x is checked
// as given (not wrapped); callers that expect column wraparound should
// wrap x via WrapColumn first.
func (ng *NodeGrid) InBounds(x, y int) bool {
	return x >= 0 && x < ng.Width && y >= 0 && y < ng.Height
}

// CellNodes returns the node indices bucketed at (x, y), or nil if (x,
// y) is out of bounds or empty.
func (ng *NodeGrid) CellNodes(x, y int) []uint32 {
	if !ng.InBounds(x, y) {
		return nil
	}

	return ng.Cells[ng.index(x, y)]
}

// index maps (x, y) to a row-major index: y*Width + x.
func (ng *NodeGrid) index(x, y int) int {
	return y*ng.Width + x
}
