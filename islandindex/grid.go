package islandindex

import "github.com/seacharts/oceanroute/geo"

// cellOf maps a coordinate to its (row, column) in the nonuniform sphere
// grid. Row 0 is the north pole band, the last row is the south pole
// band. Column 0 is the easternmost cell in a row (grid order runs from
// high coordinate values to low, matching GridDivisions' ordering).
//
// A tiny epsilon keeps queries at the exact +/-180/+/-90 boundary from
// indexing out of bounds (spec.md's ErrCellIndexOutOfBounds failure
// mode is avoided defensively here rather than surfaced as an error).
func cellOf(c geo.Coordinate) (row, col int) {
	lat := float64(c.Lat)
	lon := float64(c.Lon)

	row = int((89.999 - lat) * gridRows / 180.0)
	row = clampInt(row, 0, gridRows-1)

	divisions := GridDivisions[row]
	col = int((179.999 - lon) * float64(divisions) / 360.0)
	col = clampInt(col, 0, divisions-1)

	return row, col
}

// cellCenter returns the (lon, lat) of the geometric center of grid cell
// (row, col), used when ray-casting a cell to decide if its center lies
// inside a touching island's polygon.
func cellCenter(row, col int) geo.Coordinate {
	divisions := GridDivisions[row]
	lon := 179.999 - (float64(col)+0.5)*360.0/float64(divisions)
	lat := 89.999 - (float64(row)+0.5)*gridRowHeightDeg

	return geo.Coordinate{Lon: float32(lon), Lat: float32(lat)}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
