package islandindex

import "github.com/seacharts/oceanroute/geo"

const minVerticesForLonBuckets = 1000
const minLonBucketWidth float32 = 0.2
const lonBucketSpanFactor = 10.0

// NewIsland builds an Island from a closed ring (coastline[0] ==
// coastline[len-1]) and precomputes its bounding box, center,
// grid-touch set, and (for large polygons) its longitude-bucket
// acceleration structure.
//
// Complexity: O(len(coastline)).
func NewIsland(ring []geo.Coordinate) (*Island, error) {
	if len(ring) < 4 {
		return nil, ErrEmptyRing
	}
	if ring[0] != ring[len(ring)-1] {
		return nil, ErrNotClosed
	}

	isl := &Island{
		Coastline:   append([]geo.Coordinate(nil), ring...),
		BoundingBox: [2][2]float32{{180, -180}, {90, -90}},
	}

	var maxLonJump float32
	for i, c := range ring {
		if c.Lon < isl.BoundingBox[0][0] {
			isl.BoundingBox[0][0] = c.Lon
		}
		if c.Lon > isl.BoundingBox[0][1] {
			isl.BoundingBox[0][1] = c.Lon
		}
		if c.Lat < isl.BoundingBox[1][0] {
			isl.BoundingBox[1][0] = c.Lat
		}
		if c.Lat > isl.BoundingBox[1][1] {
			isl.BoundingBox[1][1] = c.Lat
		}

		if i < len(ring)-1 && c.Lat > geo.MostSouthernWaterLat {
			jump := ring[i+1].Lon - c.Lon
			if jump < 0 {
				jump = -jump
			}
			if jump > maxLonJump {
				maxLonJump = jump
			}
		}

		row, col := cellOf(c)
		if isl.touchedCells[row] == nil {
			isl.touchedCells[row] = make(map[int]struct{})
		}
		isl.touchedCells[row][col] = struct{}{}
	}

	isl.Center = geo.Coordinate{
		Lon: (isl.BoundingBox[0][0] + isl.BoundingBox[0][1]) / 2,
		Lat: (isl.BoundingBox[1][0] + isl.BoundingBox[1][1]) / 2,
	}

	bucketWidth := maxLonJump
	if bucketWidth < minLonBucketWidth {
		bucketWidth = minLonBucketWidth
	}
	lonSpan := isl.BoundingBox[0][1] - isl.BoundingBox[0][0]

	if len(ring) > minVerticesForLonBuckets && lonSpan > lonBucketSpanFactor*bucketWidth {
		isl.lonBucketWidth = bucketWidth
		nBuckets := int(float32(lonSpan)/bucketWidth) + 1
		isl.lonBuckets = make([][]int, nBuckets)
		for i, c := range isl.Coastline {
			b := int((c.Lon - isl.BoundingBox[0][0]) / bucketWidth)
			b = clampInt(b, 0, nBuckets-1)
			isl.lonBuckets[b] = append(isl.lonBuckets[b], i)
		}
	}

	return isl, nil
}
