package islandindex

import "github.com/seacharts/oceanroute/geo"

// IsLand reports whether (lon, lat) lies on land. Cost is O(1) in the
// common case (a water or pure-land grid cell); O(P) in the worst case
// (a giant polygon, query inside its touched cells), where P is the
// number of polygon edges actually visited.
//
// Boundary queries resolve deterministically by the strict comparison
// senses used throughout (>, not >=): a point exactly on a coastline
// edge is classified consistently, just not guaranteed to match either
// "obvious" side. Callers sampling synthetic points should avoid that
// exact locus (see sampler).
func (idx *Index) IsLand(c geo.Coordinate) bool {
	if c.Lat < geo.MostSouthernWaterLat {
		return true
	}

	row, col := cellOf(c)
	cell := idx.grid[row][col]

	switch cell.state {
	case cellWater:
		return false
	case cellLand:
		return true
	default: // cellIslands
		for _, isl := range cell.islands {
			if pointInPolygon(c, isl) {
				return true
			}
		}
		return false
	}
}

// pointInPolygon ray-casts a fixed-longitude ray from c toward the north
// pole and counts coastline crossings; an odd count means c is inside
// the polygon (spec.md §4.D).
func pointInPolygon(c geo.Coordinate, isl *Island) bool {
	bb := isl.BoundingBox
	if !(c.Lon > bb[0][0] && c.Lon < bb[0][1] && c.Lat > bb[1][0] && c.Lat < bb[1][1]) {
		return false
	}

	ring := isl.Coastline
	inside := false

	if isl.lonBuckets != nil {
		bucket := int((c.Lon - bb[0][0]) / isl.lonBucketWidth)
		bucket = clampInt(bucket, 0, len(isl.lonBuckets)-1)

		lastPointI := -1
		for _, pointI := range isl.lonBuckets[bucket] {
			// Leading edge (pointI-1, pointI), unless already covered
			// as the trailing edge of the previous bucket vertex.
			if pointI != lastPointI+1 && pointI > 0 {
				if crosses(ring[pointI-1], ring[pointI], c) {
					inside = !inside
				}
			}
			// Trailing edge (pointI, pointI+1), unless pointI is the
			// ring's closing vertex.
			if pointI < len(ring)-1 {
				if crosses(ring[pointI], ring[pointI+1], c) {
					inside = !inside
				}
			}
			lastPointI = pointI
		}
	} else {
		for i := 1; i < len(ring); i++ {
			if crosses(ring[i-1], ring[i], c) {
				inside = !inside
			}
		}
	}

	return inside
}

// crosses reports whether the edge (a,b) is crossed by the ray from c
// going due north (increasing latitude at fixed longitude).
func crosses(a, b, c geo.Coordinate) bool {
	aEast := a.Lon > c.Lon
	bEast := b.Lon > c.Lon
	if aEast == bEast {
		return false // edge cannot straddle c's longitude
	}

	if a.Lat > c.Lat && b.Lat > c.Lat {
		return true // both endpoints north of c: a straddling edge always crosses
	}
	if a.Lat > c.Lat || b.Lat > c.Lat {
		slope := float64(c.Lat-a.Lat)*float64(b.Lon-a.Lon) - float64(b.Lat-a.Lat)*float64(c.Lon-a.Lon)
		negSlope := slope < 0
		bWest := b.Lon < a.Lon
		if negSlope != bWest {
			return true
		}
	}

	return false
}
