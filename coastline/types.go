// Package coastline stitches a multiset of open OSM coastline segments
// (polylines of vertex ids) into closed rings (continents, islands).
//
// It is the first stage of the pipeline: the PBF ingest (out of scope,
// per spec.md's explicit exclusion) hands this package raw ways as
// sequences of vertex ids; this package's job is purely topological —
// joining polylines at shared endpoints — and knows nothing about
// coordinates.
//
// Errors:
//
//	ErrOpenCoastline - a segment could not be absorbed into any closed
//	                   ring; the input way set was malformed (dangling
//	                   end, missing complement, or a non-simple loop).
package coastline

import "errors"

// ErrOpenCoastline indicates linking finished with unresolved open
// polylines: the by_start/by_end dictionaries were not both empty.
var ErrOpenCoastline = errors.New("coastline: input could not be linked into closed rings")

// Polyline is a sequence of vertex ids identifying an open or closed
// segment of coastline. A polyline is closed when len(P) > 1 and
// P[0] == P[len(P)-1].
type Polyline []uint64

func (p Polyline) closed() bool {
	return len(p) > 1 && p[0] == p[len(p)-1]
}

func (p Polyline) first() uint64 { return p[0] }
func (p Polyline) last() uint64  { return p[len(p)-1] }
