// Package graphgen builds the ocean routing graph: it samples water
// nodes, buckets them into a lon/lat grid, and connects each node to
// its nearest neighbor in each compass quadrant within a cutoff
// distance (spec.md §4.F). The search is single-threaded: it mutates a
// shared edge-dedup map as it walks the sorted node list, and spec.md
// §5 scopes graph generation as sequential for that reason.
package graphgen

import (
	"errors"
	"math/rand"
	"sort"

	"github.com/seacharts/oceanroute/csrgraph"
	"github.com/seacharts/oceanroute/geo"
	"github.com/seacharts/oceanroute/gridgraph"
	"github.com/seacharts/oceanroute/islandindex"
	"github.com/seacharts/oceanroute/sampler"
)

// ErrNoWaterNodes indicates that no water point was sampled because
// cfg.NodeCount is not positive. The sampler itself retries until it
// finds water, so an all-land index makes Generate loop, not fail.
var ErrNoWaterNodes = errors.New("graphgen: sampled zero water nodes")

// Config controls graph generation.
type Config struct {
	// NodeCount is how many water points to sample.
	NodeCount int
	// CutoffKM bounds how far a quadrant search looks for a neighbor.
	CutoffKM float64
	// Seed drives the deterministic sphere sampler.
	Seed int64
}

// quadrant identifies one of the four compass quadrants relative to a
// node: north-east, south-east, south-west, north-west.
type quadrant int

const (
	quadNE quadrant = iota
	quadSE
	quadSW
	quadNW
)

// edgeKey identifies one directed edge for deduplication.
type edgeKey struct{ src, tgt uint32 }

// Generate samples cfg.NodeCount water points, assigns them row-major
// ids after sorting by (lat, lon) for cache-friendly quadrant search,
// connects each node to its nearest neighbor in each quadrant within
// cfg.CutoffKM, dedups the resulting edges, and emits a sorted CSR
// graph.
func Generate(cfg Config, idx *islandindex.Index) (*csrgraph.Graph, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	coords := make([]geo.Coordinate, 0, cfg.NodeCount)
	for i := 0; i < cfg.NodeCount; i++ {
		coords = append(coords, sampler.WaterPoint(rng, idx))
	}
	if len(coords) == 0 {
		return nil, ErrNoWaterNodes
	}

	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Lat != coords[j].Lat {
			return coords[i].Lat < coords[j].Lat
		}

		return coords[i].Lon < coords[j].Lon
	})

	grid := gridgraph.NewNodeGrid(coords)

	dists := make(map[edgeKey]uint32)
	for i, c := range coords {
		for q := quadNE; q <= quadNW; q++ {
			j, ok := nearestInQuadrant(grid, coords, uint32(i), c, q, cfg.CutoffKM)
			if !ok {
				continue
			}
			d := geo.EdgeWeightMeters(coords[i], coords[j])
			dists[edgeKey{uint32(i), j}] = d
			dists[edgeKey{j, uint32(i)}] = d
		}
	}

	nodes := make([]csrgraph.Node, len(coords))
	for i, c := range coords {
		nodes[i] = csrgraph.Node{ID: uint32(i), Lon: c.Lon, Lat: c.Lat}
	}

	edges := make([]csrgraph.Edge, 0, len(dists))
	for k, d := range dists {
		edges = append(edges, csrgraph.Edge{Src: k.src, Tgt: k.tgt, Dist: d})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Src != edges[j].Src {
			return edges[i].Src < edges[j].Src
		}

		return edges[i].Tgt < edges[j].Tgt
	})

	return csrgraph.New(nodes, edges)
}
