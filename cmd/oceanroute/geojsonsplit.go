package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/seacharts/oceanroute/geo"
)

// ringFileSuffixes names the four GeoJSON files a prefix splits into,
// in descending-rank order (spec.md §6): the ten largest rings
// ("continents"), the next 990 ("big_islands"), the next 19000
// ("islands"), and everything else ("small_islands"). The split lets
// `import` and `generate` read the bulk of the data (small_islands) in
// parallel with the handful of huge continent rings.
var ringFileSuffixes = []string{"continents", "big_islands", "islands", "small_islands"}

const (
	continentsCount = 10
	bigIslandsCount = 990
	islandsCount    = 19000
)

type multiLineString struct {
	Type        string        `json:"type"`
	Coordinates [][][2]float64 `json:"coordinates"`
}

// writeGeoJSONSplit ranks rings by vertex count descending and writes
// them to "<prefix>_{continents,big_islands,islands,small_islands}.json"
// under dir, each a MultiLineString FeatureCollection-less GeoJSON
// geometry (spec.md §6).
func writeGeoJSONSplit(dir, prefix string, rings [][]geo.Coordinate) error {
	ranked := append([][]geo.Coordinate(nil), rings...)
	sort.SliceStable(ranked, func(i, j int) bool { return len(ranked[i]) > len(ranked[j]) })

	buckets := splitByRank(ranked)

	var g errgroup.Group
	for i, bucket := range buckets {
		i, bucket := i, bucket
		g.Go(func() error {
			return writeRingFile(filepath.Join(dir, fmt.Sprintf("%s_%s.json", prefix, ringFileSuffixes[i])), bucket)
		})
	}

	return g.Wait()
}

func splitByRank(ranked [][]geo.Coordinate) [4][][]geo.Coordinate {
	var buckets [4][][]geo.Coordinate
	bounds := [4]int{continentsCount, continentsCount + bigIslandsCount, continentsCount + bigIslandsCount + islandsCount, len(ranked)}

	start := 0
	for i, bound := range bounds {
		end := bound
		if end > len(ranked) {
			end = len(ranked)
		}
		if start < end {
			buckets[i] = ranked[start:end]
		}
		start = end
	}

	return buckets
}

func writeRingFile(path string, rings [][]geo.Coordinate) error {
	mls := multiLineString{Type: "MultiLineString"}
	for _, ring := range rings {
		coords := make([][2]float64, len(ring))
		for i, c := range ring {
			coords[i] = [2]float64{float64(c.Lon), float64(c.Lat)}
		}
		mls.Coordinates = append(mls.Coordinates, coords)
	}

	data, err := json.Marshal(mls)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// readGeoJSONSplit reads back the four files writeGeoJSONSplit produced
// and concatenates every ring, in parallel across files via errgroup.
func readGeoJSONSplit(dir, prefix string) ([][]geo.Coordinate, error) {
	all := make([][][]geo.Coordinate, len(ringFileSuffixes))

	var g errgroup.Group
	for i, suffix := range ringFileSuffixes {
		i, suffix := i, suffix
		g.Go(func() error {
			path := filepath.Join(dir, fmt.Sprintf("%s_%s.json", prefix, suffix))
			data, err := os.ReadFile(path)
			if os.IsNotExist(err) {
				return nil
			}
			if err != nil {
				return err
			}

			var mls multiLineString
			if err := json.Unmarshal(data, &mls); err != nil {
				return fmt.Errorf("geojsonsplit: parsing %s: %w", path, err)
			}

			rings := make([][]geo.Coordinate, len(mls.Coordinates))
			for j, lineString := range mls.Coordinates {
				ring := make([]geo.Coordinate, len(lineString))
				for k, c := range lineString {
					ring[k] = geo.Coordinate{Lon: float32(c[0]), Lat: float32(c[1])}
				}
				rings[j] = ring
			}
			all[i] = rings

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var rings [][]geo.Coordinate
	for _, bucket := range all {
		rings = append(rings, bucket...)
	}

	return rings, nil
}
