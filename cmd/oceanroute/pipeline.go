package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/seacharts/oceanroute/ch"
	"github.com/seacharts/oceanroute/coastline"
	"github.com/seacharts/oceanroute/csrgraph"
	"github.com/seacharts/oceanroute/geo"
	"github.com/seacharts/oceanroute/graphgen"
	"github.com/seacharts/oceanroute/internal/config"
	"github.com/seacharts/oceanroute/islandindex"
	"github.com/seacharts/oceanroute/persist"
	"github.com/seacharts/oceanroute/route"
)

// wayset is the intermediate format `import` consumes in place of raw
// OSM PBF parsing: a point table and a list of open ways as sequences
// of point ids. Producing this from a real .osm.pbf file is the
// excluded external collaborator spec.md §1 names; oceanroute's job
// starts once ways exist.
type wayset struct {
	Points map[string][2]float64 `json:"points"`
	Ways   [][]uint64             `json:"ways"`
}

func cmdImport(cfg config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("import: usage: import <path.osm.pbf> [prefix]")
	}
	prefix := "coastline"
	if len(args) >= 2 {
		prefix = args[1]
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	var ws wayset
	if err := json.Unmarshal(data, &ws); err != nil {
		return fmt.Errorf("import: parsing wayset: %w", err)
	}

	polylines := make([]coastline.Polyline, len(ws.Ways))
	for i, way := range ws.Ways {
		polylines[i] = coastline.Polyline(way)
	}

	rings, err := coastline.Link(polylines)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	points := make(map[uint64]geo.Coordinate, len(ws.Points))
	for idStr, lonlat := range ws.Points {
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			log.Warn().Str("id", idStr).Msg("import: skipping malformed point id")
			continue
		}
		points[id] = geo.Coordinate{Lon: float32(lonlat[0]), Lat: float32(lonlat[1])}
	}

	resolved := make([][]geo.Coordinate, 0, len(rings))
	for _, ring := range rings {
		coords := make([]geo.Coordinate, len(ring))
		for i, id := range ring {
			coords[i] = points[id]
		}
		resolved = append(resolved, coords)
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("import: %w", err)
	}

	log.Info().Int("rings", len(resolved)).Str("prefix", prefix).Msg("import: linked coastline")

	return writeGeoJSONSplit(cfg.DataDir, prefix, resolved)
}

func cmdGenerate(cfg config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("generate: usage: generate <out_name> [prefix]")
	}
	outName := args[0]
	prefix := "coastline"
	if len(args) >= 2 {
		prefix = args[1]
	}

	rings, err := readGeoJSONSplit(cfg.DataDir, prefix)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	islands := make([]*islandindex.Island, 0, len(rings))
	for _, ring := range rings {
		isl, err := islandindex.NewIsland(ring)
		if err != nil {
			log.Warn().Err(err).Msg("generate: skipping malformed ring")
			continue
		}
		islands = append(islands, isl)
	}

	idx, err := islandindex.NewIndex(islands)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	log.Info().Int("islands", len(islands)).Msg("generate: built island index")

	g, err := graphgen.Generate(graphgen.Config{
		NodeCount: cfg.NodeCount,
		CutoffKM:  cfg.CutoffKM,
		Seed:      cfg.Seed,
	}, idx)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	log.Info().Int("nodes", len(g.Nodes)).Int("edges", len(g.Edges)).Msg("generate: built navigable graph")

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return err
	}
	if err := persist.SaveBinary(g, filepath.Join(cfg.DataDir, outName+".bin")); err != nil {
		return err
	}

	return persist.SaveText(g, filepath.Join(cfg.DataDir, outName+".fmi"))
}

func cmdCHPrecalc(cfg config.Config, args []string, resume bool) error {
	if len(args) < 1 {
		return fmt.Errorf("ch_precalc: usage: ch_precalc <graph_name> [node_floor]")
	}
	graphName := args[0]
	nodeFloor := cfg.CHNodeFloor
	if len(args) >= 2 {
		if n, err := strconv.Atoi(args[1]); err == nil {
			nodeFloor = n
		}
	}

	g, err := persist.LoadBinary(filepath.Join(cfg.DataDir, graphName+".bin"))
	if err != nil {
		return fmt.Errorf("ch_precalc: %w", err)
	}

	checkpointPath := cfg.CheckpointPath
	checkpointEvery := time.Duration(cfg.CheckpointEveryMin) * time.Minute
	var chg *ch.Graph
	if resume {
		chg, err = ch.ResumePreprocess(g, nodeFloor, checkpointPath, checkpointEvery)
	} else {
		chg, err = ch.Preprocess(g, nodeFloor, checkpointPath, checkpointEvery)
	}
	if err != nil {
		return fmt.Errorf("ch_precalc: %w", err)
	}

	log.Info().Int("upward_edges", len(chg.Upward.Edges)).Msg("ch_precalc: preprocessing done")

	if err := persist.SaveBinary(chg.Upward, filepath.Join(cfg.DataDir, "ch_"+graphName+".bin")); err != nil {
		return err
	}

	return saveLevels(filepath.Join(cfg.DataDir, "ch_"+graphName+".level"), chg.Level)
}

func saveLevels(path string, level []uint32) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, lv := range level {
		fmt.Fprintln(w, lv)
	}

	return w.Flush()
}

func loadLevels(path string) ([]uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []uint32
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		n, err := strconv.ParseUint(strings.TrimSpace(sc.Text()), 10, 32)
		if err != nil {
			continue
		}
		out = append(out, uint32(n))
	}

	return out, sc.Err()
}

func loadCHGraph(cfg config.Config, graphName string) (*ch.Graph, error) {
	upward, err := persist.LoadBinary(filepath.Join(cfg.DataDir, "ch_"+graphName+".bin"))
	if err != nil {
		return nil, err
	}
	level, err := loadLevels(filepath.Join(cfg.DataDir, "ch_"+graphName+".level"))
	if err != nil {
		return nil, err
	}

	return &ch.Graph{Upward: upward, Level: level}, nil
}

func parseLonLat(s string) (geo.Coordinate, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return geo.Coordinate{}, fmt.Errorf("expected lon,lat, got %q", s)
	}
	lon, err1 := strconv.ParseFloat(parts[0], 32)
	lat, err2 := strconv.ParseFloat(parts[1], 32)
	if err1 != nil || err2 != nil {
		return geo.Coordinate{}, fmt.Errorf("expected lon,lat, got %q", s)
	}

	return geo.Coordinate{Lon: float32(lon), Lat: float32(lat)}, nil
}

func cmdRoute(cfg config.Config, args []string) error {
	if len(args) < 4 {
		return fmt.Errorf("route: usage: route <di|bd|astar|ch> <src_lon,src_lat> <tgt_lon,tgt_lat> <graph_name>")
	}
	engine, srcStr, tgtStr, graphName := args[0], args[1], args[2], args[3]

	g, err := persist.LoadBinary(filepath.Join(cfg.DataDir, graphName+".bin"))
	if err != nil {
		return fmt.Errorf("route: %w", err)
	}

	src, err := parseLonLat(srcStr)
	if err != nil {
		return fmt.Errorf("route: src: %w", err)
	}
	tgt, err := parseLonLat(tgtStr)
	if err != nil {
		return fmt.Errorf("route: tgt: %w", err)
	}

	srcID := g.ClosestNode(src)
	tgtID := g.ClosestNode(tgt)

	result, err := runEngine(cfg, engine, g, graphName, srcID, tgtID)
	if err != nil {
		return err
	}

	fmt.Printf("distance_m=%d visited=%d elapsed=%s path_len=%d\n",
		result.DistanceM, result.Visited, result.Elapsed, len(result.Path))

	return nil
}

func runEngine(cfg config.Config, engine string, g *csrgraph.Graph, graphName string, src, tgt uint32) (route.Result, error) {
	switch engine {
	case "di":
		return route.Dijkstra(g, src, tgt), nil
	case "bd":
		return route.BidirectionalDijkstra(g, src, tgt), nil
	case "astar":
		return route.AStar(g, src, tgt), nil
	case "ch":
		chg, err := loadCHGraph(cfg, graphName)
		if err != nil {
			return route.Result{}, fmt.Errorf("route: loading CH graph: %w", err)
		}
		return ch.Query(chg, src, tgt), nil
	default:
		return route.Result{}, fmt.Errorf("route: unknown engine %q (want di, bd, astar, ch)", engine)
	}
}

// cmdTestFixed runs five fixed scenarios: node pairs picked at fixed
// fractional positions in the loaded graph's node list (not literal
// coordinates), checking that Dijkstra, bidirectional Dijkstra and A*
// agree on distance. The CH engine is not compared.
func cmdTestFixed(cfg config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("test_fixed: usage: test_fixed <graph_name>")
	}
	graphName := args[0]

	g, err := persist.LoadBinary(filepath.Join(cfg.DataDir, graphName+".bin"))
	if err != nil {
		return fmt.Errorf("test_fixed: %w", err)
	}
	if len(g.Nodes) == 0 {
		return fmt.Errorf("test_fixed: graph has no nodes")
	}

	scenarios := fixedNodePairs(g)
	allPass := true
	for i, pair := range scenarios {
		ok := comparePair(g, pair[0], pair[1])
		if !ok {
			allPass = false
		}
		fmt.Printf("scenario %d: src=%d tgt=%d pass=%v\n", i, pair[0], pair[1], ok)
	}
	if !allPass {
		return fmt.Errorf("test_fixed: one or more scenarios disagreed across engines")
	}

	return nil
}

func fixedNodePairs(g *csrgraph.Graph) [][2]uint32 {
	n := uint32(len(g.Nodes))
	pick := func(frac float64) uint32 {
		if n == 0 {
			return 0
		}
		return uint32(float64(n-1) * frac)
	}

	return [][2]uint32{
		{pick(0), pick(0.25)},
		{pick(0.1), pick(0.9)},
		{pick(0.5), pick(0.5)},
		{pick(0.2), pick(0.8)},
		{pick(0), n - 1},
	}
}

func comparePair(g *csrgraph.Graph, src, tgt uint32) bool {
	di := route.Dijkstra(g, src, tgt)
	bd := route.BidirectionalDijkstra(g, src, tgt)
	as := route.AStar(g, src, tgt)

	return di.DistanceM == bd.DistanceM && di.DistanceM == as.DistanceM
}

// cmdTestRandom checks properties 7-8 from spec.md §8: Dijkstra,
// bidirectional Dijkstra and A* agree on N random node pairs, and (if a
// CH graph for graph_name exists) CH agrees with Dijkstra too.
func cmdTestRandom(cfg config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("test_random: usage: test_random <graph_name> [count]")
	}
	graphName := args[0]
	count := 100
	if len(args) >= 2 {
		if n, err := strconv.Atoi(args[1]); err == nil {
			count = n
		}
	}

	g, err := persist.LoadBinary(filepath.Join(cfg.DataDir, graphName+".bin"))
	if err != nil {
		return fmt.Errorf("test_random: %w", err)
	}
	if len(g.Nodes) == 0 {
		return fmt.Errorf("test_random: graph has no nodes")
	}

	chg, chErr := loadCHGraph(cfg, graphName)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	failures := 0
	for i := 0; i < count; i++ {
		src := uint32(rng.Intn(len(g.Nodes)))
		tgt := uint32(rng.Intn(len(g.Nodes)))

		di := route.Dijkstra(g, src, tgt)
		if !comparePair(g, src, tgt) {
			failures++
			log.Warn().Uint32("src", src).Uint32("tgt", tgt).Msg("test_random: di/bd/a* disagreed")
		}

		if chErr == nil {
			got := ch.Query(chg, src, tgt)
			if got.DistanceM != di.DistanceM {
				failures++
				log.Warn().Uint32("src", src).Uint32("tgt", tgt).Msg("test_random: ch disagreed with dijkstra")
			}
		}
	}

	fmt.Printf("test_random: %d/%d pairs agreed\n", count-failures, count)
	if failures > 0 {
		return fmt.Errorf("test_random: %d disagreements", failures)
	}

	return nil
}
