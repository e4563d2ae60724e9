// Package persist dumps and loads csrgraph.Graph values in the two
// on-disk formats spec.md §6 defines: a binary format for production
// use and a whitespace-separated text format (".fmi") for debugging.
// Both store nodes and a src-sorted edge list; offsets are rebuilt by
// a single scan on load rather than stored, so the two representations
// can never disagree about node count vs. edge references.
package persist

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/seacharts/oceanroute/csrgraph"
)

// ErrParseError is returned by LoadText when the node-count or
// edge-count header line is missing. Malformed node and edge lines do
// not produce it: LoadText logs and skips them, and builds the graph
// from whatever lines did parse.
var ErrParseError = errors.New("persist: malformed .fmi line")

const binMagic = "OCRG0001"

// SaveBinary writes g to path in the binary format: an 8-byte magic, a
// node count, each node (id, lon, lat), an edge count, and each edge
// (src, tgt, dist), all fixed-width little-endian.
func SaveBinary(g *csrgraph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := w.WriteString(binMagic); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(g.Nodes))); err != nil {
		return err
	}
	for _, n := range g.Nodes {
		if err := binary.Write(w, binary.LittleEndian, n); err != nil {
			return err
		}
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(g.Edges))); err != nil {
		return err
	}
	for _, e := range g.Edges {
		if err := binary.Write(w, binary.LittleEndian, e); err != nil {
			return err
		}
	}

	return w.Flush()
}

// LoadBinary reads a graph previously written by SaveBinary, rebuilding
// Offsets from the stored (already src-sorted) edge list.
func LoadBinary(path string) (*csrgraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	magic := make([]byte, len(binMagic))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, err
	}
	if string(magic) != binMagic {
		return nil, fmt.Errorf("persist: bad magic %q", magic)
	}

	var nodeCount uint32
	if err := binary.Read(r, binary.LittleEndian, &nodeCount); err != nil {
		return nil, err
	}
	nodes := make([]csrgraph.Node, nodeCount)
	for i := range nodes {
		if err := binary.Read(r, binary.LittleEndian, &nodes[i]); err != nil {
			return nil, err
		}
	}

	var edgeCount uint32
	if err := binary.Read(r, binary.LittleEndian, &edgeCount); err != nil {
		return nil, err
	}
	edges := make([]csrgraph.Edge, edgeCount)
	for i := range edges {
		if err := binary.Read(r, binary.LittleEndian, &edges[i]); err != nil {
			return nil, err
		}
	}

	return csrgraph.New(nodes, edges)
}

// SaveText writes g in the ".fmi" format: node count, edge count, then
// "id lat lon" per node and "src tgt dist_m" per edge, all
// whitespace-separated.
func SaveText(g *csrgraph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, len(g.Nodes))
	fmt.Fprintln(w, len(g.Edges))
	for _, n := range g.Nodes {
		fmt.Fprintf(w, "%d %f %f\n", n.ID, n.Lat, n.Lon)
	}
	for _, e := range g.Edges {
		fmt.Fprintf(w, "%d %d %d\n", e.Src, e.Tgt, e.Dist)
	}

	return w.Flush()
}

// LoadText reads a ".fmi" file. A line that fails to parse is logged
// and skipped rather than aborting the whole load (spec.md §7
// ParseError: "graph may be smaller but is still usable").
func LoadText(path string) (*csrgraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	nodeCount, err := scanInt(sc)
	if err != nil {
		return nil, err
	}
	edgeCount, err := scanInt(sc)
	if err != nil {
		return nil, err
	}

	nodes := make([]csrgraph.Node, 0, nodeCount)
	for i := 0; i < nodeCount && sc.Scan(); i++ {
		n, ok := parseNodeLine(sc.Text())
		if !ok {
			continue
		}
		nodes = append(nodes, n)
	}

	edges := make([]csrgraph.Edge, 0, edgeCount)
	for i := 0; i < edgeCount && sc.Scan(); i++ {
		e, ok := parseEdgeLine(sc.Text())
		if !ok {
			continue
		}
		edges = append(edges, e)
	}

	return csrgraph.New(nodes, edges)
}

func scanInt(sc *bufio.Scanner) (int, error) {
	if !sc.Scan() {
		return 0, ErrParseError
	}

	return strconv.Atoi(strings.TrimSpace(sc.Text()))
}

func parseNodeLine(line string) (csrgraph.Node, bool) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		log.Warn().Str("line", line).Msg("persist: skipping malformed node line")
		return csrgraph.Node{}, false
	}

	id, err1 := strconv.ParseUint(fields[0], 10, 32)
	lat, err2 := strconv.ParseFloat(fields[1], 32)
	lon, err3 := strconv.ParseFloat(fields[2], 32)
	if err1 != nil || err2 != nil || err3 != nil {
		log.Warn().Str("line", line).Msg("persist: skipping malformed node line")
		return csrgraph.Node{}, false
	}

	return csrgraph.Node{ID: uint32(id), Lat: float32(lat), Lon: float32(lon)}, true
}

func parseEdgeLine(line string) (csrgraph.Edge, bool) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		log.Warn().Str("line", line).Msg("persist: skipping malformed edge line")
		return csrgraph.Edge{}, false
	}

	src, err1 := strconv.ParseUint(fields[0], 10, 32)
	tgt, err2 := strconv.ParseUint(fields[1], 10, 32)
	dist, err3 := strconv.ParseUint(fields[2], 10, 32)
	if err1 != nil || err2 != nil || err3 != nil {
		log.Warn().Str("line", line).Msg("persist: skipping malformed edge line")
		return csrgraph.Edge{}, false
	}

	return csrgraph.Edge{Src: uint32(src), Tgt: uint32(tgt), Dist: uint32(dist)}, true
}
