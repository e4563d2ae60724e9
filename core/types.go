// Package core implements H, the mutable working graph that Contraction
// Hierarchies preprocessing contracts node by node (spec.md §4.J). csrgraph's
// CSR layout is immutable by design -- great for serving queries, useless for
// an algorithm that deletes a vertex and splices in shortcut edges thousands
// of times over. Package ch builds an H from the input csrgraph.Graph
// (vertex IDs are the original node indices, stringified), contracts it down
// to nodeFloor vertices, and reads back the shortcuts it recorded to build
// the upward DAG it hands to csrgraph.
//
// ch always builds H directed and weighted: every original road/sea-lane
// edge is inserted as a reciprocal pair of directed edges during setup (see
// ch.newState), and a contraction shortcut is itself a one-way replacement
// for a two-hop path. The package also supports what ch does not use:
// NewGraph's default is undirected (AddEdge then mirrors each edge), and
// AddEdge accepts self-loops.
//
// All APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency), so a caller may read H from one
// goroutine while another mutates it, though in practice ch's contraction
// loop is single-threaded and the locks mostly guard against accidental
// concurrent misuse.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for H operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")
)

// Vertex is one node of H, keyed by the stringified original node index.
//
// Metadata stores arbitrary key-value data.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data.
	Metadata map[string]interface{}
}

// Edge is one directed arc of H: a road/sea-lane edge inserted during setup,
// or a shortcut spliced in by contraction in place of a two-hop detour
// through a contracted vertex.
type Edge struct {
	// ID uniquely identifies this edge in H.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the edge's distance, in the same unit as geo.EdgeWeightMeters.
	Weight int64
}

// GraphOption configures H before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether an edge added without an explicit reciprocal is
// mirrored automatically (to->from) or kept one-way. ch always passes true:
// every edge it inserts into H is already one leg of a pair it adds
// explicitly, and contraction shortcuts are inherently one-way.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in H.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// Graph is H, the mutable contraction working graph.
//
// muVert protects vertices; muEdgeAdj protects edges and adjacencyList.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	directed bool // whether AddEdge mirrors to->from automatically
	weighted bool // allow non-zero weights

	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID -> Vertex
	edges      map[string]*Edge   // edge ID -> Edge

	// adjacencyList[(from)Vertex.ID][(to)Vertex.ID][Edge.ID] = struct{}{}
	adjacencyList map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty H with the given options. By default H is
// undirected (mirrors every edge) and unweighted; ch always overrides both
// with WithDirected(true) and WithWeighted().
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
