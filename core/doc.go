// Package core provides H, the mutable vertex/edge graph that Contraction
// Hierarchies preprocessing (package ch) contracts node by node. See
// types.go's package comment for the full rationale; this file is the
// method-surface reference.
//
// Vertex lifecycle:
//
//	AddVertex(id string) error         // O(1)
//	HasVertex(id string) bool          // O(1)
//	RemoveVertex(id string) error      // O(E), scans every edge
//
// Edge lifecycle:
//
//	AddEdge(from, to string, weight int64) (edgeID string, err error) // O(1) amortized
//	RemoveEdge(edgeID string) error   // O(V + E) with adjacency cleanup
//	HasEdge(from, to string) bool     // O(1)
//	GetEdge(edgeID string) (*Edge, error) // O(1)
//
// Queries:
//
//	Neighbors(id string) ([]*Edge, error)    // O(d log d), sorted by Edge.ID
//	NeighborIDs(id string) ([]string, error) // O(d log d), unique, sorted
//	Vertices() []string                      // O(V log V), sorted
//	Edges() []*Edge                          // O(E log E), sorted by Edge.ID
//	VertexCount() int                        // O(1)
//	EdgeCount() int                          // O(1)
//
// Errors:
//
//	ErrEmptyVertexID - zero-length vertex ID
//	ErrVertexNotFound - missing vertex
//	ErrEdgeNotFound - missing edge
//	ErrBadWeight - non-zero weight on an unweighted H
package core
