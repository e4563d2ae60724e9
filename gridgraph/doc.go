// Package gridgraph buckets water nodes into a coarse lon/lat grid so
// graphgen can answer "nearest node in each quadrant" without a full
// scan, and identifies connected components of the finished ocean
// graph so disconnected water bodies (the Black Sea, the Caspian) show
// up as data rather than as a silent routing failure.
//
// What:
//
//   - NodeGrid buckets node ids into one-degree lon/lat cells, row-major.
//   - Components walks a *csrgraph.Graph's undirected adjacency to find
//     connected components, reporting each as a sorted node-id slice.
//
// Complexity:
//
//   - NewNodeGrid: O(N).
//   - Components:  O(V + E), memory O(V).
//
// Errors:
//
//   - ErrEmptyGraph: the graph has no nodes.
package gridgraph
