// Package dijkstra provides WitnessSearcher, a capped A* search used by
// package ch's contraction loop to answer one question, over and over:
// with node n excluded, is there already a path from a to b no longer than
// the shortcut a-n-b would be? If so, the shortcut isn't needed.
//
// A full Contraction Hierarchies preprocessing run asks this question for
// roughly every pair of neighbors of every node, across every contraction
// round -- on the order of 10^9 calls for a global coastline graph. Two
// things make that affordable:
//
//   - A* guided by a Haversine-to-target lower bound (geo.HaversineMeters,
//     floored so it never overestimates ceil'd edge weights) prunes the
//     search toward b instead of expanding outward in all directions like
//     plain Dijkstra would.
//   - WitnessSearcher owns its heap and per-node scratch arrays once, at
//     construction, and reuses them across every call via a generation
//     counter (see witness.go): no fresh map or heap allocation per search.
//
// See also:
//
//   - package ch: the contraction loop that calls Distance.
//   - package pqheap: the decrease-key heap WitnessSearcher is built on.
package dijkstra
