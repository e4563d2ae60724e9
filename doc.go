// Package oceanroute is a global maritime routing engine: it assembles
// an ocean graph from OSM coastline data and answers shortest-path
// queries between water coordinates.
//
// Pipeline:
//
//	coastline.Link       — stitch open OSM coastline segments into closed rings
//	islandindex.NewIndex  — build the island set and its point-in-water grid
//	sampler.WaterPoint    — sample uniformly-distributed water coordinates
//	graphgen.Generate     — connect sampled nodes into a navigable mesh
//	csrgraph.Graph        — the immutable, queryable graph representation
//	route / ch            — Dijkstra, bidirectional Dijkstra, A*, and
//	                         Contraction Hierarchies preprocessing + query
//	persist               — binary and text graph dump/load
//
// See cmd/oceanroute for the CLI that drives this pipeline end to end,
// and SPEC_FULL.md at the repository root for the full module layout.
package oceanroute
