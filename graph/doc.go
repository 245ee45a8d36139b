// Package graph is the minimal ordered-edge-list collaborator that the
// frontier method is built on top of.
//
// Unlike a general-purpose adjacency structure, Graph exists to answer one
// question precisely: "in what order were these edges declared, and what
// dense 1-based index did each vertex receive the first time it appeared?"
// The frontier manager (package frontier) and the Nagareru DD spec both key
// their per-vertex state off that dense index, so insertion order here is
// not cosmetic — it is part of the contract.
//
// Graph is intentionally narrow: undirected, unweighted, no self-loops, no
// parallel edges. Vertex IDs are caller-supplied strings (Nagareru uses the
// decimal cell position), and edges are added in construction order via
// AddEdge. ReadEdges builds a Graph from a "v1 v2" per-line text stream,
// mirroring the on-disk edge-list format emitted by package board.
package graph
