// Package frontier precomputes the per-edge frontier bookkeeping the ZDD
// frontier method needs: which vertices first appear ("enter") at each
// edge, which appear for the last time ("leave"), the live ("frontier")
// set in between, and a dense vertex-to-slot mapping that keeps per-DD-node
// state to O(width) rather than O(vertex count).
//
// A Manager is built once from a graph's vertex count and ordered edge list
// (package graph's construction order — not a graph-theoretic property,
// an input contract) and is immutable and read-only thereafter; it is
// shared across every state produced while building one ZDD over that
// edge order.
//
// Levels count down: level m (the edge count) is processed first, level 1
// last. Edge index k and level are related by k = m - level, so "edge k"
// and "level m-k" name the same edge.
package frontier
