// Package nagare builds, solves, and generates Nagareru ("Usumuki") pencil
// puzzles with zero-suppressed binary decision diagrams (ZDDs) built by the
// frontier method.
//
// Packages:
//
//	graph/     — ordered-edge-list graph, the frontier method's substrate
//	gridgraph/ — 2D grid adjacency and connected-component analysis
//	frontier/  — per-edge Entering/Leaving/Frontier/Remaining set bookkeeping
//	board/     — puzzle grid model: colors, winds, properization, validity
//	ddspec/    — the Nagareru transition function (the DD's Root/Child)
//	zdd/       — a generic top-down ZDD construction engine
//	generator/ — randomized puzzle generation driven by ZDD cardinality
//	cmd/nagare — command-line front end: solve, count, generate
package nagare
