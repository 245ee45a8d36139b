// Package zdd is a generic, top-down zero-suppressed decision diagram
// builder driven by a DDSpec. It consumes any problem's transition
// function — package ddspec's Nagareru spec is the one concrete
// instantiation this module ships — and produces a reduced ZDD with
// arbitrary-precision cardinality, solution enumeration, and DOT export.
//
// Construction follows the frontier-method convention: Root returns an
// initial state and the top level; Child applies a take/skip branch and
// returns either 0 (reject, the 0-terminal), -1 (accept, the
// 1-terminal), or the next level to recurse into. Reduction merges nodes
// sharing an identical (level, lo, hi) triple and suppresses any node
// whose hi-edge leads to the 0-terminal, per the standard ZDD rule.
package zdd
