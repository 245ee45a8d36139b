// Package ddspec implements the Nagareru transition function: the
// per-slot state schema and the take/skip transition relation that the
// generic zdd engine drives edge by edge, encoding every Nagareru rule
// (single cycle, wind propagation, arrow following, no back-flow) as
// local frontier decisions.
//
// Root and Child are pure functions over an externally owned, fixed-size
// slot array: no logging, no allocation, no shared mutable state, so the
// zdd engine may call them freely without synchronization beyond not
// sharing one state array across concurrent calls.
package ddspec
