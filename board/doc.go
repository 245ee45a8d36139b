// Package board models a Nagareru puzzle grid: cell colors and direction
// multisets, wind propagation from Black cells, the "properize"
// normalization that recomputes Gray cells and the problem's edge list,
// and the validity and connectivity predicates the generator uses to
// decide whether an edit kept the board meaningful.
//
// A Board is mutable (SetCell/ResetCell edit it directly) but never
// self-normalizing: callers call Properize after a batch of edits, the
// same discipline the puzzle format's own source uses, before reading
// Edges, IsConnected, or any of the Is* predicates.
package board
