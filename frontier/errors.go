package frontier

import "errors"

// ErrNoEdges indicates a Manager was asked to build over an empty edge list.
var ErrNoEdges = errors.New("frontier: edge list must be non-empty")

// ErrLevelOutOfRange indicates a level outside [1, edge count] was queried.
var ErrLevelOutOfRange = errors.New("frontier: level out of range")

// ErrVertexNotLive indicates PositionOf was called for a vertex outside
// its live window [first-appearance, last-appearance]. Per the contract in
// spec, callers must not query this; it is a logic-impossible state.
var ErrVertexNotLive = errors.New("frontier: vertex is not live")
