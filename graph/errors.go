package graph

import "errors"

// Sentinel errors for graph operations.
var (
	// ErrEmptyVertexID indicates an empty vertex identifier was supplied.
	ErrEmptyVertexID = errors.New("graph: vertex ID is empty")

	// ErrLoopNotAllowed indicates a self-loop edge was attempted.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("graph: parallel edge not allowed")

	// ErrVertexNotFound indicates a query referenced an unknown vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrMalformedEdgeLine indicates a line in an edge-list stream could not
	// be parsed as "v1 v2".
	ErrMalformedEdgeLine = errors.New("graph: malformed edge line")
)
