package graph

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadEdges builds a Graph from a stream of "v1 v2" lines (the format
// package board's WriteGraph emits). Vertices receive dense indices in the
// order their IDs first appear in the stream; blank lines are skipped.
func ReadEdges(r io.Reader) (*Graph, error) {
	g := NewGraph()

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("graph: line %d: %w", lineNo, ErrMalformedEdgeLine)
		}
		if _, err := g.AddEdge(fields[0], fields[1]); err != nil {
			return nil, fmt.Errorf("graph: line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return g, nil
}

// WriteEdges writes the graph's edges as "v1 v2" lines in construction
// order, the inverse of ReadEdges.
func (g *Graph) WriteEdges(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "%s %s\n", e.From, e.To); err != nil {
			return err
		}
	}

	return bw.Flush()
}
