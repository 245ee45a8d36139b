package board

import (
	"strconv"

	"github.com/nagare-zdd/nagare/graph"
)

// ToGraph builds the *graph.Graph collaborator from b's current edge list
// (valid as of the last Properize): each cell index becomes a vertex
// named by its decimal string, and edges are added in b.Edges()' order so
// the graph's construction-order edge index matches the row-major scan
// order package frontier expects.
func (b *Board) ToGraph() (*graph.Graph, error) {
	g := graph.NewGraph()
	for _, e := range b.edges {
		from := strconv.Itoa(e.V1)
		to := strconv.Itoa(e.V2)
		if _, err := g.AddEdge(from, to); err != nil {
			return nil, err
		}
	}

	return g, nil
}
