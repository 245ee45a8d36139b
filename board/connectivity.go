package board

import "github.com/nagare-zdd/nagare/gridgraph"

// IsConnected reports whether every non-Black cell is reachable from every
// other non-Black cell through orthogonal adjacency, treating Black cells
// as impassable. An empty board (no non-Black cells) is vacuously
// connected.
//
// Grounded on gridgraph's flood-fill ConnectedComponents rather than the
// original's single forward-pass visited-propagation trick: that trick
// only verifies connectivity under a specific sorted-edge traversal order
// and breaks under arbitrary edit sequences, whereas a land/water mask fed
// through a real BFS is correct regardless of how the board got here.
func (b *Board) IsConnected() bool {
	mask := make([][]int, b.h)
	for y := 0; y < b.h; y++ {
		mask[y] = make([]int, b.w)
		for x := 0; x < b.w; x++ {
			if b.color[y*b.w+x] != Black {
				mask[y][x] = 1
			}
		}
	}

	gg, err := gridgraph.From2D(mask, gridgraph.Conn4)
	if err != nil {
		return false
	}

	comps := gg.ConnectedComponents()

	return len(comps) <= 1
}
