// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/nagare-zdd/nagare/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_ConnectedComponents demonstrates how to identify
// contiguous "islands" of land cells in a 2D grid.
//
// Complexity: O(W·H·4), Memory: O(W·H)
func ExampleGridGraph_ConnectedComponents() {
	grid := [][]int{
		{0, 1, 1, 0, 1},
		{1, 1, 0, 1, 1},
		{1, 0, 1, 1, 0},
	}
	gg, _ := gridgraph.From2D(grid, gridgraph.Conn4)

	comps := gg.ConnectedComponents()
	fmt.Println("components:", len(comps))

	// Output:
	// components: 2
}

////////////////////////////////////////////////////////////////////////////////
// Example: ExpandIsland
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_ExpandIsland demonstrates computing the minimal
// water-cell conversions to connect two components in the grid.
//
// Complexity: O(W·H) on average, Memory: O(W·H)
func ExampleGridGraph_ExpandIsland() {
	grid := [][]int{{1, 0, 0, 0, 1}}
	gg, _ := gridgraph.From2D(grid, gridgraph.Conn4)

	path, cost, err := gg.ExpandIsland(0, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cost:", cost, "path length:", len(path))

	// Output:
	// cost: 3 path length: 5
}
