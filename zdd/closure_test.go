package zdd_test

import (
	"context"
	"testing"

	"github.com/nagare-zdd/nagare/board"
	"github.com/nagare-zdd/nagare/ddspec"
	"github.com/nagare-zdd/nagare/zdd"
	"github.com/stretchr/testify/require"
)

// decodeSolution converts a Solutions() level set back into the board's
// own (x,y) coordinate pairs, one per taken edge.
func decodeSolution(spec *ddspec.Spec, b *board.Board, levels []int) [][2][2]int {
	edges := make([][2][2]int, 0, len(levels))
	for _, level := range levels {
		c1, c2 := spec.EdgeCells(level)
		x1, y1 := b.XY(c1)
		x2, y2 := b.XY(c2)
		edges = append(edges, [2][2]int{{x1, y1}, {x2, y2}})
	}

	return edges
}

// hasEdge reports whether edges contains the unordered pair (a,b).
func hasEdge(edges [][2][2]int, a, b [2]int) bool {
	for _, e := range edges {
		if (e[0] == a && e[1] == b) || (e[0] == b && e[1] == a) {
			return true
		}
	}

	return false
}

// Property 6: every accepting path decodes to exactly one simple cycle —
// every cell touched by a taken edge has degree exactly two, and every
// White cell's two arrow-aligned edges are both present.
func TestClosure_EverySolutionIsASimpleCycleRespectingWhiteArrows(t *testing.T) {
	b, err := board.New(3, 3)
	require.NoError(t, err)
	require.NoError(t, b.SetCell(2, 2, board.White, board.Up))
	b.Properize()

	spec, err := ddspec.New(b)
	require.NoError(t, err)

	builder := zdd.NewBuilder[[]ddspec.NState](ddspec.NewStateSpec(spec))
	require.NoError(t, builder.Build(context.Background()))

	seen := 0
	for sol := range builder.Solutions() {
		seen++
		edges := decodeSolution(spec, b, sol)
		require.NotEmpty(t, edges)

		degree := map[[2]int]int{}
		for _, e := range edges {
			degree[e[0]]++
			degree[e[1]]++
		}
		for cell, d := range degree {
			require.Equal(t, 2, d, "cell %v must have degree 2 in a simple cycle, got %d", cell, d)
		}

		require.True(t, degreeFormsSingleCycle(edges), "edge set %v is not a single simple cycle", edges)

		// The forced White cell at (2,2) must use both its arrow-aligned
		// vertical edges.
		require.True(t, hasEdge(edges, [2]int{2, 2}, [2]int{2, 1}))
		require.True(t, hasEdge(edges, [2]int{2, 2}, [2]int{2, 3}))
	}
	require.Equal(t, 2, seen)
}

// degreeFormsSingleCycle walks edges starting from an arbitrary endpoint
// and reports whether following unvisited edges (every vertex having
// degree 2, by the caller's prior check) returns to the start having
// visited every edge exactly once.
func degreeFormsSingleCycle(edges [][2][2]int) bool {
	if len(edges) == 0 {
		return false
	}

	adj := map[[2]int][][2]int{}
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}

	start := edges[0][0]
	visitedEdges := map[[2][2]int]bool{}
	cur := start
	prev := [2]int{-1, -1}

	for i := 0; i < len(edges); i++ {
		neighbors := adj[cur]
		advanced := false
		for _, n := range neighbors {
			key := [2][2]int{cur, n}
			keyRev := [2][2]int{n, cur}
			if (n == prev) && len(neighbors) > 1 {
				continue
			}
			if visitedEdges[key] || visitedEdges[keyRev] {
				continue
			}
			visitedEdges[key] = true
			prev = cur
			cur = n
			advanced = true
			break
		}
		if !advanced {
			return false
		}
	}

	return cur == start && len(visitedEdges) == len(edges)
}
