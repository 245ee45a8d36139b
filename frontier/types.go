package frontier

// Manager precomputes the enter/leave/frontier/remaining vertex sets and
// the vertex<->slot map for one fixed vertex count and ordered edge list.
// Immutable after construction; safe for concurrent read-only use by
// multiple DD builds over the same edge order.
type Manager struct {
	n int     // vertex count
	m int     // edge count
	w int     // frontier width
	el [][2]int // edge list, el[k] = {u, v}

	es [][]int // es[k]: vertices entering at edge k
	ls [][]int // ls[k]: vertices leaving at edge k
	fs [][]int // fs[k]: vertices live while processing edge k
	rs [][]int // rs[k]: fs[k] minus ls[k]

	v2p []int   // v2p[v]: slot currently assigned to v (valid only while v is live)
	p2v [][]int // p2v[k][slot]: vertex occupying slot during edge k
}

// VertexCount returns n, the number of distinct vertices in the edge list.
func (m *Manager) VertexCount() int { return m.n }

// EdgeCount returns m, the number of edges.
func (m *Manager) EdgeCount() int { return m.m }

// Width returns the maximum frontier size across all edges — the fixed
// size of the per-slot state array a DD spec carries.
func (m *Manager) Width() int { return m.w }
