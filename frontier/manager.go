package frontier

import "github.com/nagare-zdd/nagare/graph"

// NewManager builds a Manager from g's construction-order edge list,
// using the dense first-seen vertex index g.Index assigns each vertex as
// that vertex's integer label (slot 0 is never a real vertex, matching
// graph.Graph's 1-based indexing).
func NewManager(g *graph.Graph) (*Manager, error) {
	edges := g.Edges()
	if len(edges) == 0 {
		return nil, ErrNoEdges
	}

	el := make([][2]int, len(edges))
	for k, e := range edges {
		u, _ := g.Index(e.From)
		v, _ := g.Index(e.To)
		el[k] = [2]int{u, v}
	}

	return newManagerFromEdgeList(g.VertexCount(), el), nil
}

// newManagerFromEdgeList builds a Manager directly from an integer edge
// list, bypassing package graph. Exposed to tests (scenario S6 in
// spec is a bare path graph, not a board-derived graph) via NewFromEdges.
func newManagerFromEdgeList(n int, el [][2]int) *Manager {
	mgr := &Manager{n: n, m: len(el), el: el}
	mgr.constructEs()
	mgr.constructLs()
	mgr.constructFs()
	mgr.constructRs()
	mgr.constructMap()

	return mgr
}

// NewFromEdges builds a Manager directly from 1-based integer vertex pairs,
// for callers (such as this package's tests) that already have an edge
// list and don't want to round-trip through package graph.
func NewFromEdges(n int, edges [][2]int) (*Manager, error) {
	if len(edges) == 0 {
		return nil, ErrNoEdges
	}

	el := make([][2]int, len(edges))
	copy(el, edges)

	return newManagerFromEdgeList(n, el), nil
}

func (mgr *Manager) constructEs() {
	seen := make(map[int]bool, mgr.n)
	mgr.es = make([][]int, mgr.m)

	for k := 0; k < mgr.m; k++ {
		u, v := mgr.el[k][0], mgr.el[k][1]
		if !seen[u] {
			mgr.es[k] = append(mgr.es[k], u)
			seen[u] = true
		}
		if !seen[v] {
			mgr.es[k] = append(mgr.es[k], v)
			seen[v] = true
		}
	}
}

func (mgr *Manager) constructLs() {
	seen := make(map[int]bool, mgr.n)
	mgr.ls = make([][]int, mgr.m)

	for k := mgr.m - 1; k >= 0; k-- {
		u, v := mgr.el[k][0], mgr.el[k][1]
		if !seen[u] {
			mgr.ls[k] = append(mgr.ls[k], u)
			seen[u] = true
		}
		if !seen[v] {
			mgr.ls[k] = append(mgr.ls[k], v)
			seen[v] = true
		}
	}
}

// constructFs requires es and ls. F_k = F_{k-1} ∪ E_k, recorded before
// L_k is removed; W is the running maximum of |F_k| during that window.
func (mgr *Manager) constructFs() {
	live := make(map[int]bool, mgr.n)
	order := make([]int, 0, mgr.n) // insertion order, for deterministic F_k
	mgr.fs = make([][]int, mgr.m)

	for k := 0; k < mgr.m; k++ {
		for _, v := range mgr.es[k] {
			if !live[v] {
				live[v] = true
				order = append(order, v)
			}
		}

		fk := make([]int, 0, len(order))
		for _, v := range order {
			if live[v] {
				fk = append(fk, v)
			}
		}
		mgr.fs[k] = fk
		if len(fk) > mgr.w {
			mgr.w = len(fk)
		}

		for _, v := range mgr.ls[k] {
			live[v] = false
		}
	}
}

// constructRs requires fs and ls. R_k = F_k \ L_k, order preserved.
func (mgr *Manager) constructRs() {
	mgr.rs = make([][]int, mgr.m)

	for k := 0; k < mgr.m; k++ {
		leaving := make(map[int]bool, len(mgr.ls[k]))
		for _, v := range mgr.ls[k] {
			leaving[v] = true
		}
		for _, v := range mgr.fs[k] {
			if !leaving[v] {
				mgr.rs[k] = append(mgr.rs[k], v)
			}
		}
	}
}

// constructMap requires es and ls. Free slots are drawn LIFO from a stack
// seeded [w-1, ..., 0]; v2p/p2v are derived incrementally, edge by edge.
func (mgr *Manager) constructMap() {
	mgr.v2p = make([]int, mgr.n+1)
	mgr.p2v = make([][]int, mgr.m)

	free := make([]int, mgr.w)
	for i := range free {
		free[i] = mgr.w - 1 - i
	}

	for k := 0; k < mgr.m; k++ {
		row := make([]int, mgr.w)
		if k > 0 {
			copy(row, mgr.p2v[k-1])
		}
		mgr.p2v[k] = row

		for _, v := range mgr.es[k] {
			slot := free[len(free)-1]
			free = free[:len(free)-1]
			mgr.v2p[v] = slot
			mgr.p2v[k][slot] = v
		}
		for _, v := range mgr.ls[k] {
			free = append(free, mgr.v2p[v])
		}
	}
}

// edgeID converts a level (m down to 1) to its 0-based edge index.
func (mgr *Manager) edgeID(level int) int { return mgr.m - level }

// EdgeID returns the 0-based index of the edge processed at level.
func (mgr *Manager) EdgeID(level int) (int, error) {
	if level < 1 || level > mgr.m {
		return 0, ErrLevelOutOfRange
	}

	return mgr.edgeID(level), nil
}

// V1 returns the first endpoint of the edge processed at level.
func (mgr *Manager) V1(level int) int { return mgr.el[mgr.edgeID(level)][0] }

// V2 returns the second endpoint of the edge processed at level.
func (mgr *Manager) V2(level int) int { return mgr.el[mgr.edgeID(level)][1] }

// E returns the vertices entering the frontier at level.
func (mgr *Manager) E(level int) []int { return mgr.es[mgr.edgeID(level)] }

// L returns the vertices leaving the frontier at level.
func (mgr *Manager) L(level int) []int { return mgr.ls[mgr.edgeID(level)] }

// F returns the frontier (live) vertex set at level.
func (mgr *Manager) F(level int) []int { return mgr.fs[mgr.edgeID(level)] }

// R returns the vertex set remaining after level's edge is processed.
func (mgr *Manager) R(level int) []int { return mgr.rs[mgr.edgeID(level)] }

// PositionOf returns the slot assigned to v at level, or ErrVertexNotLive
// if v is not in F(level). Unlike the original source's unchecked array
// index, this validates the live window rather than returning undefined
// data — the contract is still the caller's responsibility to respect,
// but violating it now fails loudly.
func (mgr *Manager) PositionOf(v, level int) (int, error) {
	for _, live := range mgr.F(level) {
		if live == v {
			return mgr.v2p[v], nil
		}
	}

	return 0, ErrVertexNotLive
}

// VertexOf returns the vertex occupying slot at level.
func (mgr *Manager) VertexOf(level, slot int) int {
	return mgr.p2v[mgr.edgeID(level)][slot]
}
