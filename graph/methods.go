package graph

// AddVertex registers id if it is not already present and returns its
// Vertex record. Idempotent: adding an existing vertex returns the same
// record without changing its Index.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if v, ok := g.vertices[id]; ok {
		return v, nil
	}

	g.order = append(g.order, id)
	v := &Vertex{ID: id, Index: len(g.order)}
	g.vertices[id] = v
	g.adjacency[id] = make(map[string]struct{})

	return v, nil
}

// AddEdge appends an undirected edge between from and to, auto-registering
// either endpoint that has not been seen before (in from-then-to order, so
// the first-seen numbering matches the row-major scan that produced the
// edge list). Returns ErrLoopNotAllowed for from==to and
// ErrMultiEdgeNotAllowed if the pair is already connected.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (*Edge, error) {
	if from == "" || to == "" {
		return nil, ErrEmptyVertexID
	}
	if from == to {
		return nil, ErrLoopNotAllowed
	}
	if _, err := g.AddVertex(from); err != nil {
		return nil, err
	}
	if _, err := g.AddVertex(to); err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, dup := g.adjacency[from][to]; dup {
		return nil, ErrMultiEdgeNotAllowed
	}

	e := &Edge{Seq: len(g.edges), From: from, To: to}
	g.edges = append(g.edges, e)
	g.adjacency[from][to] = struct{}{}
	g.adjacency[to][from] = struct{}{}

	return e, nil
}

// HasEdge reports whether from and to are directly connected.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Vertices returns vertex IDs in first-seen order. The slice is a copy;
// callers may not mutate the Graph through it.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of distinct vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// Edges returns edges in construction order.
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Index returns the dense 1-based index assigned to id on first insertion,
// or (0, false) if id is unknown.
func (g *Graph) Index(id string) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return 0, false
	}

	return v.Index, true
}

// VertexAt returns the vertex ID holding dense index i (1-based), or
// ErrVertexNotFound if i is out of range.
func (g *Graph) VertexAt(i int) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if i < 1 || i > len(g.order) {
		return "", ErrVertexNotFound
	}

	return g.order[i-1], nil
}
