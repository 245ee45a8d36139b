package ddspec

import (
	"fmt"
	"strconv"

	"github.com/nagare-zdd/nagare/board"
	"github.com/nagare-zdd/nagare/frontier"
	"github.com/nagare-zdd/nagare/graph"
)

// Spec ties a properized Board to its Graph and Frontier Manager and
// implements the Nagareru transition function over them. All three
// collaborators are shared read-only for the lifetime of one DD build;
// Spec itself owns no mutable heap data beyond the cellIDs cache computed
// once at construction.
type Spec struct {
	board *board.Board
	g     *graph.Graph
	fm    *frontier.Manager

	// cellIDs[v] is the board cell index named by graph vertex v,
	// precomputed so Child never allocates or does string conversion.
	cellIDs []int
}

// New builds a Spec from b's current (properized) edge list.
func New(b *board.Board) (*Spec, error) {
	g, err := b.ToGraph()
	if err != nil {
		return nil, fmt.Errorf("ddspec: build graph: %w", err)
	}

	fm, err := frontier.NewManager(g)
	if err != nil {
		return nil, fmt.Errorf("ddspec: build frontier manager: %w", err)
	}

	n := g.VertexCount()
	cellIDs := make([]int, n+1)
	for v := 1; v <= n; v++ {
		name, err := g.VertexAt(v)
		if err != nil {
			return nil, fmt.Errorf("ddspec: vertex %d: %w", v, err)
		}
		id, err := strconv.Atoi(name)
		if err != nil {
			return nil, fmt.Errorf("ddspec: vertex %d name %q is not a cell index: %w", v, name, err)
		}
		cellIDs[v] = id
	}

	return &Spec{board: b, g: g, fm: fm, cellIDs: cellIDs}, nil
}

// Width returns the frontier width: the fixed slot-array size every
// state the zdd engine allocates for this Spec must have.
func (s *Spec) Width() int { return s.fm.Width() }

// Board returns the Board this Spec was built from, for callers (tests,
// diagnostics) that need to decode a level back into board coordinates.
func (s *Spec) Board() *board.Board { return s.board }

// EdgeCells returns the 0-based board cell indices of the edge processed
// at level, in the frontier's construction order.
func (s *Spec) EdgeCells(level int) (c1, c2 int) {
	v1, v2 := s.fm.V1(level), s.fm.V2(level)

	return s.cellIDs[v1], s.cellIDs[v2]
}

// Root initializes every slot of state (which must have length Width())
// to M=0, U=false, N=NoDirection and returns the top level, |E|. Vertices
// are stamped isolated (M=v) by Child when they enter the frontier.
func (s *Spec) Root(state []NState) int {
	for i := range state {
		state[i] = NState{M: 0, U: false, N: board.NoDirection}
	}

	return s.fm.EdgeCount()
}

func (s *Spec) pos(level, v int) int {
	p, err := s.fm.PositionOf(v, level)
	if err != nil {
		panic(fmt.Sprintf("ddspec: vertex %d not live at level %d: %v", v, level, err))
	}

	return p
}

func (s *Spec) upstreamOf(state []NState, level, v int) bool {
	if v == 0 {
		return false
	}

	return state[s.pos(level, v)].U
}

// Child computes the next level after applying branch (1 = take the
// edge, 0 = skip it) at level, returning 0 to reject (the 0-terminal),
// -1 to accept (the 1-terminal), or the next level otherwise.
func (s *Spec) Child(state []NState, level, branch int) int {
	E := s.fm.E(level)
	F := s.fm.F(level)
	L := s.fm.L(level)

	for _, v := range E {
		state[s.pos(level, v)] = NState{M: v, U: false, N: board.NoDirection}
	}

	v1, v2 := s.fm.V1(level), s.fm.V2(level)
	ci1, ci2 := s.cellIDs[v1], s.cellIDs[v2]

	c1, c2 := s.board.ColorAt(ci1), s.board.ColorAt(ci2)
	ds1, ds2 := s.board.Directions(ci1), s.board.Directions(ci2)
	d12 := s.board.RelativeDirection(ci1, ci2)
	d21 := s.board.RelativeDirection(ci2, ci1)

	p1, p2 := s.pos(level, v1), s.pos(level, v2)
	m1, m2 := state[p1].M, state[p2].M
	n1, n2 := state[p1].N, state[p2].N
	uV1, uV2 := state[p1].U, state[p2].U

	if branch == 1 {
		// a. no re-entering interior vertex.
		if m1 == 0 || m2 == 0 {
			return 0
		}

		uM1, uM2 := s.upstreamOf(state, level, m1), s.upstreamOf(state, level, m2)

		// b. no merging upstream with upstream.
		if (uV1 && uV2) || (uM1 && uM2) {
			return 0
		}

		// c. arrow compliance at v1.
		if c1 == board.White || c1 == board.Gray {
			if uM1 || uV2 {
				for _, d := range ds1 {
					if d == d21 {
						return 0
					}
				}
			} else if uM2 || uV1 {
				for _, d := range ds1 {
					if d == d12 {
						return 0
					}
				}
			}
		}
		// d. arrow compliance at v2.
		if c2 == board.White || c2 == board.Gray {
			if uM2 || uV1 {
				for _, d := range ds2 {
					if d == d12 {
						return 0
					}
				}
			} else if uM1 || uV2 {
				for _, d := range ds2 {
					if d == d21 {
						return 0
					}
				}
			}
		}

		// e. no gray cell traversed twice in a row orthogonal to its wind.
		if c1 == board.Gray && n1 == d12 {
			for _, d := range ds1 {
				if d12 != d && d21 != d {
					return 0
				}
			}
		}
		if c2 == board.Gray && n2 == d21 {
			for _, d := range ds2 {
				if d12 != d && d21 != d {
					return 0
				}
			}
		}

		// f. closure detection.
		if m1 == v2 && m2 == v1 {
			for _, v := range F {
				if v == v1 || v == v2 {
					continue
				}
				m := state[s.pos(level, v)].M
				if m != 0 && m != v {
					return 0
				}
			}

			if s.fm.EdgeCount()-level < s.board.LastWhiteEdge() {
				return 0
			}

			return -1
		}

		// g. commit updates.
		state[s.pos(level, m1)].M = m2
		state[s.pos(level, m2)].M = m1
		if m1 != v1 {
			state[p1].M = 0
		}
		if m2 != v2 {
			state[p2].M = 0
		}

		if m1 == v1 {
			state[p1].N = d21
		} else {
			state[p1].N = board.NoDirection
		}
		if m2 == v2 {
			state[p2].N = d12
		} else {
			state[p2].N = board.NoDirection
		}

		if c1 == board.White || c1 == board.Gray {
			for _, d := range ds1 {
				if d == d12 {
					if uM2 || uV1 {
						return 0
					}
					state[s.pos(level, m1)].U = true
				} else if d == d21 {
					if uM1 || uV2 {
						return 0
					}
					state[s.pos(level, m2)].U = true
				}
			}
		}
		if c2 == board.White || c2 == board.Gray {
			for _, d := range ds2 {
				if d == d12 {
					if uM2 || uV1 {
						return 0
					}
					state[s.pos(level, m1)].U = true
				} else if d == d21 {
					if uM1 || uV2 {
						return 0
					}
					state[s.pos(level, m2)].U = true
				}
			}
		}

		if m1 != v1 && uV1 {
			state[s.pos(level, m2)].U = true
		}
		if m2 != v2 && uV2 {
			state[s.pos(level, m1)].U = true
		}
		if m1 != v1 {
			state[p1].U = false
		}
		if m2 != v2 {
			state[p2].U = false
		}
	} else {
		// Skip the edge: a White endpoint's arrow-aligned edge must be
		// taken, so skipping one is never legal.
		if c1 == board.White || c2 == board.White {
			return 0
		}
	}

	for _, v := range L {
		pv := s.pos(level, v)
		m := state[pv].M
		if m != 0 && m != v {
			return 0
		}
		state[pv] = NState{M: 0, U: false, N: board.NoDirection}
	}

	if level == 1 {
		return 0
	}

	return level - 1
}
