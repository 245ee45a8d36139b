// Package generator builds random Nagareru boards whose unique-solution
// property is established by repeatedly querying the ZDD cardinality
// oracle in packages ddspec and zdd, rather than by any combinatorial
// construction that guarantees uniqueness up front.
package generator

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/nagare-zdd/nagare/board"
	"github.com/nagare-zdd/nagare/ddspec"
	"github.com/nagare-zdd/nagare/zdd"
)

// cellChoice is a candidate (position, color, direction) triple that
// getMeaningfullAddition found to keep the board both meaningful and
// connected.
type cellChoice struct {
	x, y int
	col  board.Color
	dir  board.Direction
}

// Generator produces random Nagareru boards with exactly one solution.
// Not safe for concurrent use: callers that want parallel generation
// should construct one Generator per goroutine.
type Generator struct {
	cfg *config

	seed   int64
	rng    *rand.Rand
	nCalls int
}

// New returns a Generator seeded deterministically from seed: the same
// seed, width, height, and target cell count always produce the same
// board.
func New(seed int64, opts ...Option) *Generator {
	return &Generator{
		cfg:  newConfig(opts...),
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the Generator's construction seed.
func (g *Generator) Seed() int64 { return g.seed }

// NumCallCountSolutions returns how many times the ZDD cardinality oracle
// has run since construction or the last Reset.
func (g *Generator) NumCallCountSolutions() int { return g.nCalls }

// Reset zeroes the oracle call counter without reseeding the random
// source, so a caller can measure the cost of one Generate call in
// isolation.
func (g *Generator) Reset() { g.nCalls = 0 }

// Generate returns a w x h board seeded with n Black cells and exactly
// one solution, found by building an initial candidate and then
// iteratively adding and deleting cells while re-querying the oracle.
// Retries the whole process (including a fresh initial board) whenever ten
// rounds of add/delete fail to reach uniqueness.
func (g *Generator) Generate(ctx context.Context, w, h, n int) (*board.Board, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p, cnt, err := g.initialBoard(ctx, w, h, n)
		if err != nil {
			return nil, err
		}
		g.cfg.logger.Debug().Str("cardinality", cnt).Msg("generator: initial board")

		for round := 0; round < 10; round++ {
			p, cnt, err = g.addCells(ctx, p, cnt)
			if err != nil {
				return nil, err
			}
			p, cnt, err = g.delCells(ctx, p, cnt)
			if err != nil {
				return nil, err
			}
			if cnt == "1" {
				break
			}
		}

		if cnt == "1" {
			return p, nil
		}
		g.cfg.logger.Debug().Msg("generator: round exhausted without uniqueness, restarting")
	}
}

// initialBoard builds a satisfiable starting board: getInitialBoard's
// randomized-Black-placement attempt; if that board has no solution, it
// builds boards with getInitBoard's meaningful-addition sampling instead,
// repeating until the oracle reports at least one solution.
func (g *Generator) initialBoard(ctx context.Context, w, h, n int) (*board.Board, string, error) {
	p, err := g.getInitialBoard(w, h, n)
	if err != nil {
		return nil, "", err
	}

	cnt, err := g.countSolutions(ctx, p)
	if err != nil {
		return nil, "", err
	}

	for cnt == "0" {
		g.cfg.logger.Debug().Msg("generator: unsatisfiable board, falling back to getInitBoard")

		p, err = g.getInitBoard(w, h, n)
		if err != nil {
			return nil, "", err
		}
		cnt, err = g.countSolutions(ctx, p)
		if err != nil {
			return nil, "", err
		}
	}

	return p, cnt, nil
}

// getInitialBoard places up to n Black cells, in a random permutation of
// board positions, each with a random direction, keeping a placement only
// if it leaves the board meaningful and connected. Stops early if fewer
// than n positions admit a valid placement.
func (g *Generator) getInitialBoard(w, h, n int) (*board.Board, error) {
	p, err := board.New(w, h)
	if err != nil {
		return nil, err
	}

	perm := g.rng.Perm(w * h)
	added := 0
	for _, i := range perm {
		if n <= 0 || added >= n {
			break
		}

		x := i%w + 1
		y := i/w + 1
		dir := board.Direction(g.rng.Intn(5))

		if err := p.SetCell(x, y, board.Black, dir); err != nil {
			return nil, err
		}
		p.Properize()

		if p.IsMeaningless() || !p.IsConnected() {
			if err := p.ResetCell(x, y); err != nil {
				return nil, err
			}
			continue
		}
		added++
	}
	p.Properize()

	return p, nil
}

// getInitBoard builds a board with exactly n cells by repeatedly picking
// a uniformly random meaningful addition, never backtracking. Returns
// ErrNoAddableCell if no meaningful addition remains before n is reached.
func (g *Generator) getInitBoard(w, h, n int) (*board.Board, error) {
	p, err := board.New(w, h)
	if err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		choices := getMeaningfullAddition(p)
		if len(choices) == 0 {
			return nil, fmt.Errorf("%w: n=%d", ErrNoAddableCell, n)
		}

		c := choices[g.rng.Intn(len(choices))]
		if err := p.SetCell(c.x, c.y, c.col, c.dir); err != nil {
			return nil, err
		}
	}
	p.Properize()

	return p, nil
}

// addCells greedily adds meaningful cells in random order, keeping each
// addition that keeps the oracle satisfiable and re-seeding the search
// from the newly grown board, until either the board reaches uniqueness
// or no remaining candidate keeps it satisfiable.
func (g *Generator) addCells(ctx context.Context, p *board.Board, prevCnt string) (*board.Board, string, error) {
	g.cfg.logger.Debug().Str("prevCount", prevCnt).Msg("generator: addCells")

	for prevCnt != "1" {
		choices := getMeaningfullAddition(p)
		added := false

		for len(choices) > 0 {
			if err := ctx.Err(); err != nil {
				return nil, "", err
			}

			r := g.rng.Intn(len(choices))
			c := choices[r]
			choices = append(choices[:r], choices[r+1:]...)

			if err := p.SetCell(c.x, c.y, c.col, c.dir); err != nil {
				return nil, "", err
			}
			p.Properize()

			cnt, err := g.countSolutions(ctx, p)
			if err != nil {
				return nil, "", err
			}

			if cnt != "0" {
				prevCnt = cnt
				added = true
				break
			}

			if err := p.ResetCell(c.x, c.y); err != nil {
				return nil, "", err
			}
			p.Properize()
		}

		if !added {
			return p, prevCnt, nil
		}
	}

	return p, prevCnt, nil
}

// delCells removes every cell whose deletion leaves both a non-meaningless
// board and the same solution count, repeating until a full sweep deletes
// nothing.
func (g *Generator) delCells(ctx context.Context, p *board.Board, prevCnt string) (*board.Board, string, error) {
	g.cfg.logger.Debug().Str("prevCount", prevCnt).Msg("generator: delCells")

	for {
		deleted := false

		for x := 1; x <= p.Width(); x++ {
			for y := 1; y <= p.Height(); y++ {
				if err := ctx.Err(); err != nil {
					return nil, "", err
				}

				col := p.ColorXY(x, y)
				if col == board.None || col == board.Gray {
					continue
				}

				q := p.Clone()
				if err := q.ResetCell(x, y); err != nil {
					return nil, "", err
				}
				q.Properize()

				if q.IsMeaningless() {
					continue
				}

				cnt, err := g.countSolutions(ctx, q)
				if err != nil {
					return nil, "", err
				}

				if cnt == prevCnt {
					p = q
					deleted = true
				}
			}
		}

		if !deleted {
			return p, prevCnt, nil
		}
	}
}

// countSolutions builds a fresh ZDD over p's current edge list and
// returns its decimal-string cardinality. Every call is a full rebuild:
// p's graph and frontier structure change with every cell edit, so there
// is no sub-diagram to reuse across calls.
func (g *Generator) countSolutions(ctx context.Context, p *board.Board) (string, error) {
	g.nCalls++

	spec, err := ddspec.New(p)
	if err != nil {
		return "", fmt.Errorf("generator: countSolutions: %w", err)
	}

	builder := zdd.NewBuilder[[]ddspec.NState](ddspec.NewStateSpec(spec))
	if err := builder.Build(ctx); err != nil {
		return "", fmt.Errorf("generator: countSolutions: %w", err)
	}

	return builder.Cardinality(), nil
}

// getMeaningfullAddition returns every (x,y,color,direction) choice that,
// applied to an otherwise-None cell of p, keeps the board meaningful and
// connected.
func getMeaningfullAddition(p *board.Board) []cellChoice {
	q := p.Clone()
	var choices []cellChoice

	cols := [2]board.Color{board.White, board.Black}

	for x := 1; x <= p.Width(); x++ {
		for y := 1; y <= p.Height(); y++ {
			if p.ColorXY(x, y) == board.White || p.ColorXY(x, y) == board.Black {
				continue
			}

			for _, col := range cols {
				for j := 0; j < 5; j++ {
					dir := board.Direction(j)

					if err := q.SetCell(x, y, col, dir); err != nil {
						continue
					}
					q.Properize()

					if !q.IsMeaningless() && q.IsConnected() {
						choices = append(choices, cellChoice{x: x, y: y, col: col, dir: dir})
					}

					_ = q.ResetCell(x, y)
					q.Properize()
				}
			}
		}
	}

	return choices
}
