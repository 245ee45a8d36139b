package zdd

import (
	"iter"
	"math/big"
)

// Cardinality returns the number of accepting variable assignments
// (here: valid Nagareru cycles) as a decimal string of arbitrary
// precision, since the true count can exceed 64 bits on larger boards.
// Returns "0" before Build has run.
func (b *Builder[S]) Cardinality() string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.built {
		return "0"
	}

	memo := make(map[NodeID]*big.Int, len(b.nodes))

	var count func(id NodeID) *big.Int
	count = func(id NodeID) *big.Int {
		switch id {
		case Zero:
			return big.NewInt(0)
		case One:
			return big.NewInt(1)
		}
		if v, ok := memo[id]; ok {
			return v
		}

		n := b.nodes[id]
		v := new(big.Int).Add(count(n.lo), count(n.hi))
		memo[id] = v

		return v
	}

	return count(b.root).String()
}

// Solutions returns an iterator over every accepting variable
// assignment, each given as the levels whose edge was taken (branch=1)
// on that path from root to the 1-terminal, in root-first (descending)
// order.
// Yields nothing before Build has run.
func (b *Builder[S]) Solutions() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		b.mu.RLock()
		defer b.mu.RUnlock()

		if !b.built {
			return
		}

		var walk func(id NodeID, path []int) bool
		walk = func(id NodeID, path []int) bool {
			switch id {
			case Zero:
				return true
			case One:
				return yield(path)
			}

			n := b.nodes[id]
			if !walk(n.lo, path) {
				return false
			}

			hiPath := make([]int, len(path)+1)
			copy(hiPath, path)
			hiPath[len(path)] = n.level

			return walk(n.hi, hiPath)
		}

		walk(b.root, nil)
	}
}
