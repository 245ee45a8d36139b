package ddspec_test

import (
	"testing"

	"github.com/nagare-zdd/nagare/board"
	"github.com/nagare-zdd/nagare/ddspec"
	"github.com/stretchr/testify/require"
)

// countAccepting brute-force enumerates every take/skip combination from
// spec's root, returning the number of combinations that reach the
// accepting terminal. Only usable for small edge counts; it does not use
// package zdd, so ddspec's transition function is tested against
// spec.md's end-to-end scenarios directly.
func countAccepting(t *testing.T, spec *ddspec.Spec) int {
	t.Helper()

	width := spec.Width()
	count := 0

	var walk func(state []ddspec.NState, level int)
	walk = func(state []ddspec.NState, level int) {
		for branch := 0; branch <= 1; branch++ {
			s2 := make([]ddspec.NState, width)
			copy(s2, state)

			switch next := spec.Child(s2, level, branch); {
			case next == 0:
				continue
			case next == -1:
				count++
			default:
				walk(s2, next)
			}
		}
	}

	state := make([]ddspec.NState, width)
	level := spec.Root(state)
	walk(state, level)

	return count
}

// S1: a 2x2 board with no cells set has exactly one accepting path: the
// unique 4-edge boundary cycle.
func TestSpec_TwoByTwoCardinalityOne(t *testing.T) {
	b, err := board.New(2, 2)
	require.NoError(t, err)
	b.Properize()

	spec, err := ddspec.New(b)
	require.NoError(t, err)

	require.Equal(t, 1, countAccepting(t, spec))
}

// Removing one corner of the 2x2 board's unique cycle (by making it
// Black, hence an invalid node) leaves no cycle at all: cardinality 0.
func TestSpec_TwoByTwoWithBlackCornerCardinalityZero(t *testing.T) {
	b, err := board.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, b.SetCell(1, 1, board.Black, board.NoDirection))
	b.Properize()

	spec, err := ddspec.New(b)
	require.NoError(t, err)

	require.Equal(t, 0, countAccepting(t, spec))
}

func TestSpec_RootInitializesWidthSlots(t *testing.T) {
	b, err := board.New(2, 2)
	require.NoError(t, err)
	b.Properize()

	spec, err := ddspec.New(b)
	require.NoError(t, err)

	state := make([]ddspec.NState, spec.Width())
	level := spec.Root(state)

	require.Equal(t, 4, level) // |E| for the 2x2 boundary cycle
	for _, st := range state {
		require.Equal(t, 0, st.M)
		require.False(t, st.U)
		require.Equal(t, board.NoDirection, st.N)
	}
}
