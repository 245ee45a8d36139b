package ddspec

import "encoding/binary"

// StateSpec adapts Spec's in-place pod-array transition function to
// package zdd's value-returning DDSpec[S] contract: Root and Child
// allocate and return a fresh []NState per call instead of mutating a
// caller-owned array, so the generic engine can explore a state's two
// branches independently without one call's mutation leaking into the
// other.
type StateSpec struct {
	spec *Spec
}

// NewStateSpec wraps spec for consumption by zdd.NewBuilder.
func NewStateSpec(spec *Spec) StateSpec {
	return StateSpec{spec: spec}
}

// Width returns the wrapped Spec's frontier width.
func (s StateSpec) Width() int { return s.spec.Width() }

// Root returns a freshly allocated, initialized state and the top level.
func (s StateSpec) Root() ([]NState, int) {
	state := make([]NState, s.spec.Width())
	level := s.spec.Root(state)

	return state, level
}

// Child clones state, applies branch at level to the clone, and returns
// the clone alongside the transition's result code.
func (s StateSpec) Child(state []NState, level, branch int) ([]NState, int) {
	next := make([]NState, len(state))
	copy(next, state)

	return next, s.spec.Child(next, level, branch)
}

// Key encodes state as a fixed-width byte string: 4 bytes of mate, 1
// byte of upstream flag, 1 byte of direction, per slot. Two states with
// the same Key are interchangeable for hash-consing purposes.
func (s StateSpec) Key(state []NState) string {
	buf := make([]byte, 0, len(state)*6)
	for _, st := range state {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(st.M))
		if st.U {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
		buf = append(buf, byte(st.N))
	}

	return string(buf)
}
