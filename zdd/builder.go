package zdd

import (
	"context"
	"fmt"
	"strconv"
	"sync"
)

// Builder constructs a reduced ZDD from a DDSpec[S] by recursive
// top-down exploration, memoizing on (level, state key) to avoid
// recomputing shared sub-diagrams and on (level, lo, hi) to merge
// structurally identical nodes.
//
// Concurrency: guarded by a single RWMutex, matching graph.Graph's
// locking discipline — Build takes the write lock for the whole
// construction (it is not safe to call Build concurrently with itself
// or with queries), queries after Build take the read lock.
type Builder[S any] struct {
	mu sync.RWMutex

	spec DDSpec[S]
	cfg  *config

	nodes     []node
	nodeMemo  map[string]NodeID
	stateMemo map[string]NodeID

	root  NodeID
	built bool
}

// NewBuilder returns a Builder over spec. Build must be called before
// any query.
func NewBuilder[S any](spec DDSpec[S], opts ...Option) *Builder[S] {
	return &Builder[S]{
		spec:      spec,
		cfg:       newConfig(opts...),
		nodes:     make([]node, 2), // indices 0,1 reserved for Zero,One
		nodeMemo:  make(map[string]NodeID),
		stateMemo: make(map[string]NodeID),
	}
}

// Build runs the top-down construction from spec.Root(). Safe to call
// once; a second call rebuilds from scratch.
func (b *Builder[S]) Build(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nodes = make([]node, 2)
	b.nodeMemo = make(map[string]NodeID)
	b.stateMemo = make(map[string]NodeID)

	state, level := b.spec.Root()
	b.cfg.logger.Debug().Int("level", level).Msg("zdd: build started")

	root, err := b.build(ctx, state, level)
	if err != nil {
		return fmt.Errorf("zdd: build: %w", err)
	}

	b.root = root
	b.built = true
	b.cfg.logger.Debug().Int("nodes", len(b.nodes)-2).Msg("zdd: build finished")

	return nil
}

func (b *Builder[S]) build(ctx context.Context, state S, level int) (NodeID, error) {
	if err := ctx.Err(); err != nil {
		return Zero, err
	}

	stateKey := strconv.Itoa(level) + ":" + b.spec.Key(state)
	if id, ok := b.stateMemo[stateKey]; ok {
		return id, nil
	}

	loState, loCode := b.spec.Child(state, level, 0)
	lo, err := b.resolve(ctx, loState, loCode)
	if err != nil {
		return Zero, err
	}

	hiState, hiCode := b.spec.Child(state, level, 1)
	hi, err := b.resolve(ctx, hiState, hiCode)
	if err != nil {
		return Zero, err
	}

	// Zero-suppression rule: a node whose 1-edge leads nowhere is
	// redundant and is elided in favor of its 0-edge target.
	if hi == Zero {
		b.stateMemo[stateKey] = lo

		return lo, nil
	}

	nodeKey := strconv.Itoa(level) + ":" + strconv.Itoa(int(lo)) + ":" + strconv.Itoa(int(hi))
	if id, ok := b.nodeMemo[nodeKey]; ok {
		b.stateMemo[stateKey] = id

		return id, nil
	}

	id := NodeID(len(b.nodes))
	b.nodes = append(b.nodes, node{level: level, lo: lo, hi: hi})
	b.nodeMemo[nodeKey] = id
	b.stateMemo[stateKey] = id

	return id, nil
}

func (b *Builder[S]) resolve(ctx context.Context, state S, code int) (NodeID, error) {
	switch code {
	case 0:
		return Zero, nil
	case -1:
		return One, nil
	default:
		return b.build(ctx, state, code)
	}
}

// Root returns the root node of the built diagram, or Zero (with
// ErrNotBuilt) before Build has run.
func (b *Builder[S]) Root() (NodeID, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.built {
		return Zero, ErrNotBuilt
	}

	return b.root, nil
}

// Size returns the number of non-terminal nodes in the built diagram.
func (b *Builder[S]) Size() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.nodes) - 2
}
