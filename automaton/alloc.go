package automaton

import "sync"

// Pool is an opaque handle to a named, fixed-element-size allocation pool,
// created once at process lifetime (spec.md §5).
type Pool interface {
	// Get returns a zeroed *State, either freshly allocated or recycled.
	Get() *State
	// Put returns a *State to the pool for reuse. The state must not be
	// referenced by any live FA afterwards.
	Put(*State)
}

// Allocator routes every state allocation through a pluggable pool
// interface, per spec.md §5's {create-pool, alloc, free} contract.
type Allocator interface {
	// CreatePool registers (or returns an existing) named pool. Pool
	// handles are opaque and live for the process's lifetime.
	CreatePool(name string) Pool
}

// syncPoolAllocator is the default Allocator. Go's garbage collector makes
// a literal malloc/calloc/free arena an anti-pattern, so pools here are
// backed by sync.Pool slabs of *State, the same pattern the teacher repo
// uses for its per-search PikeVM/backtracker pooling (see
// meta.searchStatePool, itself following stdlib regexp's convention of
// pooling scratch engine state across concurrent callers).
type syncPoolAllocator struct {
	mu    sync.Mutex
	pools map[string]*statePool
}

type statePool struct {
	pool sync.Pool
}

func (p *statePool) Get() *State {
	s := p.pool.Get().(*State)
	*s = State{}
	return s
}

func (p *statePool) Put(s *State) {
	p.pool.Put(s)
}

var defaultAllocator = &syncPoolAllocator{pools: make(map[string]*statePool)}

// DefaultAllocator returns the process-wide default Allocator. It ignores
// the "fixed element size" parameter from spec.md §5 since Go's sync.Pool
// already manages per-type slabs; every pool here allocates *State.
func DefaultAllocator() Allocator { return defaultAllocator }

// CreatePool registers name the first time it is seen and returns its pool.
func (a *syncPoolAllocator) CreatePool(name string) Pool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if p, ok := a.pools[name]; ok {
		return p
	}
	p := &statePool{pool: sync.Pool{New: func() interface{} { return &State{} }}}
	a.pools[name] = p
	return p
}
