package automaton

// FA is an ownership container for states: destroying it (letting it be
// garbage collected) destroys every state it owns. States are held in
// insertion order for traversal stability (spec.md §3); state ids are
// stable arena indices into states.
type FA struct {
	states []*State
	start  StateID
	pool   Pool

	transCount int
}

// New creates an empty FA with no start state set. alloc governs how the
// FA's states are heap-acquired (spec.md §5's {create-pool, alloc, free}
// contract); a nil alloc uses DefaultAllocator, the sync.Pool-backed path
// the teacher repo's meta.Engine follows for its own per-search state
// (meta/search_state.go's searchStatePool / meta/engine.go's
// getSearchState), applied here to state allocation instead of per-search
// scratch state.
func New(alloc Allocator) *FA {
	if alloc == nil {
		alloc = DefaultAllocator()
	}
	return &FA{start: InvalidState, pool: alloc.CreatePool("automaton.State")}
}

// Start returns the FA's start state id.
func (fa *FA) Start() StateID { return fa.start }

// SetStart sets the FA's start state.
func (fa *FA) SetStart(id StateID) { fa.start = id }

// StateCount returns the number of states owned by fa.
func (fa *FA) StateCount() int { return len(fa.states) }

// TransCount returns the number of transitions across all states (trans_create's
// count_symtrans, including epsilon transitions).
func (fa *FA) TransCount() int { return fa.transCount }

// State returns the state with the given id, or nil if id is out of range.
func (fa *FA) State(id StateID) *State {
	if id == InvalidState || int(id) >= len(fa.states) {
		return nil
	}
	return fa.states[id]
}

// States returns the FA's states in insertion order. The returned slice
// must not be mutated.
func (fa *FA) States() []*State { return fa.states }

// AddState creates a new, non-accepting state with no outgoing transitions
// and returns its id, acquiring the state's backing memory through fa's
// allocator pool (see New) rather than a bare allocation.
func (fa *FA) AddState() StateID {
	id := StateID(len(fa.states))
	s := fa.pool.Get()
	s.id = id
	fa.states = append(fa.states, s)
	return id
}

// SetAcceptingOpaque marks src accepting and attaches opaque to it.
func (fa *FA) SetAcceptingOpaque(src StateID, opaque interface{}) {
	s := fa.State(src)
	if s == nil {
		return
	}
	s.SetAccepting(true)
	s.Opaque = opaque
}

// ForeachAccepting invokes cb for every accepting state's opaque value.
func (fa *FA) ForeachAccepting(cb func(opaque interface{})) {
	for _, s := range fa.states {
		if s.Accepting() {
			cb(s.Opaque)
		}
	}
}

// AddTrans implements trans_create: inserts a transition (sym, dest) from
// src, maintaining the invariants from spec.md §4.1:
//
//   - epsilon transitions are deduplicated per (src, dest) pair and never
//     merged with byte ranges;
//   - non-epsilon transitions to the same dest are merged into the minimal
//     set of disjoint, non-adjacent ranges;
//   - the transition list stays sorted ascending by SymFrom.
//
// AddTrans returns nothing; adding a transition that is already covered
// leaves the list unchanged.
func (fa *FA) AddTrans(src StateID, sym Symbol, dest StateID) {
	s := fa.State(src)
	if s == nil {
		return
	}

	if sym.IsEpsilon() {
		for _, t := range s.trans {
			if t.IsEpsilon() && t.Dest == dest {
				return // already present
			}
		}
		fa.insertSorted(s, Transition{SymFrom: Epsilon, SymTo: Epsilon, Dest: dest})
		fa.transCount++
		return
	}

	// (a) extend upward: an existing range to dest ending at sym-1.
	for i := range s.trans {
		t := &s.trans[i]
		if t.IsEpsilon() || t.Dest != dest {
			continue
		}
		if sym == t.SymTo+1 {
			t.SymTo = sym
			fa.mergeAdjacent(s, i)
			return
		}
		if sym == t.SymFrom-1 {
			t.SymFrom = sym
			fa.mergeAdjacentDown(s, i)
			return
		}
		if sym >= t.SymFrom && sym <= t.SymTo {
			return // already contained
		}
	}

	// (d) insert a fresh single-symbol transition in sorted position.
	fa.insertSorted(s, Transition{SymFrom: sym, SymTo: sym, Dest: dest})
	fa.transCount++
}

// mergeAdjacent folds s.trans[i] with a same-dest transition starting at
// trans[i].SymTo+1, if any, after an upward extension.
func (fa *FA) mergeAdjacent(s *State, i int) {
	t := s.trans[i]
	for j := range s.trans {
		if j == i {
			continue
		}
		u := s.trans[j]
		if u.IsEpsilon() || u.Dest != t.Dest {
			continue
		}
		if u.SymFrom == t.SymTo+1 {
			s.trans[i].SymTo = u.SymTo
			fa.removeAt(s, j)
			return
		}
	}
	fa.resort(s)
}

// mergeAdjacentDown folds s.trans[i] with a same-dest transition ending at
// trans[i].SymFrom-1, if any, after a downward extension.
func (fa *FA) mergeAdjacentDown(s *State, i int) {
	t := s.trans[i]
	for j := range s.trans {
		if j == i {
			continue
		}
		u := s.trans[j]
		if u.IsEpsilon() || u.Dest != t.Dest {
			continue
		}
		if u.SymTo == t.SymFrom-1 {
			s.trans[i].SymFrom = u.SymFrom
			fa.removeAt(s, j)
			return
		}
	}
	fa.resort(s)
}

func (fa *FA) removeAt(s *State, idx int) {
	s.trans = append(s.trans[:idx], s.trans[idx+1:]...)
	fa.transCount--
}

func (fa *FA) insertSorted(s *State, t Transition) {
	i := 0
	for i < len(s.trans) && !s.trans[i].IsEpsilon() && s.trans[i].SymFrom < t.SymFrom {
		i++
	}
	s.trans = append(s.trans, Transition{})
	copy(s.trans[i+1:], s.trans[i:])
	s.trans[i] = t
}

func (fa *FA) resort(s *State) {
	for i := 1; i < len(s.trans); i++ {
		for j := i; j > 0 && !s.trans[j].IsEpsilon() && !s.trans[j-1].IsEpsilon() &&
			s.trans[j].SymFrom < s.trans[j-1].SymFrom; j-- {
			s.trans[j], s.trans[j-1] = s.trans[j-1], s.trans[j]
		}
	}
}

// RemoveTrans destroys every outgoing transition of src.
func (fa *FA) RemoveTrans(src StateID) {
	s := fa.State(src)
	if s == nil {
		return
	}
	fa.transCount -= len(s.trans)
	s.removeAllTrans()
}
