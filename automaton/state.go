package automaton

// StateID is a stable index of a state within its owning FA's arena.
type StateID uint32

// InvalidState marks the absence of a state reference.
const InvalidState StateID = 0xFFFFFFFF

// Flags is a bitset carried on every state.
type Flags uint8

const (
	// FlagAccepting marks a state as an accepting (match) state.
	FlagAccepting Flags = 1 << iota

	// FlagMarked is a transient flag for graph algorithms. None of this
	// module's algorithms set it (RemoveUnreachable tracks visited states
	// in a sparse set, Clone in the workspace slot). It must not be relied
	// upon outside the algorithm that sets it.
	FlagMarked
)

// WorkspaceKind tags which variant of State.workspace is currently live.
// The workspace slot is single-writer: only one graph algorithm may use it
// at a time, and algorithms must not nest uses (spec.md §9).
type WorkspaceKind uint8

const (
	// WorkspaceNone indicates the workspace slot is unused.
	WorkspaceNone WorkspaceKind = iota
	// WorkspaceCloneTwin holds the freshly created twin StateID during Clone.
	WorkspaceCloneTwin
	// WorkspaceSubsetSet tags a state-set back-pointer for subset
	// construction. determinize keeps its state-set mapping in a
	// stateset.Table and never sets this kind.
	WorkspaceSubsetSet
	// WorkspaceGroup holds a back-pointer to the owning partition group during minimize.
	WorkspaceGroup
	// WorkspaceSimIndex tags an assigned simulator output index.
	// sim.BuildDense assigns indices through a map and never sets this kind.
	WorkspaceSimIndex
)

// Workspace is the transient, single-writer scratch slot carried by every
// state. Reimplementations of the spec either keep this slot (as here, a
// tagged variant) or pass a side-table keyed by state index; this module
// keeps it on State directly since Go states are already a flat arena.
type Workspace struct {
	Kind  WorkspaceKind
	Value uint32 // interpretation depends on Kind; holds StateID/GroupID/index
}

// Reset clears the workspace slot back to unused.
func (w *Workspace) Reset() {
	w.Kind = WorkspaceNone
	w.Value = 0
}

// Transition is an outgoing edge owned by its source state. Within a state,
// transitions are kept sorted ascending by SymFrom; for any two non-epsilon
// transitions to the same Dest, their ranges are disjoint and non-adjacent
// (FA.AddTrans enforces this on insertion).
type Transition struct {
	SymFrom Symbol // inclusive lower bound, or Epsilon
	SymTo   Symbol // inclusive upper bound; equal to SymFrom for Epsilon
	Dest    StateID
}

// IsEpsilon reports whether this transition is an epsilon transition.
func (t Transition) IsEpsilon() bool {
	return t.SymFrom == Epsilon
}

// State is a single automaton state, owned by exactly one FA.
type State struct {
	id    StateID
	flags Flags

	// trans holds outgoing transitions sorted ascending by SymFrom.
	trans []Transition

	// Opaque is a caller-supplied tag correlating an accepting state with
	// the pattern that produced it. Only meaningful when Accepting().
	Opaque interface{}

	workspace Workspace
}

// ID returns the state's id within its owning FA.
func (s *State) ID() StateID { return s.id }

// Accepting reports whether this state is an accepting state.
func (s *State) Accepting() bool { return s.flags&FlagAccepting != 0 }

// SetAccepting sets or clears the accepting flag.
func (s *State) SetAccepting(v bool) {
	if v {
		s.flags |= FlagAccepting
	} else {
		s.flags &^= FlagAccepting
	}
}

// Marked reports whether the transient FlagMarked bit is set.
func (s *State) Marked() bool { return s.flags&FlagMarked != 0 }

// SetMarked sets or clears the transient FlagMarked bit.
func (s *State) SetMarked(v bool) {
	if v {
		s.flags |= FlagMarked
	} else {
		s.flags &^= FlagMarked
	}
}

// Transitions returns the state's outgoing transitions, sorted ascending by
// SymFrom. The returned slice must not be mutated by callers; use
// FA.AddTrans/FA.RemoveTrans to modify.
func (s *State) Transitions() []Transition { return s.trans }

// Workspace returns a pointer to the state's transient scratch slot.
func (s *State) Workspace() *Workspace { return &s.workspace }

// removeAllTrans destroys every outgoing transition of s.
func (s *State) removeAllTrans() {
	s.trans = s.trans[:0]
}
