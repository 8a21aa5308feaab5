package stateset

import "github.com/coregx/fa/automaton"

// bucketCount is the fixed seed bucket count for the identity hash table
// (spec.md §4.2: "hash table (seed 199 buckets) keyed by sorted state
// vectors mapping to DFA states"). 199 is prime, which spreads the typical
// small-to-medium state-set hashes the teacher's dfa/lazy.Cache sees in
// practice.
const bucketCount = 199

type entry struct {
	key      *Set
	dfaState automaton.StateID
}

// Table maps state-set identity (sorted member vector) to the DFA state
// that was created for it, so subset construction's worklist can detect
// "this NFA-set was already seen" in amortized O(1).
//
// Grounded on dfa/lazy/state.go's StateKey-to-StateID map in the teacher
// (a sorted-vector identity keying a lazily created DFA state), realized
// here as an explicit fixed-bucket hash table matching spec.md §4.2's
// "seed 199 buckets" wording rather than Go's built-in map, so the bucket
// count and collision-chain behavior are spec-visible and testable.
type Table struct {
	buckets [][]entry
}

// NewTable creates an empty table with bucketCount buckets.
func NewTable() *Table {
	return &Table{buckets: make([][]entry, bucketCount)}
}

func hashStates(states []automaton.StateID) uint32 {
	var h uint32 = 2166136261 // FNV-1a offset basis
	for _, id := range states {
		h ^= uint32(id)
		h *= 16777619
	}
	return h
}

// Lookup returns the DFA state registered for key, if any.
func (t *Table) Lookup(key *Set) (automaton.StateID, bool) {
	idx := hashStates(key.states) % bucketCount
	for _, e := range t.buckets[idx] {
		if e.key.Equal(key) {
			return e.dfaState, true
		}
	}
	return automaton.InvalidState, false
}

// Insert registers key as mapping to dfaState. Callers must ensure key is
// not already present (subset construction always checks Lookup first).
func (t *Table) Insert(key *Set, dfaState automaton.StateID) {
	idx := hashStates(key.states) % bucketCount
	t.buckets[idx] = append(t.buckets[idx], entry{key: key, dfaState: dfaState})
}
