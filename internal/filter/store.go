package filter

// Store owns the applied and pending filter states. All deferred categories
// are edited through Pending and only take effect on Commit; the sort key is
// immediate and bypasses the pending step entirely.
type Store struct {
	current State
	pending State
}

// NewStore returns a store with both states at the documented defaults.
func NewStore() *Store {
	s := NewState()
	return &Store{
		current: s,
		pending: s.Clone(),
	}
}

// Current returns the applied state that drives visibility and sort.
func (st *Store) Current() State {
	return st.current
}

// Pending returns the edit target. Mutating it never changes what is visible.
func (st *Store) Pending() *State {
	return &st.pending
}

// Commit applies the pending edits. This is the only deferred-category
// operation that may change the visible set.
func (st *Store) Commit() {
	st.current = st.pending.Clone()
}

// Discard throws away pending edits, resetting them to the applied state.
func (st *Store) Discard() {
	st.pending = st.current.Clone()
}

// SetSort assigns the sort key immediately, without a commit step. Both
// states are updated so a later Commit cannot silently revert the key.
func (st *Store) SetSort(key SortKey) {
	st.current.Sort = key
	st.pending.Sort = key
}

// Replace installs a whole state (e.g. restored from a share link) as both
// the applied and pending state.
func (st *Store) Replace(s State) {
	st.current = s.Clone()
	st.pending = s.Clone()
}
