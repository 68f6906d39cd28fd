package mcts

import "github.com/elkasimi/codecup-box/box"

// StateStore is the search's transposition table: every distinct
// position reached during the current search gets exactly one
// StateInfo, shared by every simulation that transposes into it.
type StateStore struct {
	q map[box.Info]*StateInfo
}

// NewStateStore returns an empty store sized for an expected number
// of distinct states, to avoid rehashing during the hot search loop.
func NewStateStore(sizeHint int) *StateStore {
	return &StateStore{q: make(map[box.Info]*StateInfo, sizeHint)}
}

// TryCreateState returns the StateInfo for pos, creating and
// inserting one if this is the first time this exact position has
// been reached. created reports which case happened.
func (st *StateStore) TryCreateState(pos *box.Position) (info *StateInfo, created bool) {
	key := pos.GetInfo()
	if info, ok := st.q[key]; ok {
		return info, false
	}
	info = newStateInfo(pos)
	st.q[key] = info
	return info, true
}

// Get returns the StateInfo for pos, or nil if pos has never been
// reached in this search.
func (st *StateStore) Get(pos *box.Position) *StateInfo {
	return st.q[pos.GetInfo()]
}

// Len reports how many distinct states have been stored.
func (st *StateStore) Len() int { return len(st.q) }

// Clear drops every stored state, so the map can be reused (or simply
// garbage collected in one step) between best-move calls.
func (st *StateStore) Clear() {
	st.q = nil
}
