package mcts

import (
	"math"

	"github.com/elkasimi/codecup-box/bitboard"
	"github.com/elkasimi/codecup-box/box"
)

// useDotColorStats gates the learned-prior bias term in eval; kept as
// a constant rather than a Config field because turning it off is a
// research knob, not something a caller should tune per search.
const useDotColorStats = true

// StateInfo is one node of the search tree: a transposition-table
// entry keyed by box.Info, holding progressive-unpruning state (which
// of the position's legal placements have been expanded into an
// ActionInfo so far) and per-state visit bookkeeping.
type StateInfo struct {
	UnexpandedTiles bitboard.TileSet
	Actions         []ActionInfo
	Bonus           float64
	Visits          int
	Player          box.Player
}

func newStateInfo(pos *box.Position) *StateInfo {
	return &StateInfo{
		UnexpandedTiles: pos.GetPossibleTilesSet(),
		Player:          pos.Player(),
	}
}

// eval scores an already-expanded action: its running value plus a
// UCB-style exploration term scaled by the action's own learned K,
// plus (when enabled) a decaying dot-color bias that fades out as the
// action accumulates its own real visits.
func (s *StateInfo) eval(action *ActionInfo) float64 {
	e := action.Value + action.K*s.Bonus/sqrtTable[1+action.Visits]
	if useDotColorStats {
		e += action.Bias / float64(1+action.Visits)
	}
	return e
}

// SelectMostVisited returns the action with the most playouts backed
// up through it, the move progressive unpruning has converged on.
func (s *StateInfo) SelectMostVisited() *ActionInfo {
	var most *ActionInfo
	maxVisits := -1
	for i := range s.Actions {
		if s.Actions[i].Visits > maxVisits {
			maxVisits = s.Actions[i].Visits
			most = &s.Actions[i]
		}
	}
	return most
}

// Select expands at most sqrt(visits+1) (capped at 64) unexpanded
// placements — picking, each time, whichever unexpanded tile the
// dot-color prior rates highest — then returns the best-eval action
// among everything expanded so far. This is progressive unpruning:
// the branching factor a state is allowed to explore grows slowly
// with how much search time it has already received.
func (s *StateInfo) Select(pos *box.Position, stats *dotColorStats) *ActionInfo {
	expandedLimit := int(sqrtTable[s.Visits+1])
	if expandedLimit > 64 {
		expandedLimit = 64
	}
	for len(s.Actions) < expandedLimit && s.UnexpandedTiles.Any() {
		var selected *box.TileInfo
		bestValue := -math.MaxFloat64
		s.UnexpandedTiles.ForEach(func(code int) {
			tileInfo := box.AllTilesInfo[code]
			if value := stats.evaluate(pos, tileInfo); value > bestValue {
				bestValue = value
				selected = tileInfo
			}
		})
		s.Actions = append(s.Actions, newActionInfo(selected))
		s.Actions[len(s.Actions)-1].Bias = bestValue
		s.UnexpandedTiles.Clear(selected.Code)
	}

	var best *ActionInfo
	bestValue := -math.MaxFloat64
	for i := range s.Actions {
		if v := s.eval(&s.Actions[i]); v > bestValue {
			bestValue = v
			best = &s.Actions[i]
		}
	}
	return best
}

// Update backs up one playout's score through action and refreshes
// the state's shared exploration bonus.
func (s *StateInfo) Update(action *ActionInfo, score float64) {
	s.Visits++
	action.Update(score)
	s.Bonus = bonusTable[s.Visits]
}

// Consistent reports whether the action with the most visits is also
// the action Select would currently pick — the search's stopping
// condition once the iteration budget alone isn't enough to be sure.
func (s *StateInfo) Consistent(pos *box.Position, stats *dotColorStats) bool {
	return s.SelectMostVisited() == s.Select(pos, stats)
}
