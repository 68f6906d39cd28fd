package mcts

import (
	"math"

	"github.com/elkasimi/codecup-box/box"
)

const (
	k0    = 10.0
	k0sqr = k0 * k0
)

// ActionInfo tracks one expanded placement out of a StateInfo's
// action set: its running value, a Welford-style running variance
// folded into K (the UCB exploration coefficient for this action
// specifically, rather than a single constant shared by the whole
// tree), and the dot-color bias it was seeded with when expanded.
type ActionInfo struct {
	TileInfo     *box.TileInfo
	Value        float64
	ValueSquares float64
	K            float64
	Bias         float64
	Visits       int
}

func newActionInfo(info *box.TileInfo) ActionInfo {
	return ActionInfo{TileInfo: info, K: k0}
}

// Update folds in one playout's backed-up score and recomputes K from
// the accumulated variance, the way the position's own learned weights
// tighten exploration on actions whose outcomes have stopped swinging.
func (a *ActionInfo) Update(v float64) {
	a.Visits++
	delta := v - a.Value
	a.Value += delta / float64(a.Visits)
	a.ValueSquares += delta * (v - a.Value)
	a.K = math.Sqrt((a.ValueSquares + k0sqr) / float64(a.Visits))
}
