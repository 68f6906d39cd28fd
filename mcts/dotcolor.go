package mcts

import "github.com/elkasimi/codecup-box/box"

// dotColorStats is the learned prior used to pick which of a state's
// unexpanded placements to try next: one running mean per (dot,
// color) pair, updated from every playout's final score regardless
// of which state or action produced it. It is scoped to a single
// Searcher rather than kept as process-global state, so that two
// searches (e.g. one per bot in a local match) never cross-pollinate.
type dotColorStats struct {
	stats [box.TotalDots * box.MaxColors]Stats
}

func dotColorCode(dot int, color box.Color) int {
	return dot + box.TotalDots*box.ColorIndex(color)
}

// update folds a playout's score into every (dot, color) pair it
// touched, oriented so that player 1's perspective is always positive.
func (d *dotColorStats) update(dot int, color box.Color, player box.Player, value float64) {
	v := value
	if player != box.Player1 {
		v = -v
	}
	d.stats[dotColorCode(dot, color)].Update(v)
}

// evaluate estimates how good tileInfo looks under the current
// position's dealt tile, purely from the learned per-dot-color means,
// without expanding it into a full ActionInfo.
func (d *dotColorStats) evaluate(pos *box.Position, tileInfo *box.TileInfo) float64 {
	tile := pos.Tile()
	sum := 0.0
	for i, pair := range tileInfo.Siblings {
		color := box.Color(tile[i])
		for _, dot := range pair {
			sum += d.stats[dotColorCode(dot, color)].Value
		}
	}
	eval := sum / 12.0
	if pos.Player() != box.Player1 {
		eval = -eval
	}
	return eval
}

func (d *dotColorStats) reset() {
	*d = dotColorStats{}
}
