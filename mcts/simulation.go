package mcts

import "github.com/elkasimi/codecup-box/box"

type transition struct {
	state  *StateInfo
	action *ActionInfo
}

// simulation runs one MCTS iteration: descend the tree by tree policy
// until a never-before-seen position is reached (simulateTree),
// finish the game out with uniform-random placements
// (simulateDefault), then back the resulting score up through every
// state visited along the way (backup).
type simulation struct {
	search      *Searcher
	pos         *box.Position
	player      box.Player
	color       box.Color
	transitions []transition
}

func newSimulation(s *Searcher, pos *box.Position, color box.Color) *simulation {
	return &simulation{
		search: s,
		pos:    pos.Clone(),
		player: pos.Player(),
		color:  color,
	}
}

func (sim *simulation) next(state *StateInfo) {
	action := state.Select(sim.pos, &sim.search.dotColor)
	sim.pos.DoTile(action.TileInfo)
	sim.pos.PlayChanceMove(sim.search.rng)
	sim.transitions = append(sim.transitions, transition{state, action})
}

func (sim *simulation) simulateTree() {
	for !sim.pos.EndGame() {
		state, created := sim.search.store.TryCreateState(sim.pos)
		sim.next(state)
		if created {
			break
		}
	}
}

func (sim *simulation) simulateDefault() {
	for {
		tileInfo := sim.pos.GetRandomMove(sim.search.rng)
		if tileInfo == nil {
			break
		}
		sim.pos.DoTile(tileInfo)
		sim.pos.PlayChanceMove(sim.search.rng)
	}
}

func (sim *simulation) backup() {
	score := sim.pos.GetExpectedScore(sim.color)
	for _, t := range sim.transitions {
		adjusted := score
		if t.state.Player != sim.player {
			adjusted = -score
		}
		t.state.Update(t.action, adjusted)
	}
	if useDotColorStats {
		for dot := 0; dot < box.TotalDots; dot++ {
			if c := sim.pos.Colors(dot); c != box.White {
				sim.search.dotColor.update(dot, c, sim.player, score)
			}
		}
	}
}

func (sim *simulation) run() {
	sim.simulateTree()
	if len(sim.transitions) > sim.search.maxLevel {
		sim.search.maxLevel = len(sim.transitions)
	}
	sim.simulateDefault()
	sim.backup()
}

// warmup plays one uniform-random game out from the root position
// before search starts, seeding dotColorStats with a rough prior so
// the very first tree expansions aren't choosing blind.
type warmup struct {
	pos    *box.Position
	player box.Player
	color  box.Color
}

func newWarmup(pos *box.Position, color box.Color) *warmup {
	return &warmup{pos: pos.Clone(), player: pos.Player(), color: color}
}

func (w *warmup) run(s *Searcher) {
	for {
		tileInfo := w.pos.GetRandomMove(s.rng)
		if tileInfo == nil {
			break
		}
		w.pos.DoTile(tileInfo)
		w.pos.PlayChanceMove(s.rng)
	}
	score := w.pos.GetExpectedScore(w.color)
	for dot := 0; dot < box.TotalDots; dot++ {
		if c := w.pos.Colors(dot); c != box.White {
			s.dotColor.update(dot, c, w.player, score)
		}
	}
}
