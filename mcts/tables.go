package mcts

import "math"

// tableSize bounds how many visits a single state or action can ever
// accumulate within one search; MAX_ITERATIONS plus the consistency
// top-up stays well under it.
const tableSize = 200_000

// bonusTable[v] = sqrt(log(1+v)), the per-state exploration bonus
// StateInfo.Update refreshes itself from. sqrtTable[v] = sqrt(v), used
// by StateInfo.eval to scale an action's exploration term by its visit
// count and by StateInfo.Select to bound how many actions it expands.
// Both are precomputed once at package init instead of calling
// math.Sqrt/math.Log on every select(), since select() runs in the
// hottest loop in the whole search.
var (
	bonusTable [tableSize]float64
	sqrtTable  [tableSize]float64
)

func init() {
	for v := 0; v < tableSize; v++ {
		bonusTable[v] = math.Sqrt(math.Log(1 + float64(v)))
		sqrtTable[v] = math.Sqrt(float64(v))
	}
}
