// Package mcts implements the transposition-table-backed Monte Carlo
// tree search that drives move selection: progressive unpruning of a
// state's legal placements, a learned dot-color prior to seed newly
// expanded actions, and uniform-random playouts once the tree is
// exhausted.
package mcts

// Stats is a Welford running mean over however many observations have
// updated it; visits doubles as the sample count and the denominator.
type Stats struct {
	Value  float64
	Visits int
}

// Update folds in one more observation of v.
func (s *Stats) Update(v float64) {
	s.Visits++
	delta := v - s.Value
	s.Value += delta / float64(s.Visits)
}
