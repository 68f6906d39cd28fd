package mcts

import "testing"

func TestStatsUpdateRunningMean(t *testing.T) {
	var s Stats
	for _, v := range []float64{1, 2, 3, 4, 5} {
		s.Update(v)
	}
	if s.Visits != 5 {
		t.Fatalf("Visits = %d, want 5", s.Visits)
	}
	if s.Value != 3 {
		t.Fatalf("Value = %v, want 3", s.Value)
	}
}

func TestStatsUpdateRunningMeanOnZeroTwoFour(t *testing.T) {
	var s Stats
	for _, v := range []float64{0, 2, 4} {
		s.Update(v)
	}
	if s.Visits != 3 {
		t.Fatalf("Visits = %d, want 3", s.Visits)
	}
	if got, want := s.Value, 2.0; got != want {
		t.Fatalf("Value = %v, want %v", got, want)
	}
}

func TestStatsZeroValueIsUsable(t *testing.T) {
	var s Stats
	s.Update(10)
	if s.Visits != 1 || s.Value != 10 {
		t.Fatalf("after one update: visits=%d value=%v, want 1, 10", s.Visits, s.Value)
	}
}
