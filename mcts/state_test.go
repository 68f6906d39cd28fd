package mcts

import (
	"testing"

	"github.com/elkasimi/codecup-box/box"
)

func TestNewStateInfoCapturesPlayerAndUnexpanded(t *testing.T) {
	pos, err := box.New("Hh123456h")
	if err != nil {
		t.Fatal(err)
	}
	pos.UpdateCandidates()
	s := newStateInfo(pos)
	if s.Player != box.Player1 {
		t.Fatalf("Player = %c, want %c", s.Player, box.Player1)
	}
	if !s.UnexpandedTiles.Any() {
		t.Fatal("expected at least one possible tile right after the opening deal")
	}
}

func TestSelectExpandsAndReturnsAnAction(t *testing.T) {
	pos, err := box.New("Hh123456h")
	if err != nil {
		t.Fatal(err)
	}
	pos.UpdateCandidates()
	s := newStateInfo(pos)
	var stats dotColorStats

	action := s.Select(pos, &stats)
	if action == nil {
		t.Fatal("Select returned nil on a position with legal moves")
	}
	if len(s.Actions) == 0 {
		t.Fatal("Select should have expanded at least one action")
	}
}

func TestSelectMostVisitedPicksHighestVisits(t *testing.T) {
	pos, err := box.New("Hh123456h")
	if err != nil {
		t.Fatal(err)
	}
	pos.UpdateCandidates()
	s := newStateInfo(pos)
	var stats dotColorStats
	// Three prior visits raise the expansion limit to sqrt(4) = 2.
	s.Visits = 3
	s.Select(pos, &stats)
	if len(s.Actions) < 2 {
		t.Skip("need at least two expanded actions for this check")
	}
	s.Actions[0].Visits = 5
	s.Actions[1].Visits = 50
	most := s.SelectMostVisited()
	if most != &s.Actions[1] {
		t.Fatalf("SelectMostVisited returned the wrong action")
	}
}

func TestStateUpdateIncrementsVisitsAndBonus(t *testing.T) {
	pos, err := box.New("Hh123456h")
	if err != nil {
		t.Fatal(err)
	}
	pos.UpdateCandidates()
	s := newStateInfo(pos)
	var stats dotColorStats
	action := s.Select(pos, &stats)
	s.Update(action, 1.0)
	if s.Visits != 1 {
		t.Fatalf("Visits = %d, want 1", s.Visits)
	}
	if s.Bonus != bonusTable[1] {
		t.Fatalf("Bonus = %v, want bonusTable[1] = %v", s.Bonus, bonusTable[1])
	}
	if action.Visits != 1 {
		t.Fatalf("action.Visits = %d, want 1", action.Visits)
	}
}
