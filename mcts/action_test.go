package mcts

import (
	"math"
	"testing"

	"github.com/elkasimi/codecup-box/box"
)

func TestNewActionInfoStartsAtK0(t *testing.T) {
	a := newActionInfo(box.CenterTileInfo)
	if a.K != k0 {
		t.Fatalf("K = %v, want %v", a.K, k0)
	}
	if a.TileInfo != box.CenterTileInfo {
		t.Fatal("TileInfo not set from newActionInfo's argument")
	}
}

func TestActionInfoUpdateTracksMean(t *testing.T) {
	a := newActionInfo(box.CenterTileInfo)
	for _, v := range []float64{1, 1, 1} {
		a.Update(v)
	}
	if a.Visits != 3 {
		t.Fatalf("Visits = %d, want 3", a.Visits)
	}
	if a.Value != 1 {
		t.Fatalf("Value = %v, want 1", a.Value)
	}
	// Zero variance should pull K below its starting value.
	if a.K >= k0 {
		t.Fatalf("K = %v, want it to shrink below k0=%v with zero-variance updates", a.K, k0)
	}
}

func TestActionInfoUpdateOnZeroTwoFour(t *testing.T) {
	a := newActionInfo(box.CenterTileInfo)
	for _, v := range []float64{0, 2, 4} {
		a.Update(v)
	}
	if a.Visits != 3 {
		t.Fatalf("Visits = %d, want 3", a.Visits)
	}
	if got, want := a.Value, 2.0; got != want {
		t.Fatalf("Value = %v, want %v", got, want)
	}
	if got, want := a.ValueSquares, 8.0; math.Abs(got-want) > 1e-9 {
		t.Fatalf("ValueSquares = %v, want %v", got, want)
	}
	if got, want := a.K, math.Sqrt((8.0+k0sqr)/3.0); math.Abs(got-want) > 1e-9 {
		t.Fatalf("K = %v, want %v", got, want)
	}
}
