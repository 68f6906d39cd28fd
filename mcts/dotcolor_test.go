package mcts

import (
	"testing"

	"github.com/elkasimi/codecup-box/box"
)

func TestDotColorCodeIsUniquePerDotAndColor(t *testing.T) {
	seen := map[int]bool{}
	for dot := 0; dot < box.TotalDots; dot += 37 {
		for c := byte('1'); c <= '6'; c++ {
			code := dotColorCode(dot, box.Color(c))
			if seen[code] {
				t.Fatalf("duplicate code %d for dot=%d color=%c", code, dot, c)
			}
			seen[code] = true
		}
	}
}

func TestDotColorUpdateFlipsSignForPlayer2(t *testing.T) {
	var stats dotColorStats
	stats.update(0, '1', box.Player1, 10)
	stats.update(1, '1', box.Player2, 10)
	if got := stats.stats[dotColorCode(0, '1')].Value; got != 10 {
		t.Fatalf("player 1 update = %v, want 10", got)
	}
	if got := stats.stats[dotColorCode(1, '1')].Value; got != -10 {
		t.Fatalf("player 2 update = %v, want -10", got)
	}
}

func TestDotColorResetClearsStats(t *testing.T) {
	var stats dotColorStats
	stats.update(5, '2', box.Player1, 3)
	stats.reset()
	for i, s := range stats.stats {
		if s.Visits != 0 || s.Value != 0 {
			t.Fatalf("stats[%d] not cleared: %+v", i, s)
		}
	}
}

func TestDotColorEvaluateUsesPositionsTile(t *testing.T) {
	pos, err := box.New("Hh123456h")
	if err != nil {
		t.Fatal(err)
	}
	var stats dotColorStats
	tileInfo := box.CenterTileInfo
	for i, pair := range tileInfo.Siblings {
		color := box.Color(pos.Tile()[i])
		for _, dot := range pair {
			stats.update(dot, color, box.Player1, 12)
		}
	}
	if got := stats.evaluate(pos, tileInfo); got <= 0 {
		t.Fatalf("evaluate() = %v, want positive after positive updates for player 1", got)
	}
}
