package box

import "github.com/elkasimi/codecup-box/rng"

var (
	zobristColors  [TotalDots][MaxColors]uint64
	zobristTiles   [TilesPermutationsCount]uint64
	zobristPlayer1 uint64
	zobristPlayer2 uint64
)

func init() {
	g := rng.Strong()
	for dot := 0; dot < TotalDots; dot++ {
		for c := 0; c < MaxColors; c++ {
			zobristColors[dot][c] = g.Uint64()
		}
	}
	for i := 0; i < TilesPermutationsCount; i++ {
		zobristTiles[i] = g.Uint64()
	}
	zobristPlayer1 = g.Uint64()
	zobristPlayer2 = g.Uint64()
}

// Info is the transposition-table key: everything about a Position
// that determines legal continuations and score, minus the raw dot
// colors. Two positions with equal Info are interchangeable for
// search purposes even if reached via different tile orders.
type Info struct {
	Columns   [MaxColors][Cols]Column
	Hash      uint64
	TileIndex int32
	Player    Player
}

// GetHash returns the position's hash including whose turn it is,
// which the raw incremental zobrist_hash does not capture on its own.
func (p *Position) GetHash() uint64 {
	if p.player == Player1 {
		return p.zobristHash ^ zobristPlayer1
	}
	return p.zobristHash ^ zobristPlayer2
}

// ComputeHash recomputes the zobrist hash from scratch; GetHash (the
// incremental zobristHash field plus the player key) should always
// agree with it, and
// tests lean on that to catch incremental-update bugs.
func (p *Position) ComputeHash() uint64 {
	var hash uint64
	for dot := 0; dot < TotalDots; dot++ {
		if c := p.colors[dot]; c != White {
			hash ^= zobristColors[dot][ColorIndex(c)]
		}
	}
	if p.tileIndex != -1 {
		hash ^= zobristTiles[p.tileIndex]
	}
	if p.player == Player1 {
		hash ^= zobristPlayer1
	} else if p.player == Player2 {
		hash ^= zobristPlayer2
	}
	return hash
}

// GetInfo returns the transposition-table key for the current position.
func (p *Position) GetInfo() Info {
	return Info{
		Columns:   p.columns,
		Hash:      p.GetHash(),
		TileIndex: int32(p.tileIndex),
		Player:    p.player,
	}
}
