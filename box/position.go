package box

import (
	"github.com/elkasimi/codecup-box/bitboard"
	"github.com/elkasimi/codecup-box/rng"
)

// Column is a dense bitset of the (at most 16) rows a color occupies
// in one board column, used by scoring to test for in-line dots
// without walking the full dot array.
type Column struct {
	value uint16
}

func (c *Column) Set(row int)   { c.value |= 1 << uint(row) }
func (c *Column) Unset(row int) { c.value &^= 1 << uint(row) }
func (c Column) Test(row int) bool {
	return c.value&(1<<uint(row)) != 0
}
func (c Column) TestBoth(r0, r1 int) bool {
	return c.value&(1<<uint(r0)) != 0 && c.value&(1<<uint(r1)) != 0
}

// Position is a full game state: every dot's color, whose turn it is,
// and the tile currently dealt and waiting to be placed.
type Position struct {
	colors  [TotalDots]Color
	filled  bitboard.Bitboard
	columns [MaxColors][Cols]Column

	tile        Tile
	zobristHash uint64
	tileIndex   int
	turn        int
	player      Player

	candidates []*TileInfo
}

// New starts a position from the opening command string, e.g.
// "Hh123456h": the dealt tile is placed at the board's center before
// either player moves, the way every game is seeded.
func New(s string) (*Position, error) {
	chanceMove, _, err := ParseMoves(s)
	if err != nil {
		return nil, err
	}
	p := &Position{
		tileIndex: -1,
		player:    Player1,
	}
	for i := range p.colors {
		p.colors[i] = White
	}
	p.candidates = make([]*TileInfo, len(AllTilesInfo))
	copy(p.candidates, AllTilesInfo)

	p.DoChanceMove(chanceMove)
	for i := 0; i < TileDots; i++ {
		p.processSiblings(CenterTileInfo, i)
	}
	return p, nil
}

// Turn returns the number of tiles placed so far.
func (p *Position) Turn() int { return p.turn }

// Player returns whose turn it is.
func (p *Position) Player() Player { return p.player }

// Tile returns the currently dealt tile.
func (p *Position) Tile() Tile { return p.tile }

// Colors returns the color at dot, White if the dot is empty.
func (p *Position) Colors(dot int) Color { return p.colors[dot] }

func (p *Position) updateTileIndex(index int) {
	if p.tileIndex == index {
		return
	}
	if p.tileIndex != -1 {
		p.zobristHash ^= zobristTiles[p.tileIndex]
	}
	p.tile = TilesPermutations[index]
	p.zobristHash ^= zobristTiles[index]
	p.tileIndex = index
}

// PlayChanceMove draws a uniformly random tile ordering, the way a
// new tile is dealt each turn.
func (p *Position) PlayChanceMove(gen *rng.Fast) {
	index := gen.LessThan(TilesPermutationsCount)
	p.updateTileIndex(index)
}

// DoChanceMove deals an explicit tile ordering, e.g. one received
// over the wire rather than drawn locally.
func (p *Position) DoChanceMove(move ChanceMove) {
	index := FindTileIndex(move)
	p.updateTileIndex(index)
}

// Empty reports whether dot is uncolored.
func (p *Position) Empty(dot int) bool { return !p.filled.Test(dot) }

// PossibleMove reports whether placing tileInfo right now is legal:
// it must either overlap already-filled dots within the allowed
// overlap budget, or touch at least one filled dot to extend the
// drawing outward from the seeded center tile.
func (p *Position) PossibleMove(tileInfo *TileInfo) bool {
	if overlap := tileInfo.CountMatches(p.filled); overlap > 0 {
		return overlap <= MaxOverlaps
	}
	return tileInfo.NeighborTo(p.filled)
}

// PossibleMoveAt is PossibleMove for a (dot, orientation) pair.
func (p *Position) PossibleMoveAt(dot int, orientation Orientation) bool {
	var tileInfo *TileInfo
	if orientation == Vertical {
		tileInfo = &VerticalTilesInfo[dot]
	} else {
		tileInfo = &HorizontalTilesInfo[dot]
	}
	return p.PossibleMove(tileInfo)
}

// UpdateCandidates drops placements from the candidate pool that now
// overlap too many filled dots to ever be legal again; candidates
// only shrinks over a game, so this never needs to add entries back.
func (p *Position) UpdateCandidates() {
	candidates := p.candidates
	i, n := 0, len(candidates)
	for i < n {
		tileInfo := candidates[i]
		if tileInfo.CountMatches(p.filled) > MaxOverlaps {
			n--
			candidates[i] = candidates[n]
		} else {
			i++
		}
	}
	p.candidates = candidates[:n]
}

// GetPossibleTiles returns every currently legal placement, pruning
// the candidate pool of placements that can never be legal again.
func (p *Position) GetPossibleTiles() []*TileInfo {
	candidates := p.candidates
	possible := make([]*TileInfo, 0, len(candidates))
	i, n := 0, len(candidates)
	for i < n {
		tileInfo := candidates[i]
		if overlap := tileInfo.CountMatches(p.filled); overlap > 0 {
			if overlap <= MaxOverlaps {
				possible = append(possible, tileInfo)
				i++
			} else {
				n--
				candidates[i] = candidates[n]
			}
		} else if tileInfo.NeighborTo(p.filled) {
			possible = append(possible, tileInfo)
			i++
		} else {
			i++
		}
	}
	p.candidates = candidates[:n]
	return possible
}

// GetPossibleTilesSet is GetPossibleTiles in TileSet form, which
// search code carries around instead of a slice to avoid reallocating
// one per visited state.
func (p *Position) GetPossibleTilesSet() bitboard.TileSet {
	var res bitboard.TileSet
	candidates := p.candidates
	i, n := 0, len(candidates)
	for i < n {
		tileInfo := candidates[i]
		if overlap := tileInfo.CountMatches(p.filled); overlap > 0 {
			if overlap <= MaxOverlaps {
				res.Set(tileInfo.Code)
				i++
			} else {
				n--
				candidates[i] = candidates[n]
			}
		} else if tileInfo.NeighborTo(p.filled) {
			res.Set(tileInfo.Code)
			i++
		} else {
			i++
		}
	}
	p.candidates = candidates[:n]
	return res
}

// EndGame reports whether no candidate placement is legal any more.
func (p *Position) EndGame() bool {
	for _, tileInfo := range p.candidates {
		if p.PossibleMove(tileInfo) {
			return false
		}
	}
	return true
}

func (p *Position) updateColor(dot int, color Color) {
	old := p.colors[dot]
	if old == color {
		return
	}
	p.filled.Set(dot)
	row, col := dot/Cols, dot%Cols
	if old != White {
		oldIdx := ColorIndex(old)
		p.columns[oldIdx][col].Unset(row)
		p.zobristHash ^= zobristColors[dot][oldIdx]
	}
	idx := ColorIndex(color)
	p.columns[idx][col].Set(row)
	p.colors[dot] = color
	p.zobristHash ^= zobristColors[dot][idx]
}

func (p *Position) processSiblings(tileInfo *TileInfo, index int) {
	pair := tileInfo.Siblings[index]
	color := Color(p.tile[index])
	p.updateColor(pair[0], color)
	p.updateColor(pair[1], color)
}

func (p *Position) incrementTurn() {
	p.turn++
	p.player = p.player.Opponent()
}

// DoTile places tileInfo and advances to the other player.
func (p *Position) DoTile(tileInfo *TileInfo) {
	for i := 0; i < TileDots; i++ {
		p.processSiblings(tileInfo, i)
	}
	p.incrementTurn()
}

// DoMove places the tile at move.Dot/move.Orientation.
func (p *Position) DoMove(move PlayerMove) {
	var tileInfo *TileInfo
	if move.Orientation == Vertical {
		tileInfo = &VerticalTilesInfo[move.Dot]
	} else {
		tileInfo = &HorizontalTilesInfo[move.Dot]
	}
	p.DoTile(tileInfo)
}

func (p *Position) removeCandidate(i int) {
	last := len(p.candidates) - 1
	p.candidates[i] = p.candidates[last]
	p.candidates = p.candidates[:last]
}

// GetRandomMove draws and removes a uniformly random legal placement
// from the shrinking candidate pool, or returns nil once none remain.
// This is the playout policy: uniform over whatever is still
// reachable, not weighted by any learned prior.
func (p *Position) GetRandomMove(gen *rng.Fast) *TileInfo {
	for len(p.candidates) > 0 {
		r := gen.LessThan(len(p.candidates))
		info := p.candidates[r]
		if overlap := info.CountMatches(p.filled); overlap > 0 {
			p.removeCandidate(r)
			if overlap <= MaxOverlaps {
				return info
			}
		} else if info.NeighborTo(p.filled) {
			p.removeCandidate(r)
			return info
		} else {
			// Adjacent to nothing and overlapping nothing: not
			// removable yet, it may become legal once a neighbor
			// fills in, so it stays a candidate and we just redraw.
		}
	}
	return nil
}

// Clone returns a deep copy fit for playout simulation, which must
// not mutate the position it was given.
func (p *Position) Clone() *Position {
	c := *p
	c.candidates = make([]*TileInfo, len(p.candidates))
	copy(c.candidates, p.candidates)
	return &c
}

// Show renders the board as rows of color digits, one line per row,
// for debug logging.
func (p *Position) Show() string {
	buf := make([]byte, 0, TotalDots*2+Rows)
	buf = append(buf, "tile="...)
	buf = append(buf, p.tile...)
	buf = append(buf, '\n', '\n')
	for dot := 0; dot < TotalDots; dot++ {
		buf = append(buf, byte(p.colors[dot]), '|')
		if (dot+1)%Cols == 0 {
			buf = append(buf, '\n')
		}
	}
	return string(buf)
}
