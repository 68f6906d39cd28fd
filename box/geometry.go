// Package box implements the position, scoring and move-generation
// rules of Box: a 16x20 grid of dots, six colors, and 434 on-board tile
// placements (twelve-dot 6x2 vertical or 2x6 horizontal rectangles).
//
// The board geometry is computed once at package init time, the way
// the original engine precomputes its TileInfo tables before the
// first position is ever constructed.
package box

import "github.com/elkasimi/codecup-box/bitboard"

const (
	Cols        = 20
	Rows        = 16
	TileDots    = 6
	TotalDots   = Rows * Cols
	MaxColors   = 6
	MaxOverlaps = 4
)

// Color is a dot color, stored as the ASCII digit the wire protocol
// and the tile permutations use: '1'..'6'. White marks an empty dot.
type Color byte

const White Color = '0'

// ColorIndex converts a Color to a zero-based index into the
// MaxColors-sized arrays used throughout scoring.
func ColorIndex(c Color) int { return int(c - '1') }

// Orientation is the axis a tile is placed along.
type Orientation byte

const (
	Vertical   Orientation = 'v'
	Horizontal Orientation = 'h'
)

// Player identifies a side to move.
type Player byte

const (
	Player1 Player = '1'
	Player2 Player = '2'
)

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// GetDot packs a (row, col) pair into a single dot index.
func GetDot(row, col int) int { return row*Cols + col }

func validDot(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// getNeighbors returns the up-to-four orthogonally adjacent dots.
func getNeighbors(dot int) []int {
	row, col := dot/Cols, dot%Cols
	var res []int
	if validDot(row+1, col) {
		res = append(res, GetDot(row+1, col))
	}
	if validDot(row-1, col) {
		res = append(res, GetDot(row-1, col))
	}
	if validDot(row, col+1) {
		res = append(res, GetDot(row, col+1))
	}
	if validDot(row, col-1) {
		res = append(res, GetDot(row, col-1))
	}
	return res
}

// TileInfo is a precomputed placement: the six sibling dot pairs a
// tile covers (both dots of pair i take the i-th color of the dealt
// tile), its footprint, and the dots a new tile must touch to be legal
// to place.
type TileInfo struct {
	Siblings          [TileDots][2]int
	Bitboard          bitboard.Bitboard
	NeighborsBitboard bitboard.Bitboard
	Code              int
	Dot               int
	Orientation       Orientation
}

// Valid reports whether the tile's footprint fits on the board at
// all; invalid entries exist only as placeholders at the dot/orientation
// index they would otherwise occupy.
func (t *TileInfo) Valid() bool { return t.Bitboard.Any() }

func (t *TileInfo) clear() {
	t.Bitboard.Reset()
	t.NeighborsBitboard.Reset()
}

// Move returns the PlayerMove that places this tile.
func (t *TileInfo) Move() PlayerMove { return PlayerMove{Dot: t.Dot, Orientation: t.Orientation} }

// CountMatches returns how many of the tile's dots are already filled.
func (t *TileInfo) CountMatches(b bitboard.Bitboard) int { return t.Bitboard.CountMatches(b) }

// NeighborTo reports whether any dot adjacent to the tile is filled.
func (t *TileInfo) NeighborTo(b bitboard.Bitboard) bool { return t.NeighborsBitboard.AnyMatches(b) }

// Top returns the first dot of each sibling pair (the upper row of a
// horizontal tile, the right column of a vertical one), in sibling order.
func (t *TileInfo) Top() [TileDots]int {
	var res [TileDots]int
	for i := 0; i < TileDots; i++ {
		res[i] = t.Siblings[i][0]
	}
	return res
}

// Bottom returns the second dot of each sibling pair (the lower row of
// a horizontal tile, the left column of a vertical one), in reverse
// sibling order, mirroring Top.
func (t *TileInfo) Bottom() [TileDots]int {
	var res [TileDots]int
	for i := 0; i < TileDots; i++ {
		res[i] = t.Siblings[TileDots-i-1][1]
	}
	return res
}

func generateTileNeighborsBitboard(info *TileInfo) bitboard.Bitboard {
	var b bitboard.Bitboard
	for _, pair := range info.Siblings {
		for _, dot := range pair {
			for _, n := range getNeighbors(dot) {
				b.Set(n)
			}
		}
	}
	return b.And(info.Bitboard.Not())
}

func generateVerticalTilesInfo() []TileInfo {
	res := make([]TileInfo, TotalDots)
	for dot := 0; dot < TotalDots; dot++ {
		row, col := dot/Cols, dot%Cols
		info := &res[dot]
		info.Code = 2*GetDot(row, col) + 1
		info.Dot = GetDot(row, col)
		info.Orientation = Vertical

		var top, bottom [TileDots]int
		ok := true
		for i := 0; i < TileDots && ok; i++ {
			if !validDot(row+i, col+1) {
				info.clear()
				ok = false
				break
			}
			d := GetDot(row+i, col+1)
			top[i] = d
			info.Bitboard.Set(d)
		}
		if !ok || !info.Valid() {
			continue
		}
		for i := 0; i < TileDots; i++ {
			if !validDot(row+i, col) {
				info.clear()
				ok = false
				break
			}
			d := GetDot(row+i, col)
			bottom[i] = d
			info.Bitboard.Set(d)
		}
		if !ok || !info.Valid() {
			continue
		}
		for i := 0; i < TileDots; i++ {
			info.Siblings[i][0] = top[i]
			info.Siblings[i][1] = bottom[TileDots-i-1]
		}
		info.NeighborsBitboard = generateTileNeighborsBitboard(info)
	}
	return res
}

func generateHorizontalTilesInfo() []TileInfo {
	res := make([]TileInfo, TotalDots)
	for dot := 0; dot < TotalDots; dot++ {
		row, col := dot/Cols, dot%Cols
		info := &res[dot]
		info.Code = 2 * GetDot(row, col)
		info.Dot = GetDot(row, col)
		info.Orientation = Horizontal

		var top, bottom [TileDots]int
		ok := true
		for i := 0; i < TileDots && ok; i++ {
			if !validDot(row, col+i) {
				info.clear()
				ok = false
				break
			}
			d := GetDot(row, col+i)
			top[i] = d
			info.Bitboard.Set(d)
		}
		if !ok || !info.Valid() {
			continue
		}
		for i := 0; i < TileDots; i++ {
			if !validDot(row+1, col+i) {
				info.clear()
				ok = false
				break
			}
			d := GetDot(row+1, col+i)
			bottom[i] = d
			info.Bitboard.Set(d)
		}
		if !ok || !info.Valid() {
			continue
		}
		for i := 0; i < TileDots; i++ {
			info.Siblings[i][0] = top[i]
			info.Siblings[i][1] = bottom[TileDots-i-1]
		}
		info.NeighborsBitboard = generateTileNeighborsBitboard(info)
	}
	return res
}

// VerticalTilesInfo and HorizontalTilesInfo are indexed by the dot at
// a tile's top-left corner; entries for dots where the shape would
// run off the board have Valid() == false.
var (
	VerticalTilesInfo   = generateVerticalTilesInfo()
	HorizontalTilesInfo = generateHorizontalTilesInfo()
)

// AllTilesInfo lists every valid placement, vertical tiles first,
// renumbered with dense Code values in [0, AllTilesCount) so they can
// index a TileSet.
var AllTilesInfo = func() []*TileInfo {
	res := make([]*TileInfo, 0, AllTilesCount)
	code := 0
	for i := range VerticalTilesInfo {
		info := &VerticalTilesInfo[i]
		if info.Valid() {
			info.Code = code
			code++
			res = append(res, info)
		}
	}
	for i := range HorizontalTilesInfo {
		info := &HorizontalTilesInfo[i]
		if info.Valid() {
			info.Code = code
			code++
			res = append(res, info)
		}
	}
	return res
}()

const AllTilesCount = 434

// CenterTileInfo is the horizontal tile at "Hh", the starting tile
// every game is dealt.
var CenterTileInfo = &HorizontalTilesInfo[ParseDot("Hh")]

const TilesPermutationsCount = 6 * 5 * 4 * 3 * 2 * 1

func nextPermutation(s []byte) bool {
	n := len(s)
	i := n - 2
	for i >= 0 && s[i] >= s[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := n - 1
	for s[j] <= s[i] {
		j--
	}
	s[i], s[j] = s[j], s[i]
	for l, r := i+1, n-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
	return true
}

func generateAllTilesPermutations() []Tile {
	buf := []byte("123456")
	res := make([]Tile, 0, TilesPermutationsCount)
	for {
		res = append(res, Tile(string(buf)))
		if !nextPermutation(buf) {
			break
		}
	}
	return res
}

// TilesPermutations holds every ordering of the six colors, sorted
// lexicographically, one of which is dealt as the next ChanceMove.
var TilesPermutations = generateAllTilesPermutations()

// FindTileIndex returns tile's index in TilesPermutations, or -1 if
// tile is not a permutation of "123456".
func FindTileIndex(tile Tile) int {
	lo, hi := 0, len(TilesPermutations)
	for lo < hi {
		mid := (lo + hi) / 2
		if TilesPermutations[mid] < tile {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(TilesPermutations) && TilesPermutations[lo] == tile {
		return lo
	}
	return -1
}
