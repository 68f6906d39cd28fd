package box

import (
	"fmt"
)

// Tile is a dealt chance move: a permutation of "123456" assigning a
// color to each of the six dots a tile places.
type Tile string

// ChanceMove is an alias kept distinct in name only, matching the
// vocabulary the move-parsing protocol uses for the random half of a
// turn versus the player's placement.
type ChanceMove = Tile

// PlayerMove is a tile placement: its anchor dot and orientation.
type PlayerMove struct {
	Dot         int
	Orientation Orientation
}

// Show renders the move the way the wire protocol expects it, e.g. "Hhv".
func (m PlayerMove) Show() string {
	return ShowDot(m.Dot) + string(m.Orientation)
}

// Code returns the dense index used to look up this exact
// dot+orientation pair, independent of whether the placement is
// actually legal on any given board.
func (m PlayerMove) Code() int { return MoveCode(m.Dot, m.Orientation) }

// MoveCode computes the index Code would return for (dot, orientation)
// without constructing a PlayerMove.
func MoveCode(dot int, o Orientation) int {
	if o == Vertical {
		return 2*dot + 1
	}
	return 2 * dot
}

// ShowDot renders a dot index as a two-letter coordinate: row 'A'..'P',
// column 'a'..'t'.
func ShowDot(dot int) string {
	row, col := dot/Cols, dot%Cols
	return string([]byte{byte('A' + row), byte('a' + col)})
}

// ParseDot is the inverse of ShowDot.
func ParseDot(s string) int {
	return (int(s[0]-'A'))*Cols + int(s[1]-'a')
}

const (
	playerMoveLength = 3
	chanceMoveLength = 6
)

// ParseMoves splits a combined move string ("Hh123456h") into the
// chance move (the tile the placement was made with) and the player
// move just played, in the format the engine exchanges moves in.
func ParseMoves(s string) (ChanceMove, PlayerMove, error) {
	if len(s) != chanceMoveLength+playerMoveLength {
		return "", PlayerMove{}, fmt.Errorf("box: malformed move %q", s)
	}
	chanceMove := ChanceMove(s[2:8])
	orientation := Orientation(s[8])
	dot := ParseDot(s)
	return chanceMove, PlayerMove{Dot: dot, Orientation: orientation}, nil
}
