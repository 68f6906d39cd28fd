// Package bitboard implements the dense bitsets the search hot path is
// built on: a fixed 320-bit Bitboard over the board's dots, and a
// TileSet over placement codes.
package bitboard

import "math/bits"

// words is the number of uint64 lanes needed to cover TotalBits bits.
const words = 5

// TotalBits is the number of dots on the board (16 rows × 20 cols).
const TotalBits = 320

// Bitboard is a dense set over the board's 320 dots. The zero value is
// the empty set. Unlike a size-parameterized single-uint64 bitboard,
// 320 bits need multiple machine words; we keep the same operation set
// and let the compiler unroll the fixed-length loops.
type Bitboard [words]uint64

func bitOf(pos int) (word int, mask uint64) {
	return pos / 64, uint64(1) << uint(pos%64)
}

// Reset clears every bit.
func (b *Bitboard) Reset() {
	*b = Bitboard{}
}

// Set sets the bit at pos.
func (b *Bitboard) Set(pos int) {
	w, m := bitOf(pos)
	b[w] |= m
}

// Clear resets the bit at pos.
func (b *Bitboard) Clear(pos int) {
	w, m := bitOf(pos)
	b[w] &^= m
}

// Test reports whether the bit at pos is set.
func (b Bitboard) Test(pos int) bool {
	w, m := bitOf(pos)
	return b[w]&m != 0
}

// And returns the bitwise AND of b and o.
func (b Bitboard) And(o Bitboard) Bitboard {
	var r Bitboard
	for i := range b {
		r[i] = b[i] & o[i]
	}
	return r
}

// OrAssign ORs o into b in place.
func (b *Bitboard) OrAssign(o Bitboard) {
	for i := range b {
		b[i] |= o[i]
	}
}

// Not returns the bitwise complement of b.
func (b Bitboard) Not() Bitboard {
	var r Bitboard
	for i := range b {
		r[i] = ^b[i]
	}
	return r
}

// Equal reports whether b and o have the same bits set.
func (b Bitboard) Equal(o Bitboard) bool {
	return b == o
}

// Any reports whether any bit is set.
func (b Bitboard) Any() bool {
	for _, w := range b {
		if w != 0 {
			return true
		}
	}
	return false
}

// Count returns the number of set bits.
func (b Bitboard) Count() int {
	n := 0
	for _, w := range b {
		n += bits.OnesCount64(w)
	}
	return n
}

// CountMatches returns popcount(b & o) without materializing the
// intermediate AND, the hot-path operation overlap counting during
// move legality checks needs.
func (b Bitboard) CountMatches(o Bitboard) int {
	n := 0
	for i := range b {
		n += bits.OnesCount64(b[i] & o[i])
	}
	return n
}

// AnyMatches reports whether (b & o) != 0, again without materializing
// the AND.
func (b Bitboard) AnyMatches(o Bitboard) bool {
	for i := range b {
		if b[i]&o[i] != 0 {
			return true
		}
	}
	return false
}
