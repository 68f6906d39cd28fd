package bitboard

import "math/bits"

// TileSetCapacity is the number of codes a TileSet can hold. It is the
// same as box.AllTilesCount (434); duplicated here as an exported
// constant so this package has no import-cycle dependency on box.
const TileSetCapacity = 434

const tileSetWords = (TileSetCapacity + 63) / 64

// TileSet is a dense set over placement codes in [0, TileSetCapacity).
// Grounded on original_source/src/Position.h's TileSet: chunked
// uint64 words plus a running cardinality so Any is O(1).
type TileSet struct {
	data  [tileSetWords]uint64
	count int
}

// Set adds code to the set.
func (s *TileSet) Set(code int) {
	w, m := code/64, uint64(1)<<uint(code%64)
	if s.data[w]&m == 0 {
		s.data[w] |= m
		s.count++
	}
}

// Clear removes code from the set.
func (s *TileSet) Clear(code int) {
	w, m := code/64, uint64(1)<<uint(code%64)
	if s.data[w]&m != 0 {
		s.data[w] &^= m
		s.count--
	}
}

// Test reports whether code is in the set.
func (s *TileSet) Test(code int) bool {
	w, m := code/64, uint64(1)<<uint(code%64)
	return s.data[w]&m != 0
}

// Any reports whether the set is non-empty.
func (s *TileSet) Any() bool {
	return s.count > 0
}

// Count returns the number of codes currently in the set.
func (s *TileSet) Count() int {
	return s.count
}

// ForEach visits every set code in ascending order.
func (s *TileSet) ForEach(visit func(code int)) {
	for chunk, w := range s.data {
		for w != 0 {
			bit := bits.TrailingZeros64(w)
			visit(chunk*64 + bit)
			w &= w - 1
		}
	}
}
