package rng

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"
)

// Strong returns a *math/rand.Rand seeded from the operating system's
// entropy source, for one-time generation of the zobrist key tables.
// Grounded on original_source/src/RNG.h's FastRandom::random<T>, which
// draws from a std::mt19937 seeded by std::random_device — the "true
// random source" half of the original's one RNG object. We keep it a
// distinct generator from Fast rather than unify them: Fast must stay
// cheaply reseedable and reproducible for simulations, while the
// zobrist tables only need to differ between process runs.
func Strong() *mrand.Rand {
	var seedBytes [8]byte
	if _, err := rand.Read(seedBytes[:]); err != nil {
		// crypto/rand failing means the OS entropy source is broken;
		// fall back to the deterministic seed rather than a zero seed.
		return mrand.New(mrand.NewSource(int64(DefaultSeed)))
	}
	seed := int64(binary.LittleEndian.Uint64(seedBytes[:]))
	return mrand.New(mrand.NewSource(seed))
}
