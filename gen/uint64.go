package gen

import "math/rand"

// Uint64 generates unsigned 64-bit integers with automatic range based on Size.
// If nothing is provided, uses [0, 100].
func Uint64(size Size) Generator[uint64] {
	return From(func(r *rand.Rand, sz Size) (uint64, Shrinker[uint64]) {
		if r == nil {
			r = rand.New(rand.NewSource(rand.Int63()))
		}
		min, max := autoRangeUnsigned[uint64](size, sz)
		if min > max {
			min, max = max, min
		}
		v := min + uint64(r.Intn(int(max-min+1)))
		return unsignedShrinkInit(v, min, max)
	})
}

// Uint64Range generates uint64 uniformly in the range [min, max] (inclusive).
func Uint64Range(min, max uint64) Generator[uint64] {
	if min > max {
		min, max = max, min
	}
	return From(func(r *rand.Rand, _ Size) (uint64, Shrinker[uint64]) {
		if r == nil {
			r = rand.New(rand.NewSource(rand.Int63()))
		}
		v := min + uint64(r.Intn(int(max-min+1)))
		return unsignedShrinkInit(v, min, max)
	})
}
