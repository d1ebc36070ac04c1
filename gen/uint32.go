package gen

import "math/rand"

// Uint32 generates 32-bit unsigned integers with automatic range based on Size.
// If no Size is provided, uses [0, 100].
func Uint32(size Size) Generator[uint32] {
	return From(func(r *rand.Rand, sz Size) (uint32, Shrinker[uint32]) {
		if r == nil {
			r = rand.New(rand.NewSource(rand.Int63()))
		}
		min, max := autoRangeUnsigned[uint32](size, sz)
		if min > max {
			min, max = max, min
		}
		v := min + r.Uint32()%(max-min+1)
		return unsignedShrinkInit(v, min, max)
	})
}

// Uint32Range generates uint32 uniformly in the range [min, max] (inclusive).
func Uint32Range(min, max uint32) Generator[uint32] {
	if min > max {
		min, max = max, min
	}
	return From(func(r *rand.Rand, _ Size) (uint32, Shrinker[uint32]) {
		if r == nil {
			r = rand.New(rand.NewSource(rand.Int63()))
		}
		v := min + r.Uint32()%(max-min+1)
		return unsignedShrinkInit(v, min, max)
	})
}
