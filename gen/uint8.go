package gen

import "math/rand"

// Uint8 generates 8-bit unsigned integers with automatic range based on Size.
// If no Size is provided, uses [0, 100].
func Uint8(size Size) Generator[uint8] {
	return From(func(r *rand.Rand, sz Size) (uint8, Shrinker[uint8]) {
		if r == nil {
			r = rand.New(rand.NewSource(rand.Int63()))
		}
		min, max := autoRangeUnsigned[uint8](size, sz)
		if min > max {
			min, max = max, min
		}
		v := min + uint8(r.Intn(int(max-min)+1))
		return unsignedShrinkInit(v, min, max)
	})
}

// Uint8Range generates uint8 uniformly in the range [min, max] (inclusive).
func Uint8Range(min, max uint8) Generator[uint8] {
	if min > max {
		min, max = max, min
	}
	return From(func(r *rand.Rand, _ Size) (uint8, Shrinker[uint8]) {
		if r == nil {
			r = rand.New(rand.NewSource(rand.Int63()))
		}
		v := min + uint8(r.Intn(int(max-min)+1))
		return unsignedShrinkInit(v, min, max)
	})
}
