package gen

import "math/rand"

// Uint16 generates 16-bit unsigned integers with automatic range based on Size.
// If no Size is provided, uses [0, 100].
func Uint16(size Size) Generator[uint16] {
	return From(func(r *rand.Rand, sz Size) (uint16, Shrinker[uint16]) {
		if r == nil {
			r = rand.New(rand.NewSource(rand.Int63()))
		}
		min, max := autoRangeUnsigned[uint16](size, sz)
		if min > max {
			min, max = max, min
		}
		v := min + uint16(r.Intn(int(max-min)+1))
		return unsignedShrinkInit(v, min, max)
	})
}

// Uint16Range generates uint16 uniformly in the range [min, max] (inclusive).
func Uint16Range(min, max uint16) Generator[uint16] {
	if min > max {
		min, max = max, min
	}
	return From(func(r *rand.Rand, _ Size) (uint16, Shrinker[uint16]) {
		if r == nil {
			r = rand.New(rand.NewSource(rand.Int63()))
		}
		v := min + uint16(r.Intn(int(max-min)+1))
		return unsignedShrinkInit(v, min, max)
	})
}
