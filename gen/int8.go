package gen

import "math/rand"

// Int8 generates 8-bit integers with automatic range based on Size.
// If no Size is provided, uses [-100, 100] clamped to the int8 range.
func Int8(size Size) Generator[int8] {
	return From(func(r *rand.Rand, sz Size) (int8, Shrinker[int8]) {
		if r == nil {
			r = rand.New(rand.NewSource(rand.Int63()))
		}
		min, max := autoRangeSigned[int8](size, sz)
		if min > max {
			min, max = max, min
		}
		v := min + int8(r.Intn(int(max-min)+1))
		return signedShrinkInit(v, min, max)
	})
}

// Int8Range generates int8 uniformly in the range [min, max] (inclusive).
func Int8Range(min, max int8) Generator[int8] {
	if min > max {
		min, max = max, min
	}
	return From(func(r *rand.Rand, _ Size) (int8, Shrinker[int8]) {
		if r == nil {
			r = rand.New(rand.NewSource(rand.Int63()))
		}
		v := min + int8(r.Intn(int(max-min)+1))
		return signedShrinkInit(v, min, max)
	})
}
