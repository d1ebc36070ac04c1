package gen

import "math/rand"

// Int32 generates 32-bit integers with automatic range based on Size.
// If no Size is provided, uses [-100, 100].
func Int32(size Size) Generator[int32] {
	return From(func(r *rand.Rand, sz Size) (int32, Shrinker[int32]) {
		if r == nil {
			r = rand.New(rand.NewSource(rand.Int63()))
		}
		min, max := autoRangeSigned[int32](size, sz)
		if min > max {
			min, max = max, min
		}
		v := min + r.Int31n(max-min+1)
		return signedShrinkInit(v, min, max)
	})
}

// Int32Range generates int32 uniformly in the range [min, max] (inclusive).
func Int32Range(min, max int32) Generator[int32] {
	if min > max {
		min, max = max, min
	}
	return From(func(r *rand.Rand, _ Size) (int32, Shrinker[int32]) {
		if r == nil {
			r = rand.New(rand.NewSource(rand.Int63()))
		}
		v := min + r.Int31n(max-min+1)
		return signedShrinkInit(v, min, max)
	})
}
