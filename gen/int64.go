package gen

import "math/rand"

// Int64 generates 64-bit integers with automatic range based on Size.
// If no Size is provided, uses [-100, 100].
func Int64(size Size) Generator[int64] {
	return From(func(r *rand.Rand, sz Size) (int64, Shrinker[int64]) {
		if r == nil {
			r = rand.New(rand.NewSource(rand.Int63()))
		}
		min, max := autoRangeSigned[int64](size, sz)
		if min > max {
			min, max = max, min
		}
		v := min + int64(r.Intn(int(max-min+1)))
		return signedShrinkInit(v, min, max)
	})
}

// Int64Range generates int64 uniformly in the range [min, max] (inclusive).
func Int64Range(min, max int64) Generator[int64] {
	if min > max {
		min, max = max, min
	}
	return From(func(r *rand.Rand, _ Size) (int64, Shrinker[int64]) {
		if r == nil {
			r = rand.New(rand.NewSource(rand.Int63()))
		}
		v := min + int64(r.Intn(int(max-min+1)))
		return signedShrinkInit(v, min, max)
	})
}
