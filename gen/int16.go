package gen

import "math/rand"

// Int16 generates 16-bit integers with automatic range based on Size.
// If no Size is provided, uses [-100, 100] clamped to the int16 range.
func Int16(size Size) Generator[int16] {
	return From(func(r *rand.Rand, sz Size) (int16, Shrinker[int16]) {
		if r == nil {
			r = rand.New(rand.NewSource(rand.Int63()))
		}
		min, max := autoRangeSigned[int16](size, sz)
		if min > max {
			min, max = max, min
		}
		v := min + int16(r.Intn(int(max-min)+1))
		return signedShrinkInit(v, min, max)
	})
}

// Int16Range generates int16 uniformly in the range [min, max] (inclusive).
func Int16Range(min, max int16) Generator[int16] {
	if min > max {
		min, max = max, min
	}
	return From(func(r *rand.Rand, _ Size) (int16, Shrinker[int16]) {
		if r == nil {
			r = rand.New(rand.NewSource(rand.Int63()))
		}
		v := min + int16(r.Intn(int(max-min)+1))
		return signedShrinkInit(v, min, max)
	})
}
