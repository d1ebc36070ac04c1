package gen

import "math/rand"

// Int generates integers with automatic range based on Size:
// - if sz.Max (or |sz.Min|) > 0: range := [-M, M], where M = max(|sz.Min|, |sz.Max|)
// - otherwise, uses default range [-100, 100].
// Example: prop.ForAll(t, cfg, gen.Int(gen.Size{Max: 1000})) ...
func Int(size Size) Generator[int] {
	return From(func(r *rand.Rand, sz Size) (int, Shrinker[int]) {
		if r == nil {
			r = rand.New(rand.NewSource(rand.Int63()))
		}
		min, max := autoRangeSigned[int](size, sz)
		if min > max {
			min, max = max, min
		}
		v := min + r.Intn(max-min+1)
		return signedShrinkInit(v, min, max)
	})
}

// IntRange generates integers uniformly in the range [min, max] (inclusive).
// Ignores sz for the range (useful when you want explicit control).
func IntRange(min, max int) Generator[int] {
	if min > max {
		min, max = max, min
	}
	return From(func(r *rand.Rand, _ Size) (int, Shrinker[int]) {
		if r == nil {
			r = rand.New(rand.NewSource(rand.Int63()))
		}
		v := min + r.Intn(max-min+1)
		return signedShrinkInit(v, min, max)
	})
}

// absInt returns the absolute value of an integer. gen/float.go and
// gen/float64.go reuse it to track their magnitude budget as a plain int
// before scaling it into the float type being generated.
func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
