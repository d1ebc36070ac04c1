package gen

import (
	"math"
	"math/rand"
)

// Float64 generates floats with automatic range based on Size.
// - If no Size is provided, uses range [-100, 100].
// - Does not include NaN/Inf (focused on business numeric cases).
func Float64(size Size) Generator[float64] {
	return From(func(r *rand.Rand, sz Size) (float64, Shrinker[float64]) {
		if r == nil {
			r = rand.New(rand.NewSource(rand.Int63()))
		}
		min, max := autoRangeFloat[float64](size, sz)
		if min > max {
			min, max = max, min
		}
		v := uniformFloat(r, min, max)
		return floatShrinkInit(v, min, max, false, false, math.Nextafter)
	})
}

// Float64Range generates floats uniformly in [min, max] (inclusive on finite bounds).
// Parameters includeNaN/includeInf allow injecting special cases.
func Float64Range(min, max float64, includeNaN, includeInf bool) Generator[float64] {
	if min > max {
		min, max = max, min
	}
	return From(func(r *rand.Rand, _ Size) (float64, Shrinker[float64]) {
		if r == nil {
			r = rand.New(rand.NewSource(rand.Int63()))
		}
		v := uniformFloat(r, min, max)
		// small chance of specials, if enabled
		if includeNaN && r.Intn(50) == 0 {
			v = math.NaN()
		} else if includeInf && r.Intn(50) == 1 {
			if r.Intn(2) == 0 {
				v = math.Inf(+1)
			} else {
				v = math.Inf(-1)
			}
		}
		return floatShrinkInit(v, min, max, includeNaN, includeInf, math.Nextafter)
	})
}
