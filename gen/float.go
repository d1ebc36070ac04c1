package gen

import (
	"math"
	"math/rand"
)

// Float32 generates float32 values with automatic range based on Size.
// Default: [-100, 100]. Does not include NaN/Inf.
func Float32(size Size) Generator[float32] {
	return From(func(r *rand.Rand, sz Size) (float32, Shrinker[float32]) {
		if r == nil {
			r = rand.New(rand.NewSource(rand.Int63()))
		}
		min, max := autoRangeFloat[float32](size, sz)
		if min > max {
			min, max = max, min
		}
		v := uniformFloat(r, min, max)
		return floatShrinkInit(v, min, max, false, false, math.Nextafter32)
	})
}

// Float32Range generates float32 in [min, max]; can optionally produce NaN/±Inf.
func Float32Range(min, max float32, includeNaN, includeInf bool) Generator[float32] {
	if min > max {
		min, max = max, min
	}
	return From(func(r *rand.Rand, _ Size) (float32, Shrinker[float32]) {
		if r == nil {
			r = rand.New(rand.NewSource(rand.Int63()))
		}
		v := uniformFloat(r, min, max)
		if includeNaN && r.Intn(50) == 0 {
			v = float32(math.NaN())
		} else if includeInf && r.Intn(50) == 1 {
			if r.Intn(2) == 0 {
				v = float32(math.Inf(+1))
			} else {
				v = float32(math.Inf(-1))
			}
		}
		return floatShrinkInit(v, min, max, includeNaN, includeInf, math.Nextafter32)
	})
}
