package gen

import "math/rand"

// Triple represents a 3-tuple of values of types A, B and C.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// TripleOf builds a generator producing 3-tuples, shrinking one component
// at a time, left to right, same strategy as PairOf.
func TripleOf[A, B, C any](ga Generator[A], gb Generator[B], gc Generator[C]) Generator[Triple[A, B, C]] {
	return From(func(r *rand.Rand, sz Size) (Triple[A, B, C], Shrinker[Triple[A, B, C]]) {
		if r == nil {
			r = rand.New(rand.NewSource(rand.Int63()))
		}
		a, sa := ga.Generate(r, sz)
		b, sb := gb.Generate(r, sz)
		c, sc := gc.Generate(r, sz)

		stage := 0
		curA, curB, curC := a, b, c

		return Triple[A, B, C]{First: a, Second: b, Third: c}, func(accept bool) (Triple[A, B, C], bool) {
			if stage == 0 {
				if na, ok := sa(accept); ok {
					curA = na
					return Triple[A, B, C]{First: na, Second: curB, Third: curC}, true
				}
				stage = 1
				accept = false
			}
			if stage == 1 {
				if nb, ok := sb(accept); ok {
					curB = nb
					return Triple[A, B, C]{First: curA, Second: nb, Third: curC}, true
				}
				stage = 2
				accept = false
			}
			if nc, ok := sc(accept); ok {
				curC = nc
				return Triple[A, B, C]{First: curA, Second: curB, Third: nc}, true
			}
			var zero Triple[A, B, C]
			return zero, false
		}
	})
}
