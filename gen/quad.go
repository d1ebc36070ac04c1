package gen

import "math/rand"

// Quad represents a 4-tuple of values of types A, B, C and D.
type Quad[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// QuadOf builds a generator producing 4-tuples, shrinking one component at
// a time, left to right, same strategy as PairOf and TripleOf.
func QuadOf[A, B, C, D any](ga Generator[A], gb Generator[B], gc Generator[C], gd Generator[D]) Generator[Quad[A, B, C, D]] {
	return From(func(r *rand.Rand, sz Size) (Quad[A, B, C, D], Shrinker[Quad[A, B, C, D]]) {
		if r == nil {
			r = rand.New(rand.NewSource(rand.Int63()))
		}
		a, sa := ga.Generate(r, sz)
		b, sb := gb.Generate(r, sz)
		c, sc := gc.Generate(r, sz)
		d, sd := gd.Generate(r, sz)

		stage := 0
		curA, curB, curC, curD := a, b, c, d

		return Quad[A, B, C, D]{First: a, Second: b, Third: c, Fourth: d}, func(accept bool) (Quad[A, B, C, D], bool) {
			if stage == 0 {
				if na, ok := sa(accept); ok {
					curA = na
					return Quad[A, B, C, D]{First: na, Second: curB, Third: curC, Fourth: curD}, true
				}
				stage = 1
				accept = false
			}
			if stage == 1 {
				if nb, ok := sb(accept); ok {
					curB = nb
					return Quad[A, B, C, D]{First: curA, Second: nb, Third: curC, Fourth: curD}, true
				}
				stage = 2
				accept = false
			}
			if stage == 2 {
				if nc, ok := sc(accept); ok {
					curC = nc
					return Quad[A, B, C, D]{First: curA, Second: curB, Third: nc, Fourth: curD}, true
				}
				stage = 3
				accept = false
			}
			if nd, ok := sd(accept); ok {
				curD = nd
				return Quad[A, B, C, D]{First: curA, Second: curB, Third: curC, Fourth: nd}, true
			}
			var zero Quad[A, B, C, D]
			return zero, false
		}
	})
}
