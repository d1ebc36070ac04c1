package gen

import "math/rand"

// Pair represents a pair of values of types A and B.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf builds a generator producing pairs from two component generators.
// Shrinking exhausts the first component before moving on to the second,
// so the overall search finds a local minimum on First first. Uses the same
// explicit stage-counter representation as TripleOf/QuadOf rather than a
// single shrinkingFirst bool, so all three arities share one shrink-stage
// idiom instead of the pair case being the odd one out.
//
// Example usage:
//
//	pairGen := gen.PairOf(gen.Int(gen.Size{Max: 100}), gen.Bool())
func PairOf[A, B any](ga Generator[A], gb Generator[B]) Generator[Pair[A, B]] {
	return From(func(r *rand.Rand, sz Size) (Pair[A, B], Shrinker[Pair[A, B]]) {
		if r == nil {
			r = rand.New(rand.NewSource(rand.Int63()))
		}
		a, sa := ga.Generate(r, sz)
		b, sb := gb.Generate(r, sz)

		stage := 0
		curA, curB := a, b

		return Pair[A, B]{First: a, Second: b}, func(accept bool) (Pair[A, B], bool) {
			if stage == 0 {
				if na, ok := sa(accept); ok {
					curA = na
					return Pair[A, B]{First: na, Second: curB}, true
				}
				stage = 1
				accept = false
			}

			if nb, ok := sb(accept); ok {
				curB = nb
				return Pair[A, B]{First: curA, Second: nb}, true
			}

			var zero Pair[A, B]
			return zero, false
		}
	})
}

// Tuple is an alias for Pair kept for readability at call sites.
type Tuple[A, B any] = Pair[A, B]

// TupleOf is an alias for PairOf.
func TupleOf[A, B any](ga Generator[A], gb Generator[B]) Generator[Tuple[A, B]] {
	return PairOf(ga, gb)
}
