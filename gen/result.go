package gen

import "math/rand"

// Either holds exactly one of a left (L) or right (R) value, the classic
// sum-type combinator used when a property needs to range over two
// unrelated shapes (e.g. a parsed value or a parse error).
type Either[L, R any] struct {
	IsLeft bool
	Left   L
	Right  R
}

// MakeLeft builds a left Either.
func MakeLeft[L, R any](v L) Either[L, R] { return Either[L, R]{IsLeft: true, Left: v} }

// MakeRight builds a right Either.
func MakeRight[L, R any](v R) Either[L, R] { return Either[L, R]{IsLeft: false, Right: v} }

// EitherOf generates an Either[L, R] by flipping a coin to choose a side,
// then delegating to gl or gr. Shrinking only ever explores the inhabited
// side — it never crosses from Left to Right or back.
func EitherOf[L, R any](gl Generator[L], gr Generator[R]) Generator[Either[L, R]] {
	return From(func(r *rand.Rand, sz Size) (Either[L, R], Shrinker[Either[L, R]]) {
		if r == nil {
			r = rand.New(rand.NewSource(rand.Int63()))
		}
		if r.Intn(2) == 0 {
			v, shrink := gl.Generate(r, sz)
			return MakeLeft[L, R](v), func(accept bool) (Either[L, R], bool) {
				nv, ok := shrink(accept)
				if !ok {
					var z Either[L, R]
					return z, false
				}
				return MakeLeft[L, R](nv), true
			}
		}
		v, shrink := gr.Generate(r, sz)
		return MakeRight[L, R](v), func(accept bool) (Either[L, R], bool) {
			nv, ok := shrink(accept)
			if !ok {
				var z Either[L, R]
				return z, false
			}
			return MakeRight[L, R](nv), true
		}
	})
}
