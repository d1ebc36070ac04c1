package gen

import "math/rand"

// Option represents an optional value, mirroring Rust-style Option<T> rather
// than a bare pointer so generated None values don't alias a shared nil.
type Option[T any] struct {
	Valid bool
	Value T
}

// Some wraps v in a present Option.
func Some[T any](v T) Option[T] { return Option[T]{Valid: true, Value: v} }

// None returns the absent Option for T.
func None[T any]() Option[T] { return Option[T]{} }

// OptionOf generates Option[T], weighted roughly 3:1 towards Some so the
// inner generator still gets exercised most of the time.
// Shrink order: None is the minimal candidate, tried before any Some(x'),
// and every shrink of the wrapped value is offered as a smaller Some.
func OptionOf[T any](elem Generator[T]) Generator[Option[T]] {
	return From(func(r *rand.Rand, sz Size) (Option[T], Shrinker[Option[T]]) {
		if r == nil {
			r = rand.New(rand.NewSource(rand.Int63()))
		}
		if r.Intn(4) == 0 {
			none := None[T]()
			return none, func(bool) (Option[T], bool) { return none, false }
		}
		v, shrink := elem.Generate(r, sz)
		cur := Some(v)
		state := 0 // 0 => offer None; 1 => shrink the wrapped value
		return cur, func(accept bool) (Option[T], bool) {
			switch state {
			case 0:
				state = 1
				return None[T](), true
			case 1:
				// None was the previous candidate. If it still reproduced the
				// failure, it's already the minimal Option — nothing shrinks
				// further.
				if accept {
					state = 2
					var z Option[T]
					return z, false
				}
				nv, ok := shrink(false)
				if !ok {
					state = 2
					var z Option[T]
					return z, false
				}
				state = 3
				return Some(nv), true
			case 3:
				nv, ok := shrink(accept)
				if !ok {
					state = 2
					var z Option[T]
					return z, false
				}
				return Some(nv), true
			default:
				var z Option[T]
				return z, false
			}
		}
	})
}
