package check

import (
	"fmt"
	"math/rand"
	"reflect"
	"strconv"
	"strings"

	"github.com/burntcheck/propcheck/gen"
)

// Trial is one evaluation of a Property: the Outcome it produced, plus a
// lazy Shrink hook the driver can call to move to the next candidate in the
// underlying shrink stream. Shrink returns ok=false once the stream is
// exhausted, mirroring gen.Shrinker's own protocol.
type Trial struct {
	Outcome Outcome
	Shrink  func(accept bool) (Trial, bool)
}

// Property is the Testable contract: given a random source and a size, it
// samples its arguments, evaluates the underlying function, and returns a
// Trial. check.Check / check.CheckWith only ever interact with properties
// through this shape, so ForAll-built properties of any arity are
// interchangeable with a hand-written Property.
type Property func(r *rand.Rand, size gen.Size) Trial

// Lift adapts a bare bool-returning predicate into an Outcome-returning one.
func Lift(pred bool) Outcome { return FromBool(pred) }

// ForAll builds a one-argument Property from a generator and a function
// returning an Outcome (use Lift, or FromBool directly, to test a bool-only
// predicate).
func ForAll[A any](ga gen.Generator[A], f func(A) Outcome) Property {
	return func(r *rand.Rand, size gen.Size) Trial {
		v, shrink := ga.Generate(r, size)
		return evalChain(v, f, shrink, func(a A) string { return reprOf(a) })
	}
}

// ForAll2 builds a two-argument Property. Shrinking exhausts A's stream
// before moving to B's, same ordering as gen.PairOf.
func ForAll2[A, B any](ga gen.Generator[A], gb gen.Generator[B], f func(A, B) Outcome) Property {
	pg := gen.PairOf(ga, gb)
	return ForAll(pg, func(p gen.Pair[A, B]) Outcome {
		return f(p.First, p.Second)
	})
}

// ForAll3 builds a three-argument Property.
func ForAll3[A, B, C any](ga gen.Generator[A], gb gen.Generator[B], gc gen.Generator[C], f func(A, B, C) Outcome) Property {
	tg := gen.TripleOf(ga, gb, gc)
	return ForAll(tg, func(t gen.Triple[A, B, C]) Outcome {
		return f(t.First, t.Second, t.Third)
	})
}

// ForAll4 builds a four-argument Property.
func ForAll4[A, B, C, D any](ga gen.Generator[A], gb gen.Generator[B], gc gen.Generator[C], gd gen.Generator[D], f func(A, B, C, D) Outcome) Property {
	qg := gen.QuadOf(ga, gb, gc, gd)
	return ForAll(qg, func(q gen.Quad[A, B, C, D]) Outcome {
		return f(q.First, q.Second, q.Third, q.Fourth)
	})
}

// evalChain wraps a single value/shrinker pair into a lazily-unfolding chain
// of Trials, applying safeEval and witness attachment at every step so
// ForAll's shrink hook never has to re-derive them.
func evalChain[A any](v A, f func(A) Outcome, shrink gen.Shrinker[A], repr func(A) string) Trial {
	var build func(a A) Trial
	build = func(a A) Trial {
		outcome := safeEval(f, a)
		if outcome.Status == StatusFail && outcome.Witness == "" {
			outcome.Witness = "(" + repr(a) + ")"
		}
		return Trial{
			Outcome: outcome,
			Shrink: func(accept bool) (Trial, bool) {
				nv, ok := shrink(accept)
				if !ok {
					return Trial{}, false
				}
				return build(nv), true
			},
		}
	}
	return build(v)
}

// safeEval runs f and traps any panic raised inside it, turning a runtime
// abort into a Fail outcome carrying the panic value as the reason. This is
// the "failure capture" requirement: a misbehaving property must not take
// the driver down with it.
func safeEval[A any](f func(A) Outcome, v A) (outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = Fail("", fmt.Sprintf("panic: %v", r))
		}
	}()
	return f(v)
}

// reprOf renders v the way the spec's witness examples expect: strings
// quoted, slices/arrays bracketed and comma-joined, everything else via
// fmt's default verb. Tuple types (gen.Pair/Triple/Quad) recurse into their
// fields so a ForAll2-built witness with a tuple argument still reads as a
// flat comma list.
func reprOf(v any) string {
	if v == nil {
		return "nil"
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return strconv.Quote(rv.String())
	case reflect.Slice, reflect.Array:
		n := rv.Len()
		parts := make([]string, n)
		for i := 0; i < n; i++ {
			parts[i] = reprOf(rv.Index(i).Interface())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case reflect.Struct:
		fields := tupleFields(rv)
		if fields != nil {
			parts := make([]string, len(fields))
			for i, fv := range fields {
				parts[i] = reprOf(fv.Interface())
			}
			return strings.Join(parts, ", ")
		}
		return fmt.Sprintf("%+v", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// tupleFields recognizes gen.Pair/Triple/Quad by field name convention
// (First/Second/Third/Fourth) so reprOf can flatten them without importing
// the concrete generic instantiations.
func tupleFields(rv reflect.Value) []reflect.Value {
	names := []string{"First", "Second", "Third", "Fourth"}
	t := rv.Type()
	var out []reflect.Value
	for _, name := range names {
		f, ok := t.FieldByName(name)
		if !ok {
			break
		}
		_ = f
		out = append(out, rv.FieldByName(name))
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
