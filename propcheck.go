// Package propcheck provides property-based testing functionality for Go.
// It allows you to test properties of your code by generating random test
// cases and automatically shrinking counterexamples when failures are
// found.
//
// This is the main entry point for the propcheck library. It re-exports
// the most commonly used types and functions from the internal packages
// to provide a clean and simple API for users.
//
// Example usage:
//
//	import "github.com/burntcheck/propcheck"
//
//	func TestAdditionIdentity(t *testing.T) {
//		propcheck.ForAll(t, propcheck.Default(), propcheck.Int(propcheck.Size{Max: 100}))(func(t *testing.T, x int) {
//			if x+0 != x {
//				t.Errorf("addition identity failed for %d", x)
//			}
//		})
//	}
package propcheck

import (
	"math/rand"
	"testing"

	"github.com/burntcheck/propcheck/check"
	"github.com/burntcheck/propcheck/gen"
	"github.com/burntcheck/propcheck/gen/domain"
	"github.com/burntcheck/propcheck/prop"
	"github.com/burntcheck/propcheck/quick"
)

// =============================================================================
// PROPERTY-BASED TESTING (testing.T integration)
// =============================================================================

// Config holds the configuration for property-based testing against a
// *testing.T.
type Config = prop.Config

// Default returns a default configuration for property-based testing.
func Default() Config {
	return prop.Default()
}

// ForAll runs a property-based test with the given configuration and
// generator, shrinking any counterexample it finds.
func ForAll[T any](t *testing.T, cfg Config, g gen.Generator[T]) func(func(*testing.T, T)) {
	return prop.ForAll(t, cfg, g)
}

// =============================================================================
// SEQUENTIAL CHECK DRIVER (testing.T-independent)
// =============================================================================

// CheckConfig holds the configuration for the sequential, testing.T-free
// driver.
type CheckConfig = check.Config

// CheckOutcome is the tagged Pass/Fail/Discard result of a Check run.
type CheckOutcome = check.Outcome

// DefaultCheckConfig returns the spec-mandated defaults (100 tests, a
// discard budget of 10x that, size schedule [0,100]).
func DefaultCheckConfig() CheckConfig {
	return check.DefaultConfig()
}

// Check runs a Property against DefaultCheckConfig and returns its Outcome.
func Check(p check.Property) CheckOutcome {
	return check.Check(p)
}

// CheckWith runs a Property under an explicit CheckConfig.
func CheckWith(cfg CheckConfig, p check.Property) CheckOutcome {
	return check.CheckWith(cfg, p)
}

// CheckForAll lifts a one-argument, Outcome-returning function into a
// testable Property for use with Check/CheckWith.
func CheckForAll[A any](ga gen.Generator[A], f func(A) CheckOutcome) check.Property {
	return check.ForAll(ga, f)
}

// =============================================================================
// STATE MACHINE TESTING
// =============================================================================

// StateMachine represents a state machine for property-based testing.
type StateMachine[S, C any] = prop.StateMachine[S, C]

// Command represents a command in a state machine.
type Command[S, C any] = prop.Command[S, C]

// TestStateMachine tests a state machine using property-based testing. It
// generates sequences of commands and validates that the state machine
// behaves correctly according to the defined commands and their
// pre/post conditions.
func TestStateMachine[S, C any](t *testing.T, sm StateMachine[S, C], cfg Config) {
	prop.TestStateMachine(t, sm, cfg)
}

// =============================================================================
// GENERATORS
// =============================================================================

// Generator is the interface that all generators must implement.
type Generator[T any] = gen.Generator[T]

// Size controls the scale and limits of generators.
type Size = gen.Size

// Shrinker proposes "smaller" candidates during the shrinking process.
type Shrinker[T any] = gen.Shrinker[T]

// Shrinking strategy constants.
const (
	ShrinkStrategyBFS = gen.ShrinkStrategyBFS
	ShrinkStrategyDFS = gen.ShrinkStrategyDFS
)

// SetShrinkStrategy sets the shrinking strategy for all generators.
func SetShrinkStrategy(s string) {
	gen.SetShrinkStrategy(s)
}

// GetShrinkStrategy returns the current shrinking strategy.
func GetShrinkStrategy() string {
	return gen.GetShrinkStrategy()
}

// =============================================================================
// BASIC GENERATORS
// =============================================================================

// Int generates random integers with automatic range based on Size.
func Int(size gen.Size) gen.Generator[int] { return gen.Int(size) }

// IntRange generates random integers within a specified range.
func IntRange(min, max int) gen.Generator[int] { return gen.IntRange(min, max) }

// Int8, Int16, Int32, Int64 generate signed integers of the named width.
func Int8(size gen.Size) gen.Generator[int8]   { return gen.Int8(size) }
func Int16(size gen.Size) gen.Generator[int16] { return gen.Int16(size) }
func Int32(size gen.Size) gen.Generator[int32] { return gen.Int32(size) }
func Int64(size gen.Size) gen.Generator[int64] { return gen.Int64(size) }

// Uint generates random unsigned integers with automatic range based on Size.
func Uint(size gen.Size) gen.Generator[uint] { return gen.Uint(size) }

// UintRange generates random unsigned integers within a specified range.
func UintRange(min, max uint) gen.Generator[uint] { return gen.UintRange(min, max) }

// Uint8, Uint16, Uint32, Uint64 generate unsigned integers of the named width.
func Uint8(size gen.Size) gen.Generator[uint8]   { return gen.Uint8(size) }
func Uint16(size gen.Size) gen.Generator[uint16] { return gen.Uint16(size) }
func Uint32(size gen.Size) gen.Generator[uint32] { return gen.Uint32(size) }
func Uint64(size gen.Size) gen.Generator[uint64] { return gen.Uint64(size) }

// Float64 generates floating-point numbers with automatic range based on Size.
func Float64(size gen.Size) gen.Generator[float64] { return gen.Float64(size) }

// String generates random strings using an alphabet and Size.
func String(alphabet string, size gen.Size) gen.Generator[string] {
	return gen.String(alphabet, size)
}

// StringAlpha generates strings using only alphabetic characters.
func StringAlpha(size gen.Size) gen.Generator[string] { return gen.StringAlpha(size) }

// StringAlphaNum generates strings using alphanumeric characters.
func StringAlphaNum(size gen.Size) gen.Generator[string] { return gen.StringAlphaNum(size) }

// StringDigits generates strings using only digits.
func StringDigits(size gen.Size) gen.Generator[string] { return gen.StringDigits(size) }

// StringASCII generates strings using all printable ASCII characters.
func StringASCII(size gen.Size) gen.Generator[string] { return gen.StringASCII(size) }

// Char generates a single rune from alphabet.
func Char(alphabet string) gen.Generator[rune] { return gen.Char(alphabet) }

// CharRange generates a single rune in [min, max].
func CharRange(min, max rune) gen.Generator[rune] { return gen.CharRange(min, max) }

// Bytes generates random byte slices.
func Bytes(size gen.Size) gen.Generator[[]byte] { return gen.Bytes(size) }

// Bool generates random boolean values.
func Bool() gen.Generator[bool] { return gen.Bool() }

// =============================================================================
// SLICE / ARRAY GENERATORS
// =============================================================================

// SliceOf generates random slices of the given type.
func SliceOf[T any](g gen.Generator[T], size gen.Size) gen.Generator[[]T] {
	return gen.SliceOf(g, size)
}

// ArrayOf generates random fixed-length arrays of the given type.
func ArrayOf[T any](g gen.Generator[T], n int) gen.Generator[[]T] {
	return gen.ArrayOf(g, n)
}

// =============================================================================
// COMBINATOR / SUM / TUPLE GENERATORS
// =============================================================================

// OneOf randomly selects one of the provided generators.
func OneOf[T any](generators ...gen.Generator[T]) gen.Generator[T] {
	return gen.OneOf(generators...)
}

// Weighted picks a generator based on a dynamic, per-value weight function.
func Weighted[T any](weight func(T) float64, generators ...gen.Generator[T]) gen.Generator[T] {
	return gen.Weighted(weight, generators...)
}

// Const always returns the same value (without shrinking).
func Const[T any](v T) gen.Generator[T] { return gen.Const(v) }

// Map applies f: A -> B preserving shrinking (maps A's candidates).
func Map[A, B any](ga gen.Generator[A], f func(A) B) gen.Generator[B] {
	return gen.Map(ga, f)
}

// Filter keeps only values that satisfy pred.
func Filter[T any](g gen.Generator[T], pred func(T) bool, maxTries int) gen.Generator[T] {
	return gen.Filter(g, pred, maxTries)
}

// Bind (flatMap): the output generator depends on the value generated in A.
func Bind[A, B any](ga gen.Generator[A], f func(A) gen.Generator[B]) gen.Generator[B] {
	return gen.Bind(ga, f)
}

// Option, Some, None, OptionOf mirror gen's optional-value support.
type Option[T any] = gen.Option[T]

func Some[T any](v T) Option[T]               { return gen.Some(v) }
func None[T any]() Option[T]                  { return gen.None[T]() }
func OptionOf[T any](g gen.Generator[T]) gen.Generator[Option[T]] { return gen.OptionOf(g) }

// Either, MakeLeft, MakeRight, EitherOf mirror gen's two-variant support.
type Either[L, R any] = gen.Either[L, R]

func MakeLeft[L, R any](v L) Either[L, R]  { return gen.MakeLeft[L, R](v) }
func MakeRight[L, R any](v R) Either[L, R] { return gen.MakeRight[L, R](v) }
func EitherOf[L, R any](gl gen.Generator[L], gr gen.Generator[R]) gen.Generator[Either[L, R]] {
	return gen.EitherOf(gl, gr)
}

// Pair/Triple/Quad mirror gen's tuple support.
type Pair[A, B any] = gen.Pair[A, B]
type Triple[A, B, C any] = gen.Triple[A, B, C]
type Quad[A, B, C, D any] = gen.Quad[A, B, C, D]

func PairOf[A, B any](ga gen.Generator[A], gb gen.Generator[B]) gen.Generator[Pair[A, B]] {
	return gen.PairOf(ga, gb)
}

func TripleOf[A, B, C any](ga gen.Generator[A], gb gen.Generator[B], gc gen.Generator[C]) gen.Generator[Triple[A, B, C]] {
	return gen.TripleOf(ga, gb, gc)
}

func QuadOf[A, B, C, D any](ga gen.Generator[A], gb gen.Generator[B], gc gen.Generator[C], gd gen.Generator[D]) gen.Generator[Quad[A, B, C, D]] {
	return gen.QuadOf(ga, gb, gc, gd)
}

// =============================================================================
// CUSTOM GENERATORS
// =============================================================================

// From creates a Generator from a function that implements the Generator interface.
func From[T any](fn func(*rand.Rand, Size) (T, Shrinker[T])) gen.Generator[T] {
	return gen.From(fn)
}

// =============================================================================
// DOMAIN-SPECIFIC GENERATORS
// =============================================================================

// CPF generates valid Brazilian CPF (Cadastro de Pessoas Físicas) numbers.
// If masked is true, returns formatted CPF (e.g., "123.456.789-01").
// If masked is false, returns raw CPF (e.g., "12345678901").
func CPF(masked bool) gen.Generator[string] { return domain.CPF(masked) }

// CPFAny generates CPF with random masking (50/50 chance).
func CPFAny() gen.Generator[string] { return domain.CPFAny() }

// ValidCPF validates if a string is a valid CPF.
func ValidCPF(s string) bool { return domain.ValidCPF(s) }

// MaskCPF formats a raw CPF with dots and dashes.
func MaskCPF(raw string) string { return domain.MaskCPF(raw) }

// UnmaskCPF removes formatting from a CPF string.
func UnmaskCPF(s string) string { return domain.UnmaskCPF(s) }

// =============================================================================
// TESTING UTILITIES
// =============================================================================

// Equal compares two values of the same type and fails the test if they
// are not equal, using go-cmp for a detailed diff on mismatch.
func Equal[T any](t *testing.T, got, want T) {
	quick.Equal(t, got, want)
}

// NotEqual fails the test if got and want are deeply equal.
func NotEqual[T any](t *testing.T, got, want T) {
	quick.NotEqual(t, got, want)
}
