// Package quick provides quick testing utilities for Go.
// It includes helper functions for common testing patterns, particularly
// for value comparison and assertion utilities.
package quick

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Equal compares two values of the same type and fails the test if they are not equal.
// It uses go-cmp for deep comparison and provides detailed diff output when values differ.
// The function calls t.Helper() to mark itself as a test helper function.
//
// Parameters:
//   - t: The testing.T instance for the current test
//   - got: The actual value obtained from the code under test
//   - want: The expected value
//
// Example usage:
//
//	quick.Equal(t, result, expected)
//	quick.Equal(t, []int{1, 2, 3}, []int{1, 2, 3})
//	quick.Equal(t, map[string]int{"a": 1}, map[string]int{"a": 1})
func Equal[T any](t *testing.T, got, want T) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

// NotEqual is the mirror of Equal: it fails the test if got and want are
// deeply equal. Property/shrink tests use it to assert that a proposed
// shrink candidate actually differs from the value it was derived from,
// rather than spelling out a manual "==" check at every call site.
//
// Example usage:
//
//	quick.NotEqual(t, shrunk, original)
func NotEqual[T any](t *testing.T, got, want T) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff == "" {
		t.Fatalf("got %v, expected a value different from %v", got, want)
	}
}
