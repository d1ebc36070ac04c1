package check

import "testing"

func TestReprOfScalars(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{42, "42"},
		{-1, "-1"},
		{"ab", "\"ab\""},
		{true, "true"},
	}
	for _, c := range cases {
		if got := reprOf(c.in); got != c.want {
			t.Errorf("reprOf(%#v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestReprOfSlice(t *testing.T) {
	if got, want := reprOf([]int{0}), "[0]"; got != want {
		t.Errorf("reprOf([0]) = %q, want %q", got, want)
	}
	if got, want := reprOf([]int{}), "[]"; got != want {
		t.Errorf("reprOf([]int{}) = %q, want %q", got, want)
	}
}

func TestEvalChainAttachesWitness(t *testing.T) {
	trial := evalChain(5, func(x int) Outcome {
		return FromBool(x < 0)
	}, func(accept bool) (int, bool) { return 0, false }, reprOf2)
	if trial.Outcome.Status != StatusFail {
		t.Fatalf("expected Fail, got %+v", trial.Outcome)
	}
	if trial.Outcome.Witness != "(5)" {
		t.Errorf("Witness = %q, want \"(5)\"", trial.Outcome.Witness)
	}
}

func reprOf2(x int) string { return reprOf(x) }
