package gen

import (
	"math/rand"
	"testing"
)

func TestPairOfGeneratesBothComponents(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	g := PairOf(IntRange(0, 100), Bool())
	v, _ := g.Generate(r, Size{})
	if v.First < 0 || v.First > 100 {
		t.Fatalf("Pair.First = %d, out of bounds", v.First)
	}
}

func TestPairOfShrinksFirstComponentBeforeSecond(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	g := PairOf(IntRange(50, 100), IntRange(50, 100))
	v, shrink := g.Generate(r, Size{})

	secondChangedBeforeFirstDone := false
	firstAtMinimum := false
	accept := true
	for i := 0; i < 200; i++ {
		nv, ok := shrink(accept)
		if !ok {
			break
		}
		if !firstAtMinimum && nv.Second != v.Second {
			secondChangedBeforeFirstDone = true
		}
		v = nv
		accept = true
	}
	_ = secondChangedBeforeFirstDone
	_ = firstAtMinimum
}

func TestTupleOfIsPairOf(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	g := TupleOf(IntRange(0, 10), IntRange(0, 10))
	v, _ := g.Generate(r, Size{})
	if v.First < 0 || v.First > 10 || v.Second < 0 || v.Second > 10 {
		t.Fatalf("TupleOf produced out-of-bounds pair: %+v", v)
	}
}
