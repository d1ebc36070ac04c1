package gen

import (
	"math/rand"
	"testing"
)

func TestUint16RangeRespectsBounds(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	g := Uint16Range(100, 2000)
	for i := 0; i < 200; i++ {
		v, _ := g.Generate(r, Size{})
		if v < 100 || v > 2000 {
			t.Fatalf("Uint16Range(100,2000) produced %d, out of bounds", v)
		}
	}
}

func TestUint16ShrinkTowardsZero(t *testing.T) {
	_, shrink := unsignedShrinkInit[uint16](60000, 0, 60000)
	last := uint16(60000)
	accept := false
	steps := 0
	for {
		v, ok := shrink(accept)
		if !ok {
			break
		}
		last = v
		accept = true
		steps++
		if steps > 64 {
			t.Fatal("Uint16 shrink did not terminate")
		}
	}
	if last != 0 {
		t.Errorf("final accepted shrink = %d, want 0", last)
	}
}

func TestUint16GenerateWithinSize(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	g := Uint16(Size{Max: 100})
	for i := 0; i < 100; i++ {
		v, _ := g.Generate(r, Size{Max: 100})
		if v > 100 {
			t.Fatalf("Uint16 with Size{Max:100} produced %d, out of expected range", v)
		}
	}
}
