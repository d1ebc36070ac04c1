package gen

import (
	"math/rand"
	"testing"
)

func TestBytesRespectsSize(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	g := Bytes(Size{Min: 0, Max: 8})
	for i := 0; i < 50; i++ {
		v, _ := g.Generate(r, Size{})
		if len(v) > 8 {
			t.Fatalf("Bytes(Size{Max:8}) produced length %d, over bound", len(v))
		}
	}
}

func TestBytesShrinksTowardsEmpty(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	g := Bytes(Size{Min: 0, Max: 16})
	_, shrink := g.Generate(r, Size{})

	last := []byte{}
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
		if steps > 1000 {
			t.Fatal("Bytes shrink did not terminate")
		}
	}
	_ = last
}
