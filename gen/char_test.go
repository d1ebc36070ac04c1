package gen

import (
	"math/rand"
	"strings"
	"testing"
)

func TestCharDrawnFromAlphabet(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	g := Char("abc")
	for i := 0; i < 50; i++ {
		v, _ := g.Generate(r, Size{})
		if !strings.ContainsRune("abc", v) {
			t.Fatalf("Char(\"abc\") produced %q, not in alphabet", v)
		}
	}
}

func TestCharEmptyAlphabetFallsBackToDefault(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	g := Char("")
	v, _ := g.Generate(r, Size{})
	if !strings.ContainsRune(DefaultCharAlphabet, v) {
		t.Fatalf("Char(\"\") produced %q, not in default alphabet", v)
	}
}

func TestCharShrinksTowardsFirstRune(t *testing.T) {
	_, shrink := charShrinkInit(4, 4)
	last := 4
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
		if steps > 32 {
			t.Fatal("char shrink did not terminate")
		}
	}
	if last != 0 {
		t.Errorf("final accepted shrink index = %d, want 0", last)
	}
}

func TestCharRangeRespectsBounds(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	g := CharRange('a', 'e')
	for i := 0; i < 50; i++ {
		v, _ := g.Generate(r, Size{})
		if v < 'a' || v > 'e' {
			t.Fatalf("CharRange('a','e') produced %q, out of bounds", v)
		}
	}
}

func TestCharRangeShrinksTowardsMin(t *testing.T) {
	_, shrink := runeShrinkInit('z', 'a', 'z')
	last := rune('z')
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
			t.Fatal("rune shrink did not terminate")
		}
	}
	if last != 'a' {
		t.Errorf("final accepted shrink = %q, want 'a'", last)
	}
}
