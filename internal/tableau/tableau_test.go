package tableau

import (
	"testing"

	"github.com/stblake/polyalphabetic/internal/alphabet"
	"github.com/stblake/polyalphabetic/internal/ciphertype"
)

func plaintextIndices(t *testing.T, s string) []int {
	idx, err := alphabet.TextToIndices(s)
	if err != nil {
		t.Fatalf("TextToIndices(%q): %v", s, err)
	}
	return idx
}

func keyedFrom(keyword string) [alphabet.Size]int {
	kw, _ := alphabet.TextToIndices(keyword)
	perm, _ := alphabet.Keyed(kw)
	return perm
}

func TestRoundTripAllTypes(t *testing.T) {
	pt := plaintextIndices(t, "THEQUICKBROWNFOXJUMPSOVERTHELAZYDOG")
	cases := []State{
		{Type: ciphertype.Vigenere, PT: alphabet.Straight(), CT: alphabet.Straight(), Cycleword: plaintextIndices(t, "KEY")},
		{Type: ciphertype.Beaufort, PT: alphabet.Straight(), CT: alphabet.Straight(), Cycleword: plaintextIndices(t, "KEY")},
		{Type: ciphertype.Porta, PT: alphabet.Straight(), CT: alphabet.Straight(), Cycleword: plaintextIndices(t, "KEY")},
		{Type: ciphertype.Quagmire1, PT: keyedFrom("CIPHER"), CT: alphabet.Straight(), Cycleword: plaintextIndices(t, "WORD")},
		{Type: ciphertype.Quagmire2, PT: alphabet.Straight(), CT: keyedFrom("CIPHER"), Cycleword: plaintextIndices(t, "WORD")},
		{Type: ciphertype.Quagmire3, PT: keyedFrom("CIPHER"), CT: keyedFrom("CIPHER"), Cycleword: plaintextIndices(t, "WORD")},
		{Type: ciphertype.Quagmire4, PT: keyedFrom("CIPHER"), CT: keyedFrom("SECRET"), Cycleword: plaintextIndices(t, "WORD")},
	}
	for _, s := range cases {
		ct := Encrypt(pt, s)
		got := Decrypt(ct, s)
		if !equal(got, pt) {
			t.Errorf("%v: round trip failed: got %v, want %v", s.Type, got, pt)
		}
	}
}

func TestRoundTripVariant(t *testing.T) {
	pt := plaintextIndices(t, "ATTACKATDAWN")
	s := State{Type: ciphertype.Quagmire1, Variant: true, PT: keyedFrom("CIPHER"), CT: alphabet.Straight(), Cycleword: plaintextIndices(t, "WORD")}
	ct := Encrypt(pt, s)
	got := Decrypt(ct, s)
	if !equal(got, pt) {
		t.Errorf("variant round trip failed: got %v, want %v", got, pt)
	}
}

func TestBeaufortSelfInverse(t *testing.T) {
	pt := plaintextIndices(t, "SELFINVERSE")
	cw := plaintextIndices(t, "KEY")
	ct := beaufortCore(pt, cw)
	back := beaufortCore(ct, cw)
	if !equal(back, pt) {
		t.Errorf("beaufortCore not self-inverse: got %v, want %v", back, pt)
	}
}

func TestPortaSelfInverse(t *testing.T) {
	pt := plaintextIndices(t, "SELFINVERSE")
	cw := plaintextIndices(t, "KEY")
	ct := portaCore(pt, cw)
	back := portaCore(ct, cw)
	if !equal(back, pt) {
		t.Errorf("portaCore not self-inverse: got %v, want %v", back, pt)
	}
}

func equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

