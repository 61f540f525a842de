package ciphertype

import "testing"

func TestParseNumeric(t *testing.T) {
	got, err := Parse("1")
	if err != nil {
		t.Fatalf("Parse(\"1\"): %v", err)
	}
	if got != Quagmire1 {
		t.Errorf("Parse(\"1\") = %v, want Quagmire1", got)
	}
}

func TestParseAliasesCaseInsensitive(t *testing.T) {
	cases := map[string]Type{
		"vig":       Vigenere,
		"VIGENERE":  Vigenere,
		"Quag3":     Quagmire3,
		"beau":      Beaufort,
		"Porta":     Porta,
		"autokey4":  Autokey4,
		"AUTO":      Autokey0,
	}
	for alias, want := range cases {
		got, err := Parse(alias)
		if err != nil {
			t.Fatalf("Parse(%q): %v", alias, err)
		}
		if got != want {
			t.Errorf("Parse(%q) = %v, want %v", alias, got, want)
		}
	}
}

func TestParseRejectsUnknown(t *testing.T) {
	if _, err := Parse("not-a-cipher"); err == nil {
		t.Error("Parse(unknown alias): expected error, got nil")
	}
	if _, err := Parse(""); err == nil {
		t.Error("Parse(\"\"): expected error, got nil")
	}
}

func TestParseRejectsOutOfRangeNumeric(t *testing.T) {
	if _, err := Parse("99"); err == nil {
		t.Error("Parse(\"99\"): expected error, got nil")
	}
	if _, err := Parse("-1"); err == nil {
		t.Error("Parse(\"-1\"): expected error, got nil")
	}
}

func TestIsAutokeyIsQuagmire(t *testing.T) {
	for _, at := range []Type{Autokey0, Autokey1, Autokey2, Autokey3, Autokey4} {
		if !at.IsAutokey() {
			t.Errorf("%v.IsAutokey() = false, want true", at)
		}
	}
	for _, q := range []Type{Quagmire1, Quagmire2, Quagmire3, Quagmire4} {
		if !q.IsQuagmire() {
			t.Errorf("%v.IsQuagmire() = false, want true", q)
		}
	}
	if Vigenere.IsQuagmire() || Beaufort.IsQuagmire() || Porta.IsQuagmire() {
		t.Error("Vigenere/Beaufort/Porta must not be IsQuagmire")
	}
}

func TestStringOfAllValidTypes(t *testing.T) {
	for i := Vigenere; i <= Autokey4; i++ {
		if s := i.String(); s == "unknown" {
			t.Errorf("%d.String() = %q, want a real name", int(i), s)
		}
		if !i.Valid() {
			t.Errorf("%d.Valid() = false", int(i))
		}
	}
}
