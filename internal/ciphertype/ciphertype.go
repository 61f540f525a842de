// Package ciphertype names the cipher family this engine attacks and parses
// the `-type` command line argument into one of those names.
package ciphertype

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Type is the tagged sum of every cipher this engine knows how to attack.
type Type int

const (
	Vigenere Type = iota // 0
	Quagmire1
	Quagmire2
	Quagmire3
	Quagmire4
	Beaufort
	Porta
	Autokey0 // straight-alphabet autokey
	Autokey1
	Autokey2
	Autokey3
	Autokey4
)

// names is indexed by Type and gives its canonical display name.
var names = [...]string{
	Vigenere:  "Vigenere",
	Quagmire1: "Quagmire I",
	Quagmire2: "Quagmire II",
	Quagmire3: "Quagmire III",
	Quagmire4: "Quagmire IV",
	Beaufort:  "Beaufort",
	Porta:     "Porta",
	Autokey0:  "Autokey (Straight)",
	Autokey1:  "Autokey (Quagmire I)",
	Autokey2:  "Autokey (Quagmire II)",
	Autokey3:  "Autokey (Quagmire III)",
	Autokey4:  "Autokey (Quagmire IV)",
}

func (t Type) String() string {
	if int(t) < 0 || int(t) >= len(names) {
		return "unknown"
	}
	return names[t]
}

// Valid reports whether t is a recognized cipher type.
func (t Type) Valid() bool {
	return int(t) >= 0 && int(t) < len(names)
}

// IsAutokey reports whether t is one of the five autokey variants.
func (t Type) IsAutokey() bool {
	return t >= Autokey0 && t <= Autokey4
}

// IsQuagmire reports whether t is a periodic Quagmire variant (not Vigenere,
// not Beaufort/Porta, and not autokey).
func (t Type) IsQuagmire() bool {
	return t >= Quagmire1 && t <= Quagmire4
}

// aliases maps every case-folded alias accepted on the command line to its
// Type. Numeric aliases are handled separately in Parse.
var aliases = map[string]Type{
	"vig":       Vigenere,
	"vigenere":  Vigenere,
	"q1":        Quagmire1,
	"quag1":     Quagmire1,
	"quagmire1": Quagmire1,
	"q2":        Quagmire2,
	"quag2":     Quagmire2,
	"quagmire2": Quagmire2,
	"q3":        Quagmire3,
	"quag3":     Quagmire3,
	"quagmire3": Quagmire3,
	"q4":        Quagmire4,
	"quag4":     Quagmire4,
	"quagmire4": Quagmire4,
	"beau":      Beaufort,
	"beaufort":  Beaufort,
	"porta":     Porta,
	"auto":      Autokey0,
	"autokey":   Autokey0,
	"auto0":     Autokey0,
	"autokey0":  Autokey0,
	"auto1":     Autokey1,
	"autokey1":  Autokey1,
	"auto2":     Autokey2,
	"autokey2":  Autokey2,
	"auto3":     Autokey3,
	"autokey3":  Autokey3,
	"auto4":     Autokey4,
	"autokey4":  Autokey4,
}

// Parse resolves the `-type` argument to a Type. A bare integer is accepted
// as one of the numeric Type constants above; otherwise the named aliases
// above are matched case-insensitively.
func Parse(arg string) (Type, error) {
	if arg == "" {
		return 0, errors.New("cipher type is required")
	}
	if val, err := strconv.Atoi(arg); err == nil {
		t := Type(val)
		if !t.Valid() {
			return 0, errors.Errorf("cipher type %d out of range [0,%d]", val, len(names)-1)
		}
		return t, nil
	}
	if t, ok := aliases[strings.ToLower(arg)]; ok {
		return t, nil
	}
	return 0, errors.Errorf("unrecognized cipher type %q", arg)
}
