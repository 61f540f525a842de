package crib

import (
	"testing"

	"github.com/stblake/polyalphabetic/internal/alphabet"
)

func TestSatisfiedForPeriodVacuousWithNoCrib(t *testing.T) {
	if !SatisfiedForPeriod([]int{0, 1, 2}, Crib{}, 3) {
		t.Error("empty crib must always satisfy any period")
	}
}

func TestSatisfiedForPeriodDetectsConflict(t *testing.T) {
	cipher := []int{10, 11, 10, 12} // positions 0 and 2 share column 0 (period 2)
	// Two cribs landing in the same column, mapping the same ciphertext
	// letter (10) to two different plaintext letters, must conflict.
	c := Crib{Positions: []int{0, 2}, Values: []int{1, 2}}
	if SatisfiedForPeriod(cipher, c, 2) {
		t.Error("expected a conflict: same ciphertext letter implying two plaintext letters in one column")
	}
}

func TestSatisfiedForPeriodAllowsConsistentCrib(t *testing.T) {
	cipher := []int{10, 11, 13, 12}
	c := Crib{Positions: []int{0, 1}, Values: []int{1, 2}}
	if !SatisfiedForPeriod(cipher, c, 4) {
		t.Error("expected consistent, non-overlapping crib to satisfy the period")
	}
}

func TestConstrainDetectsContradiction(t *testing.T) {
	cipher := []int{5, 6}
	straight := alphabet.Straight()
	// pos 0 implies cycleword[0] via (5-1)=4; pos 1 is placed in the same
	// slot (period 1) and implies a different rotation.
	c := Crib{Positions: []int{0, 1}, Values: []int{1, 9}}
	cycleword := make([]int, 1)
	res := Constrain(cipher, c, straight, straight, false, cycleword)
	if !res.Contradiction {
		t.Error("expected a contradiction when two cribs in the same slot imply different rotations")
	}
}

func TestConstrainWritesImpliedSlot(t *testing.T) {
	straight := alphabet.Straight()
	cipher := []int{7}
	c := Crib{Positions: []int{0}, Values: []int{2}}
	cycleword := make([]int, 1)
	res := Constrain(cipher, c, straight, straight, false, cycleword)
	if res.Contradiction {
		t.Fatal("unexpected contradiction")
	}
	want := mod26(7 - 2)
	if cycleword[0] != want {
		t.Errorf("cycleword[0] = %d, want %d", cycleword[0], want)
	}
}
