package corpus

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %q: %v", path, err)
	}
	return path
}

func TestLoadCiphertext(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "cipher.txt", "  hello, world!  \n")
	idx, err := LoadCiphertext(path)
	if err != nil {
		t.Fatalf("LoadCiphertext: %v", err)
	}
	if got := len(idx); got != 5 { // "HELLO" — the first whitespace-delimited token, letters only
		t.Errorf("LoadCiphertext letter count = %d, want 5", got)
	}
}

func TestLoadCiphertextRejectsEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "empty.txt", "   \n")
	if _, err := LoadCiphertext(path); err == nil {
		t.Error("LoadCiphertext on whitespace-only file: expected error, got nil")
	}
}

func TestLoadBatch(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "batch.txt", "ABCDEF\n\nGHIJKL\n")
	lines, err := LoadBatch(path)
	if err != nil {
		t.Fatalf("LoadBatch: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("LoadBatch returned %d lines, want 2 (blank skipped)", len(lines))
	}
}

func TestParseCiphertextLine(t *testing.T) {
	idx, err := ParseCiphertextLine("abc, DEF!")
	if err != nil {
		t.Fatalf("ParseCiphertextLine: %v", err)
	}
	if len(idx) != 6 {
		t.Errorf("ParseCiphertextLine letter count = %d, want 6", len(idx))
	}
}

func TestLoadCrib(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "crib.txt", "AT__CK\n")
	positions, values, err := LoadCrib(path, 6)
	if err != nil {
		t.Fatalf("LoadCrib: %v", err)
	}
	if len(positions) != 4 {
		t.Fatalf("LoadCrib found %d known positions, want 4", len(positions))
	}
	if positions[0] != 0 || values[0] != 0 { // 'A' -> index 0
		t.Errorf("LoadCrib first known = (%d,%d), want (0,0)", positions[0], values[0])
	}
}

func TestLoadCribRejectsLengthMismatch(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "crib.txt", "AT\n")
	if _, _, err := LoadCrib(path, 6); err == nil {
		t.Error("LoadCrib with mismatched length: expected error, got nil")
	}
}

func TestLoadNgramTableCachesAcrossCalls(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "ngrams.txt", "TH\t1000\nHE\t800\n")

	first, err := LoadNgramTable(path, 2)
	if err != nil {
		t.Fatalf("LoadNgramTable (first): %v", err)
	}
	second, err := LoadNgramTable(path, 2)
	if err != nil {
		t.Fatalf("LoadNgramTable (second, cached): %v", err)
	}
	if first.Size() != second.Size() {
		t.Errorf("cached table size %d != fresh table size %d", second.Size(), first.Size())
	}
	for i, c := range first.Counts() {
		if second.Counts()[i] != c {
			t.Fatalf("cached table diverges from freshly parsed table at index %d", i)
		}
	}
}
