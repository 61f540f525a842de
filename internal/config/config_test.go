package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseRequiresType(t *testing.T) {
	if _, err := Parse([]string{"-ngramfile", "x.ngm", "-ngramsize", "2", "-cipher", "c.txt"}); err == nil {
		t.Error("Parse without -type: expected error, got nil")
	}
}

func TestParseRequiresCipherOrBatch(t *testing.T) {
	if _, err := Parse([]string{"-type", "vig", "-ngramfile", "x.ngm", "-ngramsize", "2"}); err == nil {
		t.Error("Parse without -cipher or -batch: expected error, got nil")
	}
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]string{"-type", "vig", "-ngramfile", "x.ngm", "-ngramsize", "2", "-cipher", "c.txt"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.NHillClimbs != 1000 {
		t.Errorf("NHillClimbs = %d, want 1000 default", cfg.NHillClimbs)
	}
	if !cfg.OptimalCycle {
		t.Error("OptimalCycle default should be true")
	}
}

func TestFlagsOverrideYAML(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "tune.yaml")
	if err := os.WriteFile(yamlPath, []byte("nhillclimbs: 42\nseed: 7\n"), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}

	// YAML alone: seeds both fields from the file.
	cfg, err := Parse([]string{
		"-type", "vig", "-ngramfile", "x.ngm", "-ngramsize", "2", "-cipher", "c.txt",
		"-config", yamlPath,
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.NHillClimbs != 42 || cfg.Seed != 7 {
		t.Errorf("got NHillClimbs=%d Seed=%d, want 42/7 from YAML overlay", cfg.NHillClimbs, cfg.Seed)
	}

	// An explicit flag after -config must win over the YAML value.
	cfg, err = Parse([]string{
		"-type", "vig", "-ngramfile", "x.ngm", "-ngramsize", "2", "-cipher", "c.txt",
		"-config", yamlPath, "-nhillclimbs", "99",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.NHillClimbs != 99 {
		t.Errorf("NHillClimbs = %d, want 99 (explicit flag overriding YAML)", cfg.NHillClimbs)
	}
	if cfg.Seed != 7 {
		t.Errorf("Seed = %d, want 7 (from YAML, untouched by flags)", cfg.Seed)
	}
}

func TestPeekConfigFlagVariants(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"-config", "a.yaml"}, "a.yaml"},
		{[]string{"-config=b.yaml"}, "b.yaml"},
		{[]string{"--config=c.yaml"}, "c.yaml"},
		{[]string{"-type", "vig"}, ""},
		{[]string{"-config"}, ""}, // no value following: not treated as set
	}
	for _, c := range cases {
		if got := peekConfigFlag(c.args); got != c.want {
			t.Errorf("peekConfigFlag(%v) = %q, want %q", c.args, got, c.want)
		}
	}
}
