package deps

import (
	"os"
	"path/filepath"
	"testing"
)

func stubBinary(t *testing.T) string {
	t.Helper()
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	script := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(present, script, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return present
}

func TestCheckBinaries(t *testing.T) {
	present := stubBinary(t)
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}

	if !results[0].Available {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}
	if results[0].Detail != "" {
		t.Fatalf("unexpected detail for available dependency: %s", results[0].Detail)
	}

	if results[1].Available {
		t.Fatal("expected missing binary to be unavailable")
	}
	if results[1].Detail == "" {
		t.Fatal("expected detail message for missing binary")
	}
}

func TestRequirementsDefaultCommand(t *testing.T) {
	reqs := Requirements("")
	if len(reqs) != 1 || reqs[0].Command != "cwebp" {
		t.Fatalf("unexpected requirements: %#v", reqs)
	}

	reqs = Requirements("/opt/webp/bin/cwebp")
	if reqs[0].Command != "/opt/webp/bin/cwebp" {
		t.Fatalf("override not honored: %#v", reqs)
	}
}

func TestEnsure(t *testing.T) {
	if err := Ensure(stubBinary(t)); err != nil {
		t.Fatalf("Ensure with stub binary: %v", err)
	}
	if err := Ensure("clearly-not-present-binary"); err == nil {
		t.Fatal("expected error for missing binary")
	}
}
