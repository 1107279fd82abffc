package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"webpify/internal/testsupport"
)

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writeStubConfig writes a config file pointing cwebp_binary at a stub
// script, so CLI tests never require libwebp.
func writeStubConfig(t *testing.T, binary string, extra string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := "[encoder]\ncwebp_binary = \"" + binary + "\"\n" + extra
	testsupport.WriteFile(t, path, []byte(contents))
	return path
}

func TestRootNoArgsShowsHelp(t *testing.T) {
	stdout, _, err := executeCommand(t)
	if err != nil {
		t.Fatalf("help should not error: %v", err)
	}
	if !strings.Contains(stdout, "webpify <input-folder>") {
		t.Fatalf("expected usage in output:\n%s", stdout)
	}
}

func TestRootRejectsInvalidQuality(t *testing.T) {
	input := t.TempDir()
	cfg := writeStubConfig(t, testsupport.StubCwebp(t), "")

	for _, quality := range []string{"0", "101", "-3"} {
		_, _, err := executeCommand(t, input, "--config", cfg, "-q", quality)
		if err == nil {
			t.Fatalf("quality %s should be rejected", quality)
		}
	}
}

func TestRootRejectsInvalidConcurrency(t *testing.T) {
	input := t.TempDir()
	cfg := writeStubConfig(t, testsupport.StubCwebp(t), "")

	_, _, err := executeCommand(t, input, "--config", cfg, "-c", "0")
	if err == nil {
		t.Fatal("concurrency 0 should be rejected")
	}
}

func TestRootRejectsMissingInputFolder(t *testing.T) {
	cfg := writeStubConfig(t, testsupport.StubCwebp(t), "")
	missing := filepath.Join(t.TempDir(), "absent")

	_, _, err := executeCommand(t, missing, "--config", cfg)
	if err == nil {
		t.Fatal("missing input folder should be fatal")
	}
}

func TestRootRejectsFileAsInput(t *testing.T) {
	cfg := writeStubConfig(t, testsupport.StubCwebp(t), "")
	file := filepath.Join(t.TempDir(), "not-a-dir.png")
	testsupport.WriteFile(t, file, []byte("x"))

	_, _, err := executeCommand(t, file, "--config", cfg)
	if err == nil {
		t.Fatal("file input should be fatal")
	}
}

func TestRunConvertEndToEnd(t *testing.T) {
	base := t.TempDir()
	input := filepath.Join(base, "photos")
	testsupport.WriteTree(t, input, "a.png", "b.jpg", "c.webp", "sub/d.png")
	cfg := writeStubConfig(t, testsupport.StubCwebp(t), "")

	stdout, _, err := executeCommand(t, input, "--config", cfg, "-q", "85", "-c", "2")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	output := filepath.Join(base, "photos-webp")
	for _, rel := range []string{"a.webp", "b.webp", "c.webp", "sub/d.webp"} {
		if _, err := os.Stat(filepath.Join(output, filepath.FromSlash(rel))); err != nil {
			t.Fatalf("missing output %s: %v", rel, err)
		}
	}
	if !strings.Contains(stdout, "Total files") {
		t.Fatalf("expected summary table on stdout:\n%s", stdout)
	}

	// Second run resumes: everything is skipped, outputs untouched.
	before, err := os.ReadFile(filepath.Join(output, "a.webp"))
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := executeCommand(t, input, "--config", cfg); err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	after, err := os.ReadFile(filepath.Join(output, "a.webp"))
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Fatal("resume must not rewrite existing outputs")
	}
}

func TestRunZeroImages(t *testing.T) {
	base := t.TempDir()
	input := filepath.Join(base, "empty")
	if err := os.MkdirAll(input, 0o755); err != nil {
		t.Fatal(err)
	}
	cfg := writeStubConfig(t, testsupport.StubCwebp(t), "")

	stdout, _, err := executeCommand(t, input, "--config", cfg)
	if err != nil {
		t.Fatalf("zero images should exit cleanly: %v", err)
	}
	if !strings.Contains(stdout, "No images found.") {
		t.Fatalf("expected zero-image notice:\n%s", stdout)
	}
	if _, err := os.Stat(filepath.Join(base, "empty-webp")); !os.IsNotExist(err) {
		t.Fatal("zero-image run must not create the output folder")
	}
}

func TestRunDryRunTouchesNothing(t *testing.T) {
	base := t.TempDir()
	input := filepath.Join(base, "photos")
	testsupport.WriteTree(t, input, "a.png", "c.webp")
	// Dry run must not require cwebp at all.
	cfg := writeStubConfig(t, "definitely-not-installed-cwebp", "")

	stdout, _, err := executeCommand(t, input, "--config", cfg, "--dry-run")
	if err != nil {
		t.Fatalf("dry run failed: %v", err)
	}
	if !strings.Contains(stdout, "a.png") || !strings.Contains(stdout, "Dry run: 2 files") {
		t.Fatalf("unexpected dry-run output:\n%s", stdout)
	}
	if _, err := os.Stat(filepath.Join(base, "photos-webp")); !os.IsNotExist(err) {
		t.Fatal("dry run must not create the output folder")
	}
}

func TestRunFailsFastWhenEncoderMissing(t *testing.T) {
	base := t.TempDir()
	input := filepath.Join(base, "photos")
	testsupport.WriteTree(t, input, "a.png")
	cfg := writeStubConfig(t, "definitely-not-installed-cwebp", "")

	_, _, err := executeCommand(t, input, "--config", cfg)
	if err == nil {
		t.Fatal("missing encoder binary should be fatal before processing")
	}
}

func TestRunRecordsCodecFailures(t *testing.T) {
	base := t.TempDir()
	input := filepath.Join(base, "photos")
	testsupport.WriteTree(t, input, "a.png", "b.jpg")
	cfg := writeStubConfig(t, testsupport.StubCwebpFailing(t), "")

	stdout, _, err := executeCommand(t, input, "--config", cfg)
	if err != nil {
		t.Fatalf("per-item codec failures must not fail the command: %v", err)
	}
	if !strings.Contains(stdout, "codec error") && !strings.Contains(stdout, "cannot open input file") {
		t.Fatalf("expected error records in summary:\n%s", stdout)
	}
}
