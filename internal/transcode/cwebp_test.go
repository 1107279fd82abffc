package transcode

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"webpify/internal/testsupport"
)

func TestEncodeArgs(t *testing.T) {
	args := encodeArgs("in.png", "out.webp", 72)
	want := []string{"-q", "72", "-m", "6", "-sharp_yuv", "-quiet", "in.png", "-o", "out.webp"}
	if len(args) != len(want) {
		t.Fatalf("args = %v, want %v", args, want)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Fatalf("args[%d] = %q, want %q", i, args[i], want[i])
		}
	}
}

func TestCwebpEncodeSuccess(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "photo.png")
	output := filepath.Join(dir, "photo.webp")
	testsupport.WriteFile(t, input, []byte("fake png payload"))

	enc := NewCwebp(testsupport.StubCwebp(t))
	if err := enc.Encode(context.Background(), input, output, 85); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "fake png payload" {
		t.Fatalf("stub should have copied input, got %q", got)
	}
}

func TestCwebpEncodeFailureIsCodecError(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "corrupt.jpg")
	output := filepath.Join(dir, "corrupt.webp")
	testsupport.WriteFile(t, input, []byte("not a jpeg"))

	enc := NewCwebp(testsupport.StubCwebpFailing(t))
	err := enc.Encode(context.Background(), input, output, 85)
	if err == nil {
		t.Fatal("expected encode failure")
	}
	if !errors.Is(err, ErrCodec) {
		t.Fatalf("expected ErrCodec, got %v", err)
	}
	if !strings.Contains(err.Error(), "cannot open input file") {
		t.Fatalf("expected stderr detail in error, got %v", err)
	}
	if _, statErr := os.Stat(output); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatalf("partial output should be removed, stat err = %v", statErr)
	}
}

func TestCwebpEncodeEmptyOutputIsCodecError(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "empty.png")
	output := filepath.Join(dir, "empty.webp")
	testsupport.WriteFile(t, input, nil)

	enc := NewCwebp(testsupport.StubCwebp(t))
	err := enc.Encode(context.Background(), input, output, 85)
	if !errors.Is(err, ErrCodec) {
		t.Fatalf("expected ErrCodec for empty output, got %v", err)
	}
	if _, statErr := os.Stat(output); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatalf("empty output should be removed, stat err = %v", statErr)
	}
}

func TestCwebpMissingBinary(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "a.png")
	testsupport.WriteFile(t, input, []byte("x"))

	enc := NewCwebp(filepath.Join(dir, "no-such-binary"))
	err := enc.Encode(context.Background(), input, filepath.Join(dir, "a.webp"), 85)
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
	if errors.Is(err, ErrCodec) {
		t.Fatalf("missing binary is not a codec error: %v", err)
	}
}

func TestCopy(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "already.webp")
	output := filepath.Join(dir, "out", "already.webp")
	testsupport.WriteFile(t, input, []byte("webp bytes"))

	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := Copy(input, output); err != nil {
		t.Fatalf("Copy: %v", err)
	}

	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "webp bytes" {
		t.Fatalf("copy mismatch: %q", got)
	}
}

func TestNewCwebpDefaultsBinary(t *testing.T) {
	if NewCwebp("  ").Binary != "cwebp" {
		t.Fatal("blank binary should default to cwebp")
	}
}
