package transcode

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"webpify/internal/fileutil"
)

// ErrCodec marks failures produced by the encoder itself (corrupt or
// unsupported input) rather than by the surrounding filesystem work. Match
// with errors.Is.
var ErrCodec = errors.New("codec error")

// Transcoder converts a single source image into a WebP file.
type Transcoder interface {
	Encode(ctx context.Context, inputPath, outputPath string, quality int) error
}

// Cwebp invokes the libwebp cwebp binary, one process per file.
type Cwebp struct {
	// Binary is the executable name or path. Empty means "cwebp" on PATH.
	Binary string
}

// NewCwebp returns a Cwebp using the given binary.
func NewCwebp(binary string) *Cwebp {
	trimmed := strings.TrimSpace(binary)
	if trimmed == "" {
		trimmed = "cwebp"
	}
	return &Cwebp{Binary: trimmed}
}

// Encode runs cwebp on inputPath, writing outputPath. A failed or empty
// encode removes whatever partial output exists before returning, so
// existence of outputPath keeps meaning "done" for resume purposes.
func (c *Cwebp) Encode(ctx context.Context, inputPath, outputPath string, quality int) error {
	cmd := exec.CommandContext(ctx, c.Binary, encodeArgs(inputPath, outputPath, quality)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		_ = os.Remove(outputPath)
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%w: cwebp exited with %d: %s", ErrCodec, exitErr.ExitCode(), stderrTail(stderr.String()))
		}
		return fmt.Errorf("run cwebp: %w", err)
	}

	info, err := os.Stat(outputPath)
	if err != nil {
		return fmt.Errorf("stat encoded output: %w", err)
	}
	if info.Size() == 0 {
		_ = os.Remove(outputPath)
		return fmt.Errorf("%w: cwebp produced an empty file for %s", ErrCodec, inputPath)
	}
	return nil
}

// encodeArgs builds the cwebp argument list: configured quality, maximum
// effort (-m 6), and sharp YUV conversion for photographic chroma.
func encodeArgs(inputPath, outputPath string, quality int) []string {
	return []string{
		"-q", strconv.Itoa(quality),
		"-m", "6",
		"-sharp_yuv",
		"-quiet",
		inputPath,
		"-o", outputPath,
	}
}

// stderrTail keeps the last few lines of encoder output; cwebp prefixes its
// diagnostics with progress noise that is useless in an error record.
func stderrTail(stderr string) string {
	trimmed := strings.TrimSpace(stderr)
	if trimmed == "" {
		return "no encoder output"
	}
	lines := strings.Split(trimmed, "\n")
	if len(lines) > 3 {
		lines = lines[len(lines)-3:]
	}
	return strings.Join(lines, " | ")
}

// Copy passes an already-WebP source through to outputPath unchanged.
func Copy(inputPath, outputPath string) error {
	if err := fileutil.CopyFile(inputPath, outputPath); err != nil {
		return fmt.Errorf("copy %s: %w", inputPath, err)
	}
	return nil
}
