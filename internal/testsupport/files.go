// Package testsupport provides shared fixtures for webpify tests: image-tree
// builders and stand-in cwebp scripts so tests never depend on libwebp being
// installed.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes contents to path, creating parent directories.
func WriteFile(t *testing.T, path string, contents []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteTree creates one file per entry under root. Names use slash-separated
// relative paths; each file's contents are its own name, which keeps size
// assertions simple.
func WriteTree(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		WriteFile(t, filepath.Join(root, filepath.FromSlash(name)), []byte(name))
	}
}

const stubScript = `#!/bin/sh
# cwebp stand-in: copies input to output.
in=""
out=""
while [ $# -gt 0 ]; do
  case "$1" in
    -o) shift; out="$1" ;;
    -q|-m) shift ;;
    -sharp_yuv|-quiet) ;;
    *) in="$1" ;;
  esac
  shift
done
[ -n "$in" ] && [ -n "$out" ] || exit 1
cp "$in" "$out"
`

const failingStubScript = `#!/bin/sh
echo "cannot open input file" >&2
exit 1
`

// StubCwebp returns the path of a script that mimics a successful cwebp run
// by copying the input file to the output path.
func StubCwebp(t *testing.T) string {
	return writeScript(t, "cwebp", stubScript)
}

// StubCwebpFailing returns the path of a script that always fails the way
// cwebp does on corrupt input: non-zero exit and a diagnostic on stderr.
func StubCwebpFailing(t *testing.T) string {
	return writeScript(t, "cwebp-failing", failingStubScript)
}

func writeScript(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o755); err != nil {
		t.Fatalf("write stub script: %v", err)
	}
	return path
}
