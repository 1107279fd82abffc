// Package logging assembles the structured slog loggers used across webpify.
//
// It owns the console and JSON handlers, centralizes level parsing, and
// exposes small attribute helpers so call sites do not import log/slog
// directly. The console handler colors level tags when the destination is a
// terminal and degrades to plain text when output is redirected. The package
// also provides a no-op logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits log lines with the same shape.
package logging
