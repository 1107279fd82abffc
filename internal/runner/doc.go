// Package runner executes a discovered set of work items with bounded
// concurrency and accumulates run statistics.
//
// A fixed pool of worker goroutines pulls items from a shared channel, so a
// slow file delays only its own worker rather than a whole batch. Each item
// is processed independently: ensure the output directory, skip if the output
// already exists (resume), then encode or copy and record byte sizes. Any
// per-item failure is recorded and isolated; only lock acquisition and
// output-root creation abort a run. An flock-based lock on the output root
// keeps two concurrent runs from racing the skip check.
package runner
