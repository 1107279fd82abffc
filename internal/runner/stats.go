package runner

import (
	"sync"
	"time"
)

// ErrorRecord captures one failed work item.
type ErrorRecord struct {
	// File is the item's path relative to the input root.
	File string
	// Message is the failure rendered as text; all failure classes
	// (filesystem, codec, copy) are reported identically.
	Message string
}

// Stats aggregates the outcome of a run. All mutators are safe for
// concurrent use by the worker pool; reads through Snapshot see a consistent
// view.
type Stats struct {
	startTime time.Time

	mu             sync.Mutex
	total          int
	processed      int
	skipped        int
	errored        int
	originalBytes  int64
	optimizedBytes int64
	errors         []ErrorRecord
}

// Snapshot is an immutable copy of Stats for reporting.
type Snapshot struct {
	StartTime      time.Time
	Total          int
	Processed      int
	Skipped        int
	Errored        int
	OriginalBytes  int64
	OptimizedBytes int64
	Errors         []ErrorRecord
}

// NewStats returns a Stats for a run over total items, started now.
func NewStats(total int) *Stats {
	return &Stats{startTime: time.Now(), total: total}
}

func (s *Stats) recordSkip() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.skipped++
}

func (s *Stats) addOriginalBytes(n int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.originalBytes += n
}

func (s *Stats) recordProcessed(outputBytes int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.optimizedBytes += outputBytes
	s.processed++
}

func (s *Stats) recordError(file, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errored++
	s.errors = append(s.errors, ErrorRecord{File: file, Message: message})
}

// Done returns how many items have reached a terminal state.
func (s *Stats) Done() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.processed + s.skipped + s.errored
}

// Snapshot copies the current counters and error list.
func (s *Stats) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		StartTime:      s.startTime,
		Total:          s.total,
		Processed:      s.processed,
		Skipped:        s.skipped,
		Errored:        s.errored,
		OriginalBytes:  s.originalBytes,
		OptimizedBytes: s.optimizedBytes,
		Errors:         append([]ErrorRecord(nil), s.errors...),
	}
}
