package report

import (
	"time"

	"webpify/internal/runner"
)

// Summary holds the derived end-of-run figures.
type Summary struct {
	RunID string

	Total     int
	Processed int
	Skipped   int
	Errored   int

	OriginalBytes  int64
	OptimizedBytes int64
	SavedBytes     int64
	// PercentSaved is SavedBytes relative to OriginalBytes, 0 when nothing
	// was read.
	PercentSaved float64

	ElapsedTime time.Duration
	// Throughput is processed files per elapsed second, 0 for an instant run.
	Throughput float64

	Errors []runner.ErrorRecord
}

// Summarize derives the summary figures from a stats snapshot, with now as
// the end of the run.
func Summarize(runID string, snap runner.Snapshot, now time.Time) Summary {
	summary := Summary{
		RunID:          runID,
		Total:          snap.Total,
		Processed:      snap.Processed,
		Skipped:        snap.Skipped,
		Errored:        snap.Errored,
		OriginalBytes:  snap.OriginalBytes,
		OptimizedBytes: snap.OptimizedBytes,
		SavedBytes:     snap.OriginalBytes - snap.OptimizedBytes,
		Errors:         snap.Errors,
	}

	if elapsed := now.Sub(snap.StartTime); elapsed > 0 {
		summary.ElapsedTime = elapsed
	}
	if summary.OriginalBytes > 0 {
		summary.PercentSaved = float64(summary.SavedBytes) / float64(summary.OriginalBytes) * 100
	}
	if seconds := summary.ElapsedTime.Seconds(); seconds > 0 {
		summary.Throughput = float64(summary.Processed) / seconds
	}
	return summary
}
