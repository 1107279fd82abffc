package runner

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"

	"webpify/internal/discover"
	"webpify/internal/fileutil"
	"webpify/internal/logging"
	"webpify/internal/transcode"
)

// lockFileName sits inside the output root and guards it against concurrent
// runs, which would race the skip check.
const lockFileName = ".webpify.lock"

// Config holds the immutable parameters of one run.
type Config struct {
	InputRoot   string
	OutputRoot  string
	Quality     int
	Concurrency int
}

// Runner drives work items through the transcoder with bounded concurrency.
type Runner struct {
	cfg        Config
	transcoder transcode.Transcoder
	logger     *slog.Logger

	// OnItemDone, when set, is called after every item reaches a terminal
	// state with the number of finished items and the run total. Used for
	// progress rendering; must be safe for concurrent calls.
	OnItemDone func(done, total int)
}

// New constructs a Runner. A nil logger disables logging.
func New(cfg Config, transcoder transcode.Transcoder, logger *slog.Logger) *Runner {
	return &Runner{
		cfg:        cfg,
		transcoder: transcoder,
		logger:     logging.NewComponentLogger(logger, "runner"),
	}
}

// Run processes all items and returns the accumulated statistics. Per-item
// failures are recorded in the stats and never abort the batch; the returned
// error is reserved for fatal conditions (output root creation, lock
// contention). When ctx is canceled, in-flight items record errors, queued
// items are dropped, and Run returns the partial stats with no error.
func (r *Runner) Run(ctx context.Context, items []discover.WorkItem) (*Stats, error) {
	stats := NewStats(len(items))
	if len(items) == 0 {
		return stats, nil
	}

	if err := fileutil.EnsureDir(r.cfg.OutputRoot); err != nil {
		return stats, fmt.Errorf("create output root %s: %w", r.cfg.OutputRoot, err)
	}

	lock := flock.New(filepath.Join(r.cfg.OutputRoot, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return stats, fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return stats, fmt.Errorf("another webpify run is already writing to %s", r.cfg.OutputRoot)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	workers := r.cfg.Concurrency
	if workers > len(items) {
		workers = len(items)
	}

	jobs := make(chan discover.WorkItem)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for item := range jobs {
				if ctx.Err() != nil {
					// Drain without counting; the run is being abandoned.
					continue
				}
				r.process(ctx, item, stats)
				if r.OnItemDone != nil {
					r.OnItemDone(stats.Done(), len(items))
				}
			}
		}()
	}

feed:
	for _, item := range items {
		select {
		case jobs <- item:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	return stats, nil
}

// process runs one work item through the ensure-dir, skip-check, convert,
// and size-accounting steps. Every failure is recorded against the item and
// isolated from its siblings.
func (r *Runner) process(ctx context.Context, item discover.WorkItem, stats *Stats) {
	if err := fileutil.EnsureDir(filepath.Dir(item.OutputPath)); err != nil {
		r.fail(stats, item, fmt.Errorf("create output directory: %w", err))
		return
	}

	if fileutil.FileExists(item.OutputPath) {
		stats.recordSkip()
		r.logger.Debug("skipping existing output", logging.String("file", item.RelPath))
		return
	}

	info, err := os.Stat(item.InputPath)
	if err != nil {
		r.fail(stats, item, fmt.Errorf("stat input: %w", err))
		return
	}
	stats.addOriginalBytes(info.Size())

	if item.AlreadyWebP {
		err = transcode.Copy(item.InputPath, item.OutputPath)
	} else {
		err = r.transcoder.Encode(ctx, item.InputPath, item.OutputPath, r.cfg.Quality)
	}
	if err != nil {
		r.fail(stats, item, err)
		return
	}

	outInfo, err := os.Stat(item.OutputPath)
	if err != nil {
		r.fail(stats, item, fmt.Errorf("stat output: %w", err))
		return
	}
	stats.recordProcessed(outInfo.Size())
	r.logger.Debug("converted",
		logging.String("file", item.RelPath),
		logging.Int64("input_bytes", info.Size()),
		logging.Int64("output_bytes", outInfo.Size()),
	)
}

func (r *Runner) fail(stats *Stats, item discover.WorkItem, err error) {
	stats.recordError(item.RelPath, err.Error())
	r.logger.Warn("conversion failed",
		logging.String("file", item.RelPath),
		logging.Error(err),
	)
}
