package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"webpify/internal/deps"
	"webpify/internal/discover"
	"webpify/internal/logging"
	"webpify/internal/report"
	"webpify/internal/runner"
	"webpify/internal/transcode"
)

func runConvert(cmd *cobra.Command, inputArg string, flags runFlags) error {
	cfg, err := effectiveConfig(cmd, flags)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	runID := uuid.NewString()
	logger = logger.With(logging.String("run_id", runID))

	inputRoot, err := resolveInputRoot(inputArg)
	if err != nil {
		return err
	}
	outputRoot := discover.DeriveOutputRoot(inputRoot)

	if !flags.dryRun {
		if err := deps.Ensure(cfg.Encoder.Binary); err != nil {
			return err
		}
	}

	items, err := discover.Discover(inputRoot, outputRoot)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(items) == 0 {
		logger.Info("no images found", logging.String("input", inputRoot))
		fmt.Fprintln(out, "No images found.")
		return nil
	}

	logger.Info("starting conversion",
		logging.String("input", inputRoot),
		logging.String("output", outputRoot),
		logging.Int("files", len(items)),
		logging.Int("quality", cfg.Encoder.Quality),
		logging.Int("concurrency", cfg.Encoder.Concurrency),
	)

	if flags.dryRun {
		for _, item := range items {
			action := "encode"
			if item.AlreadyWebP {
				action = "copy"
			}
			fmt.Fprintf(out, "%s  %s -> %s\n", action, item.RelPath, item.OutputPath)
		}
		fmt.Fprintf(out, "Dry run: %d files would be written under %s\n", len(items), outputRoot)
		return nil
	}

	run := runner.New(runner.Config{
		InputRoot:   inputRoot,
		OutputRoot:  outputRoot,
		Quality:     cfg.Encoder.Quality,
		Concurrency: cfg.Encoder.Concurrency,
	}, transcode.NewCwebp(cfg.Encoder.Binary), logger)

	bar := newProgressBar(len(items))
	if bar != nil {
		run.OnItemDone = func(done, total int) {
			_ = bar.Set(done)
		}
	}

	stats, err := run.Run(cmd.Context(), items)
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return err
	}
	if ctxErr := cmd.Context().Err(); ctxErr != nil {
		logger.Warn("run interrupted; reporting completed work", logging.Error(ctxErr))
	}

	report.Render(out, report.Summarize(runID, stats.Snapshot(), time.Now()))
	return nil
}

// resolveInputRoot makes the input argument absolute and requires it to be a
// readable directory.
func resolveInputRoot(arg string) (string, error) {
	abs, err := filepath.Abs(arg)
	if err != nil {
		return "", fmt.Errorf("resolve input folder: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("input folder %s: %w", abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("input folder %s is not a directory", abs)
	}
	return abs, nil
}

// newProgressBar returns a bar when stderr is a terminal, nil otherwise so
// redirected output stays clean.
func newProgressBar(total int) *progressbar.ProgressBar {
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("converting"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}
