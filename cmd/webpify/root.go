package main

import (
	"strings"

	"github.com/spf13/cobra"

	"webpify/internal/config"
)

type runFlags struct {
	configPath  string
	quality     int
	concurrency int
	logLevel    string
	logFormat   string
	dryRun      bool
}

func newRootCommand() *cobra.Command {
	var flags runFlags

	rootCmd := &cobra.Command{
		Use:   "webpify <input-folder>",
		Short: "Convert a folder of PNG/JPEG images to WebP",
		Long: `webpify recursively converts every PNG/JPEG under the input folder to WebP,
mirroring the directory structure into a sibling "<input-folder>-webp" folder.
Files whose output already exists are skipped, so an interrupted run can be
resumed by running the same command again. Existing WebP files are copied
verbatim.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runConvert(cmd, args[0], flags)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Configuration file path")
	rootCmd.Flags().IntVarP(&flags.quality, "quality", "q", config.DefaultQuality, "WebP quality factor (1-100)")
	rootCmd.Flags().IntVarP(&flags.concurrency, "concurrency", "c", config.DefaultConcurrency, "Number of files converted in parallel")
	rootCmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&flags.logFormat, "log-format", "", "Log format (console, json)")
	rootCmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "List what would be converted without touching anything")

	rootCmd.AddCommand(newConfigCommand(&flags.configPath))
	rootCmd.AddCommand(newDepsCommand(&flags.configPath))

	return rootCmd
}

// effectiveConfig loads the config file and applies explicit flag overrides.
// The merged result is re-validated so a bad flag value fails the same way a
// bad file value does.
func effectiveConfig(cmd *cobra.Command, flags runFlags) (*config.Config, error) {
	cfg, _, _, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("quality") {
		cfg.Encoder.Quality = flags.quality
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Encoder.Concurrency = flags.concurrency
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = strings.ToLower(strings.TrimSpace(flags.logLevel))
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Logging.Format = strings.ToLower(strings.TrimSpace(flags.logFormat))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
