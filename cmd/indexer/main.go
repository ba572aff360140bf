package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/deloschang/mini-search-engine/internal/config"
	"github.com/deloschang/mini-search-engine/internal/indexer"
	"github.com/deloschang/mini-search-engine/internal/telemetry"
)

var (
	configFile string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "indexer <target_dir> <index_file> [<load_file> <rewrite_file>]",
	Short: "Build an inverted index from a crawled artifact directory",
	Long: `indexer walks target_dir for numbered page artifacts, tokenizes each one's
HTML body and writes the resulting inverted index to index_file.

Given two additional arguments, load_file and rewrite_file, it also
exercises the reload/re-serialize debug path: after building index_file
normally, it reloads load_file and re-serializes it to rewrite_file. This
is typically used with load_file set to index_file itself, to confirm
the round-trip is byte-identical.`,
	Args: cobra.RangeArgs(2, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 && len(args) != 4 {
			return fmt.Errorf("expected 2 or 4 arguments, got %d", len(args))
		}

		logConfig, err := config.LoadLogConfig("indexer", configFile)
		if err != nil {
			return fmt.Errorf("loading log config: %w", err)
		}
		if logLevel != "" {
			logConfig.Level = logLevel
		}
		if err := telemetry.Init(logConfig); err != nil {
			return fmt.Errorf("initializing logging: %w", err)
		}

		targetDir, indexFile := args[0], args[1]

		if len(args) == 2 {
			return indexer.Run(targetDir, indexFile)
		}

		loadFile, rewriteFile := args[2], args[3]
		return indexer.RunRoundTrip(targetDir, indexFile, loadFile, rewriteFile)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to an optional logging config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
