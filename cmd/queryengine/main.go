package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/deloschang/mini-search-engine/internal/config"
	"github.com/deloschang/mini-search-engine/internal/query"
	"github.com/deloschang/mini-search-engine/internal/telemetry"
)

var (
	configFile string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "queryengine <index_file> <pages_dir>",
	Short: "Answer Boolean queries against a built inverted index",
	Long: `queryengine reloads index_file into memory and reads queries interactively
from standard input, one per line, evaluating AND/OR boolean expressions
and printing frequency-ranked document results. pages_dir is the crawler's
artifact directory, used to recover each result's URL.

The loop ends when it reads the sentinel line "!exit".`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		logConfig, err := config.LoadLogConfig("queryengine", configFile)
		if err != nil {
			return fmt.Errorf("loading log config: %w", err)
		}
		if logLevel != "" {
			logConfig.Level = logLevel
		}
		if err := telemetry.Init(logConfig); err != nil {
			return fmt.Errorf("initializing logging: %w", err)
		}

		indexFile, pagesDir := args[0], args[1]
		return query.Run(indexFile, pagesDir, os.Stdin, os.Stdout)
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
