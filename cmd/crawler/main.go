package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/deloschang/mini-search-engine/internal/config"
	"github.com/deloschang/mini-search-engine/internal/crawler"
	"github.com/deloschang/mini-search-engine/internal/telemetry"
)

var (
	configFile string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "crawler <seed_url> <target_dir> <depth>",
	Short: "Breadth-first crawl of a bounded web corpus",
	Long: `crawler performs a breadth-first traversal of HTML pages reachable from
a seed URL, writing one numbered page artifact per fetched page into a
target directory.

depth is a single decimal digit 0-4 bounding how far from the seed the
crawl descends.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		logConfig, err := config.LoadLogConfig("crawler", configFile)
		if err != nil {
			return fmt.Errorf("loading log config: %w", err)
		}
		if logLevel != "" {
			logConfig.Level = logLevel
		}
		if err := telemetry.Init(logConfig); err != nil {
			return fmt.Errorf("initializing logging: %w", err)
		}

		depth, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("depth must be a decimal integer, got %q", args[2])
		}

		cfg := crawler.Config{
			SeedURL:   args[0],
			TargetDir: args[1],
			MaxDepth:  depth,
		}

		return crawler.Run(cfg)
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
