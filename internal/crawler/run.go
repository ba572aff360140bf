package crawler

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"

	"github.com/deloschang/mini-search-engine/internal/engine"
	"github.com/deloschang/mini-search-engine/internal/telemetry"
)

// Run drives the BFS traversal described in spec §4.1: repeatedly select
// the first unvisited frontier record, fetch it (unless it is beyond
// MaxDepth), write its artifact, extract and admit its outbound links at
// depth+1, mark it visited, sleep the politeness interval, and continue
// until the frontier is exhausted.
//
// Failure semantics (spec §7): the seed fetch failing is fatal; any other
// fetch failing after retries is recorded visited and logged, and the
// crawl proceeds; an artifact write failure is fatal.
func Run(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid crawler config: %w", err)
	}

	if err := os.MkdirAll(cfg.TargetDir, 0755); err != nil {
		return fmt.Errorf("target directory %s: %w", cfg.TargetDir, err)
	}

	runID := uuid.New().String()
	telemetry.Infof("starting crawl run=%s seed=%s depth=%d", runID, cfg.SeedURL, cfg.MaxDepth)

	frontier := NewFrontier()
	frontier.Insert(cfg.SeedURL, 0)

	fetcher := NewFetcher()

	stats := Stats{
		SeedURL:   cfg.SeedURL,
		MaxDepth:  cfg.MaxDepth,
		StartedAt: time.Now(),
	}

	nextID := 1
	seedFetched := false

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("crawling"),
		progressbar.OptionSetWriter(os.Stderr),
	)

	for {
		currentURL, depth, ok := frontier.Next()
		if !ok {
			break
		}

		if depth > cfg.MaxDepth {
			telemetry.Debugf("skipping %s: depth %d exceeds max %d", currentURL, depth, cfg.MaxDepth)
			frontier.MarkVisited(currentURL)
			continue
		}

		body, err := fetcher.Fetch(currentURL)
		if err != nil {
			if currentURL == cfg.SeedURL && !seedFetched {
				return fmt.Errorf("fetching seed URL %s: %w", currentURL, err)
			}
			telemetry.Errorf(err, "fetch failed for %s, marking visited", currentURL)
			stats.FetchFailed++
			frontier.MarkVisited(currentURL)
			continue
		}
		seedFetched = true

		if err := WritePageArtifact(cfg.TargetDir, nextID, currentURL, depth, body); err != nil {
			return fmt.Errorf("writing artifact for %s: %w", currentURL, err)
		}
		stats.PagesFetched++
		nextID++
		bar.Add(1)

		links, err := ExtractLinks(body, currentURL)
		if err != nil {
			telemetry.Warnf("link extraction failed for %s: %v", currentURL, err)
		} else {
			for _, link := range links {
				frontier.Insert(link, depth+1)
			}
		}

		frontier.MarkVisited(currentURL)

		if stats.PagesFetched%25 == 0 {
			LogResourceSnapshot(stats.PagesFetched)
		}

		time.Sleep(engine.IntervalPerFetch * time.Second)
	}

	stats.FrontierSize = frontier.Len()
	stats.FinishedAt = time.Now()
	stats.Duration = stats.FinishedAt.Sub(stats.StartedAt)

	if err := stats.WriteReport(cfg.TargetDir); err != nil {
		telemetry.Warnf("writing crawl report: %v", err)
	}

	telemetry.Infof("crawl run=%s complete: %d pages fetched, %d fetch failures, frontier size %d, duration %s",
		runID, stats.PagesFetched, stats.FetchFailed, stats.FrontierSize, stats.Duration)

	return nil
}
