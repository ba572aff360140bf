package crawler

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Stats summarizes one crawl run. It is the "supplemented feature" from
// SPEC_FULL.md's original_source notes: the original indexer/queryengine
// print a one-line run summary beyond what the distilled spec mentions.
// Here it is both logged and written as a small JSON report next to the
// page artifacts, trimmed from the teacher's CrawlReport (which also
// tracked per-file success/failure lists relevant only to JS-file
// crawling) down to what a page crawl actually produces.
type Stats struct {
	SeedURL      string        `json:"seed_url"`
	MaxDepth     int           `json:"max_depth"`
	PagesFetched int           `json:"pages_fetched"`
	FetchFailed  int           `json:"fetch_failed"`
	FrontierSize int           `json:"frontier_size"`
	Duration     time.Duration `json:"duration"`
	StartedAt    time.Time     `json:"started_at"`
	FinishedAt   time.Time     `json:"finished_at"`
}

// WriteReport marshals Stats to <targetDir>/crawl_report.json. The
// filename is deliberately not a bare integer so it can never collide
// with a document ID artifact file (spec §3's artifacts are named by
// monotonic integer alone).
func (s Stats) WriteReport(targetDir string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling crawl report: %w", err)
	}
	path := filepath.Join(targetDir, "crawl_report.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing crawl report %s: %w", path, err)
	}
	return nil
}
