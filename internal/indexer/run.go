package indexer

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"

	"github.com/deloschang/mini-search-engine/internal/telemetry"
)

// Run builds an index from targetDir and writes it to indexFile, matching
// spec §6's normal build-mode CLI contract: `indexer <target_dir>
// <index_file>`.
func Run(targetDir, indexFile string) error {
	runID := uuid.New().String()
	start := time.Now()
	telemetry.Infof("starting index build run=%s dir=%s out=%s", runID, targetDir, indexFile)

	idx := NewIndex()

	bar := progressbar.Default(-1, "indexing")
	docCount, err := scanWithProgress(targetDir, idx, bar)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", targetDir, err)
	}

	if err := Serialize(idx, indexFile); err != nil {
		return fmt.Errorf("serializing index to %s: %w", indexFile, err)
	}

	telemetry.Infof("index build run=%s complete: %d documents, %d words, %d postings, duration %s",
		runID, docCount, idx.WordCount(), idx.PostingCount(), time.Since(start))

	return nil
}

// RunRoundTrip builds an index normally, writes it to indexFile, then
// additionally exercises the reload/re-serialize debug path described in
// spec §6's second CLI form: `indexer <target_dir> <index_file>
// <load_file> <rewrite_file>`. loadFile is typically indexFile itself
// (the just-written file); rewriteFile receives the round-tripped
// serialization, which by spec §8 invariant 6 must be byte-identical to
// loadFile.
func RunRoundTrip(targetDir, indexFile, loadFile, rewriteFile string) error {
	if err := Run(targetDir, indexFile); err != nil {
		return err
	}

	reloaded, err := Reload(loadFile)
	if err != nil {
		return fmt.Errorf("reloading %s: %w", loadFile, err)
	}

	if err := Serialize(reloaded, rewriteFile); err != nil {
		return fmt.Errorf("re-serializing to %s: %w", rewriteFile, err)
	}

	telemetry.Infof("round-trip complete: reloaded %s, rewrote %s", loadFile, rewriteFile)
	return nil
}

// scanWithProgress wraps ScanDirectory with progress-bar feedback: once
// the scan returns, it adds the number of documents indexed to bar. The
// bar does not advance while the scan is running.
func scanWithProgress(dir string, idx *Index, bar *progressbar.ProgressBar) (int, error) {
	count, err := ScanDirectory(dir, idx)
	if err != nil {
		return 0, err
	}
	bar.Add(count)
	return count, nil
}
