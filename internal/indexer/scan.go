package indexer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/deloschang/mini-search-engine/internal/engine"
	"github.com/deloschang/mini-search-engine/internal/telemetry"
)

// ScanDirectory enumerates the regular files in dir whose name parses as
// a positive decimal integer (spec §4.2's "document enumeration"),
// tokenizes each one's HTML body and folds the resulting words into idx.
// It returns the number of documents indexed.
//
// A document file that the directory scan turned up but that cannot be
// opened or read is fatal per §7 ("directory scan lied"); non-numeric
// directory entries (e.g. crawl_report.json) are silently skipped rather
// than treated as an error, since the scan is defined over artifact IDs
// only.
func ScanDirectory(dir string, idx *Index) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("reading artifact directory %s: %w", dir, err)
	}

	var docIDs []int
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		id, err := strconv.Atoi(e.Name())
		if err != nil || id <= 0 {
			continue
		}
		docIDs = append(docIDs, id)
	}
	sort.Ints(docIDs)

	for _, id := range docIDs {
		if err := indexDocument(dir, id, idx); err != nil {
			return 0, fmt.Errorf("indexing document %d: %w", id, err)
		}
	}

	return len(docIDs), nil
}

// indexDocument opens artifact id under dir, skips its URL and depth
// header lines, sanitizes and tokenizes the remaining HTML body, and
// folds each emitted word into idx via Update (one occurrence per word
// per emission, letting repeated words accumulate frequency).
func indexDocument(dir string, id int, idx *Index) error {
	path := filepath.Join(dir, strconv.Itoa(id))
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening artifact %s: %w", path, err)
	}
	defer f.Close()

	reader := bufio.NewReader(f)
	if _, err := reader.ReadString('\n'); err != nil && err != io.EOF {
		return fmt.Errorf("reading URL line: %w", err)
	}
	if _, err := reader.ReadString('\n'); err != nil && err != io.EOF {
		return fmt.Errorf("reading depth line: %w", err)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("reading document body: %w", err)
	}

	sanitized := engine.Sanitize(body)
	words := engine.Tokenize(sanitized)

	for _, w := range words {
		idx.Update(w, id, 1)
	}

	telemetry.Debugf("indexed document %d: %d words emitted", id, len(words))
	return nil
}
