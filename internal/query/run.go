package query

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/deloschang/mini-search-engine/internal/indexer"
	"github.com/deloschang/mini-search-engine/internal/telemetry"
)

// Sentinel is the input line that ends the interactive query loop.
const Sentinel = "!exit"

// Prompt is printed before each read of standard input, exactly as
// spec §6 specifies.
const Prompt = "KEY WORD:> "

// Run loads indexFile, then reads queries from in and writes results and
// prompts to out until it reads Sentinel. pagesDir is the artifact
// directory used to recover each result's URL.
//
// An index file that cannot be opened or read is fatal at startup;
// malformed lines within it are logged and skipped by indexer.Reload
// (§7). Once the loop is running, a missing artifact for one result is logged and that result
// line is skipped, while the rest of the results print normally.
func Run(indexFile, pagesDir string, in io.Reader, out io.Writer) error {
	idx, err := indexer.Reload(indexFile)
	if err != nil {
		return fmt.Errorf("loading index %s: %w", indexFile, err)
	}
	telemetry.Infof("query engine ready: %d words loaded from %s", idx.WordCount(), indexFile)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, Prompt)
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == Sentinel {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		tokens := SanitizeQuery(line)
		results := Rank(Evaluate(tokens, idx))
		printResults(out, pagesDir, results)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading query input: %w", err)
	}
	return nil
}

// printResults prints one "Document ID:<id> URL:<url>" line per posting
// in ranked order, per §4.3's "Result printing." A document whose
// artifact cannot be opened is logged and skipped; the rest still print.
func printResults(out io.Writer, pagesDir string, results []indexer.Posting) {
	for _, p := range results {
		url, err := readArtifactURL(pagesDir, p.DocID)
		if err != nil {
			telemetry.Warnf("result for document %d: %v, skipping", p.DocID, err)
			continue
		}
		fmt.Fprintf(out, "Document ID:%d URL:%s\n", p.DocID, url)
	}
}

// readArtifactURL opens the artifact for docID under pagesDir and
// returns its first line (the URL), per §3's page artifact format.
func readArtifactURL(pagesDir string, docID int) (string, error) {
	path := filepath.Join(pagesDir, strconv.Itoa(docID))
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening artifact %s: %w", path, err)
	}
	defer f.Close()

	reader := bufio.NewReader(f)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("reading URL line from %s: %w", path, err)
	}
	return strings.TrimSuffix(line, "\n"), nil
}
