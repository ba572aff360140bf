package indexer

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/deloschang/mini-search-engine/internal/telemetry"
)

// Serialize writes idx to path in the exact format §4.2 mandates, one
// word per line:
//
//	<word> <num_postings> <doc_id_1> <freq_1> <doc_id_2> <freq_2> ...
//
// Lines are written already sorted lexicographically by word (Index.Words
// returns them that way), which satisfies "after writing, the file is
// sorted lexicographically by line" without a separate sort pass over the
// written bytes.
func Serialize(idx *Index, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating index file %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, word := range idx.Words() {
		entry := idx.entries[word]
		postings := make([]Posting, len(entry.Postings))
		copy(postings, entry.Postings)
		sort.Slice(postings, func(i, j int) bool { return postings[i].DocID < postings[j].DocID })

		var b strings.Builder
		b.WriteString(word)
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(len(postings)))
		for _, p := range postings {
			b.WriteByte(' ')
			b.WriteString(strconv.Itoa(p.DocID))
			b.WriteByte(' ')
			b.WriteString(strconv.Itoa(p.Frequency))
		}
		b.WriteByte('\n')

		if _, err := w.WriteString(b.String()); err != nil {
			return fmt.Errorf("writing index line for %q: %w", word, err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing index file %s: %w", path, err)
	}
	return nil
}

// Reload parses an index file written by Serialize into a fresh Index.
// Each line's leading token is the word; the second token (the posting
// count) is checked against the number of (doc_id, frequency) pairs that
// follow, and a line whose count disagrees is treated as malformed. Each
// pair is fed to Index.Set rather than Update, since the serialized
// frequency is already the accumulated count, not a single occurrence.
//
// A malformed line (too few fields, a non-integer posting count,
// doc_id or frequency, or a posting count that does not match the pairs)
// is logged and skipped per §7, not fatal — only a file that cannot be
// opened or read is an error.
func Reload(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening index file %s: %w", path, err)
	}
	defer f.Close()

	idx := NewIndex()
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		if err := reloadLine(line, idx); err != nil {
			telemetry.Warnf("index file %s line %d: %v, skipping", path, lineNo, err)
			continue
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading index file %s: %w", path, err)
	}

	return idx, nil
}

// reloadLine parses and applies a single serialized index line.
func reloadLine(line string, idx *Index) error {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return fmt.Errorf("too few fields: %q", line)
	}

	word := fields[0]
	numPostings, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Errorf("invalid posting count %q: %w", fields[1], err)
	}

	rest := fields[2:]
	if len(rest) != numPostings*2 {
		return fmt.Errorf("posting count %d does not match %d fields", numPostings, len(rest))
	}

	for i := 0; i < len(rest); i += 2 {
		docID, err := strconv.Atoi(rest[i])
		if err != nil {
			return fmt.Errorf("invalid doc_id %q: %w", rest[i], err)
		}
		freq, err := strconv.Atoi(rest[i+1])
		if err != nil {
			return fmt.Errorf("invalid frequency %q: %w", rest[i+1], err)
		}
		idx.Set(word, docID, freq)
	}

	return nil
}
