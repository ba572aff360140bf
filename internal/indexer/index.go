package indexer

import "sort"

// Posting is one (document_id, term_frequency) pair within a word entry.
type Posting struct {
	DocID     int
	Frequency int
}

// WordEntry is a word together with its posting list. Per spec §3, within
// one word entry's posting list document IDs are unique.
type WordEntry struct {
	Word     string
	Postings []Posting
}

// Index is the inverted word -> word-entry map, built by the indexer and
// reloaded by the query engine. It replaces the original C implementation's
// hand-rolled bucket-chain dictionary (a pattern this domain never needed in the
// first place) with a single Go map, per the redesign guidance to prefer
// an associative map over a list-of-lists topology.
type Index struct {
	entries map[string]*WordEntry
}

// NewIndex returns an empty Index ready for updates.
func NewIndex() *Index {
	return &Index{entries: make(map[string]*WordEntry)}
}

// Update applies one (word, docID, frequency) occurrence to the index,
// implementing spec §4.2's update procedure:
//
//  1. locate the word entry by lookup;
//  2. if absent, create one with a fresh posting;
//  3. if present, scan its posting list for docID: if found, add
//     frequency to that posting; otherwise append a new posting.
//
// The scan below checks the current posting's DocID before advancing,
// never after — spec's called-out correctness hazard is "advancing past
// a posting without testing it," which this loop structure cannot do.
func (idx *Index) Update(word string, docID int, frequency int) {
	entry, ok := idx.entries[word]
	if !ok {
		idx.entries[word] = &WordEntry{
			Word:     word,
			Postings: []Posting{{DocID: docID, Frequency: frequency}},
		}
		return
	}

	for i := range entry.Postings {
		if entry.Postings[i].DocID == docID {
			entry.Postings[i].Frequency += frequency
			return
		}
	}
	entry.Postings = append(entry.Postings, Posting{DocID: docID, Frequency: frequency})
}

// Set installs a posting with an absolute (not incremented) frequency,
// used by reload (§4.2) where the serialized frequency already reflects
// the accumulated count rather than a single occurrence.
func (idx *Index) Set(word string, docID int, frequency int) {
	entry, ok := idx.entries[word]
	if !ok {
		idx.entries[word] = &WordEntry{
			Word:     word,
			Postings: []Posting{{DocID: docID, Frequency: frequency}},
		}
		return
	}

	for i := range entry.Postings {
		if entry.Postings[i].DocID == docID {
			entry.Postings[i].Frequency = frequency
			return
		}
	}
	entry.Postings = append(entry.Postings, Posting{DocID: docID, Frequency: frequency})
}

// Lookup returns a copy of word's posting list, or nil if word is absent.
// Copies are returned (not the index's own slice) so query-time
// intermediate results never alias the index's owned postings, per §3's
// ownership invariant.
func (idx *Index) Lookup(word string) []Posting {
	entry, ok := idx.entries[word]
	if !ok {
		return nil
	}
	out := make([]Posting, len(entry.Postings))
	copy(out, entry.Postings)
	return out
}

// Words returns the index's words in sorted order, used by Serialize.
func (idx *Index) Words() []string {
	words := make([]string, 0, len(idx.entries))
	for w := range idx.entries {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// WordCount returns the number of distinct words in the index.
func (idx *Index) WordCount() int {
	return len(idx.entries)
}

// PostingCount returns the total number of postings across all word
// entries, used for the run-statistics supplemented feature.
func (idx *Index) PostingCount() int {
	total := 0
	for _, e := range idx.entries {
		total += len(e.Postings)
	}
	return total
}
