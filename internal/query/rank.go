package query

import (
	"sort"

	"github.com/deloschang/mini-search-engine/internal/indexer"
)

// Rank sorts postings by frequency descending, ties broken by insertion
// order (§4.3 "Ranking"). sort.SliceStable preserves input order among
// equal-frequency postings, which is exactly the tie-break rule.
func Rank(postings []indexer.Posting) []indexer.Posting {
	ranked := make([]indexer.Posting, len(postings))
	copy(ranked, postings)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Frequency > ranked[j].Frequency
	})

	return ranked
}
