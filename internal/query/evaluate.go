// Package query implements the query engine's expression evaluator:
// tokenizing a line of input per spec §4.3's case rules, evaluating the
// AND/OR term sequence against an inverted index, and ranking results.
package query

import (
	"strings"

	"github.com/deloschang/mini-search-engine/internal/engine"
	"github.com/deloschang/mini-search-engine/internal/indexer"
)

// PostingSource looks up a word's posting list. indexer.Index already
// satisfies this via its Lookup method; the interface lets evaluate.go's
// tests swap in a canned lookup table without building a real Index.
type PostingSource interface {
	Lookup(word string) []indexer.Posting
}

// SanitizeQuery applies §4.3's query-specific case rule: the operator
// tokens AND/OR are case-sensitive and must be left exactly uppercase to
// be recognized as operators, while every other alphabetic byte is
// folded to lowercase. This differs from engine.Sanitize (used by the
// indexer and for non-operator query bytes) only in that it never
// touches the case of a token that is exactly "AND" or "OR" before
// folding the rest of the line. A token that sanitizes to nothing is
// dropped.
func SanitizeQuery(line string) []string {
	rawTokens := strings.Fields(line)
	tokens := make([]string, 0, len(rawTokens))
	for _, tok := range rawTokens {
		if tok == "AND" || tok == "OR" {
			tokens = append(tokens, tok)
			continue
		}
		if term := string(engine.Sanitize([]byte(tok))); term != "" {
			tokens = append(tokens, term)
		}
	}
	return tokens
}

// Evaluate runs spec §4.3's expression semantics over tokens (already
// split and cased per SanitizeQuery) against src, returning the
// accumulator's final posting list.
//
// The token stream is a flat sequence of terms separated by AND/OR
// operators, with juxtaposition meaning implicit AND; AND binds tighter
// than OR. This function never sees parentheses (none exist in the
// grammar) so it can evaluate left to right with a single pending
// operator flag:
//
//   - On OR (or at the first term): flush the current conjunct into the
//     accumulator, then start a fresh conjunct from this term's postings.
//   - On AND (explicit or implicit via juxtaposition): intersect the
//     current conjunct with this term's postings.
//
// Stray leading/trailing/repeated AND/OR tokens only update the pending
// operator flag and contribute no term of their own, matching §4.3's edge
// case.
func Evaluate(tokens []string, src PostingSource) []indexer.Posting {
	var accumulator []indexer.Posting
	var conjunct []indexer.Posting
	haveConjunct := false

	// pendingOp is "" for the first term and for implicit AND via
	// juxtaposition, "AND" for explicit AND, "OR" for explicit OR.
	pendingOp := ""

	for _, tok := range tokens {
		switch tok {
		case "AND":
			pendingOp = "AND"
			continue
		case "OR":
			pendingOp = "OR"
			continue
		}

		term := tok
		postings := src.Lookup(term)

		switch {
		case !haveConjunct:
			conjunct = postings
			haveConjunct = true
		case pendingOp == "OR":
			accumulator = append(accumulator, conjunct...)
			conjunct = postings
		default: // "" (implicit AND via juxtaposition) or explicit "AND"
			conjunct = intersect(conjunct, postings)
		}
		pendingOp = ""
	}

	if haveConjunct {
		accumulator = append(accumulator, conjunct...)
	}

	return accumulator
}

// intersect pairs a and b by DocID, summing frequencies, per §4.3's
// intersection rule. Both inputs are treated as value-owned and never
// mutated; the result is a fresh slice.
func intersect(a, b []indexer.Posting) []indexer.Posting {
	bByDoc := make(map[int]int, len(b))
	for _, p := range b {
		bByDoc[p.DocID] = p.Frequency
	}

	var out []indexer.Posting
	for _, p := range a {
		if freq, ok := bByDoc[p.DocID]; ok {
			out = append(out, indexer.Posting{DocID: p.DocID, Frequency: p.Frequency + freq})
		}
	}
	return out
}
