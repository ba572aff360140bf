package query

import (
	"reflect"
	"sort"
	"testing"

	"github.com/deloschang/mini-search-engine/internal/indexer"
)

// fakeIndex is a minimal PostingSource for testing evaluation without
// spinning up a full indexer.Index.
type fakeIndex map[string][]indexer.Posting

func (f fakeIndex) Lookup(word string) []indexer.Posting {
	postings := f[word]
	out := make([]indexer.Posting, len(postings))
	copy(out, postings)
	return out
}

func scenario2Index() fakeIndex {
	return fakeIndex{
		"cat":   {{DocID: 1, Frequency: 2}, {DocID: 2, Frequency: 1}},
		"dog":   {{DocID: 1, Frequency: 1}},
		"mouse": {{DocID: 2, Frequency: 1}},
	}
}

func sortByDocID(postings []indexer.Posting) {
	sort.Slice(postings, func(i, j int) bool { return postings[i].DocID < postings[j].DocID })
}

// TestEvaluate_SeedScenario4 is spec §8 scenario 4: query `dog` prints
// one result for document 1.
func TestEvaluate_SeedScenario4(t *testing.T) {
	idx := scenario2Index()
	got := Evaluate(SanitizeQuery("dog"), idx)

	want := []indexer.Posting{{DocID: 1, Frequency: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Evaluate(dog) = %v, want %v", got, want)
	}
}

// TestEvaluate_SeedScenario5 is spec §8 scenario 5: `cat AND mouse`
// yields one result, document 2, frequency 1+1=2.
func TestEvaluate_SeedScenario5(t *testing.T) {
	idx := scenario2Index()
	got := Evaluate(SanitizeQuery("cat AND mouse"), idx)

	want := []indexer.Posting{{DocID: 2, Frequency: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Evaluate(cat AND mouse) = %v, want %v", got, want)
	}
}

// TestEvaluate_SeedScenario6 is spec §8 scenario 6: `dog OR mouse`
// produces two results, document 1 (freq 1) then document 2 (freq 1).
func TestEvaluate_SeedScenario6(t *testing.T) {
	idx := scenario2Index()
	got := Rank(Evaluate(SanitizeQuery("dog OR mouse"), idx))

	want := []indexer.Posting{{DocID: 1, Frequency: 1}, {DocID: 2, Frequency: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Rank(Evaluate(dog OR mouse)) = %v, want %v", got, want)
	}
}

// TestEvaluate_SeedScenario7 is spec §8 scenario 7: `AND OR dog cat AND
// OR AND` behaves as `dog AND cat`: one result, document 1, frequency
// 2+1=3.
func TestEvaluate_SeedScenario7(t *testing.T) {
	idx := scenario2Index()
	got := Evaluate(SanitizeQuery("AND OR dog cat AND OR AND"), idx)

	want := []indexer.Posting{{DocID: 1, Frequency: 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Evaluate(AND OR dog cat AND OR AND) = %v, want %v", got, want)
	}
}

func TestEvaluate_ImplicitAndViaJuxtaposition(t *testing.T) {
	idx := scenario2Index()
	got := Evaluate(SanitizeQuery("dog cat"), idx)

	want := []indexer.Posting{{DocID: 1, Frequency: 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Evaluate(dog cat) = %v, want %v", got, want)
	}
}

func TestEvaluate_UnknownTermIsEmptyNotError(t *testing.T) {
	idx := scenario2Index()
	got := Evaluate(SanitizeQuery("dog AND nonexistent"), idx)
	if len(got) != 0 {
		t.Errorf("Evaluate(dog AND nonexistent) = %v, want empty", got)
	}
}

func TestEvaluate_OrKeepsDuplicateDocIDsAcrossConjuncts(t *testing.T) {
	idx := fakeIndex{
		"dog": {{DocID: 1, Frequency: 3}},
		"cat": {{DocID: 1, Frequency: 5}},
	}
	got := Evaluate(SanitizeQuery("dog OR cat"), idx)
	if len(got) != 2 {
		t.Fatalf("expected both OR-separated conjuncts to survive independently, got %v", got)
	}
}

// TestSanitizeQuery_OperatorsAreCaseSensitive is spec invariant 8.
func TestSanitizeQuery_OperatorsAreCaseSensitive(t *testing.T) {
	tokens := SanitizeQuery("Dog and Cat AND Mouse")
	want := []string{"dog", "and", "cat", "AND", "mouse"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("SanitizeQuery = %v, want %v", tokens, want)
	}
}

// TestEvaluate_SingleTermIsExactlyItsPostings is the quantified property:
// for a single-term query t, results are exactly t's postings.
func TestEvaluate_SingleTermIsExactlyItsPostings(t *testing.T) {
	idx := scenario2Index()
	got := Evaluate(SanitizeQuery("cat"), idx)
	sortByDocID(got)

	want := []indexer.Posting{{DocID: 1, Frequency: 2}, {DocID: 2, Frequency: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Evaluate(cat) = %v, want %v", got, want)
	}
}

// TestEvaluate_AndIsSubsetWithSummedFrequency is the quantified property:
// results of A AND B are a subset of A's results and frequency sums.
func TestEvaluate_AndIsSubsetWithSummedFrequency(t *testing.T) {
	idx := fakeIndex{
		"a": {{DocID: 1, Frequency: 2}, {DocID: 2, Frequency: 4}},
		"b": {{DocID: 2, Frequency: 1}},
	}
	got := Evaluate(SanitizeQuery("a AND b"), idx)
	if len(got) != 1 || got[0].DocID != 2 || got[0].Frequency != 5 {
		t.Errorf("Evaluate(a AND b) = %v, want [{2 5}]", got)
	}
}
