package indexer

import "testing"

func TestIndex_UpdateCreatesNewEntry(t *testing.T) {
	idx := NewIndex()
	idx.Update("dog", 1, 1)

	postings := idx.Lookup("dog")
	if len(postings) != 1 {
		t.Fatalf("expected 1 posting, got %d", len(postings))
	}
	if postings[0].DocID != 1 || postings[0].Frequency != 1 {
		t.Errorf("got %+v, want {1 1}", postings[0])
	}
}

func TestIndex_UpdateAccumulatesFrequencyWithinDocument(t *testing.T) {
	idx := NewIndex()
	idx.Update("cat", 1, 1)
	idx.Update("cat", 1, 1)
	idx.Update("cat", 1, 1)

	postings := idx.Lookup("cat")
	if len(postings) != 1 {
		t.Fatalf("expected 1 posting (one doc), got %d", len(postings))
	}
	if postings[0].Frequency != 3 {
		t.Errorf("frequency = %d, want 3", postings[0].Frequency)
	}
}

func TestIndex_UpdateAppendsSeparatePostingPerDocument(t *testing.T) {
	idx := NewIndex()
	idx.Update("cat", 1, 1)
	idx.Update("cat", 1, 1)
	idx.Update("cat", 2, 1)

	postings := idx.Lookup("cat")
	if len(postings) != 2 {
		t.Fatalf("expected 2 postings, got %d", len(postings))
	}

	seen := map[int]int{}
	for _, p := range postings {
		seen[p.DocID] = p.Frequency
	}
	if seen[1] != 2 {
		t.Errorf("doc 1 frequency = %d, want 2", seen[1])
	}
	if seen[2] != 1 {
		t.Errorf("doc 2 frequency = %d, want 1", seen[2])
	}
}

// TestIndex_PostingDocIDsDistinct is spec invariant 4: for each word
// entry, all posting document_ids are distinct.
func TestIndex_PostingDocIDsDistinct(t *testing.T) {
	idx := NewIndex()
	for i := 0; i < 50; i++ {
		idx.Update("word", i%5, 1)
	}

	postings := idx.Lookup("word")
	seen := map[int]bool{}
	for _, p := range postings {
		if seen[p.DocID] {
			t.Fatalf("duplicate doc_id %d in posting list", p.DocID)
		}
		seen[p.DocID] = true
	}
	if len(postings) != 5 {
		t.Errorf("expected 5 distinct docs, got %d", len(postings))
	}
}

func TestIndex_LookupReturnsCopyNotAlias(t *testing.T) {
	idx := NewIndex()
	idx.Update("dog", 1, 1)

	postings := idx.Lookup("dog")
	postings[0].Frequency = 999

	fresh := idx.Lookup("dog")
	if fresh[0].Frequency != 1 {
		t.Errorf("mutating the returned slice affected the index: got %d, want 1", fresh[0].Frequency)
	}
}

func TestIndex_LookupMissingWordReturnsNil(t *testing.T) {
	idx := NewIndex()
	if got := idx.Lookup("absent"); got != nil {
		t.Errorf("expected nil for absent word, got %v", got)
	}
}

func TestIndex_WordsReturnsSortedOrder(t *testing.T) {
	idx := NewIndex()
	idx.Update("mouse", 1, 1)
	idx.Update("dog", 1, 1)
	idx.Update("cat", 1, 1)

	words := idx.Words()
	want := []string{"cat", "dog", "mouse"}
	if len(words) != len(want) {
		t.Fatalf("got %v, want %v", words, want)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Errorf("words[%d] = %q, want %q", i, words[i], want[i])
		}
	}
}

func TestIndex_SetOverwritesRatherThanAccumulates(t *testing.T) {
	idx := NewIndex()
	idx.Set("cat", 1, 5)
	idx.Set("cat", 1, 7)

	postings := idx.Lookup("cat")
	if len(postings) != 1 || postings[0].Frequency != 7 {
		t.Fatalf("got %+v, want one posting with frequency 7", postings)
	}
}
