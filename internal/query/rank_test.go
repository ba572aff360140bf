package query

import (
	"reflect"
	"testing"

	"github.com/deloschang/mini-search-engine/internal/indexer"
)

func TestRank_SortsByFrequencyDescending(t *testing.T) {
	in := []indexer.Posting{
		{DocID: 1, Frequency: 1},
		{DocID: 2, Frequency: 5},
		{DocID: 3, Frequency: 3},
	}
	got := Rank(in)
	want := []indexer.Posting{
		{DocID: 2, Frequency: 5},
		{DocID: 3, Frequency: 3},
		{DocID: 1, Frequency: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Rank = %v, want %v", got, want)
	}
}

func TestRank_TiesBrokenByInsertionOrder(t *testing.T) {
	in := []indexer.Posting{
		{DocID: 10, Frequency: 2},
		{DocID: 20, Frequency: 2},
		{DocID: 30, Frequency: 2},
	}
	got := Rank(in)
	if !reflect.DeepEqual(got, in) {
		t.Errorf("Rank with equal frequencies reordered: got %v, want stable %v", got, in)
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	in := []indexer.Posting{{DocID: 1, Frequency: 1}, {DocID: 2, Frequency: 5}}
	inCopy := make([]indexer.Posting, len(in))
	copy(inCopy, in)

	Rank(in)

	if !reflect.DeepEqual(in, inCopy) {
		t.Errorf("Rank mutated its input: got %v, want %v", in, inCopy)
	}
}
