package crawler

import "testing"

func TestFrontier_InsertKeepsFirstDiscoveryDepth(t *testing.T) {
	f := NewFrontier()
	f.Insert("http://x/a", 1)
	f.Insert("http://x/a", 9) // duplicate, should be ignored

	depth, ok := f.Depth("http://x/a")
	if !ok {
		t.Fatal("expected record present")
	}
	if depth != 1 {
		t.Errorf("depth = %d, want 1 (first-discovery depth)", depth)
	}
}

func TestFrontier_NextReturnsInsertionOrder(t *testing.T) {
	f := NewFrontier()
	f.Insert("http://x/a", 0)
	f.Insert("http://x/b", 1)
	f.Insert("http://x/c", 1)

	url, depth, ok := f.Next()
	if !ok || url != "http://x/a" || depth != 0 {
		t.Fatalf("Next() = %q, %d, %v; want http://x/a, 0, true", url, depth, ok)
	}
	f.MarkVisited(url)

	url, _, ok = f.Next()
	if !ok || url != "http://x/b" {
		t.Fatalf("Next() = %q, want http://x/b", url)
	}
}

func TestFrontier_NextExhausted(t *testing.T) {
	f := NewFrontier()
	f.Insert("http://x/a", 0)
	url, _, ok := f.Next()
	if !ok {
		t.Fatal("expected a record")
	}
	f.MarkVisited(url)

	if _, _, ok := f.Next(); ok {
		t.Error("expected no more unvisited records")
	}
}

func TestFrontier_NeverDuplicatesAcrossRun(t *testing.T) {
	f := NewFrontier()
	for i := 0; i < 3; i++ {
		f.Insert("http://x/dup", 0)
	}
	if f.Len() != 1 {
		t.Errorf("Len() = %d, want 1", f.Len())
	}
}
