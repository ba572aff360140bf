package crawler

// urlRecord is the crawler's per-URL bookkeeping entry (spec §3 "URL
// record"): the URL itself, the depth at which it was first discovered,
// and whether it has been fetched yet. Once Visited flips true it never
// flips back — Discovered -> Visited is the record's only transition.
type urlRecord struct {
	URL     string
	Depth   int
	Visited bool
}

// Frontier is the crawler's URL dictionary together with its visited
// flags (spec §3 "URL frontier / dictionary"). It is single-threaded by
// design: spec §5 mandates a strictly sequential BFS with no concurrent
// fetches, so there is no concurrent access to guard against and no
// reason to pay for a mutex or a channel the way the teacher's
// channel-and-RWMutex URLQueue does for its concurrent crawl workers.
//
// Frontier keeps both a map (for the O(1) membership test spec §3
// requires) and an insertion-ordered slice (so "the first record whose
// visited flag is false" in spec §4.1 is a stable, cheap scan rather than
// a map iteration, whose order Go deliberately randomizes).
type Frontier struct {
	records []*urlRecord
	byURL   map[string]*urlRecord
	nextIdx int // scan cursor: records before this index are all visited
}

// NewFrontier returns an empty frontier.
func NewFrontier() *Frontier {
	return &Frontier{
		byURL: make(map[string]*urlRecord),
	}
}

// Contains reports whether url is already present in the frontier,
// regardless of visited state.
func (f *Frontier) Contains(url string) bool {
	_, ok := f.byURL[url]
	return ok
}

// Insert adds url to the frontier at depth if it is not already present.
// Per spec §3 invariant (ii), the depth recorded is always the depth at
// first discovery; a duplicate Insert for an already-known URL is a no-op
// even if called with a different depth.
func (f *Frontier) Insert(url string, depth int) {
	if f.Contains(url) {
		return
	}
	rec := &urlRecord{URL: url, Depth: depth}
	f.byURL[url] = rec
	f.records = append(f.records, rec)
}

// Next returns the first unvisited record in insertion order, or nil if
// none remain. It does not mark the record visited — callers do that via
// MarkVisited once they've finished processing it, matching spec §4.1's
// "select, process, mark visited" per-iteration discipline.
func (f *Frontier) Next() (url string, depth int, ok bool) {
	for f.nextIdx < len(f.records) {
		rec := f.records[f.nextIdx]
		if !rec.Visited {
			return rec.URL, rec.Depth, true
		}
		f.nextIdx++
	}
	return "", 0, false
}

// MarkVisited flips url's Visited flag. It is idempotent and a no-op for
// an unknown URL.
func (f *Frontier) MarkVisited(url string) {
	if rec, ok := f.byURL[url]; ok {
		rec.Visited = true
	}
}

// Len returns the total number of records ever inserted (visited and
// unvisited).
func (f *Frontier) Len() int {
	return len(f.records)
}

// Depth returns the recorded depth for url and whether it is present.
func (f *Frontier) Depth(url string) (int, bool) {
	rec, ok := f.byURL[url]
	if !ok {
		return 0, false
	}
	return rec.Depth, true
}
