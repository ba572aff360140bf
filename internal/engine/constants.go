// Package engine holds the pieces of the search-engine core that the
// crawler, indexer and query engine all three depend on: the fixed
// compile-time parameters from the wire contract, the word/document hash,
// the HTML byte sanitizer and the tokenizer. Keeping them here (instead of
// duplicating them per stage) is what makes the indexer/query-engine
// agreement on sanitization automatic rather than asserted.
package engine

// MaxURLLen is the longest URL the crawler will admit to the frontier.
const MaxURLLen = 2049

// WordLen is the longest word the indexer will store; longer tokens are
// truncated to this many bytes before being recorded.
const WordLen = 1000

// MaxSlots is the modulus for the word hash computed by HashSlot. The
// indexer's Index (shared with the query engine) is a Go map keyed by the
// word itself and does not call HashSlot, so both stages agree on word
// lookup without depending on this constant.
const MaxSlots = 10000

// IntervalPerFetch is the politeness delay the crawler sleeps between
// successive fetches of the same origin.
const IntervalPerFetch = 1 // seconds

// MaxURLsPerPage bounds how many outbound links a single page can
// contribute to the frontier in one BFS step.
const MaxURLsPerPage = 1000

// MaxDepth is the deepest BFS level the crawler will accept via its CLI.
const MaxDepth = 4

// FetchRetries is the number of attempts (including the first) the fetch
// primitive makes before declaring a URL unreachable.
const FetchRetries = 3

// MinWordLen is the shortest token the tokenizer will emit as a word.
const MinWordLen = 3

// URLPrefix is the build-time-configurable prefix a URL must begin with
// to be admitted into the crawl frontier. It is a var (not a const) so a
// downstream build can override it with -ldflags, e.g.:
//
//	go build -ldflags "-X github.com/deloschang/mini-search-engine/internal/engine.URLPrefix=http://cs50tse.cs.dartmouth.edu"
var URLPrefix = "http://cs50tse.cs.dartmouth.edu/tse"

