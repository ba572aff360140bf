package crawler

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/gocolly/colly/v2"

	"github.com/deloschang/mini-search-engine/internal/engine"
	"github.com/deloschang/mini-search-engine/internal/telemetry"
)

// Fetcher retrieves a single URL's body over HTTP. Spec §4.1/§5 mandate
// that fetches are serialized with no concurrency, so unlike the teacher's
// StaticCrawler (an async colly.Collector driving its own internal
// OnHTML-triggered queue), Fetcher wraps a single synchronous collector
// and is called exactly once per BFS step from Run.
type Fetcher struct {
	collector *colly.Collector
}

// NewFetcher builds a Fetcher backed by a single-shot colly collector:
// Async disabled, parallelism 1, no built-in queue (the caller's
// Frontier is the one and only frontier). URL revisits are allowed so a
// retry attempt for the same URL reaches the network again; the Frontier
// already guarantees each URL is fetched at most once per crawl.
func NewFetcher() *Fetcher {
	c := colly.NewCollector(colly.Async(false), colly.AllowURLRevisit())
	c.SetRequestTimeout(30 * time.Second)

	httpClient := &http.Client{
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: false},
		},
		Timeout: 30 * time.Second,
	}
	c.SetClient(httpClient)

	return &Fetcher{collector: c}
}

// Fetch retrieves url's body, retrying up to engine.FetchRetries total
// attempts on transport failure (spec §4.1 "Fetch primitive"). It is the
// crawler's only blocking I/O besides the politeness sleep and artifact
// writes.
func (f *Fetcher) Fetch(url string) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= engine.FetchRetries; attempt++ {
		body, err := f.fetchOnce(url)
		if err == nil {
			return body, nil
		}
		lastErr = err
		telemetry.Warnf("fetch attempt %d/%d failed for %s: %v", attempt, engine.FetchRetries, url, err)
	}
	return nil, fmt.Errorf("fetching %s after %d attempts: %w", url, engine.FetchRetries, lastErr)
}

func (f *Fetcher) fetchOnce(url string) ([]byte, error) {
	var body []byte
	var fetchErr error

	c := f.collector.Clone()
	c.OnResponse(func(r *colly.Response) {
		decoded, err := decompressResponse(r.Headers.Get("Content-Encoding"), r.Body)
		if err != nil {
			fetchErr = err
			return
		}
		body = decoded
	})
	c.OnError(func(r *colly.Response, err error) {
		fetchErr = err
	})

	if err := c.Visit(url); err != nil {
		return nil, err
	}
	c.Wait()

	if fetchErr != nil {
		return nil, fetchErr
	}
	return body, nil
}

// decompressResponse decodes body according to contentEncoding (gzip,
// deflate, br), passing it through unchanged if the encoding is empty or
// unrecognized. Grounded on the teacher's static.go decompressResponse,
// generalized from a JS-crawling-specific helper to the crawler's fetch
// primitive.
func decompressResponse(contentEncoding string, body []byte) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(contentEncoding)) {
	case "gzip":
		r, err := gzip.NewReader(bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		defer r.Close()
		return io.ReadAll(r)

	case "deflate":
		r := flate.NewReader(bytes.NewReader(body))
		defer r.Close()
		return io.ReadAll(r)

	case "br":
		return io.ReadAll(brotli.NewReader(bytes.NewReader(body)))

	default:
		return body, nil
	}
}
