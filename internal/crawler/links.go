package crawler

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/deloschang/mini-search-engine/internal/engine"
)

// nonTextExtensions are resource suffixes normalization rejects outright
// (spec §4.1 admission policy: "rejects non-textual resources such as
// PDFs/JPEGs"). Grounded on the teacher's URLExtractor.ShouldFollowLink,
// generalized from "same-scheme" checks to the spec's URL_PREFIX check.
var nonTextExtensions = []string{
	".pdf", ".jpg", ".jpeg", ".png", ".gif", ".svg", ".ico",
	".zip", ".gz", ".tar", ".mp3", ".mp4", ".mov", ".avi",
	".css", ".js", ".woff", ".woff2", ".ttf", ".eot",
}

// Normalize resolves href against base and returns the absolute form, or
// ok=false if the result is not admissible: wrong scheme, a non-textual
// resource extension, or longer than engine.MaxURLLen. This is the
// "opaque" URL-normalization predicate spec §1 treats as an external
// collaborator; it is implemented here with net/url rather than left
// unimplemented, since §4.1's admission policy depends on it.
func Normalize(base *url.URL, href string) (string, bool) {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", false
	}
	abs := base.ResolveReference(ref)
	if abs.Scheme != "http" && abs.Scheme != "https" {
		return "", false
	}
	absStr := abs.String()
	if len(absStr) > engine.MaxURLLen {
		return "", false
	}
	lower := strings.ToLower(abs.Path)
	for _, ext := range nonTextExtensions {
		if strings.HasSuffix(lower, ext) {
			return "", false
		}
	}
	return absStr, true
}

// Admissible reports whether a normalized absolute URL may enter the
// frontier: it must begin with engine.URLPrefix (spec §4.1 admission
// policy condition (i)).
func Admissible(absURL string) bool {
	return strings.HasPrefix(absURL, engine.URLPrefix)
}

// ExtractLinks parses an HTML page body and returns every admissible,
// normalized absolute URL reachable from an <a href> on the page, capped
// at engine.MaxURLsPerPage. Grounded on the teacher's
// URLExtractor.ExtractFromHTML, rewritten on goquery's selection API in
// place of raw golang.org/x/net/html tree-walking.
func ExtractLinks(body []byte, pageURL string) ([]string, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return nil, err
	}

	var links []string
	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if len(links) >= engine.MaxURLsPerPage {
			return false
		}
		href, exists := s.Attr("href")
		if !exists {
			return true
		}
		abs, ok := Normalize(base, href)
		if !ok {
			return true
		}
		if !Admissible(abs) {
			return true
		}
		links = append(links, abs)
		return true
	})

	return links, nil
}
