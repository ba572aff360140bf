package crawler

import (
	"fmt"
	"net/url"

	"github.com/deloschang/mini-search-engine/internal/engine"
)

// Config is the crawler's run configuration, adapted from the teacher's
// CrawlConfig/Validate pattern down to exactly what spec §6's CLI
// contract takes: a seed URL, a target directory and a max depth.
type Config struct {
	SeedURL   string
	TargetDir string
	MaxDepth  int
}

// Validate checks Config against spec §6's CLI contract: depth must be a
// single decimal digit in [0,4], and the seed URL must be a well-formed
// http(s) URL beginning with engine.URLPrefix.
func (c Config) Validate() error {
	if c.MaxDepth < 0 || c.MaxDepth > engine.MaxDepth {
		return fmt.Errorf("depth must be in [0,%d], got %d", engine.MaxDepth, c.MaxDepth)
	}
	if c.TargetDir == "" {
		return fmt.Errorf("target directory must not be empty")
	}
	parsed, err := url.Parse(c.SeedURL)
	if err != nil {
		return fmt.Errorf("invalid seed URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("seed URL must be http or https, got %q", parsed.Scheme)
	}
	if !Admissible(c.SeedURL) {
		return fmt.Errorf("seed URL %q does not begin with URL_PREFIX %q", c.SeedURL, engine.URLPrefix)
	}
	return nil
}
