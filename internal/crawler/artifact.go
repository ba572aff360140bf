package crawler

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// WritePageArtifact writes one page artifact file named id under dir, in
// the exact three-line-prefixed format spec §3 mandates:
//
//	<absolute URL>\n
//	<depth as decimal integer>\n
//	<raw HTML bytes, to EOF>
//
// The body is written exactly as fetched — no trailing-byte padding —
// per DESIGN NOTES' callout that one revision of the original crawler
// wrote a spurious trailing byte past the fetched length.
func WritePageArtifact(dir string, id int, url string, depth int, body []byte) error {
	path := filepath.Join(dir, strconv.Itoa(id))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating artifact %s: %w", path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s\n%d\n", url, depth); err != nil {
		return fmt.Errorf("writing artifact header %s: %w", path, err)
	}
	if _, err := f.Write(body); err != nil {
		return fmt.Errorf("writing artifact body %s: %w", path, err)
	}
	return nil
}
