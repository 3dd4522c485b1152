package sitemap

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

// parsedURLSet mirrors URLSet for decoding; the link element has to be matched
// by namespace URL rather than by its prefixed name.
type parsedURLSet struct {
	URLs []parsedURL `xml:"url"`
}

type parsedURL struct {
	Loc   string `xml:"loc"`
	Links []Link `xml:"http://www.w3.org/1999/xhtml link"`
}

// Parse reads a sitemap document.
func Parse(r io.Reader) (*URLSet, error) {
	var raw parsedURLSet
	if err := xml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding sitemap: %w", err)
	}

	set := &URLSet{
		Xmlns: Namespace,
		XHTML: XHTMLNamespace,
		URLs:  make([]URL, len(raw.URLs)),
	}
	for i, u := range raw.URLs {
		set.URLs[i] = URL{Loc: u.Loc, Alternates: u.Links}
	}
	return set, nil
}

// ParseFile reads a sitemap document from path.
func ParseFile(path string) (*URLSet, error) {
	f, err := os.Open(path) // #nosec G304 - path is intentionally user-provided
	if err != nil {
		return nil, fmt.Errorf("opening sitemap: %w", err)
	}
	defer f.Close()

	return Parse(f)
}
