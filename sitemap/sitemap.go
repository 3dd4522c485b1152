// Package sitemap generates the multilingual sitemap of a catalog.
//
// Every logical page (home, each legal page, each categorized tool) gets one
// <url> entry per language. Each entry lists every language version of the same
// page as an xhtml:link alternate, itself included, so search engines can pair
// translations.
package sitemap

import (
	"encoding/xml"
	"strings"

	"github.com/ZaguanLabs/alltools"
)

const (
	// Namespace is the sitemap protocol namespace.
	Namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"
	// XHTMLNamespace is the namespace of the alternate-language links.
	XHTMLNamespace = "http://www.w3.org/1999/xhtml"
	// DefaultBaseURL is the public origin of the site.
	DefaultBaseURL = "https://alltools.com"
)

// URLSet is a sitemap document.
type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	XHTML   string   `xml:"xmlns:xhtml,attr"`
	URLs    []URL    `xml:"url"`
}

// URL is one sitemap entry: a page in one language.
type URL struct {
	Loc        string `xml:"loc"`
	Alternates []Link `xml:"xhtml:link"`
}

// Link is an alternate-language reference.
type Link struct {
	Rel      string `xml:"rel,attr"`
	Hreflang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

// Page identifies a logical page independent of language.
type Page struct {
	Kind  alltools.PageKind
	Tool  alltools.ToolID
	Legal alltools.LegalPage
}

// Pages lists the logical pages of a catalog in sitemap order: home, legal pages,
// then tools by category.
func Pages(catalog *alltools.Catalog) []Page {
	pages := []Page{{Kind: alltools.PageHome}}
	for _, legal := range catalog.LegalPages() {
		pages = append(pages, Page{Kind: alltools.PageLegal, Legal: legal})
	}
	for _, cat := range catalog.Categories() {
		for _, tool := range cat.Tools {
			pages = append(pages, Page{Kind: alltools.PageTool, Tool: tool})
		}
	}
	return pages
}

// ExpectedCount returns the number of entries Generate produces for a catalog.
func ExpectedCount(catalog *alltools.Catalog) int {
	return len(catalog.Languages()) * len(Pages(catalog))
}

// Generator builds sitemap documents for one catalog and origin.
type Generator struct {
	catalog *alltools.Catalog
	baseURL string
}

// NewGenerator creates a Generator. An empty baseURL means DefaultBaseURL.
func NewGenerator(catalog *alltools.Catalog, baseURL string) *Generator {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Generator{
		catalog: catalog,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// BaseURL returns the origin prefixed to every path.
func (g *Generator) BaseURL() string {
	return g.baseURL
}

// Generate walks the catalog and builds the document. The output depends only on
// the catalog and base URL.
func (g *Generator) Generate() (*URLSet, error) {
	languages := g.catalog.Languages()
	pages := Pages(g.catalog)

	set := &URLSet{
		Xmlns: Namespace,
		XHTML: XHTMLNamespace,
		URLs:  make([]URL, 0, len(pages)*len(languages)),
	}

	for _, page := range pages {
		hrefs := make([]string, len(languages))
		for i, lang := range languages {
			path, err := g.catalog.PagePath(page.Kind, page.Tool, page.Legal, lang)
			if err != nil {
				return nil, err
			}
			hrefs[i] = g.baseURL + path
		}

		for i := range languages {
			entry := URL{
				Loc:        hrefs[i],
				Alternates: make([]Link, len(languages)),
			}
			for j, alt := range languages {
				entry.Alternates[j] = Link{Rel: "alternate", Hreflang: string(alt), Href: hrefs[j]}
			}
			set.URLs = append(set.URLs, entry)
		}
	}

	return set, nil
}

// Len returns the number of entries.
func (s *URLSet) Len() int {
	return len(s.URLs)
}
