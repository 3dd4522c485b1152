package seo

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ZaguanLabs/alltools"
)

// Decorate writes meta into an HTML page: the lang and dir attributes of
// <html>, the <title>, the description meta tag, the canonical link and one
// alternate link per language. Tags it manages are replaced, the rest of the
// page is kept as is.
func Decorate(page string, meta Metadata) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return "", &Error{Message: "failed to parse HTML", Cause: err}
	}

	DecorateDocument(doc, meta)

	out, err := doc.Html()
	if err != nil {
		return "", &Error{Message: "failed to serialize HTML", Cause: err}
	}
	return out, nil
}

// DecorateDocument is Decorate on an already parsed document.
func DecorateDocument(doc *goquery.Document, meta Metadata) {
	root := doc.Find("html").First()
	root.SetAttr("lang", alltools.ToHTMLLang(meta.Language))
	if meta.Direction != "" {
		root.SetAttr("dir", meta.Direction)
	}

	head := doc.Find("head").First()

	title := head.Find("title")
	if title.Length() == 0 {
		head.PrependNodes(element(atom.Title))
		title = head.Find("title")
	}
	title.First().SetText(meta.Title)
	title.Slice(1, title.Length()).Remove()

	head.Find(`meta[name="description"]`).Remove()
	head.Find(`link[rel="canonical"]`).Remove()
	head.Find(`link[rel="alternate"][hreflang]`).Remove()

	var nodes []*html.Node
	if meta.Description != "" {
		nodes = append(nodes, element(atom.Meta, attr("name", "description"), attr("content", meta.Description)))
	}
	if meta.Canonical != "" {
		nodes = append(nodes, element(atom.Link, attr("rel", "canonical"), attr("href", meta.Canonical)))
	}
	for _, alt := range meta.Alternates {
		nodes = append(nodes, element(atom.Link, attr("rel", "alternate"), attr("hreflang", alt.Hreflang), attr("href", alt.Href)))
	}
	head.AppendNodes(nodes...)
}

// Extract reads the metadata back from an HTML page.
func Extract(page string) (Metadata, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return Metadata{}, &Error{Message: "failed to parse HTML", Cause: err}
	}

	root := doc.Find("html").First()
	lang, _ := root.Attr("lang")
	dir, _ := root.Attr("dir")

	head := doc.Find("head").First()
	meta := Metadata{
		Language:  alltools.Language(lang),
		Direction: dir,
		Title:     strings.TrimSpace(head.Find("title").First().Text()),
	}
	meta.Description, _ = head.Find(`meta[name="description"]`).First().Attr("content")
	meta.Canonical, _ = head.Find(`link[rel="canonical"]`).First().Attr("href")

	head.Find(`link[rel="alternate"][hreflang]`).Each(func(_ int, s *goquery.Selection) {
		hreflang, _ := s.Attr("hreflang")
		href, _ := s.Attr("href")
		meta.Alternates = append(meta.Alternates, Alternate{Hreflang: hreflang, Href: href})
	})

	return meta, nil
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}
