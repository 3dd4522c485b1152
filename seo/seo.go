// Package seo builds per-page search metadata (title, description, canonical
// URL and alternate-language links) and writes it into HTML pages.
package seo

import (
	"strings"

	"github.com/ZaguanLabs/alltools"
	"github.com/ZaguanLabs/alltools/messages"
)

// TitleSuffix is appended to every page title.
const TitleSuffix = " | AllTools"

// Localizer returns the text of a message key in a language.
// *messages.Store implements it.
type Localizer interface {
	Text(lang alltools.Language, key string) string
}

// Alternate is one alternate-language version of a page.
type Alternate struct {
	Hreflang string
	Href     string
}

// Metadata is the search metadata of one page.
type Metadata struct {
	Language    alltools.Language
	Direction   string // "ltr" or "rtl"
	Title       string
	Description string
	Canonical   string
	Alternates  []Alternate // One per catalog language, in catalog order
}

// Title formats a page title.
func Title(text string) string {
	if text == "" {
		return strings.TrimPrefix(TitleSuffix, " | ")
	}
	return text + TitleSuffix
}

// Build computes the metadata of a resolved page. baseURL is prefixed to
// every path.
func Build(catalog *alltools.Catalog, baseURL string, state alltools.RouteState, texts Localizer) (Metadata, error) {
	if !state.Resolved() {
		return Metadata{}, &Error{Message: "page is not resolved: " + string(state.State)}
	}
	baseURL = strings.TrimRight(baseURL, "/")

	lang := state.Language
	meta := Metadata{
		Language:  lang,
		Direction: alltools.Direction(lang),
	}

	switch state.Kind {
	case alltools.PageTool:
		meta.Title = Title(texts.Text(lang, messages.ToolTitleKey(state.Tool)))
		meta.Description = texts.Text(lang, messages.ToolDescriptionKey(state.Tool))
	case alltools.PageLegal:
		meta.Title = Title(texts.Text(lang, messages.LegalTitleKey(state.Legal)))
		meta.Description = firstSentence(texts.Text(lang, messages.LegalTextKey(state.Legal)))
	default:
		meta.Title = Title(texts.Text(lang, messages.HomeTitleKey))
		meta.Description = texts.Text(lang, messages.HomeSubtitleKey)
	}

	for _, alt := range catalog.Languages() {
		path, err := catalog.PagePath(state.Kind, state.Tool, state.Legal, alt)
		if err != nil {
			return Metadata{}, err
		}
		href := baseURL + path
		if alt == lang {
			meta.Canonical = href
		}
		meta.Alternates = append(meta.Alternates, Alternate{Hreflang: alltools.ToHTMLLang(alt), Href: href})
	}
	if meta.Canonical == "" {
		return Metadata{}, &alltools.UnknownLanguageError{Language: lang}
	}

	return meta, nil
}

// firstSentence shortens long legal text to something usable as a description.
func firstSentence(text string) string {
	if i := strings.Index(text, ". "); i >= 0 {
		return text[:i+1]
	}
	return text
}
