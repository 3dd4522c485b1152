package alltools

// Resolve finds the tool owning slug in the namespace of lang. Matching is exact and
// case-sensitive; a slug from another language never matches. The second result is
// false for unknown languages and unknown slugs.
func (c *Catalog) Resolve(lang Language, slug string) (ToolID, bool) {
	namespace, ok := c.index[lang]
	if !ok || slug == "" {
		return "", false
	}
	id, ok := namespace[slug]
	return id, ok
}

// CanonicalPath returns "/" + lang + "/" + slug for a tool.
func (c *Catalog) CanonicalPath(tool ToolID, lang Language) (string, error) {
	slug, err := c.SlugOf(tool, lang)
	if err != nil {
		return "", err
	}
	return "/" + string(lang) + "/" + slug, nil
}

// HomePath returns the home page path of a language.
func (c *Catalog) HomePath(lang Language) (string, error) {
	if !c.HasLanguage(lang) {
		return "", &UnknownLanguageError{Language: lang}
	}
	return "/" + string(lang), nil
}

// LegalPath returns the path of an informational page in a language.
func (c *Catalog) LegalPath(page LegalPage, lang Language) (string, error) {
	if !c.HasLanguage(lang) {
		return "", &UnknownLanguageError{Language: lang}
	}
	if _, ok := c.LegalPageOf(string(page)); !ok {
		return "", &CatalogError{Message: "unknown legal page: " + string(page)}
	}
	return "/" + string(lang) + "/" + string(page), nil
}

// LegalPageOf reports whether a path segment names an informational page.
// Legal page segments are identical in every language.
func (c *Catalog) LegalPageOf(segment string) (LegalPage, bool) {
	for _, page := range c.legalPages {
		if string(page) == segment {
			return page, true
		}
	}
	return "", false
}

// PagePath returns the path of the page described by a resolved state in another
// language.
func (c *Catalog) PagePath(kind PageKind, tool ToolID, legal LegalPage, lang Language) (string, error) {
	switch kind {
	case PageTool:
		return c.CanonicalPath(tool, lang)
	case PageLegal:
		return c.LegalPath(legal, lang)
	default:
		return c.HomePath(lang)
	}
}
