package alltools

import (
	"regexp"
)

// segmentPattern matches RFC 3986 unreserved characters, which need no escaping in a path.
var segmentPattern = regexp.MustCompile(`^[A-Za-z0-9._~-]+$`)

// Definition is the raw, unvalidated description of a Catalog. It is what catalog
// files decode into.
type Definition struct {
	DefaultLanguage Language             `json:"default_language" yaml:"default_language" toml:"default_language"`
	Languages       []Language           `json:"languages" yaml:"languages" toml:"languages"`
	LegalPages      []LegalPage          `json:"legal_pages,omitempty" yaml:"legal_pages,omitempty" toml:"legal_pages,omitempty"`
	Tools           []ToolDefinition     `json:"tools" yaml:"tools" toml:"tools"`
	Categories      []CategoryDefinition `json:"categories" yaml:"categories" toml:"categories"`
}

// ToolDefinition declares one tool and its slug in every language.
type ToolDefinition struct {
	ID    ToolID              `json:"id" yaml:"id" toml:"id"`
	Slugs map[Language]string `json:"slugs" yaml:"slugs" toml:"slugs"`
}

// CategoryDefinition declares one category.
type CategoryDefinition struct {
	ID    string   `json:"id" yaml:"id" toml:"id"`
	Icon  string   `json:"icon" yaml:"icon" toml:"icon"`
	Tools []ToolID `json:"tools" yaml:"tools" toml:"tools"`
}

// Catalog is the immutable registry of languages, tools, slugs and categories.
// It is safe for concurrent use; no method mutates it.
type Catalog struct {
	defaultLang Language
	languages   []Language
	legalPages  []LegalPage
	tools       []ToolID
	slugs       map[ToolID]map[Language]string
	index       map[Language]map[string]ToolID
	categories  []Category
	fingerprint string
}

// NewCatalog validates a definition and freezes it into a Catalog.
// A nil LegalPages list means DefaultLegalPages.
func NewCatalog(def Definition) (*Catalog, error) {
	if len(def.Languages) == 0 {
		return nil, &CatalogError{Message: "no languages defined"}
	}

	c := &Catalog{
		defaultLang: def.DefaultLanguage,
		slugs:       make(map[ToolID]map[Language]string, len(def.Tools)),
		index:       make(map[Language]map[string]ToolID, len(def.Languages)),
	}

	for _, lang := range def.Languages {
		if !segmentPattern.MatchString(string(lang)) {
			return nil, &CatalogError{Message: "language code is not a valid path segment", Lang: lang}
		}
		if _, dup := c.index[lang]; dup {
			return nil, &CatalogError{Message: "duplicate language", Lang: lang}
		}
		c.index[lang] = make(map[string]ToolID, len(def.Tools))
		c.languages = append(c.languages, lang)
	}

	if c.defaultLang == "" {
		c.defaultLang = c.languages[0]
	}
	if _, ok := c.index[c.defaultLang]; !ok {
		return nil, &CatalogError{Message: "default language is not supported", Lang: c.defaultLang}
	}

	legal := def.LegalPages
	if legal == nil {
		legal = DefaultLegalPages
	}
	legalNames := make(map[string]struct{}, len(legal))
	for _, page := range legal {
		if !segmentPattern.MatchString(string(page)) {
			return nil, &CatalogError{Message: "legal page is not a valid path segment: " + string(page)}
		}
		if _, dup := legalNames[string(page)]; dup {
			return nil, &CatalogError{Message: "duplicate legal page: " + string(page)}
		}
		legalNames[string(page)] = struct{}{}
		c.legalPages = append(c.legalPages, page)
	}

	for _, tool := range def.Tools {
		if tool.ID == "" {
			return nil, &CatalogError{Message: "empty tool id"}
		}
		if _, dup := c.slugs[tool.ID]; dup {
			return nil, &CatalogError{Message: "duplicate tool id", Tool: tool.ID}
		}

		perLang := make(map[Language]string, len(c.languages))
		for _, lang := range c.languages {
			slug, ok := tool.Slugs[lang]
			if !ok || slug == "" {
				return nil, &CatalogError{Message: "missing slug", Tool: tool.ID, Lang: lang}
			}
			if !segmentPattern.MatchString(slug) {
				return nil, &CatalogError{Message: "slug is not URL-safe: " + slug, Tool: tool.ID, Lang: lang}
			}
			if _, clash := legalNames[slug]; clash {
				return nil, &CatalogError{Message: "slug shadows legal page: " + slug, Tool: tool.ID, Lang: lang}
			}
			if owner, taken := c.index[lang][slug]; taken {
				return nil, &CatalogError{Message: "slug " + slug + " already used by " + string(owner), Tool: tool.ID, Lang: lang}
			}
			c.index[lang][slug] = tool.ID
			perLang[lang] = slug
		}
		for lang := range tool.Slugs {
			if _, ok := c.index[lang]; !ok {
				return nil, &CatalogError{Message: "slug for unsupported language", Tool: tool.ID, Lang: lang}
			}
		}

		c.slugs[tool.ID] = perLang
		c.tools = append(c.tools, tool.ID)
	}

	owners := make(map[ToolID]string)
	categoryIDs := make(map[string]struct{}, len(def.Categories))
	for _, cat := range def.Categories {
		if cat.ID == "" {
			return nil, &CatalogError{Message: "empty category id"}
		}
		if _, dup := categoryIDs[cat.ID]; dup {
			return nil, &CatalogError{Message: "duplicate category: " + cat.ID}
		}
		categoryIDs[cat.ID] = struct{}{}

		for _, id := range cat.Tools {
			if _, ok := c.slugs[id]; !ok {
				return nil, &CatalogError{Message: "category " + cat.ID + " references unknown tool", Tool: id}
			}
			if owner, dup := owners[id]; dup {
				return nil, &CatalogError{Message: "tool listed in categories " + owner + " and " + cat.ID, Tool: id}
			}
			owners[id] = cat.ID
		}
		c.categories = append(c.categories, Category{
			ID:    cat.ID,
			Icon:  cat.Icon,
			Tools: append([]ToolID(nil), cat.Tools...),
		})
	}

	c.fingerprint = fingerprintCatalog(c)
	return c, nil
}

// MustCatalog is like NewCatalog but panics on an invalid definition.
// It is meant for package-level tables that are known to be valid.
func MustCatalog(def Definition) *Catalog {
	c, err := NewCatalog(def)
	if err != nil {
		panic(err)
	}
	return c
}

// Languages returns the supported languages in declaration order.
func (c *Catalog) Languages() []Language {
	return append([]Language(nil), c.languages...)
}

// DefaultLanguage returns the fallback language.
func (c *Catalog) DefaultLanguage() Language {
	return c.defaultLang
}

// Tools returns every registered tool in declaration order.
func (c *Catalog) Tools() []ToolID {
	return append([]ToolID(nil), c.tools...)
}

// Categories returns the categories in declaration order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	for i, cat := range c.categories {
		out[i] = cat.clone()
	}
	return out
}

// CategoryOf returns the category containing the tool.
func (c *Catalog) CategoryOf(tool ToolID) (Category, bool) {
	for _, cat := range c.categories {
		for _, id := range cat.Tools {
			if id == tool {
				return cat.clone(), true
			}
		}
	}
	return Category{}, false
}

// LegalPages returns the informational pages in declaration order.
func (c *Catalog) LegalPages() []LegalPage {
	return append([]LegalPage(nil), c.legalPages...)
}

// HasLanguage reports whether lang is supported. Matching is exact.
func (c *Catalog) HasLanguage(lang Language) bool {
	_, ok := c.index[lang]
	return ok
}

// HasTool reports whether the tool is registered.
func (c *Catalog) HasTool(tool ToolID) bool {
	_, ok := c.slugs[tool]
	return ok
}

// SlugOf returns the slug of a tool in a language.
func (c *Catalog) SlugOf(tool ToolID, lang Language) (string, error) {
	perLang, ok := c.slugs[tool]
	if !ok {
		return "", &UnknownToolError{Tool: tool}
	}
	slug, ok := perLang[lang]
	if !ok {
		return "", &UnknownLanguageError{Language: lang}
	}
	return slug, nil
}

// Fingerprint returns a stable SHA-256 digest of the catalog contents.
func (c *Catalog) Fingerprint() string {
	return c.fingerprint
}

// Definition returns a definition equivalent to the catalog, in canonical order.
func (c *Catalog) Definition() Definition {
	def := Definition{
		DefaultLanguage: c.defaultLang,
		Languages:       c.Languages(),
		LegalPages:      c.LegalPages(),
		Tools:           make([]ToolDefinition, 0, len(c.tools)),
		Categories:      make([]CategoryDefinition, 0, len(c.categories)),
	}
	for _, id := range c.tools {
		slugs := make(map[Language]string, len(c.languages))
		for lang, slug := range c.slugs[id] {
			slugs[lang] = slug
		}
		def.Tools = append(def.Tools, ToolDefinition{ID: id, Slugs: slugs})
	}
	for _, cat := range c.categories {
		def.Categories = append(def.Categories, CategoryDefinition{
			ID:    cat.ID,
			Icon:  cat.Icon,
			Tools: append([]ToolID(nil), cat.Tools...),
		})
	}
	return def
}
