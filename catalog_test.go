package alltools

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	if len(c.Languages()) != 3 {
		t.Errorf("expected 3 languages, got %d", len(c.Languages()))
	}
	if c.DefaultLanguage() != English {
		t.Errorf("default language = %q, want en", c.DefaultLanguage())
	}
	if len(c.Tools()) != 20 {
		t.Errorf("expected 20 tools, got %d", len(c.Tools()))
	}
	if len(c.Categories()) != 5 {
		t.Errorf("expected 5 categories, got %d", len(c.Categories()))
	}
	if len(c.LegalPages()) != 4 {
		t.Errorf("expected 4 legal pages, got %d", len(c.LegalPages()))
	}

	// Every tool belongs to exactly one category.
	seen := make(map[ToolID]int)
	for _, cat := range c.Categories() {
		for _, id := range cat.Tools {
			seen[id]++
		}
	}
	for _, id := range c.Tools() {
		if seen[id] != 1 {
			t.Errorf("tool %s appears in %d categories", id, seen[id])
		}
	}
}

func TestSlugsInjectivePerLanguage(t *testing.T) {
	c := Default()

	for _, lang := range c.Languages() {
		owners := make(map[string]ToolID)
		for _, id := range c.Tools() {
			slug, err := c.SlugOf(id, lang)
			if err != nil {
				t.Fatalf("SlugOf(%s, %s): %v", id, lang, err)
			}
			if owner, dup := owners[slug]; dup {
				t.Errorf("language %s: slug %q shared by %s and %s", lang, slug, owner, id)
			}
			owners[slug] = id
		}
	}
}

func TestSlugOf(t *testing.T) {
	c := Default()

	slug, err := c.SlugOf(ToolCompressImage, Portuguese)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slug != "compressor-de-imagem" {
		t.Errorf("SlugOf = %q, want compressor-de-imagem", slug)
	}

	_, err = c.SlugOf("teleporter", English)
	var toolErr *UnknownToolError
	if !errors.As(err, &toolErr) {
		t.Errorf("expected *UnknownToolError, got %T", err)
	}

	_, err = c.SlugOf(ToolCompressImage, "de")
	var langErr *UnknownLanguageError
	if !errors.As(err, &langErr) {
		t.Errorf("expected *UnknownLanguageError, got %T", err)
	}
}

func TestCategoryOf(t *testing.T) {
	c := Default()

	cat, ok := c.CategoryOf(ToolLoanSimulator)
	if !ok {
		t.Fatal("expected category")
	}
	if cat.ID != "finance" || cat.Icon != "DollarSign" {
		t.Errorf("unexpected category: %+v", cat)
	}

	if _, ok := c.CategoryOf("teleporter"); ok {
		t.Error("unknown tool should have no category")
	}
}

func TestCatalogAccessorsReturnCopies(t *testing.T) {
	c := Default()

	langs := c.Languages()
	langs[0] = "xx"
	cats := c.Categories()
	cats[0].Tools[0] = "teleporter"

	if c.Languages()[0] != English {
		t.Error("Languages() should return a copy")
	}
	if c.Categories()[0].Tools[0] != ToolPDFToWord {
		t.Error("Categories() should return deep copies")
	}
}

func TestNewCatalogDefaultsFirstLanguage(t *testing.T) {
	c, err := NewCatalog(Definition{
		Languages: []Language{"pt", "en"},
		Tools:     []ToolDefinition{{ID: "a", Slugs: map[Language]string{"pt": "a-pt", "en": "a-en"}}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.DefaultLanguage() != "pt" {
		t.Errorf("default language = %q, want pt", c.DefaultLanguage())
	}
	if len(c.LegalPages()) != len(DefaultLegalPages) {
		t.Errorf("nil legal pages should default, got %v", c.LegalPages())
	}
}

func TestNewCatalogEmptyLegalPages(t *testing.T) {
	c, err := NewCatalog(Definition{
		Languages:  []Language{"en"},
		LegalPages: []LegalPage{},
		Tools:      []ToolDefinition{{ID: "privacy-checker", Slugs: map[Language]string{"en": "privacy"}}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.LegalPages()) != 0 {
		t.Errorf("expected no legal pages, got %v", c.LegalPages())
	}
}

func TestNewCatalogValidation(t *testing.T) {
	tool := func(id string, en, pt string) ToolDefinition {
		return ToolDefinition{ID: ToolID(id), Slugs: map[Language]string{"en": en, "pt": pt}}
	}
	langs := []Language{"en", "pt"}

	tests := []struct {
		name    string
		def     Definition
		message string
	}{
		{
			name:    "no languages",
			def:     Definition{},
			message: "no languages defined",
		},
		{
			name:    "bad language code",
			def:     Definition{Languages: []Language{"en/us"}},
			message: "language code is not a valid path segment",
		},
		{
			name:    "duplicate language",
			def:     Definition{Languages: []Language{"en", "en"}},
			message: "duplicate language",
		},
		{
			name:    "unsupported default",
			def:     Definition{DefaultLanguage: "de", Languages: langs},
			message: "default language is not supported",
		},
		{
			name:    "bad legal page",
			def:     Definition{Languages: langs, LegalPages: []LegalPage{"about us"}},
			message: "legal page is not a valid path segment",
		},
		{
			name:    "duplicate legal page",
			def:     Definition{Languages: langs, LegalPages: []LegalPage{"terms", "terms"}},
			message: "duplicate legal page",
		},
		{
			name:    "empty tool id",
			def:     Definition{Languages: langs, Tools: []ToolDefinition{tool("", "a", "a")}},
			message: "empty tool id",
		},
		{
			name:    "duplicate tool id",
			def:     Definition{Languages: langs, Tools: []ToolDefinition{tool("a", "a", "a"), tool("a", "b", "b")}},
			message: "duplicate tool id",
		},
		{
			name:    "missing slug",
			def:     Definition{Languages: langs, Tools: []ToolDefinition{tool("a", "a", "")}},
			message: "missing slug",
		},
		{
			name:    "unsafe slug",
			def:     Definition{Languages: langs, Tools: []ToolDefinition{tool("a", "a b", "a")}},
			message: "slug is not URL-safe",
		},
		{
			name:    "slug shadows legal page",
			def:     Definition{Languages: langs, Tools: []ToolDefinition{tool("a", "privacy", "a")}},
			message: "slug shadows legal page",
		},
		{
			name:    "slug collision within language",
			def:     Definition{Languages: langs, Tools: []ToolDefinition{tool("a", "same", "a"), tool("b", "same", "b")}},
			message: "already used by a",
		},
		{
			name: "slug for unsupported language",
			def: Definition{Languages: langs, Tools: []ToolDefinition{
				{ID: "a", Slugs: map[Language]string{"en": "a", "pt": "a", "de": "a"}},
			}},
			message: "slug for unsupported language",
		},
		{
			name:    "empty category id",
			def:     Definition{Languages: langs, Categories: []CategoryDefinition{{ID: ""}}},
			message: "empty category id",
		},
		{
			name:    "duplicate category",
			def:     Definition{Languages: langs, Categories: []CategoryDefinition{{ID: "pdf"}, {ID: "pdf"}}},
			message: "duplicate category",
		},
		{
			name:    "unknown tool in category",
			def:     Definition{Languages: langs, Categories: []CategoryDefinition{{ID: "pdf", Tools: []ToolID{"ghost"}}}},
			message: "references unknown tool",
		},
		{
			name: "tool in two categories",
			def: Definition{
				Languages:  langs,
				Tools:      []ToolDefinition{tool("a", "a", "a")},
				Categories: []CategoryDefinition{{ID: "pdf", Tools: []ToolID{"a"}}, {ID: "image", Tools: []ToolID{"a"}}},
			},
			message: "tool listed in categories pdf and image",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.def)
			var catErr *CatalogError
			if !errors.As(err, &catErr) {
				t.Fatalf("expected *CatalogError, got %v", err)
			}
			if !strings.Contains(catErr.Message, tt.message) {
				t.Errorf("message = %q, want it to contain %q", catErr.Message, tt.message)
			}
		})
	}
}

func TestSameSlugAcrossLanguages(t *testing.T) {
	// Slugs only need to be unique within one language.
	c, err := NewCatalog(Definition{
		Languages: []Language{"pt", "es"},
		Tools:     []ToolDefinition{{ID: "merge-pdf", Slugs: map[Language]string{"pt": "unir-pdf", "es": "unir-pdf"}}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id, ok := c.Resolve("es", "unir-pdf"); !ok || id != "merge-pdf" {
		t.Errorf("Resolve(es, unir-pdf) = %q, %v", id, ok)
	}
}

func TestMustCatalogPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCatalog should panic on invalid definition")
		}
	}()
	MustCatalog(Definition{})
}

func TestDefinitionRoundTrip(t *testing.T) {
	c := Default()

	rebuilt, err := NewCatalog(c.Definition())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rebuilt.Fingerprint() != c.Fingerprint() {
		t.Error("Definition() should rebuild an identical catalog")
	}
}
