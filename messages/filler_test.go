package messages

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZaguanLabs/alltools"
	"github.com/ZaguanLabs/alltools/cache"
)

// fakeProvider prefixes every text with its target language. The first
// `failures` calls fail with a retryable error.
type fakeProvider struct {
	mu       sync.Mutex
	failures int
	short    bool // return one text fewer than requested
	calls    int
	requests []TranslateRequest
}

func (f *fakeProvider) Translate(_ context.Context, req TranslateRequest) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	f.requests = append(f.requests, req)
	if f.calls <= f.failures {
		return nil, &ProviderError{Message: "temporary", Retryable: true}
	}

	out := make([]string, len(req.Texts))
	for i, text := range req.Texts {
		out[i] = "[" + string(req.TargetLang) + "] " + text
	}
	if f.short {
		out = out[:len(out)-1]
	}
	return out, nil
}

// countingCache records lookups on top of a memory cache.
type countingCache struct {
	*cache.MemoryCache
	gets int64
}

func (c *countingCache) Get(ctx context.Context, key string) (string, bool) {
	atomic.AddInt64(&c.gets, 1)
	return c.MemoryCache.Get(ctx, key)
}

func smallCatalog(t *testing.T) *alltools.Catalog {
	t.Helper()
	c, err := alltools.NewCatalog(alltools.Definition{
		Languages:  []alltools.Language{"en", "pt"},
		LegalPages: []alltools.LegalPage{},
		Tools: []alltools.ToolDefinition{
			{ID: "merge-pdf", Slugs: map[alltools.Language]string{"en": "merge-pdf", "pt": "unir-pdf"}},
		},
		Categories: []alltools.CategoryDefinition{{ID: "pdf", Tools: []alltools.ToolID{"merge-pdf"}}},
	})
	require.NoError(t, err)
	return c
}

func englishStore() *Store {
	s := NewStore(alltools.English)
	s.Merge(Bundle{"en": {
		HomeTitleKey:                    "All tools",
		HomeSubtitleKey:                 "Free tools",
		LanguageKey:                     "Language",
		UploadKey:                       "Upload file",
		ClearKey:                        "Clear",
		InDevelopmentKey:                "Coming soon",
		FooterRightsKey:                 "All rights reserved.",
		CategoryTitleKey("pdf"):         "PDF Tools",
		ToolTitleKey("merge-pdf"):       "Merge PDF",
		ToolDescriptionKey("merge-pdf"): "Combine PDFs",
	}})
	return s
}

func TestFillerFill(t *testing.T) {
	ctx := context.Background()
	catalog := smallCatalog(t)
	store := englishStore()
	store.Add("pt", HomeTitleKey, "Todas as ferramentas")

	p := &fakeProvider{}
	res, err := NewFiller(p).Fill(ctx, store, catalog, "pt")
	require.NoError(t, err)

	assert.Equal(t, alltools.Language("pt"), res.Language)
	assert.Equal(t, 9, res.Filled)
	assert.Equal(t, 0, res.Cached)
	assert.Equal(t, 0, res.Unavailable)
	assert.Equal(t, "[pt] Merge PDF", res.Texts[ToolTitleKey("merge-pdf")])

	assert.Equal(t, "Todas as ferramentas", store.Text("pt", HomeTitleKey), "existing texts are kept")
	assert.Equal(t, "[pt] Combine PDFs", store.Text("pt", ToolDescriptionKey("merge-pdf")))
	assert.Empty(t, store.Missing(catalog))

	require.Len(t, p.requests, 1)
	req := p.requests[0]
	assert.Equal(t, alltools.Language("en"), req.SourceLang)
	assert.Len(t, req.Keys, len(req.Texts))
	assert.NotEmpty(t, req.Context)
}

func TestFillerUsesCache(t *testing.T) {
	ctx := context.Background()
	catalog := smallCatalog(t)
	c := &countingCache{MemoryCache: cache.NewMemoryCache(time.Hour)}

	first := &fakeProvider{}
	_, err := NewFiller(first, WithCache(c)).Fill(ctx, englishStore(), catalog, "pt")
	require.NoError(t, err)
	require.Equal(t, 1, first.calls)

	second := &fakeProvider{}
	store := englishStore()
	res, err := NewFiller(second, WithCache(c), WithParallelThreshold(1)).Fill(ctx, store, catalog, "pt")
	require.NoError(t, err)

	assert.Equal(t, 0, second.calls, "everything comes from the cache")
	assert.Equal(t, 0, res.Filled)
	assert.Equal(t, 10, res.Cached)
	assert.Equal(t, "[pt] Merge PDF", store.Text("pt", ToolTitleKey("merge-pdf")))
}

func TestFillerDeduplicatesSources(t *testing.T) {
	ctx := context.Background()
	catalog := smallCatalog(t)
	store := englishStore()
	store.Add("en", ClearKey, "Merge PDF") // same source text as the tool title

	p := &fakeProvider{}
	res, err := NewFiller(p).Fill(ctx, store, catalog, "pt")
	require.NoError(t, err)

	assert.Len(t, p.requests[0].Texts, 9)
	assert.Equal(t, 9, res.Filled)
	assert.Len(t, res.Texts, 10)
	assert.Equal(t, "[pt] Merge PDF", store.Text("pt", ClearKey))
}

func TestFillerCachedCountsKeys(t *testing.T) {
	ctx := context.Background()
	catalog := smallCatalog(t)
	c := cache.NewMemoryCache(time.Hour)

	withDuplicate := func() *Store {
		store := englishStore()
		store.Add("en", ClearKey, "Merge PDF") // same source text as the tool title
		return store
	}

	_, err := NewFiller(&fakeProvider{}, WithCache(c)).Fill(ctx, withDuplicate(), catalog, "pt")
	require.NoError(t, err)

	p := &fakeProvider{}
	res, err := NewFiller(p, WithCache(c)).Fill(ctx, withDuplicate(), catalog, "pt")
	require.NoError(t, err)

	assert.Equal(t, 0, p.calls)
	assert.Equal(t, 10, res.Cached, "both keys sharing a source text count")
	assert.Len(t, res.Texts, 10)
}

func TestFillerSiteDescription(t *testing.T) {
	p := &fakeProvider{}
	_, err := NewFiller(p, WithSiteDescription("Calculators for students")).
		Fill(context.Background(), englishStore(), smallCatalog(t), "pt")
	require.NoError(t, err)

	require.Len(t, p.requests, 1)
	assert.Equal(t, "Calculators for students", p.requests[0].Context)
}

func TestFillerSourceLanguageIsNoop(t *testing.T) {
	p := &fakeProvider{}
	res, err := NewFiller(p).Fill(context.Background(), englishStore(), smallCatalog(t), "en")
	require.NoError(t, err)

	assert.Empty(t, res.Texts)
	assert.Equal(t, 0, p.calls)
}

func TestFillerUnavailable(t *testing.T) {
	store := NewStore(alltools.English)
	store.Add("en", HomeTitleKey, "All tools")

	res, err := NewFiller(&fakeProvider{}).Fill(context.Background(), store, smallCatalog(t), "pt")
	require.NoError(t, err)

	assert.Equal(t, 1, res.Filled)
	assert.Equal(t, 9, res.Unavailable)
}

func TestFillerNilProvider(t *testing.T) {
	res, err := NewFiller(nil).Fill(context.Background(), englishStore(), smallCatalog(t), "pt")
	require.NoError(t, err)

	assert.Equal(t, 0, res.Filled)
	assert.Empty(t, res.Texts)
}

func TestFillerProviderErrorLeavesStore(t *testing.T) {
	store := englishStore()
	p := &fakeProvider{failures: 1}

	_, err := NewFiller(p).Fill(context.Background(), store, smallCatalog(t), "pt")
	var providerErr *ProviderError
	require.ErrorAs(t, err, &providerErr)

	_, ok := store.Lookup("pt", HomeTitleKey)
	assert.False(t, ok)
}

func TestFillerCountMismatch(t *testing.T) {
	_, err := NewFiller(&fakeProvider{short: true}).Fill(context.Background(), englishStore(), smallCatalog(t), "pt")

	var mismatch *CountMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, 10, mismatch.Expected)
	assert.Equal(t, 9, mismatch.Got)
}

func TestFillerFillAll(t *testing.T) {
	catalog := smallCatalog(t)
	store := englishStore()

	results, err := NewFiller(&fakeProvider{}, WithSourceLang("en")).FillAll(context.Background(), store, catalog)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, 10, results[1].Filled)
	assert.Empty(t, store.Missing(catalog))
}

func TestLookupCached(t *testing.T) {
	ctx := context.Background()
	c := &countingCache{MemoryCache: cache.NewMemoryCache(0)}
	require.NoError(t, c.Set(ctx, CacheKey(HashText("Hello"), "pt"), "Olá"))

	items := []pending{
		{Key: "a", Source: "Hello", Hash: HashText("Hello")},
		{Key: "b", Source: "World", Hash: HashText("World")},
		{Key: "c", Source: "Hello", Hash: HashText("Hello")},
		{Key: "d", Source: "World", Hash: HashText("World")},
	}

	found, misses := lookupCached(ctx, c, items, "pt")
	assert.Equal(t, map[string]string{HashText("Hello"): "Olá"}, found)
	require.Len(t, misses, 1)
	assert.Equal(t, "b", misses[0].Key)
	assert.Equal(t, int64(2), atomic.LoadInt64(&c.gets), "one lookup per unique hash")

	seqFound, seqMisses := lookupSequential(ctx, c, items, "pt")
	assert.Equal(t, found, seqFound)
	assert.Equal(t, misses, seqMisses)

	noneFound, all := lookupCached(ctx, nil, items, "pt")
	assert.Empty(t, noneFound)
	assert.Len(t, all, 2)
}

func TestHashText(t *testing.T) {
	assert.Len(t, HashText("Hello"), 64)
	assert.Equal(t, HashText("Hello"), HashText("Hello"))
	assert.NotEqual(t, HashText("Hello"), HashText("hello"))
	assert.Equal(t, "messages:abc:pt", CacheKey("abc", "pt"))
}
