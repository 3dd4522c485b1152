package messages

import (
	"context"

	"go.uber.org/zap"

	"github.com/ZaguanLabs/alltools"
	"github.com/ZaguanLabs/alltools/cache"
)

// DefaultParallelThreshold is the batch size from which cache lookups run concurrently.
const DefaultParallelThreshold = 5

// Filler produces the texts a language is missing by translating the source
// language's texts, reusing cached results.
type Filler struct {
	provider          Provider
	cache             cache.Cache
	source            alltools.Language
	siteDescription   string
	glossary          map[string]string
	parallelThreshold int
	logger            *zap.Logger
}

// FillerOption is a functional option for configuring the Filler.
type FillerOption func(*Filler)

// WithSourceLang sets the language texts are translated from. Defaults to the
// store's default language.
func WithSourceLang(lang alltools.Language) FillerOption {
	return func(f *Filler) {
		f.source = lang
	}
}

// WithCache sets the cache of filled texts.
func WithCache(c cache.Cache) FillerOption {
	return func(f *Filler) {
		f.cache = c
	}
}

// WithSiteDescription sets the description of the site sent to the provider.
func WithSiteDescription(description string) FillerOption {
	return func(f *Filler) {
		f.siteDescription = description
	}
}

// WithGlossary sets preferred renderings for specific phrases.
func WithGlossary(glossary map[string]string) FillerOption {
	return func(f *Filler) {
		f.glossary = glossary
	}
}

// WithParallelThreshold sets the minimum batch size for concurrent cache lookups.
func WithParallelThreshold(n int) FillerOption {
	return func(f *Filler) {
		f.parallelThreshold = n
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) FillerOption {
	return func(f *Filler) {
		f.logger = logger
	}
}

// NewFiller creates a Filler. A nil provider limits filling to cache hits.
func NewFiller(provider Provider, opts ...FillerOption) *Filler {
	f := &Filler{
		provider:          provider,
		siteDescription:   "AllTools, a website of free online tools (PDF, image, finance, social media, utilities)",
		parallelThreshold: DefaultParallelThreshold,
		logger:            zap.NewNop(),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// FillResult reports what one Fill call did.
type FillResult struct {
	Language    alltools.Language
	Filled      int               // Texts produced by the provider
	Cached      int               // Keys filled from the cache
	Unavailable int               // Missing keys with no source text either
	Texts       map[string]string // key → new text, also added to the store
}

// Fill adds to store every required key of catalog that target is missing.
// The store is only modified when Fill succeeds.
func (f *Filler) Fill(ctx context.Context, store *Store, catalog *alltools.Catalog, target alltools.Language) (*FillResult, error) {
	source := f.source
	if source == "" {
		source = store.DefaultLanguage()
	}

	result := &FillResult{Language: target, Texts: make(map[string]string)}
	if target == source {
		return result, nil
	}

	var items []pending
	for _, key := range RequiredKeys(catalog) {
		if _, ok := store.Lookup(target, key); ok {
			continue
		}
		text, ok := store.Lookup(source, key)
		if !ok || text == "" {
			result.Unavailable++
			continue
		}
		items = append(items, pending{Key: key, Source: text, Hash: HashText(text)})
	}
	if len(items) == 0 {
		return result, nil
	}

	lookup := lookupSequential
	if len(items) >= f.parallelThreshold {
		lookup = lookupCached
	}
	byHash, misses := lookup(ctx, f.cache, items, target)
	fromCache := make(map[string]bool, len(byHash))
	for hash := range byHash {
		fromCache[hash] = true
	}

	if len(misses) > 0 && f.provider != nil {
		translated, err := f.translate(ctx, misses, source, target)
		if err != nil {
			return nil, err
		}
		for i, item := range misses {
			byHash[item.Hash] = translated[i]
			if f.cache != nil {
				if err := f.cache.Set(ctx, CacheKey(item.Hash, target), translated[i]); err != nil {
					f.logger.Warn("caching filled text failed", zap.String("key", item.Key), zap.Error(err))
				}
			}
		}
		result.Filled = len(misses)
	}

	for _, item := range items {
		if text, ok := byHash[item.Hash]; ok {
			result.Texts[item.Key] = text
			store.Add(target, item.Key, text)
			if fromCache[item.Hash] {
				result.Cached++
			}
		}
	}

	f.logger.Info("filled missing texts",
		zap.String("language", string(target)),
		zap.Int("filled", result.Filled),
		zap.Int("cached", result.Cached),
		zap.Int("unavailable", result.Unavailable),
	)

	return result, nil
}

func (f *Filler) translate(ctx context.Context, misses []pending, source, target alltools.Language) ([]string, error) {
	texts := make([]string, len(misses))
	keys := make([]string, len(misses))
	for i, item := range misses {
		texts[i] = item.Source
		keys[i] = item.Key
	}

	out, err := f.provider.Translate(ctx, TranslateRequest{
		Texts:      texts,
		Keys:       keys,
		TargetLang: target,
		SourceLang: source,
		Context:    f.siteDescription,
		Glossary:   f.glossary,
	})
	if err != nil {
		return nil, err
	}
	if len(out) != len(texts) {
		return nil, &CountMismatchError{Expected: len(texts), Got: len(out)}
	}
	return out, nil
}

// FillAll runs Fill for every catalog language other than the source.
func (f *Filler) FillAll(ctx context.Context, store *Store, catalog *alltools.Catalog) ([]*FillResult, error) {
	var results []*FillResult
	for _, lang := range catalog.Languages() {
		res, err := f.Fill(ctx, store, catalog, lang)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}
