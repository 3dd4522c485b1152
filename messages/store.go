// Package messages holds the localized text of the site: a key+language lookup
// with fallback, file loading, and AI-assisted filling of missing entries.
package messages

import (
	"sort"
	"sync"

	"github.com/ZaguanLabs/alltools"
)

// Bundle maps language → key → text. It is the on-disk shape of message files.
type Bundle map[alltools.Language]map[string]string

// Store is a concurrency-safe localized text table.
type Store struct {
	mu    sync.RWMutex
	def   alltools.Language
	texts map[alltools.Language]map[string]string
}

// NewStore creates an empty store whose fallback language is def.
func NewStore(def alltools.Language) *Store {
	return &Store{
		def:   def,
		texts: make(map[alltools.Language]map[string]string),
	}
}

// DefaultLanguage returns the fallback language.
func (s *Store) DefaultLanguage() alltools.Language {
	return s.def
}

// Add sets one text.
func (s *Store) Add(lang alltools.Language, key, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addLocked(lang, key, text)
}

func (s *Store) addLocked(lang alltools.Language, key, text string) {
	table, ok := s.texts[lang]
	if !ok {
		table = make(map[string]string)
		s.texts[lang] = table
	}
	table[key] = text
}

// Merge adds every text of b, overwriting existing entries.
func (s *Store) Merge(b Bundle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for lang, table := range b {
		for key, text := range table {
			s.addLocked(lang, key, text)
		}
	}
}

// Lookup returns the text of key in exactly lang, without fallback.
func (s *Store) Lookup(lang alltools.Language, key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	text, ok := s.texts[lang][key]
	return text, ok
}

// Text returns the text of key in lang, falling back to the default language and
// then to the key itself. It never fails.
func (s *Store) Text(lang alltools.Language, key string) string {
	if text, ok := s.Lookup(lang, key); ok {
		return text
	}
	if text, ok := s.Lookup(s.def, key); ok {
		return text
	}
	return key
}

// Languages returns the languages with at least one text, sorted.
func (s *Store) Languages() []alltools.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()

	langs := make([]alltools.Language, 0, len(s.texts))
	for lang := range s.texts {
		langs = append(langs, lang)
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i] < langs[j] })
	return langs
}

// Missing returns, per catalog language, the required keys that have no text in
// that exact language. Languages with nothing missing are omitted.
func (s *Store) Missing(catalog *alltools.Catalog) map[alltools.Language][]string {
	keys := RequiredKeys(catalog)

	s.mu.RLock()
	defer s.mu.RUnlock()

	missing := make(map[alltools.Language][]string)
	for _, lang := range catalog.Languages() {
		for _, key := range keys {
			if _, ok := s.texts[lang][key]; !ok {
				missing[lang] = append(missing[lang], key)
			}
		}
	}
	return missing
}

// Bundle returns a copy of the table.
func (s *Store) Bundle() Bundle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(Bundle, len(s.texts))
	for lang, table := range s.texts {
		copied := make(map[string]string, len(table))
		for key, text := range table {
			copied[key] = text
		}
		out[lang] = copied
	}
	return out
}
