package messages

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/ZaguanLabs/alltools"
)

// Provider produces localized text for a batch of source strings.
type Provider interface {
	Translate(ctx context.Context, req TranslateRequest) ([]string, error)
}

// TranslateRequest contains the parameters for a translation request.
type TranslateRequest struct {
	Texts      []string          // Source texts
	Keys       []string          // Message key of each text, used as a disambiguation hint
	TargetLang alltools.Language // Language to produce
	SourceLang alltools.Language // Language of Texts
	Context    string            // Global description of the site
	Glossary   map[string]string // Preferred renderings for specific phrases
}

// HashText returns the SHA-256 hex digest of a source text.
func HashText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// CacheKey returns the cache key of a filled text.
func CacheKey(sourceHash string, target alltools.Language) string {
	return alltools.CacheKey("messages", sourceHash, string(target))
}
