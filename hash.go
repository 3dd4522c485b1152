package alltools

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// fingerprintCatalog hashes the catalog in declaration order. Two catalogs with the
// same languages, tools, slugs, legal pages and categories share a fingerprint.
func fingerprintCatalog(c *Catalog) string {
	var b strings.Builder
	b.WriteString("default=")
	b.WriteString(string(c.defaultLang))
	b.WriteString("\nlanguages=")
	for _, lang := range c.languages {
		b.WriteString(string(lang))
		b.WriteByte(',')
	}
	b.WriteString("\nlegal=")
	for _, page := range c.legalPages {
		b.WriteString(string(page))
		b.WriteByte(',')
	}
	for _, id := range c.tools {
		b.WriteString("\ntool=")
		b.WriteString(string(id))
		for _, lang := range c.languages {
			b.WriteByte(' ')
			b.WriteString(string(lang))
			b.WriteByte(':')
			b.WriteString(c.slugs[id][lang])
		}
	}
	for _, cat := range c.categories {
		b.WriteString("\ncategory=")
		b.WriteString(cat.ID)
		b.WriteByte('/')
		b.WriteString(cat.Icon)
		for _, id := range cat.Tools {
			b.WriteByte(' ')
			b.WriteString(string(id))
		}
	}

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

// CacheKey builds a cache key for a generated artifact: kind names the artifact,
// digest identifies its input (a catalog fingerprint or a text hash) and variant
// distinguishes renderings of the same input (a base URL, a language).
func CacheKey(kind, digest, variant string) string {
	return kind + ":" + digest + ":" + variant
}
