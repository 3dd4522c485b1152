package alltools

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// LanguageNames maps language codes to their native display names for language pickers.
var LanguageNames = map[Language]string{
	"en": "English",
	"pt": "Português",
	"es": "Español",
	"fr": "Français",
	"de": "Deutsch",
	"it": "Italiano",
	"nl": "Nederlands",
	"pl": "Polski",
	"ja": "日本語",
	"zh": "中文",
	"ko": "한국어",
	"ru": "Русский",
	"tr": "Türkçe",
	"ar": "العربية",
	"he": "עברית",
	"fa": "فارسی",
	"ur": "اردو",
}

// RTLLanguages contains language codes that use right-to-left text direction.
var RTLLanguages = map[string]bool{
	"ar": true, // Arabic
	"he": true, // Hebrew
	"fa": true, // Persian/Farsi
	"ur": true, // Urdu
	"ps": true, // Pashto
	"sd": true, // Sindhi
	"ug": true, // Uyghur
}

// Negotiate picks the active language. In order: the route segment when it is an
// exact member of supported; the primary subtag of preferenceTag when it is an exact
// member of supported; def. It never fails.
func Negotiate(routeSegment, preferenceTag string, supported []Language, def Language) Language {
	if routeSegment != "" && contains(supported, Language(routeSegment)) {
		return Language(routeSegment)
	}
	if primary := PrimaryTag(preferenceTag); primary != "" && contains(supported, Language(primary)) {
		return Language(primary)
	}
	return def
}

// Negotiate binds Negotiate to the catalog's languages and default.
func (c *Catalog) Negotiate(routeSegment, preferenceTag string) Language {
	return Negotiate(routeSegment, preferenceTag, c.languages, c.defaultLang)
}

// PrimaryTag returns the part of a language tag before the first region or script
// separator (e.g., "pt-BR" → "pt"). Case is preserved.
func PrimaryTag(tag string) string {
	tag = strings.TrimSpace(tag)
	if idx := strings.IndexAny(tag, "-_"); idx >= 0 {
		return tag[:idx]
	}
	return tag
}

// PreferredTag picks the browser preference from an Accept-Language header: the
// highest-weighted tag whose primary subtag is supported, else the highest-weighted
// tag. Malformed entries are skipped; a header with no usable entry yields "".
func PreferredTag(acceptLanguage string, supported []Language) string {
	tags, weights, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil {
		tags, weights = parseAcceptEntries(acceptLanguage)
	}
	if len(tags) == 0 {
		return ""
	}

	first := ""
	for i, tag := range tags {
		if weights[i] <= 0 || tag == language.Und {
			continue
		}
		value := tag.String()
		if first == "" {
			first = value
		}
		base, _ := tag.Base()
		if contains(supported, Language(base.String())) {
			return value
		}
	}
	return first
}

// parseAcceptEntries parses each entry of an Accept-Language header on its own,
// dropping the ones that fail, and orders the rest by descending weight.
func parseAcceptEntries(acceptLanguage string) ([]language.Tag, []float32) {
	type entry struct {
		tag    language.Tag
		weight float32
	}

	var entries []entry
	for _, part := range strings.Split(acceptLanguage, ",") {
		tags, weights, err := language.ParseAcceptLanguage(part)
		if err != nil {
			continue
		}
		for i := range tags {
			entries = append(entries, entry{tags[i], weights[i]})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].weight > entries[j].weight })

	tags := make([]language.Tag, len(entries))
	weights := make([]float32, len(entries))
	for i, e := range entries {
		tags[i] = e.tag
		weights[i] = e.weight
	}
	return tags, weights
}

// LanguageName returns the native display name for a language code.
// Falls back to the code itself if not found.
func LanguageName(lang Language) string {
	if name, ok := LanguageNames[lang]; ok {
		return name
	}
	if name, ok := LanguageNames[Language(PrimaryTag(string(lang)))]; ok {
		return name
	}
	return string(lang)
}

// Direction returns "rtl" for right-to-left languages, "ltr" otherwise.
func Direction(lang Language) string {
	if RTLLanguages[strings.ToLower(PrimaryTag(string(lang)))] {
		return "rtl"
	}
	return "ltr"
}

// IsRTL returns true if the language uses right-to-left text direction.
func IsRTL(lang Language) bool {
	return Direction(lang) == "rtl"
}

// ToHTMLLang converts a locale code to HTML lang attribute format (e.g., "pt_BR" → "pt-BR").
func ToHTMLLang(lang Language) string {
	return strings.ReplaceAll(string(lang), "_", "-")
}

func contains(set []Language, lang Language) bool {
	for _, candidate := range set {
		if candidate == lang {
			return true
		}
	}
	return false
}
