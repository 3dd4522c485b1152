package messages

import "github.com/ZaguanLabs/alltools"

// Keys used by the page shell.
const (
	HomeTitleKey        = "home.title"
	HomeSubtitleKey     = "home.subtitle"
	LanguageKey         = "common.language"
	UploadKey           = "common.upload"
	ClearKey            = "common.clear"
	InDevelopmentKey    = "common.inDevelopment"
	FooterRightsKey     = "footer.rights"
	categoryKeyPrefix   = "home.categories."
	footerLinkKeyPrefix = "footer."
)

// ToolTitleKey is the key of a tool's display name.
func ToolTitleKey(id alltools.ToolID) string {
	return "tools." + string(id) + ".title"
}

// ToolDescriptionKey is the key of a tool's one-line description.
func ToolDescriptionKey(id alltools.ToolID) string {
	return "tools." + string(id) + ".desc"
}

// LegalTitleKey is the key of an informational page's heading.
func LegalTitleKey(page alltools.LegalPage) string {
	return "legal." + string(page) + ".title"
}

// LegalTextKey is the key of an informational page's body.
func LegalTextKey(page alltools.LegalPage) string {
	return "legal." + string(page) + ".text"
}

// FooterLinkKey is the key of an informational page's footer link label.
func FooterLinkKey(page alltools.LegalPage) string {
	return footerLinkKeyPrefix + string(page)
}

// CategoryTitleKey is the key of a category heading.
func CategoryTitleKey(id string) string {
	return categoryKeyPrefix + id
}

// RequiredKeys lists every key the shell renders for a catalog, in a stable order.
func RequiredKeys(catalog *alltools.Catalog) []string {
	keys := []string{
		HomeTitleKey, HomeSubtitleKey,
		LanguageKey, UploadKey, ClearKey, InDevelopmentKey,
		FooterRightsKey,
	}
	for _, cat := range catalog.Categories() {
		keys = append(keys, CategoryTitleKey(cat.ID))
	}
	for _, id := range catalog.Tools() {
		keys = append(keys, ToolTitleKey(id), ToolDescriptionKey(id))
	}
	for _, page := range catalog.LegalPages() {
		keys = append(keys, LegalTitleKey(page), LegalTextKey(page), FooterLinkKey(page))
	}
	return keys
}
