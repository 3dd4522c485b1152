// Package alltools implements the localized routing core of the AllTools website.
//
// A Catalog maps opaque tool identifiers to per-language URL slugs. On top of it
// the package resolves incoming (language, slug) pairs back to tools, negotiates
// the active language and drives navigation decisions (resolve or redirect).
// Sitemap generation lives in the sitemap sub-package and alternate-language page
// metadata in the seo sub-package.
//
// Basic usage:
//
//	import "github.com/ZaguanLabs/alltools"
//
//	func main() {
//	    catalog := alltools.Default()
//	    nav := alltools.NewNavigator(catalog)
//
//	    state := nav.EnterPath("/en/image-compressor", "pt-BR")
//	    fmt.Println(state.Tool) // compress-image
//
//	    next, _ := nav.SwitchLanguage(state, "pt")
//	    fmt.Println(next.RedirectPath) // /pt/compressor-de-imagem
//	}
package alltools
