package alltools

import "strings"

// Navigator evaluates routes against a Catalog. It holds no per-navigation state:
// each call returns a new RouteState, so one Navigator serves any number of
// concurrent requests.
type Navigator struct {
	catalog *Catalog
}

// NewNavigator creates a Navigator over catalog.
func NewNavigator(catalog *Catalog) *Navigator {
	return &Navigator{catalog: catalog}
}

// Catalog returns the catalog the navigator routes over.
func (n *Navigator) Catalog() *Catalog {
	return n.catalog
}

// ParsePath splits a URL path into a Route. Empty segments are ignored, so
// "//en/" parses like "/en". Segments past the second are not part of any
// known route and are kept in Segment to be rejected by the resolver.
func ParsePath(path string) Route {
	var parts []string
	for _, part := range strings.Split(path, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}

	switch len(parts) {
	case 0:
		return Route{}
	case 1:
		return Route{Language: parts[0]}
	default:
		return Route{Language: parts[0], Segment: strings.Join(parts[1:], "/")}
	}
}

// EnterPath parses path and evaluates it with Enter.
func (n *Navigator) EnterPath(path, preferenceTag string) RouteState {
	return n.Enter(ParsePath(path), preferenceTag)
}

// Enter evaluates a route. preferenceTag is the browser's language preference
// and only matters when the route carries no usable language.
func (n *Navigator) Enter(route Route, preferenceTag string) RouteState {
	c := n.catalog

	if route.Language == "" || !c.HasLanguage(Language(route.Language)) {
		lang := c.Negotiate(route.Language, preferenceTag)
		return redirect(lang, route.Segment, "/"+string(lang))
	}

	lang := Language(route.Language)
	if route.Segment == "" {
		return RouteState{State: StateResolved, Language: lang, Kind: PageHome}
	}

	if page, ok := c.LegalPageOf(route.Segment); ok {
		return RouteState{State: StateResolved, Language: lang, Slug: route.Segment, Kind: PageLegal, Legal: page}
	}

	if tool, ok := c.Resolve(lang, route.Segment); ok {
		return RouteState{State: StateResolved, Language: lang, Slug: route.Segment, Kind: PageTool, Tool: tool}
	}

	return redirect(lang, route.Segment, "/"+string(lang))
}

// SwitchLanguage computes the equivalent page in another language. The page
// identity is preserved; only its localized path changes.
func (n *Navigator) SwitchLanguage(current RouteState, lang Language) (RouteState, error) {
	c := n.catalog
	if !c.HasLanguage(lang) {
		return current, &UnknownLanguageError{Language: lang}
	}

	kind := current.Kind
	if current.State != StateResolved {
		kind = PageHome
	}

	path, err := c.PagePath(kind, current.Tool, current.Legal, lang)
	if err != nil {
		return current, err
	}

	next := redirect(lang, "", path)
	next.Kind = kind
	next.Tool = current.Tool
	next.Legal = current.Legal
	return next, nil
}

// Canonical returns the canonical path of a resolved state.
func (n *Navigator) Canonical(state RouteState) (string, error) {
	return n.catalog.PagePath(state.Kind, state.Tool, state.Legal, state.Language)
}

func redirect(lang Language, slug, path string) RouteState {
	return RouteState{
		State:        StateRedirecting,
		Language:     lang,
		Slug:         slug,
		RedirectPath: path,
		Replace:      true,
	}
}
