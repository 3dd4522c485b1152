package alltools

// ToolID identifies a tool. The set is closed and defined by the Catalog.
type ToolID string

// Language is a supported language code used as the first URL path segment.
type Language string

// LegalPage names one of the fixed informational pages.
type LegalPage string

const (
	LegalPrivacy LegalPage = "privacy"
	LegalTerms   LegalPage = "terms"
	LegalCookies LegalPage = "cookies"
	LegalContact LegalPage = "contact"
)

// DefaultLegalPages lists the informational pages in declaration order.
var DefaultLegalPages = []LegalPage{LegalPrivacy, LegalTerms, LegalCookies, LegalContact}

// Category groups tools for navigation and discovery.
type Category struct {
	ID    string   // Category identifier (e.g., "pdf")
	Icon  string   // Icon reference used by the UI
	Tools []ToolID // Tools in declaration order
}

func (c Category) clone() Category {
	out := c
	out.Tools = append([]ToolID(nil), c.Tools...)
	return out
}

// PageKind classifies the page a route points at.
type PageKind string

const (
	PageNone  PageKind = ""
	PageHome  PageKind = "home"
	PageLegal PageKind = "legal"
	PageTool  PageKind = "tool"
)

// NavState is the state of the navigation machine after evaluating a route.
type NavState string

const (
	// StateResolving is the transient state while a route is being evaluated.
	StateResolving NavState = "resolving"
	// StateResolved means rendering can proceed.
	StateResolved NavState = "resolved"
	// StateRedirecting means a new navigation to RedirectPath must be issued.
	StateRedirecting NavState = "redirecting"
)

// Route is a parsed request path: an optional language segment followed by an
// optional page segment.
type Route struct {
	Language string // Raw language segment ("" when absent)
	Segment  string // Raw page segment: legal page name or tool slug
}

// RouteState is the outcome of one navigation. It is a value: every call to the
// Navigator returns a fresh state and nothing is shared between navigations.
type RouteState struct {
	State        NavState
	Language     Language
	Slug         string // Raw page segment as received
	Kind         PageKind
	Tool         ToolID    // Set when Kind == PageTool
	Legal        LegalPage // Set when Kind == PageLegal
	RedirectPath string    // Set when State == StateRedirecting
	Replace      bool      // Redirects replace the history entry instead of pushing one
}

// Resolved reports whether rendering can proceed.
func (s RouteState) Resolved() bool {
	return s.State == StateResolved
}

// Redirecting reports whether a new navigation must be issued.
func (s RouteState) Redirecting() bool {
	return s.State == StateRedirecting
}
