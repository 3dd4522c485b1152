package alltools

import "fmt"

// UnknownToolError indicates a tool identifier that the Catalog does not register.
// It signals a programming error rather than bad user input.
type UnknownToolError struct {
	Tool ToolID
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool %q", string(e.Tool))
}

// UnknownLanguageError indicates a language outside the supported set.
type UnknownLanguageError struct {
	Language Language
}

func (e *UnknownLanguageError) Error() string {
	return fmt.Sprintf("unknown language %q", string(e.Language))
}

// CatalogError reports a violated Catalog invariant found while building a Catalog.
type CatalogError struct {
	Message string
	Tool    ToolID   // Offending tool, if any
	Lang    Language // Offending language, if any
}

func (e *CatalogError) Error() string {
	switch {
	case e.Tool != "" && e.Lang != "":
		return fmt.Sprintf("catalog error: %s (tool %q, language %q)", e.Message, e.Tool, e.Lang)
	case e.Tool != "":
		return fmt.Sprintf("catalog error: %s (tool %q)", e.Message, e.Tool)
	case e.Lang != "":
		return fmt.Sprintf("catalog error: %s (language %q)", e.Message, e.Lang)
	default:
		return fmt.Sprintf("catalog error: %s", e.Message)
	}
}

// LoadError indicates a catalog definition file could not be read or decoded.
type LoadError struct {
	Path  string
	Cause error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("load %s", e.Path)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
