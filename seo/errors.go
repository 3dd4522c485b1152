package seo

import "fmt"

// Error indicates a failure to read or rewrite an HTML page.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("seo error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("seo error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
