package server

import (
	"html/template"
	"net/http"

	"github.com/ZaguanLabs/alltools"
	"github.com/ZaguanLabs/alltools/seo"
)

// ToolPage is what a tool handler receives once its tool has been resolved.
type ToolPage struct {
	Tool     alltools.ToolID
	Language alltools.Language
	Path     string // Canonical path of the page
	Meta     seo.Metadata
	Texts    seo.Localizer

	state alltools.RouteState
	srv   *Server
}

// Text returns the localized text of key in the page language.
func (p ToolPage) Text(key string) string {
	return p.Texts.Text(p.Language, key)
}

// Render writes body inside the localized site shell.
func (p ToolPage) Render(w http.ResponseWriter, body template.HTML) error {
	return p.srv.renderer.page(w, p.state, body)
}

// Fail logs err and answers 500.
func (p ToolPage) Fail(w http.ResponseWriter, r *http.Request, err error) {
	p.srv.fail(w, r, err)
}

// ToolHandler renders a resolved tool. Handlers own their input handling,
// computation and output; a failing or panicking handler only affects its own
// request.
type ToolHandler interface {
	ServeTool(w http.ResponseWriter, r *http.Request, page ToolPage)
}

// ToolHandlerFunc adapts a function to ToolHandler.
type ToolHandlerFunc func(w http.ResponseWriter, r *http.Request, page ToolPage)

// ServeTool calls f(w, r, page).
func (f ToolHandlerFunc) ServeTool(w http.ResponseWriter, r *http.Request, page ToolPage) {
	f(w, r, page)
}

// appHandler renders the mount point of a tool implemented in the browser.
type appHandler struct{}

func (appHandler) ServeTool(w http.ResponseWriter, r *http.Request, page ToolPage) {
	serveToolBody(w, r, page, false)
}

// placeholderHandler renders the "in development" notice.
type placeholderHandler struct{}

func (placeholderHandler) ServeTool(w http.ResponseWriter, r *http.Request, page ToolPage) {
	serveToolBody(w, r, page, true)
}

func serveToolBody(w http.ResponseWriter, r *http.Request, page ToolPage, placeholder bool) {
	body, err := page.srv.renderer.toolBody(page.Language, page.Tool, placeholder)
	if err == nil {
		err = page.Render(w, body)
	}
	if err != nil {
		page.Fail(w, r, err)
	}
}

// builtinHandler returns the handler of a tool with no registered handler.
func builtinHandler(id alltools.ToolID) ToolHandler {
	switch id {
	case alltools.ToolPDFToWord, alltools.ToolWordToPDF, alltools.ToolCompressPDF:
		return placeholderHandler{}
	case alltools.ToolMergePDF, alltools.ToolSplitPDF,
		alltools.ToolCompressImage, alltools.ToolResizeImage, alltools.ToolConvertImage,
		alltools.ToolRemoveBackground, alltools.ToolAdjustImage,
		alltools.ToolCompoundInterest, alltools.ToolLoanSimulator, alltools.ToolPercentageCalculator,
		alltools.ToolBioGenerator, alltools.ToolHashtagGenerator, alltools.ToolCharacterCounter,
		alltools.ToolQRGenerator, alltools.ToolPasswordGenerator, alltools.ToolAgeCalculator,
		alltools.ToolUnitConverter:
		return appHandler{}
	default:
		return placeholderHandler{}
	}
}
