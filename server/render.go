package server

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/ZaguanLabs/alltools"
	"github.com/ZaguanLabs/alltools/messages"
	"github.com/ZaguanLabs/alltools/seo"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type languageLink struct {
	Code    alltools.Language
	Name    string
	Current bool
}

type pageLink struct {
	Href  string
	Title string
}

type shellData struct {
	HTMLLang      string
	Dir           string
	Title         string
	Path          string
	HomePath      string
	LanguageLabel string
	Languages     []languageLink
	Legal         []pageLink
	Rights        string
	Body          template.HTML
}

type toolLink struct {
	Href        string
	Title       string
	Description string
}

type categoryView struct {
	ID    string
	Title string
	Tools []toolLink
}

type homeData struct {
	Title      string
	Subtitle   string
	Categories []categoryView
}

type legalData struct {
	ID    alltools.LegalPage
	Title string
	Text  string
}

type toolData struct {
	ID            alltools.ToolID
	Lang          alltools.Language
	Title         string
	Description   string
	Upload        string
	Clear         string
	InDevelopment string // Set for tools without an implementation
}

// renderer wraps page bodies in the localized shell and writes the search
// metadata into the result.
type renderer struct {
	catalog *alltools.Catalog
	texts   seo.Localizer
	baseURL string
}

func (rd *renderer) fragment(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	// #nosec G203 - output of html/template is already escaped
	return template.HTML(buf.String()), nil
}

// page renders a full document for a resolved state.
func (rd *renderer) page(w http.ResponseWriter, state alltools.RouteState, body template.HTML) error {
	meta, err := seo.Build(rd.catalog, rd.baseURL, state, rd.texts)
	if err != nil {
		return err
	}

	lang := state.Language
	path, err := rd.catalog.PagePath(state.Kind, state.Tool, state.Legal, lang)
	if err != nil {
		return err
	}
	home, err := rd.catalog.HomePath(lang)
	if err != nil {
		return err
	}

	data := shellData{
		HTMLLang:      alltools.ToHTMLLang(lang),
		Dir:           meta.Direction,
		Title:         meta.Title,
		Path:          path,
		HomePath:      home,
		LanguageLabel: rd.texts.Text(lang, messages.LanguageKey),
		Rights:        rd.texts.Text(lang, messages.FooterRightsKey),
		Body:          body,
	}
	for _, l := range rd.catalog.Languages() {
		data.Languages = append(data.Languages, languageLink{Code: l, Name: alltools.LanguageName(l), Current: l == lang})
	}
	for _, legal := range rd.catalog.LegalPages() {
		href, err := rd.catalog.LegalPath(legal, lang)
		if err != nil {
			return err
		}
		data.Legal = append(data.Legal, pageLink{Href: href, Title: rd.texts.Text(lang, messages.FooterLinkKey(legal))})
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "shell.html", data); err != nil {
		return err
	}
	out, err := seo.Decorate(buf.String(), meta)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Language", alltools.ToHTMLLang(lang))
	w.WriteHeader(http.StatusOK)
	_, err = w.Write([]byte(out))
	return err
}

func (rd *renderer) homeBody(lang alltools.Language) (template.HTML, error) {
	data := homeData{
		Title:    rd.texts.Text(lang, messages.HomeTitleKey),
		Subtitle: rd.texts.Text(lang, messages.HomeSubtitleKey),
	}
	for _, cat := range rd.catalog.Categories() {
		view := categoryView{ID: cat.ID, Title: rd.texts.Text(lang, messages.CategoryTitleKey(cat.ID))}
		for _, id := range cat.Tools {
			href, err := rd.catalog.CanonicalPath(id, lang)
			if err != nil {
				return "", err
			}
			view.Tools = append(view.Tools, toolLink{
				Href:        href,
				Title:       rd.texts.Text(lang, messages.ToolTitleKey(id)),
				Description: rd.texts.Text(lang, messages.ToolDescriptionKey(id)),
			})
		}
		data.Categories = append(data.Categories, view)
	}
	return rd.fragment("home.html", data)
}

func (rd *renderer) legalBody(lang alltools.Language, page alltools.LegalPage) (template.HTML, error) {
	return rd.fragment("legal.html", legalData{
		ID:    page,
		Title: rd.texts.Text(lang, messages.LegalTitleKey(page)),
		Text:  rd.texts.Text(lang, messages.LegalTextKey(page)),
	})
}

func (rd *renderer) toolBody(lang alltools.Language, id alltools.ToolID, placeholder bool) (template.HTML, error) {
	data := toolData{
		ID:          id,
		Lang:        lang,
		Title:       rd.texts.Text(lang, messages.ToolTitleKey(id)),
		Description: rd.texts.Text(lang, messages.ToolDescriptionKey(id)),
		Upload:      rd.texts.Text(lang, messages.UploadKey),
		Clear:       rd.texts.Text(lang, messages.ClearKey),
	}
	if placeholder {
		data.InDevelopment = rd.texts.Text(lang, messages.InDevelopmentKey)
	}
	return rd.fragment("tool.html", data)
}
