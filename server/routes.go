package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ZaguanLabs/alltools"
	"github.com/ZaguanLabs/alltools/internal/telemetry"
	"github.com/ZaguanLabs/alltools/seo"
)

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID, s.logRequests, s.recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/sitemap.xml", s.handleSitemap)
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	r.Get("/switch/{lang}", s.handleSwitch)
	r.Get("/", s.handlePage)
	r.Get("/{lang}", s.handlePage)
	r.Get("/{lang}/*", s.handlePage)

	return r
}

// preference returns the browser language preference of r.
func (s *Server) preference(r *http.Request) string {
	return alltools.PreferredTag(r.Header.Get("Accept-Language"), s.catalog.Languages())
}

// handlePage evaluates the request path and either redirects or renders.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	route := alltools.ParsePath(r.URL.Path)
	state := s.navigator.Enter(route, s.preference(r))
	s.metrics.ObserveNavigation(state)
	recordNavigation(r.Context(), state)

	if state.Redirecting() {
		reason := telemetry.ReasonNotFound
		if route.Language == "" || !s.catalog.HasLanguage(alltools.Language(route.Language)) {
			reason = telemetry.ReasonNegotiated
			w.Header().Add("Vary", "Accept-Language")
		}
		s.redirect(w, r, state, reason)
		return
	}

	canonical, err := s.navigator.Canonical(state)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if r.URL.Path != canonical {
		s.redirect(w, r, alltools.RouteState{
			State:        alltools.StateRedirecting,
			Language:     state.Language,
			Slug:         state.Slug,
			Kind:         state.Kind,
			Tool:         state.Tool,
			Legal:        state.Legal,
			RedirectPath: canonical,
			Replace:      true,
		}, telemetry.ReasonCanonical)
		return
	}

	switch state.Kind {
	case alltools.PageTool:
		s.serveTool(w, r, state)
	case alltools.PageLegal:
		body, err := s.renderer.legalBody(state.Language, state.Legal)
		if err == nil {
			err = s.renderer.page(w, state, body)
		}
		if err != nil {
			s.fail(w, r, err)
		}
	default:
		body, err := s.renderer.homeBody(state.Language)
		if err == nil {
			err = s.renderer.page(w, state, body)
		}
		if err != nil {
			s.fail(w, r, err)
		}
	}
}

func (s *Server) serveTool(w http.ResponseWriter, r *http.Request, state alltools.RouteState) {
	meta, err := seo.Build(s.catalog, s.baseURL, state, s.renderer.texts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	path, err := s.navigator.Canonical(state)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.toolHandler(state.Tool).ServeTool(w, r, ToolPage{
		Tool:     state.Tool,
		Language: state.Language,
		Path:     path,
		Meta:     meta,
		Texts:    s.renderer.texts,
		state:    state,
		srv:      s,
	})
}

// handleSwitch moves the page given by the "from" query parameter to another
// language. An unsupported target language keeps the current page.
func (s *Server) handleSwitch(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	current := s.navigator.EnterPath(from, s.preference(r))
	target := alltools.Language(chi.URLParam(r, "lang"))

	next, err := s.navigator.SwitchLanguage(current, target)
	if err != nil {
		var unknownLang *alltools.UnknownLanguageError
		if !errors.As(err, &unknownLang) {
			s.fail(w, r, err)
			return
		}
		next = current
		if current.Resolved() {
			path, err := s.navigator.Canonical(current)
			if err != nil {
				s.fail(w, r, err)
				return
			}
			next = alltools.RouteState{State: alltools.StateRedirecting, Language: current.Language, RedirectPath: path, Replace: true}
		}
	}

	s.metrics.ObserveNavigation(next)
	recordNavigation(r.Context(), next)
	s.redirect(w, r, next, telemetry.ReasonSwitch)
}

func (s *Server) redirect(w http.ResponseWriter, r *http.Request, state alltools.RouteState, reason string) {
	s.metrics.ObserveRedirect(reason)
	w.Header().Set("Cache-Control", "no-store")
	http.Redirect(w, r, state.RedirectPath, http.StatusFound)
}

// handleSitemap serves the sitemap, cached per catalog fingerprint and base URL.
func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	key := alltools.CacheKey("sitemap", s.catalog.Fingerprint(), s.baseURL)

	var doc []byte
	if s.cache != nil {
		if cached, ok := s.cache.Get(r.Context(), key); ok {
			doc = []byte(cached)
		}
	}
	s.metrics.ObserveSitemapCache(doc != nil)

	if doc == nil {
		set, err := s.sitemap.Generate()
		if err != nil {
			s.fail(w, r, err)
			return
		}
		doc, err = set.Bytes()
		if err != nil {
			s.fail(w, r, err)
			return
		}
		if s.cache != nil {
			if err := s.cache.Set(r.Context(), key, string(doc)); err != nil {
				s.logger.Warn("caching sitemap failed", zap.Error(err))
			}
		}
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write(doc)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":      "ok",
		"version":     alltools.FullVersion(),
		"fingerprint": s.catalog.Fingerprint(),
		"languages":   s.catalog.Languages(),
		"tools":       len(s.catalog.Tools()),
	})
}
