// Package server exposes the localized route surface over HTTP: language
// negotiation at the root, tool and informational pages, language switching,
// the sitemap, health and metrics endpoints.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ZaguanLabs/alltools"
	"github.com/ZaguanLabs/alltools/cache"
	"github.com/ZaguanLabs/alltools/internal/telemetry"
	"github.com/ZaguanLabs/alltools/seo"
	"github.com/ZaguanLabs/alltools/sitemap"
)

// Server serves the site for one catalog.
type Server struct {
	catalog   *alltools.Catalog
	navigator *alltools.Navigator
	renderer  *renderer
	sitemap   *sitemap.Generator
	baseURL   string
	cache     cache.Cache
	handlers  map[alltools.ToolID]ToolHandler
	logger    *zap.Logger
	metrics   *telemetry.Metrics
	gatherer  prometheus.Gatherer
	router    chi.Router
}

// Option is a functional option for configuring the Server.
type Option func(*Server)

// WithBaseURL sets the public origin used in the sitemap and canonical links.
func WithBaseURL(baseURL string) Option {
	return func(s *Server) {
		s.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithCache sets the cache of generated sitemaps.
func WithCache(c cache.Cache) Option {
	return func(s *Server) {
		s.cache = c
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics sets the collectors updated on every request.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithGatherer exposes the metrics of g at /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// WithToolHandler registers the handler of a tool, replacing the built-in one.
func WithToolHandler(id alltools.ToolID, h ToolHandler) Option {
	return func(s *Server) {
		s.handlers[id] = h
	}
}

// New creates a Server. texts supplies every localized string of the pages.
func New(catalog *alltools.Catalog, texts seo.Localizer, opts ...Option) *Server {
	s := &Server{
		catalog:   catalog,
		navigator: alltools.NewNavigator(catalog),
		baseURL:   sitemap.DefaultBaseURL,
		handlers:  make(map[alltools.ToolID]ToolHandler),
		logger:    zap.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.renderer = &renderer{catalog: catalog, texts: texts, baseURL: s.baseURL}
	s.sitemap = sitemap.NewGenerator(catalog, s.baseURL)
	s.router = s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// toolHandler dispatches a resolved tool to its handler.
func (s *Server) toolHandler(id alltools.ToolID) ToolHandler {
	if h, ok := s.handlers[id]; ok {
		return h
	}
	return builtinHandler(id)
}

// fail logs err and answers 500. Catalog lookups failing on a resolved route
// are programming errors, never a user's fault.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	var unknownTool *alltools.UnknownToolError
	var unknownLang *alltools.UnknownLanguageError
	msg := "page rendering failed"
	if errors.As(err, &unknownTool) || errors.As(err, &unknownLang) {
		msg = "catalog lookup failed on a resolved route"
	}
	s.logger.Error(msg,
		zap.String("request_id", RequestID(r.Context())),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// Run listens on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("server listening",
			zap.String("addr", addr),
			zap.String("base_url", s.baseURL),
			zap.Int("languages", len(s.catalog.Languages())),
			zap.Int("tools", len(s.catalog.Tools())),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("server failed to start: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown error", zap.Error(err))
			return err
		}
		s.logger.Info("server stopped")
		return nil
	}
}
