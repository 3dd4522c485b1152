package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ZaguanLabs/alltools"
)

// Redirect reasons.
const (
	ReasonNegotiated = "negotiated" // Missing or unsupported language
	ReasonNotFound   = "not_found"  // Unknown page segment
	ReasonSwitch     = "switch"     // Explicit language switch
	ReasonCanonical  = "canonical"  // Resolved page requested at a non-canonical path
)

// Metrics holds the collectors of the HTTP surface.
type Metrics struct {
	navigations     *prometheus.CounterVec
	redirects       *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	sitemapCache    *prometheus.CounterVec
}

// NewMetrics registers the collectors with registerer, or with the default
// registerer when nil.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registerer)

	return &Metrics{
		navigations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "alltools_navigations_total",
				Help: "Total number of evaluated navigations",
			},
			[]string{"state", "kind"},
		),
		redirects: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "alltools_redirects_total",
				Help: "Total number of redirects issued",
			},
			[]string{"reason"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "alltools_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"route", "status"},
		),
		sitemapCache: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "alltools_sitemap_cache_total",
				Help: "Sitemap cache lookups by result",
			},
			[]string{"result"},
		),
	}
}

// ObserveNavigation counts one evaluated route.
func (m *Metrics) ObserveNavigation(state alltools.RouteState) {
	if m == nil {
		return
	}
	kind := string(state.Kind)
	if kind == "" {
		kind = "none"
	}
	m.navigations.WithLabelValues(string(state.State), kind).Inc()
}

// ObserveRedirect counts one redirect.
func (m *Metrics) ObserveRedirect(reason string) {
	if m == nil {
		return
	}
	m.redirects.WithLabelValues(reason).Inc()
}

// ObserveRequest records the duration of one request.
func (m *Metrics) ObserveRequest(route, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(route, status).Observe(d.Seconds())
}

// ObserveSitemapCache counts one sitemap cache lookup.
func (m *Metrics) ObserveSitemapCache(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.sitemapCache.WithLabelValues(result).Inc()
}
