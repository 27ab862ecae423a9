// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package metrics exposes Prometheus instrumentation for content queries,
// fallback chains and the page cache.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "sitefront"

// Query outcomes.
const (
	OutcomeHit   = "hit"
	OutcomeEmpty = "empty"
	OutcomeError = "error"
)

// Metrics holds the site's collectors. A nil *Metrics is a valid no-op.
type Metrics struct {
	registry *prometheus.Registry

	StoreQueries  *prometheus.CounterVec
	QueryDuration *prometheus.HistogramVec
	FallbackSteps *prometheus.CounterVec
	PageCache     *prometheus.CounterVec
	PagesRendered *prometheus.CounterVec
}

// New registers the collectors on a fresh registry together with the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		StoreQueries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_queries_total",
			Help:      "Content store queries by query name and outcome (hit, empty, error)",
		}, []string{"query", "outcome"}),
		QueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "store_query_duration_seconds",
			Help:      "Round-trip time of content store queries",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"query"}),
		FallbackSteps: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fallback_steps_total",
			Help:      "Fallback chain resolutions by chain and the step that produced the value",
		}, []string{"chain", "step"}),
		PageCache: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_cache_requests_total",
			Help:      "Rendered page cache lookups by result (hit, miss)",
		}, []string{"result"}),
		PagesRendered: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pages_rendered_total",
			Help:      "Pages rendered by kind (home, page, caseStudy, caseStudyIndex, notFound)",
		}, []string{"kind"}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveQuery records one store query.
func (m *Metrics) ObserveQuery(query, outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.StoreQueries.WithLabelValues(query, outcome).Inc()
	m.QueryDuration.WithLabelValues(query).Observe(took.Seconds())
}

// ObserveFallback records which step of a chain produced the result. step is
// "none" when every attempt came up empty.
func (m *Metrics) ObserveFallback(chain, step string) {
	if m == nil {
		return
	}
	m.FallbackSteps.WithLabelValues(chain, step).Inc()
}

// ObserveCache records a page cache lookup.
func (m *Metrics) ObserveCache(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.PageCache.WithLabelValues(result).Inc()
}

// ObserveRender records a rendered page.
func (m *Metrics) ObserveRender(kind string) {
	if m == nil {
		return
	}
	m.PagesRendered.WithLabelValues(kind).Inc()
}
