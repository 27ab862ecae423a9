// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveQuery(t *testing.T) {
	m := New()
	m.ObserveQuery("pageBySlug", OutcomeHit, 20*time.Millisecond)
	m.ObserveQuery("pageBySlug", OutcomeHit, 30*time.Millisecond)
	m.ObserveQuery("pageBySlug", OutcomeError, time.Millisecond)

	if got := testutil.ToFloat64(m.StoreQueries.WithLabelValues("pageBySlug", OutcomeHit)); got != 2 {
		t.Errorf("hit count: got %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.StoreQueries.WithLabelValues("pageBySlug", OutcomeError)); got != 1 {
		t.Errorf("error count: got %v, want 1", got)
	}
}

func TestObserveFallbackAndCache(t *testing.T) {
	m := New()
	m.ObserveFallback("homeSections", "firstPageWithSections")
	m.ObserveCache(true)
	m.ObserveCache(false)
	m.ObserveCache(false)
	m.ObserveRender("home")

	if got := testutil.ToFloat64(m.FallbackSteps.WithLabelValues("homeSections", "firstPageWithSections")); got != 1 {
		t.Errorf("fallback: got %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.PageCache.WithLabelValues("miss")); got != 2 {
		t.Errorf("cache miss: got %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.PagesRendered.WithLabelValues("home")); got != 1 {
		t.Errorf("rendered: got %v, want 1", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveQuery("q", OutcomeHit, time.Second)
	m.ObserveFallback("c", "s")
	m.ObserveCache(true)
	m.ObserveRender("home")
	if m.Registry() != nil {
		t.Error("nil metrics should have no registry")
	}

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rr.Code)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.ObserveQuery("pageList", OutcomeEmpty, time.Millisecond)

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	for _, want := range []string{
		`sitefront_store_queries_total{outcome="empty",query="pageList"} 1`,
		"sitefront_store_query_duration_seconds_bucket",
		"go_goroutines",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("exposition missing %q", want)
		}
	}
}
