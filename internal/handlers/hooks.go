// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"

	"sitefront/internal/cache"
	"sitefront/internal/middleware"
)

// WebhookSecretHeader carries the shared secret of the content webhook.
const WebhookSecretHeader = "X-Webhook-Secret"

// Hooks handles callbacks from the content store.
type Hooks struct {
	pageCache *cache.PageCache
	secret    string
}

// NewHooks creates the webhook handlers. An empty secret disables them.
func NewHooks(pageCache *cache.PageCache, secret string) *Hooks {
	return &Hooks{pageCache: pageCache, secret: secret}
}

// Enabled reports whether a secret is configured.
func (h *Hooks) Enabled() bool {
	return h != nil && h.secret != ""
}

// ContentPublished clears cached pages after content changes so the next
// request renders fresh content.
func (h *Hooks) ContentPublished(w http.ResponseWriter, r *http.Request) {
	if !h.Enabled() {
		http.NotFound(w, r)
		return
	}
	got := r.Header.Get(WebhookSecretHeader)
	if subtle.ConstantTimeCompare([]byte(got), []byte(h.secret)) != 1 {
		slog.Warn("content webhook rejected",
			"request_id", middleware.RequestIDFromCtx(r.Context()),
			"remote", r.RemoteAddr,
		)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	// ?path= clears one page; otherwise every page goes, since navigation
	// and listings are shared across pages.
	path := r.URL.Query().Get("path")
	var cleared int
	if path != "" {
		if h.pageCache.Invalidate(r.Context(), cache.PathKey(path)) {
			cleared = 1
		}
	} else {
		cleared = h.pageCache.InvalidateAll(r.Context())
	}
	slog.Info("content webhook received",
		"request_id", middleware.RequestIDFromCtx(r.Context()),
		"path", path,
		"cleared", cleared,
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]int{"cleared": cleared})
}
