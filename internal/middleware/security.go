// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"strings"
)

// SecureHeaders adds security headers to every response. imageHosts are
// the CDN hosts page images load from and are added to the img-src policy.
func SecureHeaders(imageHosts ...string) func(http.Handler) http.Handler {
	csp := contentSecurityPolicy(imageHosts)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "SAMEORIGIN")
			// Legacy XSS filter off; CSP covers it.
			h.Set("X-XSS-Protection", "0")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "interest-cohort=()")
			h.Set("Content-Security-Policy", csp)

			next.ServeHTTP(w, r)
		})
	}
}

func contentSecurityPolicy(imageHosts []string) string {
	img := []string{"'self'", "data:"}
	for _, host := range imageHosts {
		if host = strings.TrimSpace(host); host != "" {
			img = append(img, "https://"+host)
		}
	}
	return strings.Join([]string{
		"default-src 'self'",
		"img-src " + strings.Join(img, " "),
		"style-src 'self'",
		"script-src 'self'",
		"frame-ancestors 'self'",
		"base-uri 'self'",
	}, "; ")
}
