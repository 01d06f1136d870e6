// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"time"
)

// RequestRecorder receives one call per finished request
type RequestRecorder interface {
	RecordHTTPRequest(method, path string, status int, duration time.Duration)
}

// knownPaths bounds the path label; anything else is reported as "other"
var knownPaths = map[string]struct{}{
	"/":        {},
	"/bfhl":    {},
	"/health":  {},
	"/ready":   {},
	"/tester":  {},
	"/metrics": {},
}

// WithMetrics records method, path, status and duration of every request
func WithMetrics(rec RequestRecorder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sr, r)

			rec.RecordHTTPRequest(r.Method, metricPath(r.URL.Path), sr.status, time.Since(start))
		})
	}
}

func metricPath(path string) string {
	if _, ok := knownPaths[path]; ok {
		return path
	}
	return "other"
}
