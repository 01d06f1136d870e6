// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the BFHL API.

# Route Registration

NewRouter creates the ServeMux and wraps it in the middleware chain:

	handler := router.NewRouter(ctx, cfg, collector)

NewMux returns the bare mux for callers that want their own middleware.

# Endpoints

Health:

	GET /health - "OK"
	GET /ready  - {"status":"ready"}

Classification:

	POST /bfhl - Classify {"data": [...]}
	GET  /bfhl - {"operation_code": 1}

Other:

	GET /        - Usage message
	GET /tester  - Browser form for POST /bfhl
	GET /metrics - Prometheus metrics

Unknown paths return 404 and wrong methods 405, both from http.ServeMux.

# Middleware Order

Recovery, RequestID, CORS, WithMetrics, RateLimiter, in that order, so
rate limited responses are still counted and carry a request ID.
*/
package router
