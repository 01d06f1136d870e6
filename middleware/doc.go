// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (request_id, method, path, remote) and completion
(status, duration_ms).

# Server Middleware

The router wraps the whole mux with Chain:

	handler := middleware.Chain(mux,
		middleware.Recovery,
		middleware.RequestID,
		middleware.CORS,
		middleware.WithMetrics(collector),
		middleware.RateLimiter(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst, collector),
	)

  - Recovery: panics become a JSON 500
  - RequestID: X-Request-ID in and out, stored in the context
  - CORS: reflects Origin, allows GET, POST, OPTIONS
  - WithMetrics: request count and duration per method, path and status
  - RateLimiter: token bucket per client IP (golang.org/x/time/rate)

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.ProcessRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "`data` must be a list")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used as the rate limiter key.
*/
package middleware
