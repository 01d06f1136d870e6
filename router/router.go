// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"context"
	"net/http"

	"github.com/danielhkuo/bfhl/cliparse"
	"github.com/danielhkuo/bfhl/handlers"
	"github.com/danielhkuo/bfhl/metrics"
	"github.com/danielhkuo/bfhl/middleware"
)

// NewMux registers every route on a fresh ServeMux
func NewMux(cfg cliparse.Config, collector *metrics.Collector) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	bfhlHandler := handlers.NewBFHLHandler(cfg, collector)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.HandleFunc("GET /ready", handlers.Ready)

	// Classification
	mux.HandleFunc("POST /bfhl", middleware.WithLogging(bfhlHandler.Process))
	mux.HandleFunc("GET /bfhl", middleware.WithLogging(bfhlHandler.Instructions))

	// Manual testing and observability
	mux.HandleFunc("GET /tester", middleware.WithLogging(handlers.Tester))
	mux.Handle("GET /metrics", collector.Handler())

	// Root endpoint
	mux.HandleFunc("GET /{$}", handlers.Root)

	return mux
}

// NewRouter returns the mux wrapped in the server middleware chain.
// ctx bounds the rate limiter's background cleanup.
func NewRouter(ctx context.Context, cfg cliparse.Config, collector *metrics.Collector) http.Handler {
	return middleware.Chain(NewMux(cfg, collector),
		middleware.Recovery,
		middleware.RequestID,
		middleware.CORS,
		middleware.WithMetrics(collector),
		middleware.RateLimiter(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst, collector),
	)
}
