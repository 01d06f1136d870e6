// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics exposes Prometheus counters and histograms for the API.
//
// A Collector is created once in main and shared by the router, the
// metrics middleware and the /bfhl handler. GET /metrics serves it.
package metrics
