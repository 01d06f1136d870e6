// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the BFHL API server.

The server exposes POST /bfhl, which sorts a list of arbitrary values into
odd numbers, even numbers, alphabetic tokens and special-character tokens,
and returns their integer sum and a reversed, alternating-case string built
from the letters.

# Starting the Server

Every setting has a default, so the server starts with no configuration:

	go run .

Identity fields come from the environment, a .env file or flags:

	FULL_NAME="Jane Roe" DOB=01012000 EMAIL=jane@example.com ROLL_NUMBER=XYZ789 go run .
	go run . -p 8080 -name "Jane Roe" -dob 01012000

# Configuration

  - PORT (-p): Server port (default: 3318)
  - FULL_NAME (-name), DOB (-dob): Form user_id
  - EMAIL (-email), ROLL_NUMBER (-roll): Echoed in responses
  - MAX_BODY_BYTES (-max-body): Request body cap (default: 1 MiB)
  - RATE_LIMIT_RPS (-rps), RATE_LIMIT_BURST (-burst): Per-client limit
  - LOG_LEVEL (-log-level), LOG_FORMAT (-log-format): Logging

# Architecture

  - classify: Token normalization, classification and concat string
  - identity: user_id derivation and request IDs
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: Logging, request IDs, CORS, rate limiting, metrics, JSON helpers
  - metrics: Prometheus collector
  - models: Request/response types
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
