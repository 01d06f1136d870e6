// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

The Config is built once at startup and passed by value to the router and
handlers. Nothing reads the environment after ParseFlags returns.

# Config Fields

  - Port: Server listen port (default: 3318)
  - FullName, DOB: Combined into user_id (default: "john doe", "17091999")
  - Email: Echoed in responses (default: john@xyz.com)
  - RollNumber: Echoed in responses (default: ABCD123)
  - MaxBodyBytes: Request body cap (default: 1 MiB)
  - RateLimitRPS, RateLimitBurst: Per-client rate limit (default: 20/40)
  - LogLevel, LogFormat: slog handler settings (default: info, text)

# CLI Flags

	-p          Server port
	-name       Full name
	-dob        Date of birth (ddmmyyyy)
	-email      Email address
	-roll       Roll number
	-max-body   Body size limit, e.g. 512KB or 1MiB
	-rps        Requests per second per client, 0 disables
	-burst      Rate limiter burst
	-log-level  debug, info, warn or error
	-log-format text or json
	-env-file   .env file to load

# Environment Variables

Flags fall back to environment variables:

	PORT             → -p
	FULL_NAME        → -name
	DOB              → -dob
	EMAIL            → -email
	ROLL_NUMBER      → -roll
	MAX_BODY_BYTES   → -max-body
	RATE_LIMIT_RPS   → -rps
	RATE_LIMIT_BURST → -burst
	LOG_LEVEL        → -log-level
	LOG_FORMAT       → -log-format
	ENV_FILE         → -env-file

CLI flags take precedence over environment variables. Before the fallback
runs, a .env file is loaded with godotenv; variables already present in the
environment are not overwritten. A missing default .env is ignored.

# Validation

ParseFlags returns an error if a value cannot be parsed:

  - PORT must be an integer in 1-65535
  - MAX_BODY_BYTES must be a positive size (go-humanize syntax)
  - RATE_LIMIT_RPS must be >= 0, RATE_LIMIT_BURST >= 1
  - LOG_LEVEL must be a slog level name
  - LOG_FORMAT must be text or json
*/
package cliparse
