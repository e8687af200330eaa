// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

	cfg, err := cliparse.ParseFlags(os.Args[1:])

The cobra root command binds the same flags with BindFlags and calls
Resolve once they are parsed.

# Config Fields

  - APIBase: tracking API base URL (required by API commands)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: settings database (default: imbtrack.db)
  - HTTPTimeout: per-request timeout (default: 30s)
  - Port: console listen port (default: 3318)
  - LogLevel: slog level (default: info)

# Environment Variables

Flags fall back to environment variables, optionally loaded from .env:

	API_BASE      → -a, --api-base
	DATABASE_TYPE → -t, --db-type
	DATABASE_URL  → -d, --db-url
	HTTP_TIMEOUT  → --timeout
	PORT          → -p, --port
	LOG_LEVEL     → --log-level

CLI flags take precedence over environment variables.
*/
package cliparse
