// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Command imbtrack is the client of an Intelligent Mail barcode (IMB) batch
tracking service.

It prepares candidate lists (parse, deduplicate, format-check), submits them
as batches, and follows item statuses with refreshes and manual overrides.
The tracking service itself is external.

# Usage

	imbtrack preview march.xlsx
	imbtrack create -f march.csv --source csv --note "March mailing"
	imbtrack show "https://track.example/b/<id>?adminKey=<key>"
	imbtrack refresh <id> -q delivered
	imbtrack set-status <id> <item-id> "In Transit"
	imbtrack admin-key status
	imbtrack serve -p 3318

# Configuration

Flags win over environment variables, which win over defaults. A .env file
in the working directory is loaded first.

  - API_BASE (-a): tracking API base URL, required for API commands
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): settings database; default imbtrack.db
  - HTTP_TIMEOUT (--timeout): per-request timeout (default: 30s)
  - PORT (-p): console port (default: 3318)
  - LOG_LEVEL (--log-level): debug, info, warn, error

# Architecture

  - imb: tokenizing, deduplication and format warnings
  - intake: text, CSV and XLSX file reading
  - batchview: the client-side view of one batch
  - client: tracking API client
  - session, db: admin key kept in sqlite or postgres
  - locate: batch links and share links
  - commands: the operations, with an in-flight guard
  - handlers, router, middleware: the local JSON console
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
