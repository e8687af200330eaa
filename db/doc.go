// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the client-local settings database.

The tracking service owns all batch data; locally we only keep small
key-value settings such as the admin key.

# Drivers

	conn, err := db.Open(db.TypeSQLite, "imbtrack.db")       // modernc.org/sqlite
	conn, err := db.Open(db.TypePostgres, "postgres://...")  // github.com/lib/pq

Open pings the database and runs CreateSchema.

# Tables

	kv (key TEXT PRIMARY KEY, value TEXT, updated_at TIMESTAMP)

Queries are written with '?' placeholders; Rebind converts them to $N for
postgres.
*/
package db
