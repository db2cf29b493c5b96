// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The same statements run on PostgreSQL and SQLite.

# Drivers

DriverName maps the configured database type to a database/sql driver:

	sqlite   → modernc.org/sqlite (default)
	postgres → github.com/lib/pq

# Tables

  - kv_entry: key, JSON value, updated_at

Each partner's progress is one row keyed "babynamer:<user>".
*/
package db
