// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Baby Pick API server.

Baby Pick helps two partners choose a baby name. Each partner swipes through
a shuffled catalog rating names love, maybe or pass. After enough ratings the
rest of the queue is re-ranked by the partner's apparent taste, and the
compare view lists the names both partners like.

# Starting the Server

With no configuration the server uses a local SQLite file:

	go run .

Or against PostgreSQL:

	go run . -t postgres -d "postgres://..."

# Configuration

Settings come from flags, then environment variables, then a .env file:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_URL (-d): Connection string (default: file:baby-pick.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - PARTNERS (-partners): The two partner names (default: nick,nicki)
  - PERSONALIZE_THRESHOLD (-threshold): Ratings before re-ranking (default: 20)
  - CATALOG_PATH (-catalog): YAML catalog file (default: embedded)
  - PARTNER_KEY_SALT (-key-salt): Enables X-Partner-Key checks

Print each partner's key:

	go run . -key-salt secret -print-keys

# Architecture

  - handlers: HTTP request handlers (progress, ratings, names, compare, middle names)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, request validation
  - personalize: Taste profile and queue re-ranking
  - store: Per-partner progress on a key-value table
  - catalog: Reference name data
  - models: Request/response and progress types
  - auth: Partner resolution and keys
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
