// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first (godotenv); variables
already set in the environment are not overridden.

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: Connection string (default for sqlite: file:baby-pick.db)
  - Partners: The two partner names, lowercased (default: nick,nicki)
  - PersonalizeThreshold: Ratings before the queue is reordered (default: 20)
  - CatalogPath: YAML catalog file (default: embedded catalog)
  - PartnerKeySalt: Secret for partner keys (optional; empty disables keys)
  - PrintKeys: Print partner keys and exit

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-partners     Partner names
	-threshold    Personalize threshold
	-catalog      Catalog path
	-key-salt     Partner key salt
	-print-keys   Print partner keys

# Environment Variables

Flags fall back to environment variables:

	PORT                  → -p
	DATABASE_URL          → -d
	DATABASE_TYPE         → -t
	PARTNERS              → -partners
	PERSONALIZE_THRESHOLD → -threshold
	CATALOG_PATH          → -catalog
	PARTNER_KEY_SALT      → -key-salt

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if:

  - DATABASE_TYPE is not sqlite or postgres
  - postgres is selected without DATABASE_URL
  - PARTNERS does not name exactly two distinct people
  - -print-keys is set without PARTNER_KEY_SALT
*/
package cliparse
