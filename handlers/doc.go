// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Baby Pick API.

# Handler Types

Each handler is a struct holding the progress store, catalog and config:

  - UserHandler: Progress load/create, full replace, stats
  - RatingHandler: Rate and undo, with the personalization trigger
  - PersonalizeHandler: Explicit re-ranking
  - NamesHandler: Catalog listing and custom names
  - CompareHandler: Agreement between the two partners
  - MiddleNameHandler: Middle-name phase for shortlisted first names

Handlers are created via constructor functions:

	ratingHandler := handlers.NewRatingHandler(progress, cat, cfg, reorderer)

# Rating Flow

	GET    /user?user=   → GetUser (creates a shuffled queue on first visit)
	POST   /ratings      → RateName (advances current_index)
	DELETE /ratings      → UndoRating (steps current_index back)
	POST   /personalize  → Personalize

When a rating brings the count to the configured threshold and the record is
not yet personalized, RateName reorders the queue through the Reorderer:
rated names first in their existing order, unrated names by descending score.

# Concurrency

Every write goes through store.ProgressStore.Update, which serializes
read-modify-write per partner. Handlers signal a rejected update by
returning a requestError from the update func; nothing is written.

# Partner Keys

When PartnerKeySalt is set, user-scoped requests need a matching
X-Partner-Key header. /compare accepts either partner's key.
*/
package handlers
