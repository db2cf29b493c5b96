// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package personalize reorders a partner's name queue to surface likely favorites.

# Profile

Analyze infers a Profile from loved and passed names:

  - PreferredSyllables: top 2 syllable counts (+1 per love, -0.5 per pass)
  - PreferredOrigins: top 4 origin tokens with positive affinity
  - PreferredEndings: top 3 two-letter endings among loved names
  - AvoidedEndings: top 3 endings among passed names, minus preferred ones
  - PreferredLength: short (<5), medium (5-6) or long (>=7) by mean loved length

Maybe ratings are ignored.

# Scoring

Score adds points for an unrated name:

	+3  syllable count preferred
	+2  per preferred origin token
	+2  ending preferred
	-2  ending avoided
	+1  length bucket matches

# Reordering

Heuristic.Reorder keeps rated names at the front in their existing order and
sorts unrated names by descending score. Ties keep input order, and names
missing from the catalog score 0.

	r := personalize.NewGated(personalize.Heuristic{})
	newOrder := r.Reorder(catalog.Names(), progress.Ratings, progress.NameOrder)

Gated leaves the order untouched until at least MinRatings names are rated.
Callers depend on the Reorderer interface so the heuristic can be swapped.
*/
package personalize
