// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON, validated with go-playground/validator tags:

  - SaveProgressRequest: user, progress
  - RateNameRequest: user, name, rating
  - UndoRatingRequest: user, name
  - PersonalizeRequest: user
  - AddNameRequest: user, name, origin, meaning, phonetic, nicknames
  - StartMiddleNamesRequest: user, first_names (2-5)
  - SetActiveFirstNameRequest: user, first_name
  - RateMiddleNameRequest: user, middle_name, rating

# Response Types

Types for JSON responses:

  - OKResponse: ok
  - RateNameResponse: ok, current_index, personalized
  - PersonalizeResponse: ok, personalized, message
  - CatalogResponse: names, middle_names
  - ProgressStats: per-rating counts, remaining, percent_complete
  - MatchResult: both_loved, one_loved_one_maybe, both_maybe
  - ErrorResponse: error, message

# Domain Types

  - BabyName: catalog entry (origin, syllables, meaning, ...)
  - MiddleName: middle-name catalog entry
  - CustomName: name a partner added to their own queue
  - UserProgress: one partner's whole state, stored as a JSON blob
  - Ratings: name → rating

# Constants

Ratings:

	RatingLove  = "love"
	RatingMaybe = "maybe"
	RatingPass  = "pass"

Phases:

	PhaseFirst  = "first"
	PhaseMiddle = "middle"
*/
package models
