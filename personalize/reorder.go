// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package personalize

import (
	"sort"

	"github.com/danielhkuo/baby-pick/models"
)

// DefaultMinRatings is the number of ratings needed before a queue is reordered.
const DefaultMinRatings = 20

// Reorderer produces a new queue order from a user's ratings.
// Implementations must return a permutation of order.
type Reorderer interface {
	Reorder(catalog []models.BabyName, ratings models.Ratings, order []string) []string
}

// Heuristic reorders unrated names by their Score against the user's Profile.
// It runs on any input; gating belongs to the caller (see Gated).
type Heuristic struct{}

// Reorder keeps rated names first in their existing order, followed by
// unrated names sorted by descending score. Equal scores keep input order.
func (Heuristic) Reorder(catalog []models.BabyName, ratings models.Ratings, order []string) []string {
	var rated, unrated []string
	for _, name := range order {
		if _, ok := ratings[name]; ok {
			rated = append(rated, name)
		} else {
			unrated = append(unrated, name)
		}
	}

	profile := Analyze(catalog, ratings)

	byName := make(map[string]models.BabyName, len(catalog))
	for _, n := range catalog {
		byName[n.Name] = n
	}

	// Custom names are not in the catalog and score 0
	scores := make([]int, len(unrated))
	for i, name := range unrated {
		if entry, ok := byName[name]; ok {
			scores[i] = Score(entry, profile)
		}
	}

	idx := make([]int, len(unrated))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})

	result := make([]string, 0, len(order))
	result = append(result, rated...)
	for _, i := range idx {
		result = append(result, unrated[i])
	}
	return result
}

// Gated passes the order through unchanged until ratings reach MinRatings,
// then delegates to Next.
type Gated struct {
	Next       Reorderer
	MinRatings int
}

// NewGated wraps next with the default threshold.
func NewGated(next Reorderer) Gated {
	return Gated{Next: next, MinRatings: DefaultMinRatings}
}

func (g Gated) Reorder(catalog []models.BabyName, ratings models.Ratings, order []string) []string {
	if !g.Ready(ratings) {
		return append([]string(nil), order...)
	}
	return g.Next.Reorder(catalog, ratings, order)
}

// Ready reports whether ratings meet the threshold.
func (g Gated) Ready(ratings models.Ratings) bool {
	return len(ratings) >= g.MinRatings
}
