// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package personalize

import (
	"slices"

	"github.com/danielhkuo/baby-pick/models"
)

// Score points
const (
	syllablePoints      = 3
	originPoints        = 2
	endingPoints        = 2
	avoidedEndingPoints = -2
	lengthPoints        = 1
)

// Score rates one catalog entry against a profile. Scores are only
// comparable within a single reorder call.
func Score(name models.BabyName, p Profile) int {
	score := 0

	if slices.Contains(p.PreferredSyllables, name.Syllables) {
		score += syllablePoints
	}

	// Each matching origin counts separately
	for _, o := range SplitOrigins(name.Origin) {
		if slices.Contains(p.PreferredOrigins, o) {
			score += originPoints
		}
	}

	ending := Ending(name.Name)
	if slices.Contains(p.PreferredEndings, ending) {
		score += endingPoints
	}
	if slices.Contains(p.AvoidedEndings, ending) {
		score += avoidedEndingPoints
	}

	if LengthBucket(name.Name) == p.PreferredLength {
		score += lengthPoints
	}

	return score
}
