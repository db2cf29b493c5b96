// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package personalize

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/danielhkuo/baby-pick/models"
)

// Length buckets
const (
	LengthShort  = "short"  // < 5 characters
	LengthMedium = "medium" // 5-6 characters
	LengthLong   = "long"   // >= 7 characters
)

// Profile limits
const (
	maxSyllables = 2
	maxOrigins   = 4
	maxEndings   = 3
)

// Tally weights
const (
	lovedWeight  = 1.0
	passedWeight = -0.5
)

// Profile summarizes a user's apparent taste. It is derived from ratings on
// every call and never stored.
type Profile struct {
	PreferredSyllables []int    `json:"preferred_syllables"`
	PreferredOrigins   []string `json:"preferred_origins"`
	PreferredEndings   []string `json:"preferred_endings"`
	AvoidedEndings     []string `json:"avoided_endings"`
	PreferredLength    string   `json:"preferred_length"`
}

// Analyze derives a Profile from the catalog entries the user loved or passed.
// Maybe and unrated entries carry no signal.
func Analyze(catalog []models.BabyName, ratings models.Ratings) Profile {
	var loved, passed []models.BabyName
	for _, n := range catalog {
		switch ratings[n.Name] {
		case models.RatingLove:
			loved = append(loved, n)
		case models.RatingPass:
			passed = append(passed, n)
		}
	}

	// 1. Syllables: top 2 by net affinity, sign ignored
	syllables := newTally[int]()
	for _, n := range loved {
		syllables.add(n.Syllables, lovedWeight)
	}
	for _, n := range passed {
		syllables.add(n.Syllables, passedWeight)
	}
	preferredSyllables := syllables.top(maxSyllables, false)

	// 2. Origins: top 4 with strictly positive affinity
	origins := newTally[string]()
	for _, n := range loved {
		for _, o := range SplitOrigins(n.Origin) {
			origins.add(o, lovedWeight)
		}
	}
	for _, n := range passed {
		for _, o := range SplitOrigins(n.Origin) {
			origins.add(o, passedWeight)
		}
	}
	preferredOrigins := origins.top(maxOrigins, true)

	// 3. Endings: plain counts, avoided never overlaps preferred
	lovedEndings := newTally[string]()
	for _, n := range loved {
		lovedEndings.add(Ending(n.Name), 1)
	}
	passedEndings := newTally[string]()
	for _, n := range passed {
		passedEndings.add(Ending(n.Name), 1)
	}
	preferredEndings := lovedEndings.top(maxEndings, false)
	for _, e := range preferredEndings {
		passedEndings.remove(e)
	}
	avoidedEndings := passedEndings.top(maxEndings, false)

	// 4. Length: mean of loved names, 0 when nothing is loved
	var total int
	for _, n := range loved {
		total += nameLength(n.Name)
	}
	var avg float64
	if len(loved) > 0 {
		avg = float64(total) / float64(len(loved))
	}

	return Profile{
		PreferredSyllables: preferredSyllables,
		PreferredOrigins:   preferredOrigins,
		PreferredEndings:   preferredEndings,
		AvoidedEndings:     avoidedEndings,
		PreferredLength:    lengthBucket(avg),
	}
}

// Ending returns the last two characters of name, lowercased. Names shorter
// than two characters are returned whole.
func Ending(name string) string {
	runes := []rune(strings.ToLower(name))
	if len(runes) < 2 {
		return string(runes)
	}
	return string(runes[len(runes)-2:])
}

// SplitOrigins splits a slash-separated origin string into trimmed tokens.
func SplitOrigins(origin string) []string {
	parts := strings.Split(origin, "/")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		tokens = append(tokens, strings.TrimSpace(p))
	}
	return tokens
}

// LengthBucket classifies a name by its character count.
func LengthBucket(name string) string {
	return lengthBucket(float64(nameLength(name)))
}

func lengthBucket(length float64) string {
	switch {
	case length < 5:
		return LengthShort
	case length < 7:
		return LengthMedium
	default:
		return LengthLong
	}
}

func nameLength(name string) int {
	return utf8.RuneCountInString(name)
}

// tally accumulates weights per key and remembers first-seen order so ties
// rank deterministically.
type tally[K comparable] struct {
	order  []K
	scores map[K]float64
}

func newTally[K comparable]() *tally[K] {
	return &tally[K]{scores: make(map[K]float64)}
}

func (t *tally[K]) add(key K, weight float64) {
	if _, ok := t.scores[key]; !ok {
		t.order = append(t.order, key)
	}
	t.scores[key] += weight
}

func (t *tally[K]) remove(key K) {
	if _, ok := t.scores[key]; !ok {
		return
	}
	delete(t.scores, key)
	for i, k := range t.order {
		if k == key {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// top returns up to n keys by descending score. With positiveOnly set, keys
// scoring zero or below are dropped before the cut.
func (t *tally[K]) top(n int, positiveOnly bool) []K {
	keys := make([]K, 0, len(t.order))
	for _, k := range t.order {
		if positiveOnly && t.scores[k] <= 0 {
			continue
		}
		keys = append(keys, k)
	}

	sort.SliceStable(keys, func(i, j int) bool {
		return t.scores[keys[i]] > t.scores[keys[j]]
	})

	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}
