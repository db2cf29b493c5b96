// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Rating constants
const (
	RatingLove  = "love"
	RatingMaybe = "maybe"
	RatingPass  = "pass"
)

// Rating phase constants
const (
	PhaseFirst  = "first"
	PhaseMiddle = "middle"
)

// Ratings maps a name to its rating. A missing key means unrated.
type Ratings map[string]string

// IsValidRating reports whether r is one of love, maybe, pass.
func IsValidRating(r string) bool {
	switch r {
	case RatingLove, RatingMaybe, RatingPass:
		return true
	}
	return false
}

// Catalog types

type BabyName struct {
	Name       string   `json:"name" yaml:"name"`
	Gender     string   `json:"gender,omitempty" yaml:"gender"`
	Origin     string   `json:"origin" yaml:"origin"` // slash-separated, e.g. "Greek/Hebrew"
	Meaning    string   `json:"meaning" yaml:"meaning"`
	Phonetic   string   `json:"phonetic" yaml:"phonetic"`
	Syllables  int      `json:"syllables" yaml:"syllables"`
	Nicknames  []string `json:"nicknames,omitempty" yaml:"nicknames"`
	Popularity int      `json:"popularity,omitempty" yaml:"popularity"` // SSA rank, 0 if unranked
}

type MiddleName struct {
	Name      string `json:"name" yaml:"name"`
	Origin    string `json:"origin,omitempty" yaml:"origin"`
	Syllables int    `json:"syllables,omitempty" yaml:"syllables"`
}

type CustomName struct {
	Name      string   `json:"name"`
	Origin    string   `json:"origin,omitempty"`
	Meaning   string   `json:"meaning,omitempty"`
	Phonetic  string   `json:"phonetic,omitempty"`
	Nicknames []string `json:"nicknames"`
}

// Per-user progress record, persisted as a single JSON blob

type UserProgress struct {
	CurrentIndex           int                `json:"current_index"`
	NameOrder              []string           `json:"name_order"`
	Ratings                Ratings            `json:"ratings"`
	CustomNames            []CustomName       `json:"custom_names"`
	PersonalizationEnabled bool               `json:"personalization_enabled"`
	LastUpdated            int64              `json:"last_updated"` // Unix millis
	HasSeenTutorial        bool               `json:"has_seen_tutorial,omitempty"`
	Phase                  string             `json:"phase,omitempty"`
	TopFirstNames          []string           `json:"top_first_names,omitempty"`
	MiddleNameRatings      map[string]Ratings `json:"middle_name_ratings,omitempty"` // first name -> middle name -> rating
	MiddleNameOrder        []string           `json:"middle_name_order,omitempty"`
	MiddleNameIndex        int                `json:"middle_name_index,omitempty"`
	ActiveFirstName        *string            `json:"active_first_name,omitempty"`
}

// DefaultProgress returns a fresh record for the given queue.
func DefaultProgress(nameOrder []string) *UserProgress {
	return &UserProgress{
		NameOrder:   nameOrder,
		Ratings:     Ratings{},
		CustomNames: []CustomName{},
		Phase:       PhaseFirst,
	}
}

// Request types

type SaveProgressRequest struct {
	User     string        `json:"user" validate:"required"`
	Progress *UserProgress `json:"progress" validate:"required"`
}

type RateNameRequest struct {
	User   string `json:"user" validate:"required"`
	Name   string `json:"name" validate:"required"`
	Rating string `json:"rating" validate:"required,oneof=love maybe pass"`
}

type UndoRatingRequest struct {
	User string `json:"user" validate:"required"`
	Name string `json:"name" validate:"required"`
}

type PersonalizeRequest struct {
	User string `json:"user" validate:"required"`
}

type AddNameRequest struct {
	User      string   `json:"user" validate:"required"`
	Name      string   `json:"name" validate:"required"`
	Origin    string   `json:"origin"`
	Meaning   string   `json:"meaning"`
	Phonetic  string   `json:"phonetic"`
	Nicknames []string `json:"nicknames"`
}

type StartMiddleNamesRequest struct {
	User       string   `json:"user" validate:"required"`
	FirstNames []string `json:"first_names" validate:"required,min=2,max=5,dive,required"`
}

type SetActiveFirstNameRequest struct {
	User      string `json:"user" validate:"required"`
	FirstName string `json:"first_name" validate:"required"`
}

type RateMiddleNameRequest struct {
	User       string `json:"user" validate:"required"`
	MiddleName string `json:"middle_name" validate:"required"`
	Rating     string `json:"rating" validate:"required,oneof=love maybe pass"`
}

// Response types

type OKResponse struct {
	OK bool `json:"ok"`
}

type RateNameResponse struct {
	OK           bool `json:"ok"`
	CurrentIndex int  `json:"current_index"`
	Personalized bool `json:"personalized"`
}

type PersonalizeResponse struct {
	OK           bool   `json:"ok"`
	Personalized bool   `json:"personalized"`
	Message      string `json:"message,omitempty"`
}

type CatalogResponse struct {
	Names       []BabyName   `json:"names"`
	MiddleNames []MiddleName `json:"middle_names"`
}

type ProgressStats struct {
	User                   string  `json:"user"`
	Loved                  int     `json:"loved"`
	Maybe                  int     `json:"maybe"`
	Passed                 int     `json:"passed"`
	Rated                  int     `json:"rated"`
	Remaining              int     `json:"remaining"`
	PercentComplete        float64 `json:"percent_complete"`
	PersonalizationEnabled bool    `json:"personalization_enabled"`
	RatingsUntilPersonal   int     `json:"ratings_until_personalized"`
	LastUpdatedHuman       string  `json:"last_updated_human,omitempty"`
}

// Compare results

type MatchResult struct {
	BothLoved        []string `json:"both_loved"`
	OneLovedOneMaybe []string `json:"one_loved_one_maybe"`
	BothMaybe        []string `json:"both_maybe"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
