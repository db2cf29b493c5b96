// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/baby-pick/cliparse"
	"github.com/danielhkuo/baby-pick/middleware"
	"github.com/danielhkuo/baby-pick/models"
	"github.com/danielhkuo/baby-pick/store"
)

type CompareHandler struct {
	progress *store.ProgressStore
	cfg      cliparse.Config
}

func NewCompareHandler(progress *store.ProgressStore, cfg cliparse.Config) *CompareHandler {
	return &CompareHandler{progress: progress, cfg: cfg}
}

// Compare handles GET /compare
// A partner without a record yet yields empty lists
func (h *CompareHandler) Compare(w http.ResponseWriter, r *http.Request) {
	if !requireAnyPartner(w, r, h.cfg) {
		return
	}

	ratings := make([]models.Ratings, len(h.cfg.Partners))

	g, ctx := errgroup.WithContext(r.Context())
	for i, user := range h.cfg.Partners {
		g.Go(func() error {
			p, err := h.progress.Load(ctx, user)
			if errors.Is(err, store.ErrNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			ratings[i] = p.Ratings
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		writeStoreError(w, err, "")
		return
	}

	var result models.MatchResult
	if len(ratings) == 2 {
		result = ComputeMatches(ratings[0], ratings[1])
	} else {
		result = ComputeMatches(nil, nil)
	}

	middleware.JSONResponse(w, http.StatusOK, result)
}

// ComputeMatches buckets names both partners rated positively. Lists are
// sorted and never nil.
func ComputeMatches(a, b models.Ratings) models.MatchResult {
	result := models.MatchResult{
		BothLoved:        []string{},
		OneLovedOneMaybe: []string{},
		BothMaybe:        []string{},
	}

	for name, ra := range a {
		rb, ok := b[name]
		if !ok {
			continue
		}

		switch {
		case ra == models.RatingLove && rb == models.RatingLove:
			result.BothLoved = append(result.BothLoved, name)
		case ra == models.RatingLove && rb == models.RatingMaybe,
			ra == models.RatingMaybe && rb == models.RatingLove:
			result.OneLovedOneMaybe = append(result.OneLovedOneMaybe, name)
		case ra == models.RatingMaybe && rb == models.RatingMaybe:
			result.BothMaybe = append(result.BothMaybe, name)
		}
	}

	slices.Sort(result.BothLoved)
	slices.Sort(result.OneLovedOneMaybe)
	slices.Sort(result.BothMaybe)

	return result
}
