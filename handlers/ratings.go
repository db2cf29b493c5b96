// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/baby-pick/catalog"
	"github.com/danielhkuo/baby-pick/cliparse"
	"github.com/danielhkuo/baby-pick/middleware"
	"github.com/danielhkuo/baby-pick/models"
	"github.com/danielhkuo/baby-pick/personalize"
	"github.com/danielhkuo/baby-pick/store"
)

type RatingHandler struct {
	progress  *store.ProgressStore
	catalog   *catalog.Catalog
	cfg       cliparse.Config
	reorderer personalize.Reorderer
}

func NewRatingHandler(progress *store.ProgressStore, cat *catalog.Catalog, cfg cliparse.Config, reorderer personalize.Reorderer) *RatingHandler {
	return &RatingHandler{progress: progress, catalog: cat, cfg: cfg, reorderer: reorderer}
}

// RateName handles POST /ratings
// Records the rating and advances the queue. Crossing the threshold
// reorders the rest of the queue once.
func (h *RatingHandler) RateName(w http.ResponseWriter, r *http.Request) {
	var req models.RateNameRequest
	if err := middleware.ParseAndValidate(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	user, ok := resolveUser(w, r, h.cfg, req.User)
	if !ok {
		return
	}

	personalized := false
	p, err := h.progress.Update(r.Context(), user, func(p *models.UserProgress) error {
		p.Ratings[req.Name] = req.Rating
		p.CurrentIndex = min(p.CurrentIndex+1, len(p.NameOrder))

		if !p.PersonalizationEnabled && len(p.Ratings) >= h.cfg.PersonalizeThreshold {
			applyPersonalization(p, h.catalog, h.reorderer)
			personalized = true
		}
		return nil
	})
	if err != nil {
		writeStoreError(w, err, user)
		return
	}

	if personalized {
		slog.Info("queue personalized", "user", user, "rated", len(p.Ratings))
	}

	middleware.JSONResponse(w, http.StatusOK, models.RateNameResponse{
		OK:           true,
		CurrentIndex: p.CurrentIndex,
		Personalized: p.PersonalizationEnabled,
	})
}

// UndoRating handles DELETE /ratings
// Removing a rating steps the queue back by one
func (h *RatingHandler) UndoRating(w http.ResponseWriter, r *http.Request) {
	var req models.UndoRatingRequest
	if err := middleware.ParseAndValidate(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	user, ok := resolveUser(w, r, h.cfg, req.User)
	if !ok {
		return
	}

	p, err := h.progress.Update(r.Context(), user, func(p *models.UserProgress) error {
		if _, rated := p.Ratings[req.Name]; !rated {
			return reject(http.StatusNotFound, "Name not rated")
		}
		delete(p.Ratings, req.Name)
		p.CurrentIndex = max(p.CurrentIndex-1, 0)
		return nil
	})
	if err != nil {
		writeStoreError(w, err, user)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.RateNameResponse{
		OK:           true,
		CurrentIndex: p.CurrentIndex,
		Personalized: p.PersonalizationEnabled,
	})
}

// applyPersonalization reorders the queue and marks the record personalized.
// Rated names stay at the front so CurrentIndex keeps pointing at the first
// unrated name when the user has rated the queue in order.
func applyPersonalization(p *models.UserProgress, cat *catalog.Catalog, reorderer personalize.Reorderer) {
	p.NameOrder = reorderer.Reorder(cat.Names(), p.Ratings, p.NameOrder)
	p.PersonalizationEnabled = true
}
