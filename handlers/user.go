// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/baby-pick/catalog"
	"github.com/danielhkuo/baby-pick/cliparse"
	"github.com/danielhkuo/baby-pick/middleware"
	"github.com/danielhkuo/baby-pick/models"
	"github.com/danielhkuo/baby-pick/store"
)

type UserHandler struct {
	progress *store.ProgressStore
	catalog  *catalog.Catalog
	cfg      cliparse.Config
}

func NewUserHandler(progress *store.ProgressStore, cat *catalog.Catalog, cfg cliparse.Config) *UserHandler {
	return &UserHandler{progress: progress, catalog: cat, cfg: cfg}
}

// GetUser handles GET /user?user=
// First visit creates a record with a freshly shuffled queue
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, ok := resolveUser(w, r, h.cfg, r.URL.Query().Get("user"))
	if !ok {
		return
	}

	p, created, err := h.progress.LoadOrCreate(r.Context(), user, func() *models.UserProgress {
		return models.DefaultProgress(h.catalog.ShuffledOrder())
	})
	if err != nil {
		writeStoreError(w, err, user)
		return
	}

	if created {
		slog.Info("progress created", "user", user, "names", len(p.NameOrder))
	}

	middleware.JSONResponse(w, http.StatusOK, p)
}

// SaveUser handles POST /user
// Replaces the whole record (client sync)
func (h *UserHandler) SaveUser(w http.ResponseWriter, r *http.Request) {
	var req models.SaveProgressRequest
	if err := middleware.ParseAndValidate(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	user, ok := resolveUser(w, r, h.cfg, req.User)
	if !ok {
		return
	}

	p := req.Progress
	if p.CurrentIndex < 0 || p.CurrentIndex > len(p.NameOrder) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "current_index out of range")
		return
	}
	for name, rating := range p.Ratings {
		if !models.IsValidRating(rating) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid rating for "+name)
			return
		}
	}
	for first, ratings := range p.MiddleNameRatings {
		for middle, rating := range ratings {
			if !models.IsValidRating(rating) {
				middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid rating for "+first+" "+middle)
				return
			}
		}
	}

	if err := h.progress.Replace(r.Context(), user, p); err != nil {
		writeStoreError(w, err, user)
		return
	}

	slog.Info("progress saved", "user", user, "rated", len(p.Ratings))

	middleware.JSONResponse(w, http.StatusOK, models.OKResponse{OK: true})
}

// GetStats handles GET /user/stats?user=
func (h *UserHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	user, ok := resolveUser(w, r, h.cfg, r.URL.Query().Get("user"))
	if !ok {
		return
	}

	p, err := h.progress.Load(r.Context(), user)
	if err != nil {
		writeStoreError(w, err, user)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, ComputeStats(user, p, h.cfg.PersonalizeThreshold, time.Now()))
}

// ComputeStats summarizes a partner's progress
func ComputeStats(user string, p *models.UserProgress, threshold int, now time.Time) models.ProgressStats {
	stats := models.ProgressStats{
		User:                   user,
		PersonalizationEnabled: p.PersonalizationEnabled,
	}

	for _, rating := range p.Ratings {
		switch rating {
		case models.RatingLove:
			stats.Loved++
		case models.RatingMaybe:
			stats.Maybe++
		case models.RatingPass:
			stats.Passed++
		}
	}
	stats.Rated = len(p.Ratings)

	// Only queued names count toward completion; ratings may include
	// names added from elsewhere (favorites, old queues)
	queuedRated := 0
	for _, name := range p.NameOrder {
		if _, ok := p.Ratings[name]; ok {
			queuedRated++
		}
	}
	stats.Remaining = len(p.NameOrder) - queuedRated
	if len(p.NameOrder) > 0 {
		pct := float64(queuedRated) / float64(len(p.NameOrder)) * 100
		stats.PercentComplete = math.Round(pct*10) / 10
	}

	if !p.PersonalizationEnabled && stats.Rated < threshold {
		stats.RatingsUntilPersonal = threshold - stats.Rated
	}

	if p.LastUpdated > 0 {
		stats.LastUpdatedHuman = humanize.RelTime(time.UnixMilli(p.LastUpdated), now, "ago", "from now")
	}

	return stats
}
