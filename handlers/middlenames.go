// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/danielhkuo/baby-pick/catalog"
	"github.com/danielhkuo/baby-pick/cliparse"
	"github.com/danielhkuo/baby-pick/middleware"
	"github.com/danielhkuo/baby-pick/models"
	"github.com/danielhkuo/baby-pick/store"
)

type MiddleNameHandler struct {
	progress *store.ProgressStore
	catalog  *catalog.Catalog
	cfg      cliparse.Config
}

func NewMiddleNameHandler(progress *store.ProgressStore, cat *catalog.Catalog, cfg cliparse.Config) *MiddleNameHandler {
	return &MiddleNameHandler{progress: progress, catalog: cat, cfg: cfg}
}

// StartMiddleNames handles POST /middle-names/start
// Moves the user into the middle-name phase for their shortlisted first names
func (h *MiddleNameHandler) StartMiddleNames(w http.ResponseWriter, r *http.Request) {
	var req models.StartMiddleNamesRequest
	if err := middleware.ParseAndValidate(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	user, ok := resolveUser(w, r, h.cfg, req.User)
	if !ok {
		return
	}

	firstNames := make([]string, 0, len(req.FirstNames))
	for _, name := range req.FirstNames {
		name = strings.TrimSpace(name)
		if name == "" {
			middleware.ErrorResponse(w, http.StatusBadRequest, "first_names must not contain blanks")
			return
		}
		if slices.Contains(firstNames, name) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Duplicate first name: "+name)
			return
		}
		firstNames = append(firstNames, name)
	}

	p, err := h.progress.Update(r.Context(), user, func(p *models.UserProgress) error {
		for _, name := range firstNames {
			rating := p.Ratings[name]
			if rating != models.RatingLove && rating != models.RatingMaybe {
				return reject(http.StatusBadRequest, "First name not on shortlist: "+name)
			}
		}

		p.Phase = models.PhaseMiddle
		p.TopFirstNames = firstNames
		p.MiddleNameOrder = h.catalog.ShuffledMiddleNames()
		p.MiddleNameIndex = 0
		active := firstNames[0]
		p.ActiveFirstName = &active
		if p.MiddleNameRatings == nil {
			p.MiddleNameRatings = make(map[string]models.Ratings)
		}
		return nil
	})
	if err != nil {
		writeStoreError(w, err, user)
		return
	}

	slog.Info("middle-name phase started", "user", user, "first_names", len(p.TopFirstNames))

	middleware.JSONResponse(w, http.StatusOK, p)
}

// SetActiveFirstName handles POST /middle-names/active
func (h *MiddleNameHandler) SetActiveFirstName(w http.ResponseWriter, r *http.Request) {
	var req models.SetActiveFirstNameRequest
	if err := middleware.ParseAndValidate(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	user, ok := resolveUser(w, r, h.cfg, req.User)
	if !ok {
		return
	}

	p, err := h.progress.Update(r.Context(), user, func(p *models.UserProgress) error {
		if p.Phase != models.PhaseMiddle {
			return reject(http.StatusConflict, "Middle-name phase not started")
		}
		if !slices.Contains(p.TopFirstNames, req.FirstName) {
			return reject(http.StatusBadRequest, "First name not in top list")
		}

		active := req.FirstName
		p.ActiveFirstName = &active
		p.MiddleNameIndex = 0
		return nil
	})
	if err != nil {
		writeStoreError(w, err, user)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, p)
}

// RateMiddleName handles POST /middle-names/ratings
// Ratings are kept per first name so each pairing is judged on its own
func (h *MiddleNameHandler) RateMiddleName(w http.ResponseWriter, r *http.Request) {
	var req models.RateMiddleNameRequest
	if err := middleware.ParseAndValidate(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	user, ok := resolveUser(w, r, h.cfg, req.User)
	if !ok {
		return
	}

	p, err := h.progress.Update(r.Context(), user, func(p *models.UserProgress) error {
		if p.Phase != models.PhaseMiddle || p.ActiveFirstName == nil {
			return reject(http.StatusConflict, "Middle-name phase not started")
		}

		first := *p.ActiveFirstName
		if p.MiddleNameRatings == nil {
			p.MiddleNameRatings = make(map[string]models.Ratings)
		}
		if p.MiddleNameRatings[first] == nil {
			p.MiddleNameRatings[first] = models.Ratings{}
		}
		p.MiddleNameRatings[first][req.MiddleName] = req.Rating
		p.MiddleNameIndex = min(p.MiddleNameIndex+1, len(p.MiddleNameOrder))
		return nil
	})
	if err != nil {
		writeStoreError(w, err, user)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, p)
}
