// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/baby-pick/catalog"
	"github.com/danielhkuo/baby-pick/cliparse"
	"github.com/danielhkuo/baby-pick/middleware"
	"github.com/danielhkuo/baby-pick/models"
	"github.com/danielhkuo/baby-pick/personalize"
	"github.com/danielhkuo/baby-pick/store"
)

// errBelowThreshold aborts the update without writing
var errBelowThreshold = errors.New("not enough ratings")

type PersonalizeHandler struct {
	progress  *store.ProgressStore
	catalog   *catalog.Catalog
	cfg       cliparse.Config
	reorderer personalize.Reorderer
}

func NewPersonalizeHandler(progress *store.ProgressStore, cat *catalog.Catalog, cfg cliparse.Config, reorderer personalize.Reorderer) *PersonalizeHandler {
	return &PersonalizeHandler{progress: progress, catalog: cat, cfg: cfg, reorderer: reorderer}
}

// Personalize handles POST /personalize
// Explicit trigger. Re-running after personalization reorders again with
// the latest ratings.
func (h *PersonalizeHandler) Personalize(w http.ResponseWriter, r *http.Request) {
	var req models.PersonalizeRequest
	if err := middleware.ParseAndValidate(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	user, ok := resolveUser(w, r, h.cfg, req.User)
	if !ok {
		return
	}

	p, err := h.progress.Update(r.Context(), user, func(p *models.UserProgress) error {
		if len(p.Ratings) < h.cfg.PersonalizeThreshold {
			return errBelowThreshold
		}
		applyPersonalization(p, h.catalog, h.reorderer)
		return nil
	})
	if errors.Is(err, errBelowThreshold) {
		middleware.JSONResponse(w, http.StatusOK, models.PersonalizeResponse{
			OK:      false,
			Message: fmt.Sprintf("Need at least %d ratings to personalize", h.cfg.PersonalizeThreshold),
		})
		return
	}
	if err != nil {
		writeStoreError(w, err, user)
		return
	}

	slog.Info("queue personalized", "user", user, "rated", len(p.Ratings))

	middleware.JSONResponse(w, http.StatusOK, models.PersonalizeResponse{
		OK:           true,
		Personalized: true,
	})
}
