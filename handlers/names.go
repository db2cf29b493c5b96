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

type NamesHandler struct {
	progress *store.ProgressStore
	catalog  *catalog.Catalog
	cfg      cliparse.Config
}

func NewNamesHandler(progress *store.ProgressStore, cat *catalog.Catalog, cfg cliparse.Config) *NamesHandler {
	return &NamesHandler{progress: progress, catalog: cat, cfg: cfg}
}

// GetNames handles GET /names
func (h *NamesHandler) GetNames(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.CatalogResponse{
		Names:       h.catalog.Names(),
		MiddleNames: h.catalog.MiddleNames(),
	})
}

// AddName handles POST /names
// The custom name is inserted at the current position so it comes up next
func (h *NamesHandler) AddName(w http.ResponseWriter, r *http.Request) {
	var req models.AddNameRequest
	if err := middleware.ParseAndValidate(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	user, ok := resolveUser(w, r, h.cfg, req.User)
	if !ok {
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	custom := models.CustomName{
		Name:      name,
		Origin:    strings.TrimSpace(req.Origin),
		Meaning:   strings.TrimSpace(req.Meaning),
		Phonetic:  strings.TrimSpace(req.Phonetic),
		Nicknames: trimAll(req.Nicknames),
	}

	p, err := h.progress.Update(r.Context(), user, func(p *models.UserProgress) error {
		if slices.Contains(p.NameOrder, name) {
			return reject(http.StatusConflict, "Name already in queue")
		}

		p.CustomNames = append(p.CustomNames, custom)
		at := min(max(p.CurrentIndex, 0), len(p.NameOrder))
		p.NameOrder = slices.Insert(p.NameOrder, at, name)
		return nil
	})
	if err != nil {
		writeStoreError(w, err, user)
		return
	}

	slog.Info("custom name added", "user", user, "name", name, "queue_length", len(p.NameOrder))

	middleware.JSONResponse(w, http.StatusCreated, custom)
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
