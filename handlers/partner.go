// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/baby-pick/auth"
	"github.com/danielhkuo/baby-pick/cliparse"
	"github.com/danielhkuo/baby-pick/middleware"
	"github.com/danielhkuo/baby-pick/store"
)

// PartnerKeyHeader carries the HMAC partner key when keys are enabled
const PartnerKeyHeader = "X-Partner-Key"

// resolveUser validates the user named in a request and, when partner keys
// are enabled, the X-Partner-Key header. On failure it writes the error
// response and returns false.
func resolveUser(w http.ResponseWriter, r *http.Request, cfg cliparse.Config, raw string) (string, bool) {
	user, err := auth.ResolvePartner(raw, cfg.Partners)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid user")
		return "", false
	}

	if cfg.PartnerKeySalt == "" {
		return user, true
	}

	key := r.Header.Get(PartnerKeyHeader)
	if key == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, PartnerKeyHeader+" header required")
		return "", false
	}
	if err := auth.ValidatePartnerKey(user, key, cfg.PartnerKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid partner key")
		return "", false
	}

	return user, true
}

// requireAnyPartner checks the partner key for routes that span both
// partners. Always passes when keys are disabled.
func requireAnyPartner(w http.ResponseWriter, r *http.Request, cfg cliparse.Config) bool {
	if cfg.PartnerKeySalt == "" {
		return true
	}

	if _, err := auth.KeyOwner(r.Header.Get(PartnerKeyHeader), cfg.PartnerKeySalt, cfg.Partners); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid partner key")
		return false
	}
	return true
}

// requestError is returned from progress updates to reject a request with
// a specific status
type requestError struct {
	status  int
	message string
}

func (e *requestError) Error() string {
	return e.message
}

func reject(status int, message string) error {
	return &requestError{status: status, message: message}
}

// writeStoreError maps errors from the progress store to responses
func writeStoreError(w http.ResponseWriter, err error, user string) {
	var reqErr *requestError
	switch {
	case errors.As(err, &reqErr):
		middleware.ErrorResponse(w, reqErr.status, reqErr.message)
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found")
	default:
		slog.Error("progress store failed", "error", err, "user", user)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}
