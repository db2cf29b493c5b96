// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"slices"
	"strings"
)

var (
	ErrInvalidPartnerKey = errors.New("invalid partner key")
	ErrUnknownPartner    = errors.New("unknown partner")
)

// ResolvePartner normalizes user and checks it against the configured
// partners. Matching is case-insensitive.
func ResolvePartner(user string, partners []string) (string, error) {
	u := strings.ToLower(strings.TrimSpace(user))
	if u == "" || !slices.Contains(partners, u) {
		return "", ErrUnknownPartner
	}
	return u, nil
}

// GeneratePartnerKey creates an HMAC-based key for a partner
// This is deterministic and verifiable
func GeneratePartnerKey(user, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(user))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidatePartnerKey checks if the provided key is valid for the partner
func ValidatePartnerKey(user, key, salt string) error {
	expected := GeneratePartnerKey(user, salt)
	if !hmac.Equal([]byte(key), []byte(expected)) {
		return ErrInvalidPartnerKey
	}
	return nil
}

// KeyOwner returns the partner that key belongs to.
func KeyOwner(key, salt string, partners []string) (string, error) {
	for _, p := range partners {
		if ValidatePartnerKey(p, key, salt) == nil {
			return p, nil
		}
	}
	return "", ErrInvalidPartnerKey
}
