// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"strings"
	"testing"
)

var partners = []string{"nick", "nicki"}

func TestResolvePartner(t *testing.T) {
	tests := []struct {
		name    string
		user    string
		want    string
		wantErr bool
	}{
		{"exact", "nick", "nick", false},
		{"uppercase", "NICKI", "nicki", false},
		{"whitespace", "  Nick ", "nick", false},
		{"empty", "", "", true},
		{"unknown", "mallory", "", true},
		{"prefix only", "nic", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolvePartner(tt.user, partners)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownPartner) {
					t.Errorf("expected ErrUnknownPartner, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolvePartner(%q) = %q, want %q", tt.user, got, tt.want)
			}
		})
	}
}

func TestGeneratePartnerKey(t *testing.T) {
	salt := "test-salt"

	// Deterministic
	key1 := GeneratePartnerKey("nick", salt)
	key2 := GeneratePartnerKey("nick", salt)
	if key1 != key2 {
		t.Errorf("GeneratePartnerKey() not deterministic: %s != %s", key1, key2)
	}

	// Different partners produce different keys
	if key1 == GeneratePartnerKey("nicki", salt) {
		t.Error("GeneratePartnerKey() should produce different keys for different partners")
	}

	// Different salts produce different keys
	if key1 == GeneratePartnerKey("nick", "other-salt") {
		t.Error("GeneratePartnerKey() should produce different keys for different salts")
	}

	// URL-safe, no padding
	if strings.ContainsAny(key1, "+/=") {
		t.Errorf("GeneratePartnerKey() should be URL-safe without padding: %s", key1)
	}
}

func TestValidatePartnerKey(t *testing.T) {
	salt := "test-salt"
	valid := GeneratePartnerKey("nick", salt)

	tests := []struct {
		name    string
		user    string
		key     string
		wantErr bool
	}{
		{"valid key", "nick", valid, false},
		{"wrong partner", "nicki", valid, true},
		{"empty key", "nick", "", true},
		{"tampered key", "nick", valid + "x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePartnerKey(tt.user, tt.key, salt)
			if tt.wantErr && !errors.Is(err, ErrInvalidPartnerKey) {
				t.Errorf("expected ErrInvalidPartnerKey, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestKeyOwner(t *testing.T) {
	salt := "test-salt"

	owner, err := KeyOwner(GeneratePartnerKey("nicki", salt), salt, partners)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if owner != "nicki" {
		t.Errorf("expected nicki, got %s", owner)
	}

	if _, err := KeyOwner("bogus", salt, partners); !errors.Is(err, ErrInvalidPartnerKey) {
		t.Errorf("expected ErrInvalidPartnerKey, got %v", err)
	}
}
