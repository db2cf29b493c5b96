// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/baby-pick/catalog"
	"github.com/danielhkuo/baby-pick/cliparse"
	"github.com/danielhkuo/baby-pick/db"
	"github.com/danielhkuo/baby-pick/models"
)

// TestDBURL is an in-memory SQLite database, private to one connection
const TestDBURL = ":memory:"

// SetupTestDB creates a fresh in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Every connection to :memory: is a separate database
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:                 3318,
		DatabaseURL:          TestDBURL,
		DatabaseType:         db.TypeSQLite,
		Partners:             []string{"nick", "nicki"},
		PersonalizeThreshold: cliparse.DefaultPersonalizeThreshold,
	}
}

// TestCatalog returns a small catalog with known attributes. Loved names
// in tests usually come from the Greek two-syllable "-ia" group.
func TestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	c, err := catalog.New([]models.BabyName{
		{Name: "Sophia", Origin: "Greek", Syllables: 3, Meaning: "Wisdom"},
		{Name: "Thalia", Origin: "Greek", Syllables: 3, Meaning: "To blossom"},
		{Name: "Mia", Origin: "Italian", Syllables: 2, Meaning: "Mine"},
		{Name: "Gia", Origin: "Italian", Syllables: 2, Meaning: "God is gracious"},
		{Name: "Zoe", Origin: "Greek", Syllables: 2, Meaning: "Life"},
		{Name: "Luca", Origin: "Italian/Latin", Syllables: 2, Meaning: "Light"},
		{Name: "Noah", Origin: "Hebrew", Syllables: 2, Meaning: "Rest, comfort"},
		{Name: "Ezra", Origin: "Hebrew", Syllables: 2, Meaning: "Help"},
		{Name: "Bartholomew", Origin: "Aramaic", Syllables: 4, Meaning: "Son of Talmai"},
		{Name: "Max", Origin: "Latin", Syllables: 1, Meaning: "Greatest"},
		{Name: "Jack", Origin: "English", Syllables: 1, Meaning: "God is gracious"},
		{Name: "Finn", Origin: "Irish", Syllables: 1, Meaning: "Fair"},
	}, []models.MiddleName{
		{Name: "Rose", Origin: "Latin", Syllables: 1},
		{Name: "James", Origin: "Hebrew", Syllables: 1},
		{Name: "Marie", Origin: "French", Syllables: 2},
	})
	if err != nil {
		t.Fatalf("Failed to build test catalog: %v", err)
	}

	return c
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
