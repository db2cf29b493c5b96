// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"
	"time"

	"github.com/danielhkuo/baby-pick/auth"
	"github.com/danielhkuo/baby-pick/models"
	"github.com/danielhkuo/baby-pick/testutil"
)

func TestGetUser_CreatesOnFirstVisit(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewUserHandler(env.progress, env.catalog, env.cfg)

	req := testutil.MakeRequest("GET", "/user?user=nicki", nil, nil)
	w := httptest.NewRecorder()
	handler.GetUser(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var first models.UserProgress
	testutil.AssertJSON(t, w, &first)
	if len(first.NameOrder) != env.catalog.Len() {
		t.Errorf("Expected %d names in queue, got %d", env.catalog.Len(), len(first.NameOrder))
	}
	if first.CurrentIndex != 0 || len(first.Ratings) != 0 {
		t.Errorf("Expected fresh progress, got %+v", first)
	}
	if first.Phase != models.PhaseFirst {
		t.Errorf("Expected phase first, got %q", first.Phase)
	}
	if first.LastUpdated == 0 {
		t.Error("Expected last_updated set")
	}

	// Second visit returns the stored queue, not a new shuffle
	req = testutil.MakeRequest("GET", "/user?user=NICKI", nil, nil)
	w = httptest.NewRecorder()
	handler.GetUser(w, req)

	var second models.UserProgress
	testutil.AssertJSON(t, w, &second)
	if !slices.Equal(first.NameOrder, second.NameOrder) {
		t.Error("Expected same queue on second visit")
	}
}

func TestGetUser_InvalidUser(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewUserHandler(env.progress, env.catalog, env.cfg)

	for _, path := range []string{"/user", "/user?user=bob"} {
		req := testutil.MakeRequest("GET", path, nil, nil)
		w := httptest.NewRecorder()
		handler.GetUser(w, req)
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	}
}

func TestSaveUser(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewUserHandler(env.progress, env.catalog, env.cfg)

	valid := models.DefaultProgress([]string{"Mia", "Zoe"})
	valid.Ratings["Mia"] = models.RatingLove
	valid.CurrentIndex = 1
	valid.HasSeenTutorial = true

	badRating := models.DefaultProgress([]string{"Mia"})
	badRating.Ratings["Mia"] = "adore"

	badIndex := models.DefaultProgress([]string{"Mia"})
	badIndex.CurrentIndex = 5

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
	}{
		{
			name:           "valid replace",
			requestBody:    models.SaveProgressRequest{User: "nick", Progress: valid},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing progress",
			requestBody:    models.SaveProgressRequest{User: "nick"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid rating value",
			requestBody:    models.SaveProgressRequest{User: "nick", Progress: badRating},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "index out of range",
			requestBody:    models.SaveProgressRequest{User: "nick", Progress: badIndex},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid user",
			requestBody:    models.SaveProgressRequest{User: "zed", Progress: valid},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/user", tt.requestBody, nil)
			w := httptest.NewRecorder()
			handler.SaveUser(w, req)
			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}

	stored := env.load(t, "nick")
	if stored.Ratings["Mia"] != models.RatingLove || stored.CurrentIndex != 1 || !stored.HasSeenTutorial {
		t.Errorf("Expected replaced progress, got %+v", stored)
	}
}

func TestGetStats(t *testing.T) {
	env := setupTestEnv(t)
	handler := NewUserHandler(env.progress, env.catalog, env.cfg)

	p := models.DefaultProgress([]string{"Mia", "Zoe", "Max", "Finn"})
	p.Ratings["Mia"] = models.RatingLove
	p.Ratings["Zoe"] = models.RatingMaybe
	p.Ratings["Max"] = models.RatingPass
	p.CurrentIndex = 3
	env.seed(t, "nick", p)

	req := testutil.MakeRequest("GET", "/user/stats?user=nick", nil, nil)
	w := httptest.NewRecorder()
	handler.GetStats(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var stats models.ProgressStats
	testutil.AssertJSON(t, w, &stats)
	if stats.Loved != 1 || stats.Maybe != 1 || stats.Passed != 1 || stats.Rated != 3 {
		t.Errorf("Unexpected counts: %+v", stats)
	}
	if stats.Remaining != 1 {
		t.Errorf("Expected 1 remaining, got %d", stats.Remaining)
	}
	if stats.PercentComplete != 75 {
		t.Errorf("Expected 75%% complete, got %v", stats.PercentComplete)
	}
	if stats.RatingsUntilPersonal != 0 {
		t.Errorf("Expected threshold reached, got %d to go", stats.RatingsUntilPersonal)
	}
	if stats.LastUpdatedHuman == "" {
		t.Error("Expected last_updated_human")
	}

	req = testutil.MakeRequest("GET", "/user/stats?user=nicki", nil, nil)
	w = httptest.NewRecorder()
	handler.GetStats(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	p := models.DefaultProgress([]string{"Mia", "Zoe", "Max"})
	p.Ratings["Mia"] = models.RatingLove
	p.Ratings["Elsewhere"] = models.RatingPass
	p.LastUpdated = now.Add(-2 * time.Hour).UnixMilli()

	stats := ComputeStats("nick", p, 20, now)

	if stats.Rated != 2 {
		t.Errorf("Expected 2 rated, got %d", stats.Rated)
	}
	if stats.Remaining != 2 {
		t.Errorf("Expected names outside the queue not counted, got %d remaining", stats.Remaining)
	}
	if stats.PercentComplete != 33.3 {
		t.Errorf("Expected 33.3, got %v", stats.PercentComplete)
	}
	if stats.RatingsUntilPersonal != 18 {
		t.Errorf("Expected 18 to go, got %d", stats.RatingsUntilPersonal)
	}
	if stats.LastUpdatedHuman != "2 hours ago" {
		t.Errorf("Expected \"2 hours ago\", got %q", stats.LastUpdatedHuman)
	}

	empty := ComputeStats("nick", models.DefaultProgress(nil), 20, now)
	if empty.PercentComplete != 0 || empty.LastUpdatedHuman != "" {
		t.Errorf("Unexpected stats for empty progress: %+v", empty)
	}
}

func TestPartnerKeys(t *testing.T) {
	env := setupTestEnv(t)
	env.cfg.PartnerKeySalt = "test-partner-salt"
	handler := NewUserHandler(env.progress, env.catalog, env.cfg)

	nickKey := auth.GeneratePartnerKey("nick", env.cfg.PartnerKeySalt)
	nickiKey := auth.GeneratePartnerKey("nicki", env.cfg.PartnerKeySalt)

	tests := []struct {
		name           string
		key            string
		expectedStatus int
	}{
		{name: "missing key", key: "", expectedStatus: http.StatusUnauthorized},
		{name: "other partner's key", key: nickiKey, expectedStatus: http.StatusUnauthorized},
		{name: "garbage key", key: "not-a-key", expectedStatus: http.StatusUnauthorized},
		{name: "own key", key: nickKey, expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.key != "" {
				headers[PartnerKeyHeader] = tt.key
			}
			req := testutil.MakeRequest("GET", "/user?user=nick", nil, headers)
			w := httptest.NewRecorder()
			handler.GetUser(w, req)
			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}
}
