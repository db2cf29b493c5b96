// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"testing"

	"github.com/danielhkuo/baby-pick/catalog"
	"github.com/danielhkuo/baby-pick/cliparse"
	"github.com/danielhkuo/baby-pick/models"
	"github.com/danielhkuo/baby-pick/personalize"
	"github.com/danielhkuo/baby-pick/store"
	"github.com/danielhkuo/baby-pick/testutil"
)

// testEnv bundles the dependencies every handler test needs
type testEnv struct {
	cfg       cliparse.Config
	catalog   *catalog.Catalog
	progress  *store.ProgressStore
	reorderer personalize.Reorderer
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { db.Close() })

	cfg := testutil.GetTestConfig()
	cfg.PersonalizeThreshold = 3

	return &testEnv{
		cfg:       cfg,
		catalog:   testutil.TestCatalog(t),
		progress:  store.NewProgressStore(store.NewSQLStore(db)),
		reorderer: personalize.Gated{Next: personalize.Heuristic{}, MinRatings: cfg.PersonalizeThreshold},
	}
}

// catalogOrder is the test catalog in a fixed queue order
var catalogOrder = []string{
	"Sophia", "Thalia", "Max", "Jack", "Finn", "Bartholomew",
	"Mia", "Gia", "Zoe", "Luca", "Noah", "Ezra",
}

func (e *testEnv) seed(t *testing.T, user string, p *models.UserProgress) {
	t.Helper()
	if err := e.progress.Replace(context.Background(), user, p); err != nil {
		t.Fatalf("Failed to seed progress: %v", err)
	}
}

func (e *testEnv) load(t *testing.T, user string) *models.UserProgress {
	t.Helper()
	p, err := e.progress.Load(context.Background(), user)
	if err != nil {
		t.Fatalf("Failed to load progress: %v", err)
	}
	return p
}

// seedQueue stores a fresh record with catalogOrder as the queue
func (e *testEnv) seedQueue(t *testing.T, user string) *models.UserProgress {
	t.Helper()
	p := models.DefaultProgress(append([]string(nil), catalogOrder...))
	e.seed(t, user, p)
	return p
}
