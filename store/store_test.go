// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/baby-pick/models"
	"github.com/danielhkuo/baby-pick/testutil"
)

func TestSQLStore_GetSet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	s := NewSQLStore(db)
	ctx := context.Background()

	if _, err := s.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := s.Set(ctx, "k", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != `{"a":1}` {
		t.Errorf("expected stored value, got %s", got)
	}

	// Upsert replaces
	if err := s.Set(ctx, "k", []byte(`{"a":2}`)); err != nil {
		t.Fatalf("second Set failed: %v", err)
	}
	got, _ = s.Get(ctx, "k")
	if string(got) != `{"a":2}` {
		t.Errorf("expected replaced value, got %s", got)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM kv_entry`).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("expected 1 row after upsert, got %d", count)
	}
}

func newTestProgressStore(t *testing.T) *ProgressStore {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { db.Close() })

	return NewProgressStore(NewSQLStore(db))
}

func TestProgressStore_LoadOrCreate(t *testing.T) {
	s := newTestProgressStore(t)
	ctx := context.Background()
	s.now = func() time.Time { return time.UnixMilli(1700000000000) }

	calls := 0
	create := func() *models.UserProgress {
		calls++
		return models.DefaultProgress([]string{"Mia", "Zoe"})
	}

	p, created, err := s.LoadOrCreate(ctx, "nick", create)
	if err != nil {
		t.Fatalf("LoadOrCreate failed: %v", err)
	}
	if !created {
		t.Error("expected first call to create")
	}
	if p.LastUpdated != 1700000000000 {
		t.Errorf("expected last_updated stamped, got %d", p.LastUpdated)
	}

	p, created, err = s.LoadOrCreate(ctx, "nick", create)
	if err != nil {
		t.Fatalf("second LoadOrCreate failed: %v", err)
	}
	if created {
		t.Error("expected second call to load")
	}
	if calls != 1 {
		t.Errorf("expected create called once, got %d", calls)
	}
	if len(p.NameOrder) != 2 || p.NameOrder[0] != "Mia" {
		t.Errorf("expected stored order, got %v", p.NameOrder)
	}
	if p.Ratings == nil || p.CustomNames == nil {
		t.Error("expected collections to be non-nil after load")
	}
}

func TestProgressStore_Update(t *testing.T) {
	s := newTestProgressStore(t)
	ctx := context.Background()

	if _, err := s.Update(ctx, "nick", func(p *models.UserProgress) error { return nil }); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing user, got %v", err)
	}

	if err := s.Replace(ctx, "nick", models.DefaultProgress([]string{"Mia"})); err != nil {
		t.Fatal(err)
	}

	p, err := s.Update(ctx, "nick", func(p *models.UserProgress) error {
		p.Ratings["Mia"] = models.RatingLove
		p.CurrentIndex = 1
		return nil
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if p.Ratings["Mia"] != models.RatingLove {
		t.Errorf("expected returned progress to carry the change")
	}

	// A failing fn writes nothing
	boom := errors.New("boom")
	_, err = s.Update(ctx, "nick", func(p *models.UserProgress) error {
		p.Ratings["Mia"] = models.RatingPass
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected fn error, got %v", err)
	}

	stored, err := s.Load(ctx, "nick")
	if err != nil {
		t.Fatal(err)
	}
	if stored.Ratings["Mia"] != models.RatingLove || stored.CurrentIndex != 1 {
		t.Errorf("expected first update persisted only, got %+v", stored)
	}
}

func TestProgressStore_UsersAreSeparate(t *testing.T) {
	s := newTestProgressStore(t)
	ctx := context.Background()

	a := models.DefaultProgress([]string{"Mia"})
	a.Ratings["Mia"] = models.RatingLove
	if err := s.Replace(ctx, "nick", a); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Load(ctx, "nicki"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected nicki to have no record, got %v", err)
	}
}

func TestProgressStore_ConcurrentUpdates(t *testing.T) {
	s := newTestProgressStore(t)
	ctx := context.Background()

	if err := s.Replace(ctx, "nick", models.DefaultProgress(nil)); err != nil {
		t.Fatal(err)
	}

	const n = 25
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.Update(ctx, "nick", func(p *models.UserProgress) error {
				p.Ratings[fmt.Sprintf("Name%d", i)] = models.RatingMaybe
				return nil
			})
			if err != nil {
				t.Errorf("update %d failed: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	p, err := s.Load(ctx, "nick")
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Ratings) != n {
		t.Errorf("expected %d ratings with no lost updates, got %d", n, len(p.Ratings))
	}
}

func TestUserKey(t *testing.T) {
	if got := UserKey("nicki"); got != "babynamer:nicki" {
		t.Errorf("unexpected key %q", got)
	}
}
