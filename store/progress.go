// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/danielhkuo/baby-pick/models"
)

const keyPrefix = "babynamer:"

// UserKey returns the KV key holding a partner's progress.
func UserKey(user string) string {
	return keyPrefix + user
}

// ProgressStore persists one UserProgress blob per partner. Writes through
// Update, Replace and LoadOrCreate are serialized per partner.
type ProgressStore struct {
	kv  KV
	now func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewProgressStore(kv KV) *ProgressStore {
	return &ProgressStore{
		kv:    kv,
		now:   time.Now,
		locks: make(map[string]*sync.Mutex),
	}
}

// Load returns the partner's progress, or ErrNotFound.
func (s *ProgressStore) Load(ctx context.Context, user string) (*models.UserProgress, error) {
	data, err := s.kv.Get(ctx, UserKey(user))
	if err != nil {
		return nil, err
	}

	var p models.UserProgress
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode progress for %s: %w", user, err)
	}
	normalize(&p)

	return &p, nil
}

// Replace overwrites the partner's progress.
func (s *ProgressStore) Replace(ctx context.Context, user string, p *models.UserProgress) error {
	unlock := s.lock(user)
	defer unlock()

	return s.save(ctx, user, p)
}

// LoadOrCreate returns existing progress, or stores and returns the record
// built by create. The bool reports whether a record was created.
func (s *ProgressStore) LoadOrCreate(ctx context.Context, user string, create func() *models.UserProgress) (*models.UserProgress, bool, error) {
	unlock := s.lock(user)
	defer unlock()

	p, err := s.Load(ctx, user)
	if err == nil {
		return p, false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, false, err
	}

	p = create()
	normalize(p)
	if err := s.save(ctx, user, p); err != nil {
		return nil, false, err
	}
	return p, true, nil
}

// Update applies fn to the stored progress and saves the result. If fn
// returns an error nothing is written.
func (s *ProgressStore) Update(ctx context.Context, user string, fn func(p *models.UserProgress) error) (*models.UserProgress, error) {
	unlock := s.lock(user)
	defer unlock()

	p, err := s.Load(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := fn(p); err != nil {
		return nil, err
	}

	if err := s.save(ctx, user, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProgressStore) save(ctx context.Context, user string, p *models.UserProgress) error {
	p.LastUpdated = s.now().UnixMilli()

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode progress for %s: %w", user, err)
	}

	return s.kv.Set(ctx, UserKey(user), data)
}

// lock acquires the partner's mutex and returns its release func.
func (s *ProgressStore) lock(user string) func() {
	s.mu.Lock()
	m, ok := s.locks[user]
	if !ok {
		m = &sync.Mutex{}
		s.locks[user] = m
	}
	s.mu.Unlock()

	m.Lock()
	return m.Unlock
}

func normalize(p *models.UserProgress) {
	if p.Ratings == nil {
		p.Ratings = models.Ratings{}
	}
	if p.CustomNames == nil {
		p.CustomNames = []models.CustomName{}
	}
	if p.NameOrder == nil {
		p.NameOrder = []string{}
	}
	if p.Phase == "" {
		p.Phase = models.PhaseFirst
	}
}
