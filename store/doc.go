// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists partner progress in a key-value table.

# KV

SQLStore is a get/set store over the kv_entry table:

	kv := store.NewSQLStore(conn)
	err := kv.Set(ctx, "key", []byte(`{}`))
	value, err := kv.Get(ctx, "key") // ErrNotFound when missing

# Progress

ProgressStore keeps one JSON record per partner under "babynamer:<user>":

	progress := store.NewProgressStore(kv)
	p, err := progress.Update(ctx, "nick", func(p *models.UserProgress) error {
		p.Ratings["Mia"] = models.RatingLove
		return nil
	})

Update, Replace and LoadOrCreate hold a per-partner lock for the whole
read-modify-write, so concurrent requests from several devices do not lose
ratings. The lock is in-process; run a single server per database.
*/
package store
