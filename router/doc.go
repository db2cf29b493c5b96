// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Baby Pick API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cat, cfg)

# Endpoints

Health:

	GET /health

Progress:

	GET  /user?user=       - Load or create progress
	POST /user             - Replace progress
	GET  /user/stats?user= - Rating counts and completion

Ratings:

	POST   /ratings     - Rate a name
	DELETE /ratings     - Undo a rating
	POST   /personalize - Re-rank the queue

Names:

	GET  /names   - Catalog
	POST /names   - Add a custom name
	GET  /compare - Names both partners like

Middle names:

	POST /middle-names/start   - Enter the middle-name phase
	POST /middle-names/active  - Switch active first name
	POST /middle-names/ratings - Rate a middle name

# Handler Initialization

The router builds one progress store on the given database and one gated
reorderer, and shares them between handlers:

	progress := store.NewProgressStore(store.NewSQLStore(db))
	reorderer := personalize.Gated{Next: personalize.Heuristic{}, MinRatings: cfg.PersonalizeThreshold}
*/
package router
