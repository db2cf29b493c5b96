// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/baby-pick/catalog"
	"github.com/danielhkuo/baby-pick/cliparse"
	"github.com/danielhkuo/baby-pick/handlers"
	"github.com/danielhkuo/baby-pick/middleware"
	"github.com/danielhkuo/baby-pick/personalize"
	"github.com/danielhkuo/baby-pick/store"
)

func NewRouter(db *sql.DB, cat *catalog.Catalog, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Shared dependencies
	progress := store.NewProgressStore(store.NewSQLStore(db))
	reorderer := personalize.Gated{Next: personalize.Heuristic{}, MinRatings: cfg.PersonalizeThreshold}

	// Initialize handlers
	userHandler := handlers.NewUserHandler(progress, cat, cfg)
	ratingHandler := handlers.NewRatingHandler(progress, cat, cfg, reorderer)
	personalizeHandler := handlers.NewPersonalizeHandler(progress, cat, cfg, reorderer)
	namesHandler := handlers.NewNamesHandler(progress, cat, cfg)
	compareHandler := handlers.NewCompareHandler(progress, cfg)
	middleNameHandler := handlers.NewMiddleNameHandler(progress, cat, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Partner progress
	mux.HandleFunc("GET /user", middleware.WithLogging(userHandler.GetUser))
	mux.HandleFunc("POST /user", middleware.WithLogging(userHandler.SaveUser))
	mux.HandleFunc("GET /user/stats", middleware.WithLogging(userHandler.GetStats))

	// Rating and personalization
	mux.HandleFunc("POST /ratings", middleware.WithLogging(ratingHandler.RateName))
	mux.HandleFunc("DELETE /ratings", middleware.WithLogging(ratingHandler.UndoRating))
	mux.HandleFunc("POST /personalize", middleware.WithLogging(personalizeHandler.Personalize))

	// Catalog and custom names
	mux.HandleFunc("GET /names", middleware.WithLogging(namesHandler.GetNames))
	mux.HandleFunc("POST /names", middleware.WithLogging(namesHandler.AddName))

	// Partner agreement
	mux.HandleFunc("GET /compare", middleware.WithLogging(compareHandler.Compare))

	// Middle names
	mux.HandleFunc("POST /middle-names/start", middleware.WithLogging(middleNameHandler.StartMiddleNames))
	mux.HandleFunc("POST /middle-names/active", middleware.WithLogging(middleNameHandler.SetActiveFirstName))
	mux.HandleFunc("POST /middle-names/ratings", middleware.WithLogging(middleNameHandler.RateMiddleName))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("baby-pick API v1"))
	})

	return mux
}
