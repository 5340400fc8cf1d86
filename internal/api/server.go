// Nookipedia API - public REST API for the Nookipedia wiki's structured data
// SPDX-License-Identifier: MIT
// https://github.com/nookipedia/nookipedia-api

package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nookipedia/nookipedia-api/internal/cargo"
	"github.com/nookipedia/nookipedia-api/internal/config"
	"github.com/nookipedia/nookipedia-api/internal/metrics"
	"github.com/nookipedia/nookipedia-api/internal/middleware"
)

// KeyStore authorizes client and admin API keys and issues new ones.
// *apikey.Store satisfies it; tests substitute a stub.
type KeyStore interface {
	Authorize(ctx context.Context, key string) error
	AuthorizeAdmin(ctx context.Context, key string) error
	Insert(ctx context.Context, key, email, project string) error
}

// Server wires configuration, the cargo client, and the key store into the
// HTTP handler set.
type Server struct {
	cfg  *config.Config
	wiki *cargo.Client
	keys KeyStore
}

func New(cfg *config.Config, wiki *cargo.Client, keys KeyStore) *Server {
	return &Server{cfg: cfg, wiki: wiki, keys: keys}
}

// Router builds the full route tree. Every data endpoint sits behind client
// key authorization; /admin/gen_key requires an admin key; /health and
// /metrics are open.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.Server.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Accept-Version", "Content-Type", "X-API-KEY"},
	}))
	if s.cfg.Server.RateLimitReqs > 0 {
		r.Use(httprate.Limit(s.cfg.Server.RateLimitReqs, s.cfg.Server.RateLimitWindow,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
				metrics.APIRateLimitHits.WithLabelValues(r.URL.Path).Inc()
				writeError(w, http.StatusTooManyRequests,
					"Rate limit exceeded.", "Too many requests; slow down and try again.")
			}),
		))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound,
			"Resource not found.", "Please ensure requested resource exists.")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed,
			"Method not allowed.", "The method you requested (GET, POST, etc.) is not valid for this endpoint.")
	})

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(s.requireKey)

		r.Get("/villagers", s.handleVillagerList)

		r.Get("/nh/fish", s.handleFishList)
		r.Get("/nh/fish/{name}", s.handleFish)
		r.Get("/nh/bugs", s.handleBugList)
		r.Get("/nh/bugs/{name}", s.handleBug)
		r.Get("/nh/sea", s.handleSeaList)
		r.Get("/nh/sea/{name}", s.handleSeaCreature)

		r.Get("/nh/art", s.handleArtList)
		r.Get("/nh/art/{name}", s.handleArt)
		r.Get("/nh/recipes", s.handleRecipeList)
		r.Get("/nh/recipes/{name}", s.handleRecipe)
		r.Get("/nh/events", s.handleEventList)

		r.Get("/nh/furniture", s.handleFurnitureList)
		r.Get("/nh/furniture/{name}", s.handleFurniture)
		r.Get("/nh/clothing", s.handleClothingList)
		r.Get("/nh/clothing/{name}", s.handleClothing)
		r.Get("/nh/photos", s.handlePhotoList)
		r.Get("/nh/photos/{name}", s.handlePhoto)
		r.Get("/nh/gyroids", s.handleGyroidList)
		r.Get("/nh/gyroids/{name}", s.handleGyroid)
		r.Get("/nh/tools", s.handleToolList)
		r.Get("/nh/tools/{name}", s.handleTool)
		r.Get("/nh/interior", s.handleInteriorList)
		r.Get("/nh/interior/{name}", s.handleInterior)
		r.Get("/nh/items", s.handleItemList)
		r.Get("/nh/items/{name}", s.handleItem)

		r.Get("/nh/fossils/groups", s.handleFossilGroupList)
		r.Get("/nh/fossils/groups/{name}", s.handleFossilGroup)
		r.Get("/nh/fossils/individuals", s.handleFossilList)
		r.Get("/nh/fossils/individuals/{name}", s.handleFossil)
		r.Get("/nh/fossils/all", s.handleFossilAllList)
		r.Get("/nh/fossils/all/{name}", s.handleFossilAll)
	})

	r.Post("/admin/gen_key", s.handleGenerateKey)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
