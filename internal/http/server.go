// Package httpapi exposes the matching, room-style, search, session, and
// cache endpoints over a chi router.
package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/denisok6893-rgb/furniture-style-matching/internal/cache"
	"github.com/denisok6893-rgb/furniture-style-matching/internal/domain"
	"github.com/denisok6893-rgb/furniture-style-matching/internal/matching"
	"github.com/denisok6893-rgb/furniture-style-matching/internal/search"
	"github.com/denisok6893-rgb/furniture-style-matching/internal/session"
)

// ProductRepo lists persisted products. Implemented by storage.SQLiteStore.
type ProductRepo interface {
	ListProducts(f domain.SearchFilters, limit, offset int) ([]domain.Item, int, error)
	GetProduct(id string) (domain.Item, bool, error)
}

type Server struct {
	Log      zerolog.Logger
	Engine   *matching.Engine
	Search   *search.Service
	Sessions *session.Manager
	Cache    *cache.Tiered
	Products ProductRepo
}

func NewServer(log zerolog.Logger, engine *matching.Engine, searchSvc *search.Service, sessions *session.Manager, tiered *cache.Tiered, products ProductRepo) *Server {
	return &Server{
		Log:      log,
		Engine:   engine,
		Search:   searchSvc,
		Sessions: sessions,
		Cache:    tiered,
		Products: products,
	}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(s.requestLogger)
	r.Use(s.sessionMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Route("/search", func(r chi.Router) {
			r.Post("/", s.handleSearch)
			r.Get("/sources", s.handleSearchSources)
		})

		r.Route("/matching", func(r chi.Router) {
			r.Post("/find-matches", s.handleFindMatches)
			r.Post("/score", s.handleScore)
		})

		r.Route("/room-style", func(r chi.Router) {
			r.Post("/analyze", s.handleRoomAnalyze)
			r.Get("/suggestions/{roomType}", s.handleRoomSuggestions)
			r.Post("/compatibility", s.handleCompatibility)
			r.Get("/palettes/{style}", s.handleStylePalette)
		})

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.handleCreateSession)
			r.Get("/current", s.handleCurrentSession)
			r.Put("/preferences", s.handleUpdatePreferences)
			r.Get("/history", s.handleSessionHistory)
			r.Get("/recommendations", s.handleSessionRecommendations)
			r.Get("/stats", s.handleSessionStats)
		})

		r.Route("/cache", func(r chi.Router) {
			r.Get("/stats", s.handleCacheStats)
			r.Post("/clear", s.handleCacheClear)
			r.Post("/clear-expired", s.handleCacheClearExpired)
			r.Delete("/{source}/{query}", s.handleCacheInvalidate)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", s.handleProductsList)
			r.Get("/{id}", s.handleProductGet)
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "OK",
		"message": "Furniture style matching API is running",
	})
}

// ---- Products (read-only) ----

type ProductsListResponse struct {
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
	Total  int           `json:"total"`
	Items  []domain.Item `json:"items"`
}

func (s *Server) handleProductsList(w http.ResponseWriter, r *http.Request) {
	if s.Products == nil {
		writeJSON(w, http.StatusOK, ProductsListResponse{Items: []domain.Item{}})
		return
	}

	limit, offset := parseLimitOffset(r, 20, 0)
	filters := filtersFromQuery(r)

	items, total, err := s.Products.ListProducts(filters, limit, offset)
	if err != nil {
		s.Log.Error().Err(err).Msg("list products failed")
		writeError(w, http.StatusInternalServerError, "failed to list products")
		return
	}
	if items == nil {
		items = []domain.Item{}
	}

	writeJSON(w, http.StatusOK, ProductsListResponse{
		Limit:  limit,
		Offset: offset,
		Total:  total,
		Items:  items,
	})
}

func (s *Server) handleProductGet(w http.ResponseWriter, r *http.Request) {
	if s.Products == nil {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}

	id := chi.URLParam(r, "id")
	item, found, err := s.Products.GetProduct(id)
	if err != nil {
		s.Log.Error().Err(err).Str("id", id).Msg("get product failed")
		writeError(w, http.StatusInternalServerError, "failed to load product")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// ---- helpers ----

func filtersFromQuery(r *http.Request) domain.SearchFilters {
	q := r.URL.Query()
	var f domain.SearchFilters
	f.Category = q.Get("category")
	f.Style = q.Get("style")
	if v, err := strconv.ParseFloat(q.Get("min_price"), 64); err == nil {
		f.MinPrice = v
	}
	if v, err := strconv.ParseFloat(q.Get("max_price"), 64); err == nil {
		f.MaxPrice = v
	}
	if srcs, ok := q["source"]; ok {
		f.Sources = srcs
	}
	return f
}

func parseLimitOffset(r *http.Request, defLimit, defOffset int) (int, int) {
	q := r.URL.Query()

	limit := defLimit
	if v := q.Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit <= 0 {
		limit = defLimit
	}
	// safety cap
	if limit > 200 {
		limit = 200
	}

	offset := defOffset
	if v := q.Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = defOffset
	}

	return limit, offset
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
