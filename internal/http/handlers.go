package httpapi

import (
	"math"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"github.com/denisok6893-rgb/furniture-style-matching/internal/color"
	"github.com/denisok6893-rgb/furniture-style-matching/internal/domain"
	"github.com/denisok6893-rgb/furniture-style-matching/internal/session"
	"github.com/denisok6893-rgb/furniture-style-matching/internal/style"
)

// ---- Search ----

type SearchRequest struct {
	Query   string               `json:"query"`
	Filters domain.SearchFilters `json:"filters"`
}

type SearchResponse struct {
	Success   bool                 `json:"success"`
	Query     string               `json:"query"`
	Filters   domain.SearchFilters `json:"filters"`
	Results   []domain.Item        `json:"results"`
	Count     int                  `json:"count"`
	SessionID string               `json:"session_id,omitempty"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Query == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}

	results, err := s.Search.Search(r.Context(), req.Query, req.Filters)
	if err != nil {
		s.Log.Error().Err(err).Str("query", req.Query).Msg("search failed")
		writeError(w, http.StatusInternalServerError, "search failed")
		return
	}
	if results == nil {
		results = []domain.Item{}
	}

	sessionID := SessionIDFromContext(r.Context())
	if sessionID != "" && s.Sessions != nil {
		if err := s.Sessions.RecordSearch(sessionID, req.Query, req.Filters, results); err != nil {
			s.Log.Warn().Err(err).Str("session_id", sessionID).Msg("record search failed")
		}
	}

	writeJSON(w, http.StatusOK, SearchResponse{
		Success:   true,
		Query:     req.Query,
		Filters:   req.Filters,
		Results:   results,
		Count:     len(results),
		SessionID: sessionID,
	})
}

type SourceInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

func (s *Server) handleSearchSources(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"sources": []SourceInfo{
			{ID: "facebook", Name: "Facebook Marketplace", Enabled: true},
			{ID: "westelm", Name: "West Elm", Enabled: true},
			{ID: "cb2", Name: "CB2", Enabled: true},
		},
	})
}

// ---- Matching ----

type FindMatchesRequest struct {
	SelectedItem domain.Item          `json:"selected_item"`
	Filters      domain.SearchFilters `json:"filters"`
}

type FindMatchesResponse struct {
	Success      bool                 `json:"success"`
	SelectedItem domain.Item          `json:"selected_item"`
	Matches      []domain.MatchedItem `json:"matches"`
	Count        int                  `json:"count"`
	SessionID    string               `json:"session_id,omitempty"`
}

func (s *Server) handleFindMatches(w http.ResponseWriter, r *http.Request) {
	var req FindMatchesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.SelectedItem.ID == "" {
		writeError(w, http.StatusBadRequest, "selected_item is required")
		return
	}

	matches := s.Engine.FindMatches(req.SelectedItem)
	if matches == nil {
		matches = []domain.MatchedItem{}
	}

	sessionID := SessionIDFromContext(r.Context())
	if sessionID != "" && s.Sessions != nil {
		if err := s.Sessions.RecordMatch(sessionID, req.SelectedItem); err != nil {
			s.Log.Warn().Err(err).Str("session_id", sessionID).Msg("record match failed")
		}
	}

	writeJSON(w, http.StatusOK, FindMatchesResponse{
		Success:      true,
		SelectedItem: req.SelectedItem,
		Matches:      matches,
		Count:        len(matches),
		SessionID:    sessionID,
	})
}

type ScoreRequest struct {
	SelectedItem domain.Item `json:"selected_item"`
	Candidate    domain.Item `json:"candidate"`
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.SelectedItem.ID == "" || req.Candidate.ID == "" {
		writeError(w, http.StatusBadRequest, "selected_item and candidate are required")
		return
	}

	score := s.Engine.Score(req.SelectedItem, req.Candidate)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"score":   score,
	})
}

// ---- Room style ----

type RoomAnalyzeRequest struct {
	Items []domain.Item `json:"items"`
}

func (s *Server) handleRoomAnalyze(w http.ResponseWriter, r *http.Request) {
	var req RoomAnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	analysis := style.AnalyzeRoom(req.Items)
	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"analysis": analysis,
	})
}

// handleRoomSuggestions returns style suggestions for a room type. With
// includeCurrentItems=true the user's saved room items feed the suggestion
// boost; up to 10 are analyzed.
func (s *Server) handleRoomSuggestions(w http.ResponseWriter, r *http.Request) {
	roomType := chi.URLParam(r, "roomType")

	var current []domain.Item
	if r.URL.Query().Get("includeCurrentItems") == "true" && s.Products != nil {
		items, _, err := s.Products.ListProducts(domain.SearchFilters{Sources: []string{"user_room"}}, 10, 0)
		if err != nil {
			s.Log.Warn().Err(err).Msg("load room items failed")
		} else {
			current = items
		}
	}

	suggestions := style.SuggestForRoom(roomType, current)
	writeJSON(w, http.StatusOK, map[string]any{
		"success":                true,
		"room_type":              roomType,
		"suggestions":            suggestions,
		"current_items_analyzed": len(current),
	})
}

type CompatibilityRequest struct {
	Item1 domain.Item `json:"item1"`
	Item2 domain.Item `json:"item2"`
}

type CompatibilityScores struct {
	Overall            float64 `json:"overall"`
	StyleCompatibility float64 `json:"style_compatibility"`
	ColorCompatibility float64 `json:"color_compatibility"`
}

type ItemStyleSummary struct {
	DominantStyle string             `json:"dominant_style"`
	Confidence    float64            `json:"confidence"`
	StyleScores   map[string]float64 `json:"style_scores"`
}

type Recommendation struct {
	Level   string   `json:"level"`
	Message string   `json:"message"`
	Tips    []string `json:"tips"`
}

type CompatibilityResponse struct {
	Success       bool                `json:"success"`
	Compatibility CompatibilityScores `json:"compatibility"`
	Analysis      struct {
		Item1 ItemStyleSummary `json:"item1"`
		Item2 ItemStyleSummary `json:"item2"`
	} `json:"analysis"`
	Recommendation Recommendation `json:"recommendation"`
}

// handleCompatibility scores a pair of items: style compatibility weighted
// 0.7 against color compatibility weighted 0.3. Color compatibility is 0
// when either item has no palette.
func (s *Server) handleCompatibility(w http.ResponseWriter, r *http.Request) {
	var req CompatibilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Item1.ID == "" || req.Item2.ID == "" {
		writeError(w, http.StatusBadRequest, "item1 and item2 are required")
		return
	}

	analysis1 := style.AnalyzeItem(req.Item1)
	analysis2 := style.AnalyzeItem(req.Item2)

	styleCompat := style.Compatibility(analysis1.DominantStyle, analysis2.DominantStyle)

	colorCompat := 0.0
	if len(req.Item1.Colors) > 0 && len(req.Item2.Colors) > 0 {
		colorCompat = color.Compatibility(req.Item1.Colors, req.Item2.Colors)
	}

	overall := styleCompat*0.7 + colorCompat*0.3

	resp := CompatibilityResponse{
		Success: true,
		Compatibility: CompatibilityScores{
			Overall:            round2(overall),
			StyleCompatibility: round2(styleCompat),
			ColorCompatibility: round2(colorCompat),
		},
		Recommendation: recommendationFor(overall),
	}
	resp.Analysis.Item1 = ItemStyleSummary{
		DominantStyle: analysis1.DominantStyle,
		Confidence:    round2(analysis1.Confidence),
		StyleScores:   analysis1.StyleScores,
	}
	resp.Analysis.Item2 = ItemStyleSummary{
		DominantStyle: analysis2.DominantStyle,
		Confidence:    round2(analysis2.Confidence),
		StyleScores:   analysis2.StyleScores,
	}

	writeJSON(w, http.StatusOK, resp)
}

func recommendationFor(overall float64) Recommendation {
	switch {
	case overall >= 0.8:
		return Recommendation{
			Level:   "Excellent",
			Message: "These items work beautifully together.",
			Tips: []string{
				"Consider adding coordinating accessories",
				"Maintain the color balance across the room",
			},
		}
	case overall >= 0.6:
		return Recommendation{
			Level:   "Good",
			Message: "These items complement each other well.",
			Tips: []string{
				"Add a bridging piece in a shared color",
				"Use textiles to tie the styles together",
			},
		}
	case overall >= 0.4:
		return Recommendation{
			Level:   "Fair",
			Message: "These items can work together with some effort.",
			Tips: []string{
				"Introduce a neutral element between them",
				"Limit the palette to two or three colors",
			},
		}
	default:
		return Recommendation{
			Level:   "Poor",
			Message: "These items may clash in the same space.",
			Tips: []string{
				"Consider items from a compatible style family",
				"Keep the pieces in separate rooms or zones",
			},
		}
	}
}

type StylePaletteResponse struct {
	Style    string `json:"style"`
	RoomType string `json:"room_type"`
	Palette  struct {
		Primary   []string `json:"primary"`
		Accent    []string `json:"accent"`
		Neutral   []string `json:"neutral"`
		Secondary []string `json:"secondary"`
	} `json:"palette"`
	StyleInfo struct {
		Characteristics []string          `json:"characteristics"`
		Materials       []string          `json:"materials"`
		PriceRange      domain.PriceRange `json:"price_range"`
		Description     string            `json:"description"`
	} `json:"style_info"`
}

func (s *Server) handleStylePalette(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "style")
	def, ok := style.Lookup(name)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown style")
		return
	}

	roomType := r.URL.Query().Get("room_type")
	if roomType == "" {
		roomType = "living"
	}

	var resp StylePaletteResponse
	resp.Style = def.Name
	resp.RoomType = roomType
	resp.Palette.Primary = def.Colors

	if len(def.Colors) > 0 {
		palette, err := color.PaletteForRoom(def.Colors[0], roomType)
		if err == nil {
			resp.Palette.Accent = palette.Accent
			resp.Palette.Neutral = palette.Neutral
			resp.Palette.Secondary = palette.Secondary
		}
	}

	resp.StyleInfo.Characteristics = def.Characteristics
	resp.StyleInfo.Materials = def.Materials
	resp.StyleInfo.PriceRange = def.PriceRange
	resp.StyleInfo.Description = def.Description

	writeJSON(w, http.StatusOK, resp)
}

// ---- Sessions ----

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	sess := s.Sessions.Create(r.UserAgent(), r.RemoteAddr)
	w.Header().Set(SessionHeader, sess.ID)
	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"session": sess,
	})
}

func (s *Server) handleCurrentSession(w http.ResponseWriter, r *http.Request) {
	sessionID := SessionIDFromContext(r.Context())
	if sessionID == "" {
		writeError(w, http.StatusNotFound, "no active session")
		return
	}
	sess, err := s.Sessions.Get(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "no active session")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"session": sess,
	})
}

func (s *Server) handleUpdatePreferences(w http.ResponseWriter, r *http.Request) {
	sessionID := SessionIDFromContext(r.Context())
	if sessionID == "" {
		writeError(w, http.StatusNotFound, "no active session")
		return
	}

	var prefs struct {
		Preferences session.Preferences `json:"preferences"`
	}
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess, err := s.Sessions.UpdatePreferences(sessionID, prefs.Preferences)
	if err != nil {
		writeError(w, http.StatusNotFound, "no active session")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"session": sess,
	})
}

func (s *Server) handleSessionHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := SessionIDFromContext(r.Context())
	if sessionID == "" {
		writeError(w, http.StatusNotFound, "no active session")
		return
	}
	sess, err := s.Sessions.Get(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "no active session")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":        true,
		"search_history": sess.SearchHistory,
		"stats":          sess.Stats,
	})
}

// handleSessionRecommendations scores catalog items against the session's
// learned preferences. Candidates come from the product store filtered by the
// session's price range and the optional ?category=. Without a session or a
// store the list is empty rather than an error.
func (s *Server) handleSessionRecommendations(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	label := category
	if label == "" {
		label = "all"
	}

	empty := func() {
		writeJSON(w, http.StatusOK, map[string]any{
			"success":         true,
			"recommendations": []session.RecommendedItem{},
			"count":           0,
			"category":        label,
		})
	}

	sessionID := SessionIDFromContext(r.Context())
	if sessionID == "" || s.Products == nil {
		empty()
		return
	}
	sess, err := s.Sessions.Get(sessionID)
	if err != nil {
		empty()
		return
	}

	filters := domain.SearchFilters{
		Category: category,
		MinPrice: sess.Preferences.PriceRange.Min,
		MaxPrice: sess.Preferences.PriceRange.Max,
	}
	items, _, err := s.Products.ListProducts(filters, 200, 0)
	if err != nil {
		s.Log.Warn().Err(err).Str("session_id", sessionID).Msg("load recommendation candidates failed")
		empty()
		return
	}

	recs := session.Recommend(sess, items)
	writeJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"recommendations": recs,
		"count":           len(recs),
		"category":        label,
	})
}

func (s *Server) handleSessionStats(w http.ResponseWriter, r *http.Request) {
	sessionID := SessionIDFromContext(r.Context())
	if sessionID == "" {
		writeError(w, http.StatusNotFound, "no active session")
		return
	}
	sess, err := s.Sessions.Get(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "no active session")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"session_id":  sess.ID,
		"stats":       sess.Stats,
		"insights":    session.InsightsFor(sess, time.Now()),
		"preferences": sess.Preferences,
	})
}

// ---- Cache ----

func (s *Server) handleCacheStats(w http.ResponseWriter, r *http.Request) {
	if s.Cache == nil {
		writeError(w, http.StatusServiceUnavailable, "cache disabled")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"stats":   s.Cache.Stats(),
	})
}

func (s *Server) handleCacheClear(w http.ResponseWriter, r *http.Request) {
	if s.Cache == nil {
		writeError(w, http.StatusServiceUnavailable, "cache disabled")
		return
	}
	s.Cache.ClearAll()
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "cache cleared",
	})
}

func (s *Server) handleCacheClearExpired(w http.ResponseWriter, r *http.Request) {
	if s.Cache == nil {
		writeError(w, http.StatusServiceUnavailable, "cache disabled")
		return
	}
	s.Cache.ClearExpired()
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "expired cache entries cleared",
	})
}

// handleCacheInvalidate drops the unfiltered cache entry for a source/query
// pair.
func (s *Server) handleCacheInvalidate(w http.ResponseWriter, r *http.Request) {
	if s.Cache == nil {
		writeError(w, http.StatusServiceUnavailable, "cache disabled")
		return
	}
	source := chi.URLParam(r, "source")
	query := chi.URLParam(r, "query")
	s.Cache.Invalidate(source, query, domain.SearchFilters{})
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "cache entry invalidated",
		"source":  source,
		"query":   query,
	})
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
