package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/denisok6893-rgb/furniture-style-matching/internal/cache"
	"github.com/denisok6893-rgb/furniture-style-matching/internal/domain"
	"github.com/denisok6893-rgb/furniture-style-matching/internal/matching"
	"github.com/denisok6893-rgb/furniture-style-matching/internal/search"
	"github.com/denisok6893-rgb/furniture-style-matching/internal/session"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	return newTestServerWithProducts(t, nil)
}

func newTestServerWithProducts(t *testing.T, products ProductRepo) *httptest.Server {
	t.Helper()

	tiered, err := cache.New(t.TempDir(), nil, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}

	sources := []search.Source{search.NewFacebook(), search.NewWestElm(), search.NewCB2()}
	srv := NewServer(
		zerolog.Nop(),
		matching.NewEngine(matching.DefaultWeights()),
		search.NewService(sources, tiered, nil, zerolog.Nop()),
		session.NewManager(nil, zerolog.Nop()),
		tiered,
		products,
	)

	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	return ts
}

// fakeProductRepo serves canned products with the store's filter semantics.
type fakeProductRepo struct {
	items []domain.Item
}

func (f *fakeProductRepo) ListProducts(flt domain.SearchFilters, limit, offset int) ([]domain.Item, int, error) {
	var out []domain.Item
	for _, it := range f.items {
		if flt.Category != "" && it.Category != flt.Category {
			continue
		}
		if flt.MinPrice > 0 && it.Price < flt.MinPrice {
			continue
		}
		if flt.MaxPrice > 0 && it.Price > flt.MaxPrice {
			continue
		}
		if len(flt.Sources) > 0 {
			match := false
			for _, s := range flt.Sources {
				if it.Source == s {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		out = append(out, it)
	}
	total := len(out)
	if offset >= len(out) {
		out = nil
	} else {
		out = out[offset:]
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, total, nil
}

func (f *fakeProductRepo) GetProduct(id string) (domain.Item, bool, error) {
	for _, it := range f.items {
		if it.ID == id {
			return it, true, nil
		}
	}
	return domain.Item{}, false, nil
}

func doJSON(t *testing.T, method, url, sessionID string, body any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set(SessionHeader, sessionID)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	return resp
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/api/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d want=200", resp.StatusCode)
	}
}

func TestSearch(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/search", map[string]any{"query": "coffee table"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d want=200", resp.StatusCode)
	}
	if resp.Header.Get(SessionHeader) == "" {
		t.Error("missing session header on response")
	}

	var got struct {
		Success   bool          `json:"success"`
		Query     string        `json:"query"`
		Results   []domain.Item `json:"results"`
		Count     int           `json:"count"`
		SessionID string        `json:"session_id"`
	}
	decode(t, resp, &got)

	if !got.Success || got.Count != 3 || len(got.Results) != 3 {
		t.Errorf("got=%+v want 3 table results", got)
	}
	if got.SessionID == "" {
		t.Error("missing session_id in response body")
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	resp := postJSON(t, ts.URL+"/api/search", map[string]any{"query": ""})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d want=400", resp.StatusCode)
	}
}

func TestSearchSources(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/api/search/sources")
	if err != nil {
		t.Fatal(err)
	}

	var got struct {
		Sources []SourceInfo `json:"sources"`
	}
	decode(t, resp, &got)

	if len(got.Sources) != 3 {
		t.Fatalf("sources=%d want=3", len(got.Sources))
	}
	if got.Sources[0].ID != "facebook" || got.Sources[0].Name != "Facebook Marketplace" {
		t.Errorf("first source=%+v", got.Sources[0])
	}
}

func TestFindMatches(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/matching/find-matches", map[string]any{
		"selected_item": map[string]any{
			"id":       "fb_coffee_1",
			"title":    "Modern Coffee Table",
			"category": "table",
			"style":    "modern",
			"colors":   []string{"#8B4513", "#696969"},
		},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d want=200", resp.StatusCode)
	}

	var got struct {
		Success bool                 `json:"success"`
		Matches []domain.MatchedItem `json:"matches"`
		Count   int                  `json:"count"`
	}
	decode(t, resp, &got)

	if !got.Success || got.Count != 6 {
		t.Errorf("count=%d want=6 table-pool matches", got.Count)
	}
	for _, m := range got.Matches {
		if m.MatchReason == "" {
			t.Errorf("%s missing match reason on color-first path", m.ID)
		}
	}
}

func TestFindMatches_MissingItem(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	resp := postJSON(t, ts.URL+"/api/matching/find-matches", map[string]any{})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d want=400", resp.StatusCode)
	}
}

func TestScoreEndpoint(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	resp := postJSON(t, ts.URL+"/api/matching/score", map[string]any{
		"selected_item": map[string]any{"id": "a", "category": "table"},
		"candidate":     map[string]any{"id": "b", "category": "sofa"},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d want=200", resp.StatusCode)
	}

	var got struct {
		Success bool              `json:"success"`
		Score   domain.MatchScore `json:"score"`
	}
	decode(t, resp, &got)

	if got.Score.CategoryScore != 0.95 {
		t.Errorf("category score=%v want=0.95", got.Score.CategoryScore)
	}
}

func TestRoomAnalyze(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	resp := postJSON(t, ts.URL+"/api/room-style/analyze", map[string]any{
		"items": []map[string]any{
			{"id": "1", "title": "Modern Sofa", "style": "modern", "price": 899, "category": "sofa", "colors": []string{"#808080"}},
			{"id": "2", "title": "Modern Table", "style": "modern", "price": 450, "category": "table", "colors": []string{"#FFFFFF"}},
		},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d want=200", resp.StatusCode)
	}

	var got struct {
		Success  bool                `json:"success"`
		Analysis domain.RoomAnalysis `json:"analysis"`
	}
	decode(t, resp, &got)

	if got.Analysis.Style != "modern" {
		t.Errorf("room style=%q want=modern", got.Analysis.Style)
	}
	if got.Analysis.Analysis.TotalItems != 2 {
		t.Errorf("total items=%d want=2", got.Analysis.Analysis.TotalItems)
	}
}

func TestRoomSuggestions(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/api/room-style/suggestions/bedroom")
	if err != nil {
		t.Fatal(err)
	}

	var got struct {
		Success     bool                     `json:"success"`
		RoomType    string                   `json:"room_type"`
		Suggestions []domain.StyleSuggestion `json:"suggestions"`
	}
	decode(t, resp, &got)

	if got.RoomType != "bedroom" || len(got.Suggestions) != 4 {
		t.Errorf("got=%+v want 4 bedroom suggestions", got)
	}
}

func TestCompatibilityEndpoint(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	item := map[string]any{
		"id":       "a",
		"title":    "Modern Coffee Table",
		"style":    "modern",
		"price":    500,
		"category": "table",
	}
	other := map[string]any{
		"id":       "b",
		"title":    "Modern Sofa",
		"style":    "modern",
		"price":    900,
		"category": "sofa",
	}

	resp := postJSON(t, ts.URL+"/api/room-style/compatibility", map[string]any{
		"item1": item,
		"item2": other,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d want=200", resp.StatusCode)
	}

	var got CompatibilityResponse
	decode(t, resp, &got)

	// Both items classify as modern, so style compatibility is 1. Without
	// palettes the color term is 0 and the 0.7/0.3 blend gives 0.7.
	if got.Compatibility.StyleCompatibility != 1 {
		t.Errorf("style compatibility=%v want=1", got.Compatibility.StyleCompatibility)
	}
	if got.Compatibility.ColorCompatibility != 0 {
		t.Errorf("color compatibility=%v want=0 without palettes", got.Compatibility.ColorCompatibility)
	}
	if got.Compatibility.Overall != 0.7 {
		t.Errorf("overall=%v want=0.7", got.Compatibility.Overall)
	}
	if got.Recommendation.Level != "Good" {
		t.Errorf("recommendation=%q want=Good", got.Recommendation.Level)
	}
	if got.Analysis.Item1.DominantStyle != "modern" {
		t.Errorf("item1 dominant=%q want=modern", got.Analysis.Item1.DominantStyle)
	}
}

func TestStylePalette(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/room-style/palettes/modern")
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d want=200", resp.StatusCode)
	}

	var got StylePaletteResponse
	decode(t, resp, &got)

	if got.Style != "modern" || got.RoomType != "living" {
		t.Errorf("got style=%q room=%q", got.Style, got.RoomType)
	}
	if len(got.Palette.Primary) == 0 || len(got.Palette.Accent) == 0 {
		t.Errorf("palette=%+v want primary and accent colors", got.Palette)
	}
	if got.StyleInfo.Description == "" {
		t.Error("missing style description")
	}

	notFound, err := http.Get(ts.URL + "/api/room-style/palettes/brutalist")
	if err != nil {
		t.Fatal(err)
	}
	defer notFound.Body.Close()
	if notFound.StatusCode != http.StatusNotFound {
		t.Errorf("unknown style status=%d want=404", notFound.StatusCode)
	}
}

func TestSessionLifecycle(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/sessions", nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status=%d want=201", resp.StatusCode)
	}

	var created struct {
		Session session.Session `json:"session"`
	}
	decode(t, resp, &created)
	if created.Session.ID == "" {
		t.Fatal("missing session id")
	}

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/sessions/current", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set(SessionHeader, created.Session.ID)

	current, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	var got struct {
		Session session.Session `json:"session"`
	}
	decode(t, current, &got)
	if got.Session.ID != created.Session.ID {
		t.Errorf("current session=%q want=%q", got.Session.ID, created.Session.ID)
	}

	// Preferences update through the same session.
	body, _ := json.Marshal(map[string]any{
		"preferences": map[string]any{
			"preferred_styles": []string{"rustic"},
			"price_range":      map[string]float64{"min": 100, "max": 800},
		},
	})
	put, err := http.NewRequest(http.MethodPut, ts.URL+"/api/sessions/preferences", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	put.Header.Set(SessionHeader, created.Session.ID)
	put.Header.Set("Content-Type", "application/json")

	updated, err := http.DefaultClient.Do(put)
	if err != nil {
		t.Fatal(err)
	}
	if updated.StatusCode != http.StatusOK {
		t.Fatalf("update status=%d want=200", updated.StatusCode)
	}
	var after struct {
		Session session.Session `json:"session"`
	}
	decode(t, updated, &after)
	if after.Session.Preferences.PriceRange.Max != 800 {
		t.Errorf("preferences=%+v want max=800", after.Session.Preferences)
	}
}

func TestCacheEndpoints(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	// Populate the cache through a search.
	postJSON(t, ts.URL+"/api/search", map[string]any{"query": "sofa"}).Body.Close()

	resp, err := http.Get(ts.URL + "/api/cache/stats")
	if err != nil {
		t.Fatal(err)
	}
	var stats struct {
		Success bool        `json:"success"`
		Stats   cache.Stats `json:"stats"`
	}
	decode(t, resp, &stats)
	if stats.Stats.MemoryEntries == 0 {
		t.Error("cache stats show no entries after a search")
	}

	clear := postJSON(t, ts.URL+"/api/cache/clear", nil)
	defer clear.Body.Close()
	if clear.StatusCode != http.StatusOK {
		t.Fatalf("clear status=%d want=200", clear.StatusCode)
	}

	resp, err = http.Get(ts.URL + "/api/cache/stats")
	if err != nil {
		t.Fatal(err)
	}
	decode(t, resp, &stats)
	if stats.Stats.MemoryEntries != 0 {
		t.Errorf("memory entries=%d after clear want=0", stats.Stats.MemoryEntries)
	}
}

func TestRequestIDHeader(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/health")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.Header.Get(RequestIDHeader) == "" {
		t.Error("missing request ID header on response")
	}

	// An inbound ID is reused rather than replaced.
	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/health", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set(RequestIDHeader, "req-123")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if got := resp.Header.Get(RequestIDHeader); got != "req-123" {
		t.Errorf("request ID=%q want=req-123", got)
	}
}

func createSession(t *testing.T, ts *httptest.Server) string {
	t.Helper()

	resp := postJSON(t, ts.URL+"/api/sessions", nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status=%d want=201", resp.StatusCode)
	}
	var created struct {
		Session session.Session `json:"session"`
	}
	decode(t, resp, &created)
	if created.Session.ID == "" {
		t.Fatal("missing session id")
	}
	return created.Session.ID
}

func TestSessionHistory(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	id := createSession(t, ts)

	doJSON(t, http.MethodPost, ts.URL+"/api/search", id, map[string]any{"query": "coffee table"}).Body.Close()

	resp := doJSON(t, http.MethodGet, ts.URL+"/api/sessions/history", id, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d want=200", resp.StatusCode)
	}

	var got struct {
		Success       bool                   `json:"success"`
		SearchHistory []session.SearchRecord `json:"search_history"`
		Stats         session.Stats          `json:"stats"`
	}
	decode(t, resp, &got)

	if !got.Success || len(got.SearchHistory) != 1 {
		t.Fatalf("history=%d want=1", len(got.SearchHistory))
	}
	if got.SearchHistory[0].Query != "coffee table" {
		t.Errorf("query=%q want=coffee table", got.SearchHistory[0].Query)
	}
	if got.Stats.TotalSearches != 1 {
		t.Errorf("total searches=%d want=1", got.Stats.TotalSearches)
	}
}

func TestSessionStats(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)
	id := createSession(t, ts)

	doJSON(t, http.MethodPost, ts.URL+"/api/search", id, map[string]any{"query": "sofa"}).Body.Close()

	resp := doJSON(t, http.MethodGet, ts.URL+"/api/sessions/stats", id, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d want=200", resp.StatusCode)
	}

	var got struct {
		Success   bool             `json:"success"`
		SessionID string           `json:"session_id"`
		Stats     session.Stats    `json:"stats"`
		Insights  session.Insights `json:"insights"`
	}
	decode(t, resp, &got)

	if !got.Success || got.SessionID != id {
		t.Errorf("session_id=%q want=%q", got.SessionID, id)
	}
	if got.Stats.TotalSearches != 1 {
		t.Errorf("total searches=%d want=1", got.Stats.TotalSearches)
	}
	if got.Insights.TopCategory != "sofa" {
		t.Errorf("top category=%q want=sofa", got.Insights.TopCategory)
	}
	// Fresh session, no matches yet.
	if got.Insights.SearchEfficiency != 0 {
		t.Errorf("search efficiency=%v want=0", got.Insights.SearchEfficiency)
	}
}

func TestSessionRecommendations(t *testing.T) {
	t.Parallel()

	repo := &fakeProductRepo{items: []domain.Item{
		{ID: "other", Style: "rustic", Category: "sofa", Price: 5000, Source: "facebook"},
		{ID: "pick", Style: "modern", Category: "table", Price: 300, Colors: []string{"#808080"}, Source: "facebook"},
	}}
	ts := newTestServerWithProducts(t, repo)
	id := createSession(t, ts)

	// Learn modern + gray from a matching run.
	doJSON(t, http.MethodPost, ts.URL+"/api/matching/find-matches", id, map[string]any{
		"selected_item": map[string]any{
			"id":       "sel",
			"category": "table",
			"style":    "modern",
			"colors":   []string{"#808080"},
		},
	}).Body.Close()

	resp := doJSON(t, http.MethodGet, ts.URL+"/api/sessions/recommendations", id, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d want=200", resp.StatusCode)
	}

	var got struct {
		Success         bool                      `json:"success"`
		Recommendations []session.RecommendedItem `json:"recommendations"`
		Count           int                       `json:"count"`
		Category        string                    `json:"category"`
	}
	decode(t, resp, &got)

	if !got.Success || got.Count != 2 || got.Category != "all" {
		t.Fatalf("got count=%d category=%q want 2/all", got.Count, got.Category)
	}
	if got.Recommendations[0].ID != "pick" {
		t.Errorf("top recommendation=%q want=pick", got.Recommendations[0].ID)
	}
	if got.Recommendations[0].RecommendationScore <= got.Recommendations[1].RecommendationScore {
		t.Errorf("scores not descending: %v then %v",
			got.Recommendations[0].RecommendationScore, got.Recommendations[1].RecommendationScore)
	}

	// Category filter narrows the candidate pool.
	resp = doJSON(t, http.MethodGet, ts.URL+"/api/sessions/recommendations?category=sofa", id, nil)
	decode(t, resp, &got)
	if got.Count != 1 || got.Category != "sofa" {
		t.Errorf("filtered count=%d category=%q want 1/sofa", got.Count, got.Category)
	}
	if got.Recommendations[0].ID != "other" {
		t.Errorf("filtered recommendation=%q want=other", got.Recommendations[0].ID)
	}
}

func TestRoomSuggestions_CurrentItems(t *testing.T) {
	t.Parallel()

	repo := &fakeProductRepo{items: []domain.Item{
		{ID: "r1", Title: "Modern Sofa", Style: "modern", Category: "sofa", Price: 900, Source: "user_room"},
		{ID: "r2", Title: "Modern Table", Style: "modern", Category: "table", Price: 400, Source: "user_room"},
		{ID: "c1", Title: "Rustic Bench", Style: "rustic", Category: "bench", Price: 200, Source: "facebook"},
	}}
	ts := newTestServerWithProducts(t, repo)

	resp, err := http.Get(ts.URL + "/api/room-style/suggestions/living?includeCurrentItems=true")
	if err != nil {
		t.Fatal(err)
	}

	var got struct {
		Success              bool                     `json:"success"`
		Suggestions          []domain.StyleSuggestion `json:"suggestions"`
		CurrentItemsAnalyzed int                      `json:"current_items_analyzed"`
	}
	decode(t, resp, &got)

	// Only the saved room items count, not the marketplace product.
	if !got.Success || got.CurrentItemsAnalyzed != 2 {
		t.Errorf("current items analyzed=%d want=2", got.CurrentItemsAnalyzed)
	}
	if len(got.Suggestions) == 0 {
		t.Error("missing suggestions")
	}

	resp, err = http.Get(ts.URL + "/api/room-style/suggestions/living")
	if err != nil {
		t.Fatal(err)
	}
	decode(t, resp, &got)
	if got.CurrentItemsAnalyzed != 0 {
		t.Errorf("current items analyzed=%d without flag want=0", got.CurrentItemsAnalyzed)
	}
}

func TestCacheClearExpired(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	// Fresh entries survive an expiry sweep.
	postJSON(t, ts.URL+"/api/search", map[string]any{"query": "sofa"}).Body.Close()

	resp := postJSON(t, ts.URL+"/api/cache/clear-expired", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d want=200", resp.StatusCode)
	}
	var got struct {
		Success bool `json:"success"`
	}
	decode(t, resp, &got)
	if !got.Success {
		t.Error("expected success")
	}

	stats, err := http.Get(ts.URL + "/api/cache/stats")
	if err != nil {
		t.Fatal(err)
	}
	var after struct {
		Stats cache.Stats `json:"stats"`
	}
	decode(t, stats, &after)
	if after.Stats.MemoryEntries == 0 {
		t.Error("unexpired entries were dropped by the sweep")
	}
}

func TestCacheInvalidate(t *testing.T) {
	t.Parallel()

	tiered, err := cache.New(t.TempDir(), nil, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	sources := []search.Source{search.NewFacebook()}
	srv := NewServer(
		zerolog.Nop(),
		matching.NewEngine(matching.DefaultWeights()),
		search.NewService(sources, tiered, nil, zerolog.Nop()),
		session.NewManager(nil, zerolog.Nop()),
		tiered,
		nil,
	)
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)

	tiered.Set("facebook", "sofa", domain.SearchFilters{}, []domain.Item{{ID: "x"}})
	if _, ok := tiered.Get("facebook", "sofa", domain.SearchFilters{}); !ok {
		t.Fatal("seed entry not cached")
	}

	resp := doJSON(t, http.MethodDelete, ts.URL+"/api/cache/facebook/sofa", "", nil)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d want=200", resp.StatusCode)
	}

	if _, ok := tiered.Get("facebook", "sofa", domain.SearchFilters{}); ok {
		t.Error("entry still cached after invalidation")
	}
}

func TestProductsWithoutStore(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/products")
	if err != nil {
		t.Fatal(err)
	}
	var got ProductsListResponse
	decode(t, resp, &got)
	if got.Items == nil || len(got.Items) != 0 {
		t.Errorf("items=%v want empty list", got.Items)
	}

	missing, err := http.Get(ts.URL + "/api/products/nope")
	if err != nil {
		t.Fatal(err)
	}
	defer missing.Body.Close()
	if missing.StatusCode != http.StatusNotFound {
		t.Errorf("status=%d want=404", missing.StatusCode)
	}
}
