// Package session tracks per-browser sessions: search history, learned
// preferences, and usage stats. Sessions live in memory and are persisted
// to the sqlite store so they survive restarts.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/denisok6893-rgb/furniture-style-matching/internal/domain"
)

// Timeout is the inactivity window after which a session expires.
const Timeout = 24 * time.Hour

const (
	maxSearchHistory  = 50
	maxFavoriteColors = 10
)

var ErrNotFound = errors.New("session not found")

type Preferences struct {
	PreferredStyles []string          `json:"preferred_styles"`
	PriceRange      domain.PriceRange `json:"price_range"`
	FavoriteColors  []string          `json:"favorite_colors"`
	RoomTypes       []string          `json:"room_types"`
}

type ResultSnippet struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Source   string  `json:"source"`
}

type SearchRecord struct {
	ID          string               `json:"id"`
	Query       string               `json:"query"`
	Filters     domain.SearchFilters `json:"filters"`
	ResultCount int                  `json:"result_count"`
	Timestamp   int64                `json:"timestamp"`
	TopResults  []ResultSnippet      `json:"top_results"`
}

type Stats struct {
	TotalSearches      int            `json:"total_searches"`
	TotalMatches       int            `json:"total_matches"`
	FavoriteCategories map[string]int `json:"favorite_categories"`
	AveragePrice       float64        `json:"average_price"`
}

type Session struct {
	ID             string         `json:"id"`
	UserAgent      string         `json:"user_agent"`
	IPAddress      string         `json:"ip_address"`
	CreatedAt      int64          `json:"created_at"`
	LastActivityAt int64          `json:"last_activity_at"`
	SearchHistory  []SearchRecord `json:"search_history"`
	Preferences    Preferences    `json:"preferences"`
	Stats          Stats          `json:"stats"`
}

// clone deep-copies the session so callers can read and encode it without
// holding the manager's lock.
func (s *Session) clone() *Session {
	c := *s
	c.SearchHistory = append([]SearchRecord(nil), s.SearchHistory...)
	c.Preferences.PreferredStyles = append([]string(nil), s.Preferences.PreferredStyles...)
	c.Preferences.FavoriteColors = append([]string(nil), s.Preferences.FavoriteColors...)
	c.Preferences.RoomTypes = append([]string(nil), s.Preferences.RoomTypes...)
	c.Stats.FavoriteCategories = make(map[string]int, len(s.Stats.FavoriteCategories))
	for k, v := range s.Stats.FavoriteCategories {
		c.Stats.FavoriteCategories[k] = v
	}
	return &c
}

// Store is the persistence tier. Implemented by storage.SQLiteStore.
type Store interface {
	SaveSession(id string, payload []byte, lastActivity time.Time) error
	GetSession(id string) ([]byte, bool, error)
	DeleteSession(id string) error
}

type Manager struct {
	log zerolog.Logger

	mu       sync.Mutex
	sessions map[string]*Session
	store    Store
}

// NewManager creates a session manager. store may be nil for memory-only
// operation.
func NewManager(store Store, logger zerolog.Logger) *Manager {
	return &Manager{
		log:      logger,
		sessions: make(map[string]*Session),
		store:    store,
	}
}

// Create starts a new session with default preferences.
func (m *Manager) Create(userAgent, ipAddress string) *Session {
	now := time.Now().UnixMilli()
	s := &Session{
		ID:             uuid.NewString(),
		UserAgent:      userAgent,
		IPAddress:      ipAddress,
		CreatedAt:      now,
		LastActivityAt: now,
		SearchHistory:  []SearchRecord{},
		Preferences: Preferences{
			PreferredStyles: []string{},
			PriceRange:      domain.PriceRange{Min: 0, Max: 10000},
			FavoriteColors:  []string{},
			RoomTypes:       []string{},
		},
		Stats: Stats{FavoriteCategories: make(map[string]int)},
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	out := s.clone()
	m.mu.Unlock()

	m.persist(s)
	m.log.Info().Str("session_id", s.ID).Msg("created session")
	return out
}

// Get returns a snapshot of a session, loading it from the store if it fell
// out of memory. Expired sessions are removed and reported as not found.
// The snapshot is a copy; mutations go through the manager methods.
func (m *Manager) Get(id string) (*Session, error) {
	s, err := m.live(id)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return s.clone(), nil
}

// live resolves the shared in-memory session record.
func (m *Manager) live(id string) (*Session, error) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	m.mu.Unlock()

	if ok {
		if m.expired(s) {
			m.remove(id)
			return nil, ErrNotFound
		}
		return s, nil
	}

	if m.store == nil {
		return nil, ErrNotFound
	}

	payload, found, err := m.store.GetSession(id)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if !found {
		return nil, ErrNotFound
	}

	var loaded Session
	if err := json.Unmarshal(payload, &loaded); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if m.expired(&loaded) {
		_ = m.store.DeleteSession(id)
		return nil, ErrNotFound
	}
	if loaded.Stats.FavoriteCategories == nil {
		loaded.Stats.FavoriteCategories = make(map[string]int)
	}

	m.mu.Lock()
	m.sessions[id] = &loaded
	m.mu.Unlock()
	return &loaded, nil
}

// UpdatePreferences replaces the session's preference record.
func (m *Manager) UpdatePreferences(id string, p Preferences) (*Session, error) {
	s, err := m.live(id)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	s.Preferences = p
	s.LastActivityAt = time.Now().UnixMilli()
	out := s.clone()
	m.mu.Unlock()

	m.persist(s)
	return out, nil
}

// RecordSearch appends a search to the session history (capped at 50
// entries with top-3 result snippets) and updates the usage stats.
func (m *Manager) RecordSearch(id, query string, filters domain.SearchFilters, results []domain.Item) error {
	s, err := m.live(id)
	if err != nil {
		return err
	}

	top := make([]ResultSnippet, 0, 3)
	for _, r := range results {
		if len(top) == 3 {
			break
		}
		top = append(top, ResultSnippet{
			ID: r.ID, Title: r.Title, Price: r.Price, Category: r.Category, Source: r.Source,
		})
	}

	record := SearchRecord{
		ID:          uuid.NewString(),
		Query:       query,
		Filters:     filters,
		ResultCount: len(results),
		Timestamp:   time.Now().UnixMilli(),
		TopResults:  top,
	}

	m.mu.Lock()
	s.SearchHistory = append([]SearchRecord{record}, s.SearchHistory...)
	if len(s.SearchHistory) > maxSearchHistory {
		s.SearchHistory = s.SearchHistory[:maxSearchHistory]
	}

	s.Stats.TotalSearches++
	for _, r := range results {
		s.Stats.FavoriteCategories[r.Category]++
	}

	var priceSum float64
	priceCount := 0
	for _, r := range results {
		if r.Price > 0 {
			priceSum += r.Price
			priceCount++
		}
	}
	if priceCount > 0 {
		avg := priceSum / float64(priceCount)
		n := float64(s.Stats.TotalSearches)
		s.Stats.AveragePrice = (s.Stats.AveragePrice*(n-1) + avg) / n
	}

	s.LastActivityAt = time.Now().UnixMilli()
	m.mu.Unlock()

	m.persist(s)
	return nil
}

// RecordMatch counts a matching run and learns style and color preferences
// from the selected item. Favorite colors keep only the 10 most recent.
func (m *Manager) RecordMatch(id string, selected domain.Item) error {
	s, err := m.live(id)
	if err != nil {
		return err
	}

	m.mu.Lock()
	s.Stats.TotalMatches++

	if selected.Style != "" && !containsString(s.Preferences.PreferredStyles, selected.Style) {
		s.Preferences.PreferredStyles = append(s.Preferences.PreferredStyles, selected.Style)
	}
	for _, c := range selected.Colors {
		if containsString(s.Preferences.FavoriteColors, c) {
			continue
		}
		s.Preferences.FavoriteColors = append(s.Preferences.FavoriteColors, c)
		if len(s.Preferences.FavoriteColors) > maxFavoriteColors {
			s.Preferences.FavoriteColors = s.Preferences.FavoriteColors[1:]
		}
	}

	s.LastActivityAt = time.Now().UnixMilli()
	m.mu.Unlock()

	m.persist(s)
	return nil
}

func (m *Manager) expired(s *Session) bool {
	return time.Now().UnixMilli()-s.LastActivityAt > Timeout.Milliseconds()
}

func (m *Manager) remove(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
	if m.store != nil {
		_ = m.store.DeleteSession(id)
	}
}

func (m *Manager) persist(s *Session) {
	if m.store == nil {
		return
	}
	m.mu.Lock()
	payload, err := json.Marshal(s)
	last := time.UnixMilli(s.LastActivityAt)
	m.mu.Unlock()
	if err != nil {
		return
	}
	if err := m.store.SaveSession(s.ID, payload, last); err != nil {
		m.log.Error().Err(err).Str("session_id", s.ID).Msg("persist session failed")
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
