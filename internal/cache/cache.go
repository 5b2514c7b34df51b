// Package cache provides the tiered search-result cache: an in-memory map
// in front of the sqlite store, with JSON files as the last-resort tier.
// Reads promote entries upward; writes go through to every tier.
package cache

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/denisok6893-rgb/furniture-style-matching/internal/domain"
)

// DefaultTTL is how long a cached result set stays valid in every tier.
const DefaultTTL = 24 * time.Hour

// Store is the database tier. Implemented by storage.SQLiteStore.
type Store interface {
	CacheGet(key string, maxAge time.Duration) ([]byte, bool, error)
	CacheSet(key, source, query string, payload []byte) error
	CacheDelete(key string) error
	CacheClear() error
	CacheSweep(maxAge time.Duration) (int, error)
	CacheStats() (entries int, bytes int64, err error)
}

type entry struct {
	Timestamp int64                `json:"timestamp"`
	Data      []domain.Item        `json:"data"`
	Source    string               `json:"source"`
	Query     string               `json:"query"`
	Filters   domain.SearchFilters `json:"filters"`
}

type Tiered struct {
	dir string
	ttl time.Duration
	log zerolog.Logger

	mu        sync.RWMutex
	entries   map[string]entry
	store     Store
	dbHealthy bool
}

// New creates the cache and its file directory. store may be nil to run
// without the database tier.
func New(dir string, store Store, logger zerolog.Logger) (*Tiered, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &Tiered{
		dir:       dir,
		ttl:       DefaultTTL,
		log:       logger,
		entries:   make(map[string]entry),
		store:     store,
		dbHealthy: store != nil,
	}, nil
}

// Key builds the cache key from source, query, and the filter set.
func Key(source, query string, filters domain.SearchFilters) string {
	filterJSON, _ := json.Marshal(filters)
	return fmt.Sprintf("%s_%s_%s", source, query, base64.URLEncoding.EncodeToString(filterJSON))
}

// Get checks memory, then database, then files. Hits in lower tiers are
// promoted into memory. Expired entries are evicted on the way.
func (c *Tiered) Get(source, query string, filters domain.SearchFilters) ([]domain.Item, bool) {
	key := Key(source, query, filters)

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		if c.fresh(e.Timestamp) {
			c.log.Debug().Str("key", key).Msg("cache hit (memory)")
			return e.Data, true
		}
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
	}

	if items, ok := c.getFromStore(key, source, query, filters); ok {
		return items, true
	}

	return c.getFromFile(key)
}

func (c *Tiered) getFromStore(key, source, query string, filters domain.SearchFilters) ([]domain.Item, bool) {
	c.mu.RLock()
	store, healthy := c.store, c.dbHealthy
	c.mu.RUnlock()
	if store == nil || !healthy {
		return nil, false
	}

	payload, ok, err := store.CacheGet(key, c.ttl)
	if err != nil {
		c.log.Error().Err(err).Msg("database cache read failed, falling back to file cache")
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var items []domain.Item
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, false
	}

	c.remember(key, entry{
		Timestamp: time.Now().UnixMilli(),
		Data:      items,
		Source:    source,
		Query:     query,
		Filters:   filters,
	})
	return items, true
}

func (c *Tiered) getFromFile(key string) ([]domain.Item, bool) {
	path := filepath.Join(c.dir, key+".json")
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var e entry
	if err := json.Unmarshal(b, &e); err != nil {
		_ = os.Remove(path)
		return nil, false
	}
	if !c.fresh(e.Timestamp) {
		_ = os.Remove(path)
		return nil, false
	}

	c.log.Debug().Str("key", key).Msg("cache hit (file)")
	c.remember(key, e)
	return e.Data, true
}

// Set writes the result set to memory, the database, and the file tier.
// A database failure disables the database tier until the next restart.
func (c *Tiered) Set(source, query string, filters domain.SearchFilters, items []domain.Item) {
	key := Key(source, query, filters)
	e := entry{
		Timestamp: time.Now().UnixMilli(),
		Data:      items,
		Source:    source,
		Query:     query,
		Filters:   filters,
	}

	c.remember(key, e)

	c.mu.RLock()
	store, healthy := c.store, c.dbHealthy
	c.mu.RUnlock()
	if store != nil && healthy {
		payload, _ := json.Marshal(items)
		if err := store.CacheSet(key, source, query, payload); err != nil {
			c.log.Error().Err(err).Msg("database cache write failed, disabling database tier")
			c.mu.Lock()
			c.dbHealthy = false
			c.mu.Unlock()
		}
	}

	b, err := json.Marshal(e)
	if err == nil {
		if err := os.WriteFile(filepath.Join(c.dir, key+".json"), b, 0o644); err != nil {
			c.log.Error().Err(err).Msg("file cache write failed")
		}
	}
}

// Invalidate removes one key from every tier.
func (c *Tiered) Invalidate(source, query string, filters domain.SearchFilters) {
	key := Key(source, query, filters)

	c.mu.Lock()
	delete(c.entries, key)
	store := c.store
	c.mu.Unlock()

	if store != nil {
		_ = store.CacheDelete(key)
	}
	_ = os.Remove(filepath.Join(c.dir, key+".json"))
}

// ClearExpired sweeps every tier for entries older than the TTL.
func (c *Tiered) ClearExpired() {
	now := time.Now().UnixMilli()

	c.mu.Lock()
	for key, e := range c.entries {
		if now-e.Timestamp >= c.ttl.Milliseconds() {
			delete(c.entries, key)
		}
	}
	store := c.store
	c.mu.Unlock()

	if store != nil {
		if _, err := store.CacheSweep(c.ttl); err != nil {
			c.log.Error().Err(err).Msg("database cache sweep failed")
		}
	}

	files, err := os.ReadDir(c.dir)
	if err != nil {
		return
	}
	for _, f := range files {
		if !strings.HasSuffix(f.Name(), ".json") {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		if time.Since(info.ModTime()) >= c.ttl {
			_ = os.Remove(filepath.Join(c.dir, f.Name()))
		}
	}
}

// Stats reports entry counts and sizes per tier.
type Stats struct {
	MemoryEntries      int     `json:"memory_entries"`
	FileEntries        int     `json:"file_entries"`
	TotalSizeBytes     int64   `json:"total_size_bytes"`
	CacheDurationHours float64 `json:"cache_duration_hours"`
	DatabaseEntries    int     `json:"database_entries"`
	DatabaseSizeBytes  int64   `json:"database_size_bytes"`
	DatabaseEnabled    bool    `json:"database_enabled"`
}

func (c *Tiered) Stats() Stats {
	c.mu.RLock()
	stats := Stats{
		MemoryEntries:      len(c.entries),
		CacheDurationHours: c.ttl.Hours(),
		DatabaseEnabled:    c.store != nil && c.dbHealthy,
	}
	store, healthy := c.store, c.dbHealthy
	c.mu.RUnlock()

	if store != nil && healthy {
		if entries, bytes, err := store.CacheStats(); err == nil {
			stats.DatabaseEntries = entries
			stats.DatabaseSizeBytes = bytes
		}
	}

	files, err := os.ReadDir(c.dir)
	if err == nil {
		for _, f := range files {
			if !strings.HasSuffix(f.Name(), ".json") {
				continue
			}
			stats.FileEntries++
			if info, err := f.Info(); err == nil {
				stats.TotalSizeBytes += info.Size()
			}
		}
	}

	return stats
}

// ClearAll drops every entry from every tier.
func (c *Tiered) ClearAll() {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	store := c.store
	c.mu.Unlock()

	if store != nil {
		if err := store.CacheClear(); err != nil {
			c.log.Error().Err(err).Msg("database cache clear failed")
		}
	}

	files, err := os.ReadDir(c.dir)
	if err != nil {
		return
	}
	for _, f := range files {
		if strings.HasSuffix(f.Name(), ".json") {
			_ = os.Remove(filepath.Join(c.dir, f.Name()))
		}
	}
}

func (c *Tiered) fresh(timestampMillis int64) bool {
	return time.Now().UnixMilli()-timestampMillis < c.ttl.Milliseconds()
}

func (c *Tiered) remember(key string, e entry) {
	c.mu.Lock()
	c.entries[key] = e
	c.mu.Unlock()
}
