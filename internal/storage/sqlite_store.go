// Package storage persists products, cache entries, and sessions in a
// single sqlite database.
package storage

import (
	"database/sql"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	_ "github.com/mattn/go-sqlite3"

	"github.com/denisok6893-rgb/furniture-style-matching/internal/domain"
)

type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys=ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) EnsureSchema() error {
	const createTables = `
CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  price REAL NOT NULL DEFAULT 0,
  image_url TEXT NOT NULL DEFAULT '',
  description TEXT NOT NULL DEFAULT '',
  category TEXT NOT NULL DEFAULT '',
  style TEXT NOT NULL DEFAULT '',
  colors_json TEXT NOT NULL DEFAULT '[]',
  source TEXT NOT NULL DEFAULT '',
  url TEXT NOT NULL DEFAULT '',
  location TEXT NOT NULL DEFAULT '',
  dimensions_json TEXT NOT NULL DEFAULT 'null'
);

CREATE TABLE IF NOT EXISTS cache_entries (
  key TEXT PRIMARY KEY,
  source TEXT NOT NULL DEFAULT '',
  query TEXT NOT NULL DEFAULT '',
  payload_json TEXT NOT NULL,
  created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS sessions (
  id TEXT PRIMARY KEY,
  payload_json TEXT NOT NULL,
  last_activity_at INTEGER NOT NULL
);
`
	if _, err := s.db.Exec(createTables); err != nil {
		return err
	}

	if _, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);`); err != nil {
		return err
	}
	if _, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_products_price ON products(price);`); err != nil {
		return err
	}
	if _, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_cache_created ON cache_entries(created_at);`); err != nil {
		return err
	}

	return nil
}

// ---- Products ----

func (s *SQLiteStore) CountProducts() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&n)
	return n, err
}

// UpsertMany seeds the initial catalog without duplicating by id.
func (s *SQLiteStore) UpsertMany(items []domain.Item) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
INSERT OR IGNORE INTO products
(id, title, price, image_url, description, category, style, colors_json, source, url, location, dimensions_json)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, item := range items {
		colors, _ := json.Marshal(item.Colors)
		dims, _ := json.Marshal(item.Dimensions)

		if _, err := stmt.Exec(
			item.ID, item.Title, item.Price, item.ImageURL, item.Description,
			item.Category, item.Style, string(colors), item.Source, item.URL,
			item.Location, string(dims),
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// SaveProduct inserts or replaces a single product.
func (s *SQLiteStore) SaveProduct(item domain.Item) error {
	colors, _ := json.Marshal(item.Colors)
	dims, _ := json.Marshal(item.Dimensions)

	_, err := s.db.Exec(`
INSERT OR REPLACE INTO products
(id, title, price, image_url, description, category, style, colors_json, source, url, location, dimensions_json)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`,
		item.ID, item.Title, item.Price, item.ImageURL, item.Description,
		item.Category, item.Style, string(colors), item.Source, item.URL,
		item.Location, string(dims),
	)
	return err
}

func (s *SQLiteStore) GetProduct(id string) (domain.Item, bool, error) {
	row := s.db.QueryRow(`
SELECT id, title, price, image_url, description, category, style, colors_json, source, url, location, dimensions_json
FROM products WHERE id = ?
`, id)

	item, err := scanProduct(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Item{}, false, nil
	}
	if err != nil {
		return domain.Item{}, false, err
	}
	return item, true, nil
}

// ListProducts applies the search filters with a WHERE builder and returns
// a page of products plus the total count under the same filter.
func (s *SQLiteStore) ListProducts(f domain.SearchFilters, limit, offset int) ([]domain.Item, int, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	where := make([]string, 0, 4)
	args := make([]any, 0, 8)

	if strings.TrimSpace(f.Category) != "" {
		where = append(where, "category = ?")
		args = append(args, f.Category)
	}
	if f.MinPrice > 0 {
		where = append(where, "price >= ?")
		args = append(args, f.MinPrice)
	}
	if f.MaxPrice > 0 {
		where = append(where, "price <= ?")
		args = append(args, f.MaxPrice)
	}
	if strings.TrimSpace(f.Style) != "" {
		where = append(where, "style = ?")
		args = append(args, f.Style)
	}
	if len(f.Sources) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(f.Sources)), ",")
		where = append(where, "source IN ("+placeholders+")")
		for _, src := range f.Sources {
			args = append(args, src)
		}
	}

	whereSQL := ""
	if len(where) > 0 {
		whereSQL = "WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM products "+whereSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rowsSQL := `
SELECT id, title, price, image_url, description, category, style, colors_json, source, url, location, dimensions_json
FROM products
` + whereSQL + "\nORDER BY id\nLIMIT ? OFFSET ?"

	rowsArgs := append(append([]any{}, args...), limit, offset)

	rows, err := s.db.Query(rowsSQL, rowsArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.Item
	for rows.Next() {
		item, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, item)
	}
	return out, total, rows.Err()
}

func scanProduct(scan func(dest ...any) error) (domain.Item, error) {
	var item domain.Item
	var colorsJSON, dimsJSON string

	err := scan(
		&item.ID, &item.Title, &item.Price, &item.ImageURL, &item.Description,
		&item.Category, &item.Style, &colorsJSON, &item.Source, &item.URL,
		&item.Location, &dimsJSON,
	)
	if err != nil {
		return domain.Item{}, err
	}

	_ = json.Unmarshal([]byte(colorsJSON), &item.Colors)
	_ = json.Unmarshal([]byte(dimsJSON), &item.Dimensions)
	return item, nil
}

// ---- Cache entries ----

func (s *SQLiteStore) CacheGet(key string, maxAge time.Duration) ([]byte, bool, error) {
	var payload string
	var createdAt int64

	err := s.db.QueryRow(`SELECT payload_json, created_at FROM cache_entries WHERE key = ?`, key).
		Scan(&payload, &createdAt)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	if time.Since(time.UnixMilli(createdAt)) >= maxAge {
		_, _ = s.db.Exec(`DELETE FROM cache_entries WHERE key = ?`, key)
		return nil, false, nil
	}
	return []byte(payload), true, nil
}

func (s *SQLiteStore) CacheSet(key, source, query string, payload []byte) error {
	_, err := s.db.Exec(`
INSERT OR REPLACE INTO cache_entries (key, source, query, payload_json, created_at)
VALUES (?, ?, ?, ?, ?)
`, key, source, query, string(payload), time.Now().UnixMilli())
	return err
}

func (s *SQLiteStore) CacheDelete(key string) error {
	_, err := s.db.Exec(`DELETE FROM cache_entries WHERE key = ?`, key)
	return err
}

func (s *SQLiteStore) CacheClear() error {
	_, err := s.db.Exec(`DELETE FROM cache_entries`)
	return err
}

// CacheSweep deletes entries older than maxAge and reports how many went.
func (s *SQLiteStore) CacheSweep(maxAge time.Duration) (int, error) {
	cutoff := time.Now().Add(-maxAge).UnixMilli()
	res, err := s.db.Exec(`DELETE FROM cache_entries WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

func (s *SQLiteStore) CacheStats() (entries int, bytes int64, err error) {
	err = s.db.QueryRow(`SELECT COUNT(*), COALESCE(SUM(LENGTH(payload_json)), 0) FROM cache_entries`).
		Scan(&entries, &bytes)
	return entries, bytes, err
}

// ---- Sessions ----

func (s *SQLiteStore) SaveSession(id string, payload []byte, lastActivity time.Time) error {
	_, err := s.db.Exec(`
INSERT OR REPLACE INTO sessions (id, payload_json, last_activity_at)
VALUES (?, ?, ?)
`, id, string(payload), lastActivity.UnixMilli())
	return err
}

func (s *SQLiteStore) GetSession(id string) ([]byte, bool, error) {
	var payload string
	err := s.db.QueryRow(`SELECT payload_json FROM sessions WHERE id = ?`, id).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(payload), true, nil
}

func (s *SQLiteStore) DeleteSession(id string) error {
	_, err := s.db.Exec(`DELETE FROM sessions WHERE id = ?`, id)
	return err
}
