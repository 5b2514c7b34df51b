package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/denisok6893-rgb/furniture-style-matching/internal/config"
	"github.com/denisok6893-rgb/furniture-style-matching/internal/storage"
)

func TestNewLogger_LevelParsing(t *testing.T) {
	t.Parallel()

	logger := newLogger(config.LogConfig{Level: "debug"})
	if got := logger.GetLevel(); got != zerolog.DebugLevel {
		t.Errorf("level=%v want=debug", got)
	}
}

func TestNewLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	t.Parallel()

	logger := newLogger(config.LogConfig{Level: "chatty", Pretty: true})
	if got := logger.GetLevel(); got != zerolog.InfoLevel {
		t.Errorf("level=%v want=info", got)
	}
}

func TestSeedCatalog(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := storage.OpenSQLite(filepath.Join(dir, "seed.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer store.Close()
	if err := store.EnsureSchema(); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}

	catalogPath := filepath.Join(dir, "catalog.json")
	payload := []byte(`[{"id":"seed_1","title":"Walnut Side Table","price":120,"category":"table","style":"modern","colors":["#8B4513"],"source":"facebook"}]`)
	if err := os.WriteFile(catalogPath, payload, 0o644); err != nil {
		t.Fatal(err)
	}

	logger := zerolog.Nop()
	seedCatalog(logger, store, catalogPath)

	count, err := store.CountProducts()
	if err != nil {
		t.Fatalf("count products: %v", err)
	}
	if count != 1 {
		t.Fatalf("count=%d want=1", count)
	}

	// A second run against a populated table is a no-op.
	seedCatalog(logger, store, catalogPath)
	count, err = store.CountProducts()
	if err != nil {
		t.Fatalf("count products: %v", err)
	}
	if count != 1 {
		t.Errorf("count after reseed=%d want=1", count)
	}
}
