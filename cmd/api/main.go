package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/denisok6893-rgb/furniture-style-matching/internal/cache"
	"github.com/denisok6893-rgb/furniture-style-matching/internal/config"
	httpapi "github.com/denisok6893-rgb/furniture-style-matching/internal/http"
	"github.com/denisok6893-rgb/furniture-style-matching/internal/matching"
	"github.com/denisok6893-rgb/furniture-style-matching/internal/search"
	"github.com/denisok6893-rgb/furniture-style-matching/internal/session"
	"github.com/denisok6893-rgb/furniture-style-matching/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := zerolog.New(os.Stderr)
		boot.Fatal().Err(err).Msg("load config")
	}

	logger := newLogger(cfg.Log)

	store, err := storage.OpenSQLite(cfg.Storage.DatabasePath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.Storage.DatabasePath).Msg("open database")
	}
	defer store.Close()

	if err := store.EnsureSchema(); err != nil {
		logger.Fatal().Err(err).Msg("ensure schema")
	}

	seedCatalog(logger, store, cfg.Storage.CatalogPath)

	weights, err := matching.LoadWeightsFromFile(cfg.Matching.WeightsPath)
	if err != nil {
		logger.Warn().Err(err).Msg("using default match weights")
		weights = matching.DefaultWeights()
	}
	engine := matching.NewEngine(weights)

	tiered, err := cache.New(cfg.Storage.CacheDir, store, logger)
	if err != nil {
		logger.Fatal().Err(err).Str("dir", cfg.Storage.CacheDir).Msg("init cache")
	}

	sources := []search.Source{search.NewFacebook(), search.NewWestElm(), search.NewCB2()}
	searchSvc := search.NewService(sources, tiered, store, logger)
	sessions := session.NewManager(store, logger)

	srv := httpapi.NewServer(logger, engine, searchSvc, sessions, tiered, store)

	httpServer := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go sweepCache(tiered)

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("address", cfg.Server.Address).Msg("API listening")
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server error")
		}
	case sig := <-stop:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("shutdown error")
		}
	}
}

func newLogger(cfg config.LogConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out = os.Stderr
	logger := zerolog.New(out)
	if cfg.Pretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: out})
	}
	return logger.Level(level).With().Timestamp().Logger()
}

// seedCatalog loads the bundled catalog into an empty products table.
// Missing catalog files and load errors are non-fatal.
func seedCatalog(logger zerolog.Logger, store *storage.SQLiteStore, path string) {
	count, err := store.CountProducts()
	if err != nil {
		logger.Warn().Err(err).Msg("count products failed, skipping seed")
		return
	}
	if count > 0 {
		return
	}

	items, err := storage.LoadCatalogFromFile(path)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("catalog seed skipped")
		return
	}
	if err := store.UpsertMany(items); err != nil {
		logger.Warn().Err(err).Msg("catalog seed failed")
		return
	}
	logger.Info().Int("items", len(items)).Msg("seeded catalog")
}

func sweepCache(tiered *cache.Tiered) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for range ticker.C {
		tiered.ClearExpired()
	}
}
