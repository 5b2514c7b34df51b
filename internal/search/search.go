// Package search fans a query out over the catalog sources, merges and
// filters the results, and keeps them warm in the tiered cache.
package search

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/denisok6893-rgb/furniture-style-matching/internal/cache"
	"github.com/denisok6893-rgb/furniture-style-matching/internal/domain"
)

// ProductStore persists discovered items. Implemented by
// storage.SQLiteStore.
type ProductStore interface {
	SaveProduct(item domain.Item) error
}

type Service struct {
	sources []Source
	cache   *cache.Tiered
	store   ProductStore
	log     zerolog.Logger
}

// NewService wires the sources to the cache. cache and store may be nil.
func NewService(sources []Source, c *cache.Tiered, store ProductStore, logger zerolog.Logger) *Service {
	return &Service{sources: sources, cache: c, store: store, log: logger}
}

// Search queries every source in parallel, merges the results in source
// order, and applies the filters. Combined results are cached under the
// "combined" source key; a source failure drops that source's results
// rather than failing the search. Empty merges fall back to the default
// result set.
func (s *Service) Search(ctx context.Context, query string, filters domain.SearchFilters) ([]domain.Item, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get("combined", query, filters); ok {
			s.log.Debug().Str("query", query).Int("results", len(cached)).Msg("combined cache hit")
			return applyFilters(cached, filters), nil
		}
	}

	perSource := make([][]domain.Item, len(s.sources))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range s.sources {
		i, src := i, src
		g.Go(func() error {
			items := s.searchWithCache(gctx, src, query, filters)
			mu.Lock()
			perSource[i] = items
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []domain.Item
	for _, items := range perSource {
		all = append(all, items...)
	}

	if len(all) == 0 {
		s.log.Info().Str("query", query).Msg("no source results, using fallback data")
		all = fallbackResults()
	}

	if s.cache != nil {
		s.cache.Set("combined", query, filters, all)
	}
	if s.store != nil {
		for _, item := range all {
			if err := s.store.SaveProduct(item); err != nil {
				s.log.Error().Err(err).Str("id", item.ID).Msg("save product failed")
			}
		}
	}

	return applyFilters(all, filters), nil
}

func (s *Service) searchWithCache(ctx context.Context, src Source, query string, filters domain.SearchFilters) []domain.Item {
	if s.cache != nil {
		if cached, ok := s.cache.Get(src.Name(), query, filters); ok {
			return cached
		}
	}

	items, err := src.Search(ctx, query, filters)
	if err != nil {
		s.log.Error().Err(err).Str("source", src.Name()).Msg("source search failed")
		return nil
	}

	if s.cache != nil && len(items) > 0 {
		s.cache.Set(src.Name(), query, filters, items)
	}
	return items
}

func applyFilters(items []domain.Item, f domain.SearchFilters) []domain.Item {
	out := items
	if f.Category != "" {
		out = keep(out, func(i domain.Item) bool { return i.Category == f.Category })
	}
	if f.MinPrice > 0 {
		out = keep(out, func(i domain.Item) bool { return i.Price >= f.MinPrice })
	}
	if f.MaxPrice > 0 {
		out = keep(out, func(i domain.Item) bool { return i.Price <= f.MaxPrice })
	}
	if f.Style != "" {
		out = keep(out, func(i domain.Item) bool { return i.Style == f.Style })
	}
	if len(f.Sources) > 0 {
		allowed := make(map[string]struct{}, len(f.Sources))
		for _, src := range f.Sources {
			allowed[src] = struct{}{}
		}
		out = keep(out, func(i domain.Item) bool {
			_, ok := allowed[i.Source]
			return ok
		})
	}
	return out
}

func keep(items []domain.Item, pred func(domain.Item) bool) []domain.Item {
	out := make([]domain.Item, 0, len(items))
	for _, i := range items {
		if pred(i) {
			out = append(out, i)
		}
	}
	return out
}
