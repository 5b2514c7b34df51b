package search

import (
	"context"
	"strings"

	"github.com/denisok6893-rgb/furniture-style-matching/internal/domain"
)

// Source produces listings for a query. The bundled sources serve a static
// catalog; a live scraper can implement the same interface.
type Source interface {
	Name() string
	Search(ctx context.Context, query string, filters domain.SearchFilters) ([]domain.Item, error)
}

// DetectCategory maps query keywords to a primary category, defaulting to
// table.
func DetectCategory(query string) string {
	q := strings.ToLower(query)
	switch {
	case strings.Contains(q, "coffee table") || strings.Contains(q, "side table"):
		return "table"
	case strings.Contains(q, "sofa") || strings.Contains(q, "couch"):
		return "sofa"
	case strings.Contains(q, "chair"):
		return "chair"
	case strings.Contains(q, "bed"):
		return "bed"
	case strings.Contains(q, "lamp"):
		return "lamp"
	case strings.Contains(q, "rug"):
		return "rug"
	}
	return "table"
}

// Static is a catalog-backed source.
type Static struct {
	name    string
	catalog []domain.Item
}

func (s *Static) Name() string { return s.name }

// Search returns catalog items in the query's detected category.
func (s *Static) Search(_ context.Context, query string, _ domain.SearchFilters) ([]domain.Item, error) {
	category := DetectCategory(query)
	var out []domain.Item
	for _, item := range s.catalog {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out, nil
}

// NewFacebook returns the Facebook Marketplace catalog source.
func NewFacebook() *Static {
	return &Static{name: "facebook", catalog: []domain.Item{
		{
			ID:          "fb_coffee_1",
			Title:       "Modern Coffee Table with Storage",
			Price:       299,
			ImageURL:    "https://images.unsplash.com/photo-1555041469-a586c61ea9bc?w=300&h=200&fit=crop",
			Description: "Contemporary coffee table with hidden storage compartment",
			Category:    "table",
			Style:       "modern",
			Colors:      []string{"#8B4513", "#696969"},
			Source:      "facebook",
			URL:         "https://facebook.com/marketplace/coffee-table-1",
			Location:    "San Francisco, CA",
			Dimensions:  &domain.Dimensions{Width: 48, Height: 18, Depth: 24},
		},
		{
			ID:          "fb_sofa_1",
			Title:       "Modern Gray Sectional Sofa",
			Price:       899,
			ImageURL:    "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=300&h=200&fit=crop",
			Description: "Comfortable modern sectional sofa in gray fabric",
			Category:    "sofa",
			Style:       "modern",
			Colors:      []string{"#808080", "#A0A0A0"},
			Source:      "facebook",
			URL:         "https://facebook.com/marketplace/sectional-sofa",
			Location:    "San Francisco, CA",
			Dimensions:  &domain.Dimensions{Width: 84, Height: 36, Depth: 60},
		},
	}}
}

// NewWestElm returns the West Elm catalog source.
func NewWestElm() *Static {
	return &Static{name: "westelm", catalog: []domain.Item{
		{
			ID:          "we_coffee_1",
			Title:       "Mid-Century Coffee Table",
			Price:       449,
			ImageURL:    "https://images.unsplash.com/photo-1549497538-303791108f95?w=300&h=200&fit=crop",
			Description: "Classic mid-century modern coffee table in walnut",
			Category:    "table",
			Style:       "modern",
			Colors:      []string{"#8B4513", "#D2B48C"},
			Source:      "westelm",
			URL:         "https://westelm.com/coffee-table-midcentury",
			Dimensions:  &domain.Dimensions{Width: 52, Height: 16, Depth: 28},
		},
		{
			ID:          "we_sofa_1",
			Title:       "Mid-Century Modern Sofa",
			Price:       1299,
			ImageURL:    "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=300&h=200&fit=crop",
			Description: "Classic mid-century modern sofa in navy blue",
			Category:    "sofa",
			Style:       "modern",
			Colors:      []string{"#191970", "#4169E1"},
			Source:      "westelm",
			URL:         "https://westelm.com/midcentury-sofa",
			Dimensions:  &domain.Dimensions{Width: 72, Height: 32, Depth: 36},
		},
		{
			ID:          "we_chair_1",
			Title:       "Modern Dining Chair Set",
			Price:       299,
			ImageURL:    "https://images.unsplash.com/photo-1506439773649-6e0eb8cfb237?w=300&h=200&fit=crop",
			Description: "Set of 2 modern dining chairs",
			Category:    "chair",
			Style:       "modern",
			Colors:      []string{"#8B4513", "#D2B48C"},
			Source:      "westelm",
			URL:         "https://westelm.com/dining-chairs",
			Dimensions:  &domain.Dimensions{Width: 20, Height: 32, Depth: 22},
		},
	}}
}

// NewCB2 returns the CB2 catalog source.
func NewCB2() *Static {
	return &Static{name: "cb2", catalog: []domain.Item{
		{
			ID:          "cb2_coffee_1",
			Title:       "Glass Coffee Table",
			Price:       399,
			ImageURL:    "https://images.unsplash.com/photo-1555041469-a586c61ea9bc?w=300&h=200&fit=crop",
			Description: "Sleek glass coffee table with metal frame",
			Category:    "table",
			Style:       "modern",
			Colors:      []string{"#FFFFFF", "#C0C0C0"},
			Source:      "cb2",
			URL:         "https://cb2.com/glass-coffee-table",
			Dimensions:  &domain.Dimensions{Width: 44, Height: 17, Depth: 22},
		},
		{
			ID:          "cb2_chair_1",
			Title:       "Velvet Accent Chair",
			Price:       399,
			ImageURL:    "https://images.unsplash.com/photo-1506439773649-6e0eb8cfb237?w=300&h=200&fit=crop",
			Description: "Luxurious velvet accent chair in navy blue",
			Category:    "chair",
			Style:       "modern",
			Colors:      []string{"#4169E1", "#191970"},
			Source:      "cb2",
			URL:         "https://cb2.com/velvet-accent-chair",
			Dimensions:  &domain.Dimensions{Width: 32, Height: 34, Depth: 30},
		},
	}}
}

// fallbackResults is the default mixed result set used when every source
// comes back empty for a query.
func fallbackResults() []domain.Item {
	return []domain.Item{
		{
			ID:          "fb_1",
			Title:       "Modern Coffee Table",
			Price:       299,
			ImageURL:    "https://images.unsplash.com/photo-1555041469-a586c61ea9bc?w=300&h=200&fit=crop",
			Description: "Contemporary coffee table with clean lines",
			Category:    "table",
			Style:       "modern",
			Colors:      []string{"#8B4513", "#696969"},
			Source:      "facebook",
			URL:         "https://facebook.com/marketplace/item/1",
			Location:    "San Francisco, CA",
			Dimensions:  &domain.Dimensions{Width: 48, Height: 18, Depth: 24},
		},
	}
}
