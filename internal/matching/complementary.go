package matching

import "github.com/denisok6893-rgb/furniture-style-matching/internal/domain"

// ComplementaryItems builds the room-completing candidate pool for a
// selected item. The pool is curated per category; generated candidates
// inherit the selected item's style and, where it makes sense, its colors.
func ComplementaryItems(selected domain.Item) []domain.Item {
	baseStyle := selected.Style
	if baseStyle == "" {
		baseStyle = "modern"
	}
	baseColors := selected.Colors
	if len(baseColors) == 0 {
		baseColors = []string{"#808080", "#C0C0C0"}
	}

	switch selected.Category {
	case "table":
		return []domain.Item{
			{
				ID:          "comp_sofa_1",
				Title:       "Modern Sectional Sofa",
				Price:       1299,
				ImageURL:    "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=400&h=300&fit=crop&auto=format",
				Description: "Comfortable sectional sofa that complements your coffee table",
				Category:    "sofa",
				Style:       baseStyle,
				Colors:      baseColors,
				Source:      "westelm",
				URL:         "https://westelm.com/sectional-sofa-complement",
				Dimensions:  &domain.Dimensions{Width: 84, Height: 36, Depth: 60},
			},
			{
				ID:          "comp_rug_1",
				Title:       "Area Rug - Geometric Pattern",
				Price:       299,
				ImageURL:    "https://images.unsplash.com/photo-1506439773649-6e0eb8cfb237?w=400&h=300&fit=crop&auto=format",
				Description: "Geometric area rug that ties the room together",
				Category:    "rug",
				Style:       baseStyle,
				Colors:      baseColors,
				Source:      "cb2",
				URL:         "https://cb2.com/geometric-area-rug",
				Dimensions:  &domain.Dimensions{Width: 96, Height: 1, Depth: 60},
			},
			{
				ID:          "comp_lamp_1",
				Title:       "Floor Lamp - Arc Design",
				Price:       399,
				ImageURL:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=300&fit=crop&auto=format",
				Description: "Modern arc floor lamp for ambient lighting",
				Category:    "lamp",
				Style:       baseStyle,
				Colors:      []string{"#C0C0C0", "#333333"},
				Source:      "westelm",
				URL:         "https://westelm.com/arc-floor-lamp",
			},
			{
				ID:          "comp_chair_1",
				Title:       "Accent Chair - Velvet",
				Price:       599,
				ImageURL:    "https://images.unsplash.com/photo-1506439773649-6e0eb8cfb237?w=400&h=300&fit=crop&auto=format",
				Description: "Plush velvet accent chair for extra seating",
				Category:    "chair",
				Style:       baseStyle,
				Colors:      baseColors,
				Source:      "cb2",
				URL:         "https://cb2.com/velvet-accent-chair-match",
				Dimensions:  &domain.Dimensions{Width: 32, Height: 34, Depth: 30},
			},
			{
				ID:          "comp_table_1",
				Title:       "Side Table - Matching Set",
				Price:       249,
				ImageURL:    "https://images.unsplash.com/photo-1555041469-a586c61ea9bc?w=400&h=300&fit=crop&auto=format",
				Description: "Side table that perfectly matches your coffee table",
				Category:    "side_table",
				Style:       baseStyle,
				Colors:      baseColors,
				Source:      "facebook",
				URL:         "https://facebook.com/marketplace/side-table-match",
				Location:    "San Francisco, CA",
				Dimensions:  &domain.Dimensions{Width: 20, Height: 24, Depth: 20},
			},
			{
				ID:          "comp_curtains_1",
				Title:       "Window Curtains - Linen",
				Price:       89,
				ImageURL:    "https://images.unsplash.com/photo-1513694203232-719a280e022f?w=400&h=300&fit=crop&auto=format",
				Description: "Natural linen curtains to complete the room",
				Category:    "curtains",
				Style:       baseStyle,
				Colors:      []string{"#F5F5DC", "#E6E6FA"},
				Source:      "westelm",
				URL:         "https://westelm.com/linen-curtains",
			},
		}

	case "sofa":
		return []domain.Item{
			{
				ID:          "comp_coffee_1",
				Title:       "Coffee Table - Glass Top",
				Price:       449,
				ImageURL:    "https://images.unsplash.com/photo-1555041469-a586c61ea9bc?w=400&h=300&fit=crop&auto=format",
				Description: "Glass coffee table that complements your sofa",
				Category:    "table",
				Style:       baseStyle,
				Colors:      []string{"#FFFFFF", "#C0C0C0"},
				Source:      "westelm",
				URL:         "https://westelm.com/glass-coffee-table",
				Dimensions:  &domain.Dimensions{Width: 48, Height: 18, Depth: 24},
			},
			{
				ID:          "comp_rug_2",
				Title:       "Living Room Rug",
				Price:       399,
				ImageURL:    "https://images.unsplash.com/photo-1506439773649-6e0eb8cfb237?w=400&h=300&fit=crop&auto=format",
				Description: "Soft area rug to anchor your seating area",
				Category:    "rug",
				Style:       baseStyle,
				Colors:      baseColors,
				Source:      "cb2",
				URL:         "https://cb2.com/living-room-rug",
				Dimensions:  &domain.Dimensions{Width: 108, Height: 1, Depth: 72},
			},
			{
				ID:          "comp_lamp_2",
				Title:       "Table Lamp Pair",
				Price:       199,
				ImageURL:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=300&fit=crop&auto=format",
				Description: "Matching table lamps for side tables",
				Category:    "lamp",
				Style:       baseStyle,
				Colors:      []string{"#8B4513", "#D2B48C"},
				Source:      "westelm",
				URL:         "https://westelm.com/table-lamp-pair",
			},
			{
				ID:          "comp_pillows_1",
				Title:       "Throw Pillow Set",
				Price:       79,
				ImageURL:    "https://images.unsplash.com/photo-1513694203232-719a280e022f?w=400&h=300&fit=crop&auto=format",
				Description: "Coordinating throw pillows for your sofa",
				Category:    "decor",
				Style:       baseStyle,
				Colors:      baseColors,
				Source:      "cb2",
				URL:         "https://cb2.com/throw-pillow-set",
			},
		}

	case "chair":
		return []domain.Item{
			{
				ID:          "comp_side_table_1",
				Title:       "Side Table - Round",
				Price:       199,
				ImageURL:    "https://images.unsplash.com/photo-1555041469-a586c61ea9bc?w=400&h=300&fit=crop&auto=format",
				Description: "Round side table perfect next to your chair",
				Category:    "table",
				Style:       baseStyle,
				Colors:      baseColors,
				Source:      "facebook",
				URL:         "https://facebook.com/marketplace/round-side-table",
				Location:    "Oakland, CA",
				Dimensions:  &domain.Dimensions{Width: 20, Height: 24, Depth: 20},
			},
			{
				ID:          "comp_reading_lamp_1",
				Title:       "Reading Floor Lamp",
				Price:       299,
				ImageURL:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=300&fit=crop&auto=format",
				Description: "Adjustable reading lamp for your chair area",
				Category:    "lamp",
				Style:       baseStyle,
				Colors:      []string{"#000000", "#C0C0C0"},
				Source:      "westelm",
				URL:         "https://westelm.com/reading-floor-lamp",
			},
			{
				ID:          "comp_small_rug_1",
				Title:       "Accent Rug",
				Price:       149,
				ImageURL:    "https://images.unsplash.com/photo-1506439773649-6e0eb8cfb237?w=400&h=300&fit=crop&auto=format",
				Description: "Small accent rug to define your reading nook",
				Category:    "rug",
				Style:       baseStyle,
				Colors:      baseColors,
				Source:      "cb2",
				URL:         "https://cb2.com/accent-rug",
				Dimensions:  &domain.Dimensions{Width: 48, Height: 1, Depth: 36},
			},
		}
	}

	return []domain.Item{
		{
			ID:          "comp_default_1",
			Title:       "Complementary Furniture Piece",
			Price:       299,
			ImageURL:    "https://images.unsplash.com/photo-1555041469-a586c61ea9bc?w=400&h=300&fit=crop&auto=format",
			Description: "Furniture piece that complements your selection",
			Category:    "decor",
			Style:       baseStyle,
			Colors:      baseColors,
			Source:      "westelm",
			URL:         "https://westelm.com/complementary-piece",
		},
	}
}
