// Package matching ranks candidate furniture items against a selected item
// using a 5-factor weighted compatibility score, with an alternative
// color-first ranking for palette-driven queries.
package matching

import (
	"math"
	"sort"

	"github.com/denisok6893-rgb/furniture-style-matching/internal/color"
	"github.com/denisok6893-rgb/furniture-style-matching/internal/domain"
)

type Engine struct {
	weights Weights
}

func NewEngine(w Weights) *Engine {
	return &Engine{weights: w}
}

// compatibleStyles is the matcher's own short pairing table. It is
// intentionally narrower than the taxonomy's compatibility sets.
var compatibleStyles = map[string][]string{
	"modern":       {"minimalist", "industrial"},
	"minimalist":   {"modern", "scandinavian"},
	"rustic":       {"traditional", "industrial"},
	"traditional":  {"rustic"},
	"scandinavian": {"minimalist", "modern"},
	"industrial":   {"modern", "rustic"},
}

// complementaryCategories keys a selected category to the categories that
// complete a room around it. Same-category candidates are deliberately
// scored near zero: the goal is completing a room, not duplicating a piece.
var complementaryCategories = map[string][]string{
	"table":      {"sofa", "chair", "rug", "lamp", "curtains", "decor", "side_table"},
	"sofa":       {"table", "side_table", "rug", "lamp", "curtains", "decor"},
	"chair":      {"table", "side_table", "rug", "lamp", "decor"},
	"bed":        {"dresser", "lamp", "rug", "curtains", "decor", "side_table"},
	"dresser":    {"bed", "lamp", "decor", "curtains"},
	"lamp":       {"sofa", "chair", "table", "bed", "dresser", "side_table"},
	"rug":        {"sofa", "chair", "table", "bed"},
	"curtains":   {"sofa", "chair", "table", "bed", "dresser"},
	"decor":      {"sofa", "chair", "table", "bed", "dresser", "lamp", "side_table"},
	"side_table": {"sofa", "chair", "table", "bed", "lamp"},
}

// Score computes the weighted 5-factor match between a selected item and a
// candidate. Missing optional fields on either side yield a neutral 0.5 for
// the affected factor; the overall score is clamped to [0,1].
func (e *Engine) Score(selected, candidate domain.Item) domain.MatchScore {
	styleScore := styleScore(selected, candidate)
	colorScore := colorScore(selected, candidate)
	categoryScore := categoryScore(selected, candidate)
	priceScore := priceScore(selected, candidate)
	sizeScore := sizeScore(selected, candidate)

	overall := styleScore*e.weights.Style +
		colorScore*e.weights.Color +
		categoryScore*e.weights.Category +
		priceScore*e.weights.Price +
		sizeScore*e.weights.Size

	return domain.MatchScore{
		Overall:       clamp01(overall),
		StyleScore:    styleScore,
		ColorScore:    colorScore,
		CategoryScore: categoryScore,
		PriceScore:    priceScore,
		SizeScore:     sizeScore,
	}
}

// RankMatches scores every candidate against the selected item and returns
// them sorted by overall score, best first.
func (e *Engine) RankMatches(selected domain.Item, candidates []domain.Item) []domain.MatchedItem {
	out := make([]domain.MatchedItem, 0, len(candidates))
	for _, c := range candidates {
		score := e.Score(selected, c)
		out = append(out, domain.MatchedItem{Item: c, MatchScore: &score})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchScore.Overall > out[j].MatchScore.Overall
	})
	return out
}

// FindMatches generates the room-completing candidate pool for the selected
// item and ranks it. When the selected item carries colors the ranking is
// color-first; otherwise the 5-factor score is used.
func (e *Engine) FindMatches(selected domain.Item) []domain.MatchedItem {
	pool := ComplementaryItems(selected)

	if len(selected.Colors) > 0 {
		opts := DefaultColorMatchOptions()
		opts.RoomType = DetectRoomType(selected.Category)
		return FindColorMatches(selected.Colors, pool, opts)
	}

	return e.RankMatches(selected, pool)
}

func styleScore(selected, candidate domain.Item) float64 {
	if selected.Style == "" || candidate.Style == "" {
		return 0.5
	}
	if selected.Style == candidate.Style {
		return 1.0
	}
	for _, s := range compatibleStyles[selected.Style] {
		if s == candidate.Style {
			return 0.7
		}
	}
	return 0.3
}

// colorScore is the fraction of colors shared between the two palettes,
// where "shared" means a normalized distance under 0.3. The fraction is
// taken over the larger palette.
func colorScore(selected, candidate domain.Item) float64 {
	if selected.Colors == nil || candidate.Colors == nil {
		return 0.5
	}
	if len(selected.Colors) == 0 || len(candidate.Colors) == 0 {
		return 0.5
	}

	common := 0
	for _, sc := range selected.Colors {
		for _, cc := range candidate.Colors {
			distance, err := color.Distance(sc, cc)
			if err != nil {
				continue
			}
			if distance/300 < 0.3 {
				common++
				break
			}
		}
	}

	larger := len(selected.Colors)
	if len(candidate.Colors) > larger {
		larger = len(candidate.Colors)
	}
	return float64(common) / float64(larger)
}

func categoryScore(selected, candidate domain.Item) float64 {
	if selected.Category == "" || candidate.Category == "" {
		return 0.5
	}
	if selected.Category == candidate.Category {
		return 0.1
	}
	for _, c := range complementaryCategories[selected.Category] {
		if c == candidate.Category {
			return 0.95
		}
	}
	return 0.3
}

func priceScore(selected, candidate domain.Item) float64 {
	if selected.Price <= 0 || candidate.Price <= 0 {
		return 0.5
	}
	return math.Min(selected.Price, candidate.Price) / math.Max(selected.Price, candidate.Price)
}

// sizeScore compares floor footprints (width x depth), smaller over larger.
func sizeScore(selected, candidate domain.Item) float64 {
	if selected.Dimensions == nil || candidate.Dimensions == nil {
		return 0.5
	}

	selectedSize := selected.Dimensions.Width * selected.Dimensions.Depth
	candidateSize := candidate.Dimensions.Width * candidate.Dimensions.Depth
	if selectedSize == 0 || candidateSize == 0 {
		return 0.5
	}

	return math.Min(selectedSize, candidateSize) / math.Max(selectedSize, candidateSize)
}

// DetectRoomType infers the room a category belongs to, defaulting to
// living.
func DetectRoomType(category string) string {
	roomByCategory := map[string]string{
		"sofa":           "living",
		"chair":          "living",
		"table":          "living",
		"coffee_table":   "living",
		"side_table":     "living",
		"bed":            "bedroom",
		"dresser":        "bedroom",
		"nightstand":     "bedroom",
		"dining_table":   "dining",
		"dining_chair":   "dining",
		"kitchen_island": "kitchen",
		"bar_stool":      "kitchen",
	}
	if room, ok := roomByCategory[category]; ok {
		return room
	}
	return "living"
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
