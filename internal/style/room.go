package style

import (
	"math"
	"sort"

	"github.com/denisok6893-rgb/furniture-style-matching/internal/domain"
)

// Items with classification confidence at or below this threshold carry too
// little signal to influence the room-level result.
const roomConfidenceFloor = 0.3

// AnalyzeRoom classifies every item and aggregates the confident ones into
// a dominant room style. An empty input yields style "unknown"; a room
// where no item cleared the confidence floor yields style "mixed". Both
// carry confidence 0.
func AnalyzeRoom(items []domain.Item) domain.RoomAnalysis {
	if len(items) == 0 {
		return domain.RoomAnalysis{Style: "unknown", Confidence: 0}
	}

	scores := newScoreMap()
	included := 0

	for _, item := range items {
		analysis := AnalyzeItem(item)
		if analysis.Confidence > roomConfidenceFloor {
			for name, s := range analysis.StyleScores {
				scores[name] += s * analysis.Confidence
			}
			included++
		}
	}

	if included > 0 {
		for name := range scores {
			scores[name] /= float64(included)
		}
	}

	result := domain.RoomAnalysis{
		StyleScores: scores,
		Analysis: domain.RoomAnalysisDetail{
			ItemsAnalyzed:     included,
			TotalItems:        len(items),
			RecommendedStyles: recommendStyles(scores),
			ColorPalette:      extractPalette(items),
			PriceRange:        priceStats(items),
		},
	}

	if included == 0 {
		result.Style = "mixed"
		result.Confidence = 0
		return result
	}

	result.Style = dominant(scores)
	result.Confidence = scores[result.Style]
	return result
}

// recommendStyles returns the top 3 styles by room score, rounded to two
// decimals. Ties keep taxonomy order.
func recommendStyles(scores map[string]float64) []domain.RankedStyle {
	ranked := make([]domain.RankedStyle, 0, len(Taxonomy))
	for _, d := range Taxonomy {
		ranked = append(ranked, domain.RankedStyle{
			Style: d.Name,
			Score: math.Round(scores[d.Name]*100) / 100,
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	if len(ranked) > 3 {
		ranked = ranked[:3]
	}
	return ranked
}

// extractPalette returns up to 8 of the most frequent colors across the
// items. Frequency ties keep first-seen order.
func extractPalette(items []domain.Item) []string {
	counts := make(map[string]int)
	var order []string

	for _, item := range items {
		for _, c := range item.Colors {
			if counts[c] == 0 {
				order = append(order, c)
			}
			counts[c]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool { return counts[order[i]] > counts[order[j]] })
	if len(order) > 8 {
		order = order[:8]
	}
	return order
}

// priceStats summarizes prices over items with price > 0; the average is
// rounded to a whole amount.
func priceStats(items []domain.Item) domain.PriceStats {
	var prices []float64
	for _, item := range items {
		if item.Price > 0 {
			prices = append(prices, item.Price)
		}
	}
	if len(prices) == 0 {
		return domain.PriceStats{}
	}

	min, max, sum := prices[0], prices[0], 0.0
	for _, p := range prices {
		min = math.Min(min, p)
		max = math.Max(max, p)
		sum += p
	}

	return domain.PriceStats{
		Min:     min,
		Max:     max,
		Average: math.Round(sum / float64(len(prices))),
	}
}
