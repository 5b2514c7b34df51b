package session

import (
	"math"
	"sort"
	"time"

	"github.com/denisok6893-rgb/furniture-style-matching/internal/domain"
)

// RecommendedItem is a catalog item annotated with its personalization score.
type RecommendedItem struct {
	domain.Item
	RecommendationScore float64 `json:"recommendation_score"`
}

// Recommend scores candidate items against the session's learned preferences
// and returns the top 10. Scoring: +3 for a preferred style, +2 per favorite
// color present on the item, +0.1 per prior result seen in the item's
// category, and up to +2 for price proximity to the session's average.
func Recommend(s *Session, items []domain.Item) []RecommendedItem {
	scored := make([]RecommendedItem, 0, len(items))
	for _, it := range items {
		score := 0.0
		if it.Style != "" && containsString(s.Preferences.PreferredStyles, it.Style) {
			score += 3
		}
		for _, c := range it.Colors {
			if containsString(s.Preferences.FavoriteColors, c) {
				score += 2
			}
		}
		score += float64(s.Stats.FavoriteCategories[it.Category]) * 0.1

		denom := math.Max(math.Max(it.Price, s.Stats.AveragePrice), 1)
		score += (1 - math.Abs(it.Price-s.Stats.AveragePrice)/denom) * 2

		scored = append(scored, RecommendedItem{Item: it, RecommendationScore: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].RecommendationScore > scored[j].RecommendationScore
	})
	if len(scored) > 10 {
		scored = scored[:10]
	}
	return scored
}

// Insights summarizes session activity for the stats endpoint.
type Insights struct {
	SessionAge             int64   `json:"session_age"`
	SessionAgeHours        float64 `json:"session_age_hours"`
	AverageSearchesPerHour float64 `json:"average_searches_per_hour"`
	TopCategory            string  `json:"top_category"`
	SearchEfficiency       float64 `json:"search_efficiency"`
}

// InsightsFor derives activity insights for a session as of now.
func InsightsFor(s *Session, now time.Time) Insights {
	ageMillis := now.UnixMilli() - s.CreatedAt
	hours := float64(ageMillis) / float64(time.Hour.Milliseconds())

	top := "none"
	best := 0
	for cat, n := range s.Stats.FavoriteCategories {
		if n > best || (n == best && best > 0 && cat < top) {
			top = cat
			best = n
		}
	}

	return Insights{
		SessionAge:             ageMillis,
		SessionAgeHours:        math.Round(hours*10) / 10,
		AverageSearchesPerHour: float64(s.Stats.TotalSearches) / math.Max(1, hours),
		TopCategory:            top,
		SearchEfficiency:       float64(s.Stats.TotalMatches) / math.Max(1, float64(s.Stats.TotalSearches)),
	}
}
