package style

import (
	"sort"

	"github.com/denisok6893-rgb/furniture-style-matching/internal/domain"
)

// roomTypeStyles lists the styles typically suggested per room type.
var roomTypeStyles = map[string][]string{
	"living":   {"modern", "traditional", "scandinavian", "industrial"},
	"bedroom":  {"scandinavian", "minimalist", "bohemian", "traditional"},
	"kitchen":  {"modern", "industrial", "traditional", "mediterranean"},
	"dining":   {"traditional", "modern", "industrial", "mediterranean"},
	"office":   {"modern", "minimalist", "industrial", "scandinavian"},
	"bathroom": {"modern", "scandinavian", "mediterranean", "minimalist"},
}

// SuggestForRoom ranks the room type's typical styles, boosting styles that
// pair well with the dominant style of the items already in the room.
// Unknown room types fall back to living-room suggestions.
func SuggestForRoom(roomType string, currentItems []domain.Item) []domain.StyleSuggestion {
	styles, ok := roomTypeStyles[roomType]
	if !ok {
		styles = roomTypeStyles["living"]
	}

	var current *domain.RoomAnalysis
	if len(currentItems) > 0 {
		analysis := AnalyzeRoom(currentItems)
		current = &analysis
	}

	suggestions := make([]domain.StyleSuggestion, 0, len(styles))
	for _, name := range styles {
		def, _ := Lookup(name)

		score := 0.5
		if current != nil && current.Style != "unknown" {
			score += Compatibility(current.Style, name) * 0.5
		}

		suggestions = append(suggestions, domain.StyleSuggestion{
			Style: name,
			Score: score,
			Definition: domain.SuggestedDefinition{
				Colors:          firstN(def.Colors, 4),
				Characteristics: firstN(def.Characteristics, 3),
				PriceRange:      def.PriceRange,
				Description:     def.Description,
			},
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})
	return suggestions
}

func firstN(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}
