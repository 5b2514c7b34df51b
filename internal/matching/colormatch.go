package matching

import (
	"sort"

	"github.com/denisok6893-rgb/furniture-style-matching/internal/color"
	"github.com/denisok6893-rgb/furniture-style-matching/internal/domain"
)

// ColorMatchOptions configures color-first ranking. HarmonyType and
// ToleranceLevel are accepted for API compatibility and recorded defaults;
// scoring currently derives harmonies from the palettes themselves.
type ColorMatchOptions struct {
	HarmonyType     color.HarmonyType `json:"harmony_type,omitempty"`
	ToleranceLevel  float64           `json:"tolerance_level,omitempty"`
	IncludeNeutrals bool              `json:"include_neutrals"`
	RoomType        string            `json:"room_type,omitempty"`
}

// DefaultColorMatchOptions returns the documented defaults: complementary
// harmony, tolerance 0.5, neutrals included, living room.
func DefaultColorMatchOptions() ColorMatchOptions {
	return ColorMatchOptions{
		HarmonyType:     color.Complementary,
		ToleranceLevel:  0.5,
		IncludeNeutrals: true,
		RoomType:        "living",
	}
}

// Blend weights for the color-first score.
const (
	compatibilityWeight = 0.4
	harmonyWeight       = 0.3
	roomPaletteWeight   = 0.2
	neutralWeight       = 0.1
)

// FindColorMatches scores candidates against the target palette by blending
// palette compatibility, the best detected harmony, proximity to the room's
// suggested palette, and a neutral-color bonus. Candidates without colors
// score 0. The result is sorted by ColorMatchScore, best first.
func FindColorMatches(targetColors []string, candidates []domain.Item, opts ColorMatchOptions) []domain.MatchedItem {
	if opts.RoomType == "" {
		opts.RoomType = "living"
	}

	out := make([]domain.MatchedItem, 0, len(candidates))
	for _, item := range candidates {
		out = append(out, scoreColorMatch(targetColors, item, opts))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ColorMatchScore > out[j].ColorMatchScore
	})
	return out
}

func scoreColorMatch(targetColors []string, item domain.Item, opts ColorMatchOptions) domain.MatchedItem {
	if len(item.Colors) == 0 {
		return domain.MatchedItem{
			Item:            item,
			ColorMatchScore: 0,
			MatchReason:     "No colors available",
		}
	}

	var score float64

	compatibility := color.Compatibility(targetColors, item.Colors)
	score += compatibility * compatibilityWeight

	harmony := color.BestHarmony(targetColors, item.Colors)
	score += harmony.Score * harmonyWeight

	if len(targetColors) > 0 {
		if palette, err := color.PaletteForRoom(targetColors[0], opts.RoomType); err == nil {
			score += color.PaletteProximity(item.Colors, palette) * roomPaletteWeight
		}
	}

	var neutral float64
	if opts.IncludeNeutrals {
		neutral = color.NeutralScore(item.Colors)
		score += neutral * neutralWeight
	}

	var reason string
	switch {
	case harmony.Type != "":
		reason = harmony.Type + " color harmony"
	case compatibility > 0.6:
		reason = "Good color compatibility"
	case neutral > 0.7:
		reason = "Neutral coordination"
	default:
		reason = "Basic color match"
	}

	return domain.MatchedItem{
		Item:               item,
		ColorMatchScore:    clamp01(score),
		MatchReason:        reason,
		Harmonies:          &domain.ColorHarmony{Type: harmony.Type, Score: harmony.Score},
		CompatibilityScore: compatibility,
	}
}
