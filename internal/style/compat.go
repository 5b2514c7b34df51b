package style

import (
	"math"

	"github.com/denisok6893-rgb/furniture-style-matching/internal/color"
	"github.com/denisok6893-rgb/furniture-style-matching/internal/domain"
)

// Compatibility scores how well two styles pair, in [0,1]. Identical names
// score 1 even outside the taxonomy; one unknown name scores a neutral 0.5.
// Explicitly compatible pairs score 0.8 and opposites 0.2, judged from the
// first style's lists (the tables are not fully symmetric). Everything else
// falls back to 0.6×palette compatibility + 0.4×price-band overlap.
func Compatibility(style1, style2 string) float64 {
	if style1 == style2 {
		return 1.0
	}

	def1, ok1 := Lookup(style1)
	def2, ok2 := Lookup(style2)
	if !ok1 || !ok2 {
		return 0.5
	}

	if contains(def1.Compatible, style2) {
		return 0.8
	}
	if contains(def1.Opposites, style2) {
		return 0.2
	}

	colorCompat := color.Compatibility(def1.Colors, def2.Colors)
	priceOverlap := priceRangeOverlap(def1.PriceRange, def2.PriceRange)

	return colorCompat*0.6 + priceOverlap*0.4
}

// priceRangeOverlap is the overlapping span divided by the total span of
// both bands; disjoint bands overlap 0.
func priceRangeOverlap(r1, r2 domain.PriceRange) float64 {
	overlapMin := math.Max(r1.Min, r2.Min)
	overlapMax := math.Min(r1.Max, r2.Max)
	if overlapMin > overlapMax {
		return 0
	}

	total := math.Max(r1.Max, r2.Max) - math.Min(r1.Min, r2.Min)
	if total == 0 {
		return 0
	}
	return (overlapMax - overlapMin) / total
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
