package color

import "math"

// HarmonyType names a color-wheel relationship.
type HarmonyType string

const (
	Complementary      HarmonyType = "complementary"
	Triadic            HarmonyType = "triadic"
	Analogous          HarmonyType = "analogous"
	SplitComplementary HarmonyType = "splitComplementary"
	Tetradic           HarmonyType = "tetradic"
	Monochromatic      HarmonyType = "monochromatic"
)

// Harmony is the best color-wheel relationship found between two palettes.
// Type is empty when no harmony band matched.
type Harmony struct {
	Type  string  `json:"type,omitempty"`
	Score float64 `json:"score"`
}

// Harmonious generates a deterministic set of colors related to base by the
// given harmony type. The base color is always the first element. Unknown
// harmony types return just the base.
func Harmonious(base string, harmony HarmonyType) ([]string, error) {
	hsl, err := HexToHSL(base)
	if err != nil {
		return nil, err
	}
	colors := []string{base}

	switch harmony {
	case Complementary:
		colors = append(colors, HSLToHex((hsl.H+180)%360, hsl.S, hsl.L))
	case Triadic:
		colors = append(colors,
			HSLToHex((hsl.H+120)%360, hsl.S, hsl.L),
			HSLToHex((hsl.H+240)%360, hsl.S, hsl.L))
	case Analogous:
		colors = append(colors,
			HSLToHex((hsl.H+30)%360, hsl.S, hsl.L),
			HSLToHex((hsl.H-30+360)%360, hsl.S, hsl.L))
	case SplitComplementary:
		colors = append(colors,
			HSLToHex((hsl.H+150)%360, hsl.S, hsl.L),
			HSLToHex((hsl.H+210)%360, hsl.S, hsl.L))
	case Monochromatic:
		// Same hue, varied saturation and lightness.
		colors = append(colors,
			HSLToHex(hsl.H, maxInt(10, hsl.S-30), hsl.L),
			HSLToHex(hsl.H, minInt(90, hsl.S+20), maxInt(10, hsl.L-20)),
			HSLToHex(hsl.H, hsl.S, minInt(90, hsl.L+20)))
	}

	return colors, nil
}

// Compatibility scores how well two palettes work together, in [0,1].
// Every cross-palette pair is bucketed by distance: complementary-like
// (150..210) +0.9, triadic-like (100..140) +0.8, analogous (<50) +0.7,
// too similar (<20) -0.3, harsh contrast (>250) -0.2. Pair scores are
// floored at 0 and averaged. Empty palettes score 0.
//
// Note the buckets overlap: a near-identical pair lands in both the
// analogous bonus and the too-similar penalty, netting 0.4. Identical
// colors are therefore penalized relative to merely-close ones; that is
// long-standing engine behavior and is pinned by tests.
func Compatibility(colors1, colors2 []string) float64 {
	if len(colors1) == 0 || len(colors2) == 0 {
		return 0
	}

	var total float64
	comparisons := 0

	for _, c1 := range colors1 {
		for _, c2 := range colors2 {
			distance, err := Distance(c1, c2)
			if err != nil {
				continue
			}

			var score float64
			if distance > 150 && distance < 210 {
				score += 0.9
			}
			if distance < 50 {
				score += 0.7
			}
			if distance > 100 && distance < 140 {
				score += 0.8
			}
			if distance < 20 {
				score -= 0.3
			}
			if distance > 250 {
				score -= 0.2
			}

			total += math.Max(0, score)
			comparisons++
		}
	}

	if comparisons == 0 {
		return 0
	}
	return total / float64(comparisons)
}

// BestHarmony scans all cross-palette pairs for the single best harmony
// classification by hue difference: complementary within ±15° of 180°
// scores 0.9, triadic ±15° of 120°/240° scores 0.8, analogous under 30°
// scores 0.7, split-complementary ±15° of 150°/210° scores 0.75.
func BestHarmony(colors1, colors2 []string) Harmony {
	best := Harmony{}

	for _, c1 := range colors1 {
		for _, c2 := range colors2 {
			hsl1, err := HexToHSL(c1)
			if err != nil {
				continue
			}
			hsl2, err := HexToHSL(c2)
			if err != nil {
				continue
			}

			hueDiff := circularHueDiff(hsl1.H, hsl2.H)

			switch {
			case math.Abs(hueDiff-180) < 15:
				if best.Score < 0.9 {
					best = Harmony{Type: "complementary", Score: 0.9}
				}
			case math.Abs(hueDiff-120) < 15 || math.Abs(hueDiff-240) < 15:
				if best.Score < 0.8 {
					best = Harmony{Type: "triadic", Score: 0.8}
				}
			case hueDiff < 30:
				if best.Score < 0.7 {
					best = Harmony{Type: "analogous", Score: 0.7}
				}
			case math.Abs(hueDiff-150) < 15 || math.Abs(hueDiff-210) < 15:
				if best.Score < 0.75 {
					best = Harmony{Type: "split-complementary", Score: 0.75}
				}
			}
		}
	}

	return best
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
