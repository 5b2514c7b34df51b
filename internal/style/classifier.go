package style

import (
	"math"
	"strings"

	"github.com/denisok6893-rgb/furniture-style-matching/internal/color"
	"github.com/denisok6893-rgb/furniture-style-matching/internal/domain"
)

// Signal weights for combining the per-signal style scores, and the
// confidence each available signal contributes. Fixed policy; do not tune.
const (
	explicitTagBoost      = 0.5
	colorSignalWeight     = 0.3
	priceSignalWeight     = 0.1
	textSignalWeight      = 0.2
	categorySignalWeight  = 0.1
	tagConfidence         = 0.3
	colorConfidence       = 0.2
	priceConfidence       = 0.1
	textConfidence        = 0.15
	categoryConfidence    = 0.05
	similarColorThreshold = 100
)

// categoryAffinities maps well-known categories to per-style affinity.
// Categories outside the table score a flat 0.5 for every style.
var categoryAffinities = map[string]map[string]float64{
	"sofa":  {"modern": 0.8, "minimalist": 0.7, "traditional": 0.9},
	"chair": {"modern": 0.7, "industrial": 0.8, "traditional": 0.8},
	"table": {"modern": 0.9, "rustic": 0.8, "industrial": 0.7},
	"lamp":  {"modern": 0.8, "industrial": 0.9, "scandinavian": 0.7},
	"rug":   {"bohemian": 0.9, "traditional": 0.8, "scandinavian": 0.7},
	"bed":   {"minimalist": 0.8, "scandinavian": 0.9, "traditional": 0.7},
}

// AnalyzeItem classifies one item against the taxonomy by combining five
// weak signals: the explicit style tag, colors, price, free text, and
// category. Confidence reflects how much signal was available, capped at 1;
// it is not a probability. Missing optional fields lower confidence rather
// than failing the classification.
func AnalyzeItem(item domain.Item) domain.StyleAnalysis {
	scores := newScoreMap()
	var confidence float64

	if _, ok := Lookup(item.Style); ok {
		scores[item.Style] += explicitTagBoost
		confidence += tagConfidence
	}

	if item.Colors != nil {
		for name, s := range analyzeColors(item.Colors) {
			scores[name] += s * colorSignalWeight
		}
		confidence += colorConfidence
	}

	if item.Price > 0 {
		for name, s := range analyzePrice(item.Price) {
			scores[name] += s * priceSignalWeight
		}
		confidence += priceConfidence
	}

	for name, s := range analyzeText(item.Title, item.Description) {
		scores[name] += s * textSignalWeight
	}
	confidence += textConfidence

	for name, s := range analyzeCategory(item.Category) {
		scores[name] += s * categorySignalWeight
	}
	confidence += categoryConfidence

	return domain.StyleAnalysis{
		StyleScores:   scores,
		Confidence:    math.Min(1, confidence),
		DominantStyle: dominant(scores),
	}
}

// dominant returns the argmax style; ties resolve to the earliest taxonomy
// entry.
func dominant(scores map[string]float64) string {
	best := Taxonomy[0].Name
	bestScore := scores[best]
	for _, d := range Taxonomy[1:] {
		if scores[d.Name] > bestScore {
			best = d.Name
			bestScore = scores[d.Name]
		}
	}
	return best
}

func newScoreMap() map[string]float64 {
	m := make(map[string]float64, len(Taxonomy))
	for _, d := range Taxonomy {
		m[d.Name] = 0
	}
	return m
}

// analyzeColors accumulates (100-distance)/100 for every item color close
// to a style palette color, then normalizes all styles by the maximum so
// the strongest style scores 1. Malformed colors are skipped.
func analyzeColors(colors []string) map[string]float64 {
	scores := newScoreMap()

	for _, c := range colors {
		for _, d := range Taxonomy {
			for _, sc := range d.Colors {
				distance, err := color.Distance(c, sc)
				if err != nil {
					continue
				}
				if distance < similarColorThreshold {
					scores[d.Name] += (similarColorThreshold - distance) / similarColorThreshold
				}
			}
		}
	}

	var max float64
	for _, s := range scores {
		max = math.Max(max, s)
	}
	if max > 0 {
		for name := range scores {
			scores[name] /= max
		}
	}

	return scores
}

// analyzePrice scores each style by how well the price fits its band:
// inside scores 1, below scales toward 0.7 of the proportional fit, above
// decays at half rate relative to the band maximum.
func analyzePrice(price float64) map[string]float64 {
	scores := newScoreMap()

	for _, d := range Taxonomy {
		min, max := d.PriceRange.Min, d.PriceRange.Max
		switch {
		case price >= min && price <= max:
			scores[d.Name] = 1.0
		case price < min:
			scores[d.Name] = price / min * 0.7
		default:
			scores[d.Name] = math.Max(0, 1-(price-max)/max*0.5)
		}
	}

	return scores
}

// analyzeText searches the title and description for style names,
// characteristic keywords (+0.2 each), and material keywords (+0.3 each),
// capping each style at 1.
func analyzeText(title, description string) map[string]float64 {
	text := strings.ToLower(title + " " + description)
	scores := newScoreMap()

	for _, d := range Taxonomy {
		var score float64
		if strings.Contains(text, d.Name) {
			score += 0.5
		}
		for _, c := range d.Characteristics {
			if strings.Contains(text, c) {
				score += 0.2
			}
		}
		for _, m := range d.Materials {
			if strings.Contains(text, m) {
				score += 0.3
			}
		}
		scores[d.Name] = math.Min(1, score)
	}

	return scores
}

func analyzeCategory(category string) map[string]float64 {
	scores := newScoreMap()
	affinities := categoryAffinities[category]

	for _, d := range Taxonomy {
		if a, ok := affinities[d.Name]; ok {
			scores[d.Name] = a
		} else {
			scores[d.Name] = 0.5
		}
	}

	return scores
}
