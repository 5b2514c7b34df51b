// Package style classifies furniture items into interior-design styles and
// aggregates item classifications into room-level summaries.
package style

import "github.com/denisok6893-rgb/furniture-style-matching/internal/domain"

// Definition describes one interior-design style: its reference palette,
// typical materials, descriptive keywords, price band, and explicit
// relationships to other styles.
type Definition struct {
	Name            string
	Colors          []string
	Materials       []string
	Characteristics []string
	PriceRange      domain.PriceRange
	Compatible      []string
	Opposites       []string
	Description     string
}

// Taxonomy is the fixed catalog of known styles. The slice order is part of
// the contract: score ties resolve to the earliest entry.
var Taxonomy = []Definition{
	{
		Name:            "modern",
		Colors:          []string{"#FFFFFF", "#000000", "#808080", "#C0C0C0"},
		Materials:       []string{"glass", "metal", "leather", "concrete"},
		Characteristics: []string{"clean lines", "minimal", "geometric", "sleek"},
		PriceRange:      domain.PriceRange{Min: 300, Max: 2000},
		Compatible:      []string{"minimalist", "industrial", "scandinavian"},
		Opposites:       []string{"traditional", "rustic", "vintage"},
		Description:     "Clean lines, minimal ornamentation, and a focus on function over form.",
	},
	{
		Name:            "minimalist",
		Colors:          []string{"#FFFFFF", "#F5F5F5", "#E8E8E8", "#CCCCCC"},
		Materials:       []string{"wood", "glass", "steel", "ceramic"},
		Characteristics: []string{"simple", "functional", "uncluttered", "serene"},
		PriceRange:      domain.PriceRange{Min: 200, Max: 1500},
		Compatible:      []string{"modern", "scandinavian", "japanese"},
		Opposites:       []string{"maximalist", "baroque", "ornate"},
		Description:     "Less is more - emphasizing simplicity, functionality, and open space.",
	},
	{
		Name:            "rustic",
		Colors:          []string{"#8B4513", "#DEB887", "#D2B48C", "#CD853F"},
		Materials:       []string{"reclaimed wood", "iron", "stone", "leather"},
		Characteristics: []string{"weathered", "natural", "handcrafted", "cozy"},
		PriceRange:      domain.PriceRange{Min: 150, Max: 1200},
		Compatible:      []string{"industrial", "farmhouse", "traditional"},
		Opposites:       []string{"modern", "minimalist", "futuristic"},
		Description:     "Natural materials, weathered textures, and a cozy, lived-in feel.",
	},
	{
		Name:            "industrial",
		Colors:          []string{"#2F2F2F", "#4A4A4A", "#C0C0C0", "#8B4513"},
		Materials:       []string{"metal", "exposed brick", "concrete", "reclaimed wood"},
		Characteristics: []string{"raw", "utilitarian", "exposed", "urban"},
		PriceRange:      domain.PriceRange{Min: 250, Max: 1800},
		Compatible:      []string{"modern", "rustic", "loft"},
		Opposites:       []string{"traditional", "romantic", "ornate"},
		Description:     "Raw materials like metal and concrete with an urban, warehouse aesthetic.",
	},
	{
		Name:            "traditional",
		Colors:          []string{"#8B0000", "#DAA520", "#228B22", "#4B0082"},
		Materials:       []string{"mahogany", "cherry wood", "brass", "velvet"},
		Characteristics: []string{"elegant", "formal", "symmetric", "classic"},
		PriceRange:      domain.PriceRange{Min: 400, Max: 3000},
		Compatible:      []string{"transitional", "classic", "formal"},
		Opposites:       []string{"modern", "industrial", "minimalist"},
		Description:     "Classic elegance with rich materials, formal symmetry, and timeless appeal.",
	},
	{
		Name:            "scandinavian",
		Colors:          []string{"#FFFFFF", "#F0F0F0", "#8FBC8F", "#DDA0DD"},
		Materials:       []string{"light wood", "wool", "linen", "ceramic"},
		Characteristics: []string{"hygge", "functional", "light", "cozy"},
		PriceRange:      domain.PriceRange{Min: 200, Max: 1000},
		Compatible:      []string{"minimalist", "modern", "nordic"},
		Opposites:       []string{"baroque", "gothic", "heavy"},
		Description:     "Light woods, neutral colors, and hygge-inspired coziness.",
	},
	{
		Name:            "bohemian",
		Colors:          []string{"#FF69B4", "#FFD700", "#32CD32", "#FF4500"},
		Materials:       []string{"textiles", "rattan", "macrame", "brass"},
		Characteristics: []string{"eclectic", "layered", "artistic", "free-spirited"},
		PriceRange:      domain.PriceRange{Min: 100, Max: 800},
		Compatible:      []string{"eclectic", "artistic", "global"},
		Opposites:       []string{"minimalist", "modern", "formal"},
		Description:     "Eclectic mix of colors, patterns, and global influences for a free-spirited vibe.",
	},
	{
		Name:            "mediterranean",
		Colors:          []string{"#4682B4", "#F0E68C", "#CD853F", "#FF6347"},
		Materials:       []string{"terracotta", "wrought iron", "ceramic", "stone"},
		Characteristics: []string{"warm", "textured", "coastal", "earthy"},
		PriceRange:      domain.PriceRange{Min: 300, Max: 1500},
		Compatible:      []string{"coastal", "rustic", "southwestern"},
		Opposites:       []string{"industrial", "modern", "minimalist"},
		Description:     "Warm earth tones, natural textures, and coastal-inspired elements.",
	},
}

var byName = func() map[string]*Definition {
	m := make(map[string]*Definition, len(Taxonomy))
	for i := range Taxonomy {
		m[Taxonomy[i].Name] = &Taxonomy[i]
	}
	return m
}()

// Lookup returns the definition for a style name, or false for names
// outside the taxonomy.
func Lookup(name string) (*Definition, bool) {
	d, ok := byName[name]
	return d, ok
}

// Names returns the style names in taxonomy order.
func Names() []string {
	names := make([]string, len(Taxonomy))
	for i, d := range Taxonomy {
		names[i] = d.Name
	}
	return names
}

// Describe returns the one-line description for a style, with a generic
// fallback for unknown names.
func Describe(name string) string {
	if d, ok := byName[name]; ok {
		return d.Description
	}
	return "A distinctive style with its own unique characteristics."
}
