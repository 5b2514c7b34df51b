package domain

// Item is a furniture listing as returned by a catalog source. The engine
// never mutates an Item; scored variants are derived as MatchedItem copies.
type Item struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Price       float64     `json:"price,omitempty"`
	ImageURL    string      `json:"image_url,omitempty"`
	Description string      `json:"description,omitempty"`
	Category    string      `json:"category,omitempty"`
	Style       string      `json:"style,omitempty"`
	Colors      []string    `json:"colors,omitempty"`
	Source      string      `json:"source,omitempty"`
	URL         string      `json:"url,omitempty"`
	Location    string      `json:"location,omitempty"`
	Dimensions  *Dimensions `json:"dimensions,omitempty"`
}

// Dimensions are in inches. Any field may be zero when unknown.
type Dimensions struct {
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Depth  float64 `json:"depth,omitempty"`
}

// SearchFilters narrows search results. Zero values mean "no filter".
type SearchFilters struct {
	Category string   `json:"category,omitempty"`
	MinPrice float64  `json:"min_price,omitempty"`
	MaxPrice float64  `json:"max_price,omitempty"`
	Style    string   `json:"style,omitempty"`
	Sources  []string `json:"sources,omitempty"`
}

// MatchScore is the 5-factor compatibility breakdown. Every field is in [0,1].
type MatchScore struct {
	Overall       float64 `json:"overall"`
	StyleScore    float64 `json:"style_score"`
	ColorScore    float64 `json:"color_score"`
	CategoryScore float64 `json:"category_score"`
	PriceScore    float64 `json:"price_score"`
	SizeScore     float64 `json:"size_score"`
}

// ColorHarmony names the best color-wheel relationship found between two
// palettes. Type is empty when no harmony band matched.
type ColorHarmony struct {
	Type  string  `json:"type,omitempty"`
	Score float64 `json:"score"`
}

// MatchedItem is an Item annotated with match results. MatchScore is set by
// factor matching, ColorMatchScore and friends by color-first matching.
type MatchedItem struct {
	Item
	MatchScore         *MatchScore   `json:"match_score,omitempty"`
	ColorMatchScore    float64       `json:"color_match_score,omitempty"`
	MatchReason        string        `json:"match_reason,omitempty"`
	Harmonies          *ColorHarmony `json:"harmonies,omitempty"`
	CompatibilityScore float64       `json:"compatibility_score,omitempty"`
}

// StyleAnalysis is the per-item classification result.
type StyleAnalysis struct {
	StyleScores   map[string]float64 `json:"style_scores"`
	Confidence    float64            `json:"confidence"`
	DominantStyle string             `json:"dominant_style"`
}

// RankedStyle pairs a style with its room-level score.
type RankedStyle struct {
	Style string  `json:"style"`
	Score float64 `json:"score"`
}

// PriceStats summarizes prices across a set of items.
type PriceStats struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
}

// RoomAnalysis is the aggregated room-level style summary.
type RoomAnalysis struct {
	Style       string             `json:"style"`
	Confidence  float64            `json:"confidence"`
	StyleScores map[string]float64 `json:"style_scores,omitempty"`
	Analysis    RoomAnalysisDetail `json:"analysis"`
}

type RoomAnalysisDetail struct {
	ItemsAnalyzed     int           `json:"items_analyzed"`
	TotalItems        int           `json:"total_items"`
	RecommendedStyles []RankedStyle `json:"recommended_styles,omitempty"`
	ColorPalette      []string      `json:"color_palette,omitempty"`
	PriceRange        PriceStats    `json:"price_range"`
}

// StyleSuggestion is one entry of the room-type suggestion list.
type StyleSuggestion struct {
	Style      string              `json:"style"`
	Score      float64             `json:"score"`
	Definition SuggestedDefinition `json:"definition"`
}

type SuggestedDefinition struct {
	Colors          []string   `json:"colors"`
	Characteristics []string   `json:"characteristics"`
	PriceRange      PriceRange `json:"price_range"`
	Description     string     `json:"description"`
}

// PriceRange is a typical price band for a style.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
