package matching

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
)

// Weights defines coefficients for each match factor. The defaults are a
// fixed heuristic policy; changing them changes ranking behavior.
type Weights struct {
	Style    float64 `json:"style"`
	Color    float64 `json:"color"`
	Category float64 `json:"category"`
	Price    float64 `json:"price"`
	Size     float64 `json:"size"`
}

// DefaultWeights returns the standard factor weighting.
func DefaultWeights() Weights {
	return Weights{
		Style:    0.3,
		Color:    0.25,
		Category: 0.2,
		Price:    0.15,
		Size:     0.1,
	}
}

// LoadWeightsFromFile loads weights from a JSON file, falling back to
// defaults on read errors.
func LoadWeightsFromFile(path string) (Weights, error) {
	w := DefaultWeights()
	b, err := os.ReadFile(path)
	if err != nil {
		return w, fmt.Errorf("read weights file: %w", err)
	}
	if err := json.Unmarshal(b, &w); err != nil {
		return w, fmt.Errorf("unmarshal weights: %w", err)
	}
	return w, nil
}
